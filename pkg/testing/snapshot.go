package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-drift/rive/pkg/rive"
)

// Snapshot captures what a state machine reported, frame by frame.
type Snapshot struct {
	Frames []Frame `json:"frames"`
}

// Frame is one advance. Frames without output are kept so that indices
// line up with the frames driven.
type Frame struct {
	Index        int           `json:"frame"`
	StateChanges []string      `json:"stateChanges,omitempty"`
	Events       []EventRecord `json:"events,omitempty"`
}

// EventRecord is the serialized form of a reported event.
type EventRecord struct {
	Name       string         `json:"name"`
	URL        string         `json:"url,omitempty"`
	Target     string         `json:"target,omitempty"`
	Delay      float64        `json:"delay,omitempty"`
	Properties map[string]any `json:"props,omitempty"`
}

// Recorder builds a Snapshot from listener callbacks. Its methods match
// the player listener signatures, so a recorder can be attached directly:
//
//	rec := rivetest.NewRecorder()
//	p.OnStateChange(rec.StateChange)
//	p.OnEvent(rec.Event)
//	// after each frame
//	rec.EndFrame()
//
// All methods are safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	frames []Frame
	cur    Frame
}

// NewRecorder returns an empty recorder positioned at frame 0.
func NewRecorder() *Recorder { return &Recorder{} }

// StateChange records a state entered during the current frame.
func (r *Recorder) StateChange(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur.StateChanges = append(r.cur.StateChanges, name)
}

// Event records an event reported during the current frame.
func (r *Recorder) Event(ev rive.ReportedEvent) {
	rec := EventRecord{Name: ev.Name, Delay: float64(ev.Delay)}
	if ev.URL != nil {
		rec.URL = *ev.URL
	}
	if ev.Target != nil {
		rec.Target = *ev.Target
	}
	for _, p := range ev.Properties {
		if rec.Properties == nil {
			rec.Properties = make(map[string]any, len(ev.Properties))
		}
		rec.Properties[p.Name] = propertyValue(p.Value)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur.Events = append(r.cur.Events, rec)
}

// EndFrame closes the current frame and starts the next.
func (r *Recorder) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, r.cur)
	r.cur = Frame{Index: len(r.frames)}
}

// Snapshot returns the frames closed so far.
func (r *Recorder) Snapshot() *Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return &Snapshot{Frames: append([]Frame(nil), r.frames...)}
}

func propertyValue(v rive.EventValue) any {
	switch x := v.(type) {
	case rive.EventBool:
		return bool(x)
	case rive.EventNumber:
		return float64(x)
	case rive.EventString:
		return string(x)
	}
	return nil
}

// StateChanges flattens the state names entered across all frames.
func (s *Snapshot) StateChanges() []string {
	var out []string
	for _, f := range s.Frames {
		out = append(out, f.StateChanges...)
	}
	return out
}

// EventNames flattens the reported event names across all frames.
func (s *Snapshot) EventNames() []string {
	var out []string
	for _, f := range s.Frames {
		for _, e := range f.Events {
			out = append(out, e.Name)
		}
	}
	return out
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When RIVE_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("RIVE_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: RIVE_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: RIVE_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	for i := range max(len(expectedLines), len(actualLines)) {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
