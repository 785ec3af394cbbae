// Package testing provides helpers for testing code built on the rive
// runtime against the in-process reference engine.
//
// # Quick Start
//
// Load a document, open a state machine and drive it:
//
//	func TestButton(t *testing.T) {
//	    h := rivetest.NewHarness(t, scene)
//	    session := h.Session(h.Artboard("main"), "ui")
//
//	    snap := h.Trace(session, 3, 16*time.Millisecond, nil)
//	    snap.MatchesFile(t, "testdata/button.snapshot.json")
//	}
//
// The harness releases every handle it created when the test ends and
// fails the test if any native object or wrapper is still alive, or if the
// engine saw a double release or a use after free.
//
// # Snapshot Testing
//
// A [Snapshot] records the state changes and reported events of each
// frame. Update golden files with:
//
//	RIVE_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Frame Timing
//
// [FakeClock] gives players deterministic frame times:
//
//	clk := rivetest.NewFakeClock()
//	p := player.New(session, player.WithClock(clk))
//	p.Start()
//	clk.Advance(16 * time.Millisecond)
//	p.Tick()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import rivetest "github.com/go-drift/rive/pkg/testing"
package testing
