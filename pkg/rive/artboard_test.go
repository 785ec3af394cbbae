package rive

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestArtboardProperties(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	if b := a.Bounds(); b != (AABB{MaxX: 400, MaxY: 300}) {
		t.Errorf("Bounds = %+v", b)
	}
	a.SetHeight(600)
	changed, err := a.Advance(0)
	if err != nil {
		t.Fatal(err)
	}
	if !changed || !a.DidChange() {
		t.Error("resize did not mark the artboard changed")
	}
	if err := a.ResetSize(); err != nil {
		t.Fatal(err)
	}
	if a.Width() != 400 || a.Height() != 300 {
		t.Errorf("size after reset = %vx%v", a.Width(), a.Height())
	}
	a.SetVolume(0.25)
	if a.Volume() != 0.25 {
		t.Errorf("Volume = %v", a.Volume())
	}
	if !a.HasAudio() || !s.file.HasAudio() {
		t.Error("audio not reported")
	}
	counts := []struct {
		name      string
		got, want int
	}{
		{"animations", a.AnimationCount(), 2},
		{"state machines", a.StateMachineCount(), 1},
		{"events", a.EventCount(), 2},
		{"text runs", a.TextRunCount(), 1},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s = %d, want %d", c.name, c.got, c.want)
		}
	}
	a.Release()
	s.close()
}

func TestArtboardEvents(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	events, err := a.Events()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d", len(events))
	}
	clicked, help := events[0], events[1]
	if clicked.Name != "clicked" || clicked.URL != nil || len(clicked.Properties) != 3 {
		t.Errorf("clicked = %+v", clicked)
	}
	if help.URL == nil || *help.URL != "https://example.com/help" {
		t.Errorf("help url = %v", help.URL)
	}
	if help.Target == nil || *help.Target != "_blank" {
		t.Errorf("help target = %v", help.Target)
	}
	if _, err := a.Event(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Event(2) = %v", err)
	}
	a.Release()
	s.close()
}

func TestTextRuns(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	if name, err := a.TextRunNameAt(0); err != nil || name != "title" {
		t.Errorf("TextRunNameAt(0) = %q, %v", name, err)
	}
	if err := a.SetTextRunTextAt(0, "Goal"); err != nil {
		t.Fatal(err)
	}
	run, err := a.TextValueRun("title")
	if err != nil {
		t.Fatal(err)
	}
	if run.Text() != "Goal" {
		t.Errorf("run text = %q", run.Text())
	}
	if err := run.SetText("Final"); err != nil {
		t.Fatal(err)
	}
	if text, _ := a.TextRunTextAt(0); text != "Final" {
		t.Errorf("TextRunTextAt(0) = %q", text)
	}

	if err := a.SetTextByPath("caption", "badge", "hot"); err != nil {
		t.Fatal(err)
	}
	if text, err := a.TextByPath("caption", "badge"); err != nil || text != "hot" {
		t.Errorf("TextByPath = %q, %v", text, err)
	}
	if _, err := a.TextByPath("caption", "nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown path = %v", err)
	}

	a.Release()
	if run.Text() != "" {
		t.Error("text run outlived its artboard")
	}
	if err := run.SetText("x"); !errors.Is(err, ErrNull) {
		t.Errorf("SetText after release = %v", err)
	}
	s.close()
}

func TestInputByPath(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	in, err := a.InputByPath("on", "badge")
	if err != nil {
		t.Fatal(err)
	}
	b, err := in.AsBool()
	if err != nil {
		t.Fatal(err)
	}
	if !b.Value() {
		t.Error("nested input lost its initial value")
	}
	b.Set(false)
	if b.Value() {
		t.Error("Set(false) did not stick")
	}
	if _, err := in.AsNumber(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bool as number = %v", err)
	}
	if _, err := a.InputByPath("off", "badge"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown input = %v", err)
	}
	a.Release()
	s.close()
}

func TestComponents(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	bone, err := a.Bone("arm")
	if err != nil {
		t.Fatal(err)
	}
	root, err := a.RootBone("arm")
	if err != nil {
		t.Fatal(err)
	}
	if bone.Length() != 20 || root.X() != 10 {
		t.Errorf("arm length %v x %v", bone.Length(), root.X())
	}
	if _, err := a.Bone("root"); !errors.Is(err, ErrNotFound) {
		t.Errorf("node as bone = %v", err)
	}

	forearm, err := a.TransformComponent("forearm")
	if err != nil {
		t.Fatal(err)
	}
	m, err := forearm.WorldTransform()
	if err != nil {
		t.Fatal(err)
	}
	if !near(m.TX, 130) || !near(m.TY, 50) {
		t.Errorf("forearm world = %+v", m)
	}
	forearm.SetScaleX(2)
	if forearm.ScaleX() != 2 {
		t.Errorf("ScaleX = %v", forearm.ScaleX())
	}

	a.Release()
	if _, err := forearm.WorldTransform(); !errors.Is(err, ErrNull) {
		t.Errorf("WorldTransform after release = %v", err)
	}
	s.close()
}

func TestFlattenPath(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	p, err := a.FlattenPath(1, false)
	if err != nil {
		t.Fatal(err)
	}
	pts, err := p.Points()
	if err != nil {
		t.Fatal(err)
	}
	want := []PathPoint{
		{X: 0, Y: 0},
		{X: 10, Y: 10, Cubic: true, InX: 5, InY: 10, OutX: 15, OutY: 10},
	}
	if len(pts) != len(want) {
		t.Fatalf("points = %+v", pts)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, pts[i], want[i])
		}
	}
	if _, err := p.InX(0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("control point of a straight vertex = %v", err)
	}
	if _, err := p.X(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("X(2) = %v", err)
	}
	p.Destroy()
	p.Destroy()
	if p.Len() != 0 {
		t.Error("destroyed path still has vertices")
	}

	if _, err := a.FlattenPath(7, true); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("FlattenPath(7) = %v", err)
	}
	a.Release()
	s.close()
}

func TestLinearAnimation(t *testing.T) {
	s := newScene(t)
	a := s.artboard("main")

	anim, err := a.Animation("slide")
	if err != nil {
		t.Fatal(err)
	}
	if anim.Loop() != LoopLoop || anim.Speed() != 1 || !near(anim.Seconds(), 1) {
		t.Errorf("slide = %v speed %v over %vs", anim.Loop(), anim.Speed(), anim.Seconds())
	}
	inst, err := anim.NewInstance(a)
	if err != nil {
		t.Fatal(err)
	}
	if looped, err := inst.Advance(0.5); err != nil || looped {
		t.Errorf("Advance(0.5) = %v, %v", looped, err)
	}
	if err := inst.Apply(a, 1); err != nil {
		t.Fatal(err)
	}
	root, _ := a.Node("root")
	if !near(root.X(), 150) {
		t.Errorf("root x = %v, want 150", root.X())
	}
	if looped, _ := inst.Advance(0.6); !looped || !inst.DidLoop() || !near(inst.Time(), 0.1) {
		t.Errorf("after wrap: time %v looped %v", inst.Time(), looped)
	}
	inst.SetTime(0)
	if err := inst.Apply(a, 1); err != nil {
		t.Fatal(err)
	}
	if !near(root.X(), 100) {
		t.Errorf("root x at 0 = %v", root.X())
	}
	if err := anim.Apply(a, 0.5, 0.5); err != nil {
		t.Fatal(err)
	}
	if !near(root.X(), 125) {
		t.Errorf("half mix = %v, want 125", root.X())
	}

	if _, err := a.Animation("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown animation = %v", err)
	}
	if LoopPingPong.String() != "pingPong" || Loop(9).String() != "unknown" {
		t.Error("Loop.String")
	}
	inst.Destroy()
	a.Release()
	s.close()
}
