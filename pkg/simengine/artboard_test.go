package simengine

import (
	"math"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestFileQueries(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns

	var a abi.Artboard
	fx.ok("FileArtboardDefault", fns.FileArtboardDefault(fx.file, &a))
	if got := goString(fns.ArtboardName(a)); got != "main" {
		t.Errorf("default artboard = %q", got)
	}
	var b abi.Artboard
	if st := fns.FileArtboardByIndex(fx.file, 2, &b); st != abi.StatusOutOfRange {
		t.Errorf("FileArtboardByIndex(2) = %v", st)
	}
	if st := fns.FileArtboardByName(fx.file, abi.Str("nope"), &b); st != abi.StatusNotFound {
		t.Errorf("FileArtboardByName(nope) = %v", st)
	}
	fx.ok("FileArtboardByIndex(1)", fns.FileArtboardByIndex(fx.file, 1, &b))
	if got := goString(fns.ArtboardName(b)); got != "badge" {
		t.Errorf("artboard 1 = %q", got)
	}

	if !fns.FileHasAudio(fx.file) || !fns.ArtboardHasAudio(a) || fns.ArtboardHasAudio(b) {
		t.Error("audio flags do not follow the artboards' audio lists")
	}

	if n := fns.FileEnumCount(fx.file); n != 1 {
		t.Fatalf("FileEnumCount = %d", n)
	}
	var s abi.StrView
	fx.ok("FileEnumNameAt", fns.FileEnumNameAt(fx.file, 0, &s))
	if goString(s) != "mood" {
		t.Errorf("enum name = %q", goString(s))
	}
	if n := fns.FileEnumValueCount(fx.file, 0); n != 3 {
		t.Errorf("FileEnumValueCount = %d", n)
	}
	fx.ok("FileEnumValueNameAt", fns.FileEnumValueNameAt(fx.file, 0, 2, &s))
	if goString(s) != "sleepy" {
		t.Errorf("enum value = %q", goString(s))
	}
	if st := fns.FileEnumValueNameAt(fx.file, 0, 3, &s); st != abi.StatusOutOfRange {
		t.Errorf("FileEnumValueNameAt(0, 3) = %v", st)
	}

	var vm abi.ViewModel
	fx.ok("FileDefaultArtboardViewModel", fns.FileDefaultArtboardViewModel(fx.file, a, &vm))
	if goString(fns.ViewModelName(vm)) != "Hud" {
		t.Errorf("default view model = %q", goString(fns.ViewModelName(vm)))
	}
	var none abi.ViewModel
	if st := fns.FileDefaultArtboardViewModel(fx.file, b, &none); st != abi.StatusNotFound || none != 0 {
		t.Errorf("badge view model = %v, %#x", st, none)
	}

	var ba abi.BindableArtboard
	fx.ok("FileBindableArtboardByName", fns.FileBindableArtboardByName(fx.file, abi.Str("badge"), &ba))
	if st := fns.FileBindableArtboardByName(fx.file, abi.Str("nope"), &ba); st != abi.StatusNotFound || ba != 0 {
		t.Errorf("FileBindableArtboardByName(nope) = %v", st)
	}

	fns.ViewModelUnref(vm)
	fns.ArtboardUnref(a)
	fns.ArtboardUnref(b)
	fx.noViolations()
}

func TestArtboardProperties(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	if b := fns.ArtboardBounds(a); b != (abi.AABB{MaxX: 400, MaxY: 300}) {
		t.Errorf("bounds = %+v", b)
	}
	fns.ArtboardSetWidth(a, 800)
	if fns.ArtboardWidth(a) != 800 {
		t.Errorf("width = %v", fns.ArtboardWidth(a))
	}
	var changed bool
	fx.ok("ArtboardAdvance", fns.ArtboardAdvance(a, 0, &changed))
	if !changed || !fns.ArtboardDidChange(a) {
		t.Error("resize did not mark the artboard changed")
	}
	fx.ok("ArtboardAdvance", fns.ArtboardAdvance(a, 0, &changed))
	if changed {
		t.Error("idle advance reported a change")
	}
	fx.ok("ArtboardResetSize", fns.ArtboardResetSize(a))
	if fns.ArtboardWidth(a) != 400 || fns.ArtboardHeight(a) != 300 {
		t.Errorf("size after reset = %vx%v", fns.ArtboardWidth(a), fns.ArtboardHeight(a))
	}
	if fns.ArtboardVolume(a) != 1 {
		t.Errorf("volume = %v", fns.ArtboardVolume(a))
	}
	fns.ArtboardSetVolume(a, 0.25)
	if fns.ArtboardVolume(a) != 0.25 {
		t.Errorf("volume after set = %v", fns.ArtboardVolume(a))
	}
	if st := fns.ArtboardAdvance(a, 0, nil); st != abi.StatusNull {
		t.Errorf("ArtboardAdvance(nil) = %v", st)
	}
	if n := fns.ArtboardAnimationCount(a); n != 2 {
		t.Errorf("animations = %d", n)
	}
	if n := fns.ArtboardStateMachineCount(a); n != 1 {
		t.Errorf("state machines = %d", n)
	}
	fx.noViolations()
}

func TestArtboardEvents(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	if n := fns.ArtboardEventCount(a); n != 2 {
		t.Fatalf("events = %d", n)
	}
	var ev abi.EventInfo
	fx.ok("ArtboardEventAt(0)", fns.ArtboardEventAt(a, 0, &ev))
	if goString(ev.Name) != "clicked" || ev.Type != eventTypeKey || ev.PropertyCount != 3 || ev.HasURL {
		t.Errorf("event 0 = %+v", ev)
	}
	fx.ok("ArtboardEventAt(1)", fns.ArtboardEventAt(a, 1, &ev))
	if !ev.HasURL || goString(ev.URL) != "https://example.com/help" || goString(ev.Target) != "_blank" || ev.Type != openURLEventTypeKey {
		t.Errorf("event 1 = %+v", ev)
	}
	if st := fns.ArtboardEventAt(a, 2, &ev); st != abi.StatusOutOfRange {
		t.Errorf("ArtboardEventAt(2) = %v", st)
	}

	tests := []struct {
		index uintptr
		check func(abi.EventPropertyInfo) bool
	}{
		{0, func(p abi.EventPropertyInfo) bool {
			return goString(p.Name) == "count" && p.ValueType == abi.EventPropertyNumber && p.NumberValue == 1
		}},
		{1, func(p abi.EventPropertyInfo) bool {
			return goString(p.Name) == "primary" && p.ValueType == abi.EventPropertyBool && p.BoolValue
		}},
		{2, func(p abi.EventPropertyInfo) bool {
			return goString(p.Name) == "label" && p.ValueType == abi.EventPropertyString && goString(p.StringValue) == "go"
		}},
	}
	for _, tt := range tests {
		var p abi.EventPropertyInfo
		fx.ok("ArtboardEventPropertyAt", fns.ArtboardEventPropertyAt(a, 0, tt.index, &p))
		if !tt.check(p) {
			t.Errorf("property %d = %+v", tt.index, p)
		}
	}
	var p abi.EventPropertyInfo
	if st := fns.ArtboardEventPropertyAt(a, 0, 3, &p); st != abi.StatusOutOfRange {
		t.Errorf("ArtboardEventPropertyAt(0, 3) = %v", st)
	}
}

func TestTextRuns(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	if n := fns.ArtboardTextValueRunCount(a); n != 1 {
		t.Fatalf("text runs = %d", n)
	}
	var s abi.StrView
	fx.ok("ArtboardTextValueRunTextAt", fns.ArtboardTextValueRunTextAt(a, 0, &s))
	if goString(s) != "Score" {
		t.Errorf("text = %q", goString(s))
	}
	fx.ok("ArtboardSetTextValueRunTextAt", fns.ArtboardSetTextValueRunTextAt(a, 0, abi.Str("Goal")))

	var run abi.TextValueRun
	fx.ok("ArtboardTextValueRunByName", fns.ArtboardTextValueRunByName(a, abi.Str("title"), &run))
	if goString(fns.TextValueRunText(run)) != "Goal" {
		t.Errorf("run text = %q", goString(fns.TextValueRunText(run)))
	}
	var same abi.TextValueRun
	fx.ok("ArtboardTextValueRunByIndex", fns.ArtboardTextValueRunByIndex(a, 0, &same))
	if same != run {
		t.Error("lookup by name and by index returned different handles")
	}

	fx.ok("ArtboardTextByPathGet", fns.ArtboardTextByPathGet(a, abi.Str("caption"), abi.Str("badge"), &s))
	if goString(s) != "new" {
		t.Errorf("nested text = %q", goString(s))
	}
	fx.ok("ArtboardTextByPathSet", fns.ArtboardTextByPathSet(a, abi.Str("caption"), abi.Str("badge"), abi.Str("hot")))
	fx.ok("ArtboardTextByPathGet", fns.ArtboardTextByPathGet(a, abi.Str("caption"), abi.Str("badge"), &s))
	if goString(s) != "hot" {
		t.Errorf("nested text after set = %q", goString(s))
	}
	if st := fns.ArtboardTextByPathGet(a, abi.Str("caption"), abi.Str("nope"), &s); st != abi.StatusNotFound {
		t.Errorf("unknown path = %v", st)
	}
	if st := fns.ArtboardTextByPathGet(a, abi.Str("caption"), abi.Str(""), &s); st != abi.StatusNotFound {
		t.Errorf("caption on the root artboard = %v", st)
	}
}

func TestInputByPath(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	var in abi.SmiInput
	fx.ok("ArtboardInputByPath", fns.ArtboardInputByPath(a, abi.Str("on"), abi.Str("badge"), &in))
	if fns.SmiInputTypeOf(in) != abi.SmiInputBool {
		t.Errorf("type = %v", fns.SmiInputTypeOf(in))
	}
	var b abi.SmiBool
	fx.ok("SmiInputAsBool", fns.SmiInputAsBool(in, &b))
	if !fns.SmiBoolGet(b) {
		t.Error("nested input lost its initial value")
	}
	var n abi.SmiNumber
	if st := fns.SmiInputAsNumber(in, &n); st != abi.StatusInvalidArgument || n != 0 {
		t.Errorf("SmiInputAsNumber on a bool = %v, %#x", st, n)
	}
	if st := fns.ArtboardInputByPath(a, abi.Str("on"), abi.Str(""), &in); st != abi.StatusNotFound {
		t.Errorf("input on the root path = %v", st)
	}
	if st := fns.ArtboardInputByPath(a, abi.Str("off"), abi.Str("badge"), &in); st != abi.StatusNotFound {
		t.Errorf("unknown input = %v", st)
	}
}

func TestComponents(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	var node abi.Node
	fx.ok("ArtboardNodeByName", fns.ArtboardNodeByName(a, abi.Str("root"), &node))
	if fns.NodeX(node) != 100 || fns.NodeY(node) != 50 {
		t.Errorf("root at (%v, %v)", fns.NodeX(node), fns.NodeY(node))
	}
	var bone abi.Bone
	if st := fns.ArtboardBoneByName(a, abi.Str("root"), &bone); st != abi.StatusNotFound {
		t.Errorf("node looked up as bone = %v", st)
	}
	fx.ok("ArtboardBoneByName(arm)", fns.ArtboardBoneByName(a, abi.Str("arm"), &bone))
	var root abi.RootBone
	fx.ok("ArtboardRootBoneByName", fns.ArtboardRootBoneByName(a, abi.Str("arm"), &root))
	if uintptr(root) != uintptr(bone) {
		t.Error("root bone and bone views of one component differ")
	}
	if fns.BoneLength(bone) != 20 || fns.RootBoneX(root) != 10 {
		t.Errorf("arm length %v x %v", fns.BoneLength(bone), fns.RootBoneX(root))
	}

	var tc abi.TransformComponent
	fx.ok("ArtboardTransformComponentByName", fns.ArtboardTransformComponentByName(a, abi.Str("forearm"), &tc))
	var m abi.Mat2D
	fx.ok("TransformComponentWorldTransform", fns.TransformComponentWorldTransform(tc, &m))
	if !near(m.TX, 130) || !near(m.TY, 50) {
		t.Errorf("forearm world = %+v, want translation (130, 50)", m)
	}
	fx.ok("TransformComponentParentWorldTransform", fns.TransformComponentParentWorldTransform(tc, &m))
	if !near(m.TX, 110) {
		t.Errorf("forearm parent world = %+v", m)
	}

	fns.NodeSetX(node, 0)
	fns.TransformComponentSetScaleX(tc, 2)
	if fns.TransformComponentScaleX(tc) != 2 {
		t.Errorf("scale x = %v", fns.TransformComponentScaleX(tc))
	}
	fx.ok("TransformComponentWorldTransform", fns.TransformComponentWorldTransform(tc, &m))
	if !near(m.TX, 30) || !near(m.XX, 2) {
		t.Errorf("forearm world after edits = %+v", m)
	}
	fx.noViolations()
}

func TestFlattenPath(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	var p abi.FlattenedPath
	fx.ok("ArtboardFlattenPath(1)", fns.ArtboardFlattenPath(a, 1, false, &p))
	if n := fns.FlattenedPathLength(p); n != 2 {
		t.Fatalf("length = %d", n)
	}
	var cubic bool
	fx.ok("FlattenedPathIsCubic", fns.FlattenedPathIsCubic(p, 1, &cubic))
	if !cubic {
		t.Error("vertex with both handles is not cubic")
	}
	var v float32
	fx.ok("FlattenedPathInX", fns.FlattenedPathInX(p, 1, &v))
	if v != 5 {
		t.Errorf("in x = %v", v)
	}
	fx.ok("FlattenedPathOutX", fns.FlattenedPathOutX(p, 1, &v))
	if v != 15 {
		t.Errorf("out x = %v", v)
	}
	if st := fns.FlattenedPathInX(p, 0, &v); st != abi.StatusInvalidArgument {
		t.Errorf("control point of a straight vertex = %v", st)
	}
	if st := fns.FlattenedPathX(p, 2, &v); st != abi.StatusOutOfRange {
		t.Errorf("FlattenedPathX(2) = %v", st)
	}
	fns.FlattenedPathDelete(p)

	fx.ok("ArtboardFlattenPath(0)", fns.ArtboardFlattenPath(a, 0, true, &p))
	fx.ok("FlattenedPathX", fns.FlattenedPathX(p, 1, &v))
	if v != 150 {
		t.Errorf("x in parent space = %v, want 150", v)
	}
	fns.FlattenedPathDelete(p)

	if st := fns.ArtboardFlattenPath(a, 2, false, &p); st != abi.StatusOutOfRange || p != 0 {
		t.Errorf("ArtboardFlattenPath(2) = %v", st)
	}
	if s := fx.e.Stats(); s.Deletes != 2 || s.Live[KindFlattenedPath] != 0 {
		t.Errorf("deletes %d live %d", s.Deletes, s.Live[KindFlattenedPath])
	}
	fx.noViolations()
}

func TestLinearAnimation(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	a := fx.artboard("main")

	var anim abi.LinearAnimation
	fx.ok("ArtboardAnimationByName", fns.ArtboardAnimationByName(a, abi.Str("slide"), &anim))
	if fns.LinearAnimationDuration(anim) != 10 || fns.LinearAnimationFPS(anim) != 10 ||
		fns.LinearAnimationLoopValue(anim) != loopLoop || fns.LinearAnimationSpeed(anim) != 1 {
		t.Errorf("slide metadata = %d frames @%d loop %d speed %v",
			fns.LinearAnimationDuration(anim), fns.LinearAnimationFPS(anim),
			fns.LinearAnimationLoopValue(anim), fns.LinearAnimationSpeed(anim))
	}
	var again abi.LinearAnimation
	fx.ok("ArtboardAnimationByIndex", fns.ArtboardAnimationByIndex(a, 0, &again))
	if again != anim {
		t.Error("accessor handles are not stable")
	}
	if st := fns.ArtboardAnimationByName(a, abi.Str("nope"), &again); st != abi.StatusNotFound || again != 0 {
		t.Errorf("unknown animation = %v", st)
	}

	var inst abi.LinearAnimationInstance
	fx.ok("LinearAnimationInstanceNew", fns.LinearAnimationInstanceNew(anim, a, &inst))
	var looped bool
	fx.ok("LinearAnimationInstanceAdvance", fns.LinearAnimationInstanceAdvance(inst, 0.5, &looped))
	if looped || !near(fns.LinearAnimationInstanceTime(inst), 0.5) {
		t.Errorf("after 0.5s: time %v looped %v", fns.LinearAnimationInstanceTime(inst), looped)
	}
	fx.ok("LinearAnimationInstanceApply", fns.LinearAnimationInstanceApply(inst, a, 1))
	var node abi.Node
	fx.ok("ArtboardNodeByName", fns.ArtboardNodeByName(a, abi.Str("root"), &node))
	if !near(fns.NodeX(node), 150) {
		t.Errorf("root x = %v, want 150", fns.NodeX(node))
	}
	fx.ok("LinearAnimationInstanceAdvance", fns.LinearAnimationInstanceAdvance(inst, 0.6, &looped))
	if !looped || !fns.LinearAnimationInstanceDidLoop(inst) || !near(fns.LinearAnimationInstanceTime(inst), 0.1) {
		t.Errorf("after wrap: time %v looped %v", fns.LinearAnimationInstanceTime(inst), looped)
	}
	fns.LinearAnimationInstanceSetTime(inst, 0)
	fx.ok("LinearAnimationInstanceApply", fns.LinearAnimationInstanceApply(inst, a, 1))
	if !near(fns.NodeX(node), 100) {
		t.Errorf("root x at t=0 = %v", fns.NodeX(node))
	}

	fx.ok("LinearAnimationApply", fns.LinearAnimationApply(anim, a, 0.5, 0.5))
	if !near(fns.NodeX(node), 125) {
		t.Errorf("half mix = %v, want 125", fns.NodeX(node))
	}
	fns.LinearAnimationInstanceDelete(inst)
	fx.noViolations()
}

func TestOneShotClamps(t *testing.T) {
	a := &animationDef{fps: 60, duration: 30, speed: 1}
	inst := newAnimInstance(a, nil)
	if !inst.advance(0.25) {
		t.Error("one-shot stopped early")
	}
	if inst.advance(1) {
		t.Error("one-shot kept going past its end")
	}
	if !near(inst.time, 0.5) {
		t.Errorf("time = %v, want 0.5", inst.time)
	}

	pp := newAnimInstance(&animationDef{fps: 10, duration: 10, speed: 1, loop: loopPingPong}, nil)
	pp.advance(1.25)
	if !pp.didLoop || !near(pp.time, 0.75) || pp.direction != -1 {
		t.Errorf("ping-pong: time %v dir %v looped %v", pp.time, pp.direction, pp.didLoop)
	}
}

func TestSample(t *testing.T) {
	frames := []FrameDoc{{Frame: 0, Value: 0}, {Frame: 10, Value: 100}, {Frame: 20, Value: 50}}
	tests := []struct {
		f    float32
		want float32
	}{
		{-5, 0},
		{5, 50},
		{10, 100},
		{15, 75},
		{40, 50},
	}
	for _, tt := range tests {
		if got := sample(frames, tt.f); !near(got, tt.want) {
			t.Errorf("sample(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}
