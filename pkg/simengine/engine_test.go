package simengine

import (
	"os"
	"strings"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
)

type fixture struct {
	t       *testing.T
	e       *Engine
	fns     *abi.Functions
	factory abi.Factory
	file    abi.File
}

func loadScene(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/scene.yaml")
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	e := New()
	fx := &fixture{t: t, e: e, fns: e.Functions()}
	fx.factory = fx.fns.FactoryDefault()
	if fx.factory == 0 {
		t.Fatal("default factory is null")
	}
	data := loadScene(t)
	if st := fx.fns.LoadFile(fx.factory, abi.Bytes(data), &fx.file); st != abi.StatusOK {
		t.Fatalf("LoadFile = %v", st)
	}
	return fx
}

func (fx *fixture) ok(what string, st abi.Status) {
	fx.t.Helper()
	if st != abi.StatusOK {
		fx.t.Fatalf("%s = %v, want ok", what, st)
	}
}

func (fx *fixture) artboard(name string) abi.Artboard {
	fx.t.Helper()
	var a abi.Artboard
	fx.ok("FileArtboardByName("+name+")", fx.fns.FileArtboardByName(fx.file, abi.Str(name), &a))
	return a
}

func (fx *fixture) noViolations() {
	fx.t.Helper()
	for _, v := range fx.e.Stats().Violations {
		fx.t.Errorf("unexpected violation: %v", v)
	}
}

func goString(v abi.StrView) string { return string(v.Unsafe()) }

func TestParseRejectsMalformedDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "  \n", "empty document"},
		{"format", "format: other\nartboards: [{name: a}]", "format"},
		{"unknown key", "format: rive-sim/1\nartboards: [{name: a, colour: red}]", "colour"},
		{"no artboards", "format: rive-sim/1\nartboards: []", "no artboards"},
		{"duplicate", "format: rive-sim/1\nartboards: [{name: a}, {name: a}]", "duplicate artboard"},
		{"default", "format: rive-sim/1\ndefault_artboard: b\nartboards: [{name: a}]", "default artboard"},
		{"parent order", "format: rive-sim/1\nartboards: [{name: a, components: [{name: c, parent: p}, {name: p}]}]", "declared before"},
		{"bad color", "format: rive-sim/1\nartboards: [{name: a, paths: [{name: p, fill: red, vertices: []}]}]", "bad color"},
		{"self nesting", "format: rive-sim/1\nartboards: [{name: a, nested: [{name: n, artboard: a}]}]", "bad artboard"},
		{
			"transition into entry",
			"format: rive-sim/1\nartboards: [{name: a, state_machines: [{name: s, transitions: [{from: any, to: entry}]}]}]",
			"bad transition",
		},
		{
			"enum property",
			"format: rive-sim/1\nartboards: [{name: a}]\nview_models: [{name: v, properties: [{name: p, type: enum, enum: nope}]}]",
			"unknown enum",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse succeeded")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestDocumentMarshalRoundTrip(t *testing.T) {
	doc, err := Parse(loadScene(t))
	if err != nil {
		t.Fatal(err)
	}
	out, err := doc.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(out)
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if len(again.Artboards) != 2 || again.Artboards[0].StateMachines[0].Name != "ui" {
		t.Errorf("round trip lost artboards: %+v", again.Artboards)
	}
}

func TestCompileRejectsBadValues(t *testing.T) {
	doc := `format: rive-sim/1
artboards: [{name: a}]
enums: [{name: e, values: [x, y]}]
view_models:
  - name: v
    properties: [{name: p, type: enum, enum: e}]
    instances: [{name: i, values: {p: z}}]
`
	e := New()
	fns := e.Functions()
	var f abi.File
	if st := fns.LoadFile(fns.FactoryDefault(), abi.Bytes([]byte(doc)), &f); st != abi.StatusDecodeError {
		t.Errorf("LoadFile = %v, want decode error", st)
	}
}

func TestLoadFileStatuses(t *testing.T) {
	e := New()
	fns := e.Functions()
	factory := fns.FactoryDefault()
	data := loadScene(t)

	var out abi.File
	tests := []struct {
		name    string
		factory abi.Factory
		bytes   abi.BytesView
		out     *abi.File
		want    abi.Status
	}{
		{"null out", factory, abi.Bytes(data), nil, abi.StatusNull},
		{"null factory", 0, abi.Bytes(data), &out, abi.StatusNull},
		{"null bytes with length", factory, abi.BytesView{Len: 4}, &out, abi.StatusInvalidArgument},
		{"garbage", factory, abi.Bytes([]byte("\x00\x01rive")), &out, abi.StatusDecodeError},
		{"empty", factory, abi.BytesView{}, &out, abi.StatusDecodeError},
		{"scene", factory, abi.Bytes(data), &out, abi.StatusOK},
	}
	for _, tt := range tests {
		out = 0xdead
		st := fns.LoadFile(tt.factory, tt.bytes, tt.out)
		if st != tt.want {
			t.Errorf("%s: status %v, want %v", tt.name, st, tt.want)
		}
		if tt.out != nil && st != abi.StatusOK && out != 0 {
			t.Errorf("%s: out not cleared on failure", tt.name)
		}
	}
	if out == 0 {
		t.Fatal("successful load left out null")
	}
	if n := fns.FileArtboardCount(out); n != 2 {
		t.Errorf("FileArtboardCount = %d, want 2", n)
	}
}

func TestOwnershipTraffic(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns

	s := fx.e.Stats()
	if s.Live[KindFactory] != 1 || s.Live[KindFile] != 1 {
		t.Fatalf("live after load = %v", s.Live)
	}
	if s.DefaultDecodes != 2 {
		t.Errorf("DefaultDecodes = %d, want 2 (image and audio)", s.DefaultDecodes)
	}

	a := fx.artboard("main")
	fns.ArtboardRef(a)
	fns.ArtboardUnref(a)
	if fx.e.Stats().Live[KindArtboard] != 1 {
		t.Fatal("artboard freed while a reference remained")
	}
	fns.ArtboardUnref(a)
	fns.FileUnref(fx.file)
	fns.FactoryUnref(fx.factory)

	s = fx.e.Stats()
	if s.LiveTotal() != 0 {
		t.Errorf("live after release = %v", s.Live)
	}
	if s.Refs != 1 || s.Unrefs != 4 {
		t.Errorf("refs/unrefs = %d/%d, want 1/4", s.Refs, s.Unrefs)
	}
	fx.noViolations()
}

func TestStaleHandlesAreViolations(t *testing.T) {
	fx := newFixture(t)
	a := fx.artboard("main")
	var anim abi.LinearAnimation
	fx.ok("ArtboardAnimationByIndex", fx.fns.ArtboardAnimationByIndex(a, 0, &anim))
	fx.fns.ArtboardUnref(a)

	if got := fx.fns.LinearAnimationDuration(anim); got != 0 {
		t.Errorf("duration through a freed accessor = %d", got)
	}
	fx.fns.ArtboardUnref(a)

	v := fx.e.Stats().Violations
	if len(v) != 2 {
		t.Fatalf("violations = %v, want 2", v)
	}
	if v[0].Op != "linear_animation_duration" || v[0].Want != KindLinearAnimation {
		t.Errorf("first violation = %+v", v[0])
	}
	if v[1].Op != "artboard_unref" {
		t.Errorf("second violation = %+v", v[1])
	}
}

func TestMistypedHandleIsViolation(t *testing.T) {
	fx := newFixture(t)
	var out abi.Artboard
	if st := fx.fns.FileArtboardDefault(abi.File(fx.factory), &out); st != abi.StatusNull {
		t.Errorf("status = %v, want null", st)
	}
	v := fx.e.Stats().Violations
	if len(v) != 1 || !strings.Contains(v[0].Reason, "factory") {
		t.Errorf("violations = %v", v)
	}
}

func TestNullOutputs(t *testing.T) {
	fx := newFixture(t)
	fx.e.NullOutputs(true)

	var a abi.Artboard = 1
	if st := fx.fns.FileArtboardDefault(fx.file, &a); st != abi.StatusOK || a != 0 {
		t.Errorf("FileArtboardDefault = %v, %#x; want ok with null out", st, a)
	}
	var f abi.File = 1
	if st := fx.fns.LoadFile(fx.factory, abi.Bytes(loadScene(t)), &f); st != abi.StatusOK || f != 0 {
		t.Errorf("LoadFile = %v, %#x; want ok with null out", st, f)
	}

	fx.e.NullOutputs(false)
	if st := fx.fns.FileArtboardDefault(fx.file, &a); st != abi.StatusOK || a == 0 {
		t.Errorf("FileArtboardDefault after reset = %v, %#x", st, a)
	}
}

func TestFunctionsTableIsComplete(t *testing.T) {
	if err := New().Functions().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestKindString(t *testing.T) {
	if KindViewModelInstance.String() != "view_model_instance" {
		t.Errorf("String() = %q", KindViewModelInstance.String())
	}
	if Kind(0).String() == "" {
		t.Error("unknown kind has an empty name")
	}
}
