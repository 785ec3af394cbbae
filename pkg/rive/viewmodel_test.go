package rive

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
)

func (s *scene) viewModel(name string) *ViewModel {
	s.t.Helper()
	vm, err := s.file.ViewModel(name)
	if err != nil {
		s.t.Fatalf("ViewModel(%q): %v", name, err)
	}
	return vm
}

func (s *scene) hud() *ViewModelInstance {
	s.t.Helper()
	vm := s.viewModel("Hud")
	defer vm.Release()
	vmi, err := vm.DefaultInstance()
	if err != nil {
		s.t.Fatalf("DefaultInstance: %v", err)
	}
	return vmi
}

func (s *scene) item(name string) *ViewModelInstance {
	s.t.Helper()
	vm := s.viewModel("Item")
	defer vm.Release()
	vmi, err := vm.Instance(name)
	if err != nil {
		s.t.Fatalf("Instance(%q): %v", name, err)
	}
	return vmi
}

func labels(t *testing.T, vmi *ViewModelInstance) []string {
	t.Helper()
	items, err := vmi.List("items")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var out []string
	for _, it := range items {
		l, err := it.String("label")
		if err != nil {
			t.Fatalf("label: %v", err)
		}
		out = append(out, l)
		it.Release()
	}
	return out
}

func TestViewModelMetadata(t *testing.T) {
	s := newScene(t)
	if n := s.file.ViewModelCount(); n != 2 {
		t.Errorf("ViewModelCount = %d", n)
	}
	vm := s.viewModel("Hud")
	if vm.Name() != "Hud" || vm.PropertyCount() != 10 || vm.InstanceCount() != 2 {
		t.Errorf("Hud = %q with %d properties and %d instances", vm.Name(), vm.PropertyCount(), vm.InstanceCount())
	}
	if name, err := vm.InstanceNameAt(1); err != nil || name != "Quiet" {
		t.Errorf("InstanceNameAt(1) = %q, %v", name, err)
	}
	props, err := vm.Properties()
	if err != nil {
		t.Fatal(err)
	}
	if len(props) != 10 {
		t.Fatalf("Properties = %d", len(props))
	}
	if props[4] != (PropertyInfo{Name: "mood", Type: abi.DataTypeEnum}) {
		t.Errorf("property 4 = %+v", props[4])
	}
	if _, err := vm.PropertyAt(10); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("PropertyAt(10) = %v", err)
	}

	a := s.artboard("main")
	def, err := s.file.DefaultArtboardViewModel(a)
	if err != nil {
		t.Fatal(err)
	}
	if def.Name() != "Hud" {
		t.Errorf("artboard view model = %q", def.Name())
	}

	enums, err := s.file.Enums()
	if err != nil {
		t.Fatal(err)
	}
	if len(enums) != 1 || enums[0].Name != "mood" || !slices.Equal(enums[0].Values, []string{"calm", "busy", "sleepy"}) {
		t.Errorf("Enums = %+v", enums)
	}

	def.Release()
	a.Release()
	vm.Release()
	s.close()
}

func TestValueGetSet(t *testing.T) {
	s := newScene(t)
	vmi := s.hud()

	tests := []struct {
		path string
		typ  DataType
		want Value
		set  Value
		then Value
	}{
		{"score", abi.DataTypeNumber, Number(3), Number(7), Number(7)},
		{"title", abi.DataTypeString, String("Hello"), String("Bye"), String("Bye")},
		{"visible", abi.DataTypeBoolean, Boolean(true), Boolean(false), Boolean(false)},
		{"tint", abi.DataTypeColor, Color(-0x10000), Color(0x7f00ff00), Color(0x7f00ff00)},
		{"mood", abi.DataTypeEnum, Enum("calm"), EnumIndex(2), Enum("sleepy")},
		{"mood", abi.DataTypeEnum, Enum("sleepy"), Enum("busy"), Enum("busy")},
	}
	for _, tt := range tests {
		got, err := vmi.Get(tt.path, tt.typ)
		if err != nil || got != tt.want {
			t.Errorf("Get(%s) = %v, %v; want %v", tt.path, got, err, tt.want)
			continue
		}
		if err := vmi.Set(tt.path, tt.set); err != nil {
			t.Errorf("Set(%s, %v): %v", tt.path, tt.set, err)
			continue
		}
		if got, _ := vmi.Get(tt.path, tt.typ); got != tt.then {
			t.Errorf("after Set(%s) = %v, want %v", tt.path, got, tt.then)
		}
	}

	if got, err := vmi.Get("items", abi.DataTypeList); err != nil || got != List(2) {
		t.Errorf("Get(items) = %v, %v", got, err)
	}
	if err := vmi.Set("pulse", Trigger{}); err != nil {
		t.Errorf("fire: %v", err)
	}
	if changed, err := vmi.HasChanged("pulse"); err != nil || !changed {
		t.Errorf("HasChanged(pulse) = %v, %v", changed, err)
	}
	if err := vmi.ClearChanges("pulse"); err != nil {
		t.Fatal(err)
	}
	if changed, _ := vmi.HasChanged("pulse"); changed {
		t.Error("ClearChanges left pulse marked")
	}

	failures := []struct {
		name string
		err  error
		want error
	}{
		{"mistyped get", func() error { _, err := vmi.Get("title", abi.DataTypeNumber); return err }(), ErrNotFound},
		{"missing path", vmi.Set("nope", Number(1)), ErrNotFound},
		{"trigger get", func() error { _, err := vmi.Get("pulse", abi.DataTypeTrigger); return err }(), ErrUnsupported},
		{"list set", vmi.Set("items", List(3)), ErrUnsupported},
		{"nil set", vmi.Set("score", nil), ErrInvalidArgument},
		{"enum index range", vmi.Set("mood", EnumIndex(3)), ErrOutOfRange},
	}
	for _, f := range failures {
		if !errors.Is(f.err, f.want) {
			t.Errorf("%s: err = %v, want %v", f.name, f.err, f.want)
		}
	}

	vmi.Release()
	if _, err := vmi.Number("score"); !errors.Is(err, ErrNull) {
		t.Errorf("Number after Release = %v", err)
	}
	s.close()
}

func TestNestedInstances(t *testing.T) {
	s := newScene(t)
	vmi := s.hud()

	v, err := vmi.Get("item", abi.DataTypeViewModel)
	if err != nil {
		t.Fatal(err)
	}
	nested := v.(Nested).Instance
	if l, _ := nested.String("label"); l != "two" {
		t.Errorf("item label = %q", l)
	}
	if err := nested.SetNumber("weight", 9); err != nil {
		t.Fatal(err)
	}
	if w, _ := vmi.Number("item.weight"); w != 9 {
		t.Errorf("write through nested instance not visible: %v", w)
	}
	nested.Release()

	third := s.item("third")
	if err := vmi.Set("item", Nested{Instance: third}); err != nil {
		t.Fatal(err)
	}
	if l, _ := vmi.String("item/label"); l != "three" {
		t.Errorf("after replace label = %q", l)
	}
	other := s.hud()
	if err := vmi.ReplaceViewModel("item", other); !errors.Is(err, ErrNotFound) {
		t.Errorf("replace with wrong view model = %v", err)
	}
	if err := vmi.ReplaceViewModel("item", nil); !errors.Is(err, ErrNull) {
		t.Errorf("replace with nil = %v", err)
	}

	other.Release()
	third.Release()
	vmi.Release()
	s.close()
}

func TestListEditing(t *testing.T) {
	s := newScene(t)
	vmi := s.hud()
	third := s.item("third")

	if got := labels(t, vmi); !slices.Equal(got, []string{"one", "two"}) {
		t.Fatalf("items = %v", got)
	}
	if err := vmi.ListAdd("items", third); err != nil {
		t.Fatal(err)
	}
	if err := vmi.ListSwap("items", 0, 2); err != nil {
		t.Fatal(err)
	}
	if got := labels(t, vmi); !slices.Equal(got, []string{"three", "two", "one"}) {
		t.Errorf("after swap = %v", got)
	}
	if err := vmi.ListRemove("items", third); err != nil {
		t.Fatal(err)
	}
	added, err := vmi.ListAddAt("items", third, 9)
	if err != nil || !added {
		t.Errorf("ListAddAt past end = %v, %v", added, err)
	}
	if got := labels(t, vmi); !slices.Equal(got, []string{"two", "one", "three"}) {
		t.Errorf("after append past end = %v", got)
	}
	if err := vmi.ListRemoveAt("items", 2); err != nil {
		t.Fatal(err)
	}
	if added, err := vmi.ListAddAt("items", third, 1); err != nil || !added {
		t.Errorf("ListAddAt(1) = %v, %v", added, err)
	}
	if got := labels(t, vmi); !slices.Equal(got, []string{"two", "three", "one"}) {
		t.Errorf("after insert = %v", got)
	}
	if err := vmi.ListRemoveAt("items", 0); err != nil {
		t.Fatal(err)
	}
	if err := vmi.ListRemoveAt("items", 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ListRemoveAt(5) = %v", err)
	}
	if _, err := vmi.ListAt("items", -1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ListAt(-1) = %v", err)
	}
	if n, _ := vmi.ListSize("items"); n != 2 {
		t.Errorf("ListSize = %d", n)
	}

	third.Release()
	if err := vmi.ListAdd("items", third); !errors.Is(err, ErrNull) {
		t.Errorf("ListAdd of a released instance = %v", err)
	}
	vmi.Release()
	s.close()
}

func TestImageAndArtboardProperties(t *testing.T) {
	s := newScene(t)
	vmi := s.hud()

	v, err := vmi.Get("logo", abi.DataTypeImage)
	if err != nil {
		t.Fatal(err)
	}
	img := v.(Image).Image
	if img == nil {
		t.Fatal("logo image is not set")
	}
	if err := vmi.Set("logo", Image{}); err != nil {
		t.Fatal(err)
	}
	if got, err := vmi.Image("logo"); err != nil || got != nil {
		t.Errorf("cleared image = %v, %v", got, err)
	}
	if err := vmi.SetImage("logo", img); err != nil {
		t.Fatal(err)
	}
	img.Release()
	again, err := vmi.Image("logo")
	if err != nil || again == nil {
		t.Fatalf("image after releasing the setter's wrapper = %v, %v", again, err)
	}
	again.Release()

	badge, err := s.file.BindableArtboard("badge")
	if err != nil {
		t.Fatal(err)
	}
	if err := vmi.Set("badge", ArtboardRef{Artboard: badge}); err != nil {
		t.Errorf("set artboard: %v", err)
	}
	if err := vmi.SetArtboard("logo", badge); !errors.Is(err, ErrNotFound) {
		t.Errorf("artboard into image property = %v", err)
	}
	badge.Release()
	if err := vmi.SetArtboard("badge", badge); !errors.Is(err, ErrNull) {
		t.Errorf("released bindable artboard = %v", err)
	}

	vmi.Release()
	s.close()
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1.5), "1.5"},
		{String("hi"), "hi"},
		{Color(-0x10000), "#ffff0000"},
		{Trigger{}, "trigger"},
		{Nested{}, "view_model(nil)"},
		{Image{}, "image(none)"},
		{List(3), "list[3]"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
