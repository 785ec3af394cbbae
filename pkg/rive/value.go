package rive

import (
	"fmt"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/graphics"
)

// Value is one typed view-model property value. The concrete types are
// Number, String, Boolean, Color, Enum, EnumIndex, Trigger, Nested,
// ArtboardRef, Image and List.
type Value interface {
	DataType() DataType
	isValue()
}

type (
	Number    float32
	String    string
	Boolean   bool
	Color     int32
	Enum      string
	EnumIndex uint32
	// Trigger carries no payload; setting it fires the trigger.
	Trigger struct{}
	// Nested wraps a nested instance. Values returned by Get own a
	// reference that the caller releases.
	Nested struct{ Instance *ViewModelInstance }
	// ArtboardRef is write-only.
	ArtboardRef struct{ Artboard *BindableArtboard }
	// Image holds the image at a path. A nil Image clears the property on
	// Set and reports an empty property on Get.
	Image struct{ Image *RenderImage }
	// List reports the length of a list property. It is read-only.
	List int
)

func (Number) DataType() DataType      { return abi.DataTypeNumber }
func (String) DataType() DataType      { return abi.DataTypeString }
func (Boolean) DataType() DataType     { return abi.DataTypeBoolean }
func (Color) DataType() DataType       { return abi.DataTypeColor }
func (Enum) DataType() DataType        { return abi.DataTypeEnum }
func (EnumIndex) DataType() DataType   { return abi.DataTypeEnum }
func (Trigger) DataType() DataType     { return abi.DataTypeTrigger }
func (Nested) DataType() DataType      { return abi.DataTypeViewModel }
func (ArtboardRef) DataType() DataType { return abi.DataTypeArtboard }
func (Image) DataType() DataType       { return abi.DataTypeImage }
func (List) DataType() DataType        { return abi.DataTypeList }

func (Number) isValue()      {}
func (String) isValue()      {}
func (Boolean) isValue()     {}
func (Color) isValue()       {}
func (Enum) isValue()        {}
func (EnumIndex) isValue()   {}
func (Trigger) isValue()     {}
func (Nested) isValue()      {}
func (ArtboardRef) isValue() {}
func (Image) isValue()       {}
func (List) isValue()        {}

// Get reads the property at path as type t. Enums read by name.
func (v *ViewModelInstance) Get(path string, t DataType) (Value, error) {
	switch t {
	case abi.DataTypeNumber:
		n, err := v.Number(path)
		return Number(n), err
	case abi.DataTypeString:
		s, err := v.String(path)
		return String(s), err
	case abi.DataTypeBoolean:
		b, err := v.Boolean(path)
		return Boolean(b), err
	case abi.DataTypeColor:
		c, err := v.Color(path)
		return Color(c), err
	case abi.DataTypeEnum:
		e, err := v.Enum(path)
		return Enum(e), err
	case abi.DataTypeViewModel:
		n, err := v.ViewModel(path)
		if err != nil {
			return nil, err
		}
		return Nested{Instance: n}, nil
	case abi.DataTypeList:
		n, err := v.ListSize(path)
		return List(n), err
	case abi.DataTypeImage:
		img, err := v.Image(path)
		if err != nil {
			return nil, err
		}
		return Image{Image: img}, nil
	}
	return nil, &Error{Op: "ViewModelInstance.Get", Status: abi.StatusUnsupported}
}

// Set writes value at path through the accessor matching its type.
func (v *ViewModelInstance) Set(path string, value Value) error {
	switch x := value.(type) {
	case Number:
		return v.SetNumber(path, float32(x))
	case String:
		return v.SetString(path, string(x))
	case Boolean:
		return v.SetBoolean(path, bool(x))
	case Color:
		return v.SetColor(path, int32(x))
	case Enum:
		return v.SetEnum(path, string(x))
	case EnumIndex:
		return v.SetEnumIndex(path, uint32(x))
	case Trigger:
		return v.FireTrigger(path)
	case Nested:
		return v.ReplaceViewModel(path, x.Instance)
	case ArtboardRef:
		return v.SetArtboard(path, x.Artboard)
	case Image:
		return v.SetImage(path, x.Image)
	case nil:
		return &Error{Op: "ViewModelInstance.Set", Status: abi.StatusInvalidArgument}
	}
	return &Error{Op: "ViewModelInstance.Set", Status: abi.StatusUnsupported}
}

// ARGB returns c as a graphics color.
func (c Color) ARGB() graphics.Color { return graphics.FromPacked(int32(c)) }

// ColorOf converts a graphics color to a view-model color value.
func ColorOf(c graphics.Color) Color { return Color(c.Packed()) }

// FormatValue renders v for diagnostics.
func FormatValue(v Value) string {
	switch x := v.(type) {
	case Color:
		return fmt.Sprintf("#%08x", uint32(x))
	case Trigger:
		return "trigger"
	case Nested:
		if x.Instance == nil {
			return "view_model(nil)"
		}
		return "view_model"
	case ArtboardRef:
		return "artboard"
	case Image:
		if x.Image == nil {
			return "image(none)"
		}
		return "image"
	case List:
		return fmt.Sprintf("list[%d]", int(x))
	case nil:
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}
