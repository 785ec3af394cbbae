package abi

import "strconv"

// Fit selects how content is scaled into a frame.
type Fit int32

const (
	FitFill      Fit = 0
	FitContain   Fit = 1
	FitCover     Fit = 2
	FitFitWidth  Fit = 3
	FitFitHeight Fit = 4
	FitNone      Fit = 5
	FitScaleDown Fit = 6
	FitLayout    Fit = 7
	fitSentinel  Fit = 8
)

var fitNames = [...]string{"fill", "contain", "cover", "fitWidth", "fitHeight", "none", "scaleDown", "layout"}

// Valid reports whether f is one of the defined fit modes.
func (f Fit) Valid() bool { return f >= FitFill && f < fitSentinel }

func (f Fit) String() string {
	if f.Valid() {
		return fitNames[f]
	}
	return "fit(" + strconv.Itoa(int(f)) + ")"
}

// ParseFit returns the fit mode named s.
func ParseFit(s string) (Fit, bool) {
	for i, name := range fitNames {
		if name == s {
			return Fit(i), true
		}
	}
	return 0, false
}

// Alignment anchors content on a 3x3 grid.
type Alignment int32

const (
	AlignmentTopLeft      Alignment = 0
	AlignmentTopCenter    Alignment = 1
	AlignmentTopRight     Alignment = 2
	AlignmentCenterLeft   Alignment = 3
	AlignmentCenter       Alignment = 4
	AlignmentCenterRight  Alignment = 5
	AlignmentBottomLeft   Alignment = 6
	AlignmentBottomCenter Alignment = 7
	AlignmentBottomRight  Alignment = 8
	alignmentSentinel     Alignment = 9
)

var alignmentNames = [...]string{
	"topLeft", "topCenter", "topRight",
	"centerLeft", "center", "centerRight",
	"bottomLeft", "bottomCenter", "bottomRight",
}

// Valid reports whether a is one of the nine anchors.
func (a Alignment) Valid() bool { return a >= AlignmentTopLeft && a < alignmentSentinel }

// Anchor returns the normalized anchor position in [-1, 1] on each axis.
func (a Alignment) Anchor() (x, y float32) {
	if !a.Valid() {
		return 0, 0
	}
	return float32(int(a)%3 - 1), float32(int(a)/3 - 1)
}

func (a Alignment) String() string {
	if a.Valid() {
		return alignmentNames[a]
	}
	return "alignment(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlignment returns the alignment named s.
func ParseAlignment(s string) (Alignment, bool) {
	for i, name := range alignmentNames {
		if name == s {
			return Alignment(i), true
		}
	}
	return 0, false
}

// DataType tags view-model properties.
type DataType int32

const (
	DataTypeNone      DataType = 0
	DataTypeString    DataType = 1
	DataTypeNumber    DataType = 2
	DataTypeBoolean   DataType = 3
	DataTypeColor     DataType = 4
	DataTypeList      DataType = 5
	DataTypeEnum      DataType = 6
	DataTypeTrigger   DataType = 7
	DataTypeViewModel DataType = 8
	DataTypeInteger   DataType = 9
	DataTypeListIndex DataType = 10
	DataTypeImage     DataType = 11
	DataTypeArtboard  DataType = 12
)

var dataTypeNames = [...]string{
	"none", "string", "number", "boolean", "color", "list", "enum",
	"trigger", "viewModel", "integer", "listIndex", "image", "artboard",
}

func (t DataType) String() string {
	if t >= 0 && int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return "dataType(" + strconv.Itoa(int(t)) + ")"
}

// ParseDataType returns the data type named s.
func ParseDataType(s string) (DataType, bool) {
	for i, name := range dataTypeNames {
		if name == s {
			return DataType(i), true
		}
	}
	return 0, false
}

// EventPropertyType tags the payload of an event property.
type EventPropertyType int32

const (
	EventPropertyBool   EventPropertyType = 1
	EventPropertyNumber EventPropertyType = 2
	EventPropertyString EventPropertyType = 3
)

func (t EventPropertyType) String() string {
	switch t {
	case EventPropertyBool:
		return "bool"
	case EventPropertyNumber:
		return "number"
	case EventPropertyString:
		return "string"
	default:
		return "eventProperty(" + strconv.Itoa(int(t)) + ")"
	}
}

// SmiInputType identifies a state machine input. The values mirror the
// runtime's core type keys and are not contiguous.
type SmiInputType int32

const (
	SmiInputNumber  SmiInputType = 56
	SmiInputTrigger SmiInputType = 58
	SmiInputBool    SmiInputType = 59
)

func (t SmiInputType) String() string {
	switch t {
	case SmiInputBool:
		return "bool"
	case SmiInputNumber:
		return "number"
	case SmiInputTrigger:
		return "trigger"
	default:
		return "input(" + strconv.Itoa(int(t)) + ")"
	}
}
