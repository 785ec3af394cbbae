package abi

import "unsafe"

// Opaque handles. Each native object kind gets its own type so a handle of
// one kind cannot be passed where another is expected. Zero is null.
type (
	Factory                 uintptr
	File                    uintptr
	Artboard                uintptr
	BindableArtboard        uintptr
	ViewModel               uintptr
	ViewModelInstance       uintptr
	TransformComponent      uintptr
	Node                    uintptr
	Bone                    uintptr
	RootBone                uintptr
	TextValueRun            uintptr
	FlattenedPath           uintptr
	Renderer                uintptr
	WebGL2Renderer          uintptr
	WebGPURenderer          uintptr
	LinearAnimation         uintptr
	LinearAnimationInstance uintptr
	StateMachine            uintptr
	StateMachineInstance    uintptr
	SmiInput                uintptr
	SmiBool                 uintptr
	SmiNumber               uintptr
	SmiTrigger              uintptr
	FileAsset               uintptr
	AudioSource             uintptr
	Font                    uintptr
	RenderImage             uintptr
)

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float32
}

// Mat2D is a 2x3 affine matrix. A point maps as
// x' = XX*x + YX*y + TX, y' = XY*x + YY*y + TY.
type Mat2D struct {
	XX, XY, YX, YY, TX, TY float32
}

// Identity is the identity transform.
var Identity = Mat2D{XX: 1, YY: 1}

// AABB is an axis-aligned box.
type AABB struct {
	MinX, MinY, MaxX, MaxY float32
}

// Width returns MaxX - MinX.
func (b AABB) Width() float32 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b AABB) Height() float32 { return b.MaxY - b.MinY }

// Contains reports whether p lies inside b, edges included.
func (b AABB) Contains(p Vec2) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// StrView borrows len bytes of text. There is no terminator and no
// ownership transfer.
type StrView struct {
	Ptr unsafe.Pointer
	Len uintptr
}

// BytesView borrows len bytes of binary data.
type BytesView struct {
	Ptr unsafe.Pointer
	Len uintptr
}

// PropertyInfo describes one view-model property.
type PropertyInfo struct {
	Name     StrView
	DataType DataType
}

// EventInfo describes an event. PropertyCount is authoritative for the
// follow-up property queries.
type EventInfo struct {
	Name          StrView
	Type          uint32
	HasURL        bool
	URL           StrView
	HasTarget     bool
	Target        StrView
	PropertyCount uintptr
}

// EventPropertyInfo describes one custom event property. ValueType selects
// which payload field is meaningful.
type EventPropertyInfo struct {
	Name        StrView
	ValueType   EventPropertyType
	BoolValue   bool
	NumberValue float32
	StringValue StrView
}

// AssetLoadFunc is invoked once per asset while a file loads. Returning
// true tells the runtime the asset was fully handled and suppresses its
// default decode. inBand is empty for assets hosted out of band.
type AssetLoadFunc func(userData uintptr, asset FileAsset, inBand BytesView, factory Factory) bool

// AssetLoaderCallbacks pairs a loader with its opaque user data.
type AssetLoaderCallbacks struct {
	LoadContents AssetLoadFunc
	UserData     uintptr
}
