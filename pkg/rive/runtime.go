// Package rive is an ownership-safe handle layer over the native
// vector-animation runtime.
//
// Every native object is reached through a wrapper that owns exactly one
// reference (Factory, File, Artboard, BindableArtboard, ViewModel,
// ViewModelInstance, RenderImage) or the single destructor right
// (LinearAnimationInstance, StateMachineInstance, FlattenedPath,
// AudioSource, Font and the GPU renderers). Shared wrappers alias: Clone
// returns a second wrapper for the same native object and each wrapper is
// released once with Release. Unique wrappers are freed with Destroy.
// Calling either twice is a no-op; calling methods afterwards yields
// ErrNull or a zero value.
//
// Accessors such as Node, Bone, SmiInput and LinearAnimation do not own
// anything. They stay usable while the wrapper that produced them is alive
// and return ErrNull afterwards.
//
// Object graphs are not safe for concurrent use. Serialize access to one
// File and everything derived from it.
package rive

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/go-drift/rive/pkg/abi"
)

// Re-exported boundary value types.
type (
	Vec2      = abi.Vec2
	Mat2D     = abi.Mat2D
	AABB      = abi.AABB
	Fit       = abi.Fit
	Alignment = abi.Alignment
	DataType  = abi.DataType
)

// Runtime binds wrappers to one provider function table.
type Runtime struct {
	fns    *abi.Functions
	live   [kindCount]atomic.Int64
	leaked [kindCount]atomic.Int64
}

// NewRuntime validates fns and checks that the provider speaks
// [abi.Version].
func NewRuntime(fns *abi.Functions) (*Runtime, error) {
	if err := fns.Validate(); err != nil {
		return nil, fmt.Errorf("rive: invalid provider: %w", err)
	}
	if v := fns.ABIVersion(); v != abi.Version {
		return nil, &VersionError{Got: v, Want: abi.Version}
	}
	return &Runtime{fns: fns}, nil
}

// VersionError reports a provider built against another ABI revision.
type VersionError struct {
	Got, Want uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("rive: provider ABI version %d, want %d", e.Got, e.Want)
}

// ABIVersion returns the version reported by the provider.
func (rt *Runtime) ABIVersion() uint32 {
	return rt.fns.ABIVersion()
}

// LiveHandles returns the number of unreleased wrappers per handle kind.
// Kinds with no live wrappers are omitted.
func (rt *Runtime) LiveHandles() map[string]int64 {
	out := make(map[string]int64)
	for k := kind(0); k < kindCount; k++ {
		if n := rt.live[k].Load(); n != 0 {
			out[k.String()] = n
		}
	}
	return out
}

// Leaked returns how many wrappers per kind were garbage collected without
// being released.
func (rt *Runtime) Leaked() map[string]int64 {
	out := make(map[string]int64)
	for k := kind(0); k < kindCount; k++ {
		if n := rt.leaked[k].Load(); n != 0 {
			out[k.String()] = n
		}
	}
	return out
}

// NewFactory returns the default factory. Every provider has one, so a null
// result is reported as a contract violation and returned as ErrNull.
func (rt *Runtime) NewFactory() (*Factory, error) {
	raw, err := adopt("Runtime.NewFactory", abi.StatusOK, rt.fns.FactoryDefault())
	if err != nil {
		return nil, err
	}
	return newFactory(rt, raw), nil
}

// NewWebGL2Factory returns a factory for the WebGL2 backend. Builds without
// that backend return ErrUnsupported.
func (rt *Runtime) NewWebGL2Factory() (*Factory, error) {
	return rt.factory("Runtime.NewWebGL2Factory", rt.fns.FactoryWebGL2)
}

// NewWebGPUFactory returns a factory for the WebGPU backend. Builds without
// that backend return ErrUnsupported.
func (rt *Runtime) NewWebGPUFactory() (*Factory, error) {
	return rt.factory("Runtime.NewWebGPUFactory", rt.fns.FactoryWebGPU)
}

func (rt *Runtime) factory(op string, ctor func() abi.Factory) (*Factory, error) {
	raw := ctor()
	if raw == 0 {
		return nil, &Error{Op: op, Status: abi.StatusUnsupported}
	}
	return newFactory(rt, raw), nil
}

// ComputeAlignment returns the transform that places source inside
// destination under fit and alignment.
func (rt *Runtime) ComputeAlignment(fit Fit, alignment Alignment, source, destination AABB, scaleFactor float32) (Mat2D, error) {
	var out Mat2D
	st := rt.fns.ComputeAlignment(fit, alignment, &source, &destination, scaleFactor, &out)
	if err := check("Runtime.ComputeAlignment", st); err != nil {
		return Mat2D{}, err
	}
	return out, nil
}

// MapXY applies m to p.
func (rt *Runtime) MapXY(m Mat2D, p Vec2) (Vec2, error) {
	var out Vec2
	if err := check("Runtime.MapXY", rt.fns.MapXY(&m, p, &out)); err != nil {
		return Vec2{}, err
	}
	return out, nil
}

// DecodeImage decodes an encoded image into a render image.
func (rt *Runtime) DecodeImage(data []byte) (*RenderImage, error) {
	const op = "Runtime.DecodeImage"
	var out abi.RenderImage
	st := rt.fns.DecodeWebGL2Image(abi.Bytes(data), &out)
	runtime.KeepAlive(data)
	raw, err := adopt(op, st, out)
	if err != nil {
		return nil, err
	}
	return newRenderImage(rt, raw), nil
}

// FileAssetFromPointer adopts a host-side asset pointer as a FileAsset.
// The host guarantees the asset outlives every use of the result.
func (rt *Runtime) FileAssetFromPointer(p uintptr) (*FileAsset, error) {
	return rt.assetFromPointer("Runtime.FileAssetFromPointer", rt.fns.PtrToFileAsset, p)
}

// AudioAssetFromPointer adopts a host-side audio asset pointer.
func (rt *Runtime) AudioAssetFromPointer(p uintptr) (*FileAsset, error) {
	return rt.assetFromPointer("Runtime.AudioAssetFromPointer", rt.fns.PtrToAudioAsset, p)
}

// ImageAssetFromPointer adopts a host-side image asset pointer.
func (rt *Runtime) ImageAssetFromPointer(p uintptr) (*FileAsset, error) {
	return rt.assetFromPointer("Runtime.ImageAssetFromPointer", rt.fns.PtrToImageAsset, p)
}

// FontAssetFromPointer adopts a host-side font asset pointer.
func (rt *Runtime) FontAssetFromPointer(p uintptr) (*FileAsset, error) {
	return rt.assetFromPointer("Runtime.FontAssetFromPointer", rt.fns.PtrToFontAsset, p)
}

func (rt *Runtime) assetFromPointer(op string, conv func(uintptr) abi.FileAsset, p uintptr) (*FileAsset, error) {
	raw := conv(p)
	if raw == 0 {
		return nil, nullError(op)
	}
	return &FileAsset{rt: rt, raw: raw}, nil
}
