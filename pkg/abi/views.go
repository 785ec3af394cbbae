package abi

import "unsafe"

// Str borrows s for the duration of one boundary call. The caller must keep
// s reachable until the call returns.
func Str(s string) StrView {
	if len(s) == 0 {
		return StrView{}
	}
	return StrView{Ptr: unsafe.Pointer(unsafe.StringData(s)), Len: uintptr(len(s))}
}

// Bytes borrows b for the duration of one boundary call.
func Bytes(b []byte) BytesView {
	if len(b) == 0 {
		return BytesView{}
	}
	return BytesView{Ptr: unsafe.Pointer(unsafe.SliceData(b)), Len: uintptr(len(b))}
}

// Empty reports whether v carries no bytes.
func (v StrView) Empty() bool { return v.Ptr == nil || v.Len == 0 }

// Unsafe aliases the viewed memory. The slice is only valid while the
// producer keeps the memory alive; copy before retaining it.
func (v StrView) Unsafe() []byte {
	if v.Empty() {
		return nil
	}
	return unsafe.Slice((*byte)(v.Ptr), v.Len)
}

// Empty reports whether v carries no bytes.
func (v BytesView) Empty() bool { return v.Ptr == nil || v.Len == 0 }

// Unsafe aliases the viewed memory. See [StrView.Unsafe].
func (v BytesView) Unsafe() []byte {
	if v.Empty() {
		return nil
	}
	return unsafe.Slice((*byte)(v.Ptr), v.Len)
}
