// Package abi defines the stable boundary between Go and the native
// animation runtime: opaque handle kinds, fixed enumerations, plain-data
// structs with C layout, borrowed views and the function table every
// provider fills in.
//
// Nothing in this package owns native memory. Ownership rules live in
// package rive, which is the only intended caller of a [Functions] table.
package abi

import "strconv"

// Version is the ABI revision this module was written against.
const Version uint32 = 1

// Status is the result code returned by every fallible boundary call.
type Status int32

const (
	StatusOK              Status = 0
	StatusNull            Status = 1
	StatusInvalidArgument Status = 2
	StatusNotFound        Status = 3
	StatusOutOfRange      Status = 4
	StatusUnsupported     Status = 5
	StatusDecodeError     Status = 6
	StatusRuntimeError    Status = 7
)

// OK reports whether s is StatusOK.
func (s Status) OK() bool { return s == StatusOK }

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNull:
		return "null handle"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusNotFound:
		return "not found"
	case StatusOutOfRange:
		return "out of range"
	case StatusUnsupported:
		return "unsupported"
	case StatusDecodeError:
		return "decode error"
	case StatusRuntimeError:
		return "runtime error"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}
