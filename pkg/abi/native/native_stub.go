//go:build !darwin && !linux

package native

import "github.com/go-drift/rive/pkg/abi"

// Open always fails on this platform.
func Open(path string) (*abi.Functions, error) {
	return nil, ErrUnsupported
}
