package native

import (
	"sync/atomic"
	"unsafe"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/go-drift/rive/pkg/abi"
)

// cLoader mirrors the C asset loader struct: a function pointer and the
// opaque user data handed back to it.
type cLoader struct {
	loadContents uintptr
	userData     uintptr
}

// loaders maps the user data key of an in-flight load to its Go callbacks.
// Loads may run on several goroutines at once, each with its own key.
var (
	loaders = xsync.NewMapOf[uintptr, *abi.AssetLoaderCallbacks]()
	nextKey atomic.Uintptr
)

// register stores cb for the duration of one load and returns its key.
// Keys are never zero.
func register(cb *abi.AssetLoaderCallbacks) uintptr {
	key := nextKey.Add(1)
	loaders.Store(key, cb)
	return key
}

func unregister(key uintptr) {
	loaders.Delete(key)
}

// dispatch routes one native callback to the loader registered under key.
// The in-band view arrives split into pointer and length; a two-word view
// is passed in two integer registers on every supported target.
func dispatch(key, asset, ptr, length, factory uintptr) uintptr {
	cb, ok := loaders.Load(key)
	if !ok || cb.LoadContents == nil {
		return 0
	}
	view := abi.BytesView{Ptr: unsafe.Pointer(ptr), Len: length}
	if cb.LoadContents(cb.UserData, abi.FileAsset(asset), view, abi.Factory(factory)) {
		return 1
	}
	return 0
}
