package rive

import (
	"runtime"

	"github.com/go-drift/rive/pkg/abi"
)

// FileAsset is a non-owning view of an asset referenced by a document.
// Assets handed to an AssetLoader are only valid during that call; assets
// adopted from a host pointer are valid as long as the host says so.
type FileAsset struct {
	rt    *Runtime
	raw   abi.FileAsset
	owner scope
}

func (a *FileAsset) handle(op string) (abi.FileAsset, error) {
	if a == nil || a.raw == 0 || (a.owner != nil && !a.owner.alive()) {
		return 0, nullError(op)
	}
	return a.raw, nil
}

func (a *FileAsset) text(get func(abi.FileAsset) abi.StrView) string {
	h, err := a.handle("")
	if err != nil {
		return ""
	}
	return copyString(get(h))
}

func (a *FileAsset) flag(get func(abi.FileAsset) bool) bool {
	h, err := a.handle("")
	if err != nil {
		return false
	}
	return get(h)
}

// Valid reports whether the asset may still be used.
func (a *FileAsset) Valid() bool {
	_, err := a.handle("")
	return err == nil
}

// Name returns the asset name.
func (a *FileAsset) Name() string { return a.text(a.fns().FileAssetName) }

// CDNBaseURL returns the base URL of the hosting CDN.
func (a *FileAsset) CDNBaseURL() string { return a.text(a.fns().FileAssetCDNBaseURL) }

// FileExtension returns the extension without a leading dot.
func (a *FileAsset) FileExtension() string { return a.text(a.fns().FileAssetFileExtension) }

// UniqueFilename returns the name the runtime uses for out-of-band lookups.
func (a *FileAsset) UniqueFilename() string { return a.text(a.fns().FileAssetUniqueFilename) }

// CDNUUID returns the CDN identifier, or "" for embedded assets.
func (a *FileAsset) CDNUUID() string { return a.text(a.fns().FileAssetCDNUUID) }

func (a *FileAsset) IsAudio() bool { return a.flag(a.fns().FileAssetIsAudio) }
func (a *FileAsset) IsImage() bool { return a.flag(a.fns().FileAssetIsImage) }
func (a *FileAsset) IsFont() bool  { return a.flag(a.fns().FileAssetIsFont) }

func (a *FileAsset) fns() *abi.Functions {
	if a == nil || a.rt == nil {
		return &noFunctions
	}
	return a.rt.fns
}

// Decode decodes data with factory and attaches the result to the asset.
func (a *FileAsset) Decode(factory *Factory, data []byte) error {
	const op = "FileAsset.Decode"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	fh, err := factory.handle(op)
	if err != nil {
		return err
	}
	st := a.rt.fns.FileAssetDecode(fh, h, abi.Bytes(data))
	runtime.KeepAlive(data)
	return check(op, st)
}

// SetAudioSource attaches audio to an audio asset. nil detaches it.
func (a *FileAsset) SetAudioSource(audio *AudioSource) error {
	const op = "FileAsset.SetAudioSource"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	var src abi.AudioSource
	if audio != nil {
		if src, err = audio.handle(op); err != nil {
			return err
		}
	}
	return check(op, a.rt.fns.AudioAssetSetAudioSource(h, src))
}

// SetFont attaches a font to a font asset. nil detaches it.
func (a *FileAsset) SetFont(font *Font) error {
	const op = "FileAsset.SetFont"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	var fh abi.Font
	if font != nil {
		if fh, err = font.handle(op); err != nil {
			return err
		}
	}
	return check(op, a.rt.fns.FontAssetSetFont(h, fh))
}

// SetRenderImage attaches an image to an image asset. nil detaches it.
func (a *FileAsset) SetRenderImage(image *RenderImage) error {
	const op = "FileAsset.SetRenderImage"
	h, err := a.handle(op)
	if err != nil {
		return err
	}
	var ih abi.RenderImage
	if image != nil {
		if ih, err = image.handle(op); err != nil {
			return err
		}
	}
	return check(op, a.rt.fns.ImageAssetSetRenderImage(h, ih))
}

// AudioSource is decoded audio. Destroy releases it.
type AudioSource struct {
	h owned[abi.AudioSource]
}

func newAudioSource(rt *Runtime, raw abi.AudioSource) *AudioSource {
	a := &AudioSource{h: newOwned(rt, kindAudioSource, raw, rt.fns.AudioSourceUnref)}
	return track(a, &a.h)
}

func (a *AudioSource) handle(op string) (abi.AudioSource, error) {
	if a == nil {
		return 0, nullError(op)
	}
	return a.h.handle(op)
}

// Destroy releases the audio source. Further calls are no-ops.
func (a *AudioSource) Destroy() {
	if a != nil {
		a.h.release()
	}
}

// Font is a decoded font. Destroy releases it.
type Font struct {
	h owned[abi.Font]
}

func newFont(rt *Runtime, raw abi.Font) *Font {
	f := &Font{h: newOwned(rt, kindFont, raw, rt.fns.FontUnref)}
	return track(f, &f.h)
}

func (f *Font) handle(op string) (abi.Font, error) {
	if f == nil {
		return 0, nullError(op)
	}
	return f.h.handle(op)
}

// Destroy releases the font. Further calls are no-ops.
func (f *Font) Destroy() {
	if f != nil {
		f.h.release()
	}
}

// RenderImage is a decoded image. It is reference counted.
type RenderImage struct {
	h shared[abi.RenderImage]
}

func newRenderImage(rt *Runtime, raw abi.RenderImage) *RenderImage {
	i := &RenderImage{h: newShared(rt, kindRenderImage, raw, rt.fns.RenderImageRef, rt.fns.RenderImageUnref)}
	return track(i, &i.h.owned)
}

func (i *RenderImage) handle(op string) (abi.RenderImage, error) {
	if i == nil {
		return 0, nullError(op)
	}
	return i.h.handle(op)
}

// Clone returns a second wrapper for the same image.
func (i *RenderImage) Clone() (*RenderImage, error) {
	if i == nil {
		return nil, nullError("RenderImage.Clone")
	}
	raw, err := i.h.retain("RenderImage.Clone")
	if err != nil {
		return nil, err
	}
	return newRenderImage(i.h.rt, raw), nil
}

// Release drops this wrapper's reference. Further calls are no-ops.
func (i *RenderImage) Release() {
	if i != nil {
		i.h.release()
	}
}
