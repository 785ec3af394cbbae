package simengine

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-drift/rive/pkg/abi"
)

type imageObj struct {
	format string
	img    image.Image
	buf    *gg.ImageBuf
}

func decodeImage(data []byte) (*imageObj, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &imageObj{format: format, img: img, buf: gg.ImageBufFromImage(img)}, nil
}

type fontObj struct {
	family string
	glyphs int
	source *ggtext.FontSource
}

// decodeFont parses data with the shaper's parser and keeps a drawable
// source for text runs.
func decodeFont(data []byte) (*fontObj, error) {
	if _, err := font.ParseTTF(bytes.NewReader(data)); err != nil {
		return nil, err
	}
	of, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	f := &fontObj{glyphs: of.NumGlyphs()}
	f.family, _ = of.Name(nil, sfnt.NameIDFamily)
	if f.source, err = ggtext.NewFontSource(data); err != nil {
		return nil, err
	}
	return f, nil
}

type audioObj struct {
	format     string
	channels   int
	sampleRate int
}

var errUnknownAudio = errors.New("unrecognized audio container")

// decodeAudio identifies the container. Only WAV headers are read further;
// playback is out of scope.
func decodeAudio(data []byte) (*audioObj, error) {
	switch {
	case len(data) >= 12 && string(data[:4]) == "RIFF" && string(data[8:12]) == "WAVE":
		return decodeWAV(data)
	case bytes.HasPrefix(data, []byte("OggS")):
		return &audioObj{format: "ogg"}, nil
	case bytes.HasPrefix(data, []byte("fLaC")):
		return &audioObj{format: "flac"}, nil
	case bytes.HasPrefix(data, []byte("ID3")),
		len(data) >= 2 && data[0] == 0xff && data[1]&0xe0 == 0xe0:
		return &audioObj{format: "mp3"}, nil
	}
	return nil, errUnknownAudio
}

func decodeWAV(data []byte) (*audioObj, error) {
	for off := 12; off+8 <= len(data); {
		id := string(data[off : off+4])
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		body := off + 8
		if id == "fmt " {
			if size < 16 || body+16 > len(data) {
				return nil, fmt.Errorf("wav: short fmt chunk")
			}
			return &audioObj{
				format:     "wav",
				channels:   int(binary.LittleEndian.Uint16(data[body+2:])),
				sampleRate: int(binary.LittleEndian.Uint32(data[body+4:])),
			}, nil
		}
		off = body + size + size&1
	}
	return nil, fmt.Errorf("wav: no fmt chunk")
}

// assetObj is a file asset and whatever has been decoded or assigned for
// it.
type assetObj struct {
	def    *assetDef
	handle uintptr
	image  *imageObj
	font   *fontObj
	audio  *audioObj
}

func (a *assetObj) decode(data []byte) error {
	switch a.def.kind {
	case assetImage:
		img, err := decodeImage(data)
		if err != nil {
			return err
		}
		a.image = img
	case assetFont:
		f, err := decodeFont(data)
		if err != nil {
			return err
		}
		a.font = f
	case assetAudio:
		au, err := decodeAudio(data)
		if err != nil {
			return err
		}
		a.audio = au
	}
	return nil
}

func (e *Engine) decodeInto(op string, factory abi.Factory, b abi.BytesView, k Kind, out *uintptr, dec func([]byte) (any, error)) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	if k != KindRenderImage {
		if _, ok := object[*factoryObj](e, op, uintptr(factory), KindFactory); !ok {
			return abi.StatusNull
		}
	}
	if invalidBytes(b) {
		return abi.StatusInvalidArgument
	}
	obj, err := dec(b.Unsafe())
	if err != nil {
		return abi.StatusDecodeError
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = e.tab.add(k, obj)
	return abi.StatusOK
}

func (e *Engine) decodeAudio(factory abi.Factory, b abi.BytesView, out *abi.AudioSource) abi.Status {
	return e.decodeInto("decode_audio", factory, b, KindAudioSource, (*uintptr)(out), func(d []byte) (any, error) {
		return decodeAudio(d)
	})
}

func (e *Engine) decodeFont(factory abi.Factory, b abi.BytesView, out *abi.Font) abi.Status {
	return e.decodeInto("decode_font", factory, b, KindFont, (*uintptr)(out), func(d []byte) (any, error) {
		return decodeFont(d)
	})
}

// decodeWebGL2Image decodes on the CPU; the result draws through the raster
// renderer.
func (e *Engine) decodeWebGL2Image(b abi.BytesView, out *abi.RenderImage) abi.Status {
	return e.decodeInto("decode_webgl2_image", 0, b, KindRenderImage, (*uintptr)(out), func(d []byte) (any, error) {
		return decodeImage(d)
	})
}

func (e *Engine) audioSourceUnref(a abi.AudioSource) {
	e.tab.unref("audio_source_unref", uintptr(a), KindAudioSource)
}

func (e *Engine) fontUnref(f abi.Font) {
	e.tab.unref("font_unref", uintptr(f), KindFont)
}

func (e *Engine) renderImageRef(i abi.RenderImage) {
	e.tab.ref("render_image_ref", uintptr(i), KindRenderImage)
}

func (e *Engine) renderImageUnref(i abi.RenderImage) {
	e.tab.unref("render_image_unref", uintptr(i), KindRenderImage)
}

func (e *Engine) renderImage(op string, i abi.RenderImage) (*imageObj, bool) {
	return object[*imageObj](e, op, uintptr(i), KindRenderImage)
}

// ptrToAsset accepts only live asset handles of the wanted kind; anything
// else converts to null.
func (e *Engine) ptrToAsset(p uintptr, kind assetKind) abi.FileAsset {
	ent, ok := e.tab.peek(p, KindFileAsset)
	if !ok {
		return 0
	}
	if a := ent.obj.(*assetObj); kind != 0 && a.def.kind != kind {
		return 0
	}
	return abi.FileAsset(p)
}

func (e *Engine) ptrToFileAsset(p uintptr) abi.FileAsset  { return e.ptrToAsset(p, 0) }
func (e *Engine) ptrToAudioAsset(p uintptr) abi.FileAsset { return e.ptrToAsset(p, assetAudio) }
func (e *Engine) ptrToImageAsset(p uintptr) abi.FileAsset { return e.ptrToAsset(p, assetImage) }
func (e *Engine) ptrToFontAsset(p uintptr) abi.FileAsset  { return e.ptrToAsset(p, assetFont) }

func (e *Engine) asset(op string, h abi.FileAsset) (*assetObj, bool) {
	return object[*assetObj](e, op, uintptr(h), KindFileAsset)
}

func (e *Engine) assetText(op string, h abi.FileAsset, get func(*assetDef) string) abi.StrView {
	a, ok := e.asset(op, h)
	if !ok {
		return abi.StrView{}
	}
	return str(get(a.def))
}

func (e *Engine) fileAssetName(h abi.FileAsset) abi.StrView {
	return e.assetText("file_asset_name", h, func(d *assetDef) string { return d.name })
}

func (e *Engine) fileAssetCDNBaseURL(h abi.FileAsset) abi.StrView {
	return e.assetText("file_asset_cdn_base_url", h, func(d *assetDef) string { return d.cdnBase })
}

func (e *Engine) fileAssetFileExtension(h abi.FileAsset) abi.StrView {
	return e.assetText("file_asset_file_extension", h, func(d *assetDef) string { return d.ext })
}

func (e *Engine) fileAssetUniqueFilename(h abi.FileAsset) abi.StrView {
	return e.assetText("file_asset_unique_filename", h, func(d *assetDef) string { return d.uniqueFN })
}

func (e *Engine) fileAssetCDNUUID(h abi.FileAsset) abi.StrView {
	return e.assetText("file_asset_cdn_uuid", h, func(d *assetDef) string { return d.cdnUUID })
}

func (e *Engine) assetIs(op string, h abi.FileAsset, k assetKind) bool {
	a, ok := e.asset(op, h)
	return ok && a.def.kind == k
}

func (e *Engine) fileAssetIsAudio(h abi.FileAsset) bool {
	return e.assetIs("file_asset_is_audio", h, assetAudio)
}

func (e *Engine) fileAssetIsImage(h abi.FileAsset) bool {
	return e.assetIs("file_asset_is_image", h, assetImage)
}

func (e *Engine) fileAssetIsFont(h abi.FileAsset) bool {
	return e.assetIs("file_asset_is_font", h, assetFont)
}

func (e *Engine) fileAssetDecode(factory abi.Factory, h abi.FileAsset, b abi.BytesView) abi.Status {
	const op = "file_asset_decode"
	if _, ok := object[*factoryObj](e, op, uintptr(factory), KindFactory); !ok {
		return abi.StatusNull
	}
	a, ok := e.asset(op, h)
	if !ok {
		return abi.StatusNull
	}
	if invalidBytes(b) {
		return abi.StatusInvalidArgument
	}
	if err := a.decode(b.Unsafe()); err != nil {
		return abi.StatusDecodeError
	}
	return abi.StatusOK
}

// assign resolves a typed asset for a setter. A null value clears it.
func (e *Engine) assign(op string, h abi.FileAsset, k assetKind, value uintptr, vk Kind, set func(*assetObj, any)) abi.Status {
	a, ok := e.asset(op, h)
	if !ok {
		return abi.StatusNull
	}
	if a.def.kind != k {
		return abi.StatusInvalidArgument
	}
	if value == 0 {
		set(a, nil)
		return abi.StatusOK
	}
	ent, ok := e.tab.lookup(op, value, vk)
	if !ok {
		return abi.StatusNull
	}
	set(a, ent.obj)
	return abi.StatusOK
}

func (e *Engine) audioAssetSetAudioSource(h abi.FileAsset, audio abi.AudioSource) abi.Status {
	return e.assign("audio_asset_set_audio_source", h, assetAudio, uintptr(audio), KindAudioSource, func(a *assetObj, v any) {
		a.audio, _ = v.(*audioObj)
	})
}

func (e *Engine) fontAssetSetFont(h abi.FileAsset, f abi.Font) abi.Status {
	return e.assign("font_asset_set_font", h, assetFont, uintptr(f), KindFont, func(a *assetObj, v any) {
		a.font, _ = v.(*fontObj)
	})
}

func (e *Engine) imageAssetSetRenderImage(h abi.FileAsset, i abi.RenderImage) abi.Status {
	return e.assign("image_asset_set_render_image", h, assetImage, uintptr(i), KindRenderImage, func(a *assetObj, v any) {
		a.image, _ = v.(*imageObj)
	})
}
