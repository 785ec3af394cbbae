package simengine

import (
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
)

const (
	redPNG    = "iVBORw0KGgoAAAANSUhEUgAAAAIAAAACCAYAAABytg0kAAAAEUlEQVR4nGP4z8DwH4QZYAwAR8oH+WdZbrcAAAAASUVORK5CYII="
	stereoWAV = "UklGRiQAAABXQVZFZm10IBAAAAABAAIARKwAABCxAgAEABAAZGF0YQAAAAA="
)

func mustBase64(t *testing.T, s string) []byte {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

type loadedAsset struct {
	handle abi.FileAsset
	name   string
	unique string
	inBand int
	image  bool
}

func TestAssetLoader(t *testing.T) {
	e := New()
	fns := e.Functions()
	factory := fns.FactoryDefault()

	var seen []loadedAsset
	cb := &abi.AssetLoaderCallbacks{
		UserData: 42,
		LoadContents: func(user uintptr, asset abi.FileAsset, inBand abi.BytesView, f abi.Factory) bool {
			if user != 42 || f != factory {
				t.Errorf("callback got user %d factory %#x", user, f)
			}
			seen = append(seen, loadedAsset{
				handle: asset,
				name:   goString(fns.FileAssetName(asset)),
				unique: goString(fns.FileAssetUniqueFilename(asset)),
				inBand: int(inBand.Len),
				image:  fns.FileAssetIsImage(asset),
			})
			if !fns.FileAssetIsImage(asset) {
				return false
			}
			return fns.FileAssetDecode(f, asset, inBand) == abi.StatusOK
		},
	}
	var file abi.File
	if st := fns.LoadFileWithAssetLoader(factory, abi.Bytes(loadScene(t)), cb, &file); st != abi.StatusOK {
		t.Fatalf("LoadFileWithAssetLoader = %v", st)
	}

	want := []loadedAsset{
		{name: "logo.png", unique: "logo-0.png", inBand: 74, image: true},
		{name: "Inter", unique: "Inter-1.ttf"},
		{name: "click", unique: "click-2.wav", inBand: 44},
	}
	if len(seen) != len(want) {
		t.Fatalf("callback saw %d assets, want %d", len(seen), len(want))
	}
	for i, w := range want {
		got := seen[i]
		w.handle = got.handle
		if got != w {
			t.Errorf("asset %d = %+v, want %+v", i, got, w)
		}
	}
	if n := e.Stats().DefaultDecodes; n != 1 {
		t.Errorf("DefaultDecodes = %d, want only the audio asset", n)
	}

	logo := seen[0].handle
	if got := goString(fns.FileAssetCDNUUID(logo)); got != "0b6f3f4a-7b1d-4c3e-9a55-1f2d3c4b5a69" {
		t.Errorf("cdn uuid = %q", got)
	}
	if got := goString(fns.FileAssetCDNBaseURL(logo)); got != "https://cdn.example.com" {
		t.Errorf("cdn base = %q", got)
	}
	if got := goString(fns.FileAssetFileExtension(seen[1].handle)); got != "ttf" {
		t.Errorf("font extension = %q", got)
	}

	if fns.PtrToImageAsset(uintptr(logo)) != logo {
		t.Error("image asset did not convert")
	}
	if fns.PtrToAudioAsset(uintptr(logo)) != 0 {
		t.Error("image asset converted to audio")
	}
	if fns.PtrToFileAsset(0xbad) != 0 {
		t.Error("unknown pointer converted")
	}
	if v := e.Stats().Violations; len(v) != 0 {
		t.Errorf("violations = %v", v)
	}

	fns.FileUnref(file)
	if fns.FileAssetIsImage(logo) {
		t.Error("asset outlived its file")
	}
}

func TestDecoders(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns
	png := mustBase64(t, redPNG)
	wav := mustBase64(t, stereoWAV)
	junk := abi.Bytes([]byte("not media"))

	var audio abi.AudioSource
	fx.ok("DecodeAudio", fns.DecodeAudio(fx.factory, abi.Bytes(wav), &audio))
	got, ok := object[*audioObj](fx.e, "test", uintptr(audio), KindAudioSource)
	if !ok || got.format != "wav" || got.channels != 2 || got.sampleRate != 44100 {
		t.Errorf("decoded audio = %+v", got)
	}
	if st := fns.DecodeAudio(fx.factory, junk, &audio); st != abi.StatusDecodeError || audio != 0 {
		t.Errorf("DecodeAudio(junk) = %v, %#x", st, audio)
	}
	if st := fns.DecodeAudio(0, abi.Bytes(wav), &audio); st != abi.StatusNull {
		t.Errorf("DecodeAudio without factory = %v", st)
	}

	var f abi.Font
	if st := fns.DecodeFont(fx.factory, junk, &f); st != abi.StatusDecodeError {
		t.Errorf("DecodeFont(junk) = %v", st)
	}
	if st := fns.DecodeFont(fx.factory, abi.BytesView{Len: 3}, &f); st != abi.StatusInvalidArgument {
		t.Errorf("DecodeFont(null ptr) = %v", st)
	}

	var img abi.RenderImage
	fx.ok("DecodeWebGL2Image", fns.DecodeWebGL2Image(abi.Bytes(png), &img))
	im, ok := object[*imageObj](fx.e, "test", uintptr(img), KindRenderImage)
	if !ok || im.format != "png" || im.img.Bounds().Dx() != 2 {
		t.Errorf("decoded image = %+v", im)
	}
	if st := fns.DecodeWebGL2Image(junk, &img); st != abi.StatusDecodeError {
		t.Errorf("DecodeWebGL2Image(junk) = %v", st)
	}
}

func TestAssetSetters(t *testing.T) {
	e := New()
	fns := e.Functions()
	factory := fns.FactoryDefault()

	assets := map[string]abi.FileAsset{}
	cb := &abi.AssetLoaderCallbacks{
		LoadContents: func(_ uintptr, asset abi.FileAsset, _ abi.BytesView, _ abi.Factory) bool {
			assets[goString(fns.FileAssetName(asset))] = asset
			return true
		},
	}
	var file abi.File
	if st := fns.LoadFileWithAssetLoader(factory, abi.Bytes(loadScene(t)), cb, &file); st != abi.StatusOK {
		t.Fatalf("LoadFileWithAssetLoader = %v", st)
	}

	var audio abi.AudioSource
	if st := fns.DecodeAudio(factory, abi.Bytes(mustBase64(t, stereoWAV)), &audio); st != abi.StatusOK {
		t.Fatalf("DecodeAudio = %v", st)
	}
	var img abi.RenderImage
	if st := fns.DecodeWebGL2Image(abi.Bytes(mustBase64(t, redPNG)), &img); st != abi.StatusOK {
		t.Fatalf("DecodeWebGL2Image = %v", st)
	}

	tests := []struct {
		name string
		st   abi.Status
		want abi.Status
	}{
		{"audio on audio", fns.AudioAssetSetAudioSource(assets["click"], audio), abi.StatusOK},
		{"audio on image", fns.AudioAssetSetAudioSource(assets["logo.png"], audio), abi.StatusInvalidArgument},
		{"image on image", fns.ImageAssetSetRenderImage(assets["logo.png"], img), abi.StatusOK},
		{"clear image", fns.ImageAssetSetRenderImage(assets["logo.png"], 0), abi.StatusOK},
		{"font on font", fns.FontAssetSetFont(assets["Inter"], 0), abi.StatusOK},
		{"font on audio", fns.FontAssetSetFont(assets["click"], 0), abi.StatusInvalidArgument},
		{"image as audio", fns.AudioAssetSetAudioSource(assets["click"], abi.AudioSource(img)), abi.StatusNull},
	}
	for _, tt := range tests {
		if tt.st != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.st, tt.want)
		}
	}

	if st := fns.FileAssetDecode(factory, assets["click"], abi.Bytes([]byte("noise"))); st != abi.StatusDecodeError {
		t.Errorf("FileAssetDecode(noise) = %v", st)
	}
	if v := e.Stats().Violations; len(v) != 1 || v[0].Want != KindAudioSource {
		t.Errorf("violations = %v", v)
	}
}

func TestComputeAlignment(t *testing.T) {
	fns := New().Functions()
	content := abi.AABB{MaxX: 100, MaxY: 50}
	frame := abi.AABB{MaxX: 200, MaxY: 200}

	tests := []struct {
		name  string
		fit   abi.Fit
		align abi.Alignment
		frame abi.AABB
		scale float32
		want  abi.Mat2D
	}{
		{"contain center", abi.FitContain, abi.AlignmentCenter, frame, 1, abi.Mat2D{XX: 2, YY: 2, TY: 50}},
		{"fill top left", abi.FitFill, abi.AlignmentTopLeft, frame, 1, abi.Mat2D{XX: 2, YY: 4}},
		{"cover center", abi.FitCover, abi.AlignmentCenter, frame, 1, abi.Mat2D{XX: 4, YY: 4, TX: -100}},
		{"none center", abi.FitNone, abi.AlignmentCenter, frame, 1, abi.Mat2D{XX: 1, YY: 1, TX: 50, TY: 75}},
		{"none bottom right", abi.FitNone, abi.AlignmentBottomRight, frame, 1, abi.Mat2D{XX: 1, YY: 1, TX: 100, TY: 150}},
		{"scale down fits", abi.FitScaleDown, abi.AlignmentTopLeft, frame, 1, abi.Mat2D{XX: 1, YY: 1}},
		{"fit width", abi.FitFitWidth, abi.AlignmentTopLeft, frame, 1, abi.Mat2D{XX: 2, YY: 2}},
		{"layout", abi.FitLayout, abi.AlignmentCenter, abi.AABB{MinX: 10, MinY: 20, MaxX: 30, MaxY: 40}, 3, abi.Mat2D{XX: 3, YY: 3, TX: 10, TY: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m abi.Mat2D
			if st := fns.ComputeAlignment(tt.fit, tt.align, &content, &tt.frame, tt.scale, &m); st != abi.StatusOK {
				t.Fatalf("status = %v", st)
			}
			for i, pair := range [][2]float32{
				{m.XX, tt.want.XX}, {m.XY, tt.want.XY}, {m.YX, tt.want.YX},
				{m.YY, tt.want.YY}, {m.TX, tt.want.TX}, {m.TY, tt.want.TY},
			} {
				if !near(pair[0], pair[1]) {
					t.Errorf("component %d = %v, want %v (%+v)", i, pair[0], pair[1], m)
					break
				}
			}
		})
	}

	var m abi.Mat2D
	if st := fns.ComputeAlignment(abi.Fit(99), abi.AlignmentCenter, &content, &frame, 1, &m); st != abi.StatusInvalidArgument {
		t.Errorf("bad fit = %v", st)
	}
	if st := fns.ComputeAlignment(abi.FitFill, abi.AlignmentCenter, nil, &frame, 1, &m); st != abi.StatusNull {
		t.Errorf("nil source = %v", st)
	}

	fns.ComputeAlignment(abi.FitContain, abi.AlignmentCenter, &content, &frame, 1, &m)
	var p abi.Vec2
	if st := fns.MapXY(&m, abi.Vec2{X: 100, Y: 50}, &p); st != abi.StatusOK {
		t.Fatalf("MapXY = %v", st)
	}
	if !near(p.X, 200) || !near(p.Y, 150) {
		t.Errorf("mapped corner = %+v", p)
	}
	if st := fns.MapXY(nil, p, &p); st != abi.StatusNull {
		t.Errorf("MapXY(nil) = %v", st)
	}
}

func closeTo(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	got := [4]uint32{r >> 8, g >> 8, b >> 8, a >> 8}
	exp := [4]uint32{uint32(want.R), uint32(want.G), uint32(want.B), uint32(want.A)}
	for i := range got {
		d := int(got[i]) - int(exp[i])
		if d < -8 || d > 8 {
			return false
		}
	}
	return true
}

func TestRendererDraw(t *testing.T) {
	fx := newFixture(t)
	a := fx.artboard("main")
	r := fx.e.NewRenderer(400, 300)

	fx.ok("ArtboardDraw", fx.fns.ArtboardDraw(a, r.RendererHandle()))
	img := r.Image()
	if c := img.At(380, 280); !closeTo(c, color.RGBA{0x20, 0x20, 0x20, 0xff}) {
		t.Errorf("background pixel = %v", c)
	}
	if c := img.At(120, 65); !closeTo(c, color.RGBA{0x33, 0x66, 0xff, 0xff}) {
		t.Errorf("button pixel = %v", c)
	}

	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	if st := fx.fns.ArtboardDraw(a, r.RendererHandle()); st != abi.StatusNull {
		t.Errorf("draw into a closed renderer = %v", st)
	}
	if v := fx.e.Stats().Violations; len(v) != 1 || v[0].Want != KindRenderer {
		t.Errorf("violations = %v", v)
	}
}

func TestGPUUnsupported(t *testing.T) {
	fx := newFixture(t)
	fns := fx.fns

	var gl abi.WebGL2Renderer = 1
	if st := fns.WebGL2RendererNew(100, 100, &gl); st != abi.StatusUnsupported || gl != 0 {
		t.Errorf("WebGL2RendererNew = %v, %#x", st, gl)
	}
	var gpu abi.WebGPURenderer = 1
	if st := fns.WebGPURendererNew(100, 100, &gpu); st != abi.StatusUnsupported || gpu != 0 {
		t.Errorf("WebGPURendererNew = %v, %#x", st, gpu)
	}
	if st := fns.WebGL2RendererClear(0); st != abi.StatusNull {
		t.Errorf("WebGL2RendererClear(0) = %v", st)
	}
	if st := fns.ArtboardDrawWebGPU(fx.artboard("main"), 0); st != abi.StatusNull {
		t.Errorf("ArtboardDrawWebGPU = %v", st)
	}
	if fns.FactoryWebGPU() != 0 {
		t.Error("FactoryWebGPU returned a factory")
	}
}
