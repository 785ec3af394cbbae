package rive

import (
	"encoding/base64"
	"errors"
	"slices"
	"testing"

	"github.com/go-drift/rive/pkg/abi"
	"github.com/go-drift/rive/pkg/simengine"
)

const logoPNG = "iVBORw0KGgoAAAANSUhEUgAAAAIAAAACCAYAAABytg0kAAAAEUlEQVR4nGP4z8DwH4QZYAwAR8oH+WdZbrcAAAAASUVORK5CYII="

func newFactoryOnly(t *testing.T) (*simengine.Engine, *Runtime, *Factory) {
	t.Helper()
	e := simengine.New()
	rt, err := NewRuntime(e.Functions())
	if err != nil {
		t.Fatal(err)
	}
	f, err := rt.NewFactory()
	if err != nil {
		t.Fatal(err)
	}
	return e, rt, f
}

func TestAssetLoader(t *testing.T) {
	e, rt, factory := newFactoryOnly(t)

	var (
		names []string
		kept  *FileAsset
		logo  abi.FileAsset
	)
	loader := AssetLoaderFunc(func(asset *FileAsset, inBand []byte, f *Factory) bool {
		names = append(names, asset.UniqueFilename())
		kept = asset
		switch {
		case asset.IsImage():
			logo = asset.raw
			if asset.CDNUUID() == "" || asset.CDNBaseURL() != "https://cdn.example.com" {
				t.Errorf("logo cdn = %q %q", asset.CDNUUID(), asset.CDNBaseURL())
			}
			return asset.Decode(f, inBand) == nil
		case asset.IsAudio():
			audio, err := f.DecodeAudio(inBand)
			if err != nil {
				t.Errorf("DecodeAudio: %v", err)
				return false
			}
			defer audio.Destroy()
			return asset.SetAudioSource(audio) == nil
		case asset.IsFont():
			if len(inBand) != 0 || asset.FileExtension() != "ttf" {
				t.Errorf("font asset: %d bytes, extension %q", len(inBand), asset.FileExtension())
			}
		}
		return false
	})

	file, err := factory.LoadFileWithAssetLoader(sceneData(t), loader)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"logo-0.png", "Inter-1.ttf", "click-2.wav"}; !slices.Equal(names, want) {
		t.Errorf("assets = %v, want %v", names, want)
	}
	if n := e.Stats().DefaultDecodes; n != 0 {
		t.Errorf("DefaultDecodes = %d; handled assets were decoded again", n)
	}
	if kept.Valid() || kept.Name() != "" {
		t.Error("asset outlived the loader call")
	}
	if err := kept.Decode(factory, nil); !errors.Is(err, ErrNull) {
		t.Errorf("Decode after the call = %v", err)
	}
	if n := rt.LiveHandles()["factory"]; n != 1 {
		t.Errorf("live factories = %d; the loader's factory leaked", n)
	}

	host, err := rt.ImageAssetFromPointer(uintptr(logo))
	if err != nil {
		t.Fatal(err)
	}
	if !host.Valid() || host.Name() != "logo.png" {
		t.Errorf("host asset = %q", host.Name())
	}
	if _, err := rt.AudioAssetFromPointer(uintptr(logo)); !errors.Is(err, ErrNull) {
		t.Errorf("image pointer as audio = %v", err)
	}
	if _, err := rt.FileAssetFromPointer(0xbad); !errors.Is(err, ErrNull) {
		t.Errorf("unknown pointer = %v", err)
	}

	img, err := rt.DecodeImage(mustBase64(t, logoPNG))
	if err != nil {
		t.Fatal(err)
	}
	if err := host.SetRenderImage(img); err != nil {
		t.Errorf("SetRenderImage: %v", err)
	}
	if err := host.SetAudioSource(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("audio into an image asset = %v", err)
	}
	img.Release()

	file.Release()
	factory.Release()
	if st := e.Stats(); st.LiveTotal() != 0 || len(st.Violations) != 0 {
		t.Errorf("after release: live %v, violations %v", st.Live, st.Violations)
	}
}

func TestAssetLoaderPanics(t *testing.T) {
	rec := recordErrors(t)
	e, _, factory := newFactoryOnly(t)

	calls := 0
	file, err := factory.LoadFileWithAssetLoader(sceneData(t), AssetLoaderFunc(func(*FileAsset, []byte, *Factory) bool {
		calls++
		panic("loader bug")
	}))
	if err != nil {
		t.Fatalf("load with a panicking loader: %v", err)
	}
	if calls != 3 {
		t.Errorf("loader calls = %d", calls)
	}
	rec.mu.Lock()
	panics := len(rec.panics)
	rec.mu.Unlock()
	if panics != 3 {
		t.Errorf("reported panics = %d, want 3", panics)
	}
	if n := e.Stats().DefaultDecodes; n != 2 {
		t.Errorf("DefaultDecodes = %d; panicking loader must count as unhandled", n)
	}
	file.Release()
	factory.Release()
	if e.Stats().LiveTotal() != 0 {
		t.Errorf("live after release = %v", e.Stats().Live)
	}
}

func TestNilAssetLoaderLoadsPlainly(t *testing.T) {
	e, _, factory := newFactoryOnly(t)
	file, err := factory.LoadFileWithAssetLoader(sceneData(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if n := e.Stats().DefaultDecodes; n != 2 {
		t.Errorf("DefaultDecodes = %d", n)
	}
	file.Release()
	factory.Release()
}

func TestDecoders(t *testing.T) {
	e, rt, factory := newFactoryOnly(t)

	if _, err := factory.DecodeAudio([]byte("noise")); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeAudio(noise) = %v", err)
	}
	if _, err := factory.DecodeFont([]byte("noise")); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeFont(noise) = %v", err)
	}
	if _, err := rt.DecodeImage([]byte("noise")); !errors.Is(err, ErrDecode) {
		t.Errorf("DecodeImage(noise) = %v", err)
	}

	img, err := rt.DecodeImage(mustBase64(t, logoPNG))
	if err != nil {
		t.Fatal(err)
	}
	clone, err := img.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if n := e.Stats().Live[simengine.KindRenderImage]; n != 1 {
		t.Errorf("native images = %d", n)
	}
	img.Release()
	clone.Release()
	clone.Release()
	if _, err := clone.Clone(); !errors.Is(err, ErrNull) {
		t.Errorf("Clone after release = %v", err)
	}

	factory.Release()
	if _, err := factory.DecodeAudio(nil); !errors.Is(err, ErrNull) {
		t.Errorf("DecodeAudio on a released factory = %v", err)
	}
	if st := e.Stats(); st.LiveTotal() != 0 || len(st.Violations) != 0 {
		t.Errorf("live %v, violations %v", st.Live, st.Violations)
	}
}

func mustBase64(t *testing.T, s string) []byte {
	t.Helper()
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}
