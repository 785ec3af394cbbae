package simengine

import (
	"github.com/go-drift/rive/pkg/abi"
)

type fileObj struct {
	m      *model
	handle uintptr
	assets map[*assetDef]*assetObj
}

func (f *fileObj) asset(name string) *assetObj {
	if d, ok := f.m.assetIndex[name]; ok {
		return f.assets[d]
	}
	return nil
}

func (e *Engine) loadFile(factory abi.Factory, b abi.BytesView, out *abi.File) abi.Status {
	return e.load("load_file", factory, b, nil, out)
}

func (e *Engine) loadFileWithAssetLoader(factory abi.Factory, b abi.BytesView, cb *abi.AssetLoaderCallbacks, out *abi.File) abi.Status {
	return e.load("load_file_with_asset_loader", factory, b, cb, out)
}

func (e *Engine) load(op string, factory abi.Factory, b abi.BytesView, cb *abi.AssetLoaderCallbacks, out *abi.File) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	if _, ok := object[*factoryObj](e, op, uintptr(factory), KindFactory); !ok {
		return abi.StatusNull
	}
	if invalidBytes(b) {
		return abi.StatusInvalidArgument
	}
	doc, err := Parse(b.Unsafe())
	if err != nil {
		return abi.StatusDecodeError
	}
	m, err := compile(doc)
	if err != nil {
		return abi.StatusDecodeError
	}
	if e.suppress() {
		return abi.StatusOK
	}

	f := &fileObj{m: m, assets: make(map[*assetDef]*assetObj, len(m.assets))}
	f.handle = e.tab.add(KindFile, f)
	if cb != nil && cb.LoadContents != nil {
		// The loader keeps the factory alive until the load finishes.
		e.tab.hold(uintptr(factory))
		defer e.tab.drop(uintptr(factory))
	}
	for _, d := range m.assets {
		a := &assetObj{def: d}
		f.assets[d] = a
		a.handle = e.tab.child(f.handle, d, KindFileAsset, a)
		handled := false
		if cb != nil && cb.LoadContents != nil {
			handled = cb.LoadContents(cb.UserData, abi.FileAsset(a.handle), abi.Bytes(d.inBand), factory)
		}
		if !handled && len(d.inBand) > 0 {
			e.tab.decodes.Add(1)
			// A failed default decode leaves the asset empty; the load
			// itself still succeeds.
			_ = a.decode(d.inBand)
		}
	}
	*out = abi.File(f.handle)
	return abi.StatusOK
}

func (e *Engine) fileRef(f abi.File)   { e.tab.ref("file_ref", uintptr(f), KindFile) }
func (e *Engine) fileUnref(f abi.File) { e.tab.unref("file_unref", uintptr(f), KindFile) }

func (e *Engine) file(op string, f abi.File) (*fileObj, bool) {
	return object[*fileObj](e, op, uintptr(f), KindFile)
}

func (e *Engine) fileArtboardCount(f abi.File) uintptr {
	fo, ok := e.file("file_artboard_count", f)
	if !ok {
		return 0
	}
	return uintptr(len(fo.m.artboards))
}

func (e *Engine) fileArtboardDefault(f abi.File, out *abi.Artboard) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_artboard_default", f)
	if !ok {
		return abi.StatusNull
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.Artboard(e.addArtboard(fo, fo.m.defaultAB))
	return abi.StatusOK
}

func (e *Engine) fileArtboardByIndex(f abi.File, index uintptr, out *abi.Artboard) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_artboard_by_index", f)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fo.m.artboards)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.Artboard(e.addArtboard(fo, fo.m.artboards[index]))
	return abi.StatusOK
}

func (e *Engine) fileArtboardByName(f abi.File, name abi.StrView, out *abi.Artboard) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_artboard_by_name", f)
	if !ok {
		return abi.StatusNull
	}
	d, ok := fo.m.boardIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.Artboard(e.addArtboard(fo, d))
	return abi.StatusOK
}

func (e *Engine) addArtboard(f *fileObj, d *artboardDef) uintptr {
	return e.tab.add(KindArtboard, newArtboard(f, d))
}

type viewModelObj struct {
	def  *viewModelDef
	file *fileObj
}

func (e *Engine) fileViewModelCount(f abi.File) uintptr {
	fo, ok := e.file("file_view_model_count", f)
	if !ok {
		return 0
	}
	return uintptr(len(fo.m.viewModels))
}

func (e *Engine) addViewModel(f *fileObj, d *viewModelDef) abi.ViewModel {
	return abi.ViewModel(e.tab.add(KindViewModel, &viewModelObj{def: d, file: f}))
}

func (e *Engine) fileViewModelByIndex(f abi.File, index uintptr, out *abi.ViewModel) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_view_model_by_index", f)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fo.m.viewModels)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = e.addViewModel(fo, fo.m.viewModels[index])
	return abi.StatusOK
}

func (e *Engine) fileViewModelByName(f abi.File, name abi.StrView, out *abi.ViewModel) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_view_model_by_name", f)
	if !ok {
		return abi.StatusNull
	}
	d, ok := fo.m.vmIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = e.addViewModel(fo, d)
	return abi.StatusOK
}

func (e *Engine) fileDefaultArtboardViewModel(f abi.File, artboard abi.Artboard, out *abi.ViewModel) abi.Status {
	const op = "file_default_artboard_view_model"
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file(op, f)
	if !ok {
		return abi.StatusNull
	}
	ab, ok := object[*artboardObj](e, op, uintptr(artboard), KindArtboard)
	if !ok {
		return abi.StatusNull
	}
	if ab.def.viewModel == nil {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = e.addViewModel(fo, ab.def.viewModel)
	return abi.StatusOK
}

// bindableObj is an artboard instance that can be assigned to an artboard
// property of a view-model instance.
type bindableObj struct {
	ab *artboardObj
}

func (e *Engine) bindable(out *abi.BindableArtboard, ab *artboardObj) abi.Status {
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.BindableArtboard(e.tab.add(KindBindableArtboard, &bindableObj{ab: ab}))
	return abi.StatusOK
}

func (e *Engine) fileBindableArtboardByName(f abi.File, name abi.StrView, out *abi.BindableArtboard) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_bindable_artboard_by_name", f)
	if !ok {
		return abi.StatusNull
	}
	d, ok := fo.m.boardIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	return e.bindable(out, newArtboard(fo, d))
}

func (e *Engine) fileBindableArtboardDefault(f abi.File, out *abi.BindableArtboard) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	fo, ok := e.file("file_bindable_artboard_default", f)
	if !ok {
		return abi.StatusNull
	}
	return e.bindable(out, newArtboard(fo, fo.m.defaultAB))
}

func (e *Engine) fileBindableArtboardFromArtboard(f abi.File, artboard abi.Artboard, out *abi.BindableArtboard) abi.Status {
	const op = "file_bindable_artboard_from_artboard"
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	if _, ok := e.file(op, f); !ok {
		return abi.StatusNull
	}
	ab, ok := object[*artboardObj](e, op, uintptr(artboard), KindArtboard)
	if !ok {
		return abi.StatusNull
	}
	return e.bindable(out, ab)
}

func (e *Engine) bindableArtboardRef(b abi.BindableArtboard) {
	e.tab.ref("bindable_artboard_ref", uintptr(b), KindBindableArtboard)
}

func (e *Engine) bindableArtboardUnref(b abi.BindableArtboard) {
	e.tab.unref("bindable_artboard_unref", uintptr(b), KindBindableArtboard)
}

func (e *Engine) fileHasAudio(f abi.File) bool {
	fo, ok := e.file("file_has_audio", f)
	if !ok {
		return false
	}
	for _, d := range fo.m.artboards {
		if len(d.doc.Audio) > 0 {
			return true
		}
	}
	return false
}

func (e *Engine) fileEnumCount(f abi.File) uintptr {
	fo, ok := e.file("file_enum_count", f)
	if !ok {
		return 0
	}
	return uintptr(len(fo.m.enums))
}

func (e *Engine) fileEnumNameAt(f abi.File, index uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	fo, ok := e.file("file_enum_name_at", f)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fo.m.enums)) {
		return abi.StatusOutOfRange
	}
	*out = str(fo.m.enums[index].name)
	return abi.StatusOK
}

func (e *Engine) fileEnumValueCount(f abi.File, index uintptr) uintptr {
	fo, ok := e.file("file_enum_value_count", f)
	if !ok || index >= uintptr(len(fo.m.enums)) {
		return 0
	}
	return uintptr(len(fo.m.enums[index].values))
}

func (e *Engine) fileEnumValueNameAt(f abi.File, index, value uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	fo, ok := e.file("file_enum_value_name_at", f)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(fo.m.enums)) || value >= uintptr(len(fo.m.enums[index].values)) {
		return abi.StatusOutOfRange
	}
	*out = str(fo.m.enums[index].values[value])
	return abi.StatusOK
}
