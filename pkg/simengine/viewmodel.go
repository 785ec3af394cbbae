package simengine

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/rive/pkg/abi"
)

// maxNesting stops instance construction for view models that contain
// themselves.
const maxNesting = 8

type vmInstance struct {
	vm     *viewModelDef
	file   *fileObj
	name   string
	values []*propValue
}

type propValue struct {
	def        *propDef
	num        float32
	str        string
	b          bool
	color      int32
	enumIdx    uint32
	nested     *vmInstance
	list       []*vmInstance
	image      *imageObj
	artboard   *artboardObj
	artboardVM *vmInstance
	fires      int
	changed    bool
}

func (vm *viewModelDef) instanceNamed(name string) *InstanceDoc {
	for _, in := range vm.instances {
		if in.Name == name {
			return in
		}
	}
	return nil
}

func (f *fileObj) newInstance(vm *viewModelDef, doc *InstanceDoc, depth int) *vmInstance {
	v := &vmInstance{vm: vm, file: f, values: make([]*propValue, 0, len(vm.props))}
	if doc != nil {
		v.name = doc.Name
	}
	for _, p := range vm.props {
		pv := &propValue{def: p}
		node := p.def
		if doc != nil {
			if n, ok := doc.Values[p.name]; ok {
				node = n
			}
		}
		if node.Kind != 0 {
			f.initValue(pv, &node, depth)
		} else if p.typ == abi.DataTypeViewModel && depth < maxNesting {
			nvm := f.m.vmIndex[p.vm]
			pv.nested = f.newInstance(nvm, nvm.defInst, depth+1)
		}
		v.values = append(v.values, pv)
	}
	return v
}

// initValue decodes a declared value. Values were checked at compile time,
// so decode errors leave the zero value.
func (f *fileObj) initValue(pv *propValue, node *yaml.Node, depth int) {
	p := pv.def
	switch p.typ {
	case abi.DataTypeNumber, abi.DataTypeInteger:
		_ = node.Decode(&pv.num)
	case abi.DataTypeString:
		_ = node.Decode(&pv.str)
	case abi.DataTypeBoolean:
		_ = node.Decode(&pv.b)
	case abi.DataTypeColor:
		var s string
		_ = node.Decode(&s)
		c, _ := parseColor(s)
		pv.color = int32(c)
	case abi.DataTypeEnum:
		var s string
		_ = node.Decode(&s)
		pv.enumIdx, _ = p.enum.indexOf(s)
	case abi.DataTypeViewModel:
		if depth >= maxNesting {
			return
		}
		var s string
		_ = node.Decode(&s)
		nvm := f.m.vmIndex[p.vm]
		pv.nested = f.newInstance(nvm, nvm.instanceNamed(s), depth+1)
	case abi.DataTypeList:
		if depth >= maxNesting {
			return
		}
		var names []string
		_ = node.Decode(&names)
		nvm := f.m.vmIndex[p.vm]
		for _, n := range names {
			pv.list = append(pv.list, f.newInstance(nvm, nvm.instanceNamed(n), depth+1))
		}
	case abi.DataTypeImage:
		var s string
		_ = node.Decode(&s)
		if a := f.asset(s); a != nil {
			pv.image = a.image
		}
	case abi.DataTypeArtboard:
		var s string
		_ = node.Decode(&s)
		if d, ok := f.m.boardIndex[s]; ok {
			pv.artboard = newArtboard(f, d)
		}
	}
}

// checkValues rejects declared values that do not decode as their
// property's type.
func checkValues(m *model) error {
	for _, vm := range m.viewModels {
		for _, p := range vm.props {
			if err := checkValue(m, p, &p.def); err != nil {
				return fmt.Errorf("view model %q: property %q default: %w", vm.name, p.name, err)
			}
			for _, in := range vm.instances {
				n, ok := in.Values[p.name]
				if !ok {
					continue
				}
				if err := checkValue(m, p, &n); err != nil {
					return fmt.Errorf("view model %q: instance %q: property %q: %w", vm.name, in.Name, p.name, err)
				}
			}
		}
		for _, in := range vm.instances {
			for k := range in.Values {
				if _, ok := vm.propIndex[k]; !ok {
					return fmt.Errorf("view model %q: instance %q sets unknown property %q", vm.name, in.Name, k)
				}
			}
		}
	}
	return nil
}

func checkValue(m *model, p *propDef, node *yaml.Node) error {
	if node.Kind == 0 {
		return nil
	}
	switch p.typ {
	case abi.DataTypeNumber, abi.DataTypeInteger:
		var f float32
		return node.Decode(&f)
	case abi.DataTypeBoolean:
		var b bool
		return node.Decode(&b)
	case abi.DataTypeColor:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		_, err := parseColor(s)
		return err
	case abi.DataTypeEnum:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if _, ok := p.enum.indexOf(s); !ok {
			return fmt.Errorf("%q is not a value of enum %q", s, p.enum.name)
		}
	case abi.DataTypeList:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		for _, n := range names {
			if m.vmIndex[p.vm].instanceNamed(n) == nil {
				return fmt.Errorf("view model %q has no instance %q", p.vm, n)
			}
		}
	case abi.DataTypeImage:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if a, ok := m.assetIndex[s]; !ok || a.kind != assetImage {
			return fmt.Errorf("no image asset %q", s)
		}
	case abi.DataTypeArtboard:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if _, ok := m.boardIndex[s]; !ok {
			return fmt.Errorf("no artboard %q", s)
		}
	case abi.DataTypeViewModel, abi.DataTypeString:
		var s string
		return node.Decode(&s)
	}
	return nil
}

func (v *vmInstance) value(name string) *propValue {
	if p, ok := v.vm.propIndex[name]; ok {
		return v.values[p.index]
	}
	return nil
}

// resolve walks a path of nested view-model properties. Segments are
// separated by '/' or '.'.
func (v *vmInstance) resolve(path string) (*propValue, abi.Status) {
	segs := strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '.' })
	if len(segs) == 0 {
		return nil, abi.StatusNotFound
	}
	cur := v
	for i, s := range segs {
		pv := cur.value(s)
		if pv == nil {
			return nil, abi.StatusNotFound
		}
		if i == len(segs)-1 {
			return pv, abi.StatusOK
		}
		if pv.def.typ != abi.DataTypeViewModel || pv.nested == nil {
			return nil, abi.StatusNotFound
		}
		cur = pv.nested
	}
	return nil, abi.StatusNotFound
}

// typed resolves path and requires the property to be of type want.
func (v *vmInstance) typed(path string, want abi.DataType) (*propValue, abi.Status) {
	pv, st := v.resolve(path)
	if st != abi.StatusOK {
		return nil, st
	}
	if pv.def.typ != want {
		return nil, abi.StatusNotFound
	}
	return pv, abi.StatusOK
}

func (e *Engine) viewModel(op string, h abi.ViewModel) (*viewModelObj, bool) {
	return object[*viewModelObj](e, op, uintptr(h), KindViewModel)
}

func (e *Engine) viewModelRef(h abi.ViewModel)   { e.tab.ref("view_model_ref", uintptr(h), KindViewModel) }
func (e *Engine) viewModelUnref(h abi.ViewModel) { e.tab.unref("view_model_unref", uintptr(h), KindViewModel) }

func (e *Engine) viewModelName(h abi.ViewModel) abi.StrView {
	vm, ok := e.viewModel("view_model_name", h)
	if !ok {
		return abi.StrView{}
	}
	return str(vm.def.name)
}

func (e *Engine) viewModelPropertyCount(h abi.ViewModel) uintptr {
	vm, ok := e.viewModel("view_model_property_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(vm.def.props))
}

func (e *Engine) viewModelInstanceCount(h abi.ViewModel) uintptr {
	vm, ok := e.viewModel("view_model_instance_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(vm.def.instances))
}

func propertyInfo(props []*propDef, index uintptr, out *abi.PropertyInfo) abi.Status {
	if index >= uintptr(len(props)) {
		return abi.StatusOutOfRange
	}
	*out = abi.PropertyInfo{Name: str(props[index].name), DataType: props[index].typ}
	return abi.StatusOK
}

func (e *Engine) viewModelPropertyAt(h abi.ViewModel, index uintptr, out *abi.PropertyInfo) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	vm, ok := e.viewModel("view_model_property_at", h)
	if !ok {
		return abi.StatusNull
	}
	return propertyInfo(vm.def.props, index, out)
}

func (e *Engine) viewModelInstanceNameAt(h abi.ViewModel, index uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = abi.StrView{}
	vm, ok := e.viewModel("view_model_instance_name_at", h)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(vm.def.instances)) {
		return abi.StatusOutOfRange
	}
	*out = str(vm.def.instances[index].Name)
	return abi.StatusOK
}

func (e *Engine) addInstance(out *abi.ViewModelInstance, v *vmInstance) abi.Status {
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.ViewModelInstance(e.tab.add(KindViewModelInstance, v))
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceByIndex(h abi.ViewModel, index uintptr, out *abi.ViewModelInstance) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	vm, ok := e.viewModel("view_model_instance_by_index", h)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(vm.def.instances)) {
		return abi.StatusOutOfRange
	}
	return e.addInstance(out, vm.file.newInstance(vm.def, vm.def.instances[index], 0))
}

func (e *Engine) viewModelInstanceByName(h abi.ViewModel, name abi.StrView, out *abi.ViewModelInstance) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	vm, ok := e.viewModel("view_model_instance_by_name", h)
	if !ok {
		return abi.StatusNull
	}
	doc := vm.def.instanceNamed(text(name))
	if doc == nil {
		return abi.StatusNotFound
	}
	return e.addInstance(out, vm.file.newInstance(vm.def, doc, 0))
}

func (e *Engine) viewModelDefaultInstance(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	vm, ok := e.viewModel("view_model_default_instance", h)
	if !ok {
		return abi.StatusNull
	}
	return e.addInstance(out, vm.file.newInstance(vm.def, vm.def.defInst, 0))
}

// viewModelNewInstance builds an instance from property defaults only.
func (e *Engine) viewModelNewInstance(h abi.ViewModel, out *abi.ViewModelInstance) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	vm, ok := e.viewModel("view_model_new_instance", h)
	if !ok {
		return abi.StatusNull
	}
	return e.addInstance(out, vm.file.newInstance(vm.def, nil, 0))
}

func (e *Engine) instance(op string, h abi.ViewModelInstance) (*vmInstance, bool) {
	return object[*vmInstance](e, op, uintptr(h), KindViewModelInstance)
}

func (e *Engine) viewModelInstanceRef(h abi.ViewModelInstance) {
	e.tab.ref("view_model_instance_ref", uintptr(h), KindViewModelInstance)
}

func (e *Engine) viewModelInstanceUnref(h abi.ViewModelInstance) {
	e.tab.unref("view_model_instance_unref", uintptr(h), KindViewModelInstance)
}

func (e *Engine) viewModelInstancePropertyCount(h abi.ViewModelInstance) uintptr {
	v, ok := e.instance("view_model_instance_property_count", h)
	if !ok {
		return 0
	}
	return uintptr(len(v.values))
}

func (e *Engine) viewModelInstancePropertyAt(h abi.ViewModelInstance, index uintptr, out *abi.PropertyInfo) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	v, ok := e.instance("view_model_instance_property_at", h)
	if !ok {
		return abi.StatusNull
	}
	return propertyInfo(v.vm.props, index, out)
}

// access resolves a typed property for a getter or setter. outNil reports a
// getter called without an out pointer.
func (e *Engine) access(op string, h abi.ViewModelInstance, path abi.StrView, want abi.DataType, outNil bool) (*propValue, abi.Status) {
	if outNil {
		return nil, abi.StatusNull
	}
	v, ok := e.instance(op, h)
	if !ok {
		return nil, abi.StatusNull
	}
	return v.typed(text(path), want)
}

func (e *Engine) viewModelInstanceGetNumber(h abi.ViewModelInstance, path abi.StrView, out *float32) abi.Status {
	pv, st := e.access("view_model_instance_get_number", h, path, abi.DataTypeNumber, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = pv.num
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetNumber(h abi.ViewModelInstance, path abi.StrView, value float32) abi.Status {
	pv, st := e.access("view_model_instance_set_number", h, path, abi.DataTypeNumber, false)
	if st != abi.StatusOK {
		return st
	}
	pv.num, pv.changed = value, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetString(h abi.ViewModelInstance, path abi.StrView, out *abi.StrView) abi.Status {
	if out != nil {
		*out = abi.StrView{}
	}
	pv, st := e.access("view_model_instance_get_string", h, path, abi.DataTypeString, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = str(pv.str)
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetString(h abi.ViewModelInstance, path, value abi.StrView) abi.Status {
	pv, st := e.access("view_model_instance_set_string", h, path, abi.DataTypeString, false)
	if st != abi.StatusOK {
		return st
	}
	pv.str, pv.changed = text(value), true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetBoolean(h abi.ViewModelInstance, path abi.StrView, out *bool) abi.Status {
	pv, st := e.access("view_model_instance_get_boolean", h, path, abi.DataTypeBoolean, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = pv.b
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetBoolean(h abi.ViewModelInstance, path abi.StrView, value bool) abi.Status {
	pv, st := e.access("view_model_instance_set_boolean", h, path, abi.DataTypeBoolean, false)
	if st != abi.StatusOK {
		return st
	}
	pv.b, pv.changed = value, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetColor(h abi.ViewModelInstance, path abi.StrView, out *int32) abi.Status {
	pv, st := e.access("view_model_instance_get_color", h, path, abi.DataTypeColor, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = pv.color
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetColor(h abi.ViewModelInstance, path abi.StrView, argb int32) abi.Status {
	pv, st := e.access("view_model_instance_set_color", h, path, abi.DataTypeColor, false)
	if st != abi.StatusOK {
		return st
	}
	pv.color, pv.changed = argb, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetEnum(h abi.ViewModelInstance, path abi.StrView, out *abi.StrView) abi.Status {
	if out != nil {
		*out = abi.StrView{}
	}
	pv, st := e.access("view_model_instance_get_enum", h, path, abi.DataTypeEnum, out == nil)
	if st != abi.StatusOK {
		return st
	}
	if int(pv.enumIdx) < len(pv.def.enum.values) {
		*out = str(pv.def.enum.values[pv.enumIdx])
	}
	return abi.StatusOK
}

// An unknown value name leaves the property unchanged.
func (e *Engine) viewModelInstanceSetEnum(h abi.ViewModelInstance, path, value abi.StrView) abi.Status {
	pv, st := e.access("view_model_instance_set_enum", h, path, abi.DataTypeEnum, false)
	if st != abi.StatusOK {
		return st
	}
	if idx, ok := pv.def.enum.indexOf(text(value)); ok {
		pv.enumIdx, pv.changed = idx, true
	}
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetEnumIndex(h abi.ViewModelInstance, path abi.StrView, out *uint32) abi.Status {
	pv, st := e.access("view_model_instance_get_enum_index", h, path, abi.DataTypeEnum, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = pv.enumIdx
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetEnumIndex(h abi.ViewModelInstance, path abi.StrView, index uint32) abi.Status {
	pv, st := e.access("view_model_instance_set_enum_index", h, path, abi.DataTypeEnum, false)
	if st != abi.StatusOK {
		return st
	}
	if int(index) >= len(pv.def.enum.values) {
		return abi.StatusOutOfRange
	}
	pv.enumIdx, pv.changed = index, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceFireTrigger(h abi.ViewModelInstance, path abi.StrView) abi.Status {
	pv, st := e.access("view_model_instance_fire_trigger", h, path, abi.DataTypeTrigger, false)
	if st != abi.StatusOK {
		return st
	}
	pv.fires++
	pv.changed = true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceGetViewModel(h abi.ViewModelInstance, path abi.StrView, out *abi.ViewModelInstance) abi.Status {
	if out != nil {
		*out = 0
	}
	pv, st := e.access("view_model_instance_get_view_model", h, path, abi.DataTypeViewModel, out == nil)
	if st != abi.StatusOK {
		return st
	}
	if pv.nested == nil {
		return abi.StatusNotFound
	}
	return e.addInstance(out, pv.nested)
}

// The replacement must be an instance of the property's view model.
func (e *Engine) viewModelInstanceReplaceViewModel(h abi.ViewModelInstance, path abi.StrView, value abi.ViewModelInstance) abi.Status {
	const op = "view_model_instance_replace_view_model"
	v, ok := e.instance(op, h)
	if !ok {
		return abi.StatusNull
	}
	nv, ok := e.instance(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv, st := v.typed(text(path), abi.DataTypeViewModel)
	if st != abi.StatusOK {
		return st
	}
	if nv.vm.name != pv.def.vm {
		return abi.StatusNotFound
	}
	pv.nested, pv.changed = nv, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstancePropertyHasChanged(h abi.ViewModelInstance, path abi.StrView, out *bool) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	v, ok := e.instance("view_model_instance_property_has_changed", h)
	if !ok {
		return abi.StatusNull
	}
	pv, st := v.resolve(text(path))
	if st != abi.StatusOK {
		return st
	}
	*out = pv.changed
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceClearPropertyChanges(h abi.ViewModelInstance, path abi.StrView) abi.Status {
	v, ok := e.instance("view_model_instance_clear_property_changes", h)
	if !ok {
		return abi.StatusNull
	}
	pv, st := v.resolve(text(path))
	if st != abi.StatusOK {
		return st
	}
	pv.changed = false
	return abi.StatusOK
}

func (e *Engine) list(op string, h abi.ViewModelInstance, path abi.StrView) (*propValue, abi.Status) {
	return e.access(op, h, path, abi.DataTypeList, false)
}

func (e *Engine) viewModelInstanceListSize(h abi.ViewModelInstance, path abi.StrView, out *uintptr) abi.Status {
	pv, st := e.access("view_model_instance_list_size", h, path, abi.DataTypeList, out == nil)
	if st != abi.StatusOK {
		return st
	}
	*out = uintptr(len(pv.list))
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceListInstanceAt(h abi.ViewModelInstance, path abi.StrView, index uintptr, out *abi.ViewModelInstance) abi.Status {
	if out != nil {
		*out = 0
	}
	pv, st := e.access("view_model_instance_list_instance_at", h, path, abi.DataTypeList, out == nil)
	if st != abi.StatusOK {
		return st
	}
	if index >= uintptr(len(pv.list)) || index > math.MaxInt32 {
		return abi.StatusOutOfRange
	}
	return e.addInstance(out, pv.list[index])
}

func (e *Engine) viewModelInstanceListAddInstance(h abi.ViewModelInstance, path abi.StrView, value abi.ViewModelInstance) abi.Status {
	const op = "view_model_instance_list_add_instance"
	item, ok := e.instance(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv, st := e.list(op, h, path)
	if st != abi.StatusOK {
		return st
	}
	pv.list = append(pv.list, item)
	pv.changed = true
	return abi.StatusOK
}

// An index at or past the end appends.
func (e *Engine) viewModelInstanceListAddInstanceAt(h abi.ViewModelInstance, path abi.StrView, value abi.ViewModelInstance, index uintptr, added *bool) abi.Status {
	const op = "view_model_instance_list_add_instance_at"
	if added == nil {
		return abi.StatusNull
	}
	*added = false
	item, ok := e.instance(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv, st := e.list(op, h, path)
	if st != abi.StatusOK {
		return st
	}
	if index >= uintptr(len(pv.list)) {
		pv.list = append(pv.list, item)
	} else {
		pv.list = slices.Insert(pv.list, int(index), item)
	}
	pv.changed = true
	*added = true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceListRemoveInstance(h abi.ViewModelInstance, path abi.StrView, value abi.ViewModelInstance) abi.Status {
	const op = "view_model_instance_list_remove_instance"
	item, ok := e.instance(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv, st := e.list(op, h, path)
	if st != abi.StatusOK {
		return st
	}
	n := len(pv.list)
	pv.list = slices.DeleteFunc(pv.list, func(x *vmInstance) bool { return x == item })
	if len(pv.list) != n {
		pv.changed = true
	}
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceListRemoveInstanceAt(h abi.ViewModelInstance, path abi.StrView, index uintptr) abi.Status {
	pv, st := e.list("view_model_instance_list_remove_instance_at", h, path)
	if st != abi.StatusOK {
		return st
	}
	if index >= uintptr(len(pv.list)) || index > math.MaxInt32 {
		return abi.StatusOutOfRange
	}
	pv.list = slices.Delete(pv.list, int(index), int(index)+1)
	pv.changed = true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceListSwap(h abi.ViewModelInstance, path abi.StrView, a, b uint32) abi.Status {
	pv, st := e.list("view_model_instance_list_swap", h, path)
	if st != abi.StatusOK {
		return st
	}
	if int(a) >= len(pv.list) || int(b) >= len(pv.list) {
		return abi.StatusOutOfRange
	}
	pv.list[a], pv.list[b] = pv.list[b], pv.list[a]
	pv.changed = true
	return abi.StatusOK
}

// A null artboard clears the property.
func (e *Engine) viewModelInstanceSetArtboard(h abi.ViewModelInstance, path abi.StrView, value abi.BindableArtboard) abi.Status {
	const op = "view_model_instance_set_artboard"
	pv, st := e.access(op, h, path, abi.DataTypeArtboard, false)
	if st != abi.StatusOK {
		return st
	}
	if value == 0 {
		pv.artboard, pv.changed = nil, true
		return abi.StatusOK
	}
	b, ok := object[*bindableObj](e, op, uintptr(value), KindBindableArtboard)
	if !ok {
		return abi.StatusNull
	}
	pv.artboard, pv.changed = b.ab, true
	return abi.StatusOK
}

func (e *Engine) viewModelInstanceSetArtboardViewModel(h abi.ViewModelInstance, path abi.StrView, value abi.ViewModelInstance) abi.Status {
	const op = "view_model_instance_set_artboard_view_model"
	pv, st := e.access(op, h, path, abi.DataTypeArtboard, false)
	if st != abi.StatusOK {
		return st
	}
	if value == 0 {
		pv.artboardVM = nil
		return abi.StatusOK
	}
	nv, ok := e.instance(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv.artboardVM = nv
	if pv.artboard != nil {
		pv.artboard.vmi = nv
		pv.artboard.dirty = true
	}
	return abi.StatusOK
}

// A null image clears the property.
func (e *Engine) viewModelInstanceSetImage(h abi.ViewModelInstance, path abi.StrView, value abi.RenderImage) abi.Status {
	const op = "view_model_instance_set_image"
	pv, st := e.access(op, h, path, abi.DataTypeImage, false)
	if st != abi.StatusOK {
		return st
	}
	if value == 0 {
		pv.image, pv.changed = nil, true
		return abi.StatusOK
	}
	img, ok := e.renderImage(op, value)
	if !ok {
		return abi.StatusNull
	}
	pv.image, pv.changed = img, true
	return abi.StatusOK
}

// viewModelInstanceGetImage hands out a new reference, or leaves out null
// when no image is set.
func (e *Engine) viewModelInstanceGetImage(h abi.ViewModelInstance, path abi.StrView, out *abi.RenderImage) abi.Status {
	if out != nil {
		*out = 0
	}
	pv, st := e.access("view_model_instance_get_image", h, path, abi.DataTypeImage, out == nil)
	if st != abi.StatusOK {
		return st
	}
	if pv.image == nil || e.suppress() {
		return abi.StatusOK
	}
	*out = abi.RenderImage(e.tab.add(KindRenderImage, pv.image))
	return abi.StatusOK
}
