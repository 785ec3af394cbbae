package simengine

import (
	"encoding/base64"
	"fmt"
	"path"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/rive/pkg/abi"
)

// Runtime type keys reported for events.
const (
	eventTypeKey        = 128
	openURLEventTypeKey = 131
)

var loopModes = map[string]uint32{"": 0, "oneShot": 0, "loop": 1, "pingPong": 2}

var keyedProperties = map[string]bool{
	"x": true, "y": true, "scale_x": true, "scale_y": true,
	"rotation": true, "length": true, "opacity": true,
}

var conditionOps = map[string]bool{"": true, "==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true}

var pointerKinds = map[string]bool{"down": true, "up": true, "move": true, "exit": true}

var propertyTypes = map[string]abi.DataType{
	"string":    abi.DataTypeString,
	"number":    abi.DataTypeNumber,
	"boolean":   abi.DataTypeBoolean,
	"color":     abi.DataTypeColor,
	"list":      abi.DataTypeList,
	"enum":      abi.DataTypeEnum,
	"trigger":   abi.DataTypeTrigger,
	"viewModel": abi.DataTypeViewModel,
	"integer":   abi.DataTypeInteger,
	"image":     abi.DataTypeImage,
	"artboard":  abi.DataTypeArtboard,
}

// model is the immutable, compiled form of a document shared by every
// instance created from one file.
type model struct {
	doc        *Document
	artboards  []*artboardDef
	boardIndex map[string]*artboardDef
	defaultAB  *artboardDef
	viewModels []*viewModelDef
	vmIndex    map[string]*viewModelDef
	enums      []*enumDef
	enumIndex  map[string]*enumDef
	assets     []*assetDef
	assetIndex map[string]*assetDef
}

type artboardDef struct {
	doc        *ArtboardDoc
	index      int
	viewModel  *viewModelDef
	frameOrig  bool
	volume     float32
	background uint32
	events     []*eventDef
	eventIndex map[string]*eventDef
	animations []*animationDef
	animIndex  map[string]*animationDef
	machines   []*machineDef
}

type eventDef struct {
	name       string
	url        string
	target     string
	hasURL     bool
	properties []EventPropertyDoc
}

func (e *eventDef) typeKey() uint32 {
	if e.hasURL {
		return openURLEventTypeKey
	}
	return eventTypeKey
}

type animationDef struct {
	name      string
	fps       uint32
	duration  uint32
	speed     float32
	loop      uint32
	workStart uint32
	workEnd   uint32
	workArea  bool
	keys      []KeyDoc
}

// startSeconds and endSeconds honor the work area.
func (a *animationDef) startSeconds() float32 {
	if a.workArea {
		return float32(a.workStart) / float32(a.fps)
	}
	return 0
}

func (a *animationDef) endSeconds() float32 {
	if a.workArea {
		return float32(a.workEnd) / float32(a.fps)
	}
	return float32(a.duration) / float32(a.fps)
}

type machineDef struct {
	doc    *StateMachineDoc
	name   string
	owner  *artboardDef
	states map[string]*StateDoc
}

type enumDef struct {
	name   string
	values []string
}

func (e *enumDef) indexOf(v string) (uint32, bool) {
	for i, s := range e.values {
		if s == v {
			return uint32(i), true
		}
	}
	return 0, false
}

type viewModelDef struct {
	name      string
	props     []*propDef
	propIndex map[string]*propDef
	instances []*InstanceDoc
	defInst   *InstanceDoc
}

type propDef struct {
	name  string
	typ   abi.DataType
	enum  *enumDef
	vm    string
	def   yaml.Node
	index int
}

type assetKind uint8

const (
	assetImage assetKind = iota + 1
	assetFont
	assetAudio
)

type assetDef struct {
	id       int
	name     string
	kind     assetKind
	ext      string
	cdnUUID  string
	cdnBase  string
	inBand   []byte
	uniqueFN string
}

func compile(doc *Document) (*model, error) {
	m := &model{
		doc:        doc,
		boardIndex: make(map[string]*artboardDef, len(doc.Artboards)),
		vmIndex:    make(map[string]*viewModelDef, len(doc.ViewModels)),
		enumIndex:  make(map[string]*enumDef, len(doc.Enums)),
		assetIndex: make(map[string]*assetDef, len(doc.Assets)),
	}
	for i := range doc.Enums {
		e := &enumDef{name: doc.Enums[i].Name, values: doc.Enums[i].Values}
		m.enums = append(m.enums, e)
		m.enumIndex[e.name] = e
	}
	for i := range doc.ViewModels {
		vd := &doc.ViewModels[i]
		vm := &viewModelDef{name: vd.Name, propIndex: make(map[string]*propDef, len(vd.Properties))}
		for j, p := range vd.Properties {
			pd := &propDef{name: p.Name, typ: propertyTypes[p.Type], enum: m.enumIndex[p.Enum], vm: p.ViewModel, def: p.Default, index: j}
			vm.props = append(vm.props, pd)
			vm.propIndex[p.Name] = pd
		}
		for j := range vd.Instances {
			vm.instances = append(vm.instances, &vd.Instances[j])
			if vd.Instances[j].Name == vd.DefaultInstance {
				vm.defInst = &vd.Instances[j]
			}
		}
		if vm.defInst == nil && len(vm.instances) > 0 {
			vm.defInst = vm.instances[0]
		}
		m.viewModels = append(m.viewModels, vm)
		m.vmIndex[vm.name] = vm
	}
	for i, a := range doc.Assets {
		ad := &assetDef{id: i, name: a.Name, ext: a.Extension, cdnUUID: a.CDNUUID, cdnBase: a.CDNBaseURL}
		switch a.Type {
		case "image":
			ad.kind = assetImage
		case "font":
			ad.kind = assetFont
		case "audio":
			ad.kind = assetAudio
		}
		if ad.ext == "" {
			ad.ext = defaultExtension(ad.kind)
		}
		if a.Data != "" {
			b, err := base64.StdEncoding.DecodeString(a.Data)
			if err != nil {
				return nil, err
			}
			ad.inBand = b
		}
		stem := a.Name
		if ext := path.Ext(stem); ext != "" {
			stem = stem[:len(stem)-len(ext)]
		}
		ad.uniqueFN = stem + "-" + strconv.Itoa(i) + "." + ad.ext
		m.assets = append(m.assets, ad)
		m.assetIndex[ad.name] = ad
	}
	for i := range doc.Artboards {
		d, err := compileArtboard(&doc.Artboards[i], i, m)
		if err != nil {
			return nil, err
		}
		m.artboards = append(m.artboards, d)
		m.boardIndex[d.doc.Name] = d
	}
	m.defaultAB = m.artboards[0]
	if doc.DefaultArtboard != "" {
		m.defaultAB = m.boardIndex[doc.DefaultArtboard]
	}
	if err := checkValues(m); err != nil {
		return nil, err
	}
	return m, nil
}

func defaultExtension(k assetKind) string {
	switch k {
	case assetImage:
		return "png"
	case assetFont:
		return "ttf"
	default:
		return "wav"
	}
}

func compileArtboard(doc *ArtboardDoc, index int, m *model) (*artboardDef, error) {
	d := &artboardDef{
		doc:        doc,
		index:      index,
		viewModel:  m.vmIndex[doc.ViewModel],
		frameOrig:  true,
		volume:     1,
		eventIndex: make(map[string]*eventDef, len(doc.Events)),
		animIndex:  make(map[string]*animationDef, len(doc.Animations)),
	}
	if doc.FrameOrigin != nil {
		d.frameOrig = *doc.FrameOrigin
	}
	if doc.Volume != nil {
		d.volume = *doc.Volume
	}
	if doc.Background != "" {
		c, err := parseColor(doc.Background)
		if err != nil {
			return nil, fmt.Errorf("artboard %q: %w", doc.Name, err)
		}
		d.background = c
	}
	for _, e := range doc.Events {
		ev := &eventDef{name: e.Name, url: e.URL, hasURL: e.URL != "", properties: e.Properties}
		if ev.hasURL {
			ev.target = e.Target
			if ev.target == "" {
				ev.target = "_blank"
			}
		}
		d.events = append(d.events, ev)
		d.eventIndex[ev.name] = ev
	}
	for _, a := range doc.Animations {
		ad := &animationDef{
			name:      a.Name,
			fps:       a.FPS,
			duration:  a.Duration,
			speed:     1,
			loop:      loopModes[a.Loop],
			workStart: a.WorkStart,
			workEnd:   a.WorkEnd,
			workArea:  a.EnableWorkArea,
			keys:      a.Keys,
		}
		if ad.fps == 0 {
			ad.fps = 60
		}
		if a.Speed != nil {
			ad.speed = *a.Speed
		}
		d.animations = append(d.animations, ad)
		d.animIndex[ad.name] = ad
	}
	for i := range doc.StateMachines {
		sd := &doc.StateMachines[i]
		md := &machineDef{doc: sd, name: sd.Name, owner: d, states: make(map[string]*StateDoc, len(sd.States))}
		for j := range sd.States {
			md.states[sd.States[j].Name] = &sd.States[j]
		}
		d.machines = append(d.machines, md)
	}
	return d, nil
}

// sample returns the keyed value at frame f, holding the first and last
// values outside the keyed range.
func sample(frames []FrameDoc, f float32) float32 {
	if len(frames) == 0 {
		return 0
	}
	if f <= float32(frames[0].Frame) {
		return frames[0].Value
	}
	for i := 1; i < len(frames); i++ {
		a, b := frames[i-1], frames[i]
		if f <= float32(b.Frame) {
			span := float32(b.Frame) - float32(a.Frame)
			if span <= 0 {
				return b.Value
			}
			t := (f - float32(a.Frame)) / span
			return a.Value + (b.Value-a.Value)*t
		}
	}
	return frames[len(frames)-1].Value
}
