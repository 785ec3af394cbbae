package simengine

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/rive/pkg/graphics"
)

// Format is the value every document must carry in its format key.
const Format = "rive-sim/1"

// Document is a scene description.
type Document struct {
	Format          string         `yaml:"format"`
	DefaultArtboard string         `yaml:"default_artboard,omitempty"`
	Artboards       []ArtboardDoc  `yaml:"artboards"`
	ViewModels      []ViewModelDoc `yaml:"view_models,omitempty"`
	Enums           []EnumDoc      `yaml:"enums,omitempty"`
	Assets          []AssetDoc     `yaml:"assets,omitempty"`
}

// ArtboardDoc describes one artboard template.
type ArtboardDoc struct {
	Name          string            `yaml:"name"`
	Width         float32           `yaml:"width"`
	Height        float32           `yaml:"height"`
	OriginX       float32           `yaml:"origin_x,omitempty"`
	OriginY       float32           `yaml:"origin_y,omitempty"`
	FrameOrigin   *bool             `yaml:"frame_origin,omitempty"`
	Volume        *float32          `yaml:"volume,omitempty"`
	Background    string            `yaml:"background,omitempty"`
	ViewModel     string            `yaml:"view_model,omitempty"`
	Audio         []string          `yaml:"audio,omitempty"`
	Components    []ComponentDoc    `yaml:"components,omitempty"`
	Paths         []PathDoc         `yaml:"paths,omitempty"`
	TextRuns      []TextRunDoc      `yaml:"text_runs,omitempty"`
	Images        []ImageDoc        `yaml:"images,omitempty"`
	Nested        []NestedDoc       `yaml:"nested,omitempty"`
	Events        []EventDoc        `yaml:"events,omitempty"`
	Animations    []AnimationDoc    `yaml:"animations,omitempty"`
	StateMachines []StateMachineDoc `yaml:"state_machines,omitempty"`
}

// ComponentDoc is a transform component. Type is node, bone or root_bone.
type ComponentDoc struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type,omitempty"`
	Parent   string   `yaml:"parent,omitempty"`
	X        float32  `yaml:"x,omitempty"`
	Y        float32  `yaml:"y,omitempty"`
	ScaleX   *float32 `yaml:"scale_x,omitempty"`
	ScaleY   *float32 `yaml:"scale_y,omitempty"`
	Rotation float32  `yaml:"rotation,omitempty"`
	Length   float32  `yaml:"length,omitempty"`
	Opacity  *float32 `yaml:"opacity,omitempty"`
}

// PathDoc is a filled path attached to a component.
type PathDoc struct {
	Name     string      `yaml:"name"`
	Node     string      `yaml:"node,omitempty"`
	Fill     string      `yaml:"fill,omitempty"`
	Stroke   string      `yaml:"stroke,omitempty"`
	Width    float32     `yaml:"stroke_width,omitempty"`
	Closed   bool        `yaml:"closed,omitempty"`
	Vertices []VertexDoc `yaml:"vertices"`
}

// VertexDoc is a path vertex. A vertex with both control points is cubic.
type VertexDoc struct {
	X   float32   `yaml:"x"`
	Y   float32   `yaml:"y"`
	In  *PointDoc `yaml:"in,omitempty"`
	Out *PointDoc `yaml:"out,omitempty"`
}

// PointDoc is a 2D point.
type PointDoc struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// TextRunDoc is a named run of text.
type TextRunDoc struct {
	Name  string  `yaml:"name"`
	Text  string  `yaml:"text"`
	Node  string  `yaml:"node,omitempty"`
	Size  float32 `yaml:"size,omitempty"`
	Color string  `yaml:"color,omitempty"`
	Font  string  `yaml:"font,omitempty"`
}

// ImageDoc draws an image asset at a component.
type ImageDoc struct {
	Name  string `yaml:"name"`
	Asset string `yaml:"asset"`
	Node  string `yaml:"node,omitempty"`
}

// NestedDoc instantiates another artboard inside this one. Inputs and text
// runs of the nested artboard are reachable by path.
type NestedDoc struct {
	Name         string `yaml:"name"`
	Artboard     string `yaml:"artboard"`
	StateMachine string `yaml:"state_machine,omitempty"`
}

// EventDoc is an event declared on an artboard. Events with a url are
// open-url events.
type EventDoc struct {
	Name       string             `yaml:"name"`
	URL        string             `yaml:"url,omitempty"`
	Target     string             `yaml:"target,omitempty"`
	Properties []EventPropertyDoc `yaml:"properties,omitempty"`
}

// EventPropertyDoc is a custom event property. Exactly one value is set.
type EventPropertyDoc struct {
	Name   string   `yaml:"name"`
	Bool   *bool    `yaml:"bool,omitempty"`
	Number *float32 `yaml:"number,omitempty"`
	String *string  `yaml:"string,omitempty"`
}

// AnimationDoc is a keyframed linear animation. Frame values are in
// frames at FPS.
type AnimationDoc struct {
	Name           string   `yaml:"name"`
	FPS            uint32   `yaml:"fps,omitempty"`
	Duration       uint32   `yaml:"duration"`
	Speed          *float32 `yaml:"speed,omitempty"`
	Loop           string   `yaml:"loop,omitempty"`
	WorkStart      uint32   `yaml:"work_start,omitempty"`
	WorkEnd        uint32   `yaml:"work_end,omitempty"`
	EnableWorkArea bool     `yaml:"enable_work_area,omitempty"`
	Keys           []KeyDoc `yaml:"keys,omitempty"`
}

// KeyDoc animates one property of one component.
type KeyDoc struct {
	Object   string     `yaml:"object"`
	Property string     `yaml:"property"`
	Frames   []FrameDoc `yaml:"frames"`
}

// FrameDoc is a keyframe.
type FrameDoc struct {
	Frame uint32  `yaml:"frame"`
	Value float32 `yaml:"value"`
}

// StateMachineDoc is a single-layer state machine.
type StateMachineDoc struct {
	Name        string          `yaml:"name"`
	Inputs      []InputDoc      `yaml:"inputs,omitempty"`
	States      []StateDoc      `yaml:"states,omitempty"`
	Transitions []TransitionDoc `yaml:"transitions,omitempty"`
	Listeners   []ListenerDoc   `yaml:"listeners,omitempty"`
	Bindings    []BindingDoc    `yaml:"bindings,omitempty"`
}

// InputDoc declares an input. Type is bool, number or trigger.
type InputDoc struct {
	Name  string  `yaml:"name"`
	Type  string  `yaml:"type"`
	Value float32 `yaml:"value,omitempty"`
}

// StateDoc is an animation state. Events are reported when it is entered.
type StateDoc struct {
	Name      string   `yaml:"name"`
	Animation string   `yaml:"animation,omitempty"`
	Events    []string `yaml:"events,omitempty"`
}

// TransitionDoc moves from one state to another when every condition
// holds. From may be "entry" or "any".
type TransitionDoc struct {
	From       string         `yaml:"from"`
	To         string         `yaml:"to"`
	Conditions []ConditionDoc `yaml:"conditions,omitempty"`
	Events     []string       `yaml:"events,omitempty"`
}

// ConditionDoc compares an input against Value. Triggers ignore Op and
// Value and hold while fired.
type ConditionDoc struct {
	Input string  `yaml:"input"`
	Op    string  `yaml:"op,omitempty"`
	Value float32 `yaml:"value,omitempty"`
}

// ListenerDoc reacts to pointer events inside the bounds of a path, or
// anywhere when Target is empty. Action is set, toggle or fire.
type ListenerDoc struct {
	On     string  `yaml:"on"`
	Target string  `yaml:"target,omitempty"`
	Input  string  `yaml:"input,omitempty"`
	Action string  `yaml:"action,omitempty"`
	Value  float32 `yaml:"value,omitempty"`
	Event  string  `yaml:"event,omitempty"`
}

// BindingDoc drives an input from a view-model property path.
type BindingDoc struct {
	Input string `yaml:"input"`
	Path  string `yaml:"path"`
}

// ViewModelDoc declares a view model and its named instances.
type ViewModelDoc struct {
	Name            string        `yaml:"name"`
	Properties      []PropertyDoc `yaml:"properties"`
	Instances       []InstanceDoc `yaml:"instances,omitempty"`
	DefaultInstance string        `yaml:"default_instance,omitempty"`
}

// PropertyDoc declares a property. Enum names the enum of enum properties;
// ViewModel names the view model of nested and list properties.
type PropertyDoc struct {
	Name      string    `yaml:"name"`
	Type      string    `yaml:"type"`
	Enum      string    `yaml:"enum,omitempty"`
	ViewModel string    `yaml:"view_model,omitempty"`
	Default   yaml.Node `yaml:"default,omitempty"`
}

// InstanceDoc is a named instance. Values are keyed by property name.
type InstanceDoc struct {
	Name   string               `yaml:"name"`
	Values map[string]yaml.Node `yaml:"values,omitempty"`
}

// EnumDoc declares a data enum.
type EnumDoc struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// AssetDoc is a referenced asset. Data carries base64 in-band bytes;
// assets without data are hosted out of band.
type AssetDoc struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Extension  string `yaml:"extension,omitempty"`
	CDNUUID    string `yaml:"cdn_uuid,omitempty"`
	CDNBaseURL string `yaml:"cdn_base_url,omitempty"`
	Data       string `yaml:"data,omitempty"`
}

// Parse decodes and validates a document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("simengine: empty document")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("simengine: %w", err)
	}
	if doc.Format != Format {
		return nil, fmt.Errorf("simengine: format %q, want %q", doc.Format, Format)
	}
	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("simengine: %w", err)
	}
	return &doc, nil
}

// Marshal encodes doc as YAML.
func (d *Document) Marshal() ([]byte, error) {
	if d.Format == "" {
		d.Format = Format
	}
	return yaml.Marshal(d)
}

func (d *Document) validate() error {
	if len(d.Artboards) == 0 {
		return fmt.Errorf("no artboards")
	}
	boards := make(map[string]bool, len(d.Artboards))
	for _, ab := range d.Artboards {
		if ab.Name == "" {
			return fmt.Errorf("artboard without a name")
		}
		if boards[ab.Name] {
			return fmt.Errorf("duplicate artboard %q", ab.Name)
		}
		boards[ab.Name] = true
	}
	if d.DefaultArtboard != "" && !boards[d.DefaultArtboard] {
		return fmt.Errorf("default artboard %q not declared", d.DefaultArtboard)
	}

	enums := make(map[string]bool, len(d.Enums))
	for _, e := range d.Enums {
		enums[e.Name] = true
	}
	vms := make(map[string]bool, len(d.ViewModels))
	for _, vm := range d.ViewModels {
		vms[vm.Name] = true
	}
	assets := make(map[string]string, len(d.Assets))
	for _, a := range d.Assets {
		switch a.Type {
		case "image", "font", "audio":
		default:
			return fmt.Errorf("asset %q: unknown type %q", a.Name, a.Type)
		}
		if a.Data != "" {
			if _, err := base64.StdEncoding.DecodeString(a.Data); err != nil {
				return fmt.Errorf("asset %q: %w", a.Name, err)
			}
		}
		assets[a.Name] = a.Type
	}

	for _, ab := range d.Artboards {
		if err := ab.validate(boards, assets); err != nil {
			return fmt.Errorf("artboard %q: %w", ab.Name, err)
		}
		if ab.ViewModel != "" && !vms[ab.ViewModel] {
			return fmt.Errorf("artboard %q: unknown view model %q", ab.Name, ab.ViewModel)
		}
	}
	for _, vm := range d.ViewModels {
		for _, p := range vm.Properties {
			if _, ok := propertyTypes[p.Type]; !ok {
				return fmt.Errorf("view model %q: property %q has unknown type %q", vm.Name, p.Name, p.Type)
			}
			if p.Type == "enum" && !enums[p.Enum] {
				return fmt.Errorf("view model %q: property %q uses unknown enum %q", vm.Name, p.Name, p.Enum)
			}
			if (p.Type == "viewModel" || p.Type == "list") && !vms[p.ViewModel] {
				return fmt.Errorf("view model %q: property %q uses unknown view model %q", vm.Name, p.Name, p.ViewModel)
			}
		}
	}
	return nil
}

func (ab *ArtboardDoc) validate(boards map[string]bool, assets map[string]string) error {
	comps := make(map[string]bool, len(ab.Components))
	for _, c := range ab.Components {
		switch c.Type {
		case "", "node", "bone", "root_bone":
		default:
			return fmt.Errorf("component %q: unknown type %q", c.Name, c.Type)
		}
		if c.Parent != "" && !comps[c.Parent] {
			return fmt.Errorf("component %q: parent %q must be declared before it", c.Name, c.Parent)
		}
		comps[c.Name] = true
	}
	needNode := func(what, name, node string) error {
		if node != "" && !comps[node] {
			return fmt.Errorf("%s %q: unknown component %q", what, name, node)
		}
		return nil
	}
	paths := make(map[string]bool, len(ab.Paths))
	for _, p := range ab.Paths {
		if err := needNode("path", p.Name, p.Node); err != nil {
			return err
		}
		for _, c := range []string{p.Fill, p.Stroke} {
			if c == "" {
				continue
			}
			if _, err := parseColor(c); err != nil {
				return fmt.Errorf("path %q: %w", p.Name, err)
			}
		}
		paths[p.Name] = true
	}
	for _, t := range ab.TextRuns {
		if err := needNode("text run", t.Name, t.Node); err != nil {
			return err
		}
		if t.Font != "" && assets[t.Font] != "font" {
			return fmt.Errorf("text run %q: %q is not a font asset", t.Name, t.Font)
		}
	}
	for _, im := range ab.Images {
		if err := needNode("image", im.Name, im.Node); err != nil {
			return err
		}
		if assets[im.Asset] != "image" {
			return fmt.Errorf("image %q: %q is not an image asset", im.Name, im.Asset)
		}
	}
	for _, a := range ab.Audio {
		if assets[a] != "audio" {
			return fmt.Errorf("%q is not an audio asset", a)
		}
	}
	for _, n := range ab.Nested {
		if !boards[n.Artboard] || n.Artboard == ab.Name {
			return fmt.Errorf("nested %q: bad artboard %q", n.Name, n.Artboard)
		}
	}
	events := make(map[string]bool, len(ab.Events))
	for _, e := range ab.Events {
		for _, p := range e.Properties {
			set := 0
			if p.Bool != nil {
				set++
			}
			if p.Number != nil {
				set++
			}
			if p.String != nil {
				set++
			}
			if set != 1 {
				return fmt.Errorf("event %q: property %q needs exactly one value", e.Name, p.Name)
			}
		}
		events[e.Name] = true
	}
	anims := make(map[string]bool, len(ab.Animations))
	for _, a := range ab.Animations {
		if _, ok := loopModes[a.Loop]; !ok {
			return fmt.Errorf("animation %q: unknown loop %q", a.Name, a.Loop)
		}
		for _, k := range a.Keys {
			if !comps[k.Object] {
				return fmt.Errorf("animation %q: unknown object %q", a.Name, k.Object)
			}
			if _, ok := keyedProperties[k.Property]; !ok {
				return fmt.Errorf("animation %q: cannot key %q", a.Name, k.Property)
			}
		}
		anims[a.Name] = true
	}
	for _, sm := range ab.StateMachines {
		if err := sm.validate(anims, events, paths); err != nil {
			return fmt.Errorf("state machine %q: %w", sm.Name, err)
		}
	}
	return nil
}

func (sm *StateMachineDoc) validate(anims, events, paths map[string]bool) error {
	inputs := make(map[string]string, len(sm.Inputs))
	for _, in := range sm.Inputs {
		switch in.Type {
		case "bool", "number", "trigger":
		default:
			return fmt.Errorf("input %q: unknown type %q", in.Name, in.Type)
		}
		inputs[in.Name] = in.Type
	}
	states := map[string]bool{"entry": true, "any": true, "exit": true}
	for _, s := range sm.States {
		if s.Animation != "" && !anims[s.Animation] {
			return fmt.Errorf("state %q: unknown animation %q", s.Name, s.Animation)
		}
		for _, e := range s.Events {
			if !events[e] {
				return fmt.Errorf("state %q: unknown event %q", s.Name, e)
			}
		}
		states[s.Name] = true
	}
	for _, t := range sm.Transitions {
		if !states[t.From] || !states[t.To] || t.To == "entry" || t.To == "any" {
			return fmt.Errorf("bad transition %s -> %s", t.From, t.To)
		}
		for _, c := range t.Conditions {
			if _, ok := inputs[c.Input]; !ok {
				return fmt.Errorf("transition %s -> %s: unknown input %q", t.From, t.To, c.Input)
			}
			if _, ok := conditionOps[c.Op]; !ok {
				return fmt.Errorf("transition %s -> %s: unknown op %q", t.From, t.To, c.Op)
			}
		}
		for _, e := range t.Events {
			if !events[e] {
				return fmt.Errorf("transition %s -> %s: unknown event %q", t.From, t.To, e)
			}
		}
	}
	for _, l := range sm.Listeners {
		if _, ok := pointerKinds[l.On]; !ok {
			return fmt.Errorf("listener: unknown pointer event %q", l.On)
		}
		if l.Target != "" && !paths[l.Target] {
			return fmt.Errorf("listener: unknown target %q", l.Target)
		}
		if l.Input != "" {
			if _, ok := inputs[l.Input]; !ok {
				return fmt.Errorf("listener: unknown input %q", l.Input)
			}
		}
		if l.Event != "" && !events[l.Event] {
			return fmt.Errorf("listener: unknown event %q", l.Event)
		}
	}
	for _, b := range sm.Bindings {
		if _, ok := inputs[b.Input]; !ok {
			return fmt.Errorf("binding: unknown input %q", b.Input)
		}
	}
	return nil
}

// parseColor accepts #RRGGBB and #AARRGGBB.
func parseColor(s string) (uint32, error) {
	c, err := graphics.ParseHex(s)
	return uint32(c), err
}
