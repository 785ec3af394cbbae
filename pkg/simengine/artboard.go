package simengine

import (
	"math"
	"strings"

	"github.com/go-drift/rive/pkg/abi"
)

type artboardObj struct {
	def  *artboardDef
	file *fileObj

	width, height float32
	frameOrigin   bool
	volume        float32

	comps     []*component
	compIndex map[string]*component
	paths     []*pathShape
	texts     []*textRun
	textIndex map[string]*textRun
	images    []*imageShape
	nested    map[string]*nestedObj

	vmi       *vmInstance
	dirty     bool
	didChange bool
}

type component struct {
	name   string
	kind   string
	parent *component

	x, y, scaleX, scaleY, rotation float32
	length, opacity                float32
}

type pathShape struct {
	doc    *PathDoc
	node   *component
	fill   uint32
	stroke uint32
}

type textRun struct {
	name  string
	text  string
	node  *component
	size  float32
	color uint32
	font  string
}

type imageShape struct {
	doc  *ImageDoc
	node *component
}

type nestedObj struct {
	ab *artboardObj
	sm *smInstance
}

func newArtboard(f *fileObj, d *artboardDef) *artboardObj {
	ab := &artboardObj{
		def:         d,
		file:        f,
		width:       d.doc.Width,
		height:      d.doc.Height,
		frameOrigin: d.frameOrig,
		volume:      d.volume,
		compIndex:   make(map[string]*component, len(d.doc.Components)),
		textIndex:   make(map[string]*textRun, len(d.doc.TextRuns)),
		nested:      make(map[string]*nestedObj, len(d.doc.Nested)),
	}
	for _, c := range d.doc.Components {
		comp := &component{
			name:     c.Name,
			kind:     c.Type,
			parent:   ab.compIndex[c.Parent],
			x:        c.X,
			y:        c.Y,
			scaleX:   1,
			scaleY:   1,
			rotation: c.Rotation,
			length:   c.Length,
			opacity:  1,
		}
		if comp.kind == "" {
			comp.kind = "node"
		}
		if c.ScaleX != nil {
			comp.scaleX = *c.ScaleX
		}
		if c.ScaleY != nil {
			comp.scaleY = *c.ScaleY
		}
		if c.Opacity != nil {
			comp.opacity = *c.Opacity
		}
		ab.comps = append(ab.comps, comp)
		ab.compIndex[comp.name] = comp
	}
	for i := range d.doc.Paths {
		p := &d.doc.Paths[i]
		shape := &pathShape{doc: p, node: ab.compIndex[p.Node]}
		if p.Fill != "" {
			shape.fill, _ = parseColor(p.Fill)
		}
		if p.Stroke != "" {
			shape.stroke, _ = parseColor(p.Stroke)
		}
		ab.paths = append(ab.paths, shape)
	}
	for _, t := range d.doc.TextRuns {
		run := &textRun{name: t.Name, text: t.Text, node: ab.compIndex[t.Node], size: t.Size, color: 0xff000000, font: t.Font}
		if run.size == 0 {
			run.size = 16
		}
		if t.Color != "" {
			run.color, _ = parseColor(t.Color)
		}
		ab.texts = append(ab.texts, run)
		ab.textIndex[run.name] = run
	}
	for i := range d.doc.Images {
		im := &d.doc.Images[i]
		ab.images = append(ab.images, &imageShape{doc: im, node: ab.compIndex[im.Node]})
	}
	for _, n := range d.doc.Nested {
		child := newArtboard(f, f.m.boardIndex[n.Artboard])
		no := &nestedObj{ab: child}
		for _, md := range child.def.machines {
			if md.name == n.StateMachine {
				no.sm = newSMInstance(md, child)
			}
		}
		ab.nested[n.Name] = no
	}
	return ab
}

// resolve walks a slash-separated nested artboard path. The empty path is
// the artboard itself.
func (ab *artboardObj) resolve(path string) (*nestedObj, *artboardObj) {
	if path == "" {
		return nil, ab
	}
	cur := ab
	var n *nestedObj
	for _, seg := range strings.Split(path, "/") {
		next, ok := cur.nested[seg]
		if !ok {
			return nil, nil
		}
		n, cur = next, next.ab
	}
	return n, cur
}

func (ab *artboardObj) advance(seconds float32) bool {
	for _, n := range ab.nested {
		if n.sm != nil {
			n.sm.advance(seconds, true)
		}
		if n.ab.advance(seconds) {
			ab.dirty = true
		}
	}
	changed := ab.dirty
	ab.dirty = false
	ab.didChange = changed
	return changed
}

func (ab *artboardObj) bounds() abi.AABB {
	if ab.frameOrigin {
		return abi.AABB{MaxX: ab.width, MaxY: ab.height}
	}
	x := -ab.def.doc.OriginX * ab.width
	y := -ab.def.doc.OriginY * ab.height
	return abi.AABB{MinX: x, MinY: y, MaxX: x + ab.width, MaxY: y + ab.height}
}

// local is translate * rotate * scale. A bone child sits at the tip of its
// parent bone.
func (c *component) local() abi.Mat2D {
	x := c.x
	if c.kind == "bone" && c.parent != nil && (c.parent.kind == "bone" || c.parent.kind == "root_bone") {
		x += c.parent.length
	}
	sin, cos := math.Sincos(float64(c.rotation))
	return abi.Mat2D{
		XX: float32(cos) * c.scaleX,
		XY: float32(sin) * c.scaleX,
		YX: -float32(sin) * c.scaleY,
		YY: float32(cos) * c.scaleY,
		TX: x,
		TY: c.y,
	}
}

func (c *component) world() abi.Mat2D {
	if c == nil {
		return abi.Identity
	}
	return multiply(c.parent.world(), c.local())
}

func (c *component) parentWorld() abi.Mat2D {
	if c == nil {
		return abi.Identity
	}
	return c.parent.world()
}

// worldOpacity multiplies opacities up the hierarchy.
func (c *component) worldOpacity() float32 {
	o := float32(1)
	for ; c != nil; c = c.parent {
		o *= c.opacity
	}
	return o
}

func (c *component) set(prop string, v float32) {
	switch prop {
	case "x":
		c.x = v
	case "y":
		c.y = v
	case "scale_x":
		c.scaleX = v
	case "scale_y":
		c.scaleY = v
	case "rotation":
		c.rotation = v
	case "length":
		c.length = v
	case "opacity":
		c.opacity = v
	}
}

func (c *component) get(prop string) float32 {
	switch prop {
	case "x":
		return c.x
	case "y":
		return c.y
	case "scale_x":
		return c.scaleX
	case "scale_y":
		return c.scaleY
	case "rotation":
		return c.rotation
	case "length":
		return c.length
	case "opacity":
		return c.opacity
	}
	return 0
}

// worldBounds is the box of a path's vertices in artboard space.
func (p *pathShape) worldBounds() abi.AABB {
	m := p.node.world()
	b := abi.AABB{MinX: math.MaxFloat32, MinY: math.MaxFloat32, MaxX: -math.MaxFloat32, MaxY: -math.MaxFloat32}
	for _, v := range p.doc.Vertices {
		pt := mapPoint(m, abi.Vec2{X: v.X, Y: v.Y})
		b.MinX = min(b.MinX, pt.X)
		b.MinY = min(b.MinY, pt.Y)
		b.MaxX = max(b.MaxX, pt.X)
		b.MaxY = max(b.MaxY, pt.Y)
	}
	return b
}

func (e *Engine) artboardRef(a abi.Artboard)   { e.tab.ref("artboard_ref", uintptr(a), KindArtboard) }
func (e *Engine) artboardUnref(a abi.Artboard) { e.tab.unref("artboard_unref", uintptr(a), KindArtboard) }

func (e *Engine) artboard(op string, a abi.Artboard) (*artboardObj, bool) {
	return object[*artboardObj](e, op, uintptr(a), KindArtboard)
}

func (e *Engine) artboardAdvance(a abi.Artboard, seconds float32, changed *bool) abi.Status {
	if changed == nil {
		return abi.StatusNull
	}
	ab, ok := e.artboard("artboard_advance", a)
	if !ok {
		return abi.StatusNull
	}
	*changed = ab.advance(seconds)
	return abi.StatusOK
}

func (e *Engine) artboardDidChange(a abi.Artboard) bool {
	ab, ok := e.artboard("artboard_did_change", a)
	return ok && ab.didChange
}

func (e *Engine) artboardName(a abi.Artboard) abi.StrView {
	ab, ok := e.artboard("artboard_name", a)
	if !ok {
		return abi.StrView{}
	}
	return str(ab.def.doc.Name)
}

func (e *Engine) artboardBounds(a abi.Artboard) abi.AABB {
	ab, ok := e.artboard("artboard_bounds", a)
	if !ok {
		return abi.AABB{}
	}
	return ab.bounds()
}

func (e *Engine) artboardWidth(a abi.Artboard) float32 {
	ab, ok := e.artboard("artboard_width", a)
	if !ok {
		return 0
	}
	return ab.width
}

func (e *Engine) artboardHeight(a abi.Artboard) float32 {
	ab, ok := e.artboard("artboard_height", a)
	if !ok {
		return 0
	}
	return ab.height
}

func (e *Engine) artboardSetWidth(a abi.Artboard, v float32) {
	if ab, ok := e.artboard("artboard_set_width", a); ok {
		ab.width = v
		ab.dirty = true
	}
}

func (e *Engine) artboardSetHeight(a abi.Artboard, v float32) {
	if ab, ok := e.artboard("artboard_set_height", a); ok {
		ab.height = v
		ab.dirty = true
	}
}

func (e *Engine) artboardFrameOrigin(a abi.Artboard) bool {
	ab, ok := e.artboard("artboard_frame_origin", a)
	return ok && ab.frameOrigin
}

func (e *Engine) artboardSetFrameOrigin(a abi.Artboard, v bool) {
	if ab, ok := e.artboard("artboard_set_frame_origin", a); ok {
		ab.frameOrigin = v
		ab.dirty = true
	}
}

func (e *Engine) artboardHasAudio(a abi.Artboard) bool {
	ab, ok := e.artboard("artboard_has_audio", a)
	return ok && len(ab.def.doc.Audio) > 0
}

func (e *Engine) artboardVolume(a abi.Artboard) float32 {
	ab, ok := e.artboard("artboard_volume", a)
	if !ok {
		return 0
	}
	return ab.volume
}

func (e *Engine) artboardSetVolume(a abi.Artboard, v float32) {
	if ab, ok := e.artboard("artboard_set_volume", a); ok {
		ab.volume = v
	}
}

func (e *Engine) artboardResetSize(a abi.Artboard) abi.Status {
	ab, ok := e.artboard("artboard_reset_size", a)
	if !ok {
		return abi.StatusNull
	}
	ab.width, ab.height = ab.def.doc.Width, ab.def.doc.Height
	ab.dirty = true
	return abi.StatusOK
}

func (e *Engine) artboardAnimationCount(a abi.Artboard) uintptr {
	ab, ok := e.artboard("artboard_animation_count", a)
	if !ok {
		return 0
	}
	return uintptr(len(ab.def.animations))
}

func (e *Engine) artboardStateMachineCount(a abi.Artboard) uintptr {
	ab, ok := e.artboard("artboard_state_machine_count", a)
	if !ok {
		return 0
	}
	return uintptr(len(ab.def.machines))
}

func (e *Engine) artboardEventCount(a abi.Artboard) uintptr {
	ab, ok := e.artboard("artboard_event_count", a)
	if !ok {
		return 0
	}
	return uintptr(len(ab.def.events))
}

func (e *Engine) artboardEventAt(a abi.Artboard, index uintptr, out *abi.EventInfo) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	ab, ok := e.artboard("artboard_event_at", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.def.events)) {
		return abi.StatusOutOfRange
	}
	*out = eventInfo(ab.def.events[index])
	return abi.StatusOK
}

func (e *Engine) artboardEventPropertyAt(a abi.Artboard, event, property uintptr, out *abi.EventPropertyInfo) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	ab, ok := e.artboard("artboard_event_property_at", a)
	if !ok {
		return abi.StatusNull
	}
	if event >= uintptr(len(ab.def.events)) {
		return abi.StatusOutOfRange
	}
	return eventProperty(ab.def.events[event], property, out)
}

func eventInfo(ev *eventDef) abi.EventInfo {
	info := abi.EventInfo{
		Name:          str(ev.name),
		Type:          ev.typeKey(),
		PropertyCount: uintptr(len(ev.properties)),
	}
	if ev.hasURL {
		info.HasURL = true
		info.URL = str(ev.url)
		info.HasTarget = true
		info.Target = str(ev.target)
	}
	return info
}

func eventProperty(ev *eventDef, index uintptr, out *abi.EventPropertyInfo) abi.Status {
	if index >= uintptr(len(ev.properties)) {
		return abi.StatusOutOfRange
	}
	p := &ev.properties[index]
	*out = abi.EventPropertyInfo{Name: str(p.Name)}
	switch {
	case p.Bool != nil:
		out.ValueType = abi.EventPropertyBool
		out.BoolValue = *p.Bool
	case p.Number != nil:
		out.ValueType = abi.EventPropertyNumber
		out.NumberValue = *p.Number
	case p.String != nil:
		out.ValueType = abi.EventPropertyString
		out.StringValue = str(*p.String)
	default:
		return abi.StatusUnsupported
	}
	return abi.StatusOK
}

func (e *Engine) artboardAnimationByIndex(a abi.Artboard, index uintptr, out *abi.LinearAnimation) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_animation_by_index", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.def.animations)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	d := ab.def.animations[index]
	*out = abi.LinearAnimation(e.tab.child(uintptr(a), d, KindLinearAnimation, d))
	return abi.StatusOK
}

func (e *Engine) artboardAnimationByName(a abi.Artboard, name abi.StrView, out *abi.LinearAnimation) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_animation_by_name", a)
	if !ok {
		return abi.StatusNull
	}
	d, ok := ab.def.animIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.LinearAnimation(e.tab.child(uintptr(a), d, KindLinearAnimation, d))
	return abi.StatusOK
}

func (e *Engine) artboardStateMachineByIndex(a abi.Artboard, index uintptr, out *abi.StateMachine) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_state_machine_by_index", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.def.machines)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	d := ab.def.machines[index]
	*out = abi.StateMachine(e.tab.child(uintptr(a), d, KindStateMachine, d))
	return abi.StatusOK
}

func (e *Engine) artboardStateMachineByName(a abi.Artboard, name abi.StrView, out *abi.StateMachine) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_state_machine_by_name", a)
	if !ok {
		return abi.StatusNull
	}
	n := text(name)
	for _, d := range ab.def.machines {
		if d.name != n {
			continue
		}
		if e.suppress() {
			return abi.StatusOK
		}
		*out = abi.StateMachine(e.tab.child(uintptr(a), d, KindStateMachine, d))
		return abi.StatusOK
	}
	return abi.StatusNotFound
}

func (e *Engine) artboardInputByPath(a abi.Artboard, name, path abi.StrView, out *abi.SmiInput) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_input_by_path", a)
	if !ok {
		return abi.StatusNull
	}
	n, _ := ab.resolve(text(path))
	if n == nil || n.sm == nil {
		return abi.StatusNotFound
	}
	in, ok := n.sm.inputIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.SmiInput(e.tab.child(uintptr(a), in, KindInput, in))
	return abi.StatusOK
}

func (e *Engine) artboardTextValueRunCount(a abi.Artboard) uintptr {
	ab, ok := e.artboard("artboard_text_value_run_count", a)
	if !ok {
		return 0
	}
	return uintptr(len(ab.texts))
}

func (e *Engine) artboardTextValueRunNameAt(a abi.Artboard, index uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	ab, ok := e.artboard("artboard_text_value_run_name_at", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.texts)) {
		return abi.StatusOutOfRange
	}
	*out = str(ab.texts[index].name)
	return abi.StatusOK
}

func (e *Engine) artboardTextValueRunTextAt(a abi.Artboard, index uintptr, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	ab, ok := e.artboard("artboard_text_value_run_text_at", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.texts)) {
		return abi.StatusOutOfRange
	}
	*out = str(ab.texts[index].text)
	return abi.StatusOK
}

func (e *Engine) artboardSetTextValueRunTextAt(a abi.Artboard, index uintptr, t abi.StrView) abi.Status {
	ab, ok := e.artboard("artboard_set_text_value_run_text_at", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.texts)) {
		return abi.StatusOutOfRange
	}
	ab.texts[index].text = text(t)
	ab.dirty = true
	return abi.StatusOK
}

func (e *Engine) textByPath(op string, a abi.Artboard, name, path abi.StrView) (*artboardObj, *textRun, abi.Status) {
	ab, ok := e.artboard(op, a)
	if !ok {
		return nil, nil, abi.StatusNull
	}
	_, target := ab.resolve(text(path))
	if target == nil {
		return nil, nil, abi.StatusNotFound
	}
	run, ok := target.textIndex[text(name)]
	if !ok {
		return nil, nil, abi.StatusNotFound
	}
	return target, run, abi.StatusOK
}

func (e *Engine) artboardTextByPathGet(a abi.Artboard, name, path abi.StrView, out *abi.StrView) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	_, run, st := e.textByPath("artboard_text_by_path_get", a, name, path)
	if st != abi.StatusOK {
		return st
	}
	*out = str(run.text)
	return abi.StatusOK
}

func (e *Engine) artboardTextByPathSet(a abi.Artboard, name, path, t abi.StrView) abi.Status {
	ab, run, st := e.textByPath("artboard_text_by_path_set", a, name, path)
	if st != abi.StatusOK {
		return st
	}
	run.text = text(t)
	ab.dirty = true
	return abi.StatusOK
}

// componentByName looks up a component whose kind is one of kinds.
func (e *Engine) componentByName(op string, a abi.Artboard, name abi.StrView, out *uintptr, kinds ...string) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard(op, a)
	if !ok {
		return abi.StatusNull
	}
	c, ok := ab.compIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if len(kinds) > 0 && !contains(kinds, c.kind) {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = e.tab.child(uintptr(a), c, KindComponent, &componentRef{ab: ab, c: c})
	return abi.StatusOK
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (e *Engine) artboardTransformComponentByName(a abi.Artboard, name abi.StrView, out *abi.TransformComponent) abi.Status {
	return e.componentByName("artboard_transform_component_by_name", a, name, (*uintptr)(out))
}

func (e *Engine) artboardNodeByName(a abi.Artboard, name abi.StrView, out *abi.Node) abi.Status {
	return e.componentByName("artboard_node_by_name", a, name, (*uintptr)(out), "node")
}

func (e *Engine) artboardBoneByName(a abi.Artboard, name abi.StrView, out *abi.Bone) abi.Status {
	return e.componentByName("artboard_bone_by_name", a, name, (*uintptr)(out), "bone", "root_bone")
}

func (e *Engine) artboardRootBoneByName(a abi.Artboard, name abi.StrView, out *abi.RootBone) abi.Status {
	return e.componentByName("artboard_root_bone_by_name", a, name, (*uintptr)(out), "root_bone")
}

func (e *Engine) artboardTextValueRunByName(a abi.Artboard, name abi.StrView, out *abi.TextValueRun) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_text_value_run_by_name", a)
	if !ok {
		return abi.StatusNull
	}
	run, ok := ab.textIndex[text(name)]
	if !ok {
		return abi.StatusNotFound
	}
	if e.suppress() {
		return abi.StatusOK
	}
	*out = abi.TextValueRun(e.tab.child(uintptr(a), run, KindTextRun, &textRunRef{ab: ab, run: run}))
	return abi.StatusOK
}

func (e *Engine) artboardTextValueRunByIndex(a abi.Artboard, index uintptr, out *abi.TextValueRun) abi.Status {
	if out == nil {
		return abi.StatusNull
	}
	*out = 0
	ab, ok := e.artboard("artboard_text_value_run_by_index", a)
	if !ok {
		return abi.StatusNull
	}
	if index >= uintptr(len(ab.texts)) {
		return abi.StatusOutOfRange
	}
	if e.suppress() {
		return abi.StatusOK
	}
	run := ab.texts[index]
	*out = abi.TextValueRun(e.tab.child(uintptr(a), run, KindTextRun, &textRunRef{ab: ab, run: run}))
	return abi.StatusOK
}

func (e *Engine) artboardBindViewModelInstance(a abi.Artboard, instance abi.ViewModelInstance) abi.Status {
	const op = "artboard_bind_view_model_instance"
	ab, ok := e.artboard(op, a)
	if !ok {
		return abi.StatusNull
	}
	if instance == 0 {
		ab.vmi = nil
		return abi.StatusOK
	}
	v, ok := object[*vmInstance](e, op, uintptr(instance), KindViewModelInstance)
	if !ok {
		return abi.StatusNull
	}
	ab.vmi = v
	ab.dirty = true
	return abi.StatusOK
}
