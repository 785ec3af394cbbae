package rive

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/go-drift/rive/pkg/abi"
)

// copyString copies a borrowed view into an owned string. Invalid UTF-8 is
// replaced with U+FFFD; a null or empty view yields "".
func copyString(v abi.StrView) string {
	b := v.Unsafe()
	if len(b) == 0 {
		return ""
	}
	if utf8.Valid(b) {
		return string(b)
	}
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return string([]rune(string(b)))
	}
	return string(out)
}

// copyBytes copies a borrowed byte view. A null or empty view yields nil.
func copyBytes(v abi.BytesView) []byte {
	b := v.Unsafe()
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Event is an owned copy of an event descriptor.
type Event struct {
	Name       string          `json:"name"`
	Type       uint32          `json:"type"`
	URL        *string         `json:"url,omitempty"`
	Target     *string         `json:"target,omitempty"`
	Properties []EventProperty `json:"properties,omitempty"`
}

// Property returns the value of the property called name.
func (e Event) Property(name string) (EventValue, bool) {
	for _, p := range e.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// ReportedEvent is an event fired by a state machine during the last
// advance. Delay is the sub-frame offset in seconds.
type ReportedEvent struct {
	Event
	Delay float32 `json:"delay"`
}

// EventProperty is one custom property of an event.
type EventProperty struct {
	Name  string     `json:"name"`
	Value EventValue `json:"value"`
}

// EventValue is the payload of an event property: EventBool, EventNumber or
// EventString.
type EventValue interface {
	Type() abi.EventPropertyType
}

type (
	EventBool   bool
	EventNumber float32
	EventString string
)

func (EventBool) Type() abi.EventPropertyType   { return abi.EventPropertyBool }
func (EventNumber) Type() abi.EventPropertyType { return abi.EventPropertyNumber }
func (EventString) Type() abi.EventPropertyType { return abi.EventPropertyString }

// propertyFunc fetches property i of an event descriptor.
type propertyFunc func(i uintptr, out *abi.EventPropertyInfo) abi.Status

// decodeEvent copies info and fetches exactly info.PropertyCount properties.
func decodeEvent(op string, info *abi.EventInfo, prop propertyFunc) (Event, error) {
	ev := Event{
		Name: copyString(info.Name),
		Type: info.Type,
	}
	if info.HasURL {
		u := copyString(info.URL)
		ev.URL = &u
	}
	if info.HasTarget {
		t := copyString(info.Target)
		ev.Target = &t
	}
	count := info.PropertyCount
	if count == 0 {
		return ev, nil
	}
	ev.Properties = make([]EventProperty, 0, count)
	for i := uintptr(0); i < count; i++ {
		var p abi.EventPropertyInfo
		if err := check(op, prop(i, &p)); err != nil {
			return Event{}, err
		}
		v, err := decodeEventValue(op, &p)
		if err != nil {
			return Event{}, err
		}
		ev.Properties = append(ev.Properties, EventProperty{Name: copyString(p.Name), Value: v})
	}
	return ev, nil
}

func decodeEventValue(op string, p *abi.EventPropertyInfo) (EventValue, error) {
	switch p.ValueType {
	case abi.EventPropertyBool:
		return EventBool(p.BoolValue), nil
	case abi.EventPropertyNumber:
		return EventNumber(p.NumberValue), nil
	case abi.EventPropertyString:
		return EventString(copyString(p.StringValue)), nil
	default:
		return nil, &Error{Op: op, Status: abi.StatusRuntimeError}
	}
}

// PropertyInfo describes a view-model property.
type PropertyInfo struct {
	Name string       `json:"name"`
	Type abi.DataType `json:"type"`
}

func decodeProperty(p *abi.PropertyInfo) PropertyInfo {
	return PropertyInfo{Name: copyString(p.Name), Type: p.DataType}
}

// DataEnum is a named enumeration declared by a file.
type DataEnum struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}
