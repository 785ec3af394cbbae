package rive

import "github.com/go-drift/rive/pkg/abi"

// SmiInput is an untyped state machine input. Check Type before converting
// with AsBool, AsNumber or AsTrigger.
type SmiInput struct {
	borrowed[abi.SmiInput]
}

// Type returns the input type, or 0 for an invalid input.
func (in SmiInput) Type() abi.SmiInputType {
	if !in.valid() {
		return 0
	}
	return in.rt.fns.SmiInputTypeOf(in.raw)
}

// Name returns the input name.
func (in SmiInput) Name() string {
	if !in.valid() {
		return ""
	}
	return copyString(in.rt.fns.SmiInputName(in.raw))
}

// AsBool converts a boolean input. Other types report ErrInvalidArgument.
func (in SmiInput) AsBool() (SmiBool, error) {
	b, err := as(in, "SmiInput.AsBool", in.fns().SmiInputAsBool)
	return SmiBool{b}, err
}

// AsNumber converts a number input.
func (in SmiInput) AsNumber() (SmiNumber, error) {
	b, err := as(in, "SmiInput.AsNumber", in.fns().SmiInputAsNumber)
	return SmiNumber{b}, err
}

// AsTrigger converts a trigger input.
func (in SmiInput) AsTrigger() (SmiTrigger, error) {
	b, err := as(in, "SmiInput.AsTrigger", in.fns().SmiInputAsTrigger)
	return SmiTrigger{b}, err
}

func as[H ~uintptr](in SmiInput, op string, conv func(abi.SmiInput, *H) abi.Status) (borrowed[H], error) {
	h, err := in.handle(op)
	if err != nil {
		return borrowed[H]{}, err
	}
	var out H
	raw, err := adopt(op, conv(h, &out), out)
	if err != nil {
		return borrowed[H]{}, err
	}
	return borrow(in.rt, raw, in.owner), nil
}

// SmiBool is a boolean input.
type SmiBool struct {
	borrowed[abi.SmiBool]
}

func (b SmiBool) Value() bool {
	return b.valid() && b.rt.fns.SmiBoolGet(b.raw)
}

func (b SmiBool) Set(v bool) {
	if b.valid() {
		b.rt.fns.SmiBoolSet(b.raw, v)
	}
}

// SmiNumber is a number input.
type SmiNumber struct {
	borrowed[abi.SmiNumber]
}

func (n SmiNumber) Value() float32 {
	if !n.valid() {
		return 0
	}
	return n.rt.fns.SmiNumberGet(n.raw)
}

func (n SmiNumber) Set(v float32) {
	if n.valid() {
		n.rt.fns.SmiNumberSet(n.raw, v)
	}
}

// SmiTrigger is a trigger input.
type SmiTrigger struct {
	borrowed[abi.SmiTrigger]
}

// Fire sets the trigger for the next advance. It returns ErrNull when the
// owning session is gone.
func (t SmiTrigger) Fire() error {
	h, err := t.handle("SmiTrigger.Fire")
	if err != nil {
		return err
	}
	t.rt.fns.SmiTriggerFire(h)
	return nil
}
