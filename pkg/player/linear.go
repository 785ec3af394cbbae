package player

import "github.com/go-drift/rive/pkg/rive"

// LinearTarget plays a single linear animation on its artboard.
type LinearTarget struct {
	Instance *rive.LinearAnimationInstance
	Artboard *rive.Artboard
	// Mix blends the animation over the current pose; zero means 1.
	Mix float32
}

// Linear returns a Target that advances inst and poses artboard with it.
func Linear(inst *rive.LinearAnimationInstance, artboard *rive.Artboard) *LinearTarget {
	return &LinearTarget{Instance: inst, Artboard: artboard}
}

// AdvanceAndApply moves the animation cursor, applies it and advances the
// artboard. A linear animation never settles, so the flag is always true
// on success.
func (l *LinearTarget) AdvanceAndApply(seconds float32) (bool, error) {
	if _, err := l.Instance.Advance(seconds); err != nil {
		return false, err
	}
	mix := l.Mix
	if mix == 0 {
		mix = 1
	}
	if err := l.Instance.Apply(l.Artboard, mix); err != nil {
		return false, err
	}
	if _, err := l.Artboard.Advance(seconds); err != nil {
		return false, err
	}
	return true, nil
}
