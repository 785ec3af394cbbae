package player

import (
	"errors"
	"sync"
)

var (
	activeMu sync.Mutex
	active   = make(map[*Player]struct{})
)

func activate(p *Player) {
	activeMu.Lock()
	active[p] = struct{}{}
	activeMu.Unlock()
}

func deactivate(p *Player) {
	activeMu.Lock()
	delete(active, p)
	activeMu.Unlock()
}

// StepAll ticks every started player once. Hosts with a single frame loop
// call it per frame instead of ticking players individually. Failures of
// individual players are joined.
func StepAll() error {
	activeMu.Lock()
	if len(active) == 0 {
		activeMu.Unlock()
		return nil
	}
	// Copy to avoid holding the lock during frames
	players := make([]*Player, 0, len(active))
	for p := range active {
		players = append(players, p)
	}
	activeMu.Unlock()

	var errs []error
	for _, p := range players {
		if err := p.Tick(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// HasActive reports whether any player is started.
func HasActive() bool {
	activeMu.Lock()
	defer activeMu.Unlock()
	return len(active) > 0
}
