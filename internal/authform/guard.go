package authform

import (
	"fmt"
	"sync"
)

// GuardPolicy decides what happens to a second submit of a form instance
// while its first submit is still outstanding.
type GuardPolicy int

const (
	// GuardOff lets overlapping submits through.
	GuardOff GuardPolicy = iota
	// GuardReject refuses the second submit with a failure notification.
	GuardReject
	// GuardIgnore drops the second submit without any effect.
	GuardIgnore
)

func (p GuardPolicy) String() string {
	switch p {
	case GuardOff:
		return "off"
	case GuardReject:
		return "reject"
	case GuardIgnore:
		return "ignore"
	default:
		return fmt.Sprintf("GuardPolicy(%d)", int(p))
	}
}

// ParseGuardPolicy maps "off", "reject" and "ignore" to a policy.
func ParseGuardPolicy(name string) (GuardPolicy, error) {
	switch name {
	case "off":
		return GuardOff, nil
	case "", "reject":
		return GuardReject, nil
	case "ignore":
		return GuardIgnore, nil
	default:
		return GuardOff, fmt.Errorf("unknown submit guard policy %q", name)
	}
}

// Guard tracks which form instances have a submit in flight.
type Guard struct {
	policy GuardPolicy

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewGuard creates a Guard with the given policy.
func NewGuard(policy GuardPolicy) *Guard {
	return &Guard{
		policy:   policy,
		inFlight: make(map[string]struct{}),
	}
}

// Policy returns the configured policy.
func (g *Guard) Policy() GuardPolicy {
	return g.policy
}

// Begin marks formID as in flight. It returns false if a submit for formID is
// already outstanding and the policy is not GuardOff. The returned release
// func must be called once the submit finishes; it is safe to call twice.
func (g *Guard) Begin(formID string) (release func(), ok bool) {
	if g.policy == GuardOff || formID == "" {
		return func() {}, true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[formID]; busy {
		return func() {}, false
	}
	g.inFlight[formID] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.inFlight, formID)
			g.mu.Unlock()
		})
	}, true
}

// InFlight reports whether formID has a submit outstanding.
func (g *Guard) InFlight(formID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, busy := g.inFlight[formID]
	return busy
}
