package parallel

// Scope is the execution context a kernel runs in.
//
// Work inside a scope is split across TeamSize lanes; TeamBarrier
// synchronizes them. Thread and Unscoped are single-lane scopes whose
// barrier is a no-op.
type Scope interface {
	TeamRank() int
	TeamSize() int
	TeamBarrier()
}

// Thread is a lane of a team acting on its own, with no view of its peers.
type Thread struct {
	m *Member
}

// TeamRank returns 0: a thread is the only lane of its scope.
func (Thread) TeamRank() int { return 0 }

// TeamSize returns 1.
func (Thread) TeamSize() int { return 1 }

// TeamBarrier does nothing; a thread has no peers to wait for.
func (Thread) TeamBarrier() {}

// Member returns the team member the thread belongs to.
func (t Thread) Member() *Member { return t.m }

// Unscoped is the context of a single iteration of a flat range dispatch.
type Unscoped struct{}

// TeamRank returns 0.
func (Unscoped) TeamRank() int { return 0 }

// TeamSize returns 1.
func (Unscoped) TeamSize() int { return 1 }

// TeamBarrier does nothing.
func (Unscoped) TeamBarrier() {}

var (
	_ Scope = (*Member)(nil)
	_ Scope = Thread{}
	_ Scope = Unscoped{}
)
