package view

// MemorySpace identifies where a view's storage lives.
type MemorySpace int

// Supported memory spaces.
const (
	// HostSpace is heap memory owned by the Go runtime.
	HostSpace MemorySpace = iota
	// ScratchSpace is team-local memory handed out by an Arena. Its lifetime
	// ends with the team dispatch that created it.
	ScratchSpace
)

// String returns a human-readable memory space name.
func (m MemorySpace) String() string {
	switch m {
	case HostSpace:
		return "HostSpace"
	case ScratchSpace:
		return "ScratchSpace"
	default:
		return "Unknown"
	}
}
