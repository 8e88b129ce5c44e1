package types

// CommunityState is the lifecycle tag of a community record. The record
// itself treats the tag as bounded free text; enforcing the valid set and
// the allowed transitions is the job of the state machine that manages the
// record, not of the record construction.
type CommunityState string

const (
	// StateInitial is the state of a freshly created community.
	StateInitial CommunityState = "INITIAL"
	// StateApproved marks a community approved by the protocol.
	StateApproved CommunityState = "APPROVED"
	// StatePaused marks a community with activity temporarily suspended.
	StatePaused CommunityState = "PAUSED"
	// StateClosed marks a community that no longer accepts activity.
	StateClosed CommunityState = "CLOSED"
)

// Valid reports whether s is one of the known lifecycle tags.
func (s CommunityState) Valid() bool {
	switch s {
	case StateInitial, StateApproved, StatePaused, StateClosed:
		return true
	}
	return false
}

// String returns the tag text.
func (s CommunityState) String() string {
	return string(s)
}
