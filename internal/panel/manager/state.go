package manager

type State int

const (
	Idle State = iota
	Drafting
	Saving
	Deleting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Drafting:
		return "drafting"
	case Saving:
		return "saving"
	case Deleting:
		return "deleting"
	}
	return "unknown"
}
