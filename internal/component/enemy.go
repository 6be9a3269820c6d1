package component

// Lifecycle — стадия жизни врага.
type Lifecycle int

const (
	Walking Lifecycle = iota
	Dying
	Removed
)

func (l Lifecycle) String() string {
	switch l {
	case Walking:
		return "walking"
	case Dying:
		return "dying"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}
