package slider

// State is the lifecycle stage of a slider
type State uint8

const (
	Idle State = iota
	Armed
	Active
	Judged
	Retired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Armed:
		return "Armed"
	case Active:
		return "Active"
	case Judged:
		return "Judged"
	case Retired:
		return "Retired"
	}
	return "Unknown"
}
