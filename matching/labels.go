package matching

// Side identifies which input graph a label belongs to.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

// String implements fmt.Stringer.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// LabelA returns the label of node i of graph A.
func LabelA(i int) int { return i + 1 }

// LabelB returns the label of node j of graph B.
func LabelB(j int) int { return -(j + 1) }

// SideOf reports the side encoded in label; 0 has no side.
func SideOf(label int) Side {
	switch {
	case label > 0:
		return SideA
	case label < 0:
		return SideB
	default:
		return SideNone
	}
}

// Index recovers the node index from a label of either side.
func Index(label int) int {
	if label < 0 {
		return -label - 1
	}

	return label - 1
}
