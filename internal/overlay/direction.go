package overlay

// Direction tells which way a panel grows from its anchor along one axis.
// Positive grows toward increasing coordinates (rightward, downward).
type Direction int

const (
	Positive Direction = iota
	Negative
)

func (d Direction) String() string {
	if d == Negative {
		return "negative"
	}
	return "positive"
}

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Negative {
		return Positive
	}
	return Negative
}
