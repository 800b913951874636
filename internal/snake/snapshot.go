package snake

// Snapshot is the read-only view of the board handed to renderers.
// Body is a copy, tail first.
type Snapshot struct {
	Body []Cell
	Food Cell
}

// Head returns the newest body cell.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Body) == 0 {
		return Cell{}, false
	}
	return s.Body[len(s.Body)-1], true
}

// Length returns the number of body cells.
func (s Snapshot) Length() int {
	return len(s.Body)
}
