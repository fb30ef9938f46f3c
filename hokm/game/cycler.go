package game

type Direction int

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

// Cycler walks the seats of a table in a fixed direction.
type Cycler struct {
	size      int
	current   int
	direction Direction
}

func NewCycler(size int, direction Direction) *Cycler {
	return &Cycler{
		size:      size,
		current:   0,
		direction: direction,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Set(seat int) {
	c.current = seat
}

// After returns the seat following seat without moving the cycler.
func (c *Cycler) After(seat int) int {
	return (seat + int(c.direction) + c.size) % c.size
}

func (c *Cycler) Next() int {
	c.current = c.After(c.current)
	return c.current
}
