package city

import "fmt"

// City is the immutable description of a map: its dimensions, its roads,
// and the named node groups (sources, destinations, traffic lights) a
// simulator binds vehicles and lights to. City is built once, by the
// out-of-scope map parser or a test, and never mutated afterward.
type City struct {
	Width, Height int
	Roads         []Road

	// Sources[g] lists the node indices belonging to source group g.
	Sources [][]int
	// Destinations[g] lists the node indices belonging to destination
	// group g. Non-empty whenever a vehicle references it.
	Destinations [][]int
	// Lights[g] lists the node indices controlled together by light
	// group g.
	Lights [][]int
}

// NumNodes returns the total number of cells (4 per tile) in the city.
func (c *City) NumNodes() int {
	return numDirections * c.Width * c.Height
}

// GetIndex returns a cell's canonical node index: d + 4x + 4*width*y.
func (c *City) GetIndex(cell Cell) int {
	return int(cell.Dir) + numDirections*cell.X + numDirections*c.Width*cell.Y
}

// GetCell inverts GetIndex.
func (c *City) GetCell(index int) Cell {
	d := index % numDirections
	rest := index / numDirections
	x := rest % c.Width
	y := rest / c.Width
	return Cell{X: x, Y: y, Dir: Direction(d)}
}

// InBounds reports whether (x, y) is within the grid.
func (c *City) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// NewRoad validates and constructs a Road, rejecting U-turns within one
// tile. This is the one structural invariant enforced at construction time;
// everything else (group density, index range) is validated by New.
func NewRoad(x, y int, entry, exit Direction) (Road, error) {
	if entry == exit.Opposite() {
		return Road{}, fmt.Errorf("%w: (%d,%d) %s -> %s", ErrUTurn, x, y, entry, exit)
	}
	return Road{X: x, Y: y, EntryDir: entry, ExitDir: exit}, nil
}

// New validates a fully assembled City: dimensions are positive and every
// road and group member lies in range. Group density (ids 0..max with no
// gaps) is structural here, since groups are passed as a slice indexed by
// id; mapfile.Load enforces density against the sparse integer labels it
// reads from a map file, returning ErrSparseGroups if one is skipped. New
// does not mutate its inputs and does not compute the Network or cost tables;
// see CreateEdges and graph.Network.Dijkstra for that, performed once by
// the simulator at bind time.
func New(width, height int, roads []Road, sources, destinations, lights [][]int) (*City, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}
	c := &City{Width: width, Height: height, Roads: roads, Sources: sources, Destinations: destinations, Lights: lights}

	for _, r := range roads {
		if !c.InBounds(r.X, r.Y) {
			return nil, fmt.Errorf("%w: road at (%d,%d)", ErrCellOutOfRange, r.X, r.Y)
		}
	}
	for _, groups := range [][][]int{sources, destinations, lights} {
		if err := validateGroups(c, groups); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func validateGroups(c *City, groups [][]int) error {
	n := c.NumNodes()
	for _, members := range groups {
		for _, idx := range members {
			if idx < 0 || idx >= n {
				return fmt.Errorf("%w: node %d", ErrCellOutOfRange, idx)
			}
		}
	}
	return nil
}
