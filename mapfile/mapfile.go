// Package mapfile parses the CSV-ish map text format into a *city.City: the
// one external collaborator the core graph/driver/pipeline packages never
// import, matching the contract-only boundary the simulator core expects
// its map source to satisfy. Any unexpected symbol aborts loading with a
// message naming the offending cell, per the fatal-at-startup policy for
// data-driven boundary failures.
package mapfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/niceyeti/citytraffic/city"
)

var directionSymbols = map[byte]city.Direction{
	'^': city.North,
	'>': city.East,
	'v': city.South,
	'<': city.West,
}

// Load reads a map from r and builds the City it describes. Rows are
// newline-separated; within a row, cells are comma-separated; within a
// cell, symbols are space-separated. Width is the column count of row 0;
// height is the row count.
func Load(r io.Reader) (*city.City, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	height := len(rows)

	var roads []city.Road
	sources := map[int][]int{}
	destinations := map[int][]int{}
	lights := map[int][]int{}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedRow, y, len(row), width)
		}
		for x, cell := range row {
			for _, tok := range strings.Fields(cell) {
				if err := parseToken(tok, x, y, width, &roads, sources, destinations, lights); err != nil {
					return nil, err
				}
			}
		}
	}

	sourceGroups, err := denseGroups(sources)
	if err != nil {
		return nil, err
	}
	destGroups, err := denseGroups(destinations)
	if err != nil {
		return nil, err
	}
	lightGroups, err := denseGroups(lights)
	if err != nil {
		return nil, err
	}

	return city.New(width, height, roads, sourceGroups, destGroups, lightGroups)
}

func readRows(r io.Reader) ([][]string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(line, ","))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// parseToken classifies one cell symbol: a two-character road pair (with
// '*' as a wildcard over all four directions, cross-producted and filtered
// for U-turns), or an S/D/T designator assigning this tile's node in the
// given direction to a source, destination, or light group.
func parseToken(tok string, x, y, width int, roads *[]city.Road, sources, destinations, lights map[int][]int) error {
	switch {
	case len(tok) == 2 && isRoadChar(tok[0]) && isRoadChar(tok[1]):
		return parseRoad(tok, x, y, roads)
	case len(tok) >= 3 && (tok[0] == 'S' || tok[0] == 'D' || tok[0] == 'T'):
		return parseGroupToken(tok, x, y, width, sources, destinations, lights)
	default:
		return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, tok, x, y)
	}
}

func isRoadChar(b byte) bool {
	return b == '^' || b == '>' || b == 'v' || b == '<' || b == '*'
}

func directionsFor(b byte) []city.Direction {
	if b == '*' {
		all := city.Directions()
		return all[:]
	}
	return []city.Direction{directionSymbols[b]}
}

func parseRoad(tok string, x, y int, roads *[]city.Road) error {
	for _, entry := range directionsFor(tok[0]) {
		for _, exit := range directionsFor(tok[1]) {
			if entry == exit.Opposite() {
				continue
			}
			r, err := city.NewRoad(x, y, entry, exit)
			if err != nil {
				continue
			}
			*roads = append(*roads, r)
		}
	}
	return nil
}

func parseGroupToken(tok string, x, y, width int, sources, destinations, lights map[int][]int) error {
	dirChar := tok[1]
	dir, ok := directionSymbols[dirChar]
	if !ok {
		return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, tok, x, y)
	}
	group, err := strconv.Atoi(tok[2:])
	if err != nil || group < 0 {
		return fmt.Errorf("%w: %q at (%d,%d)", ErrBadGroup, tok, x, y)
	}
	index := int(dir) + 4*x + 4*width*y

	switch tok[0] {
	case 'S':
		sources[group] = append(sources[group], index)
	case 'D':
		destinations[group] = append(destinations[group], index)
	case 'T':
		lights[group] = append(lights[group], index)
	}
	return nil
}

// denseGroups converts a group-id -> nodes map into a slice indexed by
// group id, requiring ids be dense (0..max, no gaps). An empty input map
// returns a nil slice (no groups of this kind were declared).
func denseGroups(byID map[int][]int) ([][]int, error) {
	if len(byID) == 0 {
		return nil, nil
	}
	max := -1
	for g := range byID {
		if g > max {
			max = g
		}
	}
	if max+1 != len(byID) {
		return nil, city.ErrSparseGroups
	}
	groups := make([][]int, max+1)
	for g, nodes := range byID {
		groups[g] = nodes
	}
	return groups, nil
}
