package city

// Cell is a (x, y, direction) triple: the fundamental graph node. A single
// map tile contains four cells, one per orientation.
type Cell struct {
	X, Y int
	Dir  Direction
}

// Road is a single entry/exit pair at a tile: "a vehicle facing EntryDir at
// (X,Y) may leave the tile facing ExitDir." U-turns within one tile
// (EntryDir == ExitDir.Opposite()) are rejected at construction.
type Road struct {
	X, Y     int
	EntryDir Direction
	ExitDir  Direction
}
