package tetris

// Kind identifies one of the seven tetrominoes. It never changes for the
// lifetime of a shape, including after rotation or line removal.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// Kinds lists every kind in canonical order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindJ, KindL, KindS, KindZ}

var kindNames = [...]string{"I", "O", "T", "J", "L", "S", "Z"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool {
	return int(k) < len(Kinds)
}

type layout struct {
	cells [4]Coord
	pivot Coord
}

var layouts = [...]layout{
	KindI: {cells: [4]Coord{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, pivot: Coord{1, 0}},
	KindO: {cells: [4]Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, pivot: Coord{0, 0}},
	KindT: {cells: [4]Coord{{0, 0}, {1, 0}, {2, 0}, {1, 1}}, pivot: Coord{0, 0}},
	KindJ: {cells: [4]Coord{{0, 0}, {0, 1}, {0, 2}, {-1, 2}}, pivot: Coord{0, 1}},
	KindL: {cells: [4]Coord{{0, 0}, {0, 1}, {0, 2}, {1, 2}}, pivot: Coord{0, 1}},
	KindS: {cells: [4]Coord{{0, 0}, {1, 0}, {0, 1}, {-1, 1}}, pivot: Coord{0, 0}},
	KindZ: {cells: [4]Coord{{0, 0}, {-1, 0}, {0, 1}, {-1, 1}}, pivot: Coord{0, 0}},
}
