package board

// DefaultFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.1

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Tile is a value placed at a position.
type Tile struct {
	Position
	Value int
}

// Spawn fills one uniformly chosen empty cell with a 2, or a 4 with
// probability fourProb. On a full board it does nothing and returns false.
func (b *Board) Spawn(rng Rand, fourProb float64) (Tile, bool) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	pos := empty[rng.Intn(len(empty))]

	value := 2
	if rng.Float64() < fourProb {
		value = 4
	}

	b.set(pos, value)
	return Tile{Position: pos, Value: value}, true
}
