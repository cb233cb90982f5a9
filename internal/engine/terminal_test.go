package engine

import (
	"errors"
	"slices"
	"testing"
)

func TestCanMove(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want bool
	}{
		{
			name: "full board without merges",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full checkerboard",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			want: false,
		},
		{
			name: "full board with horizontal pair",
			rows: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full board with vertical pair",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 16},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "board with empty cell",
			rows: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBoard(t, tt.rows)
			if got := CanMove(b); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
			// CanMove agrees with trying every direction.
			if legal := len(LegalMoves(b)) > 0; legal != tt.want {
				t.Errorf("LegalMoves() non-empty = %v, want %v", legal, tt.want)
			}
		})
	}
}

func TestCanMoveAfterMergingFullBoard(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{8, 8, 2, 4},
		{2, 4, 8, 16},
	})

	if !b.IsFull() {
		t.Fatal("board should start full")
	}
	if !CanMove(b) {
		t.Fatal("full board with a pair of 8s should be movable")
	}

	res := mustApply(t, b, Left)
	if !res.Changed {
		t.Fatal("merging the 8s should change the board")
	}
	if got := res.Board.Rows()[2]; !slices.Equal(got, []int{16, 2, 4, 0}) {
		t.Errorf("row 2 = %v, want [16 2 4 0]", got)
	}
	if res.Board.IsFull() {
		t.Error("a merge on a full board must free a cell")
	}
	if !CanMove(res.Board) {
		t.Error("board with an empty cell should be movable")
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]int
		target int
		want   Status
	}{
		{
			name:   "playing",
			rows:   [][]int{{2, 0}, {0, 0}},
			target: 2048,
			want:   StatusPlaying,
		},
		{
			name:   "won",
			rows:   [][]int{{2048, 0}, {0, 0}},
			target: 2048,
			want:   StatusWon,
		},
		{
			name:   "lost",
			rows:   [][]int{{2, 4}, {4, 2}},
			target: 2048,
			want:   StatusLost,
		},
		{
			name:   "win takes priority over no moves",
			rows:   [][]int{{2048, 4}, {4, 2}},
			target: 2048,
			want:   StatusWon,
		},
		{
			name:   "custom target",
			rows:   [][]int{{64, 0}, {0, 0}},
			target: 64,
			want:   StatusWon,
		},
		{
			name:   "above target is not a win",
			rows:   [][]int{{128, 0}, {0, 0}},
			target: 64,
			want:   StatusPlaying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(mustBoard(t, tt.rows), tt.target); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	if StatusPlaying.Terminal() {
		t.Error("playing should not be terminal")
	}
	if !StatusWon.Terminal() || !StatusLost.Terminal() {
		t.Error("won and lost should be terminal")
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"left", Left},
		{"LEFT", Left},
		{" a ", Left},
		{"h", Left},
		{"right", Right},
		{"d", Right},
		{"l", Right},
		{"up", Up},
		{"w", Up},
		{"k", Up},
		{"down", Down},
		{"s", Down},
		{"j", Down},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	for _, bad := range []string{"", "diagonal", "x", "lef"} {
		if _, err := ParseDirection(bad); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("ParseDirection(%q) error = %v, want ErrInvalidDirection", bad, err)
		}
	}
}

func TestParseDirections(t *testing.T) {
	dirs, err := ParseDirections("left, up down\tright")
	if err != nil {
		t.Fatalf("ParseDirections: %v", err)
	}
	want := []Direction{Left, Up, Down, Right}
	if !slices.Equal(dirs, want) {
		t.Errorf("ParseDirections() = %v, want %v", dirs, want)
	}

	if _, err := ParseDirections("left,sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirections with bad token error = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionString(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, err)
		}
	}
	if Direction(7).Valid() {
		t.Error("Direction(7) should be invalid")
	}
	if got := Direction(7).String(); got != "Direction(7)" {
		t.Errorf("Direction(7).String() = %q", got)
	}
}
