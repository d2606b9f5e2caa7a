package game

import (
	"fmt"
	"strings"
)

// Half-moves per line in the move-text export.
const halfMovesPerLine = 10

// MoveText renders the alternate export format: the sequential move
// list grouped by move-pairs, line-wrapped every ten half-moves, and
// trailed by the result.
//
//	1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Ba4 Nf6 5. O-O Be7
//	6. Re1 b5 7. Bb3 d6 8. c3 O-O 9. h3 Nb8 10. d4 Nbd7
//	1/2-1/2
func (g *Game) MoveText() string {
	var b strings.Builder

	for i, m := range g.Moves {
		if i%2 == 0 {
			fmt.Fprintf(&b, "%d. ", i/2+1)
		}
		b.WriteString(m.Move)
		if (i+1)%halfMovesPerLine == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	b.WriteString(g.Result)
	return b.String()
}
