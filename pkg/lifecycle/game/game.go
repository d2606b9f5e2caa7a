// Package game is a worked consumer of the lifecycle registry: a
// chess game record that registers itself at construction, carries a
// registry-derived identity, and persists itself as a JSON document.
package game

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/randalmurphal/lifecycle/pkg/lifecycle"
)

// StartPosition is the standard initial position in FEN notation.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Game results.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// ErrInvalidRecord indicates a game record failed validation.
var ErrInvalidRecord = errors.New("invalid game record")

// Move is one half-move with an optional annotation.
type Move struct {
	Move    string `json:"move"`
	Comment string `json:"comment,omitempty"`
}

// Game is a single tracked game. The exported fields form the
// persisted JSON document; identity fields are assigned at
// construction and never serialized.
type Game struct {
	Event            string `json:"event"`
	Date             string `json:"date"`
	White            string `json:"white"`
	Black            string `json:"black"`
	Result           string `json:"result"`
	StartingPosition string `json:"starting_position"`
	Moves            []Move `json:"moves"`
	Depth            int    `json:"depth"`
	Time             int    `json:"time"`

	id  lifecycle.ID
	uid string
}

// ID returns the registry identity assigned at construction.
func (g *Game) ID() lifecycle.ID {
	return g.id
}

// UID returns the stable record identifier used as the store key.
func (g *Game) UID() string {
	return g.uid
}

// LogName derives a per-game log file name from the registry
// identity, e.g. "game-0007.log".
func (g *Game) LogName() string {
	return fmt.Sprintf("game-%04d.log", g.id)
}

// AddMove appends a half-move to the record.
func (g *Game) AddMove(move, comment string) {
	g.Moves = append(g.Moves, Move{Move: move, Comment: comment})
}

// Validate checks record consistency. It is the visitor bound to the
// tracker's registry, so an audit pass flags every broken record at
// once.
func (g *Game) Validate() error {
	switch g.Result {
	case ResultWhiteWins, ResultBlackWins, ResultDraw, ResultOngoing:
	default:
		return fmt.Errorf("%w: result %q", ErrInvalidRecord, g.Result)
	}
	if g.StartingPosition == "" {
		return fmt.Errorf("%w: empty starting position", ErrInvalidRecord)
	}
	for i, m := range g.Moves {
		if m.Move == "" {
			return fmt.Errorf("%w: empty move at half-move %d", ErrInvalidRecord, i+1)
		}
	}
	if g.Depth < 0 || g.Time < 0 {
		return fmt.Errorf("%w: negative depth or time", ErrInvalidRecord)
	}
	return nil
}

// Document renders the game as its persisted JSON document.
func (g *Game) Document() ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode game: %w", err)
	}
	return data, nil
}

// decode fills the record fields from a JSON document, leaving the
// identity fields untouched.
func (g *Game) decode(data []byte) error {
	if err := json.Unmarshal(data, g); err != nil {
		return fmt.Errorf("decode game: %w", err)
	}
	return nil
}
