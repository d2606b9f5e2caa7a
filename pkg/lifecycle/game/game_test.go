package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	g := &Game{
		Event:            "Casual Game",
		Date:             "2026.08.28",
		White:            "Anderssen",
		Black:            "Kieseritzky",
		Result:           ResultWhiteWins,
		StartingPosition: StartPosition,
		Moves:            []Move{{Move: "e4"}, {Move: "e5"}},
		Depth:            6,
		Time:             300,
	}
	assert.NoError(t, g.Validate())
}

func TestValidateBadResult(t *testing.T) {
	g := &Game{Result: "2-0", StartingPosition: StartPosition}
	err := g.Validate()
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "2-0")
}

func TestValidateEmptyStartingPosition(t *testing.T) {
	g := &Game{Result: ResultOngoing}
	assert.ErrorIs(t, g.Validate(), ErrInvalidRecord)
}

func TestValidateEmptyMove(t *testing.T) {
	g := &Game{
		Result:           ResultOngoing,
		StartingPosition: StartPosition,
		Moves:            []Move{{Move: "e4"}, {Move: ""}},
	}
	err := g.Validate()
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Contains(t, err.Error(), "half-move 2")
}

func TestValidateNegativeDepthOrTime(t *testing.T) {
	g := &Game{Result: ResultOngoing, StartingPosition: StartPosition, Depth: -1}
	assert.ErrorIs(t, g.Validate(), ErrInvalidRecord)
}

func TestDocumentUsesFixedKeys(t *testing.T) {
	g := &Game{
		Event:            "London Tournament",
		Date:             "1851.06.21",
		White:            "Anderssen",
		Black:            "Kieseritzky",
		Result:           ResultWhiteWins,
		StartingPosition: StartPosition,
		Moves:            []Move{{Move: "e4"}, {Move: "e5", Comment: "symmetrical reply"}},
		Depth:            6,
		Time:             300,
	}

	doc, err := g.Document()
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(doc, &m))

	for _, key := range []string{
		"event", "date", "white", "black", "result",
		"starting_position", "moves", "depth", "time",
	} {
		assert.Contains(t, m, key)
	}

	moves, ok := m["moves"].([]any)
	require.True(t, ok)
	require.Len(t, moves, 2)

	first, ok := moves[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "e4", first["move"])
	assert.NotContains(t, first, "comment") // empty comment omitted

	second, ok := moves[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "symmetrical reply", second["comment"])
}

func TestDecode(t *testing.T) {
	doc := []byte(`{
		"event": "Immortal Game",
		"date": "1851.06.21",
		"white": "Anderssen",
		"black": "Kieseritzky",
		"result": "1-0",
		"starting_position": "` + StartPosition + `",
		"moves": [{"move": "e4"}, {"move": "e5"}, {"move": "f4", "comment": "King's Gambit"}],
		"depth": 8,
		"time": 1800
	}`)

	var g Game
	require.NoError(t, g.decode(doc))

	assert.Equal(t, "Immortal Game", g.Event)
	assert.Equal(t, ResultWhiteWins, g.Result)
	require.Len(t, g.Moves, 3)
	assert.Equal(t, "King's Gambit", g.Moves[2].Comment)
	assert.Equal(t, 8, g.Depth)
	assert.NoError(t, g.Validate())
}

func TestDecodeInvalid(t *testing.T) {
	var g Game
	assert.Error(t, g.decode([]byte(`{"event":`)))
}

func TestAddMove(t *testing.T) {
	var g Game
	g.AddMove("e4", "")
	g.AddMove("e5", "book")

	require.Len(t, g.Moves, 2)
	assert.Equal(t, Move{Move: "e5", Comment: "book"}, g.Moves[1])
}

func TestLogName(t *testing.T) {
	g := &Game{id: 7}
	assert.Equal(t, "game-0007.log", g.LogName())
}
