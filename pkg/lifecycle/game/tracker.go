package game

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/lifecycle/pkg/lifecycle"
)

// Tracker owns the registry of live games and their persistence.
// Construction registers a game before it is returned; Release
// deregisters it exactly once on every path.
type Tracker struct {
	reg    *lifecycle.Registry[*Game]
	store  Store
	logger *slog.Logger
}

// TrackerOption configures a Tracker at creation time.
type TrackerOption func(*Tracker)

// WithStore sets the persistence backend.
// Default: NewMemoryStore()
func WithStore(s Store) TrackerOption {
	return func(t *Tracker) {
		if s != nil {
			t.store = s
		}
	}
}

// WithLogger enables structured logging of tracker and registry
// operations. A nil logger disables logging (the default).
func WithLogger(logger *slog.Logger) TrackerOption {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// NewTracker creates a tracker for up to capacity simultaneously live
// games.
func NewTracker(capacity int, opts ...TrackerOption) (*Tracker, error) {
	t := &Tracker{
		store: NewMemoryStore(),
	}
	for _, opt := range opts {
		opt(t)
	}

	construct := func(_ context.Context, r *lifecycle.Registry[*Game]) (*Game, error) {
		g := &Game{
			Date:             time.Now().Format("2006.01.02"),
			Result:           ResultOngoing,
			StartingPosition: StartPosition,
			uid:              uuid.New().String(),
		}
		g.id = r.Register(g)
		return g, nil
	}

	destroy := func(_ context.Context, r *lifecycle.Registry[*Game], g *Game) {
		r.Deregister(g)
	}

	audit := func(_ context.Context, g *Game) error {
		return g.Validate()
	}

	reg, err := lifecycle.New(capacity, construct, audit,
		lifecycle.WithName[*Game]("games"),
		lifecycle.WithDestructor(destroy),
		lifecycle.WithLogger[*Game](t.logger),
	)
	if err != nil {
		return nil, fmt.Errorf("create game registry: %w", err)
	}
	t.reg = reg

	return t, nil
}

// NewGame constructs and registers a fresh game record.
func (t *Tracker) NewGame(ctx context.Context) (*Game, error) {
	return t.reg.Construct(ctx)
}

// Release deregisters a live game. The record itself stays usable;
// it just no longer participates in audits.
func (t *Tracker) Release(ctx context.Context, g *Game) {
	t.reg.Destroy(ctx, g)
}

// Audit validates every live game, aggregating failures across the
// whole pass. A nil return means every record validated.
func (t *Tracker) Audit(ctx context.Context) error {
	return t.reg.Each(ctx, func(_ context.Context, g *Game) error {
		return g.Validate()
	})
}

// Len returns the number of live games.
func (t *Tracker) Len() int {
	return t.reg.Len()
}

// Registry exposes the underlying registry for direct iteration.
func (t *Tracker) Registry() *lifecycle.Registry[*Game] {
	return t.reg
}

// Save persists a game's JSON document under its UID.
func (t *Tracker) Save(g *Game) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	if err := t.store.Save(g.UID(), doc); err != nil {
		return fmt.Errorf("save game %s: %w", g.UID(), err)
	}
	return nil
}

// Load constructs a new live game from a stored document. The loaded
// game keeps the stored UID but receives a fresh registry identity.
func (t *Tracker) Load(ctx context.Context, id string) (*Game, error) {
	doc, err := t.store.Load(id)
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}

	g, err := t.reg.Construct(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.decode(doc); err != nil {
		// The half-built record must not stay live.
		t.reg.Destroy(ctx, g)
		return nil, err
	}
	g.uid = id
	return g, nil
}

// List returns metadata for every stored game.
func (t *Tracker) List() ([]Info, error) {
	return t.store.List()
}

// SaveFile writes a game's JSON document to a file.
func (t *Tracker) SaveFile(g *Game, path string) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write game file: %w", err)
	}
	return nil
}

// LoadFile constructs a new live game from a JSON document on disk.
func (t *Tracker) LoadFile(ctx context.Context, path string) (*Game, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game file: %w", err)
	}

	g, err := t.reg.Construct(ctx)
	if err != nil {
		return nil, err
	}
	if err := g.decode(doc); err != nil {
		t.reg.Destroy(ctx, g)
		return nil, err
	}
	return g, nil
}

// Close releases the persistence backend. Live games are unaffected.
func (t *Tracker) Close() error {
	return t.store.Close()
}
