package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"pubcat/internal/model"
)

// slotPublications is the fixed key of the catalog slot: a JSON array of
// publication objects, read once at startup and overwritten whole on every
// mutation.
const slotPublications = "publications"

// Catalog is the in-memory record collection. It is owned by whoever loaded
// it (CLI command or TUI root) and handed down explicitly; mutations go
// through the Store methods so memory and the persisted slot move together.
type Catalog struct {
	Publications []model.Publication

	// Seeded marks a catalog that was rebuilt from the bundled dataset,
	// either because no slot existed yet or because the slot text failed to
	// parse. Callers may log the distinction; load never fails over it.
	Seeded bool
}

type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// Load reads the persisted catalog. A missing or malformed slot falls back
// to the seed dataset, which is then persisted best-effort so the next load
// round-trips.
func (s Store) Load(ctx context.Context) (*Catalog, error) {
	db, err := s.openSQLite(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	text, ok, err := readSlot(ctx, db, slotPublications)
	if err != nil {
		return nil, err
	}
	if ok {
		var pubs []model.Publication
		if jsonErr := json.Unmarshal([]byte(text), &pubs); jsonErr == nil {
			if pubs == nil {
				pubs = []model.Publication{}
			}
			return &Catalog{Publications: pubs}, nil
		}
		// Malformed slot text is treated as absence.
	}

	c := &Catalog{Publications: seedPublications(), Seeded: true}
	_ = writeSlot(ctx, db, slotPublications, mustMarshal(c.Publications))
	return c, nil
}

// Save serializes the whole collection into the slot.
func (s Store) Save(ctx context.Context, c *Catalog) error {
	if c == nil {
		return errors.New("nil catalog")
	}
	db, err := s.openSQLite(ctx)
	if err != nil {
		return err
	}
	defer db.Close()
	return writeSlot(ctx, db, slotPublications, mustMarshal(c.Publications))
}

// Create synthesizes a fresh id, prepends the record (most recent first) and
// persists. The in-memory mutation stands even when persistence fails; the
// returned error is the persistence outcome, for the caller to surface.
func (s Store) Create(ctx context.Context, c *Catalog, f model.Fields) (model.Publication, error) {
	p := f.Publication(newPublicationID(c))
	c.Publications = append([]model.Publication{p}, c.Publications...)
	return p, s.Save(ctx, c)
}

// Update merges non-nil patch fields into the record with the given id. The
// record keeps its position; an unknown id is a silent no-op.
func (s Store) Update(ctx context.Context, c *Catalog, id string, patch model.Patch) error {
	for i := range c.Publications {
		if c.Publications[i].ID == id {
			patch.Apply(&c.Publications[i])
			break
		}
	}
	return s.Save(ctx, c)
}

// Delete removes the record with the given id; unknown ids are a silent
// no-op. Relative order of the remaining records is preserved.
func (s Store) Delete(ctx context.Context, c *Catalog, id string) error {
	kept := c.Publications[:0]
	for _, p := range c.Publications {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.Publications = kept
	return s.Save(ctx, c)
}

func mustMarshal(pubs []model.Publication) string {
	if pubs == nil {
		pubs = []model.Publication{}
	}
	b, err := json.Marshal(pubs)
	if err != nil {
		// Publications contain only strings and ints; this cannot fail.
		panic(err)
	}
	return string(b)
}
