package store

import "testing"

func TestSeedPublications_SkipsIncompleteEntries(t *testing.T) {
	pubs := seedPublications()
	if len(pubs) == 0 {
		t.Fatal("empty seed")
	}
	for _, p := range pubs {
		if p.Title == nil || *p.Title == "" {
			t.Fatalf("seed kept a record without a title: %+v", p)
		}
		if p.Year == nil || *p.Year == 0 {
			t.Fatalf("seed kept a record without a year: %+v", p)
		}
	}
}

func TestSeedPublications_StableIDs(t *testing.T) {
	pubs := seedPublications()
	seen := map[string]bool{}
	for i, p := range pubs {
		if seen[p.ID] {
			t.Fatalf("duplicate seed id %q", p.ID)
		}
		seen[p.ID] = true
		// IDs are derived from netID and the record's position, so
		// repeated seeding yields the same ids in the same order.
		want := p.NetID
		if want == "" || len(p.ID) <= len(want) || p.ID[:len(want)] != want {
			t.Fatalf("seed id %q does not start with netID %q (index %d)", p.ID, want, i)
		}
	}

	again := seedPublications()
	if len(again) != len(pubs) {
		t.Fatalf("reseed count changed: %d vs %d", len(again), len(pubs))
	}
	for i := range pubs {
		if pubs[i].ID != again[i].ID {
			t.Fatalf("reseed id drifted at %d: %q vs %q", i, pubs[i].ID, again[i].ID)
		}
	}
}

func TestNewPublicationID_AvoidsCollisions(t *testing.T) {
	c := &Catalog{Publications: seedPublications()}
	seen := map[string]bool{}
	for _, p := range c.Publications {
		seen[p.ID] = true
	}
	for i := 0; i < 100; i++ {
		id := newPublicationID(c)
		if seen[id] {
			t.Fatalf("collision with existing id %q", id)
		}
	}
}
