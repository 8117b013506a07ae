package store

import (
	"crypto/rand"
	"encoding/base32"
	"strings"
)

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID(prefix string) string {
	var b [5]byte // 40 bits -> 8 base32 chars
	// crypto/rand.Read does not fail on supported platforms (go >= 1.24).
	_, _ = rand.Read(b[:])
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix
}

func idExists(c *Catalog, id string) bool {
	for _, p := range c.Publications {
		if p.ID == id {
			return true
		}
	}
	return false
}

// newPublicationID returns an id unique within the catalog. Seeded records
// use the <netID>-<index> scheme instead (see seed.go); both only promise
// uniqueness and stability, not a particular shape.
func newPublicationID(c *Catalog) string {
	for {
		if id := newRandomID("pub"); !idExists(c, id) {
			return id
		}
	}
}
