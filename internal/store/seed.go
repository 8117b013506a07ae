package store

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"pubcat/internal/model"
)

//go:embed seed/faculty_data.json
var seedData []byte

// seedEntry is a Publication without an id: the shape of the bundled
// dataset.
type seedEntry struct {
	NetID      string  `json:"netID"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      *string `json:"email"`
	Department string  `json:"department_name"`
	College    string  `json:"college_or_school"`
	Title      *string `json:"title"`
	Year       *int    `json:"year"`
}

// seedPublications builds the fallback catalog from the bundled dataset.
// Only entries with both a title and a year are kept; ids are synthesized
// from the netID and the entry's position in the kept list, so reseeding
// yields the same ids every time.
func seedPublications() []model.Publication {
	var entries []seedEntry
	if err := json.Unmarshal(seedData, &entries); err != nil {
		// The dataset is compiled in; a parse failure is a build defect.
		panic(fmt.Sprintf("store: bad embedded seed data: %v", err))
	}

	pubs := make([]model.Publication, 0, len(entries))
	for _, e := range entries {
		if e.Title == nil || strings.TrimSpace(*e.Title) == "" {
			continue
		}
		if e.Year == nil || *e.Year == 0 {
			continue
		}
		pubs = append(pubs, model.Publication{
			ID:         fmt.Sprintf("%s-%d", e.NetID, len(pubs)),
			NetID:      e.NetID,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Email:      e.Email,
			Department: e.Department,
			College:    e.College,
			Title:      e.Title,
			Year:       e.Year,
		})
	}
	return pubs
}
