package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPatch_ApplyMergesOnlyPresentFields(t *testing.T) {
	p := Publication{
		ID:         "jdoe1-0",
		NetID:      "jdoe1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "CSE",
		College:    "COE",
		Title:      StringPtr("Ethics of AI"),
		Year:       IntPtr(2023),
	}

	Patch{Year: IntPtr(2024)}.Apply(&p)
	if *p.Year != 2024 {
		t.Fatalf("year not merged: %d", *p.Year)
	}
	if p.FirstName != "Jane" || *p.Title != "Ethics of AI" {
		t.Fatalf("untouched fields changed: %+v", p)
	}

	// Emptying an optional field needs an explicit zero, nil means keep.
	Patch{Email: StringPtr("")}.Apply(&p)
	if p.Email == nil || *p.Email != "" {
		t.Fatalf("email not cleared: %v", p.Email)
	}
	Patch{}.Apply(&p)
	if p.ID != "jdoe1-0" || *p.Year != 2024 {
		t.Fatalf("empty patch must be a no-op: %+v", p)
	}
}

func TestPublication_WireFormat(t *testing.T) {
	b, err := json.Marshal(Publication{
		ID:         "jdoe1-0",
		NetID:      "jdoe1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "CSE",
		College:    "COE",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(b)
	for _, key := range []string{`"id"`, `"netID"`, `"first_name"`, `"last_name"`, `"department_name"`, `"college_or_school"`} {
		if !strings.Contains(got, key) {
			t.Fatalf("missing %s in %s", key, got)
		}
	}
	// Absent optionals stay off the wire entirely.
	for _, key := range []string{`"email"`, `"title"`, `"year"`} {
		if strings.Contains(got, key) {
			t.Fatalf("absent field %s must be omitted: %s", key, got)
		}
	}
}

func TestAuthorName(t *testing.T) {
	p := Publication{FirstName: "Jane", LastName: "Doe"}
	if p.AuthorName() != "Jane Doe" {
		t.Fatalf("got %q", p.AuthorName())
	}
}
