package form

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"pubcat/internal/model"
)

func TestNew_Defaults(t *testing.T) {
	f := New()
	if f.Department != DefaultDepartment {
		t.Fatalf("department default: %q", f.Department)
	}
	if f.College != DefaultCollege {
		t.Fatalf("college default: %q", f.College)
	}
	if f.Year != strconv.Itoa(time.Now().Year()) {
		t.Fatalf("year default: %q", f.Year)
	}
	if f.ID != "" {
		t.Fatalf("add mode must not carry an id: %q", f.ID)
	}
}

func TestEdit_SubstitutesAbsentFields(t *testing.T) {
	f := Edit(model.Publication{
		ID:         "jdoe1-0",
		NetID:      "jdoe1",
		FirstName:  "Jane",
		LastName:   "Doe",
		Department: "CSE",
		College:    "COE",
		// Email, title and year absent.
	})
	if f.ID != "jdoe1-0" {
		t.Fatalf("id not carried: %q", f.ID)
	}
	if f.Email != "" || f.Title != "" {
		t.Fatalf("absent email/title must edit as empty, got %q / %q", f.Email, f.Title)
	}
	if f.Year != strconv.Itoa(time.Now().Year()) {
		t.Fatalf("absent year must edit as the current year, got %q", f.Year)
	}
	if f.FirstName != "Jane" || f.Department != "CSE" {
		t.Fatalf("present fields must carry over: %+v", f)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Form {
		f := New()
		f.FirstName = "Jane"
		f.LastName = "Doe"
		f.Title = "Ethics of AI"
		f.Year = "2023"
		return f
	}

	cases := []struct {
		name    string
		mutate  func(*Form)
		field   string
		message string
	}{
		{"missing first name", func(f *Form) { f.FirstName = "  " }, FieldFirstName, "First name is required."},
		{"missing last name", func(f *Form) { f.LastName = "" }, FieldLastName, "Last name is required."},
		{"missing title", func(f *Form) { f.Title = "" }, FieldTitle, "Publication title is required."},
		{"missing year", func(f *Form) { f.Year = "" }, FieldYear, "Year is required."},
		{"non-numeric year", func(f *Form) { f.Year = "20x3" }, FieldYear, "Please enter a valid year."},
		{"year below range", func(f *Form) { f.Year = "1899" }, FieldYear, "Please enter a valid year."},
		{"year above range", func(f *Form) { f.Year = strconv.Itoa(time.Now().Year() + 6) }, FieldYear, "Please enter a valid year."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := valid()
			tc.mutate(f)
			if f.Validate() {
				t.Fatal("expected validation failure")
			}
			if got := f.Errors[tc.field]; got != tc.message {
				t.Fatalf("message for %s: got %q, want %q", tc.field, got, tc.message)
			}
			if len(f.Errors) != 1 {
				t.Fatalf("only the mutated field should fail: %v", f.Errors)
			}
		})
	}

	f := valid()
	if !f.Validate() {
		t.Fatalf("expected valid form, got errors %v", f.Errors)
	}
	// Boundary years are accepted.
	f.Year = "1900"
	if !f.Validate() {
		t.Fatalf("1900 must be valid: %v", f.Errors)
	}
	f.Year = strconv.Itoa(time.Now().Year() + 5)
	if !f.Validate() {
		t.Fatalf("current year + 5 must be valid: %v", f.Errors)
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	f := New()
	f.Year = ""
	if f.Validate() {
		t.Fatal("empty form must not validate")
	}
	for _, field := range []string{FieldFirstName, FieldLastName, FieldTitle, FieldYear} {
		if f.Errors[field] == "" {
			t.Fatalf("missing error for %s: %v", field, f.Errors)
		}
	}
}

func TestRecord_CoercesYearAndCarriesID(t *testing.T) {
	f := Edit(model.Publication{ID: "jdoe1-0", FirstName: "Jane", LastName: "Doe"})
	f.Set(FieldTitle, "Ethics of AI")
	f.Set(FieldYear, " 2023 ")

	rec, ok := f.Record()
	if !ok {
		t.Fatalf("record: %v", f.Errors)
	}
	if rec.ID != "jdoe1-0" {
		t.Fatalf("id not carried: %q", rec.ID)
	}
	if rec.Year == nil || *rec.Year != 2023 {
		t.Fatalf("year not coerced: %+v", rec.Year)
	}
	if rec.Email != nil {
		t.Fatalf("blank email must stay absent: %v", *rec.Email)
	}

	f2 := New()
	f2.FirstName = "Jane"
	f2.LastName = "Doe"
	f2.Title = "Ethics of AI"
	rec2, ok := f2.Record()
	if !ok {
		t.Fatalf("record: %v", f2.Errors)
	}
	if rec2.ID != "" {
		t.Fatalf("create must not carry an id: %q", rec2.ID)
	}
}

func TestRecord_InvalidLeavesWorkingCopyIntact(t *testing.T) {
	f := New()
	f.Set(FieldYear, "not a year")
	if _, ok := f.Record(); ok {
		t.Fatal("expected invalid record")
	}
	if f.Year != "not a year" {
		t.Fatalf("working copy must be untouched on failure: %q", f.Year)
	}
}

func TestSet_UpdatesExactlyOneField(t *testing.T) {
	f := New()
	before := *f
	f.Set(FieldNetID, "jdoe1")
	if f.NetID != "jdoe1" {
		t.Fatalf("netID not set: %q", f.NetID)
	}
	f.NetID = before.NetID
	if !reflect.DeepEqual(*f, before) {
		t.Fatalf("other fields changed: %+v vs %+v", *f, before)
	}

	f.Set("unknown", "x")
	if !reflect.DeepEqual(*f, before) {
		t.Fatal("unknown field names must be ignored")
	}
}

func TestPatch_ClearsEmailWhenBlank(t *testing.T) {
	p := Patch(model.Publication{FirstName: "Jane", LastName: "Doe"})
	if p.Email == nil || *p.Email != "" {
		t.Fatalf("blank email must patch to the empty string, got %v", p.Email)
	}
	withEmail := Patch(model.Publication{Email: model.StringPtr("jdoe1@example.edu")})
	if withEmail.Email == nil || *withEmail.Email != "jdoe1@example.edu" {
		t.Fatalf("present email must carry over, got %v", withEmail.Email)
	}
}
