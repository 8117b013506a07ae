// Package form holds the add/edit form's working copy and its field-level
// validation, independent of how the fields are rendered or edited.
package form

import (
	"strconv"
	"strings"
	"time"

	"pubcat/internal/model"
)

const (
	DefaultDepartment = "Computer Science and Engineering"
	DefaultCollege    = "College of Engineering"
)

// Field names, used as keys into Errors.
const (
	FieldTitle     = "title"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldYear      = "year"
	FieldNetID     = "netID"
	FieldEmail     = "email"
	FieldDept      = "department_name"
	FieldCollege   = "college_or_school"
)

// Form is the working copy: every field is kept as text while editing (year
// included) and only coerced on submit.
type Form struct {
	// ID is the originating record's id; empty means the submit is a create.
	ID string

	NetID      string
	FirstName  string
	LastName   string
	Email      string
	Department string
	College    string
	Title      string
	Year       string

	// Errors holds per-field messages from the last Validate call.
	Errors map[string]string
}

// New returns the add-mode working copy: empty fields with the default
// department/college and the current year.
func New() *Form {
	return &Form{
		Department: DefaultDepartment,
		College:    DefaultCollege,
		Year:       strconv.Itoa(time.Now().Year()),
		Errors:     map[string]string{},
	}
}

// Edit returns the working copy initialized from an existing record. Absent
// email/title become empty strings; an absent year becomes the current year.
func Edit(p model.Publication) *Form {
	f := New()
	f.ID = p.ID
	f.NetID = p.NetID
	f.FirstName = p.FirstName
	f.LastName = p.LastName
	if p.Email != nil {
		f.Email = *p.Email
	}
	f.Department = p.Department
	f.College = p.College
	if p.Title != nil {
		f.Title = *p.Title
	}
	if p.Year != nil {
		f.Year = strconv.Itoa(*p.Year)
	}
	return f
}

// Set updates exactly one field of the working copy. Unknown names are
// ignored.
func (f *Form) Set(field, value string) {
	switch field {
	case FieldTitle:
		f.Title = value
	case FieldFirstName:
		f.FirstName = value
	case FieldLastName:
		f.LastName = value
	case FieldYear:
		f.Year = value
	case FieldNetID:
		f.NetID = value
	case FieldEmail:
		f.Email = value
	case FieldDept:
		f.Department = value
	case FieldCollege:
		f.College = value
	}
}

// Validate checks every rule independently and repopulates Errors. It
// returns true when the working copy may be submitted.
func (f *Form) Validate() bool {
	errs := map[string]string{}
	if strings.TrimSpace(f.FirstName) == "" {
		errs[FieldFirstName] = "First name is required."
	}
	if strings.TrimSpace(f.LastName) == "" {
		errs[FieldLastName] = "Last name is required."
	}
	if strings.TrimSpace(f.Title) == "" {
		errs[FieldTitle] = "Publication title is required."
	}
	if strings.TrimSpace(f.Year) == "" {
		errs[FieldYear] = "Year is required."
	} else if y, err := strconv.Atoi(strings.TrimSpace(f.Year)); err != nil || y < 1900 || y > time.Now().Year()+5 {
		errs[FieldYear] = "Please enter a valid year."
	}
	f.Errors = errs
	return len(errs) == 0
}

// Record validates and, when valid, emits the fully populated save request.
// The id is carried only when the form originated from an existing record.
// The year is coerced to a number regardless of its transient text form.
func (f *Form) Record() (model.Publication, bool) {
	if !f.Validate() {
		return model.Publication{}, false
	}
	y, _ := strconv.Atoi(strings.TrimSpace(f.Year))
	p := model.Publication{
		ID:         f.ID,
		NetID:      f.NetID,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Department: f.Department,
		College:    f.College,
		Title:      model.StringPtr(f.Title),
		Year:       model.IntPtr(y),
	}
	if strings.TrimSpace(f.Email) != "" {
		p.Email = model.StringPtr(f.Email)
	}
	return p, true
}

// Fields returns the create-shaped view of a validated record.
func Fields(p model.Publication) model.Fields {
	return model.Fields{
		NetID:      p.NetID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Department: p.Department,
		College:    p.College,
		Title:      p.Title,
		Year:       p.Year,
	}
}

// Patch returns the full-field merge for updating the originating record.
func Patch(p model.Publication) model.Patch {
	return model.Patch{
		NetID:      model.StringPtr(p.NetID),
		FirstName:  model.StringPtr(p.FirstName),
		LastName:   model.StringPtr(p.LastName),
		Email:      emailPatch(p.Email),
		Department: model.StringPtr(p.Department),
		College:    model.StringPtr(p.College),
		Title:      p.Title,
		Year:       p.Year,
	}
}

func emailPatch(email *string) *string {
	if email == nil {
		// Clearing the email field clears the stored value too.
		return model.StringPtr("")
	}
	return email
}
