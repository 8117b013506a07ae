package model

// Publication is one faculty publication record. The JSON tags are the wire
// format of the persisted catalog slot (a JSON array of these objects), so
// they must stay stable across releases.
type Publication struct {
	ID        string `json:"id"`
	NetID     string `json:"netID"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// Email, Title and Year are optional; absent values are omitted on the
	// wire rather than written as empty strings / zero.
	Email      *string `json:"email,omitempty"`
	Department string  `json:"department_name"`
	College    string  `json:"college_or_school"`
	Title      *string `json:"title,omitempty"`
	Year       *int    `json:"year,omitempty"`
}

// Fields is a Publication minus its id: the shape the form emits on create.
type Fields struct {
	NetID      string
	FirstName  string
	LastName   string
	Email      *string
	Department string
	College    string
	Title      *string
	Year       *int
}

// Patch carries replacement values for an update merge. Nil pointers mean
// "leave unchanged"; to blank an optional field, point at the zero value.
type Patch struct {
	NetID      *string
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	College    *string
	Title      *string
	Year       *int
}

// Apply merges non-nil patch fields into p in place. The id never changes.
func (patch Patch) Apply(p *Publication) {
	if patch.NetID != nil {
		p.NetID = *patch.NetID
	}
	if patch.FirstName != nil {
		p.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		p.LastName = *patch.LastName
	}
	if patch.Email != nil {
		p.Email = patch.Email
	}
	if patch.Department != nil {
		p.Department = *patch.Department
	}
	if patch.College != nil {
		p.College = *patch.College
	}
	if patch.Title != nil {
		p.Title = patch.Title
	}
	if patch.Year != nil {
		p.Year = patch.Year
	}
}

// AuthorName is the display form used by cards and by search matching:
// first and last name joined by a single space.
func (p Publication) AuthorName() string {
	return p.FirstName + " " + p.LastName
}

func (f Fields) Publication(id string) Publication {
	return Publication{
		ID:         id,
		NetID:      f.NetID,
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		Department: f.Department,
		College:    f.College,
		Title:      f.Title,
		Year:       f.Year,
	}
}

// StringPtr and IntPtr are small helpers for building optional fields.
func StringPtr(s string) *string { return &s }
func IntPtr(n int) *int          { return &n }
