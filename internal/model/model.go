// Package model defines the normalized family model: the source-agnostic
// individual/family collections that every parser or adapter produces and
// that the relationship graph consumes. Profile and family IDs are opaque
// strings compared byte-exact, including any source decoration such as
// surrounding @ markers; producers must be internally consistent.
package model

import (
	"fmt"
	"time"
)

// --- Enums ---

// Sex classifies an individual's recorded sex.
type Sex string

const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexOther       Sex = "other"
	SexUnspecified Sex = "unspecified"
)

// DateQualifier marks how precisely a date is known.
type DateQualifier string

const (
	QualifierCirca     DateQualifier = "circa"
	QualifierEstimated DateQualifier = "estimated"
	QualifierBefore    DateQualifier = "before"
	QualifierAfter     DateQualifier = "after"
	QualifierExact     DateQualifier = "exact" // calendar-exact (calculated)
)

// --- Models ---

// DateInfo is a partially known calendar date. All fields are optional;
// a zero DateInfo means the date is unknown. Text preserves the source
// rendering verbatim when the structured fields could not be extracted.
type DateInfo struct {
	Day       int           `json:"day,omitempty"`
	Month     int           `json:"month,omitempty"`
	Year      int           `json:"year,omitempty"`
	Text      string        `json:"text,omitempty"`
	Qualifier DateQualifier `json:"qualifier,omitempty"`
}

// IsZero reports whether no date information is present at all.
func (d DateInfo) IsZero() bool {
	return d.Day == 0 && d.Month == 0 && d.Year == 0 && d.Text == "" && d.Qualifier == ""
}

// LifeEvent records one event in an individual's or family's life.
type LifeEvent struct {
	Date      *DateInfo `json:"date,omitempty"`
	Place     string    `json:"place,omitempty"`
	Confirmed bool      `json:"confirmed,omitempty"`
	// Kind tags auxiliary events ("baptism", "burial"); empty for the
	// primary birth/death/marriage events, which are identified by position.
	Kind  string `json:"kind,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Profile is one individual record.
type Profile struct {
	ID         string `json:"id"`
	GivenName  string `json:"givenName,omitempty"`
	Surname    string `json:"surname,omitempty"`
	MaidenName string `json:"maidenName,omitempty"`
	Sex        Sex    `json:"sex,omitempty"`

	// FamilyAsChild points at the family in which this individual is a
	// child; FamiliesAsSpouse lists families in which they are a spouse,
	// in source order.
	FamilyAsChild    string   `json:"familyAsChild,omitempty"`
	FamiliesAsSpouse []string `json:"familiesAsSpouse,omitempty"`

	Birth  *LifeEvent  `json:"birth,omitempty"`
	Death  *LifeEvent  `json:"death,omitempty"`
	Events []LifeEvent `json:"events,omitempty"`

	Images []string `json:"images,omitempty"`
	Notes  string   `json:"notes,omitempty"`

	// Restricted marks a placeholder produced for a record the source
	// refused to disclose. Only ID carries meaning on such profiles; they
	// exist so that pointers referencing them still resolve.
	Restricted bool `json:"restricted,omitempty"`
}

// FullName joins the given name and surname, skipping absent parts.
func (p Profile) FullName() string {
	switch {
	case p.GivenName != "" && p.Surname != "":
		return p.GivenName + " " + p.Surname
	case p.GivenName != "":
		return p.GivenName
	default:
		return p.Surname
	}
}

// Family is one family record linking spouses and children by profile ID.
type Family struct {
	ID        string     `json:"id"`
	HusbandID string     `json:"husbandId,omitempty"`
	WifeID    string     `json:"wifeId,omitempty"`
	ChildIDs  []string   `json:"childIds,omitempty"` // document order
	Marriage  *LifeEvent `json:"marriage,omitempty"`
	Divorce   *LifeEvent `json:"divorce,omitempty"`
}

// Provenance records where a family model came from.
type Provenance struct {
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// FamilyModel is the normalized output of a parser or adapter: individuals
// and families in source document order.
type FamilyModel struct {
	Profiles   []Profile  `json:"profiles"`
	Families   []Family   `json:"families"`
	Provenance Provenance `json:"provenance,omitempty"`
}

// Validate checks the model's one structural invariant: profile and family
// IDs are unique within their respective collections.
func (m *FamilyModel) Validate() error {
	seen := make(map[string]bool, len(m.Profiles))
	for _, p := range m.Profiles {
		if p.ID == "" {
			return fmt.Errorf("model: profile with empty id")
		}
		if seen[p.ID] {
			return fmt.Errorf("model: duplicate profile id %s", p.ID)
		}
		seen[p.ID] = true
	}
	seen = make(map[string]bool, len(m.Families))
	for _, f := range m.Families {
		if f.ID == "" {
			return fmt.Errorf("model: family with empty id")
		}
		if seen[f.ID] {
			return fmt.Errorf("model: duplicate family id %s", f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}
