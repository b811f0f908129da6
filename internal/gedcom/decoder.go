package gedcom

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dusk-indust/pedigree/internal/model"
)

// ParseError reports a source-acquisition failure: the raw text could not
// be obtained from the reader. Tag-level extraction never produces one;
// malformed records degrade silently instead.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("gedcom: read source: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Decoder converts GEDCOM text into the normalized family model. The zero
// value is ready to use; Source, when set, is recorded in the model's
// provenance.
type Decoder struct {
	Source string
}

// Decode reads all of r and decodes it. A read failure is the only hard
// error, returned as a *ParseError wrapping the cause.
func (d *Decoder) Decode(r io.Reader) (*model.FamilyModel, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return d.DecodeString(string(text)), nil
}

// DecodeString decodes GEDCOM text already held in memory. It cannot fail:
// malformed lines are skipped by the tree parser and records missing their
// mandatory cross-reference id are dropped.
func (d *Decoder) DecodeString(text string) *model.FamilyModel {
	m := &model.FamilyModel{
		Provenance: model.Provenance{
			Source:    d.Source,
			CreatedAt: time.Now().UTC(),
		},
	}

	for _, rec := range ParseTree(text) {
		switch rec.Tag {
		case "INDI":
			if rec.XrefID == "" {
				continue
			}
			m.Profiles = append(m.Profiles, decodeIndividual(rec))
		case "FAM":
			if rec.XrefID == "" {
				continue
			}
			m.Families = append(m.Families, decodeFamily(rec))
		}
	}

	return m
}

// decodeIndividual extracts one Profile from an INDI record node.
func decodeIndividual(rec *Node) model.Profile {
	p := model.Profile{ID: rec.XrefID}

	for _, c := range rec.Children {
		switch c.Tag {
		case "NAME":
			p.GivenName, p.Surname = splitName(c.Value)
		case "SEX":
			p.Sex = normalizeSex(c.Value)
		case "BIRT":
			p.Birth = decodeEvent(c, "")
		case "DEAT":
			p.Death = decodeEvent(c, "")
		case "BAPM", "CHR":
			if ev := decodeEvent(c, "baptism"); ev != nil {
				p.Events = append(p.Events, *ev)
			}
		case "BURI":
			if ev := decodeEvent(c, "burial"); ev != nil {
				p.Events = append(p.Events, *ev)
			}
		case "FAMC":
			p.FamilyAsChild = c.Value
		case "FAMS":
			p.FamiliesAsSpouse = append(p.FamiliesAsSpouse, c.Value)
		case "OBJE":
			if file := c.ChildValue("FILE"); file != "" {
				p.Images = append(p.Images, file)
			}
		case "NOTE":
			p.Notes = joinNotes(p.Notes, c.Value)
		}
	}

	return p
}

// decodeFamily extracts one Family from a FAM record node.
func decodeFamily(rec *Node) model.Family {
	f := model.Family{ID: rec.XrefID}

	for _, c := range rec.Children {
		switch c.Tag {
		case "HUSB":
			f.HusbandID = c.Value
		case "WIFE":
			f.WifeID = c.Value
		case "CHIL":
			f.ChildIDs = append(f.ChildIDs, c.Value)
		case "MARR":
			f.Marriage = decodeEvent(c, "")
		case "DIV":
			f.Divorce = decodeEvent(c, "")
		}
	}

	return f
}

// decodeEvent extracts an embedded life event from an event node's children
// (DATE, PLAC, NOTE). A "Y" payload marks a confirmed event with no detail.
// Returns nil for a primary event carrying no information at all.
func decodeEvent(n *Node, kind string) *model.LifeEvent {
	ev := &model.LifeEvent{Kind: kind, Confirmed: strings.EqualFold(n.Value, "Y")}

	for _, c := range n.Children {
		switch c.Tag {
		case "DATE":
			ev.Date = parseDate(c.Value)
		case "PLAC":
			ev.Place = c.Value
		case "NOTE":
			ev.Notes = joinNotes(ev.Notes, c.Value)
		}
	}

	if ev.Date == nil && ev.Place == "" && ev.Notes == "" && !ev.Confirmed && kind == "" {
		return nil
	}
	return ev
}

// splitName applies the "given names /Surname/" convention: the slash
// delimited segment is the surname, text before it the given name. Without
// a slash segment the whole value is the given name.
func splitName(value string) (given, surname string) {
	open := strings.Index(value, "/")
	if open == -1 {
		return strings.TrimSpace(value), ""
	}
	close := strings.Index(value[open+1:], "/")
	if close == -1 {
		return strings.TrimSpace(value), ""
	}
	given = strings.TrimSpace(value[:open])
	surname = strings.TrimSpace(value[open+1 : open+1+close])
	return given, surname
}

// normalizeSex maps the source sex vocabulary onto the model enum.
// Case-insensitive; empty input stays unset.
func normalizeSex(value string) model.Sex {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "":
		return ""
	case "M":
		return model.SexMale
	case "F":
		return model.SexFemale
	case "X", "OTHER":
		return model.SexOther
	default:
		return model.SexUnspecified
	}
}

// joinNotes appends a note line to any existing notes.
func joinNotes(existing, add string) string {
	if add == "" {
		return existing
	}
	if existing == "" {
		return add
	}
	return existing + "\n" + add
}
