package types

import (
	"bytes"
	"encoding/json"
)

// Resume is the structured model behind the classic, modern, and minimal
// templates. Every field is optional; absent values render as empty strings.
type Resume struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Contact  Contact   `json:"contact"`
	Sections []Section `json:"sections"`
}

// Contact holds the contact block of a resume.
type Contact struct {
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	LinkedIn  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

// Section types the renderer knows how to lay out. Anything else is skipped.
const (
	SectionSummary        = "summary"
	SectionSkills         = "skills"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionCertifications = "certifications"
	SectionProjects       = "projects"
	SectionLanguages      = "languages"
	SectionHobbies        = "hobbies"
)

// Section is one titled block of a resume.
type Section struct {
	Type    string        `json:"type"`
	Title   string        `json:"title"`
	Content string        `json:"content,omitempty"`
	Items   []SectionItem `json:"items,omitempty"`
}

// ItemKind discriminates the shapes a section item may take. Legacy payloads
// mix plain strings with structured objects inside the same items array, so
// the kind is resolved by an ordered match: string, degree, role, text, raw.
type ItemKind int

// Section item kinds.
const (
	ItemString ItemKind = iota
	ItemDegree
	ItemRole
	ItemText
	ItemRaw
)

// SectionItem is the tagged union of section item shapes: a bare string, an
// education entry (degree), an experience entry (role), an object carrying
// only display text, or an arbitrary JSON value kept for display as-is.
type SectionItem struct {
	// ItemString / ItemText payload.
	Text string `json:"text,omitempty"`

	// ItemDegree payload.
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`

	// ItemRole payload.
	Role         string   `json:"role,omitempty"`
	Company      string   `json:"company,omitempty"`
	Period       string   `json:"period,omitempty"`
	Location     string   `json:"location,omitempty"`
	Achievements []string `json:"achievements,omitempty"`

	isString bool
	raw      string
}

// StringItem builds the legacy plain-string variant.
func StringItem(s string) SectionItem {
	return SectionItem{Text: s, isString: true}
}

// Kind resolves the variant of the item using the ordered pattern match.
func (it SectionItem) Kind() ItemKind {
	switch {
	case it.isString:
		return ItemString
	case it.Degree != "":
		return ItemDegree
	case it.Role != "":
		return ItemRole
	case it.Text != "":
		return ItemText
	case it.raw != "":
		return ItemRaw
	default:
		return ItemText
	}
}

// Raw returns the original JSON token for items that did not match any known
// shape, for display as-is.
func (it SectionItem) Raw() string { return it.raw }

// UnmarshalJSON accepts a string, an object, or any other JSON value. The
// object form decodes the known fields; non-object non-string values keep
// their compact JSON text for raw display.
func (it *SectionItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '"':
		it.isString = true
		return json.Unmarshal(data, &it.Text)
	case '{':
		type plain SectionItem
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*it = SectionItem(p)
		return nil
	default:
		it.raw = string(data)
		return nil
	}
}

// MarshalJSON emits the string form for plain-string items so round trips
// keep the legacy shape.
func (it SectionItem) MarshalJSON() ([]byte, error) {
	if it.isString {
		return json.Marshal(it.Text)
	}
	if it.raw != "" {
		return []byte(it.raw), nil
	}
	type plain SectionItem
	return json.Marshal(plain(it))
}
