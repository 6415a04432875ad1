package catalog

import (
	"fmt"
	"regexp"
)

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// MaxIDLength is the maximum record and category identifier length.
const MaxIDLength = 256

// Record is one catalog entry (immutable value object).
type Record struct {
	id          string
	categoryID  string
	status      Status
	title       LocalizedText
	description LocalizedText
	details     LocalizedText
	tags        []string
	examples    []string
	version     string
}

// RecordParams carries the fields for constructing a Record.
type RecordParams struct {
	ID          string
	CategoryID  string
	Status      Status
	Title       LocalizedText
	Description LocalizedText
	Details     LocalizedText
	Tags        []string
	Examples    []string
	Version     string
}

// NewRecord validates and creates a Record.
// ID: ^[a-zA-Z0-9_-]+$, 1-256 chars. The title must carry an entry for the
// fallback language; category resolution is validated by the store at load.
func NewRecord(p RecordParams, fallbackLang string) (Record, error) {
	if p.ID == "" {
		return Record{}, fmt.Errorf("record ID is required")
	}
	if len(p.ID) > MaxIDLength {
		return Record{}, fmt.Errorf("record ID too long (max %d)", MaxIDLength)
	}
	if !idRegex.MatchString(p.ID) {
		return Record{}, fmt.Errorf("record ID must be alphanumeric with underscores and hyphens")
	}
	if p.CategoryID == "" {
		return Record{}, fmt.Errorf("record %q: category is required", p.ID)
	}
	if !p.Status.IsValid() {
		return Record{}, fmt.Errorf("record %q: invalid status %q", p.ID, p.Status)
	}
	if !p.Title.Has(fallbackLang) {
		return Record{}, fmt.Errorf("record %q: title missing fallback language %q", p.ID, fallbackLang)
	}
	return reconstructRecord(p), nil
}

// ReconstructRecord creates a Record without validation (test fixtures and
// already-validated data).
func ReconstructRecord(p RecordParams) Record {
	return reconstructRecord(p)
}

func reconstructRecord(p RecordParams) Record {
	return Record{
		id:          p.ID,
		categoryID:  p.CategoryID,
		status:      p.Status,
		title:       cloneLocalized(p.Title),
		description: cloneLocalized(p.Description),
		details:     cloneLocalized(p.Details),
		tags:        append([]string(nil), p.Tags...),
		examples:    append([]string(nil), p.Examples...),
		version:     p.Version,
	}
}

// ID returns the record identifier.
func (r *Record) ID() string { return r.id }

// CategoryID returns the owning category identifier.
func (r *Record) CategoryID() string { return r.categoryID }

// Status returns the record status.
func (r *Record) Status() Status { return r.status }

// Title returns the localized title map.
func (r *Record) Title() LocalizedText { return r.title }

// Description returns the localized description map.
func (r *Record) Description() LocalizedText { return r.description }

// Details returns the localized details map.
func (r *Record) Details() LocalizedText { return r.details }

// Tags returns the record tags in declaration order.
func (r *Record) Tags() []string { return r.tags }

// Examples returns the literal usage snippets.
func (r *Record) Examples() []string { return r.examples }

// Version returns the optional version label ("" when absent).
func (r *Record) Version() string { return r.version }
