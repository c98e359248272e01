package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateLayout is the on-disk and on-screen format of DateRecorded
const DateLayout = "2006-01-02"

// ConservationStatus is the advisory risk label attached to a sighting.
// Storage keeps it as free text; the form only offers the Statuses values.
type ConservationStatus string

const (
	StatusLeastConcern         ConservationStatus = "Least Concern"
	StatusVulnerable           ConservationStatus = "Vulnerable"
	StatusEndangered           ConservationStatus = "Endangered"
	StatusCriticallyEndangered ConservationStatus = "Critically Endangered"
	StatusOther                ConservationStatus = "Other"
)

// Statuses lists the known conservation statuses in display order
var Statuses = []ConservationStatus{
	StatusLeastConcern,
	StatusVulnerable,
	StatusEndangered,
	StatusCriticallyEndangered,
}

// StatusLabels returns Statuses as plain strings for select widgets and flags
func StatusLabels() []string {
	labels := make([]string, len(Statuses))
	for i, s := range Statuses {
		labels[i] = string(s)
	}
	return labels
}

// IsKnown reports whether s is one of Statuses
func (s ConservationStatus) IsKnown() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

var titleCaser = cases.Title(language.English)

// ParseStatus normalises user input such as "critically endangered" to the
// canonical label. Unknown values are returned title-cased with ok=false.
func ParseStatus(raw string) (ConservationStatus, bool) {
	trimmed := strings.Join(strings.Fields(raw), " ")
	if trimmed == "" {
		return "", true
	}
	status := ConservationStatus(titleCaser.String(strings.ToLower(trimmed)))
	return status, status.IsKnown()
}

// Sighting is one recorded observation of a species at a location and date
type Sighting struct {
	ID                 int64              `json:"id" yaml:"id"`
	CommonName         string             `json:"common_name" yaml:"common_name"`
	ScientificName     string             `json:"scientific_name" yaml:"scientific_name"`
	ConservationStatus ConservationStatus `json:"conservation_status" yaml:"conservation_status"`
	LocationSighted    string             `json:"location_sighted" yaml:"location_sighted"`
	DateRecorded       time.Time          `json:"date_recorded" yaml:"date_recorded"`
}

// DateString formats DateRecorded with DateLayout
func (s Sighting) DateString() string {
	if s.DateRecorded.IsZero() {
		return ""
	}
	return s.DateRecorded.Format(DateLayout)
}

// Input returns the editable fields of s
func (s Sighting) Input() SightingInput {
	return SightingInput{
		CommonName:     s.CommonName,
		ScientificName: s.ScientificName,
		Status:         s.ConservationStatus,
		Location:       s.LocationSighted,
	}
}

// SortKey selects the ordering used when listing sightings
type SortKey string

const (
	SortInsertion SortKey = "insertion"
	SortName      SortKey = "name"
	SortDate      SortKey = "date"
)

// SortKeys lists the supported orderings, default first
var SortKeys = []SortKey{SortInsertion, SortName, SortDate}

// ParseSortKey maps flag or config values to a SortKey. Empty input yields
// the default ordering.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortInsertion:
		return SortInsertion, nil
	case SortName:
		return SortName, nil
	case SortDate:
		return SortDate, nil
	default:
		return SortInsertion, fmt.Errorf("unknown sort key %q: must be one of %v", raw, SortKeys)
	}
}

// ErrNotFound reports that no sighting has the requested id
var ErrNotFound = errors.New("sighting not found")
