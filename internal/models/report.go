package models

import "time"

// ReportCategory classifies what kind of mess was reported.
type ReportCategory string

const (
	CategoryCampus   ReportCategory = "campus"
	CategoryRoom     ReportCategory = "room"
	CategoryHelpdesk ReportCategory = "helpdesk"
	CategoryGarbage  ReportCategory = "garbage"
)

// ValidCategory reports whether the value is a member of the category enum.
func ValidCategory(v ReportCategory) bool {
	switch v {
	case CategoryCampus, CategoryRoom, CategoryHelpdesk, CategoryGarbage:
		return true
	}
	return false
}

// ReportStatus tracks triage progress of a report.
type ReportStatus string

const (
	StatusPending   ReportStatus = "pending"
	StatusOngoing   ReportStatus = "ongoing"
	StatusCompleted ReportStatus = "completed"
)

// ValidStatus reports whether the value is a member of the status enum.
func ValidStatus(v ReportStatus) bool {
	switch v {
	case StatusPending, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// Report is a user-submitted record of an observed mess. JSON field names
// follow the mobile client's wire format.
type Report struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"userId"`
	Campus      string         `db:"campus" json:"campus"`
	ImageURL    string         `db:"image_url" json:"imageUrl"`
	Description string         `db:"description" json:"description"`
	Category    ReportCategory `db:"category" json:"category"`
	Status      ReportStatus   `db:"status" json:"status"`
	Longitude   *float64       `db:"longitude" json:"-"`
	Latitude    *float64       `db:"latitude" json:"-"`
	Coordinates []float64      `db:"-" json:"coordinates,omitempty"`
	Area        *string        `db:"area" json:"area,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updatedAt"`
}

// Normalize derives the wire-format coordinate pair from the stored columns.
// Coordinates are [longitude, latitude], present only when both are set.
func (r *Report) Normalize() {
	if r.Longitude != nil && r.Latitude != nil {
		r.Coordinates = []float64{*r.Longitude, *r.Latitude}
	} else {
		r.Coordinates = nil
	}
}

// ReportFilter narrows report listings. Zero values are skipped; Coordinates,
// when set, is a literal 2-element equality filter, not a proximity search.
type ReportFilter struct {
	UserID      string
	Campus      string
	Category    ReportCategory
	Area        string
	Coordinates []float64
	Status      ReportStatus
}
