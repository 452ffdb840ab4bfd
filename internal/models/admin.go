package models

// LocationType distinguishes the two kinds of admin scope.
type LocationType string

const (
	LocationCampus       LocationType = "campus"
	LocationMunicipality LocationType = "municipality"
)

// Admin maps an email address to the single location it governs. Records are
// seeded out-of-band and read-only to the running service.
type Admin struct {
	ID       string       `db:"id" json:"id"`
	Email    string       `db:"email" json:"email"`
	Location string       `db:"location" json:"location"`
	Type     LocationType `db:"location_type" json:"type"`
}
