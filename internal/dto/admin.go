package dto

// CheckAdminRequest probes the admin directory for an email address.
type CheckAdminRequest struct {
	Email string `json:"email" validate:"required"`
}

// CheckAdminResponse reports whether the email belongs to an admin and, if
// so, which location it governs.
type CheckAdminResponse struct {
	IsAdmin  bool   `json:"isAdmin"`
	Location string `json:"location,omitempty"`
	Type     string `json:"type,omitempty"`
}

// LocationName is one entry of the campus/municipality listings.
type LocationName struct {
	Name string `json:"name"`
}
