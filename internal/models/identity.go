package models

// Identity is the verified caller extracted from a Clerk bearer token.
type Identity struct {
	Subject string
	Email   string
	Name    string
}
