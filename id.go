package pnet

import "github.com/google/uuid"

// ID generates an identifier for stored documents. Identifiers of
// parsed nodes always come from the source document and never from
// this function.
func ID() string {
	return uuid.New().String()
}
