// Package service contains the core business logic behind the HTTP
// handlers: identity management and the access-controlled file operations.
package service

import gonanoid "github.com/matoous/go-nanoid/v2"

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newID returns an opaque 16-character identifier for new records.
func newID() (string, error) {
	return gonanoid.Generate(idCharset, 16)
}
