// Package storage implements the blob stores holding uploaded file
// contents. Only bytes live here, keyed by opaque server-generated keys;
// metadata stays in the database.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

type Store interface {
	// Store writes the object under key. size and contentType are passed
	// through to backends that want them up front.
	Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Delete removes the object under key. Deleting an absent object is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the blob store selected by storage.type.
func New() (Store, error) {
	switch t := viper.GetString("storage.type"); t {
	case "s3":
		return NewS3()
	case "local":
		return NewLocal(viper.GetString("storage.local_path"))
	default:
		return nil, fmt.Errorf("invalid storage type %q", t)
	}
}
