// Package model defines database models
package model

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

type File struct {
	ID string `gorm:"primaryKey" json:"id"`

	// Back-reference to the user that uploaded the file. Set once at
	// creation and never changed afterwards
	OwnerID string `gorm:"index;not null" json:"-"`

	// Files keep their original name for display while the stored object
	// lives under an opaque key, so same-named uploads never collide
	Name       string `gorm:"not null" json:"name"`
	StorageKey string `gorm:"not null" json:"-"`

	Size    int64  `json:"size"`
	Privacy string `gorm:"default:private" json:"privacy"`

	// Unix timestamp
	CreatedAt int64 `gorm:"not null" json:"created_at"`
}
