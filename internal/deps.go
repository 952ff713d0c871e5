package internal

import (
	"filedrop/file-api/internal/service"
	"filedrop/file-api/internal/storage"
	"filedrop/file-api/pkg/security"

	"gorm.io/gorm"
)

// Deps bundles everything the handlers need. It is constructed once at
// startup and injected; nothing in here is a package-level global.
type Deps struct {
	DB       *gorm.DB
	Hasher   *security.PasswordHasher
	Store    storage.Store
	Identity *service.Identity
	Files    *service.Files
}
