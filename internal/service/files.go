package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"filedrop/file-api/internal/apperr"
	"filedrop/file-api/internal/model"
	"filedrop/file-api/internal/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Files gates every file operation on the caller's identity: uploads are
// recorded against the caller, listings are either public or
// owner-scoped, and only the owner may delete a record.
type Files struct {
	db    *gorm.DB
	store storage.Store
}

func NewFiles(db *gorm.DB, store storage.Store) *Files {
	return &Files{
		db:    db,
		store: store,
	}
}

// Upload records metadata for an object the transport layer already
// persisted in the blob store. Byte-level checks (size cap, type
// allow-list) happened before the bytes were stored and are not repeated
// here.
func (s *Files) Upload(ctx context.Context, callerID, name, storageKey string, size int64, privacy string) (*model.File, error) {
	if callerID == "" {
		return nil, apperr.ErrAuthentication
	}

	if name == "" || storageKey == "" || size < 0 {
		return nil, fmt.Errorf("%w: bad file metadata", apperr.ErrValidation)
	}

	switch privacy {
	case "":
		privacy = model.PrivacyPrivate
	case model.PrivacyPublic, model.PrivacyPrivate:
	default:
		return nil, fmt.Errorf("%w: privacy must be %q or %q", apperr.ErrValidation, model.PrivacyPublic, model.PrivacyPrivate)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate file ID, %w", err)
	}

	file := &model.File{
		ID:         id,
		OwnerID:    callerID,
		Name:       name,
		StorageKey: storageKey,
		Size:       size,
		Privacy:    privacy,
		CreatedAt:  time.Now().Unix(),
	}

	if err := s.db.WithContext(ctx).Create(file).Error; err != nil {
		return nil, fmt.Errorf("failed to create file record, %w", err)
	}

	return file, nil
}

// ListPublic returns every public file. Needs no caller identity.
func (s *Files) ListPublic(ctx context.Context) ([]model.File, error) {
	var files []model.File

	err := s.db.WithContext(ctx).
		Where("privacy = ?", model.PrivacyPublic).
		Order("created_at desc").
		Find(&files).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list public files, %w", err)
	}

	return files, nil
}

// ListOwned returns the caller's files regardless of privacy.
func (s *Files) ListOwned(ctx context.Context, callerID string) ([]model.File, error) {
	if callerID == "" {
		return nil, apperr.ErrAuthentication
	}

	var files []model.File

	err := s.db.WithContext(ctx).
		Where("owner_id = ?", callerID).
		Order("created_at desc").
		Find(&files).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to list owned files, %w", err)
	}

	return files, nil
}

// Delete removes a file the caller owns: the backing object first, the
// metadata record always after. A failed blob deletion never keeps the
// record alive; it is reported as apperr.ErrStorage once the record is
// gone. Known limitation of the ordering: if the record deletion itself
// fails after the blob is gone, the orphaned record keeps pointing at
// deleted bytes.
func (s *Files) Delete(ctx context.Context, callerID, fileID string) error {
	if callerID == "" {
		return apperr.ErrAuthentication
	}

	var file model.File

	err := s.db.WithContext(ctx).Where("id = ?", fileID).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}

		return fmt.Errorf("failed to look up file, %w", err)
	}

	if file.OwnerID != callerID {
		return fmt.Errorf("%w: only the owner can delete a file", apperr.ErrAuthorization)
	}

	storeErr := s.store.Delete(ctx, file.StorageKey)

	if err := s.db.WithContext(ctx).Delete(model.File{}, "id = ?", file.ID).Error; err != nil {
		return fmt.Errorf("failed to delete file record, %w", err)
	}

	if storeErr != nil {
		zap.L().Error("Failed to delete object from blob store",
			zap.String("key", file.StorageKey),
			zap.Error(storeErr),
		)

		return fmt.Errorf("%w: %v", apperr.ErrStorage, storeErr)
	}

	return nil
}
