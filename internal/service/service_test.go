package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	"filedrop/file-api/internal/model"
	"filedrop/file-api/pkg/security"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-cache database so every pooled connection sees the
	// same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(model.User{}, model.File{}))

	return db
}

// fakeStore records deletions and can be told to fail them.
type fakeStore struct {
	deleted   []string
	deleteErr error
}

func (f *fakeStore) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

type env struct {
	db       *gorm.DB
	store    *fakeStore
	identity *Identity
	files    *Files
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := newTestDB(t)
	store := &fakeStore{}

	return &env{
		db:       db,
		store:    store,
		identity: NewIdentity(db, security.NewHasher(), []byte("test-secret")),
		files:    NewFiles(db, store),
	}
}

// register + login, returning the subject ID
func (e *env) mustRegister(t *testing.T, username, email, password string) string {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, e.identity.Register(ctx, username, email, password))

	_, subject, err := e.identity.Login(ctx, email, password)
	require.NoError(t, err)

	return subject.ID
}
