package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/portfolio-app/internal/models"
	"github.com/diewo77/portfolio-app/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.GalleryItem{}))
	return db
}

func TestAuthServiceRegisterHashesPassword(t *testing.T) {
	svc := NewAuthService(store.NewUserStore(setupTestDB(t)))

	user, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", user.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func TestAuthServiceRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(store.NewUserStore(db))

	_, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)
	_, err = svc.Register("bob", "alice@example.com", "other")
	require.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "alice@example.com").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAuthServiceSignIn(t *testing.T) {
	svc := NewAuthService(store.NewUserStore(setupTestDB(t)))

	registered, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	user, err := svc.SignIn("alice@example.com", "s3cret")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
}

func TestAuthServiceSignInWrongPassword(t *testing.T) {
	svc := NewAuthService(store.NewUserStore(setupTestDB(t)))

	_, err := svc.Register("alice", "alice@example.com", "s3cret")
	require.NoError(t, err)

	_, err = svc.SignIn("alice@example.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthServiceSignInUnknownEmail(t *testing.T) {
	svc := NewAuthService(store.NewUserStore(setupTestDB(t)))

	_, err := svc.SignIn("nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrUnknownEmail)
}
