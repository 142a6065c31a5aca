package service

import (
	"testing"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Subject{},
		&model.Topic{},
		&model.Image{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Examination{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key-for-token-signing",
			ExpireTime: time.Hour,
		},
	}
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	db := newServiceTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), testConfig()), db
}

func TestRegisterIssuesPersistentToken(t *testing.T) {
	svc, db := newAuthService(t)

	user, key, err := svc.Register(RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "s3cret!",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	assert.Len(t, key, 40)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret!", user.Password)

	var token model.AuthToken
	require.NoError(t, db.First(&token, "user_id = ?", user.ID).Error)
	assert.Equal(t, key, token.Key)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := RegisterRequest{FirstName: "Ada", Email: "ada@example.com", Password: "s3cret!"}
	_, _, err := svc.Register(req)
	require.NoError(t, err)

	_, _, err = svc.Register(req)
	assert.ErrorIs(t, err, util.ErrDuplicateKey)
}

func TestLoginReturnsSessionJWT(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(RegisterRequest{FirstName: "Ada", Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	user, jwt, err := svc.Login(LoginRequest{Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	require.NotEmpty(t, jwt)
	require.NotNil(t, user.LastLogin)

	claims, err := util.ParseJWT(jwt, svc.Cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(RegisterRequest{FirstName: "Ada", Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	_, _, err = svc.Login(LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc, db := newAuthService(t)

	user, _, err := svc.Register(RegisterRequest{FirstName: "Ada", Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)

	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, _, err = svc.Login(LoginRequest{Email: "ada@example.com", Password: "s3cret!"})
	assert.ErrorIs(t, err, util.ErrForbidden)
}
