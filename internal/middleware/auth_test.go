package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/repository"
	"question_bank_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.AuthToken{}))

	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret-key-for-token-signing", ExpireTime: time.Hour},
	}

	userRepo := repository.NewUserRepository(db)

	router := gin.New()
	authed := router.Group("/", AuthMiddleware(cfg, userRepo, nil))
	authed.GET("/me", func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email})
	})
	authed.GET("/admin", AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, db, cfg
}

func seedAuthUser(t *testing.T, db *gorm.DB, email string, admin bool) (*model.User, string) {
	t.Helper()
	user := &model.User{FirstName: "Ada", Email: email, Password: "hash", IsActive: true, IsAdmin: admin}
	token := &model.AuthToken{Key: util.GenerateTokenKey()}
	require.NoError(t, repository.NewUserRepository(db).Create(user, token))
	return user, token.Key
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareRejectsMissingCredentials(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := doRequest(router, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareAcceptsBearerJWT(t *testing.T) {
	router, db, cfg := setupAuthRouter(t)
	user, _ := seedAuthUser(t, db, "ada@example.com", false)

	jwt, err := util.GenerateJWT(user, cfg.JWT.Secret, cfg.JWT.ExpireTime)
	require.NoError(t, err)

	w := doRequest(router, "/me", "Bearer "+jwt)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestAuthMiddlewareAcceptsPersistentToken(t *testing.T) {
	router, db, _ := setupAuthRouter(t)
	_, key := seedAuthUser(t, db, "ada@example.com", false)

	w := doRequest(router, "/me", "Token "+key)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ada@example.com")
}

func TestAuthMiddlewareRejectsUnknownToken(t *testing.T) {
	router, _, _ := setupAuthRouter(t)

	w := doRequest(router, "/me", "Token 0000000000000000000000000000000000000000")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsInactiveUserToken(t *testing.T) {
	router, db, _ := setupAuthRouter(t)
	user, key := seedAuthUser(t, db, "ada@example.com", false)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	w := doRequest(router, "/me", "Token "+key)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRequiredBlocksRegularUsers(t *testing.T) {
	router, db, _ := setupAuthRouter(t)
	_, key := seedAuthUser(t, db, "ada@example.com", false)

	w := doRequest(router, "/admin", "Token "+key)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminRequiredAllowsAdmins(t *testing.T) {
	router, db, _ := setupAuthRouter(t)
	_, key := seedAuthUser(t, db, "boss@example.com", true)

	w := doRequest(router, "/admin", "Token "+key)
	assert.Equal(t, http.StatusOK, w.Code)
}
