// Package testutil starts the admin API on an in-memory database for tests.
package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-admin/config"
	"portfolio-admin/database"
	routes "portfolio-admin/internal/app/http"
	"portfolio-admin/internal/auth"
	"portfolio-admin/internal/domain/users"
	"portfolio-admin/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	APIKey        = "test-public-key"
	AdminUsername = "admin"
	AdminPassword = "s3cret-pass"
	jwtSecret     = "test-secret-test-secret-test-secret"
)

// NewDB opens a private in-memory SQLite database with the full schema.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Server is a running admin API with one seeded admin account.
type Server struct {
	*httptest.Server
	DB      *gorm.DB
	Tokens  *auth.TokenManager
	Storage *storage.Local
	Admin   users.Admin
	// Token is a valid session token for Admin.
	Token string
}

func NewServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewDB(t)
	_, err := database.SeedAdmin(db, AdminUsername, AdminPassword)
	require.NoError(t, err)

	var admin users.Admin
	require.NoError(t, db.Where("username = ?", AdminUsername).First(&admin).Error)

	tokens := auth.NewTokenManager(jwtSecret, time.Hour)
	token, _, err := tokens.Issue(admin.ID, admin.Username, admin.Role)
	require.NoError(t, err)

	store, err := storage.NewLocal(t.TempDir(), "http://files.test")
	require.NoError(t, err)

	cfg := &config.Config{
		PublicAPIKey:   APIKey,
		JWTSecret:      jwtSecret,
		TokenTTL:       time.Hour,
		UploadMaxBytes: 1 << 20,
	}

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Tokens:  tokens,
		Storage: store,
		Log:     zap.NewNop(),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &Server{
		Server:  srv,
		DB:      db,
		Tokens:  tokens,
		Storage: store,
		Admin:   admin,
		Token:   token,
	}
}
