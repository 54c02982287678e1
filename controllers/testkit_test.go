package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/realme-social/realme-backend/config"
	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/routes"
	"github.com/realme-social/realme-backend/utils"
)

const testSecret = "test-secret-key"

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would see its own empty memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Community{}, &models.Post{}, &models.Comment{}))
	return db
}

func testConfig(t *testing.T) config.AppConfig {
	t.Helper()
	return config.AppConfig{
		GinMode:               "test",
		JWTSecret:             testSecret,
		RateLimitPerMinute:    100000,
		RequestTimeoutSeconds: 5,
		AccessLogPath:         filepath.Join(t.TempDir(), "access.log"),
		LogLevel:              "error",
	}
}

// setupRouter builds the full route surface over a fresh in-memory database.
func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db := setupTestDB(t)
	return db, routes.SetupRouter(db, testConfig(t))
}

// authToken issues a valid bearer token for the given identity.
func authToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, err := utils.GenerateToken(testSecret, userID, time.Hour)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the router. A non-empty token is sent as
// a bearer credential; a nil body sends no payload.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	user := models.User{
		RealName:  "Seed User",
		BirthDate: "1990-05-12",
		Region:    "EU",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedCommunity(t *testing.T, db *gorm.DB, ownerID uuid.UUID) models.Community {
	t.Helper()
	community := models.Community{
		Name:    "Seed Community",
		OwnerID: ownerID,
	}
	require.NoError(t, db.Create(&community).Error)
	return community
}

func seedPost(t *testing.T, db *gorm.DB, authorID, communityID uuid.UUID, createdAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		AuthorID:    authorID,
		CommunityID: communityID,
		Content:     "seed post",
		ContentType: models.ContentTypeText,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func seedComment(t *testing.T, db *gorm.DB, authorID, postID uuid.UUID, createdAt time.Time) models.Comment {
	t.Helper()
	comment := models.Comment{
		AuthorID:  authorID,
		PostID:    postID,
		Content:   "seed comment",
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&comment).Error)
	return comment
}
