package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realme-social/realme-backend/models"
	"github.com/realme-social/realme-backend/utils"
)

func TestCreateUser(t *testing.T) {
	db, r := setupRouter(t)

	w := doJSON(t, r, "POST", "/users", "", map[string]interface{}{
		"real_name":  "Ada Lovelace",
		"birth_date": "1990-05-12",
		"region":     "EU",
		"verified":   true,
		"sso_links":  map[string]string{"github": "ada"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	decodeBody(t, w, &created)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Ada Lovelace", created.RealName)
	assert.True(t, created.Verified)
	assert.Equal(t, "ada", created.SSOLinks["github"])

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", created.ID).Error)
	assert.Equal(t, "1990-05-12", stored.BirthDate)
}

func TestCreateUserVerifiedFalseIsValid(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, "POST", "/users", "", map[string]interface{}{
		"real_name":  "Unverified",
		"birth_date": "2000-01-01",
		"region":     "NA",
		"verified":   false,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateUserValidation(t *testing.T) {
	_, r := setupRouter(t)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantFields []string
	}{
		{
			name: "malformed birth_date",
			body: map[string]interface{}{
				"real_name":  "Bad Date",
				"birth_date": "12-05-1990",
				"region":     "EU",
				"verified":   true,
			},
			wantFields: []string{"birth_date"},
		},
		{
			name:       "everything missing",
			body:       map[string]interface{}{},
			wantFields: []string{"real_name", "birth_date", "region", "verified"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/users", "", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp utils.ErrorResponse
			decodeBody(t, w, &resp)
			got := make([]string, 0, len(resp.Issues))
			for _, issue := range resp.Issues {
				got = append(got, issue.Field)
			}
			for _, field := range tt.wantFields {
				assert.Contains(t, got, field)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	db, r := setupRouter(t)
	user := seedUser(t, db)

	w := doJSON(t, r, "GET", "/users/"+user.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.User
	decodeBody(t, w, &got)
	assert.Equal(t, user.ID, got.ID)
}

func TestGetUserNotFound(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, "GET", "/users/"+uuid.NewString(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// A malformed id is simply an id no user has.
	w = doJSON(t, r, "GET", "/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers(t *testing.T) {
	db, r := setupRouter(t)

	w := doJSON(t, r, "GET", "/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	seedUser(t, db)
	seedUser(t, db)

	w = doJSON(t, r, "GET", "/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var users []models.User
	decodeBody(t, w, &users)
	assert.Len(t, users, 2)
}
