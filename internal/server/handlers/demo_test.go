package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/authdemo/internal/crypto"
	"github.com/iudanet/authdemo/internal/models"
	"github.com/iudanet/authdemo/pkg/api"
)

// withIdentity puts an identity into the request context,
// standing in for the auth middleware
func withIdentity(r *http.Request, identity *models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), IdentityKey, identity)
	return r.WithContext(ctx)
}

func testIdentity() *models.Identity {
	return &models.Identity{
		Username: "testuser",
		Email:    "testuser@example.com",
		FullName: "Test User",
	}
}

func TestDemoHandler_Root(t *testing.T) {
	handler := NewDemoHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.Root(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.MessageResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Hello World", resp.Message)
}

func TestDemoHandler_GetModel(t *testing.T) {
	handler := NewDemoHandler(testLogger())

	tests := []struct {
		model   string
		message string
	}{
		{"alexnet", "Deep Learning FTW!"},
		{"lenet", "LeCNN all the images"},
		{"resnet", "Have some residuals"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/models/"+tt.model, nil)
		req.SetPathValue("model_name", tt.model)
		w := httptest.NewRecorder()
		handler.GetModel(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp api.ModelResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, tt.model, resp.ModelName)
		assert.Equal(t, tt.message, resp.Message)
	}
}

func TestDemoHandler_GetModel_Unknown(t *testing.T) {
	handler := NewDemoHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/models/vgg16", nil)
	req.SetPathValue("model_name", "vgg16")
	w := httptest.NewRecorder()
	handler.GetModel(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDemoHandler_PasswordHash(t *testing.T) {
	handler := NewDemoHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/passwordhash?password=secret123", nil)
	w := httptest.NewRecorder()
	handler.PasswordHash(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PasswordHashResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "secret123", resp.Password)
	assert.NoError(t, crypto.VerifyPassword("secret123", resp.Hash))
}

func TestDemoHandler_PasswordHash_Missing(t *testing.T) {
	handler := NewDemoHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/passwordhash", nil)
	w := httptest.NewRecorder()
	handler.PasswordHash(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsersHandler_Me(t *testing.T) {
	handler := NewUsersHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = withIdentity(req, testIdentity())
	w := httptest.NewRecorder()
	handler.Me(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.UserResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "testuser", resp.Username)
	assert.Equal(t, "Test User", resp.FullName)
	assert.False(t, resp.Disabled)
}

func TestUsersHandler_Me_NoIdentity(t *testing.T) {
	handler := NewUsersHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	handler.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsersHandler_MyItems(t *testing.T) {
	handler := NewUsersHandler(testLogger())

	req := httptest.NewRequest(http.MethodGet, "/users/me/items", nil)
	req = withIdentity(req, testIdentity())
	w := httptest.NewRecorder()
	handler.MyItems(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []api.OwnedItem
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Foo", resp[0].ItemID)
	assert.Equal(t, "testuser", resp[0].Owner)
}
