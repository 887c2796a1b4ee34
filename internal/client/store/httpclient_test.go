package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_StoresTokenForLaterCalls(t *testing.T) {
	var seenAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token": "token123",
				"space": models.Space{Name: "cookie", Partner: "bear"},
			})
		case "/api/v1/moods":
			seenAuth = r.Header.Get(common.AccessTokenHeaderName)
			json.NewEncoder(w).Encode([]models.MoodEntry{})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	space, err := c.Login(context.Background(), "cookie", "pass")
	require.NoError(t, err)
	assert.Equal(t, "cookie", space.Name)
	assert.Equal(t, "bear", space.Partner)
	assert.Equal(t, "cookie", c.Space())

	_, err = c.ListMoods(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "Bearer token123", seenAuth)
}

func TestLogin_BadPasscode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Login(context.Background(), "cookie", "nope")
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

func TestLatestMood_NoneYetIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bear", r.URL.Query().Get("author"))
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.LatestMood(context.Background(), "bear")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestShareMood_ReturnsStoreAssignedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var m models.MoodEntry
		require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
		m.ID = "m42"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(m)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	created, err := c.ShareMood(context.Background(), &models.MoodEntry{Emoji: "😍", Label: "In love"})
	require.NoError(t, err)
	assert.Equal(t, "m42", created.ID)
	assert.Equal(t, "😍", created.Emoji)
}

func TestUpload_FailureIsStorageError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	_, err := c.Upload(context.Background(), "pic.jpg", []byte{1, 2, 3})
	assert.ErrorIs(t, err, common.ErrStorageUpload)
}

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "pic.jpg", hdr.Filename)
		json.NewEncoder(w).Encode(map[string]string{"url": "http://cdn/pic.jpg"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	ref, err := c.Upload(context.Background(), "pic.jpg", []byte("jpegdata"))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/pic.jpg", ref)
}

func TestUpdateAnswer_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/answers/a1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	err := c.UpdateAnswer(context.Background(), "a1", "new text")
	assert.NoError(t, err)
}

func TestMapStatus_InternalWrapsCode(t *testing.T) {
	err := mapStatus(http.StatusTeapot)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInternal))
}
