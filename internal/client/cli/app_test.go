package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pairspace/loveos/internal/client/config"
	"github.com/pairspace/loveos/internal/client/listview"
	"github.com/pairspace/loveos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBackend serves just enough of the API for the login flow. The
// websocket feed is refused, so the app degrades to non-live mode.
func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token": "t",
				"space": models.Space{Name: "cookie", DisplayName: "Cookie", Partner: "bear"},
			})
		case "/api/v1/moods":
			json.NewEncoder(w).Encode([]models.MoodEntry{
				{ID: "m1", Author: "bear", Emoji: "😴", Label: "Sleepy", CreatedAt: time.Now()},
			})
		case "/api/v1/photos", "/api/v1/letters":
			json.NewEncoder(w).Encode([]any{})
		case "/api/v1/feed":
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func withStubbedIO(t *testing.T, textAnswers []string, passcode string) *bytes.Buffer {
	t.Helper()

	origText, origPass, origPrint := getSimpleText, getPasscode, printlnFn
	t.Cleanup(func() {
		getSimpleText, getPasscode, printlnFn = origText, origPass, origPrint
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		answer := textAnswers[i%len(textAnswers)]
		i++
		return answer, nil
	}
	getPasscode = func(w io.Writer) ([]byte, error) {
		return []byte(passcode), nil
	}

	var out bytes.Buffer
	printlnFn = func(args ...any) (int, error) {
		fmt.Fprintln(&out, args...)
		return 0, nil
	}
	return &out
}

func newTestApp(endpoint string) *App {
	cfg := &config.Config{ServerEndpointAddr: endpoint, NicknameCycleInterval: time.Minute}
	return NewApp(cfg)
}

func TestLogin_LoadsCollections(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	out := withStubbedIO(t, []string{"cookie"}, "pass")

	a := newTestApp(srv.URL)
	defer a.teardown()

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	assert.Equal(t, "bear", a.space.Partner)

	assert.Equal(t, listview.StateReady, a.moods.State())
	require.Len(t, a.moods.Items(), 1)
	assert.Contains(t, out.String(), "Welcome back, Cookie!")
}

func TestLogin_BadPasscodeKeepsLoggedOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	out := withStubbedIO(t, []string{"cookie"}, "wrong")

	a := newTestApp(srv.URL)
	defer a.teardown()

	require.Error(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Login failed")
}

func TestCommandsRequireLogin(t *testing.T) {
	out := withStubbedIO(t, []string{""}, "")

	a := newTestApp("http://127.0.0.1:0")
	require.NoError(t, a.Moods(context.Background()))
	require.NoError(t, a.Anniversary(context.Background()))

	assert.Contains(t, out.String(), "Please login first")
}

func TestLogout_TearsDownAndForgetsSession(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	withStubbedIO(t, []string{"cookie"}, "pass")

	a := newTestApp(srv.URL)
	require.NoError(t, a.Login(context.Background()))
	require.NoError(t, a.Logout(context.Background()))

	assert.False(t, a.isLoggedIn())
}

func TestStatus_ShowsNicknameWhenLoggedIn(t *testing.T) {
	srv := newTestBackend(t)
	defer srv.Close()

	withStubbedIO(t, []string{"cookie"}, "pass")

	a := newTestApp(srv.URL)
	defer a.teardown()

	assert.Equal(t, "not logged in", a.status())

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, strings.HasPrefix(a.status(), "Cookie ("))
}
