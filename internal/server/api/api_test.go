package api

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pairspace/loveos/internal/logging"
	"github.com/pairspace/loveos/internal/server/auth"
	sc "github.com/pairspace/loveos/internal/server/config"
	"github.com/pairspace/loveos/internal/server/feed"
	"github.com/pairspace/loveos/internal/server/repositories/repomanager"
	"github.com/pairspace/loveos/internal/server/services"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) (*Server, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}

	cfg := &sc.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = testSecret

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
	repos := repomanager.NewPostgresRepositoryManager()

	spaces := services.NewSpaceService(db, repos, cfg)
	content := services.NewContentService(db, repos)

	s := NewServer(":0", logger, spaces, content, nil, feed.NewHub(), testSecret)
	return s, mock, db
}

func authHeader(t *testing.T, space string) string {
	t.Helper()
	token, err := auth.GenerateToken(space, []byte(testSecret), time.Minute)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	return "Bearer " + token
}

func TestProtectedRoute_MissingTokenIs401(t *testing.T) {
	s, _, db := newTestServer(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestProtectedRoute_BadTokenIs401(t *testing.T) {
	s, _, db := newTestServer(t)
	defer db.Close()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	s, mock, db := newTestServer(t)
	defer db.Close()

	hash, err := auth.HashPasscode("sweetheart")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	credCols := []string{"name", "display_name", "passcode_hash", "anniversary_date", "relationship_start"}
	mock.ExpectQuery(`SELECT .* FROM spaces WHERE name = \$1;`).
		WithArgs("cookie").
		WillReturnRows(sqlmock.NewRows(credCols).AddRow("cookie", "Cookie", hash, nil, nil))

	listCols := []string{"name", "display_name", "anniversary_date", "relationship_start"}
	mock.ExpectQuery(`SELECT .* FROM spaces ORDER BY name;`).
		WillReturnRows(sqlmock.NewRows(listCols).
			AddRow("bear", "Bear", nil, nil).
			AddRow("cookie", "Cookie", nil, nil))

	body := `{"space":"cookie","passcode":"sweetheart"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Space struct {
			Name    string `json:"name"`
			Partner string `json:"partner"`
		} `json:"space"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.Space.Partner != "bear" {
		t.Fatalf("partner not resolved: %+v", resp.Space)
	}

	space, err := auth.GetSpaceFromToken(resp.Token, []byte(testSecret))
	if err != nil || space != "cookie" {
		t.Fatalf("token does not decode to cookie: %q, %v", space, err)
	}
}

func TestLogin_WrongPasscodeIs401(t *testing.T) {
	s, mock, db := newTestServer(t)
	defer db.Close()

	hash, err := auth.HashPasscode("right")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	credCols := []string{"name", "display_name", "passcode_hash", "anniversary_date", "relationship_start"}
	mock.ExpectQuery(`SELECT .* FROM spaces WHERE name = \$1;`).
		WithArgs("cookie").
		WillReturnRows(sqlmock.NewRows(credCols).AddRow("cookie", "Cookie", hash, nil, nil))

	body := `{"space":"cookie","passcode":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestLatestMood_NoneYetIs404(t *testing.T) {
	s, mock, db := newTestServer(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM moods WHERE author = \$1 ORDER BY created_at DESC, id DESC LIMIT 1;`).
		WithArgs("bear").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author", "emoji", "label", "color", "note", "photo_url", "created_at"}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/moods/latest?author=bear", nil)
	req.Header.Set("Authorization", authHeader(t, "cookie"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestShareMood_InsertsAndReturnsRecord(t *testing.T) {
	s, mock, db := newTestServer(t)
	defer db.Close()

	ts := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`INSERT INTO moods .* RETURNING id, created_at;`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("m1", ts))

	body := `{"emoji":"😍","label":"In love","color":"#ff6b9d","note":"hi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/moods", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, "cookie"))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("want 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var m struct {
		ID     string `json:"id"`
		Author string `json:"author"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("bad response: %v", err)
	}
	if m.ID != "m1" {
		t.Fatalf("expected store-assigned id, got %+v", m)
	}
	if m.Author != "cookie" {
		t.Fatalf("author must come from the token, got %+v", m)
	}
}
