package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pairspace/loveos/internal/common"
	"github.com/pairspace/loveos/internal/models"
)

const requestTimeout = 12 * time.Second

// HTTPClient talks to the Love OS server. It holds the access token issued at
// login and attaches it to every subsequent call.
type HTTPClient struct {
	endpointURL string
	httpClient  *http.Client
	accessToken string
	space       string
}

func NewHTTPClient(endpointURL string) *HTTPClient {
	return &HTTPClient{
		endpointURL: strings.TrimRight(endpointURL, "/"),
		httpClient:  &http.Client{},
	}
}

// Space returns the identity authenticated at login, or "" before login.
func (c *HTTPClient) Space() string {
	return c.space
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpointURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// mapStatus converts an HTTP status into the application error taxonomy.
func mapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return common.ErrNotFound
	case code == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case code == http.StatusRequestEntityTooLarge:
		return common.ErrAttachmentTooBig
	case code == http.StatusBadGateway:
		return common.ErrStorageUpload
	default:
		return fmt.Errorf("%w: unexpected status %d", common.ErrInternal, code)
	}
}

type loginRequest struct {
	Space    string `json:"space"`
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token string       `json:"token"`
	Space models.Space `json:"space"`
}

func (c *HTTPClient) Login(ctx context.Context, space, passcode string) (*models.Space, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/api/v1/auth/login", loginRequest{Space: space, Passcode: passcode}, &resp)
	if err != nil {
		return nil, err
	}
	c.accessToken = resp.Token
	c.space = resp.Space.Name
	return &resp.Space, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Space, error) {
	var s models.Space
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/spaces/me", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *HTTPClient) Anniversary(ctx context.Context) (*models.Anniversary, error) {
	var a models.Anniversary
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/anniversary", nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func listPath(base string, limit int) string {
	if limit > 0 {
		return base + "?limit=" + strconv.Itoa(limit)
	}
	return base
}

func (c *HTTPClient) ListMoods(ctx context.Context, limit int) ([]models.MoodEntry, error) {
	var list []models.MoodEntry
	if err := c.doJSON(ctx, http.MethodGet, listPath("/api/v1/moods", limit), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) LatestMood(ctx context.Context, author string) (*models.MoodEntry, error) {
	var m models.MoodEntry
	path := "/api/v1/moods/latest?author=" + url.QueryEscape(author)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *HTTPClient) ShareMood(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error) {
	var created models.MoodEntry
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/moods", m, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListPhotos(ctx context.Context, limit int) ([]models.PhotoEntry, error) {
	var list []models.PhotoEntry
	if err := c.doJSON(ctx, http.MethodGet, listPath("/api/v1/photos", limit), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) AddPhoto(ctx context.Context, p *models.PhotoEntry) (*models.PhotoEntry, error) {
	var created models.PhotoEntry
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/photos", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListLetters(ctx context.Context, limit int) ([]models.LetterEntry, error) {
	var list []models.LetterEntry
	if err := c.doJSON(ctx, http.MethodGet, listPath("/api/v1/letters", limit), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) SendLetter(ctx context.Context, l *models.LetterEntry) (*models.LetterEntry, error) {
	var created models.LetterEntry
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/letters", l, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) TodaysQuestion(ctx context.Context) (*models.QuestionEntry, error) {
	var q models.QuestionEntry
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/questions/today", nil, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (c *HTTPClient) AnswersFor(ctx context.Context, questionID string) ([]models.AnswerEntry, error) {
	var list []models.AnswerEntry
	path := "/api/v1/questions/" + url.PathEscape(questionID) + "/answers"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) SubmitAnswer(ctx context.Context, a *models.AnswerEntry) (*models.AnswerEntry, error) {
	var created models.AnswerEntry
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/answers", a, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateAnswer(ctx context.Context, id, text string) error {
	body := map[string]string{"answer_text": text}
	path := "/api/v1/answers/" + url.PathEscape(id)
	return c.doJSON(ctx, http.MethodPatch, path, body, nil)
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends a binary attachment and returns the public reference URL.
// Failures here are always wrapped in ErrStorageUpload so callers can tell a
// storage problem apart from a record write problem.
func (c *HTTPClient) Upload(ctx context.Context, name string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	if _, err := fw.Write(data); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL+"/api/v1/storage", &buf)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.accessToken != "" {
		req.Header.Set(common.AccessTokenHeaderName, "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	defer resp.Body.Close()

	if err := mapStatus(resp.StatusCode); err != nil {
		if errors.Is(err, common.ErrAttachmentTooBig) {
			return "", err
		}
		return "", fmt.Errorf("%w: status %d", common.ErrStorageUpload, resp.StatusCode)
	}

	var ur uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&ur); err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrStorageUpload, err)
	}
	return ur.URL, nil
}
