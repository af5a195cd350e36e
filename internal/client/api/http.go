package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/estudiantes/revista/internal/client/models"
	"github.com/estudiantes/revista/internal/common"
)

// HTTPClient implements Client over the collaborator's REST API.
// The bearer token is guarded by a mutex because the session watcher and the
// REPL may touch it concurrently.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a collaborator client rooted at baseURL (including
// the /api prefix). A nil httpClient falls back to http.DefaultClient.
func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorResponse is FastAPI's error envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// readDetail extracts the collaborator's error detail, falling back to the
// raw body so failures are never reduced to a bare status code.
func readDetail(body []byte) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return parsed.Detail
	}
	return strings.TrimSpace(string(body))
}

// mapStatusError translates a non-2xx response into a sentinel error kind,
// preserving the collaborator's detail text.
func mapStatusError(status int, detail string) error {
	var kind error
	switch {
	case status == http.StatusBadRequest:
		kind = common.ErrValidation
	case status == http.StatusUnauthorized:
		kind = common.ErrInvalidToken
	case status == http.StatusForbidden:
		kind = common.ErrAuthorization
	case status == http.StatusNotFound:
		kind = common.ErrNotFound
	case status == http.StatusConflict:
		kind = common.ErrInvalidStateTransition
	case status >= 500:
		kind = common.ErrUnavailable
	default:
		kind = common.ErrUnavailable
	}
	if detail == "" {
		return fmt.Errorf("%w: status %d", kind, status)
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

// do sends the request, attaching the installed bearer token when the
// caller has not already set one, and returns the response body on 2xx.
// Transport failures surface as ErrUnavailable; HTTP failures go through
// mapErr.
func (c *HTTPClient) do(req *http.Request, mapErr func(status int, detail string) error) ([]byte, error) {
	if req.Header.Get("Authorization") == "" {
		if tok := c.bearer(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, mapErr(resp.StatusCode, readDetail(body))
	}
	return body, nil
}

func (c *HTTPClient) postForm(ctx context.Context, path string, form url.Values, mapErr func(int, string) error) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, mapErr)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	body, err := c.do(req, mapStatusError)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// Authenticate posts the OAuth2 password form. Bad credentials map to
// ErrAuth rather than the generic invalid-token kind.
func (c *HTTPClient) Authenticate(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	body, err := c.postForm(ctx, "/token", form, func(status int, detail string) error {
		if status == http.StatusUnauthorized {
			if detail == "" {
				return common.ErrAuth
			}
			return fmt.Errorf("%w: %s", common.ErrAuth, detail)
		}
		return mapStatusError(status, detail)
	})
	if err != nil {
		return "", err
	}

	var parsed struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if parsed.AccessToken == "" {
		return "", fmt.Errorf("%w: empty access token", common.ErrUnavailable)
	}
	return parsed.AccessToken, nil
}

// CurrentUser validates token by fetching the identity behind it. The token
// rides on this one request; the installed token stays as it is.
func (c *HTTPClient) CurrentUser(ctx context.Context, token string) (models.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/current_user", nil)
	if err != nil {
		return models.Identity{}, fmt.Errorf("create request /current_user: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req, mapStatusError)
	if err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return models.Identity{}, fmt.Errorf("decode /current_user response: %w", err)
	}
	return identity, nil
}

// Register creates an account. A duplicate email maps to ErrConflict whether
// the collaborator answers 409 or the legacy 400 with its detail text.
func (c *HTTPClient) Register(ctx context.Context, profile models.Profile) error {
	form := url.Values{}
	form.Set("email", profile.Email)
	form.Set("password", profile.Password)
	form.Set("name", profile.Name)
	form.Set("institution", profile.Institution)
	form.Set("study_area", profile.StudyArea)

	_, err := c.postForm(ctx, "/register", form, func(status int, detail string) error {
		switch status {
		case http.StatusConflict:
			return fmt.Errorf("%w: %s", common.ErrConflict, detail)
		case http.StatusBadRequest:
			if strings.Contains(strings.ToLower(detail), "already registered") {
				return fmt.Errorf("%w: %s", common.ErrConflict, detail)
			}
			return fmt.Errorf("%w: %s", common.ErrValidation, detail)
		default:
			return mapStatusError(status, detail)
		}
	})
	return err
}

func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) Papers(ctx context.Context, filter models.Filter) ([]models.Manuscript, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Author != "" {
		query.Set("author", filter.Author)
	}
	if filter.Institution != "" {
		query.Set("institution", filter.Institution)
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}

	var papers []models.Manuscript
	if err := c.getJSON(ctx, "/papers", query, &papers); err != nil {
		return nil, err
	}
	return papers, nil
}

func (c *HTTPClient) SubmitManuscript(ctx context.Context, draft models.ManuscriptDraft) (models.SubmitReceipt, error) {
	fields := map[string]string{
		"title":       draft.Title,
		"authors":     strings.Join(draft.Authors, ","),
		"institution": draft.Institution,
		"email":       draft.Email,
		"category":    draft.Category,
		"abstract":    draft.Abstract,
		"keywords":    strings.Join(draft.Keywords, ","),
		"word_count":  strconv.Itoa(draft.WordCount),
	}
	files := map[string]models.Attachment{"file": draft.File}

	body, err := c.postMultipart(ctx, "/submit-paper", fields, files, mapStatusError)
	if err != nil {
		return models.SubmitReceipt{}, err
	}

	var receipt models.SubmitReceipt
	if err := json.Unmarshal(body, &receipt); err != nil {
		return models.SubmitReceipt{}, fmt.Errorf("decode submit response: %w", err)
	}
	return receipt, nil
}

func (c *HTTPClient) ApplyAsReviewer(ctx context.Context, draft models.ApplicationDraft) error {
	fields := map[string]string{
		"name":              draft.Name,
		"email":             draft.Email,
		"institution":       draft.Institution,
		"motivation_letter": draft.MotivationLetter,
		"specialization":    strings.Join(draft.Specialization, ","),
		"references":        strings.Join(draft.References, ","),
		"experience":        draft.Experience,
	}
	files := map[string]models.Attachment{
		"cv":           draft.CV,
		"certificates": draft.Certificates,
	}

	_, err := c.postMultipart(ctx, "/apply-admin", fields, files, mapStatusError)
	return err
}

func (c *HTTPClient) ReviewerApplications(ctx context.Context) ([]models.ReviewerApplication, error) {
	var applications []models.ReviewerApplication
	if err := c.getJSON(ctx, "/admin/applications", nil, &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (c *HTTPClient) ReviewManuscript(ctx context.Context, id string, verdict models.Verdict, comment string) error {
	return c.review(ctx, "/review/"+url.PathEscape(id), verdict, comment)
}

func (c *HTTPClient) ReviewApplication(ctx context.Context, id string, verdict models.Verdict, comment string) error {
	return c.review(ctx, "/admin/applications/"+url.PathEscape(id)+"/review", verdict, comment)
}

func (c *HTTPClient) review(ctx context.Context, path string, verdict models.Verdict, comment string) error {
	form := url.Values{}
	form.Set("action", string(verdict))
	form.Set("comment", comment)

	_, err := c.postForm(ctx, path, form, mapStatusError)
	return err
}

// postMultipart assembles a multipart form with plain fields and file parts.
// The body is buffered through a pipe so large manuscripts are streamed, not
// held in memory twice.
func (c *HTTPClient) postMultipart(ctx context.Context, path string, fields map[string]string, files map[string]models.Attachment, mapErr func(int, string) error) ([]byte, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeMultipart(mw, fields, files)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, pr)
	if err != nil {
		// Unblock the writer goroutine; nothing will read the pipe.
		_ = pr.CloseWithError(err)
		return nil, fmt.Errorf("create request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, mapErr)
}

func writeMultipart(mw *multipart.Writer, fields map[string]string, files map[string]models.Attachment) error {
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return err
		}
	}
	for name, att := range files {
		part, err := mw.CreateFormFile(name, att.Name)
		if err != nil {
			return err
		}
		if att.Content == nil {
			continue
		}
		if _, err := io.Copy(part, att.Content); err != nil {
			return err
		}
	}
	return nil
}
