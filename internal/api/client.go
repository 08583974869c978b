package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/doc-vault/internal/model"
)

// Base URL selection
const (
	StagingHostPattern = "premiumproject.examly.io"
	StagingPortPrefix  = "https://8080-"
	DocumentsPath      = "/api/documents"
	ProductionBaseURL  = "https://digital-vault-system-backend.onrender.com/api/documents"
)

// Request behaviour
const (
	// UploadTimeout separates a slow upload from a hung connection
	UploadTimeout      = 30 * time.Second
	DefaultContentType = "application/octet-stream"
	StagedFilePrefix   = "docvault-"
	maxErrorBodyBytes  = 64 << 10
)

// ResolveBaseURL picks the documents endpoint for the given host name.
// Hosts of the staging environment get a derived URL on port 8080; any other
// host uses the production backend.
func ResolveBaseURL(host string) string {
	if strings.Contains(host, StagingHostPattern) {
		parts := strings.Split(host, "-")
		return StagingPortPrefix + strings.Join(parts[1:], "-") + DocumentsPath
	}
	return ProductionBaseURL
}

// Client talks to the vault backend. Apart from the URLs resolved at
// construction it keeps no state between calls.
type Client struct {
	baseURL       string
	authURL       string
	httpClient    *http.Client
	logger        *zap.Logger
	stagingDir    string
	uploadTimeout time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient uses hc (copied) for all requests
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			clone := *hc
			c.httpClient = &clone
		}
	}
}

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStagingDir sets where downloads are staged before saving.
// Empty means the OS temp directory.
func WithStagingDir(dir string) Option {
	return func(c *Client) {
		c.stagingDir = dir
	}
}

// WithUploadTimeout bounds each upload by d instead of UploadTimeout
func WithUploadTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.uploadTimeout = d
		}
	}
}

// NewClient creates a client for the documents endpoint baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        zap.NewNop(),
		uploadTimeout: UploadTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	c.httpClient.Transport = newFaultTransport(c.httpClient.Transport, c.logger)
	c.authURL = strings.Replace(c.baseURL, "/documents", "/auth", 1)
	return c
}

// BaseURL returns the documents endpoint
func (c *Client) BaseURL() string {
	return c.baseURL
}

// AuthURL returns the auth endpoint derived from the documents endpoint
func (c *Client) AuthURL() string {
	return c.authURL
}

// ListDocuments returns the caller's documents. Only non-empty filter
// fields are sent as query parameters.
func (c *Client) ListDocuments(ctx context.Context, filter model.DocumentFilter) ([]model.Document, error) {
	endpoint := c.baseURL
	if !filter.IsZero() {
		query := url.Values{}
		if filter.Search != "" {
			query.Set("search", filter.Search)
		}
		if filter.Sort != "" {
			query.Set("sort", filter.Sort)
		}
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var docs []model.Document
	if err := c.doJSON(req, &docs); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}

// Register creates an account. Any 2xx response is success.
func (c *Client) Register(ctx context.Context, username, password string) error {
	if err := c.postCredentials(ctx, "/register", username, password); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

// Login checks credentials. Any 2xx response is success.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if err := c.postCredentials(ctx, "/login", username, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

func (c *Client) postCredentials(ctx context.Context, path, username, password string) error {
	payload, err := json.Marshal(struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{username, password})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, nil)
}

// UploadDocument posts the file and its metadata as multipart form data and
// returns the record the server created. The request is bounded by
// UploadTimeout unless WithUploadTimeout says otherwise.
func (c *Client) UploadDocument(ctx context.Context, upload UploadRequest) (model.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, c.uploadTimeout)
	defer cancel()

	body, contentType, err := EncodeUpload(upload)
	if err != nil {
		return model.Document{}, fmt.Errorf("upload document: %w", err)
	}
	size := body.Len()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return model.Document{}, fmt.Errorf("upload document: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	var doc model.Document
	if err := c.doJSON(req, &doc); err != nil {
		return model.Document{}, fmt.Errorf("upload document: %w", err)
	}

	c.logger.Info("document uploaded",
		zap.String("id", doc.ID.String()),
		zap.String("title", doc.DocumentTitle),
		zap.Int("bytes", size),
	)
	return doc, nil
}

// DeleteDocument removes a document by id
func (c *Client) DeleteDocument(ctx context.Context, id model.DocumentID) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.documentURL(id), nil)
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	if err := c.doJSON(req, nil); err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}
	return nil
}

// DownloadResult describes a completed download
type DownloadResult struct {
	Name        string
	ContentType string
	Size        int64
	SavedPath   string
}

// DownloadDocument fetches the document bytes, stages them in a temporary
// file and passes that file to saver under the derived name. The staged
// file is removed on every return path.
func (c *Client) DownloadDocument(ctx context.Context, id model.DocumentID, title string, saver Saver) (*DownloadResult, error) {
	if saver == nil {
		return nil, ErrNoSaver
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.documentURL(id)+"/download", nil)
	if err != nil {
		return nil, fmt.Errorf("download document %s: %w", id, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("download document %s: %w", id, err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultContentType
	}

	staged, err := c.stage(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download document %s: %w", id, err)
	}
	defer c.release(staged)

	size, err := staged.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("download document %s: %w", id, err)
	}
	if _, err := staged.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("download document %s: %w", id, err)
	}

	name := DownloadFileName(id, title, resp.Header.Get("Content-Disposition"))
	savedPath, err := saver.SaveFile(ctx, name, contentType, staged)
	if err != nil {
		return nil, fmt.Errorf("save %s: %w", name, err)
	}

	c.logger.Info("document downloaded",
		zap.String("id", id.String()),
		zap.String("name", name),
		zap.String("content_type", contentType),
		zap.Int64("bytes", size),
		zap.String("path", savedPath),
	)

	return &DownloadResult{
		Name:        name,
		ContentType: contentType,
		Size:        size,
		SavedPath:   savedPath,
	}, nil
}

// stage copies r into a fresh temporary file, leaving the offset at the end
func (c *Client) stage(r io.Reader) (*os.File, error) {
	f, err := os.CreateTemp(c.stagingDir, StagedFilePrefix+uuid.NewString()+"-*")
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return f, nil
}

// release closes and removes a staged file
func (c *Client) release(f *os.File) {
	name := f.Name()
	f.Close()
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		c.logger.Warn("failed to remove staged download", zap.String("path", name), zap.Error(err))
	}
}

func (c *Client) documentURL(id model.DocumentID) string {
	return c.baseURL + "/" + url.PathEscape(id.String())
}

// do sends req and turns non-2xx responses into *APIError. Requests that
// never reached the backend also match ErrConnectivity. On success the
// caller owns resp.Body.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsConnectivityError(err) {
			return nil, fmt.Errorf("%w: %w", ErrConnectivity, err)
		}
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		apiErr := newAPIError(resp.StatusCode, body)
		c.logger.Debug("request rejected",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Int("status", resp.StatusCode),
		)
		return nil, apiErr
	}
	return resp, nil
}

// doJSON sends req and decodes a JSON body into dst when dst is non-nil
func (c *Client) doJSON(req *http.Request, dst interface{}) error {
	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
