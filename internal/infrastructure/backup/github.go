// Package backup pushes advisory copies of user and result records to a
// GitHub repository via the contents API. Nothing in here is authoritative:
// callers treat every failure as a warning, never as a hard error.
package backup

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eslsoft/prepnet/internal/entity"
	"github.com/eslsoft/prepnet/internal/infrastructure/config"
	"github.com/eslsoft/prepnet/internal/repository"
)

const defaultTimeout = 10 * time.Second

// GitHubStore implements repository.BackupStore against the GitHub contents
// API, one JSON document per path. Without a token every operation is a
// silent no-op failure.
type GitHubStore struct {
	baseURL string
	owner   string
	repo    string
	branch  string
	token   string
	client  *http.Client
}

// NewGitHubStore builds a backup store from configuration.
func NewGitHubStore(cfg *config.Config) *GitHubStore {
	timeout := cfg.Backup.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	branch := cfg.Backup.Branch
	if branch == "" {
		branch = "main"
	}
	return &GitHubStore{
		baseURL: "https://api.github.com",
		owner:   cfg.Backup.Owner,
		repo:    cfg.Backup.Repo,
		branch:  branch,
		token:   strings.TrimSpace(cfg.Backup.Token),
		client:  &http.Client{Timeout: timeout},
	}
}

// Enabled reports whether a credential is configured.
func (s *GitHubStore) Enabled() bool { return s.token != "" }

func (s *GitHubStore) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", s.baseURL, s.owner, s.repo, path)
}

func (s *GitHubStore) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "token "+s.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
}

// Put creates the object at path. Success requires a 200 or 201 from the API.
func (s *GitHubStore) Put(ctx context.Context, path string, payload []byte) error {
	if !s.Enabled() {
		return entity.ErrBackupDisabled
	}

	body, err := json.Marshal(putRequest{
		Message: "Add " + path,
		Content: base64.StdEncoding.EncodeToString(payload),
		Branch:  s.branch,
	})
	if err != nil {
		return fmt.Errorf("encode backup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.contentsURL(path), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build backup request: %w", err)
	}
	s.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("push %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("push %s: unexpected status %s", path, resp.Status)
	}
	return nil
}

type contentsEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// List fetches every JSON object stored under prefix. Any remote failure
// yields an empty slice together with the error; partial fetch failures skip
// the affected object.
func (s *GitHubStore) List(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	if !s.Enabled() {
		return nil, entity.ErrBackupDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.contentsURL(prefix), nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}
	s.setHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", prefix, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list %s: unexpected status %s", prefix, resp.Status)
	}

	var entries []contentsEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode listing for %s: %w", prefix, err)
	}

	payloads := make([]json.RawMessage, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name, ".json") || entry.DownloadURL == "" {
			continue
		}
		payload, err := s.fetch(ctx, entry.DownloadURL)
		if err != nil {
			continue
		}
		payloads = append(payloads, payload)
	}
	return payloads, nil
}

func (s *GitHubStore) fetch(ctx context.Context, url string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch object: unexpected status %s", resp.Status)
	}

	var payload json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload, nil
}

var _ repository.BackupStore = (*GitHubStore)(nil)
