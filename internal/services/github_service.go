package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/models"
)

// FetchError is returned when the GitHub users API cannot be read. A
// non-zero StatusCode means the API answered with a non-2xx status.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("github api error: %d", e.StatusCode)
	}
	return fmt.Sprintf("github api request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// GitHubService fetches the public GitHub profile and keeps it cached.
// Concurrent callers share one in-flight request.
type GitHubService struct {
	cfg    config.GitHubConfig
	client *http.Client
	clock  clockwork.Clock
	logger *zap.Logger

	group singleflight.Group

	mu        sync.RWMutex
	cached    *models.GitHubProfile
	fetchedAt time.Time
}

// GitHubOption customizes a GitHubService
type GitHubOption func(*GitHubService)

// WithHTTPClient sets the client used for the API call
func WithHTTPClient(c *http.Client) GitHubOption {
	return func(s *GitHubService) { s.client = c }
}

// WithGitHubClock sets the clock used for cache expiry
func WithGitHubClock(c clockwork.Clock) GitHubOption {
	return func(s *GitHubService) { s.clock = c }
}

// NewGitHubService creates a new GitHubService
func NewGitHubService(cfg config.GitHubConfig, logger *zap.Logger, opts ...GitHubOption) *GitHubService {
	s := &GitHubService{
		cfg:    cfg,
		client: http.DefaultClient,
		clock:  clockwork.NewRealClock(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Fetch returns the profile, from cache while it is fresh. It gives up
// waiting when ctx is done, though the shared request keeps running.
func (s *GitHubService) Fetch(ctx context.Context) (*models.GitHubProfile, error) {
	if p := s.fresh(); p != nil {
		return p, nil
	}

	select {
	case res := <-s.load(ctx):
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*models.GitHubProfile), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Resolve reports the state of the profile as seen by a page request:
// loaded or failed once the fetch settles, pending if ctx ends first
func (s *GitHubService) Resolve(ctx context.Context) models.ProfileResult {
	p, err := s.Fetch(ctx)
	switch {
	case err == nil:
		return models.ProfileResult{State: models.ProfileLoaded, Profile: p}
	case ctx.Err() != nil:
		return models.ProfileResult{State: models.ProfilePending}
	default:
		return models.ProfileResult{State: models.ProfileFailed, Err: err}
	}
}

// load starts or joins the shared refresh. The request runs detached from
// the caller so an abandoned page still warms the cache.
func (s *GitHubService) load(ctx context.Context) <-chan singleflight.Result {
	detached := context.WithoutCancel(ctx)
	return s.group.DoChan("profile", func() (interface{}, error) {
		fctx := detached
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(detached, s.cfg.Timeout)
			defer cancel()
		}
		return s.refresh(fctx)
	})
}

func (s *GitHubService) refresh(ctx context.Context) (*models.GitHubProfile, error) {
	profile, err := s.fetchRemote(ctx)
	if err == nil {
		s.mu.Lock()
		s.cached = profile
		s.fetchedAt = s.clock.Now()
		s.mu.Unlock()
		return profile, nil
	}

	// a stale profile is served for another TTL before the next retry
	s.mu.Lock()
	stale := s.cached
	if stale != nil {
		s.fetchedAt = s.clock.Now()
	}
	s.mu.Unlock()
	if stale != nil {
		s.logger.Warn("serving stale github profile", zap.Error(err))
		return stale, nil
	}

	s.logger.Error("error fetching github data", zap.Error(err))
	return nil, err
}

func (s *GitHubService) fresh() *models.GitHubProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || s.clock.Since(s.fetchedAt) >= s.cfg.CacheTTL {
		return nil
	}
	return s.cached
}

func (s *GitHubService) fetchRemote(ctx context.Context) (*models.GitHubProfile, error) {
	url := strings.TrimRight(s.cfg.APIBase, "/") + "/users/" + s.cfg.User
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("User-Agent", s.cfg.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var profile models.GitHubProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decoding profile: %w", err)}
	}
	return &profile, nil
}
