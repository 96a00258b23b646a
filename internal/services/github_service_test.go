package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahiru.dev/internal/config"
	"tahiru.dev/internal/models"
)

const profileJSON = `{
	"login": "tahiru0",
	"name": "Tahiru",
	"avatar_url": "https://avatars.example.com/u/1",
	"bio": "Building things",
	"public_repos": 42,
	"followers": 17,
	"following": 3,
	"html_url": "https://github.com/tahiru0"
}`

type githubStub struct {
	*httptest.Server
	hits   int32
	status int32
}

func newGitHubStub(t *testing.T) *githubStub {
	t.Helper()
	stub := &githubStub{status: http.StatusOK}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&stub.hits, 1)
		assert.Equal(t, "/users/tahiru0", r.URL.Path)
		assert.Equal(t, "Portfolio-App/1.0", r.Header.Get("User-Agent"))

		status := int(atomic.LoadInt32(&stub.status))
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(profileJSON))
		}
	}))
	t.Cleanup(stub.Close)
	return stub
}

func (s *githubStub) Hits() int { return int(atomic.LoadInt32(&s.hits)) }

func (s *githubStub) SetStatus(code int) { atomic.StoreInt32(&s.status, int32(code)) }

func testGitHubConfig(base string) config.GitHubConfig {
	cfg := config.DefaultConfig().GitHub
	cfg.APIBase = base
	return cfg
}

func TestFetchCachesProfile(t *testing.T) {
	stub := newGitHubStub(t)
	clock := clockwork.NewFakeClock()
	svc := NewGitHubService(testGitHubConfig(stub.URL), nil, WithGitHubClock(clock))

	p, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tahiru0", p.Login)
	assert.Equal(t, 42, p.PublicRepos)

	_, err = svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stub.Hits())

	clock.Advance(time.Hour)
	_, err = svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stub.Hits())
}

func TestFetchNon2xx(t *testing.T) {
	stub := newGitHubStub(t)
	stub.SetStatus(http.StatusInternalServerError)
	svc := NewGitHubService(testGitHubConfig(stub.URL), nil)

	_, err := svc.Fetch(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Equal(t, "github api error: 500", err.Error())
}

func TestFetchTransportError(t *testing.T) {
	svc := NewGitHubService(testGitHubConfig("http://127.0.0.1:1"), nil)

	_, err := svc.Fetch(context.Background())
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Zero(t, fe.StatusCode)
	assert.NotNil(t, fe.Unwrap())
}

func TestFetchServesStaleOnFailure(t *testing.T) {
	stub := newGitHubStub(t)
	clock := clockwork.NewFakeClock()
	svc := NewGitHubService(testGitHubConfig(stub.URL), nil, WithGitHubClock(clock))

	_, err := svc.Fetch(context.Background())
	require.NoError(t, err)

	stub.SetStatus(http.StatusServiceUnavailable)
	clock.Advance(2 * time.Hour)

	p, err := svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tahiru0", p.Login)
	assert.Equal(t, 2, stub.Hits())

	// the failed refresh starts a new TTL: no retry on every request
	for i := 0; i < 3; i++ {
		p, err = svc.Fetch(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tahiru0", p.Login)
	}
	assert.Equal(t, 2, stub.Hits())

	stub.SetStatus(http.StatusOK)
	clock.Advance(time.Hour)
	_, err = svc.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stub.Hits())
}

func TestConcurrentFetchesShareOneRequest(t *testing.T) {
	stub := newGitHubStub(t)
	svc := NewGitHubService(testGitHubConfig(stub.URL), nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Fetch(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, stub.Hits())
}

func TestResolveStates(t *testing.T) {
	release := make(chan struct{})
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		<-release
		_, _ = w.Write([]byte(profileJSON))
	}))
	defer srv.Close()

	svc := NewGitHubService(testGitHubConfig(srv.URL), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	res := svc.Resolve(ctx)
	assert.Equal(t, models.ProfilePending, res.State)

	// the abandoned fetch keeps running and fills the cache
	close(release)
	require.Eventually(t, func() bool {
		return svc.Resolve(context.Background()).State == models.ProfileLoaded
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	res = svc.Resolve(context.Background())
	require.NotNil(t, res.Profile)
	assert.Equal(t, 17, res.Profile.Followers)
}

func TestResolveFailed(t *testing.T) {
	stub := newGitHubStub(t)
	stub.SetStatus(http.StatusNotFound)
	svc := NewGitHubService(testGitHubConfig(stub.URL), nil)

	res := svc.Resolve(context.Background())
	assert.Equal(t, models.ProfileFailed, res.State)
	assert.Nil(t, res.Profile)
	assert.Error(t, res.Err)
}
