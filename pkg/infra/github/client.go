package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

type client struct {
	githubClient *github.Client
}

// config holds internal client configuration
type config struct {
	baseURL        string
	token          string
	appID          int64
	installationID int64
	privateKey     []byte
	timeout        time.Duration
	transport      http.RoundTripper
}

// Option is a functional option for the release client
type Option func(*config)

// WithBaseURL points the client at a GitHub Enterprise or test API root
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithToken authenticates requests with a personal access token
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithApp authenticates requests as a GitHub App installation
func WithApp(appID, installationID int64, privateKey []byte) Option {
	return func(c *config) {
		c.appID = appID
		c.installationID = installationID
		c.privateKey = privateKey
	}
}

// WithTimeout sets the HTTP client timeout. Zero keeps the platform default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithTransport replaces the base HTTP transport
func WithTransport(transport http.RoundTripper) Option {
	return func(c *config) {
		c.transport = transport
	}
}

// NewClient creates a new release client. Without credentials requests are anonymous.
func NewClient(opts ...Option) (interfaces.ReleaseClient, error) {
	cfg := &config{
		transport: http.DefaultTransport,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	transport := cfg.transport
	if cfg.appID != 0 {
		// Create GitHub App transport
		itr, err := ghinstallation.New(transport, cfg.appID, cfg.installationID, cfg.privateKey)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create GitHub App transport",
				goerr.V("app_id", cfg.appID),
				goerr.V("installation_id", cfg.installationID),
			)
		}
		if cfg.baseURL != "" {
			itr.BaseURL = strings.TrimSuffix(cfg.baseURL, "/")
		}
		transport = itr
	}

	githubClient := github.NewClient(&http.Client{
		Transport: transport,
		Timeout:   cfg.timeout,
	})
	if cfg.token != "" && cfg.appID == 0 {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API base URL", goerr.V("base_url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// GetLatestRelease fetches the latest published release of owner/repo
func (c *client) GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error) {
	release, resp, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		if status, ok := responseStatus(err, resp); ok {
			return nil, goerr.Wrap(err, "GitHub returned non-success status",
				goerr.T(model.ErrTagNonSuccessStatus),
				goerr.V("owner", owner),
				goerr.V("repo", repo),
				goerr.V("status", status),
			)
		}
		return nil, goerr.Wrap(err, "failed to request latest release",
			goerr.T(model.ErrTagNetworkFailure),
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return toRelease(release), nil
}

// responseStatus extracts the HTTP status of a failed API call, if a response was received
func responseStatus(err error, resp *github.Response) (int, bool) {
	var (
		errResp   *github.ErrorResponse
		rateErr   *github.RateLimitError
		abuseErr  *github.AbuseRateLimitError
		redirErr  *github.RedirectionError
		acceptErr *github.AcceptedError
	)

	switch {
	case errors.As(err, &errResp) && errResp.Response != nil:
		return errResp.Response.StatusCode, true
	case errors.As(err, &rateErr) && rateErr.Response != nil:
		return rateErr.Response.StatusCode, true
	case errors.As(err, &abuseErr) && abuseErr.Response != nil:
		return abuseErr.Response.StatusCode, true
	case errors.As(err, &redirErr):
		return redirErr.StatusCode, true
	case errors.As(err, &acceptErr):
		return http.StatusAccepted, true
	}

	// A 2xx response with an undecodable body is left to the caller as a read failure
	if resp != nil && resp.Response != nil && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return resp.StatusCode, true
	}
	return 0, false
}

func toRelease(r *github.RepositoryRelease) *model.Release {
	release := &model.Release{
		TagName: r.GetTagName(),
		HTMLURL: r.GetHTMLURL(),
		Assets:  make([]model.Asset, 0, len(r.Assets)),
	}
	for _, a := range r.Assets {
		release.Assets = append(release.Assets, model.Asset{
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
		})
	}
	return release
}
