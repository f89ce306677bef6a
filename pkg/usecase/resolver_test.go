package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/usecase"
)

// MockReleaseClient is a mock implementation of ReleaseClient
type MockReleaseClient struct {
	getLatestReleaseFunc func(ctx context.Context, owner, repo string) (*model.Release, error)

	mu    sync.Mutex
	calls []MockCall
}

type MockCall struct {
	Owner string
	Repo  string
}

func (m *MockReleaseClient) GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Owner: owner, Repo: repo})
	m.mu.Unlock()

	if m.getLatestReleaseFunc != nil {
		return m.getLatestReleaseFunc(ctx, owner, repo)
	}
	return nil, errors.New("mock not configured")
}

func (m *MockReleaseClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func releaseOf(tag string, names ...string) *model.Release {
	r := &model.Release{
		TagName: tag,
		HTMLURL: "https://github.com/krvstek/uni-apks/releases/tag/" + tag,
	}
	for _, name := range names {
		r.Assets = append(r.Assets, model.Asset{
			Name:        name,
			DownloadURL: "https://github.com/krvstek/uni-apks/releases/download/" + tag + "/" + name,
		})
	}
	return r
}

func staticClient(release *model.Release) *MockReleaseClient {
	return &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
			return release, nil
		},
	}
}

func redditTarget() *model.Target {
	return &model.Target{
		ID:          "btn-reddit",
		Repository:  "krvstek/uni-apks",
		Keywords:    []string{"reddit", "morphe", ".apk"},
		FallbackURL: "https://github.com/krvstek/uni-apks/releases/latest",
	}
}

func TestResolver_Resolve_MatchingAsset(t *testing.T) {
	ctx := context.Background()
	release := releaseOf("26.01.31-morphe",
		"youtube-morphe-v20.40.45-all.apk",
		"reddit-morphe-v2026.03.0-all.apk",
		"reddit-morphe-v2026.04.0-all.apk",
	)
	client := staticClient(release)
	uc := usecase.NewResolver(client)

	target := redditTarget()
	btn := target.NewButton()

	outcome := uc.Resolve(ctx, target, btn)

	gt.Equal(t, outcome, model.OutcomeAsset)
	gt.Equal(t, btn.Href, "https://github.com/krvstek/uni-apks/releases/download/26.01.31-morphe/reddit-morphe-v2026.03.0-all.apk")
	gt.Equal(t, btn.Label, "Download v2026.03.0")
	gt.False(t, btn.NewTab)
	gt.Value(t, btn.ReleaseLink).NotNil()
	gt.Equal(t, btn.ReleaseLink.Text, "(26.01.31-morphe)")
	gt.Equal(t, btn.ReleaseLink.URL, release.HTMLURL)

	gt.A(t, client.calls).Length(1)
	gt.Equal(t, client.calls[0], MockCall{Owner: "krvstek", Repo: "uni-apks"})
}

func TestResolver_Resolve_LabelFallsBackToTag(t *testing.T) {
	uc := usecase.NewResolver(staticClient(releaseOf("v3.1", "app-release.apk")))

	target := &model.Target{
		ID:          "btn-gphotos-arm64",
		Repository:  "mentalblank/GPhotos-Revanced",
		Keywords:    []string{".apk"},
		LabelPrefix: "Arm64",
	}
	btn := target.NewButton()

	gt.Equal(t, uc.Resolve(context.Background(), target, btn), model.OutcomeAsset)
	gt.Equal(t, btn.Label, "Arm64 v3.1")
}

func TestResolver_Resolve_ReleaseLinkAddedOnce(t *testing.T) {
	tag := "26.01.31-morphe"
	client := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
			r := releaseOf(tag, "reddit-morphe-v2026.03.0-all.apk")
			return r, nil
		},
	}
	uc := usecase.NewResolver(client)
	target := redditTarget()
	btn := target.NewButton()

	uc.Resolve(context.Background(), target, btn)
	tag = "26.02.14-morphe"
	uc.Resolve(context.Background(), target, btn)

	gt.Equal(t, btn.ReleaseLink.Text, "(26.01.31-morphe)")
	gt.Equal(t, btn.Href, "https://github.com/krvstek/uni-apks/releases/download/26.02.14-morphe/reddit-morphe-v2026.03.0-all.apk")
}

func TestResolver_Resolve_NoMatchingAsset(t *testing.T) {
	release := releaseOf("26.01.31-morphe", "youtube-morphe-v20.40.45-all.apk", "checksums.txt")
	uc := usecase.NewResolver(staticClient(release))

	target := redditTarget()
	btn := target.NewButton()

	outcome := uc.Resolve(context.Background(), target, btn)

	gt.Equal(t, outcome, model.OutcomeNoMatchingAsset)
	gt.Equal(t, btn.Href, release.HTMLURL)
	gt.Equal(t, btn.Label, "View Latest Release")
	gt.Value(t, btn.ReleaseLink).Nil()
	gt.True(t, btn.NewTab)
}

func TestResolver_Resolve_EmptyAssetList(t *testing.T) {
	release := &model.Release{TagName: "v1.0.0", HTMLURL: "https://example.com/release"}
	uc := usecase.NewResolver(staticClient(release))

	target := redditTarget()
	btn := target.NewButton()

	gt.Equal(t, uc.Resolve(context.Background(), target, btn), model.OutcomeNoMatchingAsset)
	gt.Equal(t, btn.Href, "https://example.com/release")
}

func TestResolver_Resolve_Failure(t *testing.T) {
	nonSuccess := goerr.New("GitHub returned non-success status",
		goerr.T(model.ErrTagNonSuccessStatus), goerr.V("status", 503))
	networkFailure := goerr.New("connection refused", goerr.T(model.ErrTagNetworkFailure))

	tests := []struct {
		name        string
		err         error
		fallbackURL string
		wantHref    string
		wantLabel   string
	}{
		{
			name:        "non-success status with fallback URL",
			err:         nonSuccess,
			fallbackURL: "https://github.com/krvstek/uni-apks/releases/latest",
			wantHref:    "https://github.com/krvstek/uni-apks/releases/latest",
			wantLabel:   "Download (Fallback)",
		},
		{
			name:        "network failure with fallback URL",
			err:         networkFailure,
			fallbackURL: "https://example.com/direct.apk",
			wantHref:    "https://example.com/direct.apk",
			wantLabel:   "Download (Fallback)",
		},
		{
			name:      "non-success status without fallback URL keeps href",
			err:       nonSuccess,
			wantHref:  "https://github.com/krvstek/uni-apks/releases",
			wantLabel: "View Releases",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &MockReleaseClient{
				getLatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
					return nil, tt.err
				},
			}
			uc := usecase.NewResolver(client)

			target := redditTarget()
			target.FallbackURL = tt.fallbackURL
			btn := target.NewButton()

			outcome := uc.Resolve(context.Background(), target, btn)

			gt.Equal(t, outcome, model.OutcomeFallback)
			gt.Equal(t, btn.Href, tt.wantHref)
			gt.Equal(t, btn.Label, tt.wantLabel)
			gt.Value(t, btn.ReleaseLink).Nil()
		})
	}
}

func TestResolver_ResolveAll_IsolatesTargets(t *testing.T) {
	client := &MockReleaseClient{
		getLatestReleaseFunc: func(ctx context.Context, owner, repo string) (*model.Release, error) {
			switch repo {
			case "broken":
				return nil, goerr.New("bad gateway", goerr.T(model.ErrTagNonSuccessStatus))
			case "panics":
				panic("unexpected payload")
			default:
				return releaseOf("v2.0.0", "MicroG-RE-v2.0.0.apk"), nil
			}
		},
	}
	uc := usecase.NewResolver(client, usecase.WithConcurrency(2))

	targets := []*model.Target{
		{ID: "ok-1", Repository: "o/ok", Keywords: []string{".apk"}},
		{ID: "broken", Repository: "o/broken", Keywords: []string{".apk"}, FallbackURL: "https://example.com/fallback"},
		{ID: "panics", Repository: "o/panics", Keywords: []string{".apk"}},
		{ID: "ok-2", Repository: "o/ok", Keywords: []string{"microg", ".apk"}, LabelPrefix: "Get"},
	}
	buttons := make([]*model.Button, len(targets))
	for i, target := range targets {
		buttons[i] = target.NewButton()
	}

	outcomes := uc.ResolveAll(context.Background(), targets, buttons)

	gt.A(t, outcomes).Length(4)
	gt.Equal(t, outcomes[0], model.OutcomeAsset)
	gt.Equal(t, outcomes[1], model.OutcomeFallback)
	gt.Equal(t, outcomes[2], model.OutcomeFallback)
	gt.Equal(t, outcomes[3], model.OutcomeAsset)

	gt.Equal(t, buttons[0].Label, "Download v2.0.0")
	gt.Equal(t, buttons[1].Href, "https://example.com/fallback")
	gt.Equal(t, buttons[1].Label, "Download (Fallback)")
	gt.Equal(t, buttons[2].Label, "View Releases")
	gt.Equal(t, buttons[3].Label, "Get v2.0.0")
	gt.Equal(t, client.CallCount(), 4)
}
