package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/utils/async"
)

type resolverUseCase struct {
	releaseClient interfaces.ReleaseClient
	concurrency   int
}

// ResolverOption is a functional option for the resolver
type ResolverOption func(*resolverUseCase)

// WithConcurrency limits how many targets are resolved at the same time. Zero means no limit.
func WithConcurrency(n int) ResolverOption {
	return func(uc *resolverUseCase) {
		uc.concurrency = n
	}
}

// NewResolver creates a new instance of ResolverUseCase
func NewResolver(releaseClient interfaces.ReleaseClient, opts ...ResolverOption) interfaces.ResolverUseCase {
	uc := &resolverUseCase{
		releaseClient: releaseClient,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Resolve fetches the latest release of the target repository and updates btn.
// Failures degrade to a fallback button state; nothing is returned as an error.
func (uc *resolverUseCase) Resolve(ctx context.Context, target *model.Target, btn *model.Button) model.Outcome {
	logger := ctxlog.From(ctx).With("target", target.ID, "repository", target.Repository)

	release, err := uc.releaseClient.GetLatestRelease(ctx, target.Owner(), target.Repo())
	if err != nil {
		logger.Warn("Failed to fetch latest release",
			"error", err,
			"network_failure", goerr.HasTag(err, model.ErrTagNetworkFailure),
			"non_success_status", goerr.HasTag(err, model.ErrTagNonSuccessStatus),
		)
		applyFallback(target, btn)
		return model.OutcomeFallback
	}

	asset := release.FindAsset(target.Keywords)
	if asset == nil {
		logger.Warn("Falling back to release page",
			"error", goerr.New("no asset matches keywords",
				goerr.T(model.ErrTagNoMatchingAsset),
				goerr.V("keywords", target.Keywords),
				goerr.V("tag_name", release.TagName),
			),
		)
		btn.Href = release.HTMLURL
		btn.Label = model.LabelViewLatestRelease
		return model.OutcomeNoMatchingAsset
	}

	btn.Href = asset.DownloadURL
	btn.NewTab = false
	btn.Label = assetLabel(target.Prefix(), asset, release)

	if btn.AppendReleaseLink(release.TagName, release.HTMLURL) {
		logger.Debug("Added release link", "tag_name", release.TagName)
	}

	logger.Info("Resolved release asset",
		"asset", asset.Name,
		"tag_name", release.TagName,
		"label", btn.Label,
	)
	return model.OutcomeAsset
}

// ResolveAll resolves targets[i] into buttons[i]. Each target runs as its own task with isolated
// error and panic handling, so one failing target cannot change another target's button.
func (uc *resolverUseCase) ResolveAll(ctx context.Context, targets []*model.Target, buttons []*model.Button) []model.Outcome {
	if len(targets) != len(buttons) {
		panic(fmt.Sprintf("targets and buttons length mismatch: %d != %d", len(targets), len(buttons)))
	}

	outcomes := make([]model.Outcome, len(targets))

	var eg errgroup.Group
	if uc.concurrency > 0 {
		eg.SetLimit(uc.concurrency)
	}

	for i := range targets {
		eg.Go(func() error {
			async.Isolate(ctx, "resolve "+targets[i].ID, func(ctx context.Context) error {
				outcomes[i] = uc.Resolve(ctx, targets[i], buttons[i])
				return nil
			})
			if outcomes[i] == "" {
				// The task panicked before producing an outcome
				applyFallback(targets[i], buttons[i])
				outcomes[i] = model.OutcomeFallback
			}
			return nil
		})
	}
	_ = eg.Wait() // tasks never return errors

	return outcomes
}

func applyFallback(target *model.Target, btn *model.Button) {
	if target.FallbackURL != "" {
		btn.Href = target.FallbackURL
		btn.Label = model.LabelFallback
		return
	}
	btn.Label = model.LabelViewReleases
}

func assetLabel(prefix string, asset *model.Asset, release *model.Release) string {
	if version := model.ExtractVersion(asset.Name); version != "" {
		return prefix + " " + version
	}
	return prefix + " " + release.TagName
}
