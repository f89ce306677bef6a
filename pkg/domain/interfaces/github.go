package interfaces

import (
	"context"

	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

// ReleaseClient defines operations for reading releases from GitHub
type ReleaseClient interface {
	// GetLatestRelease returns the latest published release of owner/repo.
	// Errors are tagged with model.ErrTagNetworkFailure or model.ErrTagNonSuccessStatus.
	GetLatestRelease(ctx context.Context, owner, repo string) (*model.Release, error)
}
