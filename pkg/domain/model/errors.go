package model

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNetworkFailure marks a release request that was rejected or could not be read
	ErrTagNetworkFailure = goerr.NewTag("network_failure")

	// ErrTagNonSuccessStatus marks a release response with a non-2xx status
	ErrTagNonSuccessStatus = goerr.NewTag("non_success_status")

	// ErrTagNoMatchingAsset marks a release with no asset satisfying the keywords
	ErrTagNoMatchingAsset = goerr.NewTag("no_matching_asset")

	// ErrTagInvalidTarget marks a target descriptor that cannot be resolved
	ErrTagInvalidTarget = goerr.NewTag("invalid_target")
)
