package model

// Outcome tells which branch of release resolution set the button state
type Outcome string

const (
	OutcomeAsset           Outcome = "asset"
	OutcomeNoMatchingAsset Outcome = "no_matching_asset"
	OutcomeFallback        Outcome = "fallback"
)
