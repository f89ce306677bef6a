package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultLabelPrefix is used when a target has no label prefix
const DefaultLabelPrefix = "Download"

// Target binds one upstream repository to one download button
type Target struct {
	ID          string   `toml:"id" json:"id"`                               // Button identifier
	Repository  string   `toml:"repository" json:"repository"`               // owner/repo
	Keywords    []string `toml:"keywords" json:"keywords"`                   // All must match the asset name
	FallbackURL string   `toml:"fallback_url,omitempty" json:"fallback_url"` // Used when resolution fails
	LabelPrefix string   `toml:"label_prefix,omitempty" json:"label_prefix"` // Defaults to "Download"
	Title       string   `toml:"title" json:"title"`                         // Card heading
	Description string   `toml:"description,omitempty" json:"description"`   // Card body text
	Href        string   `toml:"href,omitempty" json:"href"`                 // Initial destination
	Section     string   `toml:"section,omitempty" json:"section"`           // Card grouping on the page
}

// Owner returns the repository owner
func (t *Target) Owner() string {
	owner, _, _ := strings.Cut(t.Repository, "/")
	return owner
}

// Repo returns the repository name
func (t *Target) Repo() string {
	_, repo, _ := strings.Cut(t.Repository, "/")
	return repo
}

// Prefix returns the label prefix, falling back to DefaultLabelPrefix
func (t *Target) Prefix() string {
	if t.LabelPrefix == "" {
		return DefaultLabelPrefix
	}
	return t.LabelPrefix
}

// InitialHref returns where the button points before any resolution
func (t *Target) InitialHref() string {
	if t.Href != "" {
		return t.Href
	}
	return "https://github.com/" + t.Repository + "/releases"
}

// Validate checks the target is usable for resolution
func (t *Target) Validate() error {
	if t.ID == "" {
		return goerr.New("target id is required", goerr.T(ErrTagInvalidTarget))
	}

	owner, repo, ok := strings.Cut(t.Repository, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return goerr.New("repository must be in owner/repo form",
			goerr.T(ErrTagInvalidTarget),
			goerr.V("id", t.ID),
			goerr.V("repository", t.Repository),
		)
	}

	if len(t.Keywords) == 0 {
		return goerr.New("at least one keyword is required",
			goerr.T(ErrTagInvalidTarget),
			goerr.V("id", t.ID),
		)
	}

	return nil
}

// NewButton creates the initial, unresolved button state for the target
func (t *Target) NewButton() *Button {
	return &Button{
		ID:          t.ID,
		Href:        t.InitialHref(),
		Label:       LabelPending,
		NewTab:      true,
		Description: t.Description,
	}
}
