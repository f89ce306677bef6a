package model

// Button labels written by release resolution
const (
	LabelPending           = "Checking latest release..."
	LabelViewLatestRelease = "View Latest Release"
	LabelFallback          = "Download (Fallback)"
	LabelViewReleases      = "View Releases"
)

// Link is an inline anchor rendered next to a button description
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Button is the resolved state of one download control
type Button struct {
	ID          string `json:"id"`
	Href        string `json:"href"`
	Label       string `json:"label"`
	NewTab      bool   `json:"new_tab"` // Rendered as target="_blank"
	Description string `json:"description"`
	ReleaseLink *Link  `json:"release_link,omitempty"`

	// releaseLinkAdded guards AppendReleaseLink so the link is added once per button lifetime
	releaseLinkAdded bool
}

// AppendReleaseLink adds a "(tag)" link to the release page beside the description.
// Only the first call has an effect; it returns true when the link was added.
func (b *Button) AppendReleaseLink(tag, url string) bool {
	if b.releaseLinkAdded {
		return false
	}

	b.ReleaseLink = &Link{
		Text: "(" + tag + ")",
		URL:  url,
	}
	b.releaseLinkAdded = true
	return true
}

// HasReleaseLink reports whether the release link marker is set
func (b *Button) HasReleaseLink() bool {
	return b.releaseLinkAdded
}

// Clone returns a copy of the button including its release link marker
func (b *Button) Clone() *Button {
	c := *b
	if b.ReleaseLink != nil {
		link := *b.ReleaseLink
		c.ReleaseLink = &link
	}
	return &c
}
