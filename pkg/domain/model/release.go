package model

import (
	"regexp"
	"strings"
)

// Release represents the latest published release of an upstream repository
type Release struct {
	TagName string  `json:"tag_name"` // Release tag, e.g. v1.2.3
	HTMLURL string  `json:"html_url"` // Release web page
	Assets  []Asset `json:"assets"`   // Downloadable files in listed order
}

// Asset represents one downloadable file attached to a release
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

// Matches reports whether the asset name contains every keyword, ignoring case
func (a Asset) Matches(keywords []string) bool {
	name := strings.ToLower(a.Name)
	for _, k := range keywords {
		if !strings.Contains(name, strings.ToLower(k)) {
			return false
		}
	}
	return true
}

// FindAsset returns the first asset matching all keywords in listed order, or nil
func (r *Release) FindAsset(keywords []string) *Asset {
	if r == nil {
		return nil
	}
	for i := range r.Assets {
		if r.Assets[i].Matches(keywords) {
			return &r.Assets[i]
		}
	}
	return nil
}

var versionPattern = regexp.MustCompile(`v\d+(\.\d+)+`)

// ExtractVersion returns the first "vX.Y[.Z...]" substring of name, or an empty string
func ExtractVersion(name string) string {
	return versionPattern.FindString(name)
}
