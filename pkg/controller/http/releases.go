package http

import (
	"net/http"
	"time"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

type releasesResponse struct {
	Cards []*cardView `json:"cards"`
}

type cardView struct {
	ID          string      `json:"id"`
	Repository  string      `json:"repository"`
	Title       string      `json:"title"`
	Href        string      `json:"href"`
	Label       string      `json:"label"`
	NewTab      bool        `json:"new_tab"`
	ReleaseLink *model.Link `json:"release_link,omitempty"`
	Outcome     string      `json:"outcome,omitempty"`
	ResolvedAt  string      `json:"resolved_at,omitempty"`
	Keywords    []string    `json:"keywords"`
	FallbackURL string      `json:"fallback_url,omitempty"`
}

// handleReleases returns the current button state of every target
func handleReleases(board interfaces.BoardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards := board.Snapshot()

		resp := &releasesResponse{Cards: make([]*cardView, 0, len(cards))}
		for _, card := range cards {
			v := &cardView{
				ID:          card.Target.ID,
				Repository:  card.Target.Repository,
				Title:       card.Target.Title,
				Href:        card.Button.Href,
				Label:       card.Button.Label,
				NewTab:      card.Button.NewTab,
				Outcome:     string(card.Outcome),
				Keywords:    card.Target.Keywords,
				FallbackURL: card.Target.FallbackURL,
				ReleaseLink: card.Button.ReleaseLink,
			}
			if !card.ResolvedAt.IsZero() {
				v.ResolvedAt = card.ResolvedAt.UTC().Format(time.RFC3339)
			}
			resp.Cards = append(resp.Cards, v)
		}

		writeJSON(w, r, http.StatusOK, resp)
	}
}
