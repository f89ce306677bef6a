package http

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/domain/types"
	"github.com/apkshelf/apkshelf/pkg/infra/flagstore"
	"github.com/apkshelf/apkshelf/pkg/utils/async"
)

//go:embed assets/templates/*.html assets/static/*
var assets embed.FS

// disclaimerDelayMs is how long the page waits before showing the disclaimer
const disclaimerDelayMs = 1500

type pageHandler struct {
	board      interfaces.BoardUseCase
	visit      interfaces.VisitUseCase
	disclaimer interfaces.DisclaimerUseCase
	tmpl       *template.Template
}

type pageData struct {
	Version           string
	Sections          []*sectionView
	ShowDisclaimer    bool
	DisclaimerDelayMs int
}

// sectionView is one card on the page; apps with per-architecture builds have several buttons
type sectionView struct {
	ID          string
	Title       string
	Description string
	ReleaseLink *model.Link
	Buttons     []*buttonView
}

type buttonView struct {
	*model.Button
	Repository string
}

func newPageHandler(
	board interfaces.BoardUseCase,
	visit interfaces.VisitUseCase,
	disclaimer interfaces.DisclaimerUseCase,
) (*pageHandler, error) {
	tmpl, err := template.ParseFS(assets, "assets/templates/index.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page template")
	}

	return &pageHandler{
		board:      board,
		visit:      visit,
		disclaimer: disclaimer,
		tmpl:       tmpl,
	}, nil
}

// Handle renders the landing page
func (h *pageHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := ctxlog.From(ctx)

	// Fire-and-forget; the page never waits on tracking
	async.Dispatch(ctx, func(ctx context.Context) error {
		_, err := h.visit.Track(ctx, "page")
		return err
	})

	data := &pageData{
		Version:           types.Version,
		Sections:          groupSections(h.board.Snapshot()),
		ShowDisclaimer:    h.disclaimer.ShouldShow(flagstore.NewCookie(w, r)),
		DisclaimerDelayMs: disclaimerDelayMs,
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		logger.Error("Failed to render page", "error", err)
		writeError(w, r, goerr.Wrap(err, "failed to render page"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.Warn("Failed to write page", "error", err)
	}
}

// groupSections merges cards that share a section, keeping first-appearance order
func groupSections(cards []*model.Card) []*sectionView {
	var sections []*sectionView
	index := map[string]*sectionView{}

	for _, card := range cards {
		key := card.Target.Section
		if key == "" {
			key = card.Target.ID
		}

		section, ok := index[key]
		if !ok {
			section = &sectionView{
				ID:          key,
				Title:       card.Target.Title,
				Description: card.Target.Description,
			}
			index[key] = section
			sections = append(sections, section)
		}

		// The description shows a single release link per card, like a shared description line
		if section.ReleaseLink == nil && card.Button.ReleaseLink != nil {
			section.ReleaseLink = card.Button.ReleaseLink
		}

		section.Buttons = append(section.Buttons, &buttonView{
			Button:     card.Button,
			Repository: card.Target.Repository,
		})
	}

	return sections
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return http.FileServer(http.FS(sub))
}
