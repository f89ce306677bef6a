package http_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	controller "github.com/apkshelf/apkshelf/pkg/controller/http"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/usecase"
)

// fakeBoard serves fixed cards
type fakeBoard struct {
	mu    sync.Mutex
	cards []*model.Card
}

func (b *fakeBoard) Refresh(ctx context.Context) {}

func (b *fakeBoard) Run(ctx context.Context, interval time.Duration) {}

func (b *fakeBoard) Snapshot() []*model.Card {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cards
}

// newFakeBoard returns three cards: one resolved asset, one fallback and one pending,
// where the two Google Photos builds share a section
func newFakeBoard() *fakeBoard {
	reddit := &model.Target{
		ID:          "btn-reddit",
		Section:     "reddit",
		Title:       "Reddit Morphe",
		Description: "Reddit without ads.",
		Repository:  "krvstek/uni-apks",
		Keywords:    []string{"reddit", "morphe", ".apk"},
	}
	redditBtn := reddit.NewButton()
	redditBtn.Href = "https://github.com/krvstek/uni-apks/releases/download/26.01.31-morphe/reddit-morphe-v2026.03.0-all.apk"
	redditBtn.Label = "Download v2026.03.0"
	redditBtn.NewTab = false
	redditBtn.AppendReleaseLink("26.01.31-morphe", "https://github.com/krvstek/uni-apks/releases/tag/26.01.31-morphe")

	arm64 := &model.Target{
		ID:          "btn-gphotos-arm64",
		Section:     "gphotos",
		Title:       "Google Photos ReVanced",
		Repository:  "mentalblank/GPhotos-Revanced",
		Keywords:    []string{"arm64", ".apk"},
		LabelPrefix: "Arm64",
		FallbackURL: "https://github.com/mentalblank/GPhotos-Revanced/releases/latest",
	}
	arm64Btn := arm64.NewButton()
	arm64Btn.Href = arm64.FallbackURL
	arm64Btn.Label = model.LabelFallback

	armv7 := &model.Target{
		ID:          "btn-gphotos-armv7",
		Section:     "gphotos",
		Title:       "Google Photos ReVanced",
		Repository:  "mentalblank/GPhotos-Revanced",
		Keywords:    []string{"arm-v7a", ".apk"},
		LabelPrefix: "Armv7",
	}

	return &fakeBoard{
		cards: []*model.Card{
			{Target: reddit, Button: redditBtn, Outcome: model.OutcomeAsset},
			{Target: arm64, Button: arm64Btn, Outcome: model.OutcomeFallback},
			{Target: armv7, Button: armv7.NewButton()},
		},
	}
}

func newTestServer(t *testing.T, board *fakeBoard) *controller.Server {
	t.Helper()

	server, err := controller.NewServer(
		context.Background(),
		controller.UseCases{
			Board:      board,
			Visit:      usecase.NewVisit(),
			Disclaimer: usecase.NewDisclaimer(),
		},
		controller.WithAddr("localhost:0"),
	)
	gt.NoError(t, err)
	return server
}
