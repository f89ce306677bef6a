package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/apkshelf/apkshelf/pkg/infra/flagstore"
	"github.com/apkshelf/apkshelf/pkg/usecase"
)

func TestDisclaimerUseCase(t *testing.T) {
	uc := usecase.NewDisclaimer()

	t.Run("shown on first visit", func(t *testing.T) {
		gt.True(t, uc.ShouldShow(flagstore.NewMemory()))
	})

	t.Run("hidden after acknowledgment", func(t *testing.T) {
		store := flagstore.NewMemory()
		uc.Acknowledge(store)
		gt.False(t, uc.ShouldShow(store))

		v, ok := store.Get(usecase.DisclaimerKey)
		gt.True(t, ok)
		gt.Equal(t, v, "true")
	})

	t.Run("unexpected flag value still shows", func(t *testing.T) {
		store := flagstore.NewMemory()
		store.Set(usecase.DisclaimerKey, "no")
		gt.True(t, uc.ShouldShow(store))
	})
}
