package http

import (
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
)

// handleVisit counts one page view. It answers every method with the same uncached body;
// a tracking failure is logged and never changes the response.
func handleVisit(visitUC interfaces.VisitUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := visitUC.Track(r.Context(), "api"); err != nil {
			ctxlog.From(r.Context()).Warn("Failed to track visit", "error", err)
		}

		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		writeJSON(w, r, http.StatusOK, &model.VisitStatus{Status: model.VisitTracked})
	}
}
