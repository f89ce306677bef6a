package http

import (
	"net/http"
	"strings"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/infra/flagstore"
)

// handleDisclaimerAcknowledge persists the acknowledgment flag. Scripted callers get 204,
// plain form posts are redirected back to the page.
func handleDisclaimerAcknowledge(disclaimer interfaces.DisclaimerUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		disclaimer.Acknowledge(flagstore.NewCookie(w, r))

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}
