package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/apkshelf/apkshelf/pkg/domain/interfaces"
	"github.com/apkshelf/apkshelf/pkg/domain/model"
	"github.com/apkshelf/apkshelf/pkg/domain/types"
)

// healthHandler handles health check requests
func healthHandler(board interfaces.BoardUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := &model.HealthStatus{
			Status:  "healthy",
			Service: types.ServiceName,
			Version: types.Version,
			Targets: len(board.Snapshot()),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(status); err != nil {
			ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
		}
	}
}
