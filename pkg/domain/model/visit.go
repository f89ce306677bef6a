package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus is the fixed body returned by the visit tracking endpoint
type VisitStatus struct {
	Status string `json:"status"`
}

// VisitTracked is the only status the endpoint reports
const VisitTracked = "tracked"

// Visit is one recorded page view
type Visit struct {
	ID        uuid.UUID
	Source    string // "page" or "api"
	Count     uint64 // Counter value after this visit
	CreatedAt time.Time
}
