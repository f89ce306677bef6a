package model

import "time"

// Card pairs a target with its current button state for rendering
type Card struct {
	Target     *Target   `json:"target"`
	Button     *Button   `json:"button"`
	Outcome    Outcome   `json:"outcome,omitempty"`
	ResolvedAt time.Time `json:"resolved_at,omitempty"`
}
