package types

import "go-measlesmonitor/simulation"

// Scenario pairs the inputs of one simulation run with its full
// outcome vector. The dashboard renders every field, so nothing is
// collapsed into a headline number.
type Scenario struct {
	SchoolID         string             `json:"school_id,omitempty" firestore:"schoolID,omitempty"`
	SchoolName       string             `json:"school_name,omitempty" firestore:"schoolName,omitempty"`
	Enrollment       int                `json:"enrollment" firestore:"enrollment"`
	ImmunizationRate float64            `json:"immunization_rate" firestore:"immunizationRate"`
	R0               float64            `json:"r0" firestore:"r0"`
	Outcome          simulation.Outcome `json:"outcome" firestore:"outcome"`
	ComputedAt       string             `json:"computed_at,omitempty" firestore:"computedAt,omitempty"`
}

// BatchResult is one entry of a concurrent batch evaluation. Failed
// evaluations keep their slot so callers can line results up with
// inputs.
type BatchResult struct {
	Scenario Scenario `json:"scenario"`
	Error    string   `json:"error,omitempty"`
}
