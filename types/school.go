package types

// School is one row of the kindergarten MMR coverage dataset.
type School struct {
	ID               string  `json:"id" firestore:"-"` // tell firestore to ignore
	Name             string  `json:"name" firestore:"name"`
	County           string  `json:"county,omitempty" firestore:"county,omitempty"`
	Enrollment       int     `json:"enrollment" firestore:"enrollment"`
	ImmunizationRate float64 `json:"immunization_rate" firestore:"immunizationRate"`
}
