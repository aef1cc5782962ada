package entities

// Sequence is the highest code number ever issued for a two-digit year.
type Sequence struct {
	Year string `json:"year"`
	Last int    `json:"last"`
}
