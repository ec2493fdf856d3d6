package domain

// City is a single entry of the read-only city catalog. The catalog is
// loaded once at startup and never mutated; catalog order is significant
// when the same (name, country) pair appears more than once.
type City struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
