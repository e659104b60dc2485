package standard

// Duty is a standard's duty statement, identified by a code like "D1".
type Duty struct {
	ID          string
	Code        string
	Name        string
	Description string

	// Coins is hydrated on detail reads.
	Coins []*Coin
}

// DutyInput is the decoded request body for duty creation.
type DutyInput struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description string  `json:"description"`
}

// KSB is a knowledge, skill, or behaviour statement. The three kinds share
// a shape and a code namespace prefix (K, S, B) but live in separate tables.
type KSB struct {
	ID          string
	Code        string
	Name        string
	Description string
	Kind        Kind

	// Duties is hydrated on detail reads, from the kind's own junction.
	Duties []*Duty
}

// KSBInput is the decoded request body for KSB creation.
type KSBInput struct {
	Type        *string `json:"type"`
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description string  `json:"description"`
}
