/*
Package standard implements the apprenticeship standard domain: coins,
duties, and KSBs (knowledge, skills, behaviours), plus the four junction
tables linking duties to everything else.

The three entity kinds live in one package because their read models nest
each other: a coin document carries its duties, a duty document carries its
coins, and a KSB document carries the duties from its own junction.
*/
package standard

import "encoding/json"

// Coin is a standard's assessed unit of work. Names are unique.
type Coin struct {
	ID   string
	Name string

	// Duties is hydrated on detail reads.
	Duties []*Duty

	// DutyIDs carries the desired association set on writes. A nil slice
	// means "leave associations alone"; an empty slice clears them.
	DutyIDs []string
}

// CoinInput is the decoded request body shared by the v1 and v2 coin
// endpoints. Name is a pointer so an absent key can be told apart from a
// blank value, and the association fields stay raw so their shape can be
// validated before use.
type CoinInput struct {
	Name      *string         `json:"name"`
	DutyIDs   json.RawMessage `json:"duty_ids"`
	DutyCodes json.RawMessage `json:"duty_codes"`
}
