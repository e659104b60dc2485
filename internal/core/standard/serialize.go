package standard

// The API's wire documents. Wire shapes are deliberately independent of the
// entity structs: the v1 coin document has exactly two keys, KSB documents
// carry a "type" tag the table row does not, and nested duties under a KSB
// collapse to {id, name}.

// CoinDocument is the v1 coin shape.
type CoinDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CoinDetail is the v2 coin shape with nested duties.
type CoinDetail struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Duties []DutyDocument `json:"duties"`
}

// DutyDocument is the full duty shape.
type DutyDocument struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DutyRef is the abbreviated duty shape nested under a KSB.
type DutyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DutyDetail is a duty with its associated coins.
type DutyDetail struct {
	ID          string         `json:"id"`
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Coins       []CoinDocument `json:"coins"`
}

// KSBDocument is the list shape for a knowledge, skill, or behaviour.
type KSBDocument struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        Kind   `json:"type"`
}

// KSBDetail is a KSB with its associated duties.
type KSBDetail struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        Kind      `json:"type"`
	Duties      []DutyRef `json:"duties"`
}

func NewCoinDocument(coin *Coin) CoinDocument {
	return CoinDocument{ID: coin.ID, Name: coin.Name}
}

func NewCoinDocuments(coins []*Coin) []CoinDocument {
	documents := make([]CoinDocument, 0, len(coins))
	for _, coin := range coins {
		documents = append(documents, NewCoinDocument(coin))
	}
	return documents
}

func NewCoinDetail(coin *Coin) CoinDetail {
	return CoinDetail{
		ID:     coin.ID,
		Name:   coin.Name,
		Duties: NewDutyDocuments(coin.Duties),
	}
}

func NewCoinDetails(coins []*Coin) []CoinDetail {
	details := make([]CoinDetail, 0, len(coins))
	for _, coin := range coins {
		details = append(details, NewCoinDetail(coin))
	}
	return details
}

func NewDutyDocument(duty *Duty) DutyDocument {
	return DutyDocument{
		ID:          duty.ID,
		Code:        duty.Code,
		Name:        duty.Name,
		Description: duty.Description,
	}
}

// NewDutyDocuments never returns nil so the "duties" key always encodes as a
// JSON array.
func NewDutyDocuments(duties []*Duty) []DutyDocument {
	documents := make([]DutyDocument, 0, len(duties))
	for _, duty := range duties {
		documents = append(documents, NewDutyDocument(duty))
	}
	return documents
}

func NewDutyDetail(duty *Duty) DutyDetail {
	return DutyDetail{
		ID:          duty.ID,
		Code:        duty.Code,
		Name:        duty.Name,
		Description: duty.Description,
		Coins:       NewCoinDocuments(duty.Coins),
	}
}

func NewDutyRefs(duties []*Duty) []DutyRef {
	refs := make([]DutyRef, 0, len(duties))
	for _, duty := range duties {
		refs = append(refs, DutyRef{ID: duty.ID, Name: duty.Name})
	}
	return refs
}

func NewKSBDocument(ksb *KSB) KSBDocument {
	return KSBDocument{
		ID:          ksb.ID,
		Code:        ksb.Code,
		Name:        ksb.Name,
		Description: ksb.Description,
		Type:        ksb.Kind,
	}
}

func NewKSBDocuments(ksbs []*KSB) []KSBDocument {
	documents := make([]KSBDocument, 0, len(ksbs))
	for _, ksb := range ksbs {
		documents = append(documents, NewKSBDocument(ksb))
	}
	return documents
}

func NewKSBDetail(ksb *KSB) KSBDetail {
	return KSBDetail{
		ID:          ksb.ID,
		Code:        ksb.Code,
		Name:        ksb.Name,
		Description: ksb.Description,
		Type:        ksb.Kind,
		Duties:      NewDutyRefs(ksb.Duties),
	}
}
