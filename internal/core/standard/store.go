package standard

import "context"

// CoinRepository is the persistence boundary for coins and the duty-coin
// junction. Write methods treat a nil DutyIDs slice as "leave associations
// alone" and a non-nil slice as a full replacement of the junction rows.
type CoinRepository interface {
	List(ctx context.Context) ([]*Coin, error)
	ListWithDuties(ctx context.Context) ([]*Coin, error)
	FindByID(ctx context.Context, id string) (*Coin, error)
	FindByIDWithDuties(ctx context.Context, id string) (*Coin, error)
	Create(ctx context.Context, coin *Coin) error
	Update(ctx context.Context, coin *Coin) error
	Delete(ctx context.Context, id string) error
}

// DutyRepository is the persistence boundary for duties.
type DutyRepository interface {
	List(ctx context.Context) ([]*Duty, error)
	FindByCode(ctx context.Context, code string) (*Duty, error)
	FindByCodeWithCoins(ctx context.Context, code string) (*Duty, error)

	// ResolveCodes maps stored codes to duty IDs. Codes absent from the
	// database are simply missing from the result map; the caller decides
	// how to report them.
	ResolveCodes(ctx context.Context, codes []string) (map[string]string, error)

	// ResolveIDs reports which of the given duty IDs exist. IDs absent from
	// the database are missing from the result map, as with ResolveCodes.
	ResolveIDs(ctx context.Context, ids []string) (map[string]bool, error)

	Create(ctx context.Context, duty *Duty) error
	Delete(ctx context.Context, code string) error
}

// KSBRepository is the persistence boundary for the three KSB tables.
type KSBRepository interface {
	List(ctx context.Context) ([]*KSB, error)

	// FindByCodeWithDuties tries the knowledge, skill, and behaviour tables
	// in that fixed order and returns the first match.
	FindByCodeWithDuties(ctx context.Context, code string) (*KSB, error)

	Create(ctx context.Context, ksb *KSB) error
	Delete(ctx context.Context, code string) error
}
