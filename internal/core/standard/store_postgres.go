package standard

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/dberr"
)

// # PostgreSQL Repositories

// coinRepository implements the [CoinRepository] interface using pgx.
type coinRepository struct {
	pool *pgxpool.Pool
}

// NewCoinRepository constructs a PostgreSQL backed coin store.
func NewCoinRepository(pool *pgxpool.Pool) CoinRepository {
	return &coinRepository{pool: pool}
}

// dutyRepository implements the [DutyRepository] interface using pgx.
type dutyRepository struct {
	pool *pgxpool.Pool
}

// NewDutyRepository constructs a PostgreSQL backed duty store.
func NewDutyRepository(pool *pgxpool.Pool) DutyRepository {
	return &dutyRepository{pool: pool}
}

// ksbRepository implements the [KSBRepository] interface using pgx.
type ksbRepository struct {
	pool *pgxpool.Pool
}

// NewKSBRepository constructs a PostgreSQL backed KSB store.
func NewKSBRepository(pool *pgxpool.Pool) KSBRepository {
	return &ksbRepository{pool: pool}
}

/*
replaceJunction synchronizes a many-to-many association table.

It implements a clear-and-insert strategy inside the caller's transaction:
all rows for the owning ID are deleted, then the new set is queued through a
single pgx.Batch to bound the operation to one network round-trip. An empty
value set therefore clears the association entirely.

Parameters:
  - ctx: context.Context
  - transaction: pgx.Tx (the caller's transaction boundary)
  - table: string (fully-qualified junction table, e.g. "core.dutycoin")
  - ownerCol: string (the column holding the owning entity's ID)
  - valueCol: string (the column holding the associated entity's ID)
  - ownerID: string (UUID of the owning entity)
  - valueIDs: []string (UUIDs to associate)

Returns:
  - error: execution failures from either phase
*/
func replaceJunction(ctx context.Context, transaction pgx.Tx, table, ownerCol, valueCol, ownerID string, valueIDs []string) error {

	// Clear phase
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, ownerCol)
	if _, err := transaction.Exec(ctx, delQuery, ownerID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	if len(valueIDs) == 0 {
		return nil
	}

	// Insert phase via batch pipeline
	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, ownerCol, valueCol)
	batch := &pgx.Batch{}
	for _, valueID := range valueIDs {
		batch.Queue(insQuery, ownerID, valueID)
	}

	response := transaction.SendBatch(ctx, batch)
	if err := response.Close(); err != nil {
		// The service resolves references before writing, so a foreign-key
		// violation here means a row vanished in between.
		if dberr.IsForeignKeyViolation(err) {
			return apperr.UnknownReference("One or more duty references do not exist.")
		}
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", table, err)
	}

	return nil
}
