package standard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/database/schema"
	"github.com/forgeline/coinage/internal/platform/dberr"
)

// dutiesSubquery aggregates a coin's duties into a JSON array so list and
// detail reads stay single round-trip. COALESCE guarantees '[]' for coins
// with no associations.
func dutiesSubquery() string {
	return fmt.Sprintf(`
		COALESCE((
			SELECT json_agg(json_build_object('id', d.%s, 'code', d.%s, 'name', d.%s, 'description', d.%s))
			FROM %s d
			JOIN %s dc ON d.%s = dc.%s
			WHERE dc.%s = c.%s
		), '[]')`,
		schema.RefDuty.ID, schema.RefDuty.Code, schema.RefDuty.Name, schema.RefDuty.Description,
		schema.RefDuty.Table,
		schema.RefDutyCoin.Table, schema.RefDuty.ID, schema.RefDutyCoin.DutyID,
		schema.RefDutyCoin.OtherID, schema.RefCoin.ID,
	)
}

// List returns all coins without association hydration.
func (repository *coinRepository) List(ctx context.Context) ([]*Coin, error) {
	query := fmt.Sprintf("SELECT c.%s, c.%s FROM %s c ORDER BY c.%s",
		schema.RefCoin.ID, schema.RefCoin.Name, schema.RefCoin.Table, schema.RefCoin.ID)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list coins: %w", err)
	}
	defer rows.Close()

	var coins []*Coin
	for rows.Next() {
		coin := &Coin{}
		if err := rows.Scan(&coin.ID, &coin.Name); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan coin: %w", err)
		}
		coins = append(coins, coin)
	}

	return coins, rows.Err()
}

// ListWithDuties returns all coins with their duties hydrated from the
// junction in the same query.
func (repository *coinRepository) ListWithDuties(ctx context.Context) ([]*Coin, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, %s AS duties
		FROM %s c
		ORDER BY c.%s`,
		schema.RefCoin.ID, schema.RefCoin.Name, dutiesSubquery(),
		schema.RefCoin.Table, schema.RefCoin.ID,
	)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list coins with duties: %w", err)
	}
	defer rows.Close()

	var coins []*Coin
	for rows.Next() {
		coin := &Coin{}
		var dutiesJSON []byte
		if err := rows.Scan(&coin.ID, &coin.Name, &dutiesJSON); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan coin: %w", err)
		}
		if err := json.Unmarshal(dutiesJSON, &coin.Duties); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal duties: %w", err)
		}
		coins = append(coins, coin)
	}

	return coins, rows.Err()
}

// FindByID retrieves a single coin by primary key.
func (repository *coinRepository) FindByID(ctx context.Context, id string) (*Coin, error) {
	query := fmt.Sprintf("SELECT c.%s, c.%s FROM %s c WHERE c.%s = $1",
		schema.RefCoin.ID, schema.RefCoin.Name, schema.RefCoin.Table, schema.RefCoin.ID)

	coin := &Coin{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(&coin.ID, &coin.Name)
	if err != nil {
		return nil, dberr.Wrap(err, "Coin", "find coin by id")
	}

	return coin, nil
}

// FindByIDWithDuties retrieves a coin and its duties in one round-trip.
func (repository *coinRepository) FindByIDWithDuties(ctx context.Context, id string) (*Coin, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, %s AS duties
		FROM %s c
		WHERE c.%s = $1`,
		schema.RefCoin.ID, schema.RefCoin.Name, dutiesSubquery(),
		schema.RefCoin.Table, schema.RefCoin.ID,
	)

	coin := &Coin{}
	var dutiesJSON []byte
	err := repository.pool.QueryRow(ctx, query, id).Scan(&coin.ID, &coin.Name, &dutiesJSON)
	if err != nil {
		return nil, dberr.Wrap(err, "Coin", "find coin with duties by id")
	}

	if err := json.Unmarshal(dutiesJSON, &coin.Duties); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal duties: %w", err)
	}

	return coin, nil
}

/*
Create persists a new coin and its junction rows in one transaction.

A unique violation on the name column surfaces as the domain's duplicate
error rather than a storage failure, because the original API treats a
duplicate name as a client mistake.
*/
func (repository *coinRepository) Create(ctx context.Context, coin *Coin) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(ctx)

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.RefCoin.Table, schema.RefCoin.ID, schema.RefCoin.Name)

	if _, err := transaction.Exec(ctx, query, coin.ID, coin.Name); err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Duplicate("Coin already exists. Please choose another name.")
		}
		return fmt.Errorf("postgres: failed to create coin: %w", err)
	}

	if coin.DutyIDs != nil {
		err := replaceJunction(ctx, transaction,
			schema.RefDutyCoin.Table, schema.RefDutyCoin.OtherID, schema.RefDutyCoin.DutyID,
			coin.ID, coin.DutyIDs)
		if err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update applies a partial update to a coin.

The name is only written when non-empty, and the junction is only rewritten
when DutyIDs is non-nil, so a PATCH touching one aspect leaves the other
untouched. Both writes share one transaction.
*/
func (repository *coinRepository) Update(ctx context.Context, coin *Coin) error {
	transaction, err := repository.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(ctx)

	if coin.Name != "" {
		query := fmt.Sprintf("UPDATE %s SET %s = $1 WHERE %s = $2",
			schema.RefCoin.Table, schema.RefCoin.Name, schema.RefCoin.ID)

		result, err := transaction.Exec(ctx, query, coin.Name, coin.ID)
		if err != nil {
			if dberr.IsUniqueViolation(err) {
				return apperr.Duplicate("Coin already exists. Please choose another name.")
			}
			return fmt.Errorf("postgres: failed to update coin: %w", err)
		}
		if result.RowsAffected() == 0 {
			return apperr.NotFound("Coin")
		}
	} else {
		// Duty-only updates still need the 404 check the UPDATE would
		// otherwise have provided.
		query := fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1", schema.RefCoin.Table, schema.RefCoin.ID)
		var one int
		if err := transaction.QueryRow(ctx, query, coin.ID).Scan(&one); err != nil {
			if dberr.IsNotFound(err) {
				return apperr.NotFound("Coin")
			}
			return fmt.Errorf("postgres: failed to check coin existence: %w", err)
		}
	}

	if coin.DutyIDs != nil {
		err := replaceJunction(ctx, transaction,
			schema.RefDutyCoin.Table, schema.RefDutyCoin.OtherID, schema.RefDutyCoin.DutyID,
			coin.ID, coin.DutyIDs)
		if err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

// Delete removes a coin. Junction rows go with it via ON DELETE CASCADE.
func (repository *coinRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.RefCoin.Table, schema.RefCoin.ID)

	result, err := repository.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete coin: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Coin")
	}

	return nil
}
