package standard

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/database/schema"
	"github.com/forgeline/coinage/internal/platform/dberr"
)

// List returns all duties ordered by code.
func (repository *dutyRepository) List(ctx context.Context) ([]*Duty, error) {
	query := fmt.Sprintf("SELECT d.%s, d.%s, d.%s, d.%s FROM %s d ORDER BY d.%s",
		schema.RefDuty.ID, schema.RefDuty.Code, schema.RefDuty.Name, schema.RefDuty.Description,
		schema.RefDuty.Table, schema.RefDuty.Code)

	rows, err := repository.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list duties: %w", err)
	}
	defer rows.Close()

	var duties []*Duty
	for rows.Next() {
		duty := &Duty{}
		if err := rows.Scan(&duty.ID, &duty.Code, &duty.Name, &duty.Description); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan duty: %w", err)
		}
		duties = append(duties, duty)
	}

	return duties, rows.Err()
}

// FindByCode retrieves a single duty by its stored code.
func (repository *dutyRepository) FindByCode(ctx context.Context, code string) (*Duty, error) {
	query := fmt.Sprintf("SELECT d.%s, d.%s, d.%s, d.%s FROM %s d WHERE d.%s = $1",
		schema.RefDuty.ID, schema.RefDuty.Code, schema.RefDuty.Name, schema.RefDuty.Description,
		schema.RefDuty.Table, schema.RefDuty.Code)

	duty := &Duty{}
	err := repository.pool.QueryRow(ctx, query, code).Scan(&duty.ID, &duty.Code, &duty.Name, &duty.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "Duty", "find duty by code")
	}

	return duty, nil
}

// FindByCodeWithCoins retrieves a duty with its associated coins aggregated
// into the same row.
func (repository *dutyRepository) FindByCodeWithCoins(ctx context.Context, code string) (*Duty, error) {
	query := fmt.Sprintf(`
		SELECT d.%s, d.%s, d.%s, d.%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', c.%s, 'name', c.%s))
				FROM %s c
				JOIN %s dc ON c.%s = dc.%s
				WHERE dc.%s = d.%s
			), '[]') AS coins
		FROM %s d
		WHERE d.%s = $1`,
		schema.RefDuty.ID, schema.RefDuty.Code, schema.RefDuty.Name, schema.RefDuty.Description,
		schema.RefCoin.ID, schema.RefCoin.Name,
		schema.RefCoin.Table,
		schema.RefDutyCoin.Table, schema.RefCoin.ID, schema.RefDutyCoin.OtherID,
		schema.RefDutyCoin.DutyID, schema.RefDuty.ID,
		schema.RefDuty.Table, schema.RefDuty.Code,
	)

	duty := &Duty{}
	var coinsJSON []byte
	err := repository.pool.QueryRow(ctx, query, code).Scan(
		&duty.ID, &duty.Code, &duty.Name, &duty.Description, &coinsJSON,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "Duty", "find duty with coins by code")
	}

	if err := json.Unmarshal(coinsJSON, &duty.Coins); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal coins: %w", err)
	}

	return duty, nil
}

// ResolveCodes maps stored duty codes to their IDs in a single query.
func (repository *dutyRepository) ResolveCodes(ctx context.Context, codes []string) (map[string]string, error) {
	resolved := make(map[string]string, len(codes))
	if len(codes) == 0 {
		return resolved, nil
	}

	query := fmt.Sprintf("SELECT d.%s, d.%s FROM %s d WHERE d.%s = ANY($1)",
		schema.RefDuty.Code, schema.RefDuty.ID, schema.RefDuty.Table, schema.RefDuty.Code)

	rows, err := repository.pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to resolve duty codes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code, id string
		if err := rows.Scan(&code, &id); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan duty code: %w", err)
		}
		resolved[code] = id
	}

	return resolved, rows.Err()
}

// ResolveIDs reports which of the given duty IDs exist, in a single query.
func (repository *dutyRepository) ResolveIDs(ctx context.Context, ids []string) (map[string]bool, error) {
	resolved := make(map[string]bool, len(ids))
	if len(ids) == 0 {
		return resolved, nil
	}

	query := fmt.Sprintf("SELECT d.%s FROM %s d WHERE d.%s = ANY($1)",
		schema.RefDuty.ID, schema.RefDuty.Table, schema.RefDuty.ID)

	rows, err := repository.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to resolve duty ids: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan duty id: %w", err)
		}
		resolved[id] = true
	}

	return resolved, rows.Err()
}

// Create persists a new duty. Code and name each carry their own unique
// constraint, so the violated constraint picks the duplicate message.
func (repository *dutyRepository) Create(ctx context.Context, duty *Duty) error {
	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		schema.RefDuty.Table,
		schema.RefDuty.ID, schema.RefDuty.Code, schema.RefDuty.Name, schema.RefDuty.Description)

	_, err := repository.pool.Exec(ctx, query, duty.ID, duty.Code, duty.Name, duty.Description)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			if strings.HasSuffix(dberr.ViolatedConstraint(err), "_name_unique") {
				return apperr.Duplicate("Duty already exists. Please choose another name.")
			}
			return apperr.Duplicate("Duty already exists. Please choose another code.")
		}
		return fmt.Errorf("postgres: failed to create duty: %w", err)
	}

	return nil
}

// Delete removes a duty by code. All four junctions cascade.
func (repository *dutyRepository) Delete(ctx context.Context, code string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.RefDuty.Table, schema.RefDuty.Code)

	result, err := repository.pool.Exec(ctx, query, code)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete duty: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("Duty")
	}

	return nil
}
