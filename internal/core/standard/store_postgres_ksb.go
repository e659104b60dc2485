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

// ksbTables binds each kind to its table and junction.
var ksbTables = map[Kind]struct {
	table    schema.RefKSBTable
	junction schema.RefJunctionTable
}{
	KindKnowledge: {schema.RefKnowledge, schema.RefDutyKnowledge},
	KindSkill:     {schema.RefSkill, schema.RefDutySkill},
	KindBehaviour: {schema.RefBehaviour, schema.RefDutyBehaviour},
}

// List returns every knowledge, skill, and behaviour row, tagged with its
// kind, in the fixed kind order.
func (repository *ksbRepository) List(ctx context.Context) ([]*KSB, error) {
	var ksbs []*KSB

	for _, kind := range kindOrder {
		tables := ksbTables[kind]
		query := fmt.Sprintf("SELECT k.%s, k.%s, k.%s, k.%s FROM %s k ORDER BY k.%s",
			tables.table.ID, tables.table.Code, tables.table.Name, tables.table.Description,
			tables.table.Table, tables.table.Code)

		rows, err := repository.pool.Query(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to list %s rows: %w", tables.table.Table, err)
		}

		for rows.Next() {
			ksb := &KSB{Kind: kind}
			if err := rows.Scan(&ksb.ID, &ksb.Code, &ksb.Name, &ksb.Description); err != nil {
				rows.Close()
				return nil, fmt.Errorf("postgres: failed to scan %s row: %w", tables.table.Table, err)
			}
			ksbs = append(ksbs, ksb)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	return ksbs, nil
}

/*
FindByCodeWithDuties resolves a code against the knowledge, skill, and
behaviour tables in that fixed order, returning the first match with its
duties aggregated from the kind's own junction.

Codes are not globally unique across the three tables, so a cross-kind
collision resolves to the earliest kind in the order.
*/
func (repository *ksbRepository) FindByCodeWithDuties(ctx context.Context, code string) (*KSB, error) {
	for _, kind := range kindOrder {
		tables := ksbTables[kind]
		query := fmt.Sprintf(`
			SELECT k.%s, k.%s, k.%s, k.%s,
				COALESCE((
					SELECT json_agg(json_build_object('id', d.%s, 'name', d.%s))
					FROM %s d
					JOIN %s dk ON d.%s = dk.%s
					WHERE dk.%s = k.%s
				), '[]') AS duties
			FROM %s k
			WHERE k.%s = $1`,
			tables.table.ID, tables.table.Code, tables.table.Name, tables.table.Description,
			schema.RefDuty.ID, schema.RefDuty.Name,
			schema.RefDuty.Table,
			tables.junction.Table, schema.RefDuty.ID, tables.junction.DutyID,
			tables.junction.OtherID, tables.table.ID,
			tables.table.Table, tables.table.Code,
		)

		ksb := &KSB{Kind: kind}
		var dutiesJSON []byte
		err := repository.pool.QueryRow(ctx, query, code).Scan(
			&ksb.ID, &ksb.Code, &ksb.Name, &ksb.Description, &dutiesJSON,
		)
		if dberr.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to find %s by code: %w", tables.table.Table, err)
		}

		if err := json.Unmarshal(dutiesJSON, &ksb.Duties); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal duties: %w", err)
		}

		return ksb, nil
	}

	return nil, apperr.NotFound("KSB")
}

// Create persists a new KSB into its kind's table.
func (repository *ksbRepository) Create(ctx context.Context, ksb *KSB) error {
	tables, ok := ksbTables[ksb.Kind]
	if !ok {
		return fmt.Errorf("postgres: unknown ksb kind %q", ksb.Kind)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4)",
		tables.table.Table,
		tables.table.ID, tables.table.Code, tables.table.Name, tables.table.Description)

	_, err := repository.pool.Exec(ctx, query, ksb.ID, ksb.Code, ksb.Name, ksb.Description)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			if strings.HasSuffix(dberr.ViolatedConstraint(err), "_name_unique") {
				return apperr.Duplicate("KSB already exists. Please choose another name.")
			}
			return apperr.Duplicate("KSB already exists. Please choose another code.")
		}
		return fmt.Errorf("postgres: failed to create %s: %w", tables.table.Table, err)
	}

	return nil
}

// Delete removes a KSB by code, trying the three tables in kind order. The
// kind's junction rows cascade.
func (repository *ksbRepository) Delete(ctx context.Context, code string) error {
	for _, kind := range kindOrder {
		tables := ksbTables[kind]
		query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", tables.table.Table, tables.table.Code)

		result, err := repository.pool.Exec(ctx, query, code)
		if err != nil {
			return fmt.Errorf("postgres: failed to delete from %s: %w", tables.table.Table, err)
		}
		if result.RowsAffected() > 0 {
			return nil
		}
	}

	return apperr.NotFound("KSB")
}
