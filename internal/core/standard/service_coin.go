package standard

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/validate"
	"github.com/forgeline/coinage/pkg/uuidv7"
)

// ListCoins returns every coin in the v1 shape.
func (service *Service) ListCoins(ctx context.Context) ([]CoinDocument, error) {
	coins, err := service.coins.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewCoinDocuments(coins), nil
}

// ListCoinsWithDuties returns every coin in the v2 shape.
func (service *Service) ListCoinsWithDuties(ctx context.Context) ([]CoinDetail, error) {
	coins, err := service.coins.ListWithDuties(ctx)
	if err != nil {
		return nil, err
	}
	return NewCoinDetails(coins), nil
}

// GetCoin returns a single coin in the v1 shape.
func (service *Service) GetCoin(ctx context.Context, rawID string) (CoinDocument, error) {
	id, err := validate.SurrogateID("Coin", rawID)
	if err != nil {
		return CoinDocument{}, err
	}

	coin, err := service.coins.FindByID(ctx, id)
	if err != nil {
		return CoinDocument{}, err
	}
	return NewCoinDocument(coin), nil
}

// GetCoinWithDuties returns a single coin in the v2 shape.
func (service *Service) GetCoinWithDuties(ctx context.Context, rawID string) (CoinDetail, error) {
	id, err := validate.SurrogateID("Coin", rawID)
	if err != nil {
		return CoinDetail{}, err
	}

	coin, err := service.coins.FindByIDWithDuties(ctx, id)
	if err != nil {
		return CoinDetail{}, err
	}
	return NewCoinDetail(coin), nil
}

// CreateCoinV1 creates a coin from the v1 payload, which references duties
// by surrogate ID.
func (service *Service) CreateCoinV1(ctx context.Context, input CoinInput) (CoinDocument, error) {
	name, err := validate.Name("Coin", input.Name)
	if err != nil {
		return CoinDocument{}, err
	}

	dutyIDs, _, err := service.parseDutyIDs(ctx, input.DutyIDs)
	if err != nil {
		return CoinDocument{}, err
	}

	coin := &Coin{ID: uuidv7.New(), Name: name, DutyIDs: dutyIDs}
	if err := service.coins.Create(ctx, coin); err != nil {
		return CoinDocument{}, err
	}

	service.logger.InfoContext(ctx, "coin_created", slog.String("coin_id", coin.ID))
	return NewCoinDocument(coin), nil
}

// CreateCoinV2 creates a coin from the v2 payload, which references duties
// by code.
func (service *Service) CreateCoinV2(ctx context.Context, input CoinInput) (CoinDetail, error) {
	name, err := validate.Name("Coin", input.Name)
	if err != nil {
		return CoinDetail{}, err
	}

	dutyIDs, _, err := service.resolveDutyCodes(ctx, input.DutyCodes)
	if err != nil {
		return CoinDetail{}, err
	}

	coin := &Coin{ID: uuidv7.New(), Name: name, DutyIDs: dutyIDs}
	if err := service.coins.Create(ctx, coin); err != nil {
		return CoinDetail{}, err
	}

	service.logger.InfoContext(ctx, "coin_created", slog.String("coin_id", coin.ID))

	created, err := service.coins.FindByIDWithDuties(ctx, coin.ID)
	if err != nil {
		return CoinDetail{}, err
	}
	return NewCoinDetail(created), nil
}

// UpdateCoinV1 renames a coin and optionally replaces its duty set by ID.
// v1 requires the name key on every update.
func (service *Service) UpdateCoinV1(ctx context.Context, rawID string, input CoinInput) (CoinDocument, error) {
	id, err := validate.SurrogateID("Coin", rawID)
	if err != nil {
		return CoinDocument{}, err
	}

	name, err := validate.Name("Coin", input.Name)
	if err != nil {
		return CoinDocument{}, err
	}

	dutyIDs, _, err := service.parseDutyIDs(ctx, input.DutyIDs)
	if err != nil {
		return CoinDocument{}, err
	}

	if err := service.coins.Update(ctx, &Coin{ID: id, Name: name, DutyIDs: dutyIDs}); err != nil {
		return CoinDocument{}, err
	}

	return CoinDocument{ID: id, Name: name}, nil
}

/*
UpdateCoinV2 applies a partial update from the v2 payload.

Both fields are optional, but at least one must be present; a body carrying
neither is rejected before any lookup. A present name must still be
non-empty, and a present duty_codes list fully replaces the association set.
*/
func (service *Service) UpdateCoinV2(ctx context.Context, rawID string, input CoinInput) (CoinDetail, error) {
	id, err := validate.SurrogateID("Coin", rawID)
	if err != nil {
		return CoinDetail{}, err
	}

	if input.Name == nil && input.DutyCodes == nil {
		return CoinDetail{}, apperr.Validation(apperr.CodeValidation, "Request body is empty.")
	}

	var name string
	if input.Name != nil {
		name, err = validate.Name("Coin", input.Name)
		if err != nil {
			return CoinDetail{}, err
		}
	}

	dutyIDs, _, err := service.resolveDutyCodes(ctx, input.DutyCodes)
	if err != nil {
		return CoinDetail{}, err
	}

	if err := service.coins.Update(ctx, &Coin{ID: id, Name: name, DutyIDs: dutyIDs}); err != nil {
		return CoinDetail{}, err
	}

	updated, err := service.coins.FindByIDWithDuties(ctx, id)
	if err != nil {
		return CoinDetail{}, err
	}
	return NewCoinDetail(updated), nil
}

// DeleteCoin removes a coin and, via cascade, its junction rows.
func (service *Service) DeleteCoin(ctx context.Context, rawID string) error {
	id, err := validate.SurrogateID("Coin", rawID)
	if err != nil {
		return err
	}

	if err := service.coins.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "coin_deleted", slog.String("coin_id", id))
	return nil
}

// parseDutyIDs validates the v1 duty_ids field: when present it must be a
// list of UUID strings, and every ID must refer to an existing duty.
// Duplicate IDs collapse so the junction insert never trips its own
// uniqueness constraint.
func (service *Service) parseDutyIDs(ctx context.Context, raw json.RawMessage) ([]string, bool, error) {
	values, present, err := validate.StringList("duty_ids", raw)
	if err != nil || !present {
		return nil, present, err
	}

	ids := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, value := range values {
		id, err := validate.SurrogateID("Duty", value)
		if err != nil {
			return nil, true, err
		}
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	resolved, err := service.duties.ResolveIDs(ctx, ids)
	if err != nil {
		return nil, true, err
	}
	for _, id := range ids {
		if !resolved[id] {
			return nil, true, apperr.UnknownReference(fmt.Sprintf("Duty with id '%s' does not exist.", id))
		}
	}
	return ids, true, nil
}

// resolveDutyCodes validates the v2 duty_codes field and resolves each code
// to a duty ID. Codes are normalized before lookup, so lowercase input
// matches the stored uppercase spelling. Every code must resolve; an
// unknown code fails the whole request, reported with the client's own
// spelling of the code.
func (service *Service) resolveDutyCodes(ctx context.Context, raw json.RawMessage) ([]string, bool, error) {
	values, present, err := validate.StringList("duty_codes", raw)
	if err != nil || !present {
		return nil, present, err
	}

	codes := make([]string, 0, len(values))
	rawByCode := make(map[string]string, len(values))
	for _, value := range values {
		code := NormalizeCode(value)
		if _, ok := rawByCode[code]; !ok {
			rawByCode[code] = value
			codes = append(codes, code)
		}
	}

	resolved, err := service.duties.ResolveCodes(ctx, codes)
	if err != nil {
		return nil, true, err
	}

	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		id, ok := resolved[code]
		if !ok {
			return nil, true, apperr.UnknownReference(fmt.Sprintf("Duty with code '%s' does not exist.", rawByCode[code]))
		}
		ids = append(ids, id)
	}
	return ids, true, nil
}
