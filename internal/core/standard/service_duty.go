package standard

import (
	"context"
	"log/slog"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/validate"
	"github.com/forgeline/coinage/pkg/uuidv7"
)

// ListDuties returns every duty.
func (service *Service) ListDuties(ctx context.Context) ([]DutyDocument, error) {
	duties, err := service.duties.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewDutyDocuments(duties), nil
}

// GetDuty resolves a duty by code, returning it with its associated coins.
func (service *Service) GetDuty(ctx context.Context, rawCode string) (DutyDetail, error) {
	code, err := ParseDutyCode(rawCode)
	if err != nil {
		return DutyDetail{}, err
	}

	duty, err := service.duties.FindByCodeWithCoins(ctx, code)
	if err != nil {
		return DutyDetail{}, err
	}
	return NewDutyDetail(duty), nil
}

// CreateDuty creates a duty from its code, name, and optional description.
func (service *Service) CreateDuty(ctx context.Context, input DutyInput) (DutyDocument, error) {
	if input.Code == nil {
		return DutyDocument{}, apperr.Validation(apperr.CodeValidation, "Missing 'code' key in request body.")
	}
	code, err := ParseDutyCode(*input.Code)
	if err != nil {
		return DutyDocument{}, err
	}

	name, err := validate.Name("Duty", input.Name)
	if err != nil {
		return DutyDocument{}, err
	}

	duty := &Duty{
		ID:          uuidv7.New(),
		Code:        code,
		Name:        name,
		Description: input.Description,
	}
	if err := service.duties.Create(ctx, duty); err != nil {
		return DutyDocument{}, err
	}

	service.logger.InfoContext(ctx, "duty_created", slog.String("duty_code", code))
	return NewDutyDocument(duty), nil
}

// DeleteDuty removes a duty by code. Rows in all four junction tables
// cascade with it.
func (service *Service) DeleteDuty(ctx context.Context, rawCode string) error {
	code, err := ParseDutyCode(rawCode)
	if err != nil {
		return err
	}

	if err := service.duties.Delete(ctx, code); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "duty_deleted", slog.String("duty_code", code))
	return nil
}
