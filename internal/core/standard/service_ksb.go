package standard

import (
	"context"
	"log/slog"
	"strings"

	"github.com/forgeline/coinage/internal/platform/apperr"
	"github.com/forgeline/coinage/internal/platform/validate"
	"github.com/forgeline/coinage/pkg/uuidv7"
)

// ListKSBs returns every knowledge, skill, and behaviour, in that order.
func (service *Service) ListKSBs(ctx context.Context) ([]KSBDocument, error) {
	ksbs, err := service.ksbs.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewKSBDocuments(ksbs), nil
}

// GetKSB resolves a code against the three KSB tables in fixed kind order
// and returns the first match with its duties.
func (service *Service) GetKSB(ctx context.Context, rawCode string) (KSBDetail, error) {
	code, err := ParseKSBCode(rawCode)
	if err != nil {
		return KSBDetail{}, err
	}

	ksb, err := service.ksbs.FindByCodeWithDuties(ctx, code)
	if err != nil {
		return KSBDetail{}, err
	}
	return NewKSBDetail(ksb), nil
}

// CreateKSB creates a knowledge, skill, or behaviour. The code's prefix
// letter must agree with the declared type, otherwise a "K" code could end
// up in the skill table and shadow lookups.
func (service *Service) CreateKSB(ctx context.Context, input KSBInput) (KSBDocument, error) {
	if input.Type == nil {
		return KSBDocument{}, apperr.Validation(apperr.CodeValidation, "Missing 'type' key in request body.")
	}
	kind, err := ParseKind(*input.Type)
	if err != nil {
		return KSBDocument{}, err
	}

	if input.Code == nil {
		return KSBDocument{}, apperr.Validation(apperr.CodeValidation, "Missing 'code' key in request body.")
	}
	code, err := ParseKSBCode(*input.Code)
	if err != nil {
		return KSBDocument{}, err
	}
	if !strings.HasPrefix(code, string(kind[0])) {
		return KSBDocument{}, apperr.Validation(apperr.CodeValidation, "KSB Code prefix does not match its type.")
	}

	name, err := validate.Name("KSB", input.Name)
	if err != nil {
		return KSBDocument{}, err
	}

	ksb := &KSB{
		ID:          uuidv7.New(),
		Code:        code,
		Name:        name,
		Description: input.Description,
		Kind:        kind,
	}
	if err := service.ksbs.Create(ctx, ksb); err != nil {
		return KSBDocument{}, err
	}

	service.logger.InfoContext(ctx, "ksb_created",
		slog.String("ksb_code", code),
		slog.String("ksb_type", string(kind)),
	)
	return NewKSBDocument(ksb), nil
}

// DeleteKSB removes a KSB by code from whichever table holds it.
func (service *Service) DeleteKSB(ctx context.Context, rawCode string) error {
	code, err := ParseKSBCode(rawCode)
	if err != nil {
		return err
	}

	if err := service.ksbs.Delete(ctx, code); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "ksb_deleted", slog.String("ksb_code", code))
	return nil
}
