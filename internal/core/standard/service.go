package standard

import "log/slog"

// Service implements the domain rules on top of the three repositories.
// All input validation happens here, before any repository call, so a
// rejected request never reaches storage.
type Service struct {
	coins  CoinRepository
	duties DutyRepository
	ksbs   KSBRepository
	logger *slog.Logger
}

func NewService(coins CoinRepository, duties DutyRepository, ksbs KSBRepository, logger *slog.Logger) *Service {
	return &Service{
		coins:  coins,
		duties: duties,
		ksbs:   ksbs,
		logger: logger,
	}
}
