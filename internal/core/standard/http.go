package standard

import (
	"github.com/go-chi/chi/v5"
)

// Handler exposes the standard domain over HTTP. Route registration is
// split per surface because the coin endpoints ship in three generations
// (legacy, v1, v2) that mount at different path roots.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterLegacyRoutes mounts the unversioned coin endpoints kept for the
// oldest clients: the bare list and the delete.
func (handler *Handler) RegisterLegacyRoutes(router chi.Router) {
	router.Get("/coins", handler.listCoins)
	router.Delete("/coins/{id}", handler.deleteCoin)
}

// RegisterV1CoinRoutes mounts the v1 coin CRUD, which references duties by
// surrogate ID and returns flat coin documents.
func (handler *Handler) RegisterV1CoinRoutes(router chi.Router) {
	router.Get("/", handler.listCoins)
	router.Post("/", handler.createCoinV1)
	router.Get("/{id}", handler.getCoin)
	router.Patch("/{id}", handler.updateCoinV1)
	router.Delete("/{id}", handler.deleteCoin)
}

// RegisterV2CoinRoutes mounts the v2 coin CRUD, which references duties by
// code and nests full duty documents in every response.
func (handler *Handler) RegisterV2CoinRoutes(router chi.Router) {
	router.Get("/", handler.listCoinsWithDuties)
	router.Post("/", handler.createCoinV2)
	router.Get("/{id}", handler.getCoinWithDuties)
	router.Patch("/{id}", handler.updateCoinV2)
	router.Delete("/{id}", handler.deleteCoin)
}

// RegisterDutyRoutes mounts the duty endpoints.
func (handler *Handler) RegisterDutyRoutes(router chi.Router) {
	router.Get("/", handler.listDuties)
	router.Post("/", handler.createDuty)
	router.Get("/{code}", handler.getDuty)
	router.Delete("/{code}", handler.deleteDuty)
}

// RegisterKSBRoutes mounts the KSB endpoints.
func (handler *Handler) RegisterKSBRoutes(router chi.Router) {
	router.Get("/", handler.listKSBs)
	router.Post("/", handler.createKSB)
	router.Get("/{code}", handler.getKSB)
	router.Delete("/{code}", handler.deleteKSB)
}
