package tracker

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/forgeline/coinage/internal/platform/apperr"
	requestutil "github.com/forgeline/coinage/internal/platform/request"
	"github.com/forgeline/coinage/internal/platform/respond"
)

// Handler exposes the tracker store over HTTP.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listDuties)
	router.Post("/", handler.createDuty)
	router.Post("/reset", handler.resetDuties)
	router.Get("/{number}", handler.getDuty)
	router.Patch("/{number}", handler.editDuty)
	router.Delete("/{number}", handler.deleteDuty)
	router.Post("/{number}/complete", handler.completeDuty)
}

// DutyInput is the request body for tracker creates and edits. Number is
// only read on create; edits take it from the URL.
type DutyInput struct {
	Number      *int     `json:"number"`
	Description string   `json:"description"`
	KSBs        []string `json:"ksbs"`
}

func (handler *Handler) listDuties(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.store.List())
}

func (handler *Handler) createDuty(writer http.ResponseWriter, request *http.Request) {
	var input DutyInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Number == nil {
		respond.Error(writer, request, apperr.Validation(apperr.CodeValidation, "Missing 'number' key in request body."))
		return
	}

	duty, err := handler.store.Add(*input.Number, input.Description, input.KSBs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, duty)
}

func (handler *Handler) getDuty(writer http.ResponseWriter, request *http.Request) {
	number, err := dutyNumber(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	duty, err := handler.store.Get(number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, duty)
}

func (handler *Handler) editDuty(writer http.ResponseWriter, request *http.Request) {
	number, err := dutyNumber(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input DutyInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	duty, err := handler.store.Edit(number, input.Description, input.KSBs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, duty)
}

func (handler *Handler) deleteDuty(writer http.ResponseWriter, request *http.Request) {
	number, err := dutyNumber(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.store.Delete(number)
	respond.Message(writer, "Duty has been successfully deleted!")
}

func (handler *Handler) completeDuty(writer http.ResponseWriter, request *http.Request) {
	number, err := dutyNumber(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	duty, err := handler.store.MarkComplete(number)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, duty)
}

func (handler *Handler) resetDuties(writer http.ResponseWriter, request *http.Request) {
	handler.store.Reset()
	respond.Message(writer, "All duties have been reset.")
}

func dutyNumber(request *http.Request) (int, error) {
	number, err := strconv.Atoi(requestutil.Param(request, "number"))
	if err != nil {
		return 0, apperr.Validation(apperr.CodeValidation, "Invalid Duty number. Duty number must be an integer.")
	}
	return number, nil
}
