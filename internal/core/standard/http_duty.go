package standard

import (
	"net/http"

	requestutil "github.com/forgeline/coinage/internal/platform/request"
	"github.com/forgeline/coinage/internal/platform/respond"
)

func (handler *Handler) listDuties(writer http.ResponseWriter, request *http.Request) {
	duties, err := handler.service.ListDuties(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, duties)
}

func (handler *Handler) getDuty(writer http.ResponseWriter, request *http.Request) {
	duty, err := handler.service.GetDuty(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, duty)
}

func (handler *Handler) createDuty(writer http.ResponseWriter, request *http.Request) {
	var input DutyInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	duty, err := handler.service.CreateDuty(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, duty)
}

func (handler *Handler) deleteDuty(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteDuty(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Duty has been successfully deleted!")
}
