package standard

import (
	"net/http"

	requestutil "github.com/forgeline/coinage/internal/platform/request"
	"github.com/forgeline/coinage/internal/platform/respond"
)

func (handler *Handler) listKSBs(writer http.ResponseWriter, request *http.Request) {
	ksbs, err := handler.service.ListKSBs(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ksbs)
}

func (handler *Handler) getKSB(writer http.ResponseWriter, request *http.Request) {
	ksb, err := handler.service.GetKSB(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, ksb)
}

func (handler *Handler) createKSB(writer http.ResponseWriter, request *http.Request) {
	var input KSBInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	ksb, err := handler.service.CreateKSB(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, ksb)
}

func (handler *Handler) deleteKSB(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteKSB(request.Context(), requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "KSB has been successfully deleted!")
}
