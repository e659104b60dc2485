package standard

import (
	"net/http"

	requestutil "github.com/forgeline/coinage/internal/platform/request"
	"github.com/forgeline/coinage/internal/platform/respond"
)

func (handler *Handler) listCoins(writer http.ResponseWriter, request *http.Request) {
	coins, err := handler.service.ListCoins(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coins)
}

func (handler *Handler) listCoinsWithDuties(writer http.ResponseWriter, request *http.Request) {
	coins, err := handler.service.ListCoinsWithDuties(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coins)
}

func (handler *Handler) getCoin(writer http.ResponseWriter, request *http.Request) {
	coin, err := handler.service.GetCoin(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coin)
}

func (handler *Handler) getCoinWithDuties(writer http.ResponseWriter, request *http.Request) {
	coin, err := handler.service.GetCoinWithDuties(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coin)
}

func (handler *Handler) createCoinV1(writer http.ResponseWriter, request *http.Request) {
	var input CoinInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coin, err := handler.service.CreateCoinV1(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, coin)
}

func (handler *Handler) createCoinV2(writer http.ResponseWriter, request *http.Request) {
	var input CoinInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coin, err := handler.service.CreateCoinV2(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, coin)
}

func (handler *Handler) updateCoinV1(writer http.ResponseWriter, request *http.Request) {
	var input CoinInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coin, err := handler.service.UpdateCoinV1(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coin)
}

func (handler *Handler) updateCoinV2(writer http.ResponseWriter, request *http.Request) {
	var input CoinInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	coin, err := handler.service.UpdateCoinV2(request.Context(), requestutil.Param(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, coin)
}

func (handler *Handler) deleteCoin(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteCoin(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Message(writer, "Coin has been successfully deleted!")
}
