package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/li-cell/election-backend-go/internal/domain/party"
	seatdomain "github.com/li-cell/election-backend-go/internal/domain/seat"
	"github.com/li-cell/election-backend-go/internal/handler/http/response"
	seatservice "github.com/li-cell/election-backend-go/internal/service/seat"
)

type SeatHandler interface {
	EnterResult(w http.ResponseWriter, r *http.Request)
	Declare(w http.ResponseWriter, r *http.Request)
	Revoke(w http.ResponseWriter, r *http.Request)
	Suspend(w http.ResponseWriter, r *http.Request)
	Unsuspend(w http.ResponseWriter, r *http.Request)
	DeleteResult(w http.ResponseWriter, r *http.Request)
	Initialize(w http.ResponseWriter, r *http.Request)
	DeleteAll(w http.ResponseWriter, r *http.Request)
	RegisterParty(w http.ResponseWriter, r *http.Request)
	ListParties(w http.ResponseWriter, r *http.Request)
}

type seatHandlerImpl struct {
	seatService seatservice.SeatService
}

func NewSeatHandler(seatService seatservice.SeatService) SeatHandler {
	return &seatHandlerImpl{
		seatService: seatService,
	}
}

func (h *seatHandlerImpl) EnterResult(w http.ResponseWriter, r *http.Request) {
	var req seatdomain.EnterResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.seatService.EnterResult(r.Context(), chi.URLParam(r, "seatNo"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Result saved", updated)
}

func (h *seatHandlerImpl) Declare(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePartyRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.seatService.DeclareWinner(r.Context(), chi.URLParam(r, "seatNo"), req.Party)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Winner declared", updated)
}

func (h *seatHandlerImpl) Revoke(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePartyRequest(w, r)
	if !ok {
		return
	}

	updated, err := h.seatService.RevokeWinner(r.Context(), chi.URLParam(r, "seatNo"), req.Party)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Winner revoked", updated)
}

func (h *seatHandlerImpl) Suspend(w http.ResponseWriter, r *http.Request) {
	updated, err := h.seatService.Suspend(r.Context(), chi.URLParam(r, "seatNo"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Seat suspended", updated)
}

func (h *seatHandlerImpl) Unsuspend(w http.ResponseWriter, r *http.Request) {
	updated, err := h.seatService.Unsuspend(r.Context(), chi.URLParam(r, "seatNo"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Seat unsuspended", updated)
}

func (h *seatHandlerImpl) DeleteResult(w http.ResponseWriter, r *http.Request) {
	updated, err := h.seatService.DeleteResult(r.Context(), chi.URLParam(r, "seatNo"), chi.URLParam(r, "party"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Result deleted", updated)
}

func (h *seatHandlerImpl) Initialize(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfirmRequest(w, r)
	if !ok {
		return
	}

	count, err := h.seatService.InitializeDatabase(r.Context(), req.Confirmation)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Database initialized", map[string]int{"seats": count})
}

func (h *seatHandlerImpl) DeleteAll(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeConfirmRequest(w, r)
	if !ok {
		return
	}

	if err := h.seatService.DeleteAll(r.Context(), req.Confirmation); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "All results deleted", nil)
}

func (h *seatHandlerImpl) RegisterParty(w http.ResponseWriter, r *http.Request) {
	var req party.RegisterPartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.seatService.RegisterParty(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Party registered", nil)
}

func (h *seatHandlerImpl) ListParties(w http.ResponseWriter, r *http.Request) {
	names, err := h.seatService.ListParties(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, names)
}

func decodePartyRequest(w http.ResponseWriter, r *http.Request) (seatdomain.PartyRequest, bool) {
	var req seatdomain.PartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}

func decodeConfirmRequest(w http.ResponseWriter, r *http.Request) (seatdomain.ConfirmRequest, bool) {
	var req seatdomain.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return req, false
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}
	return req, true
}
