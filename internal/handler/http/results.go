package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/li-cell/election-backend-go/internal/handler/http/response"
	"github.com/li-cell/election-backend-go/internal/service/results"
)

type ResultsHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Rollup(w http.ResponseWriter, r *http.Request)
	Ticker(w http.ResponseWriter, r *http.Request)
	ChartSeries(w http.ResponseWriter, r *http.Request)
	Options(w http.ResponseWriter, r *http.Request)
	GetSeat(w http.ResponseWriter, r *http.Request)
	Refresh(w http.ResponseWriter, r *http.Request)
}

type resultsHandlerImpl struct {
	resultsService results.ResultsService
}

func NewResultsHandler(resultsService results.ResultsService) ResultsHandler {
	return &resultsHandlerImpl{
		resultsService: resultsService,
	}
}

// parseFilter reads the view filters off the query string.
func parseFilter(r *http.Request) results.Filter {
	q := r.URL.Query()
	return results.Filter{
		Division: q.Get("division"),
		District: q.Get("district"),
		Seat:     q.Get("seat"),
		Party:    q.Get("party"),
		Status:   q.Get("status"),
		Search:   q.Get("search"),
	}
}

func (h *resultsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.resultsService.Overview(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}

func (h *resultsHandlerImpl) Rollup(w http.ResponseWriter, r *http.Request) {
	rollup, err := h.resultsService.Rollup(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rollup)
}

func (h *resultsHandlerImpl) Ticker(w http.ResponseWriter, r *http.Request) {
	ticker, err := h.resultsService.Ticker(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, ticker)
}

func (h *resultsHandlerImpl) ChartSeries(w http.ResponseWriter, r *http.Request) {
	series, err := h.resultsService.ChartSeries(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, series)
}

func (h *resultsHandlerImpl) Options(w http.ResponseWriter, r *http.Request) {
	options, err := h.resultsService.Options(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, options)
}

func (h *resultsHandlerImpl) GetSeat(w http.ResponseWriter, r *http.Request) {
	seatNo := chi.URLParam(r, "seatNo")
	view, err := h.resultsService.Seat(r.Context(), seatNo)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

func (h *resultsHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.resultsService.Refresh(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Results reloaded", nil)
}
