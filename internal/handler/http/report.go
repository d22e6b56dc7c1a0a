package http

import (
	"net/http"

	"github.com/li-cell/election-backend-go/internal/handler/http/response"
	"github.com/li-cell/election-backend-go/internal/service/report"
)

type ReportHandler interface {
	WinnersReport(w http.ResponseWriter, r *http.Request)
	PartySummary(w http.ResponseWriter, r *http.Request)
	ChartPNG(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// WinnersReport handles GET /reports/winners.txt
func (h *reportHandlerImpl) WinnersReport(w http.ResponseWriter, r *http.Request) {
	text, err := h.reportService.WinnersReport(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeTextAttachment(w, "winners.txt", text)
}

// PartySummary handles GET /reports/party-summary.txt
func (h *reportHandlerImpl) PartySummary(w http.ResponseWriter, r *http.Request) {
	text, err := h.reportService.PartySummaryReport(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeTextAttachment(w, "party-summary.txt", text)
}

// ChartPNG handles GET /results/chart.png
func (h *reportHandlerImpl) ChartPNG(w http.ResponseWriter, r *http.Request) {
	png, err := h.reportService.WinsChartPNG(r.Context(), parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func writeTextAttachment(w http.ResponseWriter, filename string, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}
