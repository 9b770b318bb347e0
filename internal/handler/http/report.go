package http

import (
	"net/http"

	"github.com/gcet-hr/hr-backend-go/internal/handler/http/response"
	"github.com/gcet-hr/hr-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportLeaves(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance implements ReportHandler.
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	format := report.ParseFormat(r.URL.Query().Get("format"))

	export, err := h.reportService.ExportAttendance(r.Context(), attendanceFilterFromQuery(r), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

// ExportLeaves implements ReportHandler.
func (h *reportHandlerImpl) ExportLeaves(w http.ResponseWriter, r *http.Request) {
	format := report.ParseFormat(r.URL.Query().Get("format"))

	export, err := h.reportService.ExportLeaves(r.Context(), format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeExport(w, export)
}

func writeExport(w http.ResponseWriter, export report.Export) {
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}
