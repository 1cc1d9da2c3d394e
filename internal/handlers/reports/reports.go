package reports

import (
	"context"
	"errors"
	"net/http"

	"github.com/ourilentes/premios/internal/dto"
	salesservice "github.com/ourilentes/premios/internal/service/salesservice"
	"github.com/ourilentes/premios/pkg/auth"
	"github.com/ourilentes/premios/pkg/utils"
)

type Service interface {
	ExportPDF(ctx context.Context, userID string, query salesservice.ViewQuery) ([]byte, error)
	GenerateAIReport(ctx context.Context, userID string, query salesservice.ViewQuery) (string, error)
}

type ReportHandler struct {
	reportService Service
}

func New(reportService Service) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// ExportPDF godoc
//
//	@Summary		Export the current sales view as PDF
//	@Description	Renders the caller's scoped/filtered view to a tabular PDF. Accepts the same query parameters as GET /api/sales.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		application/pdf
//	@Param			from	query		string	false	"Start date (inclusive), yyyy-mm-dd"
//	@Param			to		query		string	false	"End date (inclusive), yyyy-mm-dd"
//	@Success		200		{file}		file
//	@Failure		400		{object}	utils.Response	"Invalid date bound"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/pdf [get]
func (h *ReportHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	document, err := h.reportService.ExportPDF(r.Context(), userID, viewQueryFromRequest(r))
	if err != nil {
		respondWithReportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="relatorio_vendas.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// GenerateAIReport godoc
//
//	@Summary		Generate an AI sales analysis
//	@Description	Produces analytical prose over the caller's current view. Degrades to a fixed message when the AI credential is missing or the provider fails; never blocks the dashboard.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from	query		string	false	"Start date (inclusive), yyyy-mm-dd"
//	@Param			to		query		string	false	"End date (inclusive), yyyy-mm-dd"
//	@Success		200		{object}	dto.AIReportResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date bound"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reports/ai [get]
func (h *ReportHandler) GenerateAIReport(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	report, err := h.reportService.GenerateAIReport(r.Context(), userID, viewQueryFromRequest(r))
	if err != nil {
		respondWithReportError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AIReportResponseDTO{Report: report})
}

func respondWithReportError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, salesservice.ErrInvalidDate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, salesservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func viewQueryFromRequest(r *http.Request) salesservice.ViewQuery {
	params := r.URL.Query()
	columnFilters := make(map[string]string)
	for _, column := range salesservice.FilterableColumns {
		if value := params.Get(column); value != "" {
			columnFilters[column] = value
		}
	}
	return salesservice.ViewQuery{
		From:          params.Get("from"),
		To:            params.Get("to"),
		ColumnFilters: columnFilters,
	}
}
