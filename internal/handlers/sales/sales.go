package sales

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/internal/dto"
	salesservice "github.com/ourilentes/premios/internal/service/salesservice"
	"github.com/ourilentes/premios/pkg/auth"
	"github.com/ourilentes/premios/pkg/utils"
)

// ConfirmTokenHeader carries the token issued by the delete request back on
// the actual delete call.
const ConfirmTokenHeader = "X-Confirm-Token"

type Service interface {
	GetView(ctx context.Context, userID string, query salesservice.ViewQuery) (*salesservice.View, error)
	CreateSale(ctx context.Context, actingUserID string, input salesservice.SaleInput) (*domain.Sale, error)
	UpdateSaleStatus(ctx context.Context, actingRole, saleID, status string) (*domain.Sale, error)
	UpdateSale(ctx context.Context, actingRole, saleID string, input salesservice.SaleInput) (*domain.Sale, error)
	RequestDelete(ctx context.Context, actingRole, saleID string) (string, time.Time, error)
	ConfirmDelete(ctx context.Context, actingRole, saleID, token string) error
}

type SalesHandler struct {
	salesService Service
	validate     *validator.Validate
}

func New(salesService Service) *SalesHandler {
	return &SalesHandler{
		salesService: salesService,
		validate:     validator.New(),
	}
}

// GetSales godoc
//
//	@Summary		Get the sales view
//	@Description	Scoped, filtered and sorted sales for the authenticated user, with the paid/open summary and the dropdown filter options
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			from			query	string	false	"Start date (inclusive), yyyy-mm-dd"
//	@Param			to				query	string	false	"End date (inclusive), yyyy-mm-dd"
//	@Param			vendedor_nome	query	string	false	"Exact seller name filter"
//	@Param			loja			query	string	false	"Exact store filter"
//	@Param			lente			query	string	false	"Exact lens filter"
//	@Param			tratamento		query	string	false	"Exact treatment filter"
//	@Param			status			query	string	false	"Exact status filter"
//	@Success		200	{object}	dto.SalesViewResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid date bound"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sales [get]
func (h *SalesHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	view, err := h.salesService.GetView(r.Context(), userID, viewQueryFromRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, salesservice.ErrInvalidDate):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, salesservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := dto.SalesViewResponseDTO{
		Sales: make([]dto.SaleDTO, 0, len(view.Sales)),
		Summary: dto.SalesSummaryDTO{
			Pago:     view.Summary.Pago,
			EmAberto: view.Summary.EmAberto,
		},
		FilterOptions: view.FilterOptions,
	}
	for _, sale := range view.Sales {
		response.Sales = append(response.Sales, toSaleDTO(sale))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateSale godoc
//
//	@Summary		Register a new sale
//	@Description	Creates a sale owned by the authenticated seller. Owner fields are stamped server-side; status always starts as "Em aberto".
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSaleRequestDTO	true	"Sale fields"
//	@Success		201		{object}	dto.SaleDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales [post]
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(string)

	var req dto.CreateSaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	sale, err := h.salesService.CreateSale(r.Context(), userID, salesservice.SaleInput{
		Data:       req.Data,
		OSLoja:     req.OSLoja,
		OSSavwin:   req.OSSavwin,
		Lente:      req.Lente,
		Tratamento: req.Tratamento,
		Premio:     req.Premio,
	})
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSaleDTO(*sale))
}

// UpdateSaleStatus godoc
//
//	@Summary		Change a sale's payment status
//	@Description	Flips a sale between "Em aberto" and "Pago". Admin only.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			saleID	path		string							true	"Sale id"
//	@Param			request	body		dto.UpdateSaleStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.SaleDTO
//	@Failure		400		{object}	utils.Response	"Invalid status"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Sale not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/{saleID}/status [patch]
func (h *SalesHandler) UpdateSaleStatus(w http.ResponseWriter, r *http.Request) {
	role := r.Context().Value(auth.RoleKey).(string)
	saleID := chi.URLParam(r, "saleID")

	var req dto.UpdateSaleStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	sale, err := h.salesService.UpdateSaleStatus(r.Context(), role, saleID, req.Status)
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSaleDTO(*sale))
}

// UpdateSale godoc
//
//	@Summary		Edit a sale
//	@Description	Replaces the editable fields of a sale. Admin only. The store (loja) and the seller snapshot fields are immutable post-creation.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			saleID	path		string					true	"Sale id"
//	@Param			request	body		dto.UpdateSaleRequestDTO	true	"Editable sale fields"
//	@Success		200		{object}	dto.SaleDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Sale not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/{saleID} [put]
func (h *SalesHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	role := r.Context().Value(auth.RoleKey).(string)
	saleID := chi.URLParam(r, "saleID")

	var req dto.UpdateSaleRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	sale, err := h.salesService.UpdateSale(r.Context(), role, saleID, salesservice.SaleInput{
		Data:       req.Data,
		OSLoja:     req.OSLoja,
		OSSavwin:   req.OSSavwin,
		Lente:      req.Lente,
		Tratamento: req.Tratamento,
		Premio:     req.Premio,
		Status:     req.Status,
	})
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSaleDTO(*sale))
}

// RequestDelete godoc
//
//	@Summary		Request deletion of a sale
//	@Description	First half of the two-step delete: issues a short-lived confirmation token and touches nothing in the store.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			saleID	path		string	true	"Sale id"
//	@Success		200		{object}	dto.DeleteRequestResponseDTO
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Sale not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/{saleID}/delete-request [post]
func (h *SalesHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	role := r.Context().Value(auth.RoleKey).(string)
	saleID := chi.URLParam(r, "saleID")

	token, expiresAt, err := h.salesService.RequestDelete(r.Context(), role, saleID)
	if err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DeleteRequestResponseDTO{
		ConfirmToken: token,
		ExpiresAt:    expiresAt,
	})
}

// ConfirmDelete godoc
//
//	@Summary		Confirm deletion of a sale
//	@Description	Second half of the two-step delete. Requires the X-Confirm-Token issued by the delete request; without it nothing is removed.
//	@Tags			Sales
//	@Security		BearerAuth
//	@Produce		json
//	@Param			saleID			path	string	true	"Sale id"
//	@Param			X-Confirm-Token	header	string	true	"Confirmation token"
//	@Success		204
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Sale not found"
//	@Failure		409	{object}	utils.Response	"Missing, wrong or expired confirmation token"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/sales/{saleID} [delete]
func (h *SalesHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	role := r.Context().Value(auth.RoleKey).(string)
	saleID := chi.URLParam(r, "saleID")
	token := r.Header.Get(ConfirmTokenHeader)

	if err := h.salesService.ConfirmDelete(r.Context(), role, saleID, token); err != nil {
		respondWithSaleError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

func respondWithSaleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, salesservice.ErrPermissionDenied):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, salesservice.ErrSaleNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, salesservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, salesservice.ErrConfirmationRequired):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, salesservice.ErrInvalidDate),
		errors.Is(err, salesservice.ErrInvalidStatus),
		errors.Is(err, salesservice.ErrNegativePremio):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
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

func toSaleDTO(sale domain.Sale) dto.SaleDTO {
	out := dto.SaleDTO{
		ID:           sale.ID,
		VendedorID:   sale.VendedorID,
		VendedorNome: sale.VendedorNome,
		Loja:         sale.Loja,
		OSLoja:       sale.OSLoja,
		OSSavwin:     sale.OSSavwin,
		Lente:        sale.Lente,
		Tratamento:   sale.Tratamento,
		Status:       sale.Status,
	}
	if !sale.Data.IsZero() {
		out.Data = sale.Data.Format("2006-01-02")
	}
	if sale.Premio.Valid {
		premio := sale.Premio.Decimal
		out.Premio = &premio
	}
	return out
}
