package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSaleRequestDTO struct {
	Data       string           `json:"data" validate:"required" example:"2024-01-15"`
	OSLoja     string           `json:"os_loja" validate:"required" example:"OS-1042"`
	OSSavwin   string           `json:"os_savwin" validate:"required" example:"SW-88231"`
	Lente      string           `json:"lente" validate:"required" example:"Varilux"`
	Tratamento string           `json:"tratamento" validate:"required" example:"Antirreflexo"`
	Premio     *decimal.Decimal `json:"premio,omitempty" example:"50.00"`
}

type UpdateSaleRequestDTO struct {
	Data       string           `json:"data" validate:"required" example:"2024-01-15"`
	OSLoja     string           `json:"os_loja" validate:"required"`
	OSSavwin   string           `json:"os_savwin" validate:"required"`
	Lente      string           `json:"lente" validate:"required"`
	Tratamento string           `json:"tratamento" validate:"required"`
	Premio     *decimal.Decimal `json:"premio,omitempty"`
	Status     string           `json:"status" validate:"required" example:"Pago"`
}

type UpdateSaleStatusRequestDTO struct {
	Status string `json:"status" validate:"required" example:"Pago"`
}

type SaleDTO struct {
	ID           string           `json:"id"`
	Data         string           `json:"data" example:"2024-01-15"`
	VendedorID   string           `json:"vendedor_id"`
	VendedorNome string           `json:"vendedor_nome"`
	Loja         string           `json:"loja"`
	OSLoja       string           `json:"os_loja"`
	OSSavwin     string           `json:"os_savwin"`
	Lente        string           `json:"lente"`
	Tratamento   string           `json:"tratamento"`
	Premio       *decimal.Decimal `json:"premio,omitempty"`
	Status       string           `json:"status" example:"Em aberto"`
}

type SalesSummaryDTO struct {
	Pago     int `json:"pago" example:"2"`
	EmAberto int `json:"em_aberto" example:"1"`
}

type SalesViewResponseDTO struct {
	Sales         []SaleDTO           `json:"sales"`
	Summary       SalesSummaryDTO     `json:"summary"`
	FilterOptions map[string][]string `json:"filter_options"`
}

type DeleteRequestResponseDTO struct {
	ConfirmToken string    `json:"confirm_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}
