package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoleAdmin string = "ADMIN"
	RoleUser  string = "USER"
)

const (
	// StatusEmAberto venda registrada, prêmio ainda não pago.
	StatusEmAberto string = "Em aberto"
	// StatusPago prêmio da venda já foi pago ao vendedor.
	StatusPago string = "Pago"
)

type User struct {
	ID           string    `db:"id"`
	CPF          string    `db:"cpf"`
	Nome         string    `db:"nome"`
	Loja         string    `db:"loja"`
	Cidade       string    `db:"cidade"`
	Role         string    `db:"role"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// Sale carries vendedor_nome and loja as snapshots taken at creation time so
// that reports stay stable even if the seller's record changes later.
type Sale struct {
	ID           string              `db:"id"`
	Data         time.Time           `db:"data"`
	VendedorID   string              `db:"vendedor_id"`
	VendedorNome string              `db:"vendedor_nome"`
	Loja         string              `db:"loja"`
	OSLoja       string              `db:"os_loja"`
	OSSavwin     string              `db:"os_savwin"`
	Lente        string              `db:"lente"`
	Tratamento   string              `db:"tratamento"`
	Premio       decimal.NullDecimal `db:"premio"`
	Status       string              `db:"status"`
	CreatedAt    time.Time           `db:"created_at"`
}
