package repo

import (
	"github.com/ourilentes/premios/internal/pg"
	salerepo "github.com/ourilentes/premios/internal/repo/sale-repo"
	userrepo "github.com/ourilentes/premios/internal/repo/user-repo"
)

type Repositories struct {
	UserRepo *userrepo.Repository
	SaleRepo *salerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	saleRepo := salerepo.New(conn, txManager)

	return &Repositories{
		UserRepo: userRepo,
		SaleRepo: saleRepo,
	}
}
