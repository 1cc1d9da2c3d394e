package service

import (
	authhandlers "github.com/ourilentes/premios/internal/handlers/auth"
	reporthandlers "github.com/ourilentes/premios/internal/handlers/reports"
	saleshandlers "github.com/ourilentes/premios/internal/handlers/sales"

	pkgauth "github.com/ourilentes/premios/pkg/auth"
	"github.com/ourilentes/premios/pkg/clients"

	"github.com/ourilentes/premios/internal/config"
	"github.com/ourilentes/premios/internal/repo"
	authservice "github.com/ourilentes/premios/internal/service/authservice"
	reportservice "github.com/ourilentes/premios/internal/service/reportservice"
	salesservice "github.com/ourilentes/premios/internal/service/salesservice"
)

type Services struct {
	AuthService   authhandlers.Service
	SalesService  saleshandlers.Service
	ReportService reporthandlers.Service
}

func New(repo *repo.Repositories, cfg *config.Config, httpClient clients.HTTPClientI) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)
	salesService := salesservice.New(repo.SaleRepo, repo.UserRepo)

	geminiClient := reportservice.NewGeminiClient(cfg.GeminiAddress, cfg.GeminiAPIKey, httpClient)
	reportService := reportservice.New(repo.SaleRepo, repo.UserRepo, geminiClient)

	return &Services{
		AuthService:   authService,
		SalesService:  salesService,
		ReportService: reportService,
	}
}
