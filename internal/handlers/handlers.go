package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/ourilentes/premios/docs"
	authhandlers "github.com/ourilentes/premios/internal/handlers/auth"
	reporthandlers "github.com/ourilentes/premios/internal/handlers/reports"
	saleshandlers "github.com/ourilentes/premios/internal/handlers/sales"
	"github.com/ourilentes/premios/internal/service"
	"github.com/ourilentes/premios/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type SalesHandler interface {
	GetSales(w http.ResponseWriter, r *http.Request)
	CreateSale(w http.ResponseWriter, r *http.Request)
	UpdateSaleStatus(w http.ResponseWriter, r *http.Request)
	UpdateSale(w http.ResponseWriter, r *http.Request)
	RequestDelete(w http.ResponseWriter, r *http.Request)
	ConfirmDelete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	ExportPDF(w http.ResponseWriter, r *http.Request)
	GenerateAIReport(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	SalesHandler  SalesHandler
	ReportHandler ReportHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		SalesHandler:  saleshandlers.New(s.SalesService),
		ReportHandler: reporthandlers.New(s.ReportService),
		jwtService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(30*time.Second),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/sales", func(r chi.Router) {
				r.Get("/", h.SalesHandler.GetSales)
				r.Post("/", h.SalesHandler.CreateSale)

				r.Group(func(r chi.Router) {
					r.Use(auth.AdminMiddleware)
					r.Patch("/{saleID}/status", h.SalesHandler.UpdateSaleStatus)
					r.Put("/{saleID}", h.SalesHandler.UpdateSale)
					r.Post("/{saleID}/delete-request", h.SalesHandler.RequestDelete)
					r.Delete("/{saleID}", h.SalesHandler.ConfirmDelete)
				})
			})
			r.Route("/reports", func(r chi.Router) {
				r.Get("/pdf", h.ReportHandler.ExportPDF)
				r.Get("/ai", h.ReportHandler.GenerateAIReport)
			})
		})
	})

	return r
}
