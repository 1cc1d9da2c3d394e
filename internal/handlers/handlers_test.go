package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	_ "github.com/ourilentes/premios/docs"
	authhandlers "github.com/ourilentes/premios/internal/handlers/auth"
	reporthandlers "github.com/ourilentes/premios/internal/handlers/reports"
	saleshandlers "github.com/ourilentes/premios/internal/handlers/sales"
	"github.com/ourilentes/premios/internal/service"
	"github.com/ourilentes/premios/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:   authhandlers.NewMockService(ctrl),
		SalesService:  saleshandlers.NewMockService(ctrl),
		ReportService: reporthandlers.NewMockService(ctrl),
	}

	h := New(services, auth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockSalesHandler := NewMockSalesHandler(ctrl)
	mockReportHandler := NewMockReportHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().GetSales(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().CreateSale(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().UpdateSaleStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().UpdateSale(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().RequestDelete(gomock.Any(), gomock.Any()).AnyTimes()
	mockSalesHandler.EXPECT().ConfirmDelete(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().ExportPDF(gomock.Any(), gomock.Any()).AnyTimes()
	mockReportHandler.EXPECT().GenerateAIReport(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("user-token").
		Return(&auth.Claims{UserID: "user-1", Role: "USER"}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("admin-token").
		Return(&auth.Claims{UserID: "admin-1", Role: "ADMIN"}, nil).AnyTimes()

	h := &Handlers{
		AuthHandler:   mockAuthHandler,
		SalesHandler:  mockSalesHandler,
		ReportHandler: mockReportHandler,
		jwtService:    jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},

		{"GET", "/api/sales", "", http.StatusUnauthorized},
		{"GET", "/api/sales", "user-token", http.StatusOK},
		{"POST", "/api/sales", "user-token", http.StatusOK},

		{"PATCH", "/api/sales/s1/status", "user-token", http.StatusForbidden},
		{"PATCH", "/api/sales/s1/status", "admin-token", http.StatusOK},
		{"PUT", "/api/sales/s1", "user-token", http.StatusForbidden},
		{"PUT", "/api/sales/s1", "admin-token", http.StatusOK},
		{"POST", "/api/sales/s1/delete-request", "user-token", http.StatusForbidden},
		{"POST", "/api/sales/s1/delete-request", "admin-token", http.StatusOK},
		{"DELETE", "/api/sales/s1", "user-token", http.StatusForbidden},
		{"DELETE", "/api/sales/s1", "admin-token", http.StatusOK},

		{"GET", "/api/reports/pdf", "", http.StatusUnauthorized},
		{"GET", "/api/reports/pdf", "user-token", http.StatusOK},
		{"GET", "/api/reports/ai", "user-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
