package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jwtService := NewMockJWTServiceInterface(ctrl)

	tests := []struct {
		name         string
		authHeader   string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("valid-token").Return(&Claims{UserID: "user-123", Role: "USER"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			authHeader:   "Basic abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "user-123", r.Context().Value(UserIDKey))
				assert.Equal(t, "USER", r.Context().Value(RoleKey))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/sales", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			Middleware(jwtService)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name         string
		role         string
		expectedCode int
	}{
		{
			name:         "Admin role",
			role:         "ADMIN",
			expectedCode: http.StatusOK,
		},
		{
			name:         "User role",
			role:         "USER",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Missing role",
			role:         "",
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("DELETE", "/api/sales/1", nil)
			if tt.role != "" {
				req = req.WithContext(contextWithRole(req, tt.role))
			}
			rr := httptest.NewRecorder()

			AdminMiddleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func contextWithRole(r *http.Request, role string) context.Context {
	return context.WithValue(r.Context(), RoleKey, role)
}
