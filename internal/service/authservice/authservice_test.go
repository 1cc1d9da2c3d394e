package authservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const validCPF = "529.982.247-25"

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	jwtService := auth.NewMockJWTServiceInterface(ctrl)

	service := New(repo, hashService, jwtService, time.Hour)
	defer ctrl.Finish()
	return service, repo, hashService, jwtService
}

func TestRegister(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		cpf           string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Successful registration",
			cpf:  validCPF,
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.NotEmpty(t, user.ID)
					assert.Equal(t, domain.RoleUser, user.Role)
					assert.Equal(t, "hashedpassword", user.PasswordHash)
					return user, nil
				})
			},
			expectedError: nil,
		},
		{
			name:          "Invalid CPF",
			cpf:           "12345678901",
			prepareMock:   func() {},
			expectedError: ErrInvalidCPF,
		},
		{
			name: "CPF already registered",
			cpf:  validCPF,
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(&domain.User{CPF: validCPF}, nil)
			},
			expectedError: ErrCPFAlreadyExists,
		},
		{
			name: "Error finding user",
			cpf:  validCPF,
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Error hashing password",
			cpf:  validCPF,
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("", errors.New("hashing error"))
			},
			expectedError: errors.New("hashing error"),
		},
		{
			name: "Error creating user",
			cpf:  validCPF,
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, nil)
				passwordHasher.EXPECT().HashPassword("testpassword").Return("hashedpassword", nil)
				userRepo.EXPECT().Create(context.Background(), gomock.Any()).Return(nil, errors.New("creation failed"))
			},
			expectedError: errors.New("creation failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), "Ana", tt.cpf, "Centro", "Ourinhos", "testpassword")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Ana", user.Nome)
				assert.Equal(t, "Centro", user.Loja)
				assert.Equal(t, domain.RoleUser, user.Role)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, userRepo, passwordHasher, _ := NewMock(t)

	tests := []struct {
		name          string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(&domain.User{
					ID:           "user-1",
					CPF:          validCPF,
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "testpassword").Return(true)
			},
			expectedError: nil,
		},
		{
			name:     "Unknown CPF fails the same way as a wrong password",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "wrongpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(&domain.User{
					ID:           "user-1",
					CPF:          validCPF,
					PasswordHash: "hashedpassword",
				}, nil)
				passwordHasher.EXPECT().ComparePassword("hashedpassword", "wrongpassword").Return(false)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Store error is masked as invalid credentials",
			password: "testpassword",
			prepareMock: func() {
				userRepo.EXPECT().FindByCPF(context.Background(), validCPF).Return(nil, errors.New("database error"))
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), validCPF, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _, _, jwtService := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedToken string
		expectedError error
	}{
		{
			name: "Successful token generation",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", domain.RoleAdmin, gomock.Any()).Return("generated-token", nil)
			},
			expectedToken: "generated-token",
			expectedError: nil,
		},
		{
			name: "Error generating token",
			prepareMock: func() {
				jwtService.EXPECT().GenerateJWT("user-1", domain.RoleAdmin, gomock.Any()).Return("", errors.New("can't generate token"))
			},
			expectedToken: "",
			expectedError: errors.New("can't generate token"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			token, err := service.GenerateToken("user-1", domain.RoleAdmin)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
