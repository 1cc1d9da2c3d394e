package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/pkg/auth"
	"github.com/ourilentes/premios/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	FindByCPF(ctx context.Context, cpf string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrCPFAlreadyExists   = errors.New("cpf already registered")
	ErrInvalidCPF         = errors.New("invalid cpf")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
	}
}

// Register creates a seller account. The role is always USER; admins are not
// self-service. Registration logs the new user straight in, so callers
// follow up with GenerateToken.
func (s *Service) Register(ctx context.Context, nome, cpf, loja, cidade, password string) (*domain.User, error) {
	if !validate.IsCPF(cpf) {
		return nil, ErrInvalidCPF
	}

	existingUser, err := s.userRepo.FindByCPF(ctx, cpf)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("cpf already registered")
		return nil, ErrCPFAlreadyExists
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		CPF:          cpf,
		Nome:         nome,
		Loja:         loja,
		Cidade:       cidade,
		Role:         domain.RoleUser,
		PasswordHash: hashedPassword,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("user_id", newUser.ID))
	return newUser, nil
}

// Authenticate verifies the credential pair. Unknown CPF and wrong password
// fail with the same error so callers can't probe which CPFs exist.
func (s *Service) Authenticate(ctx context.Context, cpf, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByCPF(ctx, cpf)
	if err != nil || user == nil {
		zap.L().Info("authentication failed")
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("authentication failed")
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("user_id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(userID, role string) (string, error) {
	expirationTime := time.Now().Add(s.tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
