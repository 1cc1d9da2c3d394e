package salesservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// confirmTokenTTL bounds how long a delete request stays confirmable.
const confirmTokenTTL = 2 * time.Minute

type Repo interface {
	List(ctx context.Context) ([]domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	Insert(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

var (
	ErrPermissionDenied     = errors.New("permission denied")
	ErrSaleNotFound         = errors.New("sale not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrNegativePremio       = errors.New("premio must not be negative")
	ErrConfirmationRequired = errors.New("delete confirmation required")
)

// SaleInput carries the editable fields of a sale. Owner fields
// (vendedor_id, vendedor_nome, loja) are stamped server-side and never read
// from input.
type SaleInput struct {
	Data       string
	OSLoja     string
	OSSavwin   string
	Lente      string
	Tratamento string
	Premio     *decimal.Decimal
	Status     string
}

type ViewQuery struct {
	From          string
	To            string
	ColumnFilters map[string]string
}

type View struct {
	Sales         []domain.Sale
	Summary       Summary
	FilterOptions map[string][]string
}

type pendingDelete struct {
	token     string
	expiresAt time.Time
}

type Service struct {
	repo     Repo
	userRepo UserRepo

	mu             sync.Mutex
	pendingDeletes map[string]pendingDelete
}

func New(repo Repo, userRepo UserRepo) *Service {
	return &Service{
		repo:           repo,
		userRepo:       userRepo,
		pendingDeletes: make(map[string]pendingDelete),
	}
}

// GetView loads the full collection and derives the caller's scoped,
// filtered, sorted view plus the summary and the dropdown options.
func (s *Service) GetView(ctx context.Context, userID string, query ViewQuery) (*View, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	from, to, err := ParseBounds(query.From, query.To)
	if err != nil {
		return nil, err
	}

	sales, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list sales", zap.Error(err))
		return nil, err
	}

	visible, summary := ComputeView(sales, user, from, to, query.ColumnFilters)

	scoped := Scope(sales, user)
	options := make(map[string][]string, len(FilterableColumns))
	for _, column := range FilterableColumns {
		options[column] = DistinctValues(scoped, column)
	}

	return &View{
		Sales:         visible,
		Summary:       summary,
		FilterOptions: options,
	}, nil
}

// CreateSale stamps the owner fields from the acting user's stored record and
// forces the initial status, then persists and returns the canonical row.
func (s *Service) CreateSale(ctx context.Context, actingUserID string, input SaleInput) (*domain.Sale, error) {
	user, err := s.userRepo.FindByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	data, err := time.Parse(dateLayout, input.Data)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if err := validatePremio(input.Premio); err != nil {
		return nil, err
	}

	sale := &domain.Sale{
		ID:           uuid.NewString(),
		Data:         data,
		VendedorID:   user.ID,
		VendedorNome: user.Nome,
		Loja:         user.Loja,
		OSLoja:       input.OSLoja,
		OSSavwin:     input.OSSavwin,
		Lente:        input.Lente,
		Tratamento:   input.Tratamento,
		Premio:       toNullDecimal(input.Premio),
		Status:       domain.StatusEmAberto,
	}

	created, err := s.repo.Insert(ctx, sale)
	if err != nil {
		zap.L().Error("can't save sale", zap.Error(err))
		return nil, err
	}

	zap.L().Info("sale created", zap.String("sale_id", created.ID), zap.String("vendedor_id", user.ID))
	return created, nil
}

// UpdateSaleStatus flips a sale between "Em aberto" and "Pago". Admin only;
// rejected before any store call otherwise.
func (s *Service) UpdateSaleStatus(ctx context.Context, actingRole, saleID, status string) (*domain.Sale, error) {
	if actingRole != domain.RoleAdmin {
		zap.L().Warn("status change denied", zap.String("sale_id", saleID), zap.String("role", actingRole))
		return nil, ErrPermissionDenied
	}
	if status != domain.StatusEmAberto && status != domain.StatusPago {
		return nil, ErrInvalidStatus
	}

	updated, err := s.repo.UpdateStatus(ctx, saleID, status)
	if err != nil {
		zap.L().Error("failed to update sale status", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrSaleNotFound
	}
	return updated, nil
}

// UpdateSale replaces the editable fields of a sale. loja stays immutable
// post-creation (store reassignment is pending product clarification), as do
// the vendedor snapshot fields.
func (s *Service) UpdateSale(ctx context.Context, actingRole, saleID string, input SaleInput) (*domain.Sale, error) {
	if actingRole != domain.RoleAdmin {
		return nil, ErrPermissionDenied
	}

	data, err := time.Parse(dateLayout, input.Data)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if input.Status != domain.StatusEmAberto && input.Status != domain.StatusPago {
		return nil, ErrInvalidStatus
	}
	if err := validatePremio(input.Premio); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrSaleNotFound
	}

	existing.Data = data
	existing.OSLoja = input.OSLoja
	existing.OSSavwin = input.OSSavwin
	existing.Lente = input.Lente
	existing.Tratamento = input.Tratamento
	existing.Premio = toNullDecimal(input.Premio)
	existing.Status = input.Status

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		zap.L().Error("failed to update sale", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrSaleNotFound
	}
	return updated, nil
}

// RequestDelete is the first half of the two-phase delete: it touches nothing
// in the store and hands back a short-lived confirmation token.
func (s *Service) RequestDelete(ctx context.Context, actingRole, saleID string) (string, time.Time, error) {
	if actingRole != domain.RoleAdmin {
		return "", time.Time{}, ErrPermissionDenied
	}

	sale, err := s.repo.FindByID(ctx, saleID)
	if err != nil {
		return "", time.Time{}, err
	}
	if sale == nil {
		return "", time.Time{}, ErrSaleNotFound
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", time.Time{}, err
	}
	token := hex.EncodeToString(buf)
	expiresAt := time.Now().Add(confirmTokenTTL)

	s.mu.Lock()
	s.purgeExpiredLocked(time.Now())
	s.pendingDeletes[saleID] = pendingDelete{token: token, expiresAt: expiresAt}
	s.mu.Unlock()

	return token, expiresAt, nil
}

// ConfirmDelete performs the delete only when the caller presents the token
// issued by RequestDelete for the same sale and it has not expired.
func (s *Service) ConfirmDelete(ctx context.Context, actingRole, saleID, token string) error {
	if actingRole != domain.RoleAdmin {
		return ErrPermissionDenied
	}

	s.mu.Lock()
	s.purgeExpiredLocked(time.Now())
	pending, ok := s.pendingDeletes[saleID]
	if ok && pending.token == token {
		delete(s.pendingDeletes, saleID)
	} else {
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return ErrConfirmationRequired
	}

	deleted, err := s.repo.Delete(ctx, saleID)
	if err != nil {
		zap.L().Error("failed to delete sale", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrSaleNotFound
	}
	zap.L().Info("sale deleted", zap.String("sale_id", saleID))
	return nil
}

// purgeExpiredLocked drops delete requests whose confirmation window has
// passed, so abandoned requests do not accumulate. Callers must hold mu.
func (s *Service) purgeExpiredLocked(now time.Time) {
	for id, pending := range s.pendingDeletes {
		if !now.Before(pending.expiresAt) {
			delete(s.pendingDeletes, id)
		}
	}
}

// ParseBounds parses optional yyyy-mm-dd range bounds; empty means unbounded.
func ParseBounds(from, to string) (time.Time, time.Time, error) {
	var fromDate, toDate time.Time
	var err error
	if from != "" {
		fromDate, err = time.Parse(dateLayout, from)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
	}
	if to != "" {
		toDate, err = time.Parse(dateLayout, to)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
	}
	return fromDate, toDate, nil
}

func validatePremio(premio *decimal.Decimal) error {
	if premio != nil && premio.IsNegative() {
		return ErrNegativePremio
	}
	return nil
}

func toNullDecimal(premio *decimal.Decimal) decimal.NullDecimal {
	if premio == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *premio, Valid: true}
}
