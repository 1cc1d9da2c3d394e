package reportservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/internal/service/salesservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Degraded responses shown instead of AI prose. The dashboard must keep
// working without a configured key and through provider outages.
const (
	MsgAIDisabled    = "O recurso de IA está desativado porque a chave da API não foi configurada."
	MsgAIUnavailable = "Ocorreu um erro ao gerar o relatório de IA. Por favor, tente novamente mais tarde."
)

type SaleRepo interface {
	List(ctx context.Context) ([]domain.Sale, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type AIClient interface {
	Enabled() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	saleRepo SaleRepo
	userRepo UserRepo
	ai       AIClient
}

func New(saleRepo SaleRepo, userRepo UserRepo, ai AIClient) *Service {
	return &Service{
		saleRepo: saleRepo,
		userRepo: userRepo,
		ai:       ai,
	}
}

// ExportPDF renders the caller's current view to a tabular PDF document.
func (s *Service) ExportPDF(ctx context.Context, userID string, query salesservice.ViewQuery) ([]byte, error) {
	sales, err := s.visibleSales(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return renderPDF(sales)
}

// GenerateAIReport produces analytical prose over the caller's current view.
// Provider failures and a missing credential degrade to a fixed message; the
// only errors surfaced are store errors.
func (s *Service) GenerateAIReport(ctx context.Context, userID string, query salesservice.ViewQuery) (string, error) {
	sales, err := s.visibleSales(ctx, userID, query)
	if err != nil {
		return "", err
	}

	if !s.ai.Enabled() {
		return MsgAIDisabled, nil
	}

	team, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to load seller roster", zap.Error(err))
		return "", err
	}

	report, err := s.ai.GenerateContent(ctx, buildPrompt(sales, team))
	if err != nil {
		zap.L().Error("ai report generation failed", zap.Error(err))
		return MsgAIUnavailable, nil
	}
	return report, nil
}

func (s *Service) visibleSales(ctx context.Context, userID string, query salesservice.ViewQuery) ([]domain.Sale, error) {
	var user *domain.User
	var sales []domain.Sale

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.userRepo.FindByID(gCtx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return salesservice.ErrUserNotFound
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sales, err = s.saleRepo.List(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to assemble report data", zap.Error(err))
		return nil, err
	}

	from, to, err := salesservice.ParseBounds(query.From, query.To)
	if err != nil {
		return nil, err
	}
	visible, _ := salesservice.ComputeView(sales, user, from, to, query.ColumnFilters)
	return visible, nil
}

func buildPrompt(sales []domain.Sale, team []domain.User) string {
	var sellers []string
	for _, u := range team {
		sellers = append(sellers, fmt.Sprintf("- %s (%s, %s)", u.Nome, u.Loja, u.Cidade))
	}

	var lines []string
	for _, s := range sales {
		premio := "N/A"
		if s.Premio.Valid {
			premio = "R$" + s.Premio.Decimal.StringFixed(2)
		}
		lines = append(lines, fmt.Sprintf(
			"- Data: %s, Vendedor: %s, Loja: %s, Lente: %s, Tratamento: %s, Status: %s, Prêmio: %s",
			s.Data.Format("2006-01-02"), s.VendedorNome, s.Loja, s.Lente, s.Tratamento, s.Status, premio,
		))
	}

	return fmt.Sprintf(`Você é um analista de vendas sênior. Analise os seguintes dados de vendas de uma ótica e forneça um relatório conciso em português.

O relatório deve incluir:
1. Um resumo geral do desempenho.
2. As lentes e tratamentos mais vendidos.
3. O vendedor com o melhor desempenho (maior número de vendas e maior valor em prêmios).
4. Análise sobre o desempenho por loja.
5. Análise sobre os prêmios concedidos.
6. Qualquer tendência ou insight interessante que você possa identificar.

Use formatação de markdown para o relatório.

Equipe de vendedores cadastrados:
%s

Dados de Vendas:
%s`, strings.Join(sellers, "\n"), strings.Join(lines, "\n"))
}
