package salerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const saleColumns = "id, data, vendedor_id, vendedor_nome, loja, os_loja, os_savwin, lente, tratamento, premio, status, created_at"

func scanSale(row pgx.Row, sale *domain.Sale) error {
	return row.Scan(
		&sale.ID, &sale.Data, &sale.VendedorID, &sale.VendedorNome, &sale.Loja,
		&sale.OSLoja, &sale.OSSavwin, &sale.Lente, &sale.Tratamento,
		&sale.Premio, &sale.Status, &sale.CreatedAt,
	)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + `
        FROM sales
        WHERE id = $1
    `
	var sale domain.Sale
	err := scanSale(r.db.QueryRow(ctx, query, id), &sale)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find sale", zap.Error(err))
		return nil, err
	}
	return &sale, nil
}

// List returns every sale in insertion order, newest first. The view builder
// relies on this order as the tie-break for equal dates.
func (r *Repository) List(ctx context.Context) ([]domain.Sale, error) {
	query := `
        SELECT ` + saleColumns + `
        FROM sales
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list sales", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		var sale domain.Sale
		if err := scanSale(rows, &sale); err != nil {
			zap.L().Error("can't scan sale row", zap.Error(err))
			return nil, err
		}
		sales = append(sales, sale)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("sales rows iteration failed", zap.Error(err))
		return nil, err
	}
	return sales, nil
}

func (r *Repository) Insert(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `
        INSERT INTO sales (id, data, vendedor_id, vendedor_nome, loja, os_loja, os_savwin, lente, tratamento, premio, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return r.db.QueryRow(ctx, query,
			sale.ID, sale.Data, sale.VendedorID, sale.VendedorNome, sale.Loja,
			sale.OSLoja, sale.OSSavwin, sale.Lente, sale.Tratamento,
			sale.Premio, sale.Status,
		).Scan(&sale.CreatedAt)
	})
	if err != nil {
		zap.L().Error("can't save sale", zap.Error(err))
		return nil, err
	}
	return sale, nil
}

// Update replaces the editable fields only. loja, vendedor_id and
// vendedor_nome are creation-time snapshots and never change.
func (r *Repository) Update(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `
        UPDATE sales
        SET data = $1, os_loja = $2, os_savwin = $3, lente = $4, tratamento = $5, premio = $6, status = $7
        WHERE id = $8
        RETURNING ` + saleColumns + `
    `
	var updated domain.Sale
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			sale.Data, sale.OSLoja, sale.OSSavwin, sale.Lente, sale.Tratamento,
			sale.Premio, sale.Status, sale.ID,
		)
		return scanSale(row, &updated)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update sale", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string) (*domain.Sale, error) {
	query := `
        UPDATE sales
        SET status = $1
        WHERE id = $2
        RETURNING ` + saleColumns + `
    `
	var updated domain.Sale
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		return scanSale(r.db.QueryRow(ctx, query, status, id), &updated)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("failed to update sale status", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		zap.L().Error("failed to delete sale", zap.Error(err))
		return false, err
	}
	return deleted, nil
}
