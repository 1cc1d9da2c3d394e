package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/ourilentes/premios/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, cpf, nome, loja, cidade, role, password_hash FROM users WHERE cpf = $1", cpf).
		Scan(&user.ID, &user.CPF, &user.Nome, &user.Loja, &user.Cidade, &user.Role, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by cpf", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := repo.db.QueryRow(ctx, "SELECT id, cpf, nome, loja, cidade, role, password_hash FROM users WHERE id = $1", id).
		Scan(&user.ID, &user.CPF, &user.Nome, &user.Loja, &user.Cidade, &user.Role, &user.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user by id", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (id, cpf, nome, loja, cidade, role, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := repo.db.QueryRow(ctx, query, user.ID, user.CPF, user.Nome, user.Loja, user.Cidade, user.Role, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, cpf, nome, loja, cidade, role, password_hash
		FROM users
		ORDER BY nome ASC
	`
	rows, err := repo.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.CPF, &user.Nome, &user.Loja, &user.Cidade, &user.Role, &user.PasswordHash)
		if err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("users rows iteration failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}
