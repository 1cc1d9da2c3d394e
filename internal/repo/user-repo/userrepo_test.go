package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ourilentes/premios/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const userQuery = "SELECT id, cpf, nome, loja, cidade, role, password_hash FROM users WHERE cpf = $1"

func TestRepository_FindByCPF(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		cpf       string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			cpf:  "52998224725",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "cpf", "nome", "loja", "cidade", "role", "password_hash"}).
					AddRow("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "USER", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(userQuery)).
					WithArgs("52998224725").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           "user-1",
				CPF:          "52998224725",
				Nome:         "Ana",
				Loja:         "Centro",
				Cidade:       "Ourinhos",
				Role:         "USER",
				PasswordHash: "hashed",
			},
		},
		{
			name: "User does not exist",
			cpf:  "12345678909",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userQuery)).
					WithArgs("12345678909").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			cpf:  "52998224725",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(userQuery)).
					WithArgs("52998224725").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByCPF(context.Background(), tt.cpf)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, cpf, nome, loja, cidade, role, password_hash FROM users WHERE id = $1"

	tests := []struct {
		name      string
		id        string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User exists",
			id:   "user-1",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "cpf", "nome", "loja", "cidade", "role", "password_hash"}).
					AddRow("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "ADMIN", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
			result: &domain.User{
				ID:           "user-1",
				CPF:          "52998224725",
				Nome:         "Ana",
				Loja:         "Centro",
				Cidade:       "Ourinhos",
				Role:         "ADMIN",
				PasswordHash: "hashed",
			},
		},
		{
			name: "User does not exist",
			id:   "ghost",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).
					WithArgs("ghost").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	user := &domain.User{
		ID:           "user-1",
		CPF:          "52998224725",
		Nome:         "Ana",
		Loja:         "Centro",
		Cidade:       "Ourinhos",
		Role:         "USER",
		PasswordHash: "hashed",
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(timeNow)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, cpf, nome, loja, cidade, role, password_hash) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`)).
					WithArgs("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "USER", "hashed").
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (id, cpf, nome, loja, cidade, role, password_hash) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`)).
					WithArgs("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "USER", "hashed").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), user)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, timeNow, created.CreatedAt)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	query := "SELECT id, cpf, nome, loja, cidade, role, password_hash FROM users ORDER BY nome ASC"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.User
	}{
		{
			name: "Users found sorted by name",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "cpf", "nome", "loja", "cidade", "role", "password_hash"}).
					AddRow("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "USER", "hashed").
					AddRow("user-2", "12345678909", "Bruno", "Shopping", "Ourinhos", "USER", "hashed")
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			result: []domain.User{
				{ID: "user-1", CPF: "52998224725", Nome: "Ana", Loja: "Centro", Cidade: "Ourinhos", Role: "USER", PasswordHash: "hashed"},
				{ID: "user-2", CPF: "12345678909", Nome: "Bruno", Loja: "Shopping", Cidade: "Ourinhos", Role: "USER", PasswordHash: "hashed"},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
		{
			name: "Row iteration error returns no truncated list",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "cpf", "nome", "loja", "cidade", "role", "password_hash"}).
					AddRow("user-1", "52998224725", "Ana", "Centro", "Ourinhos", "USER", "hashed").
					AddRow("user-2", "12345678909", "Bruno", "Shopping", "Ourinhos", "USER", "hashed").
					RowError(1, errors.New("connection reset"))
				mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(rows)
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
