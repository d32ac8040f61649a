package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
)

var _ repository.CredencialRepository = (*CredencialRepo)(nil)

// CredencialRepo implementação da porta CredencialRepository sobre PostgreSQL.
type CredencialRepo struct {
	db querier
}

// NewCredencialRepository constrói o adaptador de persistência de credenciais.
func NewCredencialRepository(db querier) *CredencialRepo {
	return &CredencialRepo{db: db}
}

const credencialCols = `id, email, senha_hash, ativo, primeiro_acesso, criado_em, atualizado_em`

// BuscarPorEmail devolve a credencial do email ou nil. Duas linhas para o
// mesmo email indicam corrupção de dados e retornam ErrCredencialDuplicada.
func (r *CredencialRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Credencial, error) {
	query := `
		SELECT ` + credencialCols + `
		FROM credenciais WHERE email = $1 LIMIT 2`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("buscar credencial por email: %w", err)
	}
	defer rows.Close()

	var encontradas []*entity.Credencial
	for rows.Next() {
		var c entity.Credencial
		if err := scanCredencial(rows, &c); err != nil {
			return nil, fmt.Errorf("scan credencial: %w", err)
		}
		encontradas = append(encontradas, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("buscar credencial por email: %w", err)
	}
	switch len(encontradas) {
	case 0:
		return nil, nil
	case 1:
		return encontradas[0], nil
	default:
		return nil, domain.ErrCredencialDuplicada
	}
}

// BuscarPorID obtém uma credencial por ID; nil se não existir.
func (r *CredencialRepo) BuscarPorID(ctx context.Context, id string) (*entity.Credencial, error) {
	query := `
		SELECT ` + credencialCols + `
		FROM credenciais WHERE id = $1`
	var c entity.Credencial
	err := scanCredencial(r.db.QueryRow(ctx, query, id), &c)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar credencial por id: %w", err)
	}
	return &c, nil
}

// Criar persiste uma nova credencial.
func (r *CredencialRepo) Criar(ctx context.Context, c *entity.Credencial) error {
	query := `
		INSERT INTO credenciais (id, email, senha_hash, ativo, primeiro_acesso, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Email, c.SenhaHash, c.Ativo, c.PrimeiroAcesso, c.CriadoEm, c.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert credencial: %w", err)
	}
	return nil
}

// Atualizar regrava os campos mutáveis da credencial.
func (r *CredencialRepo) Atualizar(ctx context.Context, c *entity.Credencial) error {
	query := `
		UPDATE credenciais SET email = $2, senha_hash = $3, ativo = $4, primeiro_acesso = $5, atualizado_em = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Email, c.SenhaHash, c.Ativo, c.PrimeiroAcesso, c.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update credencial: %w", err)
	}
	return nil
}

// AtualizarSenha troca o hash e limpa primeiro_acesso num único UPDATE:
// a rotação substitui o hash por inteiro ou não altera nada.
func (r *CredencialRepo) AtualizarSenha(ctx context.Context, id, senhaHash string) error {
	query := `
		UPDATE credenciais SET senha_hash = $2, primeiro_acesso = FALSE, atualizado_em = $3
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, senhaHash, time.Now())
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCredencialNaoEncontrada
	}
	return nil
}

// Deletar remove uma credencial por ID.
func (r *CredencialRepo) Deletar(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM credenciais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete credencial: %w", err)
	}
	return nil
}

func scanCredencial(row pgx.Row, c *entity.Credencial) error {
	return row.Scan(&c.ID, &c.Email, &c.SenhaHash, &c.Ativo, &c.PrimeiroAcesso, &c.CriadoEm, &c.AtualizadoEm)
}
