package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
)

var _ repository.ConviteRepository = (*ConviteRepo)(nil)

// ConviteRepo implementação da porta ConviteRepository sobre PostgreSQL.
type ConviteRepo struct {
	db querier
}

// NewConviteRepository constrói o adaptador de persistência de convites.
func NewConviteRepository(db querier) *ConviteRepo {
	return &ConviteRepo{db: db}
}

const conviteCols = `id, token, email, nome, tipo_acesso, cargo, enviado_em, expira_em, aceito, criado_em`

// BuscarPorToken faz match exato do token; nil se não existir.
func (r *ConviteRepo) BuscarPorToken(ctx context.Context, token string) (*entity.Convite, error) {
	query := `
		SELECT ` + conviteCols + `
		FROM convites WHERE token = $1`
	var c entity.Convite
	err := r.db.QueryRow(ctx, query, token).Scan(
		&c.ID, &c.Token, &c.Email, &c.Nome, &c.TipoAcesso, &c.Cargo,
		&c.EnviadoEm, &c.ExpiraEm, &c.Aceito, &c.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar convite por token: %w", err)
	}
	return &c, nil
}

// Criar persiste um novo convite.
func (r *ConviteRepo) Criar(ctx context.Context, c *entity.Convite) error {
	query := `
		INSERT INTO convites (id, token, email, nome, tipo_acesso, cargo, enviado_em, expira_em, aceito, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Token, c.Email, c.Nome, c.TipoAcesso, c.Cargo,
		c.EnviadoEm, c.ExpiraEm, c.Aceito, c.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert convite: %w", err)
	}
	return nil
}

// ListarPorEmail lista os convites emitidos para um email, mais recentes primeiro.
func (r *ConviteRepo) ListarPorEmail(ctx context.Context, email string) ([]*entity.Convite, error) {
	query := `
		SELECT ` + conviteCols + `
		FROM convites WHERE email = $1 ORDER BY enviado_em DESC`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("listar convites: %w", err)
	}
	defer rows.Close()
	var lista []*entity.Convite
	for rows.Next() {
		var c entity.Convite
		if err := rows.Scan(
			&c.ID, &c.Token, &c.Email, &c.Nome, &c.TipoAcesso, &c.Cargo,
			&c.EnviadoEm, &c.ExpiraEm, &c.Aceito, &c.CriadoEm,
		); err != nil {
			return nil, fmt.Errorf("scan convite: %w", err)
		}
		lista = append(lista, &c)
	}
	return lista, rows.Err()
}
