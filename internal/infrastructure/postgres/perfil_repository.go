package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
)

var _ repository.PerfilRepository = (*PerfilRepo)(nil)

// PerfilRepo implementação da porta PerfilRepository sobre PostgreSQL.
type PerfilRepo struct {
	db querier
}

// NewPerfilRepository constrói o adaptador de persistência de perfis.
func NewPerfilRepository(db querier) *PerfilRepo {
	return &PerfilRepo{db: db}
}

// BuscarPorCredencial obtém o perfil vinculado à credencial; nil se não houver.
func (r *PerfilRepo) BuscarPorCredencial(ctx context.Context, credencialID string) (*entity.Perfil, error) {
	query := `
		SELECT id, credencial_id, nome, tipo_acesso, ativo, cliente_id, criado_em, atualizado_em
		FROM perfis WHERE credencial_id = $1 LIMIT 1`
	var p entity.Perfil
	err := r.db.QueryRow(ctx, query, credencialID).Scan(
		&p.ID, &p.CredencialID, &p.Nome, &p.TipoAcesso, &p.Ativo, &p.ClienteID,
		&p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar perfil por credencial: %w", err)
	}
	return &p, nil
}

// Criar persiste um novo perfil.
func (r *PerfilRepo) Criar(ctx context.Context, p *entity.Perfil) error {
	query := `
		INSERT INTO perfis (id, credencial_id, nome, tipo_acesso, ativo, cliente_id, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.CredencialID, p.Nome, p.TipoAcesso, p.Ativo, p.ClienteID,
		p.CriadoEm, p.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert perfil: %w", err)
	}
	return nil
}

// Atualizar regrava os campos mutáveis do perfil.
func (r *PerfilRepo) Atualizar(ctx context.Context, p *entity.Perfil) error {
	query := `
		UPDATE perfis SET nome = $2, tipo_acesso = $3, ativo = $4, cliente_id = $5, atualizado_em = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Nome, p.TipoAcesso, p.Ativo, p.ClienteID, p.AtualizadoEm,
	)
	if err != nil {
		return fmt.Errorf("update perfil: %w", err)
	}
	return nil
}

// Deletar remove um perfil por ID.
func (r *PerfilRepo) Deletar(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM perfis WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete perfil: %w", err)
	}
	return nil
}
