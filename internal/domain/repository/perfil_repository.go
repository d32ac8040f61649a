package repository

import (
	"context"

	"github.com/acessopro/acesso-api/internal/domain/entity"
)

// PerfilRepository porta de persistência dos perfis de usuário.
type PerfilRepository interface {
	// BuscarPorCredencial devolve o perfil vinculado à credencial, ou nil se
	// não houver (o caller decide o fallback).
	BuscarPorCredencial(ctx context.Context, credencialID string) (*entity.Perfil, error)
	Criar(ctx context.Context, p *entity.Perfil) error
	Atualizar(ctx context.Context, p *entity.Perfil) error
	Deletar(ctx context.Context, id string) error
}
