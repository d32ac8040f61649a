package repository

import (
	"context"

	"github.com/acessopro/acesso-api/internal/domain/entity"
)

// ConviteRepository porta de persistência dos convites. A aceitação é feita
// pelo fluxo de finalização de conta, fora deste serviço; aqui só se cria e
// consulta.
type ConviteRepository interface {
	// BuscarPorToken faz match exato do token; nil se não existir.
	BuscarPorToken(ctx context.Context, token string) (*entity.Convite, error)
	Criar(ctx context.Context, c *entity.Convite) error
	ListarPorEmail(ctx context.Context, email string) ([]*entity.Convite, error)
}
