package repository

import (
	"context"

	"github.com/acessopro/acesso-api/internal/domain/entity"
)

// CredencialRepository porta de persistência das credenciais de login.
// Cada operação é atômica no nível do registro; não há escrita parcial.
type CredencialRepository interface {
	// BuscarPorEmail devolve zero ou uma credencial para o email normalizado.
	// Mais de uma linha para o mesmo email é condição de integridade e retorna
	// domain.ErrCredencialDuplicada, nunca a primeira silenciosamente.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Credencial, error)
	BuscarPorID(ctx context.Context, id string) (*entity.Credencial, error)
	Criar(ctx context.Context, c *entity.Credencial) error
	Atualizar(ctx context.Context, c *entity.Credencial) error
	// AtualizarSenha troca o hash e limpa o primeiro acesso num único UPDATE.
	AtualizarSenha(ctx context.Context, id, senhaHash string) error
	Deletar(ctx context.Context, id string) error
}
