package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acessopro/acesso-api/internal/application/bootstrap"
	"github.com/acessopro/acesso-api/internal/domain/repository"
)

// Ensure TxRunner implements bootstrap.TxRunner.
var _ bootstrap.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL. O seed do
// bootstrap grava credencial e perfil de duas contas; sem transação uma falha
// no meio deixaria estado parcial.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repositórios atados à tx e faz
// Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	credRepo repository.CredencialRepository,
	perfilRepo repository.PerfilRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	credRepo := NewCredencialRepository(tx)
	perfilRepo := NewPerfilRepository(tx)

	if err := fn(credRepo, perfilRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
