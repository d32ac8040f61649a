package bootstrap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
	"github.com/acessopro/acesso-api/internal/domain/senha"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// TxRunner executa fn com repositórios atados a uma mesma transação. O seed
// grava credencial e perfil em pares; ou tudo entra, ou nada entra.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		credRepo repository.CredencialRepository,
		perfilRepo repository.PerfilRepository,
	) error) error
}

// SeedConta parâmetros de uma conta semente do setup inicial.
type SeedConta struct {
	Email string
	Senha string
	Nome  string
	Tipo  string
}

// Config contas semente do setup inicial.
type Config struct {
	Admin   SeedConta
	Cliente SeedConta
}

// BootstrapUseCase provisionamento administrativo: setup inicial e upsert de
// conta admin. Nada aqui apaga registros existentes; o setup é um upsert
// idempotente pelas contas semente, rodar duas vezes deixa exatamente as
// mesmas duas contas.
type BootstrapUseCase struct {
	tx       TxRunner
	politica *senha.Politica
	cfg      Config
	log      *logger.Logger
}

// NewBootstrapUseCase constrói o caso de uso de bootstrap.
func NewBootstrapUseCase(tx TxRunner, politica *senha.Politica, cfg Config, log *logger.Logger) *BootstrapUseCase {
	return &BootstrapUseCase{tx: tx, politica: politica, cfg: cfg, log: log}
}

// SetupInicial cria (ou redefine) as duas contas semente — uma admin e uma
// cliente — dentro de uma única transação.
func (uc *BootstrapUseCase) SetupInicial(ctx context.Context) (*dto.SetupResponse, error) {
	sementes := []SeedConta{
		{Email: uc.cfg.Admin.Email, Senha: uc.cfg.Admin.Senha, Nome: uc.cfg.Admin.Nome, Tipo: entity.TipoAdmin},
		{Email: uc.cfg.Cliente.Email, Senha: uc.cfg.Cliente.Senha, Nome: uc.cfg.Cliente.Nome, Tipo: entity.TipoCliente},
	}
	for _, s := range sementes {
		if s.Email == "" || s.Senha == "" {
			return nil, domain.ErrEntradaInvalida
		}
	}

	var contas []dto.ContaSeed
	err := uc.tx.Run(ctx, func(credRepo repository.CredencialRepository, perfilRepo repository.PerfilRepository) error {
		contas = contas[:0]
		for _, s := range sementes {
			conta, _, err := uc.upsertConta(ctx, credRepo, perfilRepo, s)
			if err != nil {
				return err
			}
			contas = append(contas, conta)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Int("contas", len(contas)).Msg("setup inicial concluído")
	return &dto.SetupResponse{Success: true, Contas: contas}, nil
}

// CriarUsuarioAdmin faz upsert da conta pelo email normalizado: existente tem
// hash, nome e flag de ativo sobrescritos e o tipo forçado a admin; ausente é
// criada já sem primeiro acesso pendente.
func (uc *BootstrapUseCase) CriarUsuarioAdmin(ctx context.Context, in dto.CriarAdminRequest) (*dto.CriarAdminResponse, error) {
	seed := SeedConta{Email: in.Email, Senha: in.Senha, Nome: in.Nome, Tipo: entity.TipoAdmin}

	var conta dto.ContaSeed
	var criado bool
	err := uc.tx.Run(ctx, func(credRepo repository.CredencialRepository, perfilRepo repository.PerfilRepository) error {
		var err error
		conta, criado, err = uc.upsertConta(ctx, credRepo, perfilRepo, seed)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("credencial_id", conta.ID).Bool("criado", criado).Msg("conta admin provisionada")
	return &dto.CriarAdminResponse{
		Success: true,
		ID:      conta.ID,
		Email:   conta.Email,
		Nome:    in.Nome,
		Criado:  criado,
	}, nil
}

// upsertConta grava a credencial e o perfil de uma conta semente. Devolve a
// identidade resultante e se a conta foi criada (true) ou atualizada (false).
func (uc *BootstrapUseCase) upsertConta(ctx context.Context, credRepo repository.CredencialRepository, perfilRepo repository.PerfilRepository, s SeedConta) (dto.ContaSeed, bool, error) {
	email := domain.NormalizarEmail(s.Email)
	hash, err := uc.politica.Gerar(s.Senha)
	if err != nil {
		return dto.ContaSeed{}, false, err
	}
	agora := time.Now()

	cred, err := credRepo.BuscarPorEmail(ctx, email)
	if err != nil {
		return dto.ContaSeed{}, false, err
	}

	if cred != nil {
		cred.SenhaHash = hash
		cred.Ativo = true
		cred.PrimeiroAcesso = false
		cred.AtualizadoEm = agora
		if err := credRepo.Atualizar(ctx, cred); err != nil {
			return dto.ContaSeed{}, false, err
		}
		if err := uc.upsertPerfil(ctx, perfilRepo, cred.ID, s, agora); err != nil {
			return dto.ContaSeed{}, false, err
		}
		return dto.ContaSeed{ID: cred.ID, Email: email, TipoAcesso: s.Tipo}, false, nil
	}

	cred = &entity.Credencial{
		ID:             uuid.NewString(),
		Email:          email,
		SenhaHash:      hash,
		Ativo:          true,
		PrimeiroAcesso: false,
		CriadoEm:       agora,
		AtualizadoEm:   agora,
	}
	if err := credRepo.Criar(ctx, cred); err != nil {
		return dto.ContaSeed{}, false, err
	}
	perfil := &entity.Perfil{
		ID:           uuid.NewString(),
		CredencialID: cred.ID,
		Nome:         s.Nome,
		TipoAcesso:   s.Tipo,
		Ativo:        true,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	}
	if err := perfilRepo.Criar(ctx, perfil); err != nil {
		return dto.ContaSeed{}, false, err
	}
	return dto.ContaSeed{ID: cred.ID, Email: email, TipoAcesso: s.Tipo}, true, nil
}

func (uc *BootstrapUseCase) upsertPerfil(ctx context.Context, perfilRepo repository.PerfilRepository, credencialID string, s SeedConta, agora time.Time) error {
	perfil, err := perfilRepo.BuscarPorCredencial(ctx, credencialID)
	if err != nil {
		return err
	}
	if perfil != nil {
		perfil.Nome = s.Nome
		perfil.TipoAcesso = s.Tipo
		perfil.Ativo = true
		perfil.AtualizadoEm = agora
		return perfilRepo.Atualizar(ctx, perfil)
	}
	return perfilRepo.Criar(ctx, &entity.Perfil{
		ID:           uuid.NewString(),
		CredencialID: credencialID,
		Nome:         s.Nome,
		TipoAcesso:   s.Tipo,
		Ativo:        true,
		CriadoEm:     agora,
		AtualizadoEm: agora,
	})
}
