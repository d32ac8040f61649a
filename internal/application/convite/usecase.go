package convite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
	"github.com/acessopro/acesso-api/internal/infrastructure/mailer"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// Estados do ciclo de vida de um convite.
const (
	StatusPendente = "pendente"
	StatusAceito   = "aceito"
	StatusExpirado = "expirado"
)

// Config política de convites.
type Config struct {
	ValidadeDias int
	BaseURL      string
}

// ConviteUseCase emissão e validação de convites. A aceitação em si é do
// fluxo de finalização de conta; aqui nunca se muda o estado de aceite.
type ConviteUseCase struct {
	repo   repository.ConviteRepository
	mailer mailer.Service
	cfg    Config
	log    *logger.Logger
	agora  func() time.Time
}

// NewConviteUseCase constrói o caso de uso de convites.
func NewConviteUseCase(repo repository.ConviteRepository, m mailer.Service, cfg Config, log *logger.Logger) *ConviteUseCase {
	if cfg.ValidadeDias <= 0 {
		cfg.ValidadeDias = 7
	}
	return &ConviteUseCase{repo: repo, mailer: m, cfg: cfg, log: log, agora: time.Now}
}

// Validar resolve o token para um dos estados {pendente, aceito, expirado};
// token desconhecido retorna ErrConviteNaoEncontrado. Convite aceito e convite
// expirado têm mensagens distintas entre si e do não-encontrado, para a UI
// orientar o usuário (ex. "já utilizado, faça login").
func (uc *ConviteUseCase) Validar(ctx context.Context, token string) (*dto.ValidarConviteResponse, error) {
	c, err := uc.repo.BuscarPorToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrConviteNaoEncontrado
	}
	if c.Aceito {
		return &dto.ValidarConviteResponse{
			Success:  false,
			Status:   StatusAceito,
			Mensagem: "Este convite já foi utilizado. Se a conta é sua, faça login normalmente.",
		}, nil
	}
	if c.Expirado(uc.agora()) {
		return &dto.ValidarConviteResponse{
			Success:  false,
			Status:   StatusExpirado,
			Mensagem: "Este convite expirou. Solicite um novo convite ao administrador.",
		}, nil
	}
	return &dto.ValidarConviteResponse{
		Success: true,
		Status:  StatusPendente,
		Convite: &dto.ConviteInfo{
			Email:      c.Email,
			Nome:       c.Nome,
			TipoAcesso: c.TipoAcesso,
			Cargo:      c.Cargo,
		},
	}, nil
}

// Criar emite um convite com token opaco novo e validade contada a partir do
// envio. O e-mail é melhor esforço: falha de envio não desfaz o convite.
func (uc *ConviteUseCase) Criar(ctx context.Context, in dto.CriarConviteRequest) (*dto.CriarConviteResponse, error) {
	agora := uc.agora()
	c := &entity.Convite{
		ID:         uuid.NewString(),
		Token:      uuid.NewString(),
		Email:      domain.NormalizarEmail(in.Email),
		Nome:       in.Nome,
		TipoAcesso: in.TipoAcesso,
		Cargo:      in.Cargo,
		EnviadoEm:  agora,
		ExpiraEm:   agora.AddDate(0, 0, uc.cfg.ValidadeDias),
		Aceito:     false,
		CriadoEm:   agora,
	}
	if err := uc.repo.Criar(ctx, c); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/finalizar-conta?token=%s", uc.cfg.BaseURL, c.Token)
	if err := uc.mailer.EnviarConvite(c.Email, c.Nome, url, c.Token); err != nil {
		uc.log.Error().Err(err).Str("convite_id", c.ID).Msg("envio do e-mail de convite falhou")
	}

	return &dto.CriarConviteResponse{
		Success:  true,
		ID:       c.ID,
		Token:    c.Token,
		Email:    c.Email,
		ExpiraEm: c.ExpiraEm,
	}, nil
}
