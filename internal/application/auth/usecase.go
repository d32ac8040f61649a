package auth

import (
	"context"
	"time"

	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
	"github.com/acessopro/acesso-api/internal/domain/senha"
	"github.com/acessopro/acesso-api/pkg/jwt"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// JWTConfig configuração para emissão de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login e troca de senha.
type AuthUseCase struct {
	credRepo   repository.CredencialRepository
	perfilRepo repository.PerfilRepository
	politica   *senha.Politica
	jwtCfg     JWTConfig
	log        *logger.Logger
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(credRepo repository.CredencialRepository, perfilRepo repository.PerfilRepository, politica *senha.Politica, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{credRepo: credRepo, perfilRepo: perfilRepo, politica: politica, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/senha e emite um token de sessão novo a cada chamada.
// Email inexistente, duplicado, senha errada e conta inativa retornam o mesmo
// ErrCredenciaisInvalidas: a resposta ao caller nunca revela qual foi o caso
// (o motivo real vai só para o log).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := domain.NormalizarEmail(in.Email)

	cred, err := uc.credRepo.BuscarPorEmail(ctx, email)
	if err != nil {
		if err == domain.ErrCredencialDuplicada {
			// Condição de integridade: registrar e responder como falha genérica
			uc.log.Warn().Str("email", email).Msg("login: mais de uma credencial para o email")
			return nil, domain.ErrCredenciaisInvalidas
		}
		return nil, err
	}
	if cred == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if !uc.politica.Verificar(in.Senha, cred.SenhaHash) {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if !cred.Ativo {
		uc.log.Warn().Str("credencial_id", cred.ID).Msg("login: credencial inativa")
		return nil, domain.ErrCredenciaisInvalidas
	}

	uc.migrarHashSeNecessario(ctx, cred, in.Senha)

	perfil, err := uc.perfilRepo.BuscarPorCredencial(ctx, cred.ID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		// Sem perfil: segue com o padrão de menor privilégio
		perfil = entity.PerfilPadrao(cred.ID)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, cred.ID, perfil.TipoAcesso, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Usuario: dto.UsuarioLogado{
			ID:             cred.ID,
			Nome:           perfil.Nome,
			Email:          cred.Email,
			TipoAcesso:     perfil.TipoAcesso,
			ClienteID:      perfil.ClienteID,
			PrimeiroAcesso: cred.PrimeiroAcesso,
		},
	}, nil
}

// TrocarSenha verifica a senha atual e substitui o hash pelo esquema forte,
// limpando primeiro_acesso no mesmo UPDATE. Chamada repetida com a senha
// antiga falha, pois o hash já mudou.
func (uc *AuthUseCase) TrocarSenha(ctx context.Context, credencialID string, in dto.TrocarSenhaRequest) error {
	cred, err := uc.credRepo.BuscarPorID(ctx, credencialID)
	if err != nil {
		return err
	}
	if cred == nil {
		return domain.ErrCredencialNaoEncontrada
	}
	if !uc.politica.Verificar(in.SenhaAtual, cred.SenhaHash) {
		return domain.ErrSenhaAtualIncorreta
	}
	hash, err := uc.politica.Gerar(in.NovaSenha)
	if err != nil {
		return err
	}
	return uc.credRepo.AtualizarSenha(ctx, credencialID, hash)
}

// migrarHashSeNecessario regrava em bcrypt hashes de esquemas herdados após
// um login bem-sucedido. Falha de escrita não bloqueia o login, só vai ao log;
// a migração acontece na próxima tentativa.
func (uc *AuthUseCase) migrarHashSeNecessario(ctx context.Context, cred *entity.Credencial, plano string) {
	if !uc.politica.PrecisaMigrar(cred.SenhaHash) {
		return
	}
	hash, err := uc.politica.Gerar(plano)
	if err == nil {
		err = uc.atualizarHashPreservandoPrimeiroAcesso(ctx, cred, hash)
	}
	if err != nil {
		uc.log.Error().Err(err).Str("credencial_id", cred.ID).Msg("migração de hash falhou")
		return
	}
	uc.log.Info().
		Str("credencial_id", cred.ID).
		Str("esquema_anterior", senha.Esquema(cred.SenhaHash)).
		Msg("hash migrado para o esquema atual")
	cred.SenhaHash = hash
}

// atualizarHashPreservandoPrimeiroAcesso troca só o hash: a migração não é uma
// rotação feita pelo usuário e não deve limpar a flag de primeiro acesso.
func (uc *AuthUseCase) atualizarHashPreservandoPrimeiroAcesso(ctx context.Context, cred *entity.Credencial, hash string) error {
	atualizada := *cred
	atualizada.SenhaHash = hash
	atualizada.AtualizadoEm = time.Now()
	return uc.credRepo.Atualizar(ctx, &atualizada)
}
