package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acessopro/acesso-api/internal/application/bootstrap"
	"github.com/acessopro/acesso-api/internal/application/dto"
	"github.com/acessopro/acesso-api/internal/domain"
	"github.com/acessopro/acesso-api/internal/domain/entity"
	"github.com/acessopro/acesso-api/internal/domain/repository"
	"github.com/acessopro/acesso-api/internal/domain/senha"
	"github.com/acessopro/acesso-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeCredRepo struct {
	porID map[string]*entity.Credencial
}

func (f *fakeCredRepo) BuscarPorEmail(_ context.Context, email string) (*entity.Credencial, error) {
	var achadas []*entity.Credencial
	for _, c := range f.porID {
		if c.Email == email {
			achadas = append(achadas, c)
		}
	}
	switch len(achadas) {
	case 0:
		return nil, nil
	case 1:
		return achadas[0], nil
	default:
		return nil, domain.ErrCredencialDuplicada
	}
}

func (f *fakeCredRepo) BuscarPorID(_ context.Context, id string) (*entity.Credencial, error) {
	return f.porID[id], nil
}

func (f *fakeCredRepo) Criar(_ context.Context, c *entity.Credencial) error {
	f.porID[c.ID] = c
	return nil
}

func (f *fakeCredRepo) Atualizar(_ context.Context, c *entity.Credencial) error {
	f.porID[c.ID] = c
	return nil
}

func (f *fakeCredRepo) AtualizarSenha(_ context.Context, id, senhaHash string) error {
	c, ok := f.porID[id]
	if !ok {
		return domain.ErrCredencialNaoEncontrada
	}
	c.SenhaHash = senhaHash
	c.PrimeiroAcesso = false
	c.AtualizadoEm = time.Now()
	return nil
}

func (f *fakeCredRepo) Deletar(_ context.Context, id string) error {
	delete(f.porID, id)
	return nil
}

type fakePerfilRepo struct {
	porCredencial map[string]*entity.Perfil
}

func (f *fakePerfilRepo) BuscarPorCredencial(_ context.Context, credencialID string) (*entity.Perfil, error) {
	return f.porCredencial[credencialID], nil
}

func (f *fakePerfilRepo) Criar(_ context.Context, p *entity.Perfil) error {
	f.porCredencial[p.CredencialID] = p
	return nil
}

func (f *fakePerfilRepo) Atualizar(_ context.Context, p *entity.Perfil) error {
	f.porCredencial[p.CredencialID] = p
	return nil
}

func (f *fakePerfilRepo) Deletar(_ context.Context, id string) error {
	for k, p := range f.porCredencial {
		if p.ID == id {
			delete(f.porCredencial, k)
		}
	}
	return nil
}

// fakeTxRunner executa fn direto sobre os repos em memória; o comportamento
// transacional em si é coberto pelo adaptador postgres.
type fakeTxRunner struct {
	cred   *fakeCredRepo
	perfil *fakePerfilRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.CredencialRepository, repository.PerfilRepository) error) error {
	return fn(f.cred, f.perfil)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var seedCfg = bootstrap.Config{
	Admin:   bootstrap.SeedConta{Email: "Admin@Acesso.local", Senha: "admin-seed", Nome: "Administrador"},
	Cliente: bootstrap.SeedConta{Email: "cliente@acesso.local", Senha: "cliente-seed", Nome: "Cliente Demonstração"},
}

func novoUseCase(t *testing.T, cfg bootstrap.Config) (*bootstrap.BootstrapUseCase, *fakeCredRepo, *fakePerfilRepo, *senha.Politica) {
	t.Helper()
	cred := &fakeCredRepo{porID: map[string]*entity.Credencial{}}
	perfil := &fakePerfilRepo{porCredencial: map[string]*entity.Perfil{}}
	politica := senha.NewPolitica(4)
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	uc := bootstrap.NewBootstrapUseCase(&fakeTxRunner{cred: cred, perfil: perfil}, politica, cfg, log)
	return uc, cred, perfil, politica
}

// ──────────────────────────────────────────────────────────────────────────────
// SetupInicial
// ──────────────────────────────────────────────────────────────────────────────

func TestSetupInicial_CriaDuasContas(t *testing.T) {
	uc, cred, perfil, politica := novoUseCase(t, seedCfg)

	out, err := uc.SetupInicial(context.Background())
	require.NoError(t, err)

	assert.True(t, out.Success)
	require.Len(t, out.Contas, 2)
	assert.Len(t, cred.porID, 2)
	assert.Len(t, perfil.porCredencial, 2)

	admin, err := cred.BuscarPorEmail(context.Background(), "admin@acesso.local")
	require.NoError(t, err)
	require.NotNil(t, admin, "email semente é normalizado antes da gravação")
	assert.True(t, politica.Verificar("admin-seed", admin.SenhaHash))
	assert.Equal(t, senha.EsquemaBcrypt, senha.Esquema(admin.SenhaHash),
		"seed grava sempre no esquema forte")
	assert.True(t, admin.Ativo)
	assert.False(t, admin.PrimeiroAcesso)

	p, err := perfil.BuscarPorCredencial(context.Background(), admin.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, entity.TipoAdmin, p.TipoAcesso)

	clienteCred, err := cred.BuscarPorEmail(context.Background(), "cliente@acesso.local")
	require.NoError(t, err)
	require.NotNil(t, clienteCred)
	pc, err := perfil.BuscarPorCredencial(context.Background(), clienteCred.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TipoCliente, pc.TipoAcesso)
}

func TestSetupInicial_Idempotente(t *testing.T) {
	uc, cred, perfil, politica := novoUseCase(t, seedCfg)

	_, err := uc.SetupInicial(context.Background())
	require.NoError(t, err)
	_, err = uc.SetupInicial(context.Background())
	require.NoError(t, err)

	// Duas execuções deixam exatamente duas credenciais e dois perfis
	assert.Len(t, cred.porID, 2)
	assert.Len(t, perfil.porCredencial, 2)

	admin, err := cred.BuscarPorEmail(context.Background(), "admin@acesso.local")
	require.NoError(t, err)
	assert.True(t, politica.Verificar("admin-seed", admin.SenhaHash))
}

func TestSetupInicial_SemSenhaSemente(t *testing.T) {
	cfg := seedCfg
	cfg.Admin.Senha = ""
	uc, cred, _, _ := novoUseCase(t, cfg)

	_, err := uc.SetupInicial(context.Background())
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Empty(t, cred.porID, "validação falha antes de qualquer escrita")
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarUsuarioAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarUsuarioAdmin_CriaQuandoAusente(t *testing.T) {
	uc, cred, perfil, politica := novoUseCase(t, seedCfg)

	out, err := uc.CriarUsuarioAdmin(context.Background(), dto.CriarAdminRequest{
		Email: "Gestor@X.com", Senha: "segredo1", Nome: "Gestor Um",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.True(t, out.Criado)
	assert.Equal(t, "gestor@x.com", out.Email)
	assert.NotEmpty(t, out.ID)

	c := cred.porID[out.ID]
	require.NotNil(t, c)
	assert.True(t, politica.Verificar("segredo1", c.SenhaHash))
	assert.False(t, c.PrimeiroAcesso)

	p := perfil.porCredencial[out.ID]
	require.NotNil(t, p)
	assert.Equal(t, entity.TipoAdmin, p.TipoAcesso)
	assert.Equal(t, "Gestor Um", p.Nome)
}

func TestCriarUsuarioAdmin_UpsertSobrescreve(t *testing.T) {
	uc, cred, perfil, politica := novoUseCase(t, seedCfg)

	out1, err := uc.CriarUsuarioAdmin(context.Background(), dto.CriarAdminRequest{
		Email: "gestor@x.com", Senha: "primeira1", Nome: "Nome Um",
	})
	require.NoError(t, err)
	out2, err := uc.CriarUsuarioAdmin(context.Background(), dto.CriarAdminRequest{
		Email: "gestor@x.com", Senha: "segunda2", Nome: "Nome Dois",
	})
	require.NoError(t, err)

	// Mesmo registro, nome da segunda chamada
	assert.Equal(t, out1.ID, out2.ID)
	assert.False(t, out2.Criado)
	assert.Len(t, cred.porID, 1)

	c := cred.porID[out2.ID]
	assert.True(t, politica.Verificar("segunda2", c.SenhaHash))
	assert.False(t, politica.Verificar("primeira1", c.SenhaHash))
	assert.Equal(t, "Nome Dois", perfil.porCredencial[out2.ID].Nome)
}

func TestCriarUsuarioAdmin_ForcaTipoAdmin(t *testing.T) {
	uc, cred, perfil, _ := novoUseCase(t, seedCfg)

	// Conta pré-existente de tipo cliente, inativa
	require.NoError(t, cred.Criar(context.Background(), &entity.Credencial{
		ID: "c1", Email: "promovido@x.com", SenhaHash: "sha256:00", Ativo: false,
	}))
	require.NoError(t, perfil.Criar(context.Background(), &entity.Perfil{
		ID: "p1", CredencialID: "c1", Nome: "Antigo", TipoAcesso: entity.TipoCliente,
	}))

	out, err := uc.CriarUsuarioAdmin(context.Background(), dto.CriarAdminRequest{
		Email: "promovido@x.com", Senha: "segredo1", Nome: "Promovido",
	})
	require.NoError(t, err)

	assert.Equal(t, "c1", out.ID)
	assert.True(t, cred.porID["c1"].Ativo)
	assert.Equal(t, entity.TipoAdmin, perfil.porCredencial["c1"].TipoAcesso)
	assert.Equal(t, "Promovido", perfil.porCredencial["c1"].Nome)
}
