package entity

import "time"

// Tipos de acesso válidos para Perfil.
const (
	TipoAdmin       = "admin"
	TipoColaborador = "colaborador"
	TipoCliente     = "cliente"
)

// Perfil carrega nome de exibição, tipo de acesso e vínculo opcional com um
// cliente. Relação um-para-um com Credencial via CredencialID; nunca embutido.
type Perfil struct {
	ID           string
	CredencialID string
	Nome         string
	TipoAcesso   string // admin, colaborador, cliente
	Ativo        bool
	ClienteID    *string // vínculo opcional com registro de cliente
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// PerfilPadrao é usado quando uma credencial não resolve a nenhum perfil:
// decisões de autorização tratam a ausência como o caso de menor privilégio.
func PerfilPadrao(credencialID string) *Perfil {
	return &Perfil{
		CredencialID: credencialID,
		Nome:         "Usuário",
		TipoAcesso:   TipoColaborador,
		Ativo:        true,
	}
}
