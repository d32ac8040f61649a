package dto

// LoginRequest entrada do login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// UsuarioLogado dados do usuário autenticado (nunca inclui hash de senha).
type UsuarioLogado struct {
	ID             string  `json:"id"`
	Nome           string  `json:"nome"`
	Email          string  `json:"email"`
	TipoAcesso     string  `json:"tipo_acesso"`
	ClienteID      *string `json:"cliente_id,omitempty"`
	PrimeiroAcesso bool    `json:"primeiro_acesso"`
}

// LoginResponse saída do login com o token de sessão.
type LoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Usuario UsuarioLogado `json:"usuario"`
}

// TrocarSenhaRequest entrada da troca de senha. O id da credencial vem do
// token de sessão, não do corpo.
type TrocarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	NovaSenha  string `json:"nova_senha" validate:"required,min=6"`
}

// TrocarSenhaResponse saída da troca de senha.
type TrocarSenhaResponse struct {
	Success  bool   `json:"success"`
	Mensagem string `json:"mensagem"`
}
