package dto

// ContaSeed identifica uma conta criada/atualizada pelo setup (nunca o hash).
type ContaSeed struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	TipoAcesso string `json:"tipo_acesso"`
}

// SetupResponse saída do setup inicial.
type SetupResponse struct {
	Success bool        `json:"success"`
	Contas  []ContaSeed `json:"contas"`
}

// CriarAdminRequest entrada do upsert de conta administrativa.
type CriarAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required,min=6"`
	Nome  string `json:"nome" validate:"required"`
}

// CriarAdminResponse saída do upsert (identidade resultante, nunca o hash).
type CriarAdminResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Nome    string `json:"nome"`
	Criado  bool   `json:"criado"` // true se a conta foi criada, false se atualizada
}
