package dto

import "time"

// ValidarConviteRequest entrada da validação de convite.
type ValidarConviteRequest struct {
	Token string `json:"token" validate:"required"`
}

// ConviteInfo dados do convidado, apresentados ao fluxo de finalização de conta.
type ConviteInfo struct {
	Email      string `json:"email"`
	Nome       string `json:"nome"`
	TipoAcesso string `json:"tipo_acesso"`
	Cargo      string `json:"cargo,omitempty"`
}

// ValidarConviteResponse saída da validação. Convites expirados ou já
// utilizados respondem HTTP 200 com success=false e mensagem descritiva, para
// a UI ramificar pela mensagem.
type ValidarConviteResponse struct {
	Success  bool         `json:"success"`
	Status   string       `json:"status"` // pendente, aceito, expirado
	Mensagem string       `json:"mensagem,omitempty"`
	Convite  *ConviteInfo `json:"convite,omitempty"`
}

// CriarConviteRequest entrada da emissão de convite (somente admin).
type CriarConviteRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Nome       string `json:"nome" validate:"required"`
	TipoAcesso string `json:"tipo_acesso" validate:"required,oneof=admin colaborador cliente"`
	Cargo      string `json:"cargo" validate:"omitempty,max=100"`
}

// CriarConviteResponse saída da emissão (o token vai no e-mail e na resposta
// para o admin repassar manualmente se preciso).
type CriarConviteResponse struct {
	Success  bool      `json:"success"`
	ID       string    `json:"id"`
	Token    string    `json:"token"`
	Email    string    `json:"email"`
	ExpiraEm time.Time `json:"expira_em"`
}
