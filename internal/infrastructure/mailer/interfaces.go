package mailer

// Service envia o e-mail de convite com o link de finalização de conta.
type Service interface {
	EnviarConvite(paraEmail, paraNome, conviteURL, token string) error
}
