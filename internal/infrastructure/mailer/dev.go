package mailer

import "github.com/acessopro/acesso-api/pkg/logger"

// DevMailer registra o convite no log em vez de enviar e-mail. Útil em
// desenvolvimento local sem SMTP.
type DevMailer struct {
	log *logger.Logger
}

// NewDevMailer constrói o mailer de desenvolvimento.
func NewDevMailer(log *logger.Logger) *DevMailer {
	return &DevMailer{log: log}
}

// EnviarConvite loga os dados do convite.
func (d *DevMailer) EnviarConvite(paraEmail, paraNome, conviteURL, token string) error {
	d.log.Info().
		Str("para", paraEmail).
		Str("nome", paraNome).
		Str("url", conviteURL).
		Str("token", token).
		Msg("[DEV MAIL] convite")
	return nil
}
