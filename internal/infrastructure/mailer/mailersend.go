package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mailersend/mailersend-go"
)

// MailerSendClient envia convites pela API do MailerSend.
type MailerSendClient struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	enabled bool
}

// NewMailerSend constrói o cliente; fica desabilitado sem apiKey/fromEmail.
func NewMailerSend(apiKey, fromName, fromEmail string) *MailerSendClient {
	m := &MailerSendClient{
		enabled: apiKey != "" && fromEmail != "",
		from: mailersend.From{
			Name:  fromName,
			Email: fromEmail,
		},
	}
	if m.enabled {
		m.client = mailersend.NewMailersend(apiKey)
	}
	return m
}

// EnviarConvite envia o e-mail de convite com o link de finalização.
func (m *MailerSendClient) EnviarConvite(paraEmail, paraNome, conviteURL, token string) error {
	if !m.enabled {
		return fmt.Errorf("MailerSend não configurado")
	}

	assunto := "Você foi convidado"
	html := fmt.Sprintf(`
		<h2>Você foi convidado!</h2>
		<p>Olá %s,</p>
		<p>Você foi convidado a criar sua conta. Clique no botão abaixo para finalizar o cadastro:</p>
		<p><a href="%s" style="background-color: #2563EB; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Criar minha conta</a></p>
		<p>Ou use este código de convite: <strong>%s</strong></p>
		<p>O convite expira em 7 dias. Se você não esperava este e-mail, ignore-o.</p>
	`, paraNome, conviteURL, token)
	texto := fmt.Sprintf("Olá %s,\n\nVocê foi convidado a criar sua conta. Acesse: %s\n\nO convite expira em 7 dias.", paraNome, conviteURL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Name: paraNome, Email: paraEmail}})
	msg.SetSubject(assunto)
	if strings.TrimSpace(texto) != "" {
		msg.SetText(texto)
	}
	if strings.TrimSpace(html) != "" {
		msg.SetHTML(html)
	}

	_, err := m.client.Email.Send(ctx, msg)
	return err
}
