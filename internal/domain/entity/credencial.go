package entity

import "time"

// Credencial é o registro autoritativo de login: email único (sempre
// minúsculo) e hash de senha etiquetado pelo esquema. O hash nunca aparece em
// respostas nem em logs.
type Credencial struct {
	ID             string
	Email          string
	SenhaHash      string // hash etiquetado (bcrypt atual; legados só para verificação)
	Ativo          bool
	PrimeiroAcesso bool // força troca de senha no próximo login
	CriadoEm       time.Time
	AtualizadoEm   time.Time
}
