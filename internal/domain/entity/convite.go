package entity

import "time"

// Convite é um token opaco de uso único que abre uma janela limitada para a
// finalização de conta. ExpiraEm é sempre explícito e calculado na criação
// (EnviadoEm + validade configurada); uma vez aceito o convite é imutável.
type Convite struct {
	ID         string
	Token      string
	Email      string
	Nome       string
	TipoAcesso string // tipo pretendido para a conta
	Cargo      string
	EnviadoEm  time.Time
	ExpiraEm   time.Time
	Aceito     bool
	CriadoEm   time.Time
}

// Expirado informa se o convite passou da janela de validade no instante
// agora. A igualdade exata com ExpiraEm ainda é válida; só o excedente conta.
func (c *Convite) Expirado(agora time.Time) bool {
	return agora.After(c.ExpiraEm)
}
