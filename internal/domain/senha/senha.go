// Package senha concentra a política de hashing de senhas: bcrypt como
// esquema atual de escrita e verificação retrocompatível com os esquemas
// etiquetados herdados do sistema anterior. Não existe caminho de downgrade;
// qualquer hash novo sai sempre em bcrypt.
package senha

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

// Esquemas reconhecidos de hash etiquetado.
const (
	EsquemaBcrypt       = "bcrypt"
	EsquemaArgon2id     = "argon2id"
	EsquemaLegadoSHA    = "sha256-legado"
	EsquemaDesconhecido = "desconhecido"
)

// PrefixoLegado etiqueta o digest hexadecimal do esquema fraco herdado.
const PrefixoLegado = "sha256:"

// Politica aplica o custo configurado ao gerar hashes novos.
type Politica struct {
	custo int
}

// NewPolitica cria a política com o fator de trabalho do bcrypt. Valores fora
// da faixa suportada caem no padrão do pacote (custo 10).
func NewPolitica(custo int) *Politica {
	if custo < bcrypt.MinCost || custo > bcrypt.MaxCost {
		custo = 10
	}
	return &Politica{custo: custo}
}

// Gerar produz um hash bcrypt etiquetado para a senha em texto claro.
func (p *Politica) Gerar(plano string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plano), p.custo)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verificar compara a senha em texto claro com um hash etiquetado de qualquer
// esquema reconhecido. Hashes de esquema desconhecido nunca verificam.
func (p *Politica) Verificar(plano, hash string) bool {
	switch Esquema(hash) {
	case EsquemaBcrypt:
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plano)) == nil
	case EsquemaArgon2id:
		ok, err := argon2id.ComparePasswordAndHash(plano, hash)
		return err == nil && ok
	case EsquemaLegadoSHA:
		return verificarLegado(plano, hash)
	default:
		return false
	}
}

// PrecisaMigrar informa se o hash deve ser regravado em bcrypt no próximo
// login bem-sucedido (migração verify-then-rehash, unidirecional).
func (p *Politica) PrecisaMigrar(hash string) bool {
	return Esquema(hash) != EsquemaBcrypt
}

// Esquema classifica o hash pelo prefixo etiquetado.
func Esquema(hash string) string {
	switch {
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		return EsquemaBcrypt
	case strings.HasPrefix(hash, "$argon2id$"):
		return EsquemaArgon2id
	case strings.HasPrefix(hash, PrefixoLegado):
		return EsquemaLegadoSHA
	default:
		return EsquemaDesconhecido
	}
}

// verificarLegado compara contra o digest SHA-256 hexadecimal herdado.
// A comparação é em tempo constante sobre os bytes decodificados; nunca
// igualdade simples de strings.
func verificarLegado(plano, hash string) bool {
	esperado, err := hex.DecodeString(strings.TrimPrefix(hash, PrefixoLegado))
	if err != nil || len(esperado) != sha256.Size {
		return false
	}
	digest := sha256.Sum256([]byte(plano))
	return subtle.ConstantTimeCompare(digest[:], esperado) == 1
}
