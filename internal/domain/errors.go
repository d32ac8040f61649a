package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrCredenciaisInvalidas    = errors.New("email ou senha inválidos")
	ErrCredencialNaoEncontrada = errors.New("credencial não encontrada")
	ErrCredencialDuplicada     = errors.New("mais de uma credencial para o mesmo email")
	ErrEmailJaCadastrado       = errors.New("o email já está cadastrado")
	ErrSenhaAtualIncorreta     = errors.New("senha atual incorreta")
	ErrEntradaInvalida         = errors.New("entrada inválida")
	ErrNaoAutorizado           = errors.New("não autorizado")
	ErrAcessoNegado            = errors.New("acesso negado")
	ErrConviteNaoEncontrado    = errors.New("convite não encontrado")
	ErrConviteUtilizado        = errors.New("este convite já foi utilizado")
	ErrConviteExpirado         = errors.New("este convite expirou")
)
