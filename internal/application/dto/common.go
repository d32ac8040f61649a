package dto

// ErrorResponse corpo de erro HTTP. Success é sempre false; Error carrega a
// mensagem voltada ao usuário (nunca detalhe interno).
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// Erro monta um ErrorResponse.
func Erro(code, msg string) ErrorResponse {
	return ErrorResponse{Success: false, Code: code, Error: msg}
}
