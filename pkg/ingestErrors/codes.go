package ingestErrors

import (
	"errors"
)

// Códigos de erro da ingestão
const (
	// Erros de arquivo (fatais)
	ErrInvalidFilenameFormat = "ING_001" // Nome do arquivo sem token YYYY.MM.DD
	ErrEmptyWorkbook         = "ING_002" // Planilha sem abas
	ErrUnreadableBinary      = "ING_003" // Conteúdo ilegível ou formato não suportado
	ErrInvalidColumnMap      = "ING_004" // Mapa de colunas inválido

	// Erros de linha (recuperáveis)
	ErrRowParseFailure = "ROW_001" // Linha ignorada durante a leitura

	// Erros internos
	ErrInternal = "SRV_001" // Erro interno
)

// Mapeamento de códigos de erro para o status de saída do processo
var exitStatusMap = map[string]int{
	ErrInvalidFilenameFormat: 2,
	ErrEmptyWorkbook:         3,
	ErrUnreadableBinary:      4,
	ErrInvalidColumnMap:      5,
	ErrRowParseFailure:       0,
	ErrInternal:              1,
}

var messages = map[string]string{
	ErrInvalidFilenameFormat: "Il nome del file deve contenere una data nel formato YYYY.MM.DD",
	ErrEmptyWorkbook:         "Il file non contiene fogli",
	ErrUnreadableBinary:      "Il file non è un foglio di calcolo leggibile",
	ErrInvalidColumnMap:      "Mappatura delle colonne non valida",
	ErrRowParseFailure:       "Riga ignorata",
	ErrInternal:              "Errore interno",
}

// ErrorDetail é o detalhe estruturado anexado a um resultado com falha
type ErrorDetail struct {
	Code    string `json:"code"`              // Código de erro
	Message string `json:"message,omitempty"` // Mensagem para o usuário
	Cause   string `json:"cause,omitempty"`   // Erro original
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// Coded é implementado pelos erros que carregam um código
type Coded interface {
	error
	ErrorCode() string
}

// ExitStatus retorna o status de saída para o código
func ExitStatus(code string) int {
	status, exists := exitStatusMap[code]
	if !exists {
		return exitStatusMap[ErrInternal]
	}
	return status
}

// Message retorna a mensagem padrão do código
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[ErrInternal]
}

// CodeOf extrai o código de um erro, ou ErrInternal quando não houver
func CodeOf(err error) string {
	var coded Coded
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return ErrInternal
}

// FromError cria o detalhe de erro a partir de um erro Go
func FromError(err error, details any) ErrorDetail {
	if err == nil {
		return ErrorDetail{
			Code:    ErrInternal,
			Message: "Errore sconosciuto",
		}
	}

	code := CodeOf(err)
	return ErrorDetail{
		Code:    code,
		Message: Message(code),
		Cause:   err.Error(),
		Details: details,
	}
}
