// Package normalize converte células brutas em valores tipados.
//
// Valores numéricos inválidos viram zero sem erro: campos comerciais opcionais ficam
// em branco por meses inteiros. O campo Coerced permite auditar quando isso acontece.
package normalize

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-performance-ingest/internal/workbook"
)

// Kind é o tipo esperado para o valor normalizado
type Kind int

const (
	Auto Kind = iota
	Number
	String
)

// Value é o resultado da normalização
type Value struct {
	IsNumber bool
	Number   float64
	Text     string
	// Coerced indica que havia conteúdo não vazio que não pôde ser lido como número
	Coerced bool
}

// Cell devolve o valor como célula bruta, para reaplicar a normalização
func (v Value) Cell() workbook.Cell {
	if v.IsNumber {
		return workbook.NumberCell(v.Number)
	}
	return workbook.TextCell(v.Text)
}

// Normalize aplica a política de conversão do tipo esperado
func Normalize(c workbook.Cell, kind Kind) Value {
	switch kind {
	case Number:
		n, coerced := toNumber(c)
		return Value{IsNumber: true, Number: n, Coerced: coerced}
	case String:
		return Value{Text: ToString(c)}
	default:
		if c.Kind == workbook.CellNumber {
			return Value{IsNumber: true, Number: finite(c.Number)}
		}
		return Value{Text: ToString(c)}
	}
}

// ToNumber converte a célula em número; conteúdo ilegível retorna zero
func ToNumber(c workbook.Cell) float64 {
	n, _ := toNumber(c)
	return n
}

// ToString converte a célula em texto sem espaços nas pontas
func ToString(c workbook.Cell) string {
	return strings.TrimSpace(c.String())
}

func toNumber(c workbook.Cell) (float64, bool) {
	switch c.Kind {
	case workbook.CellNumber:
		return finite(c.Number), false
	case workbook.CellText:
		cleaned := cleanNumeric(c.Text)
		if cleaned == "" {
			return 0, strings.TrimSpace(c.Text) != ""
		}

		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return 0, true
		}

		// dígitos demais para float64 viram ±Inf
		f := d.InexactFloat64()
		if math.IsInf(f, 0) {
			return 0, true
		}
		return f, false
	default:
		return 0, false
	}
}

// cleanNumeric mantém apenas dígitos, '.', ',' e '-' e resolve separadores no padrão italiano
func cleanNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == ',' || r == '-' {
			b.WriteRune(r)
		}
	}
	return resolveSeparators(b.String())
}

// resolveSeparators transforma o texto em um decimal com ponto.
//   - "1.234,56": o último separador é o decimal, os demais são de milhar
//   - "12,5": vírgula decimal
//   - "1.234" / "1.234.567": ponto de milhar quando seguido de grupos de exatamente três dígitos
func resolveSeparators(s string) string {
	lastDot := strings.LastIndex(s, ".")
	lastComma := strings.LastIndex(s, ",")

	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			return strings.Replace(strings.ReplaceAll(s, ".", ""), ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return strings.ReplaceAll(s, ",", "")
		}
		return strings.Replace(s, ",", ".", 1)
	case lastDot >= 0:
		if strings.Count(s, ".") > 1 || isThousandsGroup(s, lastDot) {
			return strings.ReplaceAll(s, ".", "")
		}
		return s
	default:
		return s
	}
}

// isThousandsGroup trata "1.234" como milhar, mas mantém "0.125" e "12.5" como decimais
func isThousandsGroup(s string, dot int) bool {
	intPart := strings.TrimPrefix(s[:dot], "-")
	fracPart := s[dot+1:]
	return len(fracPart) == 3 && intPart != "" && intPart != "0" && len(intPart) <= 3
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
