// Package columns resolve campos lógicos em posições de coluna da planilha.
package columns

import (
	"errors"
	"fmt"
)

// maxLabelLen limita o tamanho do rótulo para que o índice caiba em um int
const maxLabelLen = 7

var ErrInvalidLabel = errors.New("invalid column label")

// ToIndex converte um rótulo de coluna (A, Z, AA, ...) em índice base zero
func ToIndex(label string) (int, error) {
	if label == "" || len(label) > maxLabelLen {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}

	n := 0
	for _, r := range label {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
		}
		n = n*26 + int(r-'A'+1)
	}

	return n - 1, nil
}

// ToLabel converte um índice base zero no rótulo da coluna (0→A, 25→Z, 26→AA)
func ToLabel(index int) string {
	if index < 0 {
		return ""
	}

	label := ""
	for n := index; n >= 0; n = n/26 - 1 {
		label = string(rune('A'+n%26)) + label
	}
	return label
}
