package columns

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalidColumnMap = errors.New("invalid column map")

// defaultLayout é o layout do report mensile
var defaultLayout = map[Field]string{
	FieldNumero:           "A",
	FieldAgente:           "B",
	FieldSM:               "C",
	FieldResponsabile:     "D",
	FieldDistretto:        "E",
	FieldRuolo:            "F",
	FieldCasa:             "G",
	FieldBusiness:         "H",
	FieldMobile:           "I",
	FieldADSL:             "J",
	FieldFibra:            "K",
	FieldFibraBusiness:    "L",
	FieldLuce:             "M",
	FieldGas:              "N",
	FieldStation:          "O",
	FieldFastwebMobile:    "P",
	FieldFastwebCasa:      "Q",
	FieldFastwebBusiness:  "R",
	FieldFastwebEnergia:   "S",
	FieldNuoviClienti:     "T",
	FieldFatturatoVoce:    "U",
	FieldFatturatoDati:    "V",
	FieldFatturatoEnergia: "W",
	FieldFatturatoFastweb: "X",
	FieldFatturatoRush:    "Y",
	FieldInflowTotale:     "Z",
}

// ColumnMap associa cada campo a exatamente uma coluna. É imutável depois de criado
// e pode ser lido por várias goroutines sem sincronização.
type ColumnMap struct {
	positions [fieldCount]int
}

// Default retorna o layout padrão
func Default() ColumnMap {
	cm, err := New(defaultLayout)
	if err != nil {
		panic(err)
	}
	return cm
}

// New valida o layout: todo campo precisa de uma coluna e nenhuma coluna pode ser repetida
func New(layout map[Field]string) (ColumnMap, error) {
	var cm ColumnMap
	seen := make(map[int]Field, len(layout))
	var missing []string

	for _, f := range Fields() {
		label, ok := layout[f]
		if !ok {
			missing = append(missing, f.String())
			continue
		}

		idx, err := ToIndex(strings.ToUpper(strings.TrimSpace(label)))
		if err != nil {
			return ColumnMap{}, fmt.Errorf("%w: field %s: %v", ErrInvalidColumnMap, f, err)
		}

		if other, dup := seen[idx]; dup {
			return ColumnMap{}, fmt.Errorf("%w: fields %s and %s share column %s", ErrInvalidColumnMap, other, f, ToLabel(idx))
		}

		seen[idx] = f
		cm.positions[f] = idx
	}

	if len(missing) > 0 {
		return ColumnMap{}, fmt.Errorf("%w: missing fields %s", ErrInvalidColumnMap, strings.Join(missing, ", "))
	}

	for f := range layout {
		if !f.Valid() {
			return ColumnMap{}, fmt.Errorf("%w: unknown field %s", ErrInvalidColumnMap, f)
		}
	}

	return cm, nil
}

// WithOverrides aplica substituições por identificador textual sobre o mapa atual
func (cm ColumnMap) WithOverrides(overrides map[string]string) (ColumnMap, error) {
	layout := cm.Layout()

	for key, label := range overrides {
		f, err := ParseField(strings.ToUpper(strings.TrimSpace(key)))
		if err != nil {
			return ColumnMap{}, fmt.Errorf("%w: %v", ErrInvalidColumnMap, err)
		}
		layout[f] = label
	}

	return New(layout)
}

// Position retorna o índice base zero da coluna do campo
func (cm ColumnMap) Position(f Field) int {
	return cm.positions[f]
}

// Label retorna o rótulo da coluna do campo
func (cm ColumnMap) Label(f Field) string {
	return ToLabel(cm.positions[f])
}

// Layout retorna uma cópia do mapeamento em rótulos
func (cm ColumnMap) Layout() map[Field]string {
	layout := make(map[Field]string, fieldCount)
	for _, f := range Fields() {
		layout[f] = cm.Label(f)
	}
	return layout
}

// String lista o mapeamento ordenado por coluna, útil para logs
func (cm ColumnMap) String() string {
	all := Fields()
	sort.Slice(all, func(i, j int) bool {
		return cm.positions[all[i]] < cm.positions[all[j]]
	})

	parts := make([]string, len(all))
	for i, f := range all {
		parts[i] = fmt.Sprintf("%s=%s", f, cm.Label(f))
	}
	return strings.Join(parts, " ")
}

type layoutFile struct {
	Columns map[string]string `toml:"columns"`
}

// LoadFile lê substituições de um arquivo TOML sobre o layout padrão:
//
//	[columns]
//	FATTURATO_RUSH = "Y"
func LoadFile(path string) (ColumnMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ColumnMap{}, fmt.Errorf("read column map %s: %w", path, err)
	}

	var file layoutFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return ColumnMap{}, fmt.Errorf("%w: %s: %v", ErrInvalidColumnMap, path, err)
	}

	return Default().WithOverrides(file.Columns)
}
