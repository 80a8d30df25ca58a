package columns

import "fmt"

// Field identifica um campo lógico lido da planilha
type Field int

const (
	FieldNumero Field = iota
	FieldAgente
	FieldSM
	FieldResponsabile
	FieldDistretto
	FieldRuolo

	// Pezzi por produto
	FieldCasa
	FieldBusiness
	FieldMobile
	FieldADSL
	FieldFibra
	FieldFibraBusiness
	FieldLuce
	FieldGas
	FieldStation
	FieldFastwebMobile
	FieldFastwebCasa
	FieldFastwebBusiness

	FieldFastwebEnergia
	FieldNuoviClienti

	// Fatturato por categoria
	FieldFatturatoVoce
	FieldFatturatoDati
	FieldFatturatoEnergia
	FieldFatturatoFastweb
	FieldFatturatoRush

	FieldInflowTotale

	fieldCount
)

// FieldCount é o número de campos conhecidos
const FieldCount = int(fieldCount)

type fieldInfo struct {
	key         string
	description string
}

var fields = [fieldCount]fieldInfo{
	FieldNumero:           {"NUMERO", "Numero progressivo"},
	FieldAgente:           {"AGENTE", "Nome/Cognome dell'agente"},
	FieldSM:               {"SM", "Sales Manager / Coordinatore"},
	FieldResponsabile:     {"RESPONSABILE", "Responsabile secondario"},
	FieldDistretto:        {"DISTRETTO", "Distretto"},
	FieldRuolo:            {"RUOLO", "Ruolo / categoria"},
	FieldCasa:             {"CASA", "Contratti Casa/Fisso"},
	FieldBusiness:         {"BUSINESS", "Contratti Business"},
	FieldMobile:           {"MOBILE", "Contratti Mobile"},
	FieldADSL:             {"ADSL", "Contratti ADSL"},
	FieldFibra:            {"FIBRA", "Contratti Fibra"},
	FieldFibraBusiness:    {"FIBRA_BUSINESS", "Contratti Fibra Business"},
	FieldLuce:             {"LUCE", "Contratti Luce"},
	FieldGas:              {"GAS", "Contratti Gas"},
	FieldStation:          {"STATION", "Contratti via Station"},
	FieldFastwebMobile:    {"FASTWEB_MOBILE", "Contratti Fastweb Mobile"},
	FieldFastwebCasa:      {"FASTWEB_CASA", "Contratti Fastweb Casa"},
	FieldFastwebBusiness:  {"FASTWEB_BUSINESS", "Contratti Fastweb Business"},
	FieldFastwebEnergia:   {"FASTWEB_ENERGIA", "Contratti Fastweb Energia"},
	FieldNuoviClienti:     {"NUOVI_CLIENTI", "Nuovi Clienti acquisiti"},
	FieldFatturatoVoce:    {"FATTURATO_VOCE", "Fatturato prodotti voce"},
	FieldFatturatoDati:    {"FATTURATO_DATI", "Fatturato prodotti dati"},
	FieldFatturatoEnergia: {"FATTURATO_ENERGIA", "Fatturato prodotti energia"},
	FieldFatturatoFastweb: {"FATTURATO_FASTWEB", "Fatturato prodotti Fastweb"},
	FieldFatturatoRush:    {"FATTURATO_RUSH", "Fatturato complessivo (Rush)"},
	FieldInflowTotale:     {"INFLOW_TOTALE", "Inflow totale"},
}

var fieldsByKey = func() map[string]Field {
	m := make(map[string]Field, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		m[fields[f].key] = f
	}
	return m
}()

// Fields retorna todos os campos em ordem de declaração
func Fields() []Field {
	all := make([]Field, fieldCount)
	for i := range all {
		all[i] = Field(i)
	}
	return all
}

// ParseField resolve o identificador textual (ex.: FATTURATO_RUSH)
func ParseField(key string) (Field, error) {
	f, ok := fieldsByKey[key]
	if !ok {
		return 0, fmt.Errorf("unknown field %q", key)
	}
	return f, nil
}

func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fields[f].key
}

// Description é o texto exibido nos diagnósticos
func (f Field) Description() string {
	if !f.Valid() {
		return ""
	}
	return fields[f].description
}
