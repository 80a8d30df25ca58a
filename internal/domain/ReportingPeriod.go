package domain

// ReportingPeriod representa o mês de referência de um arquivo, extraído do nome do arquivo
type ReportingPeriod struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Key   string `json:"key"`   // Chave canônica no formato YYYY-MM
	Label string `json:"label"` // Rótulo de exibição no formato MM/YYYY
}

// After indica se o período é posterior a outro, considerando também o dia
func (p ReportingPeriod) After(other ReportingPeriod) bool {
	if p.Year != other.Year {
		return p.Year > other.Year
	}
	if p.Month != other.Month {
		return p.Month > other.Month
	}
	return p.Day > other.Day
}
