// Package period extrai o período de referência do nome do arquivo enviado.
package period

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/vfg2006/sales-performance-ingest/internal/domain"
	"github.com/vfg2006/sales-performance-ingest/pkg/utils"
)

var ErrInvalidFilenameFormat = errors.New("filename has no YYYY.MM.DD date token")

var dateToken = regexp.MustCompile(`(\d{4})\.(\d{2})\.(\d{2})`)

// Extract procura o primeiro token YYYY.MM.DD válido no nome do arquivo
func Extract(filename string) (domain.ReportingPeriod, error) {
	base := filepath.Base(filename)

	for _, m := range dateToken.FindAllStringSubmatch(base, -1) {
		if p, ok := fromToken(m[1], m[2], m[3]); ok {
			return p, nil
		}
	}

	return domain.ReportingPeriod{}, fmt.Errorf("%w: %q", ErrInvalidFilenameFormat, base)
}

func fromToken(y, m, d string) (domain.ReportingPeriod, bool) {
	// ParseDate rejeita datas inexistentes como 2024-02-30
	if _, err := utils.ParseDate(fmt.Sprintf("%s-%s-%s", y, m, d)); err != nil {
		return domain.ReportingPeriod{}, false
	}

	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(m)
	day, _ := strconv.Atoi(d)

	return domain.ReportingPeriod{
		Year:  year,
		Month: month,
		Day:   day,
		Key:   fmt.Sprintf("%04d-%02d", year, month),
		Label: fmt.Sprintf("%02d/%04d", month, year),
	}, true
}

// SortFilenames ordena do período mais recente para o mais antigo.
// Nomes sem data vão para o final, em ordem alfabética decrescente.
func SortFilenames(names []string) []string {
	type entry struct {
		name   string
		period domain.ReportingPeriod
		ok     bool
	}

	entries := make([]entry, len(names))
	for i, n := range names {
		p, err := Extract(n)
		entries[i] = entry{name: n, period: p, ok: err == nil}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch {
		case a.ok && b.ok:
			if a.period != b.period {
				return a.period.After(b.period)
			}
			return a.name > b.name
		case a.ok != b.ok:
			return a.ok
		default:
			return a.name > b.name
		}
	})

	sorted := make([]string, len(entries))
	for i, e := range entries {
		sorted[i] = e.name
	}
	return sorted
}
