package ingesting

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-performance-ingest/internal/domain"
)

// totalsAccumulator soma valores monetários em decimal para não acumular erro de ponto flutuante
type totalsAccumulator struct {
	revenue        decimal.Decimal
	inflow         decimal.Decimal
	newClients     int
	promoContracts int
	productUnits   int
	agents         int
}

func (a *totalsAccumulator) add(r domain.SalespersonRecord) {
	a.revenue = a.revenue.Add(decimal.NewFromFloat(r.Revenue()))
	a.inflow = a.inflow.Add(decimal.NewFromFloat(r.InflowTotale))
	a.newClients += r.NuoviClienti
	a.promoContracts += r.FastwebEnergia
	a.productUnits += r.TotaliProdotti.PezziTotali
	a.agents++
}

func (a *totalsAccumulator) totals() domain.Totals {
	return domain.Totals{
		Revenue:        a.revenue.InexactFloat64(),
		Inflow:         a.inflow.InexactFloat64(),
		NewClients:     a.newClients,
		PromoContracts: a.promoContracts,
		ProductUnits:   a.productUnits,
		Agents:         a.agents,
	}
}

// Aggregate agrupa os registros por SM, na ordem em que aparecem, e calcula o consolidado.
// Membros e grupos saem ordenados por fatturato decrescente; empates mantêm a ordem de leitura.
func Aggregate(records []domain.SalespersonRecord) ([]domain.TeamLeadAggregate, domain.GrandTotals) {
	type group struct {
		members []domain.SalespersonRecord
		acc     totalsAccumulator
	}

	var order []string
	groups := make(map[string]*group)

	for _, r := range records {
		key := r.TeamLead
		if key == "" {
			key = domain.NoTeamLead
		}

		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}

		g.members = append(g.members, r)
		g.acc.add(r)
	}

	aggregates := make([]domain.TeamLeadAggregate, 0, len(order))
	for _, key := range order {
		g := groups[key]
		SortByRevenue(g.members)
		aggregates = append(aggregates, domain.TeamLeadAggregate{
			TeamLead: key,
			Members:  g.members,
			Totals:   g.acc.totals(),
		})
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].Totals.Revenue > aggregates[j].Totals.Revenue
	})

	var grand totalsAccumulator
	for _, r := range records {
		grand.add(r)
	}

	return aggregates, domain.GrandTotals{
		Totals:    grand.totals(),
		TeamLeads: len(aggregates),
	}
}

// SortByRevenue ordena por fatturato complessivo decrescente, mantendo a ordem dos empates
func SortByRevenue(records []domain.SalespersonRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Revenue() > records[j].Revenue()
	})
}
