package domain

// NoTeamLead é o identificador usado quando a coluna SM está em branco
const NoTeamLead = "Senza SM"

// ProductCounts contém os pezzi de cada produto ou serviço
type ProductCounts struct {
	Casa            int `json:"casa"`
	Business        int `json:"business"`
	Mobile          int `json:"mobile"`
	ADSL            int `json:"adsl"`
	Fibra           int `json:"fibra"`
	FibraBusiness   int `json:"fibraBusiness"`
	Luce            int `json:"luce"`
	Gas             int `json:"gas"`
	Station         int `json:"station"`
	FastwebMobile   int `json:"fastwebMobile"`
	FastwebCasa     int `json:"fastwebCasa"`
	FastwebBusiness int `json:"fastwebBusiness"`
}

// Total soma todos os produtos
func (p ProductCounts) Total() int {
	return p.Casa + p.Business + p.Mobile +
		p.ADSL + p.Fibra + p.FibraBusiness +
		p.Luce + p.Gas + p.Station +
		p.FastwebMobile + p.FastwebCasa + p.FastwebBusiness
}

func (p ProductCounts) Voce() int {
	return p.Casa + p.Business + p.Mobile
}

func (p ProductCounts) Dati() int {
	return p.ADSL + p.Fibra + p.FibraBusiness
}

func (p ProductCounts) Energia() int {
	return p.Luce + p.Gas
}

// Fastweb soma as linhas Fastweb; o contrato promocional Fastweb Energia fica fora de ProductCounts
func (p ProductCounts) Fastweb() int {
	return p.FastwebMobile + p.FastwebCasa + p.FastwebBusiness
}

// RevenueBreakdown contém o fatturato por categoria.
// Complessivo vem da própria coluna e não é recalculado a partir das categorias.
type RevenueBreakdown struct {
	Voce        float64 `json:"voce"`
	Dati        float64 `json:"dati"`
	Energia     float64 `json:"energia"`
	Fastweb     float64 `json:"fastweb"`
	Complessivo float64 `json:"complessivo"`
}

// ProductTotals são os subtotais derivados de um registro
type ProductTotals struct {
	PezziTotali     int     `json:"pezziTotali"`
	FatturatoTotale float64 `json:"fatturatoTotale"`
	Voce            int     `json:"voce"`
	Dati            int     `json:"dati"`
	Energia         int     `json:"energia"`
	Fastweb         int     `json:"fastweb"`
}

// SalespersonRecord é uma linha normalizada do report
type SalespersonRecord struct {
	Numero         int              `json:"numero"`
	Nome           string           `json:"nome"`
	TeamLead       string           `json:"teamLead"`
	SecondaryOwner string           `json:"secondaryOwner"`
	Distretto      string           `json:"distretto"`
	Ruolo          string           `json:"ruolo"`
	Prodotti       ProductCounts    `json:"prodotti"`
	Fatturato      RevenueBreakdown `json:"fatturato"`
	NuoviClienti   int              `json:"nuoviClienti"`
	FastwebEnergia int              `json:"fastwebEnergia"`
	InflowTotale   float64          `json:"inflowTotale"`
	TotaliProdotti ProductTotals    `json:"totaliProdotti"`
	Row            int              `json:"row"` // Linha de origem na planilha (base 1)
}

// Revenue é o fatturato complessivo usado em ordenações e totais
func (r SalespersonRecord) Revenue() float64 {
	return r.Fatturato.Complessivo
}

// ComputeTotals preenche os subtotais derivados a partir dos campos lidos
func (r *SalespersonRecord) ComputeTotals() {
	r.TotaliProdotti = ProductTotals{
		PezziTotali:     r.Prodotti.Total(),
		FatturatoTotale: r.Fatturato.Complessivo,
		Voce:            r.Prodotti.Voce(),
		Dati:            r.Prodotti.Dati(),
		Energia:         r.Prodotti.Energia(),
		Fastweb:         r.Prodotti.Fastweb() + r.FastwebEnergia,
	}
}
