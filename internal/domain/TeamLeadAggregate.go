package domain

// Totals são os somatórios de um grupo de registros
type Totals struct {
	Revenue        float64 `json:"revenue"`
	Inflow         float64 `json:"inflow"`
	NewClients     int     `json:"newClients"`
	PromoContracts int     `json:"promoContracts"`
	ProductUnits   int     `json:"productUnits"`
	Agents         int     `json:"agents"`
}

// TeamLeadAggregate agrupa os registros de um mesmo SM
type TeamLeadAggregate struct {
	TeamLead string              `json:"teamLead"`
	Members  []SalespersonRecord `json:"members"`
	Totals   Totals              `json:"totals"`
}

// GrandTotals é o consolidado de todos os registros válidos do arquivo
type GrandTotals struct {
	Totals
	TeamLeads int `json:"teamLeads"`
}
