// Package reportv1 holds the JSON shapes of the report HTTP API. Field names
// are part of the contract with the CRM front end.
package reportv1

// InventoryItem is one stock line of the inventory statistics.
type InventoryItem struct {
	Warehouse      string  `json:"magazzino"`
	Code           string  `json:"codice"`
	Category       string  `json:"categoria"`
	Brand          string  `json:"marca"`
	Type           string  `json:"tipologia"`
	Model          string  `json:"modello"`
	Color          string  `json:"colore"`
	Size           string  `json:"taglia"`
	Quantity       float64 `json:"quantita"`
	Supplier       string  `json:"fornitore"`
	PurchasePrice  float64 `json:"prezzoAcquisto"`
	TagPrice       float64 `json:"prezzoCartellino"`
	SuggestedPrice float64 `json:"prezzoSuggerito"`
	AffiliatePrice float64 `json:"prezzoAffiliato"`
}

// SalesItem is one sold or rented line item. Purchase prices carry -999 when
// the code was never loaded in and -1 when the stored price is unreadable.
type SalesItem struct {
	AppointmentDate string  `json:"DataAppuntamento"`
	Atelier         string  `json:"Atelier"`
	Employee        string  `json:"Dipendente"`
	Client          string  `json:"Cliente"`
	WeddingDate     string  `json:"DataMatrimonio"`
	Category        string  `json:"Categoria"`
	Model           string  `json:"Modello"`
	Brand           string  `json:"Marca"`
	Type            string  `json:"Tipologia"`
	Size            string  `json:"Taglia"`
	Quantity        float64 `json:"Quantita"`
	Kind            string  `json:"Vendita/Noleggio"`
	Color           string  `json:"Colore"`
	Code            string  `json:"Codice_Prodotto"`
	SalePrice       float64 `json:"Prezzo_Vendita"`
	Supplier        string  `json:"Fornitore"`
	PurchasePrice   float64 `json:"PrezzoAcquisto"`
	TagPrice        float64 `json:"PrezzoCartellino"`
	SuggestedPrice  float64 `json:"PrezzoSuggerito"`
	AffiliatePrice  float64 `json:"PrezzoAffiliato"`
}

type Warehouse struct {
	ID       string `json:"_id"`
	Name     string `json:"nome"`
	Location string `json:"ubicazione"`
}

type InventoryResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []InventoryItem `json:"data"`
}

type SalesResponse struct {
	Success bool        `json:"success"`
	Count   int         `json:"count"`
	Data    []SalesItem `json:"data"`
}

type WarehousesResponse struct {
	Success bool        `json:"success"`
	Data    []Warehouse `json:"data"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type StatusResponse struct {
	Status      string            `json:"status"`
	Message     string            `json:"message"`
	Environment string            `json:"environment"`
	Database    string            `json:"database"`
	Endpoints   map[string]string `json:"endpoints"`
}
