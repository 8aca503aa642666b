package model

const (
	// Placeholder is shown when a descriptive reference is missing.
	Placeholder = "Non specificato"
	// UnnamedWarehouse is shown for warehouses without a name.
	UnnamedWarehouse = "Senza nome"

	// NoPurchaseContext marks sales purchase prices for codes that were never loaded in.
	NoPurchaseContext float64 = -999
	// UnusablePrice marks a purchase price whose stored value cannot be read as a number.
	UnusablePrice float64 = -1

	LabelSold   = "Venduto"
	LabelRented = "Noleggiato"

	// RentedStatus is the line item status code of a rental.
	RentedStatus = "2"
)

type PriceSet struct {
	Purchase  float64
	Tag       float64
	Suggested float64
	Affiliate float64
}

type InventoryFilter struct {
	// WarehouseID is a hex object id; empty means every warehouse.
	WarehouseID string
}

func (f InventoryFilter) All() bool { return f.WarehouseID == "" }

type InventoryRow struct {
	Warehouse string
	Code      string
	Category  string
	Brand     string
	Type      string
	Model     string
	Color     string
	Size      string
	Quantity  float64
	Supplier  string
	Prices    PriceSet
}

// TotalValue is the stock value at purchase price.
func (r InventoryRow) TotalValue() float64 {
	return r.Quantity * r.Prices.Purchase
}

type SalesFilter struct {
	// Year restricts rows to appointments of that year; zero means every year.
	Year int
}

func (f SalesFilter) All() bool { return f.Year == 0 }

type SalesRow struct {
	AppointmentDate string
	Atelier         string
	Employee        string
	Client          string
	WeddingDate     string
	Category        string
	Model           string
	Brand           string
	Type            string
	Size            string
	Quantity        float64
	// Kind is LabelSold or LabelRented.
	Kind      string
	Color     string
	Code      string
	SalePrice float64
	Supplier  string
	// Purchase holds NoPurchaseContext or UnusablePrice sentinels when no real price is known.
	Purchase PriceSet
}

type Warehouse struct {
	ID       string
	Name     string
	Location string
}

// Collections names every collection the reports read.
type Collections struct {
	Stock         string
	Product       string
	Category      string
	Brand         string
	Type          string
	Model         string
	Color         string
	Size          string
	Warehouse     string
	Supplier      string
	LoadRecord    string
	Client        string
	Appointment   string
	Atelier       string
	Employee      string
	ClientProduct string
}
