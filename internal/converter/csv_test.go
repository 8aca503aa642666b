package converter

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

func TestEscapeField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{in: "A;B", want: `"A;B"`},
		{in: `He said "hi"`, want: `"He said ""hi"""`},
		{in: "riga\nnuova", want: "\"riga\nnuova\""},
		{in: " spazi ", want: " spazi "},
		{in: "a,b", want: "a,b"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, escapeField(tt.in))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{in: 1234.5, want: "1234,50"},
		{in: 0, want: "0,00"},
		{in: -1, want: "-1,00"},
		{in: -10, want: "-10,00"},
		{in: 12.345, want: "12,35"},
		{in: 175, want: "175,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.in))
	}
}

func TestFormatQuantity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", formatQuantity(3))
	assert.Equal(t, "2.5", formatQuantity(2.5))
	assert.Equal(t, "1", formatQuantity(1))
}

func TestInventoryCSV(t *testing.T) {
	t.Parallel()

	rows := []model.InventoryRow{
		{
			Warehouse: "Milano",
			Code:      "SP-001",
			Category:  model.Placeholder,
			Brand:     "Marca;Uno",
			Type:      model.Placeholder,
			Model:     model.Placeholder,
			Color:     model.Placeholder,
			Size:      model.Placeholder,
			Quantity:  3,
			Supplier:  model.Placeholder,
			Prices:    model.PriceSet{Purchase: 12.5, Tag: 1234.5},
		},
	}

	out := string(InventoryCSV(rows))
	require.True(t, strings.HasPrefix(out, BOM))

	lines := strings.Split(strings.TrimPrefix(out, BOM), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(inventoryHeader, ";"), lines[0])
	assert.Equal(t,
		`Milano;SP-001;Non specificato;"Marca;Uno";Non specificato;Non specificato;Non specificato;Non specificato;3;Non specificato;12,50;1234,50;0,00;0,00;37,50`,
		lines[1],
	)
	assert.Empty(t, lines[2])
}

func TestInventoryCSVEmpty(t *testing.T) {
	t.Parallel()

	out := string(InventoryCSV(nil))
	assert.Equal(t, BOM+strings.Join(inventoryHeader, ";")+"\n", out)
}

func TestSalesCSV(t *testing.T) {
	t.Parallel()

	rows := []model.SalesRow{
		{
			AppointmentDate: "09/03/2024",
			Atelier:         "Atelier Roma",
			Employee:        "Giulia Verdi",
			Client:          `Anna "Nina" Rossi`,
			WeddingDate:     "09/09/2024",
			Category:        "Abito",
			Model:           "Alba",
			Brand:           "Pronovias",
			Type:            "Sirena",
			Size:            "42",
			Quantity:        1,
			Kind:            model.LabelRented,
			Color:           "Avorio",
			Code:            "ABC",
			SalePrice:       175,
			Supplier:        "Forniture",
			Purchase: model.PriceSet{
				Purchase:  80,
				Tag:       model.UnusablePrice,
				Suggested: model.NoPurchaseContext,
				Affiliate: 0,
			},
		},
		{
			Quantity:  1,
			Kind:      model.LabelSold,
			SalePrice: -10,
			Supplier:  model.Placeholder,
			Purchase: model.PriceSet{
				Purchase:  model.NoPurchaseContext,
				Tag:       model.NoPurchaseContext,
				Suggested: model.NoPurchaseContext,
				Affiliate: model.NoPurchaseContext,
			},
		},
	}

	lines := strings.Split(strings.TrimPrefix(string(SalesCSV(rows)), BOM), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(salesHeader, ";"), lines[0])
	assert.Equal(t,
		`09/03/2024;Atelier Roma;Giulia Verdi;"Anna ""Nina"" Rossi";09/09/2024;Abito;Alba;Pronovias;Sirena;42;1;Noleggiato;Avorio;ABC;175,00;Forniture;80,00;-1,00;N/D;0,00`,
		lines[1],
	)
	assert.Equal(t, ";;;;;;;;;;1;Venduto;;;-10,00;Non specificato;N/D;N/D;N/D;N/D", lines[2])
}

func TestCSVIsIdempotent(t *testing.T) {
	t.Parallel()

	inv := make([]model.InventoryRow, 0, 20)
	sales := make([]model.SalesRow, 0, 20)
	for range 20 {
		inv = append(inv, model.InventoryRow{
			Warehouse: gofakeit.City(),
			Code:      gofakeit.LetterN(8),
			Brand:     gofakeit.Company(),
			Quantity:  float64(gofakeit.IntRange(1, 50)),
			Prices:    model.PriceSet{Purchase: gofakeit.Price(1, 500)},
		})
		sales = append(sales, model.SalesRow{
			Client:    gofakeit.Name(),
			Quantity:  1,
			SalePrice: gofakeit.Price(1, 2000),
			Purchase:  model.PriceSet{Purchase: model.NoPurchaseContext},
		})
	}

	assert.Equal(t, InventoryCSV(inv), InventoryCSV(inv))
	assert.Equal(t, SalesCSV(sales), SalesCSV(sales))
}
