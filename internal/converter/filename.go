package converter

import (
	"strconv"
	"time"
)

const timestampLayout = "2006-01-02T15-04-05"

// InventoryFilename names an inventory export taken at now.
func InventoryFilename(now time.Time) string {
	return "statistiche_crm_" + now.UTC().Format(timestampLayout) + ".csv"
}

// SalesFilename names a sales export; year zero means every year.
func SalesFilename(year int, now time.Time) string {
	suffix := "completo"
	if year != 0 {
		suffix = strconv.Itoa(year)
	}
	return "report_vendite_" + suffix + "_" + now.UTC().Format(timestampLayout) + ".csv"
}
