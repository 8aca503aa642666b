package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

// allValue selects every warehouse or every year.
const allValue = "all"

// InventoryFilterFromQuery reads the magazzino query value. Id validation is
// left to the service.
func InventoryFilterFromQuery(warehouse string) model.InventoryFilter {
	warehouse = strings.TrimSpace(warehouse)
	if warehouse == "" || warehouse == allValue {
		return model.InventoryFilter{}
	}
	return model.InventoryFilter{WarehouseID: warehouse}
}

// SalesFilterFromQuery reads the anno query value.
func SalesFilterFromQuery(year string) (model.SalesFilter, error) {
	year = strings.TrimSpace(year)
	if year == "" || year == allValue {
		return model.SalesFilter{}, nil
	}

	y, err := strconv.Atoi(year)
	if err != nil {
		return model.SalesFilter{}, errors.Join(model.ErrInvalidArgument, fmt.Errorf("year %q is not a number", year))
	}
	return model.SalesFilter{Year: y}, nil
}
