package service

// SalePrice applies the percentage discount first and the flat discount after.
// Results below zero are kept.
func SalePrice(base, percent, flat float64) float64 {
	return (base - base*(percent/100)) - flat
}
