package domain

import "github.com/shopspring/decimal"

// Money amounts (menu prices, order item prices and totals) are
// decimal.Decimal values. The storefront clients send and expect them as JSON
// numbers, so quoting is switched off for every decimal this process encodes.
// shopspring/decimal only exposes this as a package-level setting.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
