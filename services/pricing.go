package services

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Custom-pricing markers a selected-options blob may carry. An item with a
// recognized marker charges the blob's price instead of the catalog price.
const (
	CustomBowl    = "custom-bowl"
	CustomDessert = "custom-dessert"
	CustomGeneric = "custom-generic"
)

// CustomPricing is the tagged variant decoded from an item's options blob.
type CustomPricing struct {
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Complements []string        `json:"complements,omitempty"`
}

// ParseCustomPricing decodes the blob into a CustomPricing, or nil when the
// blob is absent, malformed, carries no recognized marker or states a
// non-positive price. There is no error path: bad data just falls back to
// catalog pricing. The price check matters — the blob is customer-supplied,
// and a negative price here would flow into the order total.
func ParseCustomPricing(blob datatypes.JSON) *CustomPricing {
	if len(blob) == 0 {
		return nil
	}
	var cp CustomPricing
	if err := json.Unmarshal(blob, &cp); err != nil {
		return nil
	}
	if !cp.Price.IsPositive() {
		return nil
	}
	switch cp.Type {
	case CustomBowl, CustomDessert, CustomGeneric:
		return &cp
	}
	return nil
}

// ResolveUnitPrice returns the unit price to charge for an item: the blob's
// stated price for custom-priced items, the catalog price otherwise.
func ResolveUnitPrice(catalogPrice decimal.Decimal, blob datatypes.JSON) decimal.Decimal {
	if cp := ParseCustomPricing(blob); cp != nil {
		return cp.Price
	}
	return catalogPrice
}
