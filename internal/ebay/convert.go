package ebay

import (
	"strconv"

	domain "github.com/calegrey/relister/pkg/types"
)

// ToComps converts Browse API item summaries into price comps. Items
// whose price fails to parse are dropped rather than erroring; a missing
// shipping option leaves ShippingCost nil.
func ToComps(items []ItemSummary) []domain.PriceComp {
	out := make([]domain.PriceComp, 0, len(items))
	for i := range items {
		if comp, ok := toComp(&items[i]); ok {
			out = append(out, comp)
		}
	}
	return out
}

func toComp(item *ItemSummary) (domain.PriceComp, bool) {
	price, err := strconv.ParseFloat(item.Price.Value, 64)
	if err != nil {
		return domain.PriceComp{}, false
	}

	comp := domain.PriceComp{
		Title:     item.Title,
		Price:     price,
		ItemURL:   item.ItemWebURL,
		Condition: item.Condition,
	}

	if len(item.ShippingOptions) > 0 {
		if sc := item.ShippingOptions[0].ShippingCost; sc != nil {
			if cost, err := strconv.ParseFloat(sc.Value, 64); err == nil {
				comp.ShippingCost = &cost
			}
		}
	}

	return comp, true
}
