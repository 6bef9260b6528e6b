package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"clearbook/models"
)

// Selection maps a composite item key ("<name>_<price>") to a quantity.
// Entries always hold a quantity of at least 1; setting a quantity to zero
// deletes the entry.
type Selection map[string]int

// ItemKey builds the composite key for an item at a unit price.
func ItemKey(name string, price int) string {
	return fmt.Sprintf("%s_%d", name, price)
}

// ParseItemKey splits a composite key back into name and unit price.
func ParseItemKey(key string) (string, int) {
	idx := strings.LastIndex(key, "_")
	if idx < 0 {
		return key, 0
	}
	price, err := strconv.Atoi(key[idx+1:])
	if err != nil {
		return key, 0
	}
	return key[:idx], price
}

// UpdateItemQuantity sets the quantity for an item, removing the entry when
// the quantity reaches zero.
func (s Selection) UpdateItemQuantity(name string, price int, quantity int) {
	key := ItemKey(name, price)
	if quantity <= 0 {
		delete(s, key)
		return
	}
	s[key] = quantity
}

// Total computes the itemized sum, floored at the minimum charge.
func (s Selection) Total() int {
	total := 0
	for key, quantity := range s {
		_, price := ParseItemKey(key)
		total += price * quantity
	}
	if total < MinimumCharge {
		return MinimumCharge
	}
	return total
}

// Count is the sum of all selected quantities.
func (s Selection) Count() int {
	count := 0
	for _, quantity := range s {
		count += quantity
	}
	return count
}

// MinimumApplied reports whether the floor is in effect for this selection.
func (s Selection) MinimumApplied() bool {
	total := 0
	for key, quantity := range s {
		_, price := ParseItemKey(key)
		total += price * quantity
	}
	return total < MinimumCharge && s.Count() > 0
}

// ServiceFromSelection converts a pricing handoff into the service shape the
// booking draft carries. Volume handoffs pass the chosen tier through;
// item handoffs become a synthetic "Custom Item Selection" service.
func ServiceFromSelection(sel models.PricingSelection) (models.ServiceOption, bool) {
	switch sel.PricingType {
	case "volume":
		if sel.SelectedService == nil {
			return models.ServiceOption{}, false
		}
		svc := *sel.SelectedService
		if sel.CalculatedPrice > 0 {
			svc.Price = sel.CalculatedPrice
		}
		return svc, true
	case "items":
		if len(sel.SelectedItems) == 0 {
			return models.ServiceOption{}, false
		}
		items := Selection(sel.SelectedItems)
		price := sel.CalculatedPrice
		if price == 0 {
			price = items.Total()
		}
		return models.ServiceOption{
			ID:          "custom-items",
			Name:        "Custom Item Selection",
			Price:       price,
			Description: fmt.Sprintf("%d items selected", items.Count()),
			Features:    []string{"Individual item pricing", "Custom selection", "Transparent pricing"},
		}, true
	default:
		return models.ServiceOption{}, false
	}
}
