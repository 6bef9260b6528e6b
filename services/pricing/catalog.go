// Package pricing holds the static service catalog and the item-mode price
// calculator. Prices are whole pounds and include collection, disposal and VAT.
package pricing

import "clearbook/models"

// MinimumCharge is the floor applied to item-based totals.
const MinimumCharge = 65

// Services is the volume-tier catalog.
var Services = []models.ServiceOption{
	{
		ID:          "single-item",
		Name:        "Single Item",
		Price:       65,
		Description: "Perfect for individual items like mattress or washing machine",
		Features:    []string{"Individual item collection", "Same day available", "DBS checked staff", "Fully insured"},
	},
	{
		ID:          "1-yard",
		Name:        "1-Yard",
		Price:       99,
		Description: "Similar to 5 bin bags, washing machine, or wheelie bin",
		Features:    []string{"Max Volume: 1 yd", "Max Weight: 50kg", "Max Labour: 10 minutes", "Fast collection"},
	},
	{
		ID:          "2-yard",
		Name:        "2-Yard",
		Price:       139,
		Description: "Similar to 10 bin bags, 2-seater sofa, or 2 wheelie bins",
		Features:    []string{"Max Volume: 2 yd", "Max Weight: 70kg", "Max Labour: 10 minutes", "Labour included"},
	},
	{
		ID:          "4-yard",
		Name:        "4-Yard",
		Price:       199,
		Description: "Similar to 20 bin bags, 3-seater sofa + chair, or 4 wheelie bins",
		Features:    []string{"Max Volume: 4 yd", "Max Weight: 300kg", "Max Labour: 30 minutes", "Professional team"},
	},
	{
		ID:          "7-yard",
		Name:        "7-Yard",
		Price:       269,
		Description: "Similar to 35 bin bags, 7 wheelie bins, or 2 x 3-seater sofas + chair",
		Features:    []string{"Max Volume: 7 yd", "Max Weight: 575kg", "Max Labour: 50 minutes", "DBS checked staff"},
	},
}

// ItemPricing is the per-item price list, grouped for display.
var ItemPricing = []models.ItemCategory{
	{Category: "Furniture & Beds", Items: []models.PricedItem{
		{Name: "Armchair / Office Chair", Price: 41},
		{Name: "2-Seater Sofa", Price: 51},
		{Name: "3-Seater Sofa", Price: 65},
		{Name: "Corner Sofa", Price: 115},
		{Name: "Sofa Bed", Price: 72},
		{Name: "Single Bed Base/Frame", Price: 35},
		{Name: "Double/Kingsize Bed Base/Frame", Price: 38},
		{Name: "Single Mattress", Price: 22},
		{Name: "Double Mattress", Price: 26},
		{Name: "Kingsize Mattress", Price: 30},
	}},
	{Category: "Appliances", Items: []models.PricedItem{
		{Name: "Washing Machine / Dryer / Dishwasher", Price: 27},
		{Name: "Cooker", Price: 27},
		{Name: "Domestic Fridge/Freezer", Price: 42},
		{Name: "TV", Price: 22},
	}},
	{Category: "General Items", Items: []models.PricedItem{
		{Name: "Bag of Junk", Price: 12},
		{Name: "Extra Labour (10 mins)", Price: 20},
	}},
	{Category: "Service Charges", Items: []models.PricedItem{
		{Name: "Single Item Call Out Charge", Price: 65},
	}},
}

// ServiceByID looks up a volume tier from the catalog.
func ServiceByID(id string) (models.ServiceOption, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return models.ServiceOption{}, false
}
