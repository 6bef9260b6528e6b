package pricing

import (
	"testing"

	"clearbook/models"
)

func TestSelectionMinimumCharge(t *testing.T) {
	sel := Selection{}
	sel.UpdateItemQuantity("Bag of Junk", 12, 1)

	if got := sel.Total(); got != MinimumCharge {
		t.Fatalf("Total() = %d, want minimum charge %d", got, MinimumCharge)
	}
	if !sel.MinimumApplied() {
		t.Fatal("MinimumApplied() should be true for a £12 selection")
	}
}

func TestSelectionAboveMinimum(t *testing.T) {
	sel := Selection{}
	sel.UpdateItemQuantity("Corner Sofa", 115, 1)

	if got := sel.Total(); got != 115 {
		t.Fatalf("Total() = %d, want 115", got)
	}
	if sel.MinimumApplied() {
		t.Fatal("MinimumApplied() should be false at £115")
	}
}

func TestSelectionZeroQuantityRemovesEntry(t *testing.T) {
	sel := Selection{}
	sel.UpdateItemQuantity("TV", 22, 1)
	if len(sel) != 1 {
		t.Fatalf("expected one entry, got %d", len(sel))
	}

	sel.UpdateItemQuantity("TV", 22, 0)
	if len(sel) != 0 {
		t.Fatalf("zero quantity should remove the entry, got %v", sel)
	}
	if sel.MinimumApplied() {
		t.Fatal("empty selection should not report the minimum as applied")
	}
	if got := sel.Count(); got != 0 {
		t.Fatalf("Count() = %d, want 0", got)
	}
}

func TestSelectionTotalSumsQuantities(t *testing.T) {
	sel := Selection{}
	sel.UpdateItemQuantity("3-Seater Sofa", 65, 2)
	sel.UpdateItemQuantity("Double Mattress", 26, 1)

	if got := sel.Total(); got != 156 {
		t.Fatalf("Total() = %d, want 156", got)
	}
	if got := sel.Count(); got != 3 {
		t.Fatalf("Count() = %d, want 3", got)
	}
}

func TestItemKeyRoundTrip(t *testing.T) {
	key := ItemKey("Bag of Junk", 12)
	name, price := ParseItemKey(key)
	if name != "Bag of Junk" || price != 12 {
		t.Fatalf("ParseItemKey(%q) = %q, %d", key, name, price)
	}

	// Underscores in the name survive: only the last segment is the price.
	name, price = ParseItemKey("odd_name_40")
	if name != "odd_name" || price != 40 {
		t.Fatalf("ParseItemKey(odd_name_40) = %q, %d", name, price)
	}
}

func TestServiceByID(t *testing.T) {
	svc, ok := ServiceByID("2-yard")
	if !ok {
		t.Fatal("2-yard tier should exist")
	}
	if svc.Price != 139 {
		t.Fatalf("2-yard price = %d, want 139", svc.Price)
	}
	if _, ok := ServiceByID("99-yard"); ok {
		t.Fatal("unknown tier should not resolve")
	}
}

func TestServiceFromSelectionVolume(t *testing.T) {
	tier, _ := ServiceByID("1-yard")
	svc, ok := ServiceFromSelection(models.PricingSelection{
		PricingType:     "volume",
		SelectedService: &tier,
	})
	if !ok {
		t.Fatal("volume handoff with a service should convert")
	}
	if svc.ID != "1-yard" || svc.Price != 99 {
		t.Fatalf("unexpected service: %+v", svc)
	}
}

func TestServiceFromSelectionItems(t *testing.T) {
	svc, ok := ServiceFromSelection(models.PricingSelection{
		PricingType:   "items",
		SelectedItems: map[string]int{ItemKey("Corner Sofa", 115): 1},
	})
	if !ok {
		t.Fatal("item handoff should convert")
	}
	if svc.ID != "custom-items" || svc.Name != "Custom Item Selection" {
		t.Fatalf("unexpected synthetic service: %+v", svc)
	}
	if svc.Price != 115 {
		t.Fatalf("price = %d, want 115", svc.Price)
	}
}

func TestServiceFromSelectionRejectsEmpty(t *testing.T) {
	if _, ok := ServiceFromSelection(models.PricingSelection{PricingType: "volume"}); ok {
		t.Fatal("volume handoff without a service should be rejected")
	}
	if _, ok := ServiceFromSelection(models.PricingSelection{PricingType: "items"}); ok {
		t.Fatal("item handoff without items should be rejected")
	}
	if _, ok := ServiceFromSelection(models.PricingSelection{PricingType: "weight"}); ok {
		t.Fatal("unknown pricing type should be rejected")
	}
}
