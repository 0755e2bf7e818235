// Package pricing computes per-ticket fares from a train's base fare and a
// passenger category. It is pure arithmetic: no storage, no side effects.
package pricing

import (
	apperrors "railbook/pkg/errors"
	"railbook/pkg/model"
)

// Price returns the fare charged for one ticket of the given category, in
// paise, rounded half-up to the paise. The unit fare is snapshotted onto the
// booking line item, so this is the amount later refunds are computed from.
func Price(baseFarePaise int64, category model.PassengerCategory) (int64, error) {
	if baseFarePaise < 0 {
		return 0, apperrors.InvalidFare("base fare cannot be negative")
	}
	if !category.Valid() {
		return 0, apperrors.InvalidInput("unknown passenger category: " + category.String())
	}

	payablePercent := 100 - category.DiscountPercent()
	return (baseFarePaise*payablePercent + 50) / 100, nil
}

// Quote prices every category of a request against one base fare and returns
// the line items in stable category order plus the total cost.
func Quote(baseFarePaise int64, passengers map[model.PassengerCategory]int) ([]model.BookingLineItem, int64, error) {
	var items []model.BookingLineItem
	var total int64

	for _, category := range model.Categories() {
		quantity := passengers[category]
		if quantity <= 0 {
			continue
		}

		unitFare, err := Price(baseFarePaise, category)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, model.BookingLineItem{
			Category:       category,
			QuantityBooked: quantity,
			QuantityActive: quantity,
			UnitFarePaise:  unitFare,
		})
		total += unitFare * int64(quantity)
	}

	return items, total, nil
}
