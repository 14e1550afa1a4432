package booking

import "beautyspace/internal/domain/loyalty"

// Quote is the price breakdown for a candidate booking.
type Quote struct {
	Hours           int64
	ListPrice       int64
	DiscountPercent int
	FinalPrice      int64
}

// NewQuote prices a period at the workspace hourly rate, then applies the
// caller's loyalty discount. The discount is applied to the total, rounded
// half-up once.
func NewQuote(period Period, pricePerHour int64, tier loyalty.Tier) Quote {
	hours := period.Hours()
	list := hours * pricePerHour
	return Quote{
		Hours:           hours,
		ListPrice:       list,
		DiscountPercent: tier.DiscountPercent,
		FinalPrice:      loyalty.Discounted(list, tier.DiscountPercent),
	}
}

// AwardedPoints is the loyalty accrual for this quote: 1 point per 100 of the
// discounted price.
func (q Quote) AwardedPoints() int {
	return loyalty.PointsForSpend(q.FinalPrice)
}
