// Package loyalty maps accumulated points to a status tier and the discount
// that tier grants. Status is always a pure function of points; callers
// persist both together after every award.
package loyalty

type Status string

const (
	StatusBronze   Status = "bronze"
	StatusSilver   Status = "silver"
	StatusGold     Status = "gold"
	StatusPlatinum Status = "platinum"
)

func (s Status) String() string {
	return string(s)
}

// Inclusive lower bounds of each tier.
const (
	SilverThreshold   = 750
	GoldThreshold     = 1500
	PlatinumThreshold = 3000
)

const ReviewPoints = 10

type Tier struct {
	Status          Status
	DiscountPercent int
}

func TierFor(points int) Tier {
	switch {
	case points >= PlatinumThreshold:
		return Tier{Status: StatusPlatinum, DiscountPercent: 15}
	case points >= GoldThreshold:
		return Tier{Status: StatusGold, DiscountPercent: 10}
	case points >= SilverThreshold:
		return Tier{Status: StatusSilver, DiscountPercent: 5}
	default:
		return Tier{Status: StatusBronze, DiscountPercent: 0}
	}
}

// PointsToNext reports how many points remain until the next tier, zero at
// the top tier.
func PointsToNext(points int) int {
	switch {
	case points >= PlatinumThreshold:
		return 0
	case points >= GoldThreshold:
		return PlatinumThreshold - points
	case points >= SilverThreshold:
		return GoldThreshold - points
	default:
		return SilverThreshold - points
	}
}

// PointsForSpend accrues 1 point per 100 currency units of the discounted
// price, not the list price.
func PointsForSpend(amount int64) int {
	if amount <= 0 {
		return 0
	}
	return int(amount / 100)
}

func PointsForReview() int {
	return ReviewPoints
}

// Discounted applies a percent discount to the total and rounds half-up to
// the nearest currency unit. Rounding happens once on the total.
func Discounted(listPrice int64, percent int) int64 {
	if percent <= 0 {
		return listPrice
	}
	return (listPrice*int64(100-percent) + 50) / 100
}
