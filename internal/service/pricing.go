package service

import "github.com/iliyamo/hotel-room-booking/internal/model"

// Occupancy surcharge rates in percent of the base fare.  Once the
// combined guest count crosses the bed type's threshold, each adult
// beyond the threshold adds 40% and every child adds 20% (all
// children, not only the ones past the threshold).  The adult term uses
// numAdults-threshold as-is, which can go negative when children alone
// push the count past the threshold; that asymmetry is part of the
// pricing contract and is kept.
const (
	extraAdultPct = 40
	childPct      = 20
)

// ComputePriceCents prices a stay.  baseFareCents must be positive,
// numAdults at least one and numChildren non-negative.  When
// numAdults+numChildren stays within the bed type's threshold the price
// is exactly the base fare; otherwise the occupancy surcharge described
// above is added.  Amounts are integer cents; the percentage terms
// round half away from zero to the nearest cent.
//
// The function has no side effects and is safe for concurrent use.
func ComputePriceCents(baseFareCents int64, bedType model.BedType, numAdults, numChildren int) (int64, error) {
	if numAdults < 1 || numChildren < 0 {
		return 0, ErrInvalidOccupancy
	}
	threshold, ok := bedType.Threshold()
	if !ok {
		return 0, ErrUnknownBedType
	}
	if numAdults+numChildren <= threshold {
		return baseFareCents, nil
	}
	additional := pctCents(baseFareCents, extraAdultPct, numAdults-threshold) +
		pctCents(baseFareCents, childPct, numChildren)
	return baseFareCents + additional, nil
}

// pctCents computes base * pct% * count in cents, rounding half away
// from zero.  count may be negative.
func pctCents(baseCents int64, pct int, count int) int64 {
	n := baseCents * int64(pct) * int64(count)
	if n >= 0 {
		return (n + 50) / 100
	}
	return (n - 50) / 100
}
