package service

import (
	"testing"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestComputePriceCents(t *testing.T) {
	cases := []struct {
		name     string
		base     int64
		bed      model.BedType
		adults   int
		children int
		want     int64
	}{
		{"double at threshold", 10000, model.BedDouble, 2, 0, 10000},
		{"double one extra adult", 10000, model.BedDouble, 3, 0, 14000},
		{"king one extra adult one child", 20000, model.BedKing, 5, 1, 32000},
		{"single children only surcharge", 15000, model.BedSingle, 1, 2, 21000},

		{"single at threshold", 15000, model.BedSingle, 1, 0, 15000},
		{"king at threshold", 20000, model.BedKing, 4, 0, 20000},
		{"king mixed at threshold", 20000, model.BedKing, 2, 2, 20000},
		{"double two extra adults", 10000, model.BedDouble, 4, 0, 18000},

		// One adult with three children on a double: the adult term is
		// 40% * (1-2) = -40%, the child term 20% * 3 = +60%.
		{"double negative adult term", 10000, model.BedDouble, 1, 3, 12000},
		{"king deep negative adult term", 10000, model.BedKing, 1, 4, 6000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputePriceCents(tc.base, tc.bed, tc.adults, tc.children)
			if err != nil {
				t.Fatalf("ComputePriceCents: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputePriceCentsErrors(t *testing.T) {
	if _, err := ComputePriceCents(10000, model.BedDouble, 0, 0); err != ErrInvalidOccupancy {
		t.Fatalf("zero adults: got %v, want ErrInvalidOccupancy", err)
	}
	if _, err := ComputePriceCents(10000, model.BedDouble, 2, -1); err != ErrInvalidOccupancy {
		t.Fatalf("negative children: got %v, want ErrInvalidOccupancy", err)
	}
	if _, err := ComputePriceCents(10000, model.BedType("WATERBED"), 2, 0); err != ErrUnknownBedType {
		t.Fatalf("unknown bed type: got %v, want ErrUnknownBedType", err)
	}
}

func TestPctCentsRounding(t *testing.T) {
	// 1234 * 40% = 493.6, rounds to 494; the negated term mirrors it.
	if got := pctCents(1234, 40, 1); got != 494 {
		t.Fatalf("positive rounding: got %d, want 494", got)
	}
	if got := pctCents(1234, 40, -1); got != -494 {
		t.Fatalf("negative rounding: got %d, want -494", got)
	}
	if got := pctCents(1234, 40, 0); got != 0 {
		t.Fatalf("zero count: got %d, want 0", got)
	}
}
