package model

import "testing"

func TestCanTransitionTo(t *testing.T) {
	all := []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}
	allowed := map[BookingStatus]map[BookingStatus]bool{
		BookingPending:   {BookingConfirmed: true, BookingCancelled: true},
		BookingConfirmed: {BookingCancelled: true, BookingCompleted: true},
		BookingCancelled: {},
		BookingCompleted: {},
	}
	for _, from := range all {
		for _, to := range all {
			want := allowed[from][to]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("%s -> %s = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminal(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{BookingPending, false},
		{BookingConfirmed, false},
		{BookingCancelled, true},
		{BookingCompleted, true},
	}
	for _, tc := range cases {
		if got := tc.status.Terminal(); got != tc.want {
			t.Errorf("%s.Terminal() = %v, want %v", tc.status, got, tc.want)
		}
	}
}

func TestUnknownStatusHasNoTransitions(t *testing.T) {
	bogus := BookingStatus("ON_HOLD")
	for _, to := range []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted} {
		if bogus.CanTransitionTo(to) {
			t.Errorf("unknown status allowed transition to %s", to)
		}
	}
}
