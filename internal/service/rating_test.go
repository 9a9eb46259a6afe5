package service

import (
	"reflect"
	"testing"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestMeanRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    *float64
	}{
		{"empty set is unset", nil, nil},
		{"single review", []int{4}, ptr(4.0)},
		{"integer mean", []int{4, 2}, ptr(3.0)},
		{"fractional mean", []int{5, 4}, ptr(4.5)},
		{"full range", []int{1, 2, 3, 4, 5}, ptr(3.0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := meanRating(tc.ratings)
			if (got == nil) != (tc.want == nil) {
				t.Fatalf("meanRating(%v) = %v, want %v", tc.ratings, got, tc.want)
			}
			if got != nil && *got != *tc.want {
				t.Fatalf("meanRating(%v) = %v, want %v", tc.ratings, *got, *tc.want)
			}
		})
	}
}

// TestMeanRatingSequence walks a hotel's review set through inserts, an
// update and deletes, checking the derived mean after each step.
// Deleting the last review must clear the rating, not zero it.
func TestMeanRatingSequence(t *testing.T) {
	steps := []struct {
		name    string
		ratings []int
		want    *float64
	}{
		{"first insert", []int{5}, ptr(5.0)},
		{"second insert", []int{5, 3}, ptr(4.0)},
		{"update 3 to 4", []int{5, 4}, ptr(4.5)},
		{"delete one", []int{5}, ptr(5.0)},
		{"delete last", []int{}, nil},
	}
	for _, st := range steps {
		got := meanRating(st.ratings)
		switch {
		case st.want == nil && got != nil:
			t.Errorf("%s: mean = %v, want unset", st.name, *got)
		case st.want != nil && got == nil:
			t.Errorf("%s: mean unset, want %v", st.name, *st.want)
		case st.want != nil && *got != *st.want:
			t.Errorf("%s: mean = %v, want %v", st.name, *got, *st.want)
		}
	}
}

func TestApplyReviewPatch(t *testing.T) {
	base := model.Review{ID: 1, UserID: 2, RoomID: 10, Rating: 4, Comment: ptr2("fine")}

	t.Run("comment only keeps rating and room", func(t *testing.T) {
		rv := base
		if err := applyReviewPatch(&rv, 0, 0, ptr2("better")); err != nil {
			t.Fatalf("applyReviewPatch: %v", err)
		}
		if rv.Rating != 4 || rv.RoomID != 10 {
			t.Fatalf("rating/room changed: %+v", rv)
		}
		if rv.Comment == nil || *rv.Comment != "better" {
			t.Fatalf("comment = %v, want better", rv.Comment)
		}
	})

	t.Run("rating and room replaced when set", func(t *testing.T) {
		rv := base
		if err := applyReviewPatch(&rv, 11, 2, nil); err != nil {
			t.Fatalf("applyReviewPatch: %v", err)
		}
		if rv.Rating != 2 || rv.RoomID != 11 {
			t.Fatalf("patch not applied: %+v", rv)
		}
		if rv.Comment != nil {
			t.Fatalf("comment = %v, want cleared", rv.Comment)
		}
	})

	t.Run("out of range rating rejected", func(t *testing.T) {
		for _, rating := range []int{-1, 6} {
			rv := base
			if err := applyReviewPatch(&rv, 0, rating, nil); err != ErrInvalidRating {
				t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
			}
			if rv.Rating != base.Rating {
				t.Errorf("rating %d: review mutated on error", rating)
			}
		}
	})
}

func ptr(f float64) *float64 { return &f }

func ptr2(s string) *string { return &s }

func TestAffectedHotels(t *testing.T) {
	cases := []struct {
		name string
		pre  []uint64
		post []uint64
		want []uint64
	}{
		{"same hotel both sides", []uint64{7}, []uint64{7}, []uint64{7}},
		{"review moved between hotels", []uint64{7}, []uint64{9}, []uint64{7, 9}},
		{"insert only", nil, []uint64{3}, []uint64{3}},
		{"delete only", []uint64{3}, nil, []uint64{3}},
		{"batch with duplicates", []uint64{1, 2, 1}, []uint64{2, 3}, []uint64{1, 2, 3}},
		{"empty", nil, nil, []uint64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := affectedHotels(tc.pre, tc.post)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("affectedHotels(%v, %v) = %v, want %v", tc.pre, tc.post, got, tc.want)
			}
		})
	}
}
