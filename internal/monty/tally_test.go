package monty

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTallyScore(t *testing.T) {
	var tally Tally
	for _, o := range []Outcome{Win, Lose, Win, Win} {
		tally.Score(o)
	}
	if diff := cmp.Diff(tally, Tally{Won: 3, Lost: 1}); diff != "" {
		t.Errorf("tally does not match (-got, +want):\n%s", diff)
	}
}

func TestTallyPercentage(t *testing.T) {
	for _, tt := range []struct {
		tally Tally
		want  float64
	}{
		{tally: Tally{Won: 1, Lost: 3}, want: 25},
		{tally: Tally{Won: 0, Lost: 5}, want: 0},
		{tally: Tally{Won: 5, Lost: 0}, want: 100},
		{tally: Tally{Won: 2, Lost: 1}, want: 100 * 2.0 / 3.0},
	} {
		got, err := tt.tally.Percentage()
		if err != nil {
			t.Fatalf("percentage of %s returned error: %v", tt.tally, err)
		}
		if got != tt.want {
			t.Errorf("percentage of %s: got %v; want %v", tt.tally, got, tt.want)
		}
	}
}

func TestTallyPercentageEmpty(t *testing.T) {
	if _, err := (Tally{}).Percentage(); !errors.Is(err, ErrNoTrials) {
		t.Errorf("empty tally error = %v; want ErrNoTrials", err)
	}
}

func TestTallyMerge(t *testing.T) {
	got := Tally{Won: 2, Lost: 5}.Merge(Tally{Won: 7, Lost: 1})
	if diff := cmp.Diff(got, Tally{Won: 9, Lost: 6}); diff != "" {
		t.Errorf("merged tally does not match (-got, +want):\n%s", diff)
	}
}
