package pagination

import (
	"testing"

	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
)

func pageNumbers(strip Strip) []int {
	nums := make([]int, 0, len(strip.Pages))
	for _, p := range strip.Pages {
		nums = append(nums, p.Page)
	}
	return nums
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name         string
		current      int
		total        int
		wantPages    []int
		wantPrevOff  bool
		wantNextOff  bool
	}{
		{
			name:        "first page of many",
			current:     1,
			total:       10,
			wantPages:   []int{1, 2, 3, 4, 5},
			wantPrevOff: true,
			wantNextOff: false,
		},
		{
			name:        "last page of many",
			current:     10,
			total:       10,
			wantPages:   []int{6, 7, 8, 9, 10},
			wantPrevOff: false,
			wantNextOff: true,
		},
		{
			name:        "middle page",
			current:     5,
			total:       10,
			wantPages:   []int{3, 4, 5, 6, 7},
			wantPrevOff: false,
			wantNextOff: false,
		},
		{
			name:        "second page shifts window right",
			current:     2,
			total:       10,
			wantPages:   []int{1, 2, 3, 4, 5},
			wantPrevOff: false,
			wantNextOff: false,
		},
		{
			name:        "second to last page shifts window left",
			current:     9,
			total:       10,
			wantPages:   []int{6, 7, 8, 9, 10},
			wantPrevOff: false,
			wantNextOff: false,
		},
		{
			name:        "single page",
			current:     1,
			total:       1,
			wantPages:   []int{1},
			wantPrevOff: true,
			wantNextOff: true,
		},
		{
			name:        "fewer pages than window",
			current:     2,
			total:       3,
			wantPages:   []int{1, 2, 3},
			wantPrevOff: false,
			wantNextOff: false,
		},
		{
			name:        "empty lexicon",
			current:     1,
			total:       0,
			wantPages:   []int{},
			wantPrevOff: true,
			wantNextOff: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strip := Window(concept.PageMeta{
				CurrentPage: tt.current,
				TotalPages:  tt.total,
			})

			got := pageNumbers(strip)
			if !equalInts(got, tt.wantPages) {
				t.Errorf("Pages = %v, want %v", got, tt.wantPages)
			}

			if strip.Prev.Disabled != tt.wantPrevOff {
				t.Errorf("Prev.Disabled = %v, want %v", strip.Prev.Disabled, tt.wantPrevOff)
			}
			if strip.Next.Disabled != tt.wantNextOff {
				t.Errorf("Next.Disabled = %v, want %v", strip.Next.Disabled, tt.wantNextOff)
			}

			if strip.Prev.Label != "Previous" {
				t.Errorf("Prev.Label = %q, want %q", strip.Prev.Label, "Previous")
			}
			if strip.Next.Label != "Next" {
				t.Errorf("Next.Label = %q, want %q", strip.Next.Label, "Next")
			}
			if strip.Prev.Page != tt.current-1 {
				t.Errorf("Prev.Page = %d, want %d", strip.Prev.Page, tt.current-1)
			}
			if strip.Next.Page != tt.current+1 {
				t.Errorf("Next.Page = %d, want %d", strip.Next.Page, tt.current+1)
			}
		})
	}
}

// TestWindow_Properties verifies the invariants of the numbered window for
// all valid (current, total) combinations up to a bound.
func TestWindow_Properties(t *testing.T) {
	const maxTotal = 25

	for total := 1; total <= maxTotal; total++ {
		for current := 1; current <= total; current++ {
			strip := Window(concept.PageMeta{CurrentPage: current, TotalPages: total})

			wantLen := min(total, windowSpan)
			if len(strip.Pages) != wantLen {
				t.Fatalf("current=%d total=%d: window length = %d, want %d",
					current, total, len(strip.Pages), wantLen)
			}

			activeCount := 0
			for i, p := range strip.Pages {
				if p.Page < 1 || p.Page > total {
					t.Fatalf("current=%d total=%d: page %d out of range", current, total, p.Page)
				}
				if i > 0 && strip.Pages[i-1].Page+1 != p.Page {
					t.Fatalf("current=%d total=%d: window not contiguous ascending", current, total)
				}
				if p.Active {
					activeCount++
					if p.Page != current {
						t.Fatalf("current=%d total=%d: active button is %d", current, total, p.Page)
					}
				}
			}
			if activeCount != 1 {
				t.Fatalf("current=%d total=%d: %d active buttons, want 1", current, total, activeCount)
			}

			if strip.Prev.Disabled != (current <= 1) {
				t.Fatalf("current=%d total=%d: Prev.Disabled = %v", current, total, strip.Prev.Disabled)
			}
			if strip.Next.Disabled != (current >= total) {
				t.Fatalf("current=%d total=%d: Next.Disabled = %v", current, total, strip.Next.Disabled)
			}
		}
	}
}

func TestWindow_CurrentPageBelowOne(t *testing.T) {
	// A zero or negative current page is normalized to 1 before windowing.
	strip := Window(concept.PageMeta{CurrentPage: 0, TotalPages: 3})

	if !equalInts(pageNumbers(strip), []int{1, 2, 3}) {
		t.Errorf("Pages = %v, want [1 2 3]", pageNumbers(strip))
	}
	if !strip.Prev.Disabled {
		t.Error("Prev should be disabled at page 1")
	}
}
