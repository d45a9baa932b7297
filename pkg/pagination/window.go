package pagination

import (
	"github.com/sentiencelab/lexicon-viewer/pkg/concept"
)

// windowSpan is the maximum number of numbered buttons in the strip.
const windowSpan = 5

// NavButton is a Previous/Next control. A disabled button is inert.
type NavButton struct {
	Label    string
	Page     int
	Disabled bool
}

// PageButton is a numbered button targeting its own page. The button for
// the current page is Active: visually distinct but still enabled.
type PageButton struct {
	Page   int
	Active bool
}

// Strip is the left-to-right control sequence [Previous, pages..., Next].
type Strip struct {
	Prev  NavButton
	Pages []PageButton
	Next  NavButton
}

// Window computes the pagination strip for the given page metadata.
// It is a pure function of current_page and total_pages.
//
// Up to windowSpan numbered buttons are centered on the current page and
// shifted to stay within [1, total_pages] near the ends. A total page count
// of zero yields an empty numbered range.
func Window(meta concept.PageMeta) Strip {
	current := meta.CurrentPage
	if current < 1 {
		current = 1
	}
	total := meta.TotalPages

	start := max(1, current-2)
	end := min(total, current+2)

	// Near the ends the centered range is short; widen it toward the
	// other side so the strip keeps windowSpan buttons where possible.
	if end-start < windowSpan-1 {
		if start == 1 {
			end = min(total, start+windowSpan-1)
		} else if end == total {
			start = max(1, end-windowSpan+1)
		}
	}

	var pages []PageButton
	for n := start; n <= end; n++ {
		pages = append(pages, PageButton{
			Page:   n,
			Active: n == current,
		})
	}

	return Strip{
		Prev: NavButton{
			Label:    "Previous",
			Page:     current - 1,
			Disabled: current <= 1,
		},
		Pages: pages,
		Next: NavButton{
			Label:    "Next",
			Page:     current + 1,
			Disabled: current >= total,
		},
	}
}
