// Package pagination computes the window of page-number buttons rendered
// around the current page.
//
// The lexicon API reports current_page and total_pages in its response
// meta; Window turns that into a strip of controls:
//
//	strip := pagination.Window(page.Meta)
//	// strip.Prev, strip.Pages (up to 5, ascending), strip.Next
//
// The window stays centered on the current page and is shifted at the
// sequence ends so the strip keeps its full width whenever total_pages
// allows. An empty lexicon (total_pages == 0) produces no numbered
// buttons and both nav buttons disabled.
package pagination
