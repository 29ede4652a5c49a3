// Package export builds the paginated printable document: a grid of
// day-cards followed by the multi-column categorized shopping list. The
// pagination math is pure; turning HTML blocks into page images is
// delegated to a BlockRenderer collaborator.
package export

// DaysPerPage is how many day-cards fit one landscape page.
const DaysPerPage = 8

// Page geometry in output units (mm on an A4 document).
const (
	PageWidthLandscape  = 297.0
	PageHeightLandscape = 210.0
	PageWidthPortrait   = 210.0
	PageHeightPortrait  = 297.0
	PageMargin          = 10.0
)

// DayPages splits totalDays into [from,to) index ranges of at most
// perPage days each.
func DayPages(totalDays, perPage int) [][2]int {
	if totalDays <= 0 || perPage <= 0 {
		return nil
	}
	var pages [][2]int
	for from := 0; from < totalDays; from += perPage {
		to := from + perPage
		if to > totalDays {
			to = totalDays
		}
		pages = append(pages, [2]int{from, to})
	}
	return pages
}

// ListSlices computes the vertical draw offsets for slicing one rendered
// image of height imageHeight across pages of usable height
// pageHeight-margin. The first slice starts at 0; each following page
// draws the same image shifted up by one usable page height.
func ListSlices(imageHeight, pageHeight, margin float64) []float64 {
	if imageHeight <= 0 || pageHeight <= margin {
		return nil
	}
	offsets := []float64{0}
	remaining := imageHeight - (pageHeight - margin)
	offset := 0.0
	for remaining > 0 {
		offset -= pageHeight - 2*margin
		offsets = append(offsets, offset)
		remaining -= pageHeight - 2*margin
	}
	return offsets
}

// ScaledHeight fits an image of pixel dimensions into targetWidth keeping
// the aspect ratio.
func ScaledHeight(imgWidthPx, imgHeightPx int, targetWidth float64) float64 {
	if imgWidthPx <= 0 {
		return 0
	}
	return float64(imgHeightPx) * targetWidth / float64(imgWidthPx)
}
