package itinerary

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"

	"sanchaari/planner"
	"sanchaari/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// GET /api/itineraries/:id/pdf
// Renders the day-by-day plan as a printable PDF with a QR code pointing at
// a map search for the destination.
func PrintItinerary(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	itinerary, status, msg := findOwned(r, ps.ByName("id"))
	if msg != "" {
		utils.Error(w, status, msg)
		return
	}

	mapsURL := fmt.Sprintf("https://www.google.com/maps/search/%s", url.QueryEscape(itinerary.Destination))
	qrPNG, err := qrcode.Encode(mapsURL, qrcode.Medium, 256)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	display := planner.Render(itinerary.Destination, itinerary.Items)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Trip to %s", planner.TitleCase(itinerary.Destination)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%d days - created %s", itinerary.Days, itinerary.CreatedAt.Format("Jan 2, 2006")))
	pdf.Ln(10)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("map-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("map-qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	for _, day := range display {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d", day.Day))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 11)
		for _, slot := range []planner.DisplaySlot{day.Morning, day.Afternoon, day.Evening} {
			pdf.Cell(0, 7, fmt.Sprintf("%s - %s", slot.Headline, slot.Place))
			pdf.Ln(7)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=itinerary-%s.pdf", itinerary.ItineraryID))
	w.Write(buf.Bytes())
}
