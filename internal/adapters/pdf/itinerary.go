package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ramana119/yatra/internal/core/domain"
	"github.com/ramana119/yatra/internal/pkg/metrics"
)

// RenderItinerary renders a day-by-day itinerary as a printable A4 PDF and
// returns the raw bytes.
func RenderItinerary(it *domain.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(21, 48, 74)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Yatra", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(224, 164, 88)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Itinerary", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(21, 48, 74)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	sectionHeader("Trip Overview")
	row("Plan", it.PlanID)
	row("Transport", string(it.Mode))
	row("Style", string(it.Style))
	row("Days", fmt.Sprintf("%d", len(it.Days)))
	if len(it.Days) > 0 {
		row("Starts", it.Days[0].Date.Format("02 Jan 2006 (Mon)"))
	}
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	sectionHeader("Day by Day")
	for _, day := range it.Days {
		title := fmt.Sprintf("Day %d  %s  %s", day.Day, day.Date.Format("02 Jan (Mon)"), day.DestinationName)
		if day.IsTransitDay {
			title += "  (travel day)"
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(21, 48, 74)
		pdf.CellFormat(170, 7, title, "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(60, 60, 60)
		for _, activity := range day.Activities {
			pdf.CellFormat(170, 5, "   - "+activity, "", 1, "L", false, 0, "")
		}
		if day.DepartureTime != "" {
			pdf.CellFormat(170, 5, fmt.Sprintf("   Depart %s, arrive %s", day.DepartureTime, day.ArrivalTime), "", 1, "L", false, 0, "")
		}
		pdf.Ln(1)
	}

	if len(it.SkippedIDs) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(130, 90, 20)
		pdf.MultiCell(170, 4, "Not included (unknown destinations): "+strings.Join(it.SkippedIDs, ", "), "", "L", false)
	}

	// Footer
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Generated by Yatra trip planner. Schedule is an estimate, not a booking.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}

	metrics.PDFRenders.Inc()
	return buf.Bytes(), nil
}
