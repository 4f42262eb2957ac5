// Package report renders a PDF summary of points and tracked projects.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/prodgarden/internal/models"
)

// Summary is the data printed in a report.
type Summary struct {
	Generated       time.Time
	TotalPoints     int
	AvailablePoints int
	Projects        []models.Project
	Notes           string
}

// FileName is the default report name for a given day.
func FileName(t time.Time) string {
	return fmt.Sprintf("report_%s.pdf", t.Format(models.DateLayout))
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%dh %02dm", m/60, m%60)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(models.DateLayout)
}

// Build lays out the report document.
func Build(s Summary) *fpdf.Fpdf {
	if s.Generated.IsZero() {
		s.Generated = time.Now()
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(s.Generated)
	pdf.SetTitle("Productivity Report", false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Productivity Report: %s", s.Generated.Format(models.DateLayout)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Points")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total earned: %d", s.TotalPoints))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Available to spend: %d", s.AvailablePoints))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Projects")
	pdf.Ln(10)

	if len(s.Projects) == 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, "  - No projects tracked.")
		pdf.Ln(8)
	} else {
		widths := []float64{60, 30, 30, 30, 30}
		headers := []string{"Name", "Status", "Tracked", "Start", "End"}
		pdf.SetFont("Arial", "B", 11)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 11)
		total := 0
		for _, p := range s.Projects {
			total += p.TimeTracked
			row := []string{p.Name, string(p.Status), formatMinutes(p.TimeTracked), formatDate(p.StartDate), formatDate(p.EndDate)}
			for i, cell := range row {
				pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 10, fmt.Sprintf("Total tracked: %s", formatMinutes(total)))
		pdf.Ln(10)
	}

	if s.Notes != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, s.Notes, "", "", false)
	}
	return pdf
}

// WritePDF renders s to path, creating the parent directory.
func WritePDF(path string, s Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	pdf := Build(s)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
