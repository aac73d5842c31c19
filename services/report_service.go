package services

import (
	"bytes"
	"encoding/csv"

	"github.com/jung-kurt/gofpdf"
)

// RenderCSV produces a complete CSV document: one header row, then one row
// per record, with standard quoting.
func RenderCSV(headers []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const pdfLineLimit = 130

// RenderPDF lays out one line per record on A4 pages: a bold title at the
// top of every page, 9pt body lines capped at 130 chars, and automatic page
// breaks when the page runs out.
func RenderPDF(title string, lines []string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetXY(40, 26)
		pdf.CellFormat(0, 16, tr(title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(40, 50)
	})
	pdf.SetAutoPageBreak(true, 40)
	pdf.SetMargins(40, 50, 40)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > pdfLineLimit {
			line = string(runes[:pdfLineLimit])
		}
		pdf.CellFormat(0, 14, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
