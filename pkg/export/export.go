// Package export renders a printable agenda of events as CSV or PDF.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/eventdeck/eventdeck/internal/model"
)

var headers = []string{"Title", "Description", "Start", "End", "Categories", "Author"}

// Agenda carries the events to render plus the reference data used to
// resolve category and author names. Dangling category references are
// excluded; a missing author renders blank.
type Agenda struct {
	Events     []model.Event
	Categories []model.Category
	Users      []model.User
}

// CSV renders the agenda as CSV bytes.
func (a Agenda) CSV() ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(headers); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, ev := range a.Events {
		if err := w.Write(a.row(ev)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// PDF renders the agenda as a tabular PDF with the given title.
func (a Agenda) PDF(title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	widths := []float64{55, 80, 35, 35, 40, 32}
	pdf.SetFont("Arial", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, ev := range a.Events {
		for i, cell := range a.row(ev) {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (a Agenda) row(ev model.Event) []string {
	return []string{
		ev.Title,
		ev.Description,
		ev.StartTime.String(),
		ev.EndTime.String(),
		strings.Join(a.categoryNames(ev), ", "),
		a.authorName(ev.CreatedBy),
	}
}

func (a Agenda) categoryNames(ev model.Event) []string {
	var names []string
	for _, id := range ev.CategoryIDs {
		for _, cat := range a.Categories {
			if cat.ID == id {
				names = append(names, cat.Name)
				break
			}
		}
	}
	return names
}

func (a Agenda) authorName(id int64) string {
	for _, u := range a.Users {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}
