// Package output provides utilities for formatting and displaying impact summaries.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/impact-dashboard/internal/impact"
	"github.com/iwvelando/impact-dashboard/pkg/format"
	"github.com/iwvelando/impact-dashboard/pkg/mathutil"
	"github.com/rotisserie/eris"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, title string, summary impact.Summary) {
	p := message.NewPrinter(language.English)
	_, _ = fmt.Fprintf(w, "--- %s ---\n", title)
	_, _ = fmt.Fprintf(w, "Category        | Impact ($M) | Description\n")
	_, _ = fmt.Fprintf(w, "________        | ___________ | ___________\n")
	for _, record := range summary.Records {
		_, _ = p.Fprintf(w, "%-15s | %11s | %s\n", record.Category, displayNumber(p, record.Value), record.Description)
	}
	_, _ = fmt.Fprintf(w, "\n")
	_, _ = p.Fprintf(w, "Total Economic Impact: $%s million\n", displayNumber(p, summary.TotalImpact))
	_, _ = fmt.Fprintf(w, "Economic Multiplier: %s\n", format.Fixed2(summary.Multiplier))
	_, _ = fmt.Fprintf(w, "%s\n", summary.Narrative())
}

// displayNumber groups thousands for finite values and falls back to the
// plain rendering for non-finite ones.
func displayNumber(p *message.Printer, v float64) string {
	if !mathutil.IsFinite(v) {
		return format.Fixed2(v)
	}
	return p.Sprintf("%.2f", mathutil.Round(v))
}

// CsvFormat writes the summary in comma-separated value format.
func CsvFormat(w io.Writer, summary impact.Summary) {
	_, _ = fmt.Fprintf(w, `"category","value","description"`+"\n")
	for _, record := range summary.Records {
		_, _ = fmt.Fprintf(w, `"%s","%s","%s"`+"\n",
			csvEscape(record.Category), format.Fixed2(record.Value), csvEscape(record.Description))
	}
	_, _ = fmt.Fprintf(w, `"total","%s",""`+"\n", format.Fixed2(summary.TotalImpact))
	_, _ = fmt.Fprintf(w, `"multiplier","%s",""`+"\n", format.Fixed2(summary.Multiplier))
}

// CsvString returns the CSV output as a string.
func CsvString(summary impact.Summary) string {
	var buf bytes.Buffer
	CsvFormat(&buf, summary)
	return buf.String()
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// Number is a float64 that encodes non-finite values as JSON strings.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if !mathutil.IsFinite(v) {
		return json.Marshal(format.Fixed2(v))
	}
	return json.Marshal(v)
}

// RecordView is the serialized form of an impact record.
type RecordView struct {
	Category    string `json:"category"`
	Value       Number `json:"value"`
	Description string `json:"description"`
	Fill        string `json:"fill"`
}

// SummaryView is the serialized form of an impact summary.
type SummaryView struct {
	Title             string       `json:"title,omitempty"`
	Subtitle          string       `json:"subtitle,omitempty"`
	Records           []RecordView `json:"records"`
	TotalImpact       Number       `json:"totalImpact"`
	Multiplier        Number       `json:"multiplier"`
	TotalDisplay      string       `json:"totalDisplay"`
	MultiplierDisplay string       `json:"multiplierDisplay"`
	Narrative         string       `json:"narrative"`
}

// NewSummaryView converts a summary into its serialized form.
func NewSummaryView(title, subtitle string, summary impact.Summary) SummaryView {
	records := make([]RecordView, 0, len(summary.Records))
	for _, record := range summary.Records {
		records = append(records, RecordView{
			Category:    record.Category,
			Value:       Number(record.Value),
			Description: record.Description,
			Fill:        record.Fill,
		})
	}

	return SummaryView{
		Title:             title,
		Subtitle:          subtitle,
		Records:           records,
		TotalImpact:       Number(summary.TotalImpact),
		Multiplier:        Number(summary.Multiplier),
		TotalDisplay:      format.Fixed2(summary.TotalImpact),
		MultiplierDisplay: format.Fixed2(summary.Multiplier),
		Narrative:         summary.Narrative(),
	}
}

// JSONFormat writes the summary as indented JSON.
func JSONFormat(w io.Writer, title, subtitle string, summary impact.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewSummaryView(title, subtitle, summary)); err != nil {
		return eris.Wrap(err, "failed to encode summary")
	}
	return nil
}
