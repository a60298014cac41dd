// Package impact holds the economic impact records behind the dashboard and
// derives the total impact and the economic multiplier from them.
package impact

import (
	"github.com/iwvelando/impact-dashboard/pkg/constants"
	"github.com/iwvelando/impact-dashboard/pkg/mathutil"
	"github.com/rotisserie/eris"
)

// RecordCount is the fixed number of impact categories.
const RecordCount = 3

// Record indices in display order.
const (
	Direct = iota
	Indirect
	Induced
)

// ErrIndexOutOfRange is returned by SetValue for an index outside the records.
var ErrIndexOutOfRange = eris.New("impact record index out of range")

// Record is one impact category. Only Value changes after creation.
type Record struct {
	Category    string  `json:"category"`
	Value       float64 `json:"value"` // millions
	Description string  `json:"description"`
	Fill        string  `json:"fill"`
}

// Model owns the ordered impact records for the life of a dashboard session.
// It is not safe for concurrent use.
type Model struct {
	records [RecordCount]Record
}

// NewModel returns a model seeded with the default impact values.
func NewModel() *Model {
	return NewModelWithValues(constants.SeedDirect, constants.SeedIndirect, constants.SeedInduced)
}

// NewModelWithValues returns a model with the fixed categories and the given
// starting values.
func NewModelWithValues(direct, indirect, induced float64) *Model {
	return &Model{
		records: [RecordCount]Record{
			{Category: constants.CategoryDirect, Value: direct, Description: constants.DescriptionDirect, Fill: constants.FillDirect},
			{Category: constants.CategoryIndirect, Value: indirect, Description: constants.DescriptionIndirect, Fill: constants.FillIndirect},
			{Category: constants.CategoryInduced, Value: induced, Description: constants.DescriptionInduced, Fill: constants.FillInduced},
		},
	}
}

// Records returns a copy of the current records in display order.
func (m *Model) Records() []Record {
	out := make([]Record, RecordCount)
	copy(out, m.records[:])
	return out
}

// SetValue replaces the value of the record at index with raw coerced to a
// number. Input that does not parse becomes 0. The updated records are
// returned.
func (m *Model) SetValue(index int, raw any) ([]Record, error) {
	if index < 0 || index >= RecordCount {
		return nil, eris.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	m.records[index].Value = ParseValue(raw)
	return m.Records(), nil
}

// TotalImpact is the sum of all record values.
func (m *Model) TotalImpact() float64 {
	return TotalImpact(m.records[:])
}

// Multiplier is (Indirect + Induced) / Direct. A zero direct value yields
// +Inf, -Inf or NaN.
func (m *Model) Multiplier() float64 {
	return Multiplier(m.records[:])
}

// Summary derives a fresh snapshot from the current records.
func (m *Model) Summary() Summary {
	return Summarize(m.Records())
}

// TotalImpact sums the values of records.
func TotalImpact(records []Record) float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = r.Value
	}
	return mathutil.Sum(values...)
}

// Multiplier computes (Indirect + Induced) / Direct over a full record set.
func Multiplier(records []Record) float64 {
	return mathutil.Ratio(records[Indirect].Value+records[Induced].Value, records[Direct].Value)
}
