package impact

import (
	"fmt"

	"github.com/iwvelando/impact-dashboard/pkg/format"
)

// Summary is a point-in-time view of the records and the values derived
// from them.
type Summary struct {
	Records     []Record
	TotalImpact float64
	Multiplier  float64
}

// Summarize derives the total and multiplier from a full record set.
func Summarize(records []Record) Summary {
	return Summary{
		Records:     records,
		TotalImpact: TotalImpact(records),
		Multiplier:  Multiplier(records),
	}
}

// Narrative is the summary sentence shown under the multiplier.
func Narrative(multiplier float64) string {
	return fmt.Sprintf("For every $1 of direct spending, an additional $%s of economic activity is generated",
		format.Fixed2(multiplier))
}

// Narrative is the summary sentence for this snapshot.
func (s Summary) Narrative() string {
	return Narrative(s.Multiplier)
}
