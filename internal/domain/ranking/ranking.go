// Package ranking orders the result records of one workout and assigns
// dense 1-based positions.
package ranking

import (
	"sort"

	"github.com/matchfit/scorebox/internal/domain/model"
	"github.com/matchfit/scorebox/internal/domain/resultvalue"
)

// Placement pairs a participant with its assigned position.
type Placement struct {
	ParticipantID string
	Position      int
}

// Rank sorts records under the workout's comparator and assigns positions
// 1..N in place. REPS and WEIGHT rank higher values first, TIME lower
// values first; records without a value sort after every concrete value.
//
// Ties on equal values break by participant ID ascending. The tie-break is
// deliberate: storage iteration order is not stable, and positions must be
// reproducible run over run.
func Rank(resultType resultvalue.Type, records []*model.ResultRecord) []Placement {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if resultvalue.Better(resultType, a.Value, b.Value) {
			return true
		}
		if resultvalue.Better(resultType, b.Value, a.Value) {
			return false
		}
		return a.ParticipantID < b.ParticipantID
	})

	placements := make([]Placement, len(records))
	for i, r := range records {
		r.Position = i + 1
		placements[i] = Placement{ParticipantID: r.ParticipantID, Position: r.Position}
	}
	return placements
}
