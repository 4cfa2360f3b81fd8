package loadtest

import (
	"fmt"

	"github.com/okian/bizmatch/internal/domain/types"
)

// verifyReport checks a served report for internal consistency and
// against the locally computed one.
func verifyReport(got, want types.Report) error {
	if len(got.Recommendations) != len(want.Recommendations) {
		return fmt.Errorf("got %d recommendations, want %d", len(got.Recommendations), len(want.Recommendations))
	}
	for i, r := range got.Recommendations {
		if r.Rank != i+1 {
			return fmt.Errorf("entry %d has rank %d", i, r.Rank)
		}
		if r.Analysis.MatchScore != r.Score {
			return fmt.Errorf("%s: analysis score %d differs from score %d", r.Model.ID, r.Analysis.MatchScore, r.Score)
		}
		if r.Score != 0 && (r.Score < 25 || r.Score > 100) {
			return fmt.Errorf("%s: score %d out of range", r.Model.ID, r.Score)
		}
		if i > 0 && r.Score > got.Recommendations[i-1].Score {
			return fmt.Errorf("entry %d scores above entry %d", i, i-1)
		}

		w := want.Recommendations[i]
		if r.Model.ID != w.Model.ID || r.Score != w.Score {
			return fmt.Errorf("entry %d is %s@%d, want %s@%d", i, r.Model.ID, r.Score, w.Model.ID, w.Score)
		}
	}
	return nil
}
