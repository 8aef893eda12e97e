package store

import "context"

// WordStat is one row of the accuracy table.
type WordStat struct {
	ForeignTerm     string `json:"foreign_term"`
	NativeTerm      string `json:"native_term"`
	Level           string `json:"level"`
	CorrectCount    int    `json:"correct_count"`
	IncorrectCount  int    `json:"incorrect_count"`
	AccuracyPercent int    `json:"accuracy_percent"`
}

// Accuracy is floor(100*correct/total), 0 when the entry was never asked.
func Accuracy(correct, incorrect int) int {
	total := correct + incorrect
	if total == 0 {
		return 0
	}
	return correct * 100 / total
}

// Stats computes per-word accuracy for the owner, optionally restricted to
// one level ("" or "ALL" covers everything). Rows come out ordered by
// English term; an empty level yields an empty table, not a fallback.
func (s *WordStore) Stats(ctx context.Context, owner, level string) ([]WordStat, error) {
	entries, err := s.Load(ctx, owner, level)
	if err != nil {
		return nil, err
	}

	stats := make([]WordStat, 0, len(entries))
	for _, e := range entries {
		stats = append(stats, WordStat{
			ForeignTerm:     e.ForeignTerm,
			NativeTerm:      e.NativeTerm,
			Level:           e.Level,
			CorrectCount:    e.CorrectCount,
			IncorrectCount:  e.IncorrectCount,
			AccuracyPercent: Accuracy(e.CorrectCount, e.IncorrectCount),
		})
	}
	return stats, nil
}
