// Package training holds the pure functions over training history: display
// ordering, chart series preparation and textual field parsing.
package training

import (
	"sort"
	"strconv"
	"strings"

	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
)

// dateKey splits a "dd.mm.yyyy" string into its numeric components. Any
// component that is missing or fails to parse compares as zero, so malformed
// dates sink below every real date under descending order.
func dateKey(date string) (year, month, day int) {
	parts := strings.Split(date, ".")
	if len(parts) > 0 {
		day, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		month, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		year, _ = strconv.Atoi(parts[2])
	}
	return year, month, day
}

// moreRecent reports whether a sorts before b in the displayed (most recent
// first) order, comparing year, then month, then day.
func moreRecent(a, b models.TrainingRecord) bool {
	ay, am, ad := dateKey(a.Date)
	by, bm, bd := dateKey(b.Date)
	if ay != by {
		return ay > by
	}
	if am != bm {
		return am > bm
	}
	return ad > bd
}

// SortByDateDesc returns a new slice with the records ordered most recent
// first. The sort is stable, so same-date records keep their stored relative
// order. The input is not modified.
func SortByDateDesc(records []models.TrainingRecord) []models.TrainingRecord {
	sorted := make([]models.TrainingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return moreRecent(sorted[i], sorted[j])
	})
	return sorted
}

// SortByDateAsc returns a new slice ordered oldest first, for series that
// read left to right through time. Also stable.
func SortByDateAsc(records []models.TrainingRecord) []models.TrainingRecord {
	sorted := make([]models.TrainingRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return moreRecent(sorted[j], sorted[i])
	})
	return sorted
}
