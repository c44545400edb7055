package training

import "github.com/NureDudukovOleksandr/Kozachok/internal/models"

// Point is one sample of a line-chart series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartSeries prepares the body-weight and training-hours series for the
// statistics screen. Records are put in chronological order first so the
// chart and the history table agree on what "over time" means; X is the
// position in that order.
func ChartSeries(records []models.TrainingRecord) (weight, hours []Point) {
	ordered := SortByDateAsc(records)
	weight = make([]Point, 0, len(ordered))
	hours = make([]Point, 0, len(ordered))
	for i, record := range ordered {
		weight = append(weight, Point{X: float64(i), Y: record.Weight})
		hours = append(hours, Point{X: float64(i), Y: record.TrainingHours})
	}
	return weight, hours
}
