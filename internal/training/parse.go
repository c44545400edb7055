package training

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NureDudukovOleksandr/Kozachok/internal/apperror"
	"github.com/NureDudukovOleksandr/Kozachok/internal/models"
)

// ParsePolicy controls what happens when a textual numeric field does not
// parse. Lenient reproduces the original app's behavior of silently storing
// zero; Strict rejects the input at the edit boundary instead.
type ParsePolicy int

const (
	Lenient ParsePolicy = iota
	Strict
)

// ParseRecord builds a TrainingRecord from the raw text fields of the
// add-training form. The date string is stored as typed, without validation.
func (p ParsePolicy) ParseRecord(date, weight, height, exercises, hours string) (models.TrainingRecord, error) {
	record := models.TrainingRecord{Date: strings.TrimSpace(date)}

	var err error
	if record.Weight, err = p.parseFloat("weight", weight); err != nil {
		return models.TrainingRecord{}, err
	}
	if record.Height, err = p.parseFloat("height", height); err != nil {
		return models.TrainingRecord{}, err
	}
	if record.ExercisesCount, err = p.parseInt("exercises", exercises); err != nil {
		return models.TrainingRecord{}, err
	}
	if record.TrainingHours, err = p.parseFloat("hours", hours); err != nil {
		return models.TrainingRecord{}, err
	}
	return record, nil
}

func (p ParsePolicy) parseFloat(field, value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		if p == Strict {
			return 0, apperror.ValidationFailed(field, fmt.Sprintf("%s is not a number", field))
		}
		return 0, nil
	}
	return parsed, nil
}

func (p ParsePolicy) parseInt(field, value string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		if p == Strict {
			return 0, apperror.ValidationFailed(field, fmt.Sprintf("%s is not an integer", field))
		}
		return 0, nil
	}
	return parsed, nil
}
