// Package exercises holds the built-in exercise instruction catalog shown on
// the exercise screen. The catalog is fixed at build time.
package exercises

import "strings"

type Exercise struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
	Benefits     string `json:"benefits"`
}

var catalog = []Exercise{
	{
		Name:         "Squat",
		Description:  "Squats are an essential lower-body exercise for improving strength and stability.",
		Instructions: "1. Stand straight.\n2. Spread your legs shoulder-width apart.\n3. Lower your body by bending your knees.",
		Benefits:     "Squats help strengthen your lower body muscles, improve balance, and enhance joint health.",
	},
	{
		Name:         "Push-up",
		Description:  "Push-ups are a classic upper-body exercise that builds strength and endurance.",
		Instructions: "1. Lie on your stomach.\n2. Place your hands under your shoulders.\n3. Lower your body down and push back up.",
		Benefits:     "Push-ups strengthen your chest, shoulders, triceps, and core, improving upper body strength and endurance.",
	},
	{
		Name:         "Barbell Squat",
		Description:  "Barbell squats are a compound exercise that targets multiple muscle groups.",
		Instructions: "1. Stand straight and place the barbell on your shoulders.\n2. Spread your legs shoulder-width apart.\n3. Lower your body down by bending your knees, keeping your back straight.",
		Benefits:     "Barbell squats build lower body strength, enhance muscle mass, and boost metabolic rate, making them excellent for overall fitness.",
	},
	{
		Name:         "Running",
		Description:  "Running is a simple yet effective cardiovascular exercise.",
		Instructions: "1. Start with a warm-up.\n2. Gradually increase your speed.\n3. Focus on your breathing and maintaining a steady pace.",
		Benefits:     "Running improves cardiovascular health, enhances lung capacity, burns calories, and boosts mental well-being by releasing endorphins.",
	},
}

// Catalog returns a copy of the exercise list.
func Catalog() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

// Find looks an exercise up by name, case-insensitively.
func Find(name string) (Exercise, bool) {
	for _, exercise := range catalog {
		if strings.EqualFold(exercise.Name, name) {
			return exercise, true
		}
	}
	return Exercise{}, false
}
