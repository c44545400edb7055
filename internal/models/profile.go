package models

// DefaultDisplayName is used when the identity provider supplies no display
// name for a first-time user.
const DefaultDisplayName = "User"

// Profile is the per-user document stored in the profile collection, one per
// authenticated user, keyed by the identity provider's opaque user id. The
// textual fields are free-form and stored as the user typed them.
type Profile struct {
	Name          string           `json:"name" bson:"name"`
	Birthday      string           `json:"birthday" bson:"birthday"`
	Height        string           `json:"height" bson:"height"`
	Weight        string           `json:"weight" bson:"weight"`
	IsAdmin       bool             `json:"isAdmin" bson:"isAdmin"`
	Notifications map[string]bool  `json:"notifications" bson:"notifications"`
	TrainingData  []TrainingRecord `json:"trainingData" bson:"trainingData"`
}

// TrainingRecord is one logged session, embedded in its owning Profile. It
// has no identity of its own; two records with equal fields are
// indistinguishable and both are kept.
type TrainingRecord struct {
	Date           string  `json:"date" bson:"date"`
	Weight         float64 `json:"weight" bson:"weight"`
	Height         float64 `json:"height" bson:"height"`
	ExercisesCount int     `json:"exercisesCount" bson:"exercisesCount"`
	TrainingHours  float64 `json:"trainingHours" bson:"trainingHours"`
}

// NewProfile returns an empty profile for a first-time user. The name falls
// back to DefaultDisplayName when the provider did not supply one.
func NewProfile(name string) *Profile {
	if name == "" {
		name = DefaultDisplayName
	}
	return &Profile{
		Name:          name,
		Notifications: map[string]bool{},
		TrainingData:  []TrainingRecord{},
	}
}

// Normalize fills nil collections after decoding, so documents written
// without these fields read back as empty rather than nil.
func (p *Profile) Normalize() {
	if p.Notifications == nil {
		p.Notifications = map[string]bool{}
	}
	if p.TrainingData == nil {
		p.TrainingData = []TrainingRecord{}
	}
}
