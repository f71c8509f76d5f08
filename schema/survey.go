package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SurveyCollection = "surveys"
)

// PriorityFactors is the fixed order of the questionnaire priority factors.
// The order matters: avgPriorities output and the per-record lowest-factor
// scan both walk it front to back.
var PriorityFactors = []string{
	"safety",
	"affordability",
	"cleanliness",
	"commute",
	"greenery",
	"nightlife",
}

// Survey is one submitted lifestyle questionnaire. Records are append-only:
// id and creation time are assigned on insert and the document is never
// updated afterwards.
type Survey struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	AgeGroup      string             `json:"ageGroup" bson:"ageGroup" binding:"required"`
	Occupation    string             `json:"occupation" bson:"occupation" binding:"required"`
	LivingType    string             `json:"livingType" bson:"livingType" binding:"required"`
	Vibe          string             `json:"vibe" bson:"vibe" binding:"required"`
	Safety        int                `json:"safety" bson:"safety" binding:"required,min=1,max=5"`
	Affordability int                `json:"affordability" bson:"affordability" binding:"required,min=1,max=5"`
	Cleanliness   int                `json:"cleanliness" bson:"cleanliness" binding:"required,min=1,max=5"`
	Commute       int                `json:"commute" bson:"commute" binding:"required,min=1,max=5"`
	Greenery      int                `json:"greenery" bson:"greenery" binding:"required,min=1,max=5"`
	Nightlife     int                `json:"nightlife" bson:"nightlife" binding:"required,min=1,max=5"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// PriorityScore returns the score of a priority factor by name, 0 for an
// unknown factor.
func (s Survey) PriorityScore(factor string) int {
	switch factor {
	case "safety":
		return s.Safety
	case "affordability":
		return s.Affordability
	case "cleanliness":
		return s.Cleanliness
	case "commute":
		return s.Commute
	case "greenery":
		return s.Greenery
	case "nightlife":
		return s.Nightlife
	}
	return 0
}
