package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborfit/neighborfit-api/schema"
)

// SurveyOperator - survey collection operations
type SurveyOperator interface {
	CreateSurvey(survey *schema.Survey) (string, error)
	ListSurveys() ([]schema.Survey, error)
}

// CreateSurvey appends one survey response. The record id and creation time
// are assigned here; a stored survey is never updated or deleted.
func (m *mongoDB) CreateSurvey(survey *schema.Survey) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	survey.ID = primitive.NewObjectID()
	survey.CreatedAt = time.Now().UTC()

	if _, err := c.Collection(schema.SurveyCollection).InsertOne(ctx, survey); err != nil {
		return "", err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("saved survey %s", survey.ID.Hex())

	return survey.ID.Hex(), nil
}

// ListSurveys returns every stored survey, oldest first.
func (m *mongoDB) ListSurveys() ([]schema.Survey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cursor, err := c.Collection(schema.SurveyCollection).Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, err
	}

	surveys := make([]schema.Survey, 0)
	for cursor.Next(ctx) {
		var s schema.Survey
		if err := cursor.Decode(&s); err != nil {
			return nil, err
		}

		surveys = append(surveys, s)
	}

	return surveys, cursor.Err()
}
