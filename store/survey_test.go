package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neighborfit/neighborfit-api/schema"
)

var (
	surveyTestFixture1 = schema.Survey{
		ID:            primitive.NewObjectID(),
		AgeGroup:      "25-34",
		Occupation:    "engineer",
		LivingType:    "rent",
		Vibe:          "Quiet",
		Safety:        5,
		Affordability: 2,
		Cleanliness:   5,
		Commute:       4,
		Greenery:      3,
		Nightlife:     1,
		CreatedAt:     time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
	}
	surveyTestFixture2 = schema.Survey{
		ID:            primitive.NewObjectID(),
		AgeGroup:      "35-44",
		Occupation:    "designer",
		LivingType:    "family",
		Vibe:          "Lively",
		Safety:        4,
		Affordability: 4,
		Cleanliness:   3,
		Commute:       5,
		Greenery:      5,
		Nightlife:     2,
		CreatedAt:     time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
	}
)

type SurveyTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewSurveyTestSuite(connURI, dbName string) *SurveyTestSuite {
	return &SurveyTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *SurveyTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *SurveyTestSuite) CleanMongoDB() error {
	return s.testDatabase.Collection(schema.SurveyCollection).Drop(context.Background())
}

func (s *SurveyTestSuite) SetupTest() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
}

func (s *SurveyTestSuite) TestCreateSurvey() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	survey := schema.Survey{
		AgeGroup:      "25-34",
		Occupation:    "engineer",
		LivingType:    "rent",
		Vibe:          "Quiet",
		Safety:        5,
		Affordability: 2,
		Cleanliness:   5,
		Commute:       4,
		Greenery:      3,
		Nightlife:     1,
	}

	id, err := store.CreateSurvey(&survey)
	s.NoError(err)
	s.NotEmpty(id)
	s.False(survey.CreatedAt.IsZero())

	oid, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	var stored schema.Survey
	err = s.testDatabase.Collection(schema.SurveyCollection).FindOne(context.Background(), bson.M{
		"_id": oid,
	}).Decode(&stored)
	s.NoError(err)

	s.Equal("Quiet", stored.Vibe)
	s.Equal(2, stored.Affordability)
	s.False(stored.CreatedAt.IsZero())
}

func (s *SurveyTestSuite) TestListSurveys() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// inserted newest first; listing must come back oldest first
	_, err := s.testDatabase.Collection(schema.SurveyCollection).InsertMany(context.Background(), []interface{}{
		surveyTestFixture2,
		surveyTestFixture1,
	})
	s.NoError(err)

	surveys, err := store.ListSurveys()
	s.NoError(err)
	s.Len(surveys, 2)

	s.Equal("Quiet", surveys[0].Vibe)
	s.Equal("Lively", surveys[1].Vibe)
	s.True(surveys[0].CreatedAt.Before(surveys[1].CreatedAt))
}

func (s *SurveyTestSuite) TestListSurveysEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	surveys, err := store.ListSurveys()
	s.NoError(err)
	s.Len(surveys, 0)
}

func TestSurveyTestSuite(t *testing.T) {
	suite.Run(t, NewSurveyTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
