package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neighborfit/neighborfit-api/aggregate"
	"github.com/neighborfit/neighborfit-api/dataset"
)

// analytics recomputes the dashboard snapshot from scratch: the dataset and
// the survey collection are both read fresh on every call, and any read
// failure fails the whole request rather than returning partial stats.
func (s *Server) analytics(c *gin.Context) {
	properties, err := dataset.LoadProperties(s.datasetPath)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAnalytics, err)
		return
	}

	surveys, err := s.mongoStore.ListSurveys()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorAnalytics, err)
		return
	}

	c.JSON(http.StatusOK, aggregate.Analyze(properties, surveys))
}
