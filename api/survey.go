package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/neighborfit/neighborfit-api/schema"
)

// submitSurvey persists a questionnaire and forwards it to the matching
// service in the same request. A matcher failure fails the whole submit;
// there is no retry and no queue.
func (s *Server) submitSurvey(c *gin.Context) {
	var params schema.Survey

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSurvey(err), err)
		return
	}

	id, err := s.mongoStore.CreateSurvey(&params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	results, err := s.matchingClient.Match(c, &params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      id,
		"results": results,
	})
}

// matchSurvey is the legacy submit path: same side effects as submitSurvey,
// but the matcher response body is relayed as-is.
func (s *Server) matchSurvey(c *gin.Context) {
	var params schema.Survey

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidSurvey(err), err)
		return
	}

	if _, err := s.mongoStore.CreateSurvey(&params); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	results, err := s.matchingClient.Match(c, &params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", results)
}
