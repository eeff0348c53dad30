package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/health-risk-server/internal/cache"
	"github.com/health-risk-server/internal/domain"
)

// AssessRequest is the body of POST /api/v1/assess. IncludeAnalysis
// defaults to true when omitted.
type AssessRequest struct {
	Domain          string           `json:"predictor_type" binding:"required"`
	Record          domain.RawRecord `json:"data" binding:"required"`
	IncludeAnalysis *bool            `json:"include_analysis"`
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Domain string           `json:"predictor_type" binding:"required"`
	Record domain.RawRecord `json:"data" binding:"required"`
}

func (s *Server) handleListDomains(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"predictors": s.registry.List(),
		"count":      s.registry.Len(),
	})
}

func (s *Server) handleGetSchema(c *gin.Context) {
	predictor, err := s.registry.Get(c.Param("name"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, predictor.SchemaInfo())
}

func (s *Server) handleAssess(c *gin.Context) {
	var req AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid request body: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	includeAnalysis := true
	if req.IncludeAnalysis != nil {
		includeAnalysis = *req.IncludeAnalysis
	}

	predictor, err := s.registry.Get(req.Domain)
	if err != nil {
		s.writeError(c, err)
		return
	}

	var key string
	if s.cache != nil {
		key = cache.Key(req.Domain, req.Record, includeAnalysis)
		if result, ok := s.cache.Get(c.Request.Context(), key); ok {
			c.JSON(http.StatusOK, result)
			return
		}
	}

	result, err := predictor.Assess(req.Record, includeAnalysis)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if s.cache != nil {
		s.cache.Put(c.Request.Context(), key, result)
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "invalid request body: " + err.Error(),
			"request_id": c.GetString("request_id"),
		})
		return
	}

	predictor, err := s.registry.Get(req.Domain)
	if err != nil {
		s.writeError(c, err)
		return
	}

	analysis, err := predictor.Analyze(req.Record)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// writeError maps engine errors to HTTP statuses: unknown domain is
// 404, every input or capability error is 400, anything else 500.
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		unknownDomain *domain.UnknownDomainError
		missingField  *domain.MissingFieldError
		typeCoercion  *domain.TypeCoercionError
		unsupported   *domain.AnalysisUnsupportedError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &unknownDomain):
		status = http.StatusNotFound
	case errors.As(err, &missingField), errors.As(err, &typeCoercion), errors.As(err, &unsupported):
		status = http.StatusBadRequest
	default:
		s.logger.WithError(err).Error("Unhandled assessment error")
	}

	c.JSON(status, gin.H{
		"error":      err.Error(),
		"request_id": c.GetString("request_id"),
	})
}
