package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/ShreyanshSharma123/interviewHelper/internal/analysis"
	"github.com/ShreyanshSharma123/interviewHelper/internal/document"
	"github.com/ShreyanshSharma123/interviewHelper/internal/logger"
)

var (
	errNoFile  = errors.New("no resume file provided: upload a PDF, DOCX or TXT file")
	errBadForm = errors.New("malformed form data")
)

const internalErrorMessage = "internal server error during analysis"

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Interview Helper API is running"})
}

func (s *Server) extract(c *gin.Context) {
	text, err := s.readUpload(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	processed, err := s.runner.Extract(text)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": processed})
}

func (s *Server) analyze(c *gin.Context) {
	text, err := s.readUpload(c)
	if err != nil {
		s.fail(c, err)
		return
	}

	var req analysis.Request
	if err := c.ShouldBindWith(&req, binding.FormMultipart); err != nil {
		s.fail(c, fmt.Errorf("%w: %v", errBadForm, err))
		return
	}
	req = req.Normalize()

	if err := req.Validate(); err != nil {
		s.fail(c, err)
		return
	}

	log := logger.WithFields(s.logger, logger.RequestFields(c.GetString(requestIDKey), string(req.Type))...)

	resp, err := s.runner.WithLogger(log).Run(c.Request.Context(), req, text)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// readUpload returns the text of the "file" form field.
func (s *Server) readUpload(c *gin.Context) (string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", document.ErrTooLarge
		}
		return "", errNoFile
	}
	if header.Size > s.cfg.MaxUploadBytes {
		return "", document.ErrTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	return s.loader.Load(c.Request.Context(), content, header.Filename, header.Header.Get("Content-Type"))
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = internalErrorMessage
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Success: false, Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errNoFile),
		errors.Is(err, errBadForm),
		errors.Is(err, document.ErrEmpty),
		errors.Is(err, analysis.ErrUnknownType),
		errors.Is(err, analysis.ErrTargetLevel):
		return http.StatusBadRequest
	case errors.Is(err, document.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, document.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, analysis.ErrInsufficientText):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
