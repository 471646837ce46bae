package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlecUrbany/CS-4800/pkg/llm"
)

type GenreHandler struct {
	client llm.GenreClient
}

func NewGenreHandler(client llm.GenreClient) *GenreHandler {
	return &GenreHandler{client: client}
}

// GetGenres serves GET /genres?prompt=...
func (h *GenreHandler) GetGenres(c *gin.Context) {
	h.genres(c, c.Query("prompt"))
}

// PostGenres serves POST /genres with a JSON body.
func (h *GenreHandler) PostGenres(c *gin.Context) {
	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid genre request body", "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusFailure, Error: "Invalid request body"})
		return
	}
	h.genres(c, req.Prompt)
}

func (h *GenreHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Provider: h.client.Name(),
	})
}

func (h *GenreHandler) genres(c *gin.Context, raw string) {
	prompt, err := SanitizePrompt(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Status: statusFailure, Error: err.Error()})
		return
	}

	genres, err := h.client.GetGenres(c.Request.Context(), prompt)
	if err != nil {
		status, msg := errorResponse(err)
		slog.Error("error retrieving genres", "provider", h.client.Name(), "status", status, "error", err)
		c.JSON(status, ErrorResponse{Status: statusFailure, Error: msg})
		return
	}

	slog.Info("genres retrieved", "provider", h.client.Name(), "count", len(genres))
	c.JSON(http.StatusOK, GenreResponse{Status: statusSuccess, Genres: genres})
}

func errorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, llm.ErrEmptyReply),
		errors.Is(err, llm.ErrMalformedReply),
		errors.Is(err, llm.ErrMissingGenres):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, llm.ErrCompletionFailed):
		return http.StatusBadGateway, "Completion service unavailable"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
