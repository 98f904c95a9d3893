package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/anmicius0/lexicon/internal/config"
	"github.com/anmicius0/lexicon/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PositionsAPI is the application core the handlers call into.
type PositionsAPI interface {
	GetCharacterPositions(ctx context.Context, input *config.MatchInput) ([]config.CharacterPosition, error)
	Info() []config.InfoEntry
}

// Handler bundles request-time dependencies for the API routes.
type Handler struct {
	svc PositionsAPI
}

// newHandler constructs a Handler with attached dependencies.
func newHandler(svc PositionsAPI) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, newResponseBuilder().BuildHealthResponse())
}

func (h *Handler) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Info())
}

func (h *Handler) getCharacterPositions(c *gin.Context) {
	input, err := decodeMatchInput(c)
	if err != nil {
		utils.Logger.Warn("Invalid request body",
			zap.String(utils.FieldRequestID, c.GetString(ContextKeyRequestID)),
			zap.Error(err))
		respBuilder := newResponseBuilder()
		c.JSON(http.StatusUnprocessableEntity, respBuilder.BuildErrorResponse(
			ErrorCodeInvalidRequestBody,
			MessageInvalidRequestBody,
			err.Error(),
		))
		return
	}

	positions, err := h.svc.GetCharacterPositions(c.Request.Context(), input)
	if err != nil {
		respBuilder := newResponseBuilder()
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusServiceUnavailable, respBuilder.BuildErrorResponse(ErrorCodeRequestCancelled, err.Error(), nil))
			return
		}
		utils.Logger.Error("Character positions failed",
			zap.String(utils.FieldRequestID, c.GetString(ContextKeyRequestID)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, respBuilder.BuildErrorResponse(ErrorCodeInternal, MessageInternalError, nil))
		return
	}

	c.IndentedJSON(http.StatusOK, positions)
}

// decodeMatchInput reads the request body. An empty body or a JSON null is an
// absent input and decodes to nil so validation can report it.
func decodeMatchInput(c *gin.Context) (*config.MatchInput, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var input *config.MatchInput
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, err
	}
	return input, nil
}
