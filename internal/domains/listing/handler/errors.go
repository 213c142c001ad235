package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"booklisting-backend/internal/auth"
	"booklisting-backend/internal/domains/listing/model"
	"booklisting-backend/internal/shared/middleware"
	"booklisting-backend/internal/shared/response"
	"booklisting-backend/pkg/datauri"
	"booklisting-backend/pkg/kv"
)

type errorMapping struct {
	Err     error
	Status  int
	Message string
}

// listingErrorMap is matched with errors.Is in order; the first hit wins.
var listingErrorMap = []errorMapping{
	{model.ErrValidation, http.StatusBadRequest, "Missing required fields"},
	{model.ErrMissingID, http.StatusBadRequest, "Missing book ID"},
	{model.ErrInvalidCode, http.StatusBadRequest, "Invalid code"},
	{auth.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{model.ErrListingNotFound, http.StatusNotFound, "Book not found"},
	{model.ErrImageNotFound, http.StatusNotFound, "Image not found"},
	{datauri.ErrMalformed, http.StatusInternalServerError, "Invalid image data"},
	{kv.ErrUnavailable, http.StatusInternalServerError, "Storage unavailable"},
}

// handleError writes the response for err and reports whether it did.
func handleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for _, m := range listingErrorMap {
		if errors.Is(err, m.Err) {
			if m.Status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextKeyRequestID)).Msg("[Handler] Request failed")
			}
			response.Error(c, m.Status, m.Message)
			return true
		}
	}

	log.Error().Err(err).Str("request_id", c.GetString(middleware.ContextKeyRequestID)).Msg("[Handler] Unexpected error")
	response.InternalServerError(c, "Internal server error")
	return true
}
