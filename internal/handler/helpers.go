package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/south-ventures/tikang-front-owner/internal/middleware"
	"github.com/south-ventures/tikang-front-owner/internal/owner"
)

// respondMutationError surfaces a failed mutation as a transient notice.
// Backend rejections keep their status and message; transport failures
// become a 502. Session state is never touched here.
func respondMutationError(c *gin.Context, err error, fallback string) {
	var apiErr *owner.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = fallback
		}
		middleware.RespondWithError(c, apiErr.Status, message)
		return
	}
	middleware.RespondWithError(c, http.StatusBadGateway, fallback)
}

// closeParts releases the readers behind uploaded file parts once the
// backend call has consumed them.
func closeParts(parts []owner.FilePart) {
	for _, part := range parts {
		if closer, ok := part.Content.(io.Closer); ok {
			closer.Close()
		}
	}
}
