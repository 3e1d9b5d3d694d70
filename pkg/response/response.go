package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanb712/ecotrack/pkg/apperror"
	"github.com/rohanb712/ecotrack/pkg/logger"
)

// Error writes a standardized error response. Validation errors become a
// field-to-messages map; everything else becomes a {"detail": ...} body.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if ve, ok := apperror.AsValidation(err); ok {
		c.JSON(code, ve.Fields)
		return
	}

	if code == http.StatusInternalServerError {
		logger.Sugar().Errorw("internal error", "path", c.Request.URL.Path, "error", err)
		c.JSON(code, gin.H{"detail": "Internal server error"})
		return
	}

	c.JSON(code, gin.H{"detail": detailMessage(code)})
}

func detailMessage(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Action not found"
	case http.StatusBadRequest:
		return "Malformed request body"
	default:
		return http.StatusText(code)
	}
}
