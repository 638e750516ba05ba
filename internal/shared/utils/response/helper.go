package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// GuardRedirect answers a navigation-guard failure: the required
// predecessor state is missing, so the client is pointed back at the
// flow's entry step instead of being shown an error.
func GuardRedirect(c *gin.Context, message, entryPoint string) {
	c.JSON(http.StatusConflict, StandardApiResponse{
		Status:     "error",
		StatusCode: http.StatusConflict,
		Message:    message,
		Errors: gin.H{
			"entry_point": entryPoint,
		},
	})
}
