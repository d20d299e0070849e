package admin

import (
	"github.com/telecom-portal/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}
