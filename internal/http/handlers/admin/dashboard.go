package admin

import (
	"github.com/telecom-portal/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Dashboard 运营看板统计
func (h *Handler) Dashboard(c *gin.Context) {
	overview, err := h.DashboardService.Overview()
	if err != nil {
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}
	response.Success(c, overview)
}
