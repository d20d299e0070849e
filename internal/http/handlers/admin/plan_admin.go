package admin

import (
	"errors"
	"strconv"

	"github.com/telecom-portal/internal/http/response"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanRequest 套餐录入请求
type PlanRequest struct {
	Name        string `json:"name"`
	DataLimit   int    `json:"data_limit"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// CreatePlan 创建套餐
func (h *Handler) CreatePlan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.DataLimit <= 0 {
		respondError(c, response.CodeBadRequest, "name and a positive data_limit are required", nil)
		return
	}

	plan, err := h.PlanService.Create(service.PlanInput{
		Name:        req.Name,
		DataLimit:   req.DataLimit,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "create failed", err)
		return
	}
	response.Created(c, plan)
}

// UpdatePlan 更新套餐
func (h *Handler) UpdatePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid plan id", nil)
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	plan, err := h.PlanService.Update(uint(id), service.PlanInput{
		Name:        req.Name,
		DataLimit:   req.DataLimit,
		Description: req.Description,
		Type:        req.Type,
	})
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondError(c, response.CodeNotFound, "plan not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "update failed", err)
		return
	}
	response.Success(c, plan)
}

// DeletePlan 删除套餐
func (h *Handler) DeletePlan(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid plan id", nil)
		return
	}

	if err := h.PlanService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondError(c, response.CodeNotFound, "plan not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "delete failed", err)
		return
	}
	response.SuccessWithMsg(c, "plan deleted", nil)
}
