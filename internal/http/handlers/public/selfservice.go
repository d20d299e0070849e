package public

import (
	"errors"
	"strconv"

	"github.com/telecom-portal/internal/http/response"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCustomerDetail 客户查看本人资料与当前套餐
func (h *Handler) GetCustomerDetail(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		respondError(c, response.CodeUnauthorized, "login required", nil)
		return
	}

	detail, err := h.CustomerService.GetDetail(customerID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}

	login, err := h.CustomerAuthService.GetLoginByCustomerID(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}

	data := gin.H{
		"customer":        detail.Customer,
		"age":             detail.Age,
		"plan":            detail.Plan,
		"plan_start_date": detail.PlanStartDate,
	}
	if login != nil {
		data["username"] = login.Username
	}
	response.Success(c, data)
}

// ListBills 客户账单列表
func (h *Handler) ListBills(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		respondError(c, response.CodeUnauthorized, "login required", nil)
		return
	}

	bills, err := h.BillingService.ListBills(customerID)
	if err != nil {
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}
	response.Success(c, bills)
}

// PayBill 客户缴费
func (h *Handler) PayBill(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		respondError(c, response.CodeUnauthorized, "login required", nil)
		return
	}

	billID, err := strconv.ParseUint(c.Param("billId"), 10, 64)
	if err != nil || billID == 0 {
		respondError(c, response.CodeBadRequest, "invalid bill id", nil)
		return
	}

	if err := h.BillingService.PayBill(uint(billID), customerID); err != nil {
		respondWithMappedError(c, err, payBillErrorRules, response.CodeInternal, "payment failed")
		return
	}

	response.SuccessWithMsg(c, "bill paid", gin.H{"bill_id": uint(billID)})
}

// ChangePlanRequest 变更套餐请求
type ChangePlanRequest struct {
	PlanID uint `json:"plan_id" binding:"required"`
}

// ChangePlan 客户变更套餐
func (h *Handler) ChangePlan(c *gin.Context) {
	customerID, ok := currentCustomerID(c)
	if !ok {
		respondError(c, response.CodeUnauthorized, "login required", nil)
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "plan_id is required", err)
		return
	}

	plan, err := h.PlanService.ChangePlan(customerID, req.PlanID)
	if err != nil {
		respondWithMappedError(c, err, changePlanErrorRules, response.CodeInternal, "plan change failed")
		return
	}

	response.SuccessWithMsg(c, "plan changed", gin.H{"plan": plan})
}

// ListPlans 公开套餐目录
func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.PlanService.List()
	if err != nil {
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}
	response.Success(c, plans)
}
