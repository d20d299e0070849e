package admin

import (
	"errors"
	"strconv"
	"time"

	"github.com/telecom-portal/internal/http/response"
	"github.com/telecom-portal/internal/repository"
	"github.com/telecom-portal/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

// ListCustomers 客户列表（支持关键字与状态过滤）
func (h *Handler) ListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := repository.CustomerListFilter{
		Keyword:  c.Query("search"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	customers, total, err := h.CustomerService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}

	totalPage := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPage++
	}
	response.SuccessWithPage(c, customers, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// CustomerRequest 管理端客户录入请求
type CustomerRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	DOB       string `json:"dob"`
	Status    string `json:"status"`
	PlanID    uint   `json:"plan_id"`
	StartDate string `json:"start_date"`
}

func (r CustomerRequest) toInput() (service.CustomerInput, error) {
	input := service.CustomerInput{
		Name:   r.Name,
		Phone:  r.Phone,
		Email:  r.Email,
		Status: r.Status,
		PlanID: r.PlanID,
	}
	if r.DOB != "" {
		dob, err := time.Parse("2006-01-02", r.DOB)
		if err != nil {
			return input, err
		}
		input.DOB = dob
	}
	if r.StartDate != "" {
		start, err := time.Parse("2006-01-02", r.StartDate)
		if err != nil {
			return input, err
		}
		input.StartDate = start
	}
	return input, nil
}

// CreateCustomer 管理端创建客户
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if req.Name == "" || req.Phone == "" {
		respondError(c, response.CodeBadRequest, "name and phone are required", nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "dates must be in YYYY-MM-DD format", nil)
		return
	}

	customer, err := h.CustomerService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			respondError(c, response.CodeNotFound, "plan not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "create failed", err)
		return
	}
	response.Created(c, customer)
}

// UpdateCustomer 管理端更新客户
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid customer id", nil)
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondError(c, response.CodeBadRequest, "dates must be in YYYY-MM-DD format", nil)
		return
	}

	customer, err := h.CustomerService.Update(uint(id), input)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "update failed", err)
		return
	}
	response.Success(c, customer)
}

// GetCustomer 管理端查看客户详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid customer id", nil)
		return
	}

	detail, err := h.CustomerService.GetDetail(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "customer not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "query failed", err)
		return
	}
	response.Success(c, detail)
}
