package constants

// 客户状态
const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

// 套餐类型
const (
	PlanTypePrepaid  = "Prepaid"
	PlanTypePostpaid = "Postpaid"
)

// 账单状态
const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
)

// 会话 Cookie：沿用源系统的弱方案（未签名），管理员仅存布尔哨兵，客户直接存数字 ID
const (
	CookieAdminSession    = "admin_session"
	CookieCustomerSession = "customer_session"
	AdminSessionValue     = "true"
)

// 队列名称
const (
	QueueDefault = "default"
)

// 异步任务类型
const (
	TaskPasswordResetEmail = "email:password_reset"
)
