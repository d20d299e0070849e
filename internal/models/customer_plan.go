package models

import "time"

// CustomerPlan 客户与套餐的订购关系
// 以 StartDate 最新的一条为客户当前套餐。
type CustomerPlan struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	PlanID     uint      `gorm:"index;not null" json:"plan_id"`
	StartDate  time.Time `gorm:"not null" json:"start_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (CustomerPlan) TableName() string {
	return "customer_plans"
}
