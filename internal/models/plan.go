package models

import "time"

// Plan 资费套餐表
type Plan struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	DataLimit   int       `gorm:"not null" json:"data_limit"` // 流量上限（GB）
	Description string    `json:"description"`
	Type        string    `gorm:"index" json:"type"` // Prepaid / Postpaid
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Plan) TableName() string {
	return "plans"
}
