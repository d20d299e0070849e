package models

import "time"

// CustomerLogin 客户登录凭据表（与 Customer 一对一）
// 密码按源系统约定存明文并做精确匹配，不参与 JSON 输出。
// 重置令牌最多同时存在一个，发起新的重置直接覆盖旧令牌。
type CustomerLogin struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	CustomerID       uint       `gorm:"uniqueIndex;not null" json:"customer_id"`
	Username         string     `gorm:"uniqueIndex;not null" json:"username"`
	Password         string     `gorm:"not null" json:"-"`
	Email            string     `gorm:"index;not null" json:"email"`
	ResetToken       *string    `gorm:"index" json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (CustomerLogin) TableName() string {
	return "customer_logins"
}
