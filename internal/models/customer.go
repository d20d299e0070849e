package models

import "time"

// Customer 客户表
type Customer struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`         // 客户姓名
	Phone     string    `gorm:"not null" json:"phone"`              // 联系电话
	Email     string    `gorm:"index" json:"email"`                 // 邮箱（管理端录入可为空）
	DOB       time.Time `json:"dob"`                                // 出生日期
	Status    string    `gorm:"default:'Active';index" json:"status"` // Active / Inactive
	StartDate time.Time `json:"start_date"`                         // 开户时间
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Customer) TableName() string {
	return "customers"
}

// Age 按出生日期计算周岁
func (c Customer) Age(now time.Time) int {
	age := now.Year() - c.DOB.Year()
	anniversary := c.DOB.AddDate(age, 0, 0)
	if anniversary.After(now) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
