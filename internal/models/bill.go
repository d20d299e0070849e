package models

import "time"

// Bill 账单表
type Bill struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CustomerID uint      `gorm:"index;not null" json:"customer_id"`
	Amount     Money     `gorm:"type:decimal(12,2);not null" json:"amount"`
	BillDate   time.Time `gorm:"not null" json:"bill_date"`
	DueDate    time.Time `gorm:"not null" json:"due_date"`
	Status     string    `gorm:"default:'Pending';index" json:"status"` // Pending / Paid
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName 指定表名
func (Bill) TableName() string {
	return "bills"
}
