package models

import "time"

// ExpenseStatus represents the payment status of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPending ExpenseStatus = "pending"
	ExpenseStatusPaid    ExpenseStatus = "paid"
)

// Expense represents a single bill or outgoing payment.
type Expense struct {
	Base
	ProfileID          uint          `gorm:"not null;index" json:"profile_id"`
	ExpenseName        string        `gorm:"not null" json:"expense_name"`
	ExpenseDescription string        `json:"expense_description"`
	Amount             float64       `gorm:"not null" json:"amount"`
	DateDue            time.Time     `gorm:"not null;index" json:"date_due"`
	DatePaid           *time.Time    `json:"date_paid,omitempty"`
	Autopay            bool          `gorm:"default:false" json:"autopay"`
	Status             ExpenseStatus `gorm:"default:pending" json:"status"`
}

// OwnerID implements Owned.
func (e Expense) OwnerID() uint { return e.ProfileID }
