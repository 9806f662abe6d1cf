package models

// BudgetTemplate is a named, reusable bundle of recurring expense
// definitions used to seed a new monthly budget.
type BudgetTemplate struct {
	Base
	ProfileID    uint   `gorm:"not null;index" json:"profile_id"`
	TemplateName string `gorm:"not null" json:"template_name"`

	TemplateExpenses []TemplateExpense `gorm:"foreignKey:BudgetTemplateID" json:"template_expenses,omitempty"`
}

// OwnerID implements Owned.
func (t BudgetTemplate) OwnerID() uint { return t.ProfileID }

// TemplateExpense is a recurring expense definition inside a budget
// template. DueDay is a day-of-month (1-31) clamped to the last valid
// day when projected onto a real month.
type TemplateExpense struct {
	Base
	ProfileID          uint    `gorm:"not null;index" json:"profile_id"`
	BudgetTemplateID   uint    `gorm:"not null;index" json:"budget_template_id"`
	ExpenseName        string  `gorm:"not null" json:"expense_name"`
	ExpenseDescription string  `json:"expense_description"`
	Amount             float64 `gorm:"not null" json:"amount"`
	DueDay             int     `gorm:"not null" json:"due_day"`
	Autopay            bool    `gorm:"default:false" json:"autopay"`
}

// OwnerID implements Owned.
func (t TemplateExpense) OwnerID() uint { return t.ProfileID }
