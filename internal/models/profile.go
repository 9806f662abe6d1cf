package models

// Profile is the authenticated user's account record and the ownership
// root for all financial data.
type Profile struct {
	Base
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	Password         string `gorm:"not null" json:"-"`
	FullName         string `json:"full_name"`
	Username         string `json:"username"`
	Website          string `json:"website"`
	AvatarURL        string `json:"avatar_url"`
	IsActive         bool   `gorm:"default:true" json:"is_active"`
	RefreshTokenHash string `gorm:"size:64" json:"-"`

	Incomes          []Income           `gorm:"foreignKey:ProfileID" json:"incomes,omitempty"`
	AdditionalIncome []AdditionalIncome `gorm:"foreignKey:ProfileID" json:"additional_income,omitempty"`
	Expenses         []Expense          `gorm:"foreignKey:ProfileID" json:"expenses,omitempty"`
	BudgetTemplates  []BudgetTemplate   `gorm:"foreignKey:ProfileID" json:"budget_templates,omitempty"`
}
