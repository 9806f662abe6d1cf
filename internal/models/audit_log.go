package models

// AuditLog records mutating operations against a profile's data.
type AuditLog struct {
	Base
	ProfileID    uint   `gorm:"not null;index" json:"profile_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
