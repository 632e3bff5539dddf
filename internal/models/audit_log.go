package models

// AuditLog records mutating user operations (statement imports, goal
// writes, transaction resets) with the client IP and a JSON change
// payload. Rows are append-only; nothing in the application reads them
// back, they exist for offline review.
type AuditLog struct {
	Base
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resource_type"`
	ResourceID   uint   `json:"resource_id"`
	IPAddress    string `json:"ip_address"`
	Changes      string `json:"changes,omitempty"`
}
