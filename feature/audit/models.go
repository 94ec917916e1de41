package audit

import "time"

// TableName is the table holding journal entries.
const TableName = "audit_entries"

// Entry is one recorded storage mutation.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Operation string    `gorm:"size:32;not null" json:"operation"`
	Bucket    string    `gorm:"size:63;not null;index" json:"bucket"`
	Object    string    `gorm:"size:1024" json:"object,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the gorm table name.
func (Entry) TableName() string {
	return TableName
}
