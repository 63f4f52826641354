package entity

type ProjectStatus string

const (
	StatusCompleted     ProjectStatus = "COMPLETED"
	StatusInDevelopment ProjectStatus = "IN_DEVELOPMENT"
	StatusOverdue       ProjectStatus = "OVERDUE"
)

type Project struct {
	ID          int           `gorm:"primaryKey"`
	CompanyID   int           `gorm:"not null;index"`
	CreatedByID *int64        `gorm:"index"` // References: users(id), informational only
	Name        string        `gorm:"not null"`
	About       string        `gorm:"not null"`
	StartDate   string        `gorm:"not null"` // YYYY-MM-DD
	EndDate     string        `gorm:"not null"` // YYYY-MM-DD
	Status      ProjectStatus `gorm:"not null"`
	Price       int64         `gorm:"not null"` // non-negative
	CreatedAt   int64         `gorm:"not null"`
	UpdatedAt   int64         `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Interactions []*Interaction `gorm:"foreignKey:ProjectID;references:ID;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}
