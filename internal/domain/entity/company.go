package entity

// Company is the parent record of the composite save operation. Phones and
// Emails never exist outside of it; their rows are only written through a
// company save and are removed when the company goes away.
type Company struct {
	ID                 int    `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	DirectorName       string `gorm:"not null"`
	DirectorSurname    string `gorm:"not null"`
	DirectorPatronymic string `gorm:"not null"`
	About              string `gorm:"not null"`
	Location           string `gorm:"not null"`
	AvatarKey          string
	OwnerID            int64 `gorm:"not null;index"` // References: users(id)
	CreatedAt          int64 `gorm:"not null"`

	// UpdatedAt is NOT maintained automatically. It is a plain date the owner
	// supplies on every explicit update, and stays NULL until the first one.
	UpdatedAt *string `gorm:"autoUpdateTime:false"`

	// Relations
	Phones   []*Phone   `gorm:"foreignKey:CompanyID;references:ID;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
	Emails   []*Email   `gorm:"foreignKey:CompanyID;references:ID;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
	Projects []*Project `gorm:"foreignKey:CompanyID;references:ID;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}

type Phone struct {
	ID        int    `gorm:"primaryKey"`
	CompanyID int    `gorm:"not null;index"`
	Number    string `gorm:"not null"` // exactly 12 digits
}

type Email struct {
	ID        int    `gorm:"primaryKey"`
	CompanyID int    `gorm:"not null;index"`
	Address   string `gorm:"not null"`
}
