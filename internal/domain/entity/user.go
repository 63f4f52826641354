package entity

// User is the authenticated principal of the platform. Identity lives in the
// IDP (referenced through SubUUID); profile attributes live here.
type User struct {
	ID            int64  `gorm:"primaryKey"`
	SubUUID       string `gorm:"not null;uniqueIndex"`
	Username      string `gorm:"not null"`
	Email         string `gorm:"not null;uniqueIndex"`
	EmailVerified bool   `gorm:"not null"`
	FirstName     string
	LastName      string
	Birthday      *string // YYYY-MM-DD, optional
	Location      string
	AvatarKey     string
	Active        bool  `gorm:"not null;default:true"`
	CreatedAt     int64 `gorm:"not null"`
	UpdatedAt     int64 `gorm:"not null;autoUpdateTime:false"`
}
