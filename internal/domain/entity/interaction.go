package entity

type InteractionMethod string

const (
	MethodRequest           InteractionMethod = "REQUEST"
	MethodLetter            InteractionMethod = "LETTER"
	MethodWebsite           InteractionMethod = "WEBSITE"
	MethodCompanyInitiative InteractionMethod = "COMPANY_INITIATIVE"
)

// Rating is the manager's 1..5 grade of a single interaction.
type Rating int

const (
	RatingUnacceptable Rating = iota + 1
	RatingBad
	RatingAverage
	RatingGood
	RatingExcellent
)

func (r Rating) Valid() bool {
	return r >= RatingUnacceptable && r <= RatingExcellent
}

type Interaction struct {
	ID        int               `gorm:"primaryKey"`
	ProjectID int               `gorm:"not null;index"`
	ManagerID int64             `gorm:"not null;index"` // References: users(id)
	Method    InteractionMethod `gorm:"not null"`
	Rating    Rating            `gorm:"not null"`
	About     string            `gorm:"not null"`

	// PublishedAt is written once at creation and never touched again,
	// even when the rest of the row is updated.
	PublishedAt int64 `gorm:"not null;autoUpdateTime:false"`
}
