package contract

// DefaultContactSlots is how many empty phone/email slots the UI offers on a
// fresh create form. Submitting them blank is fine; blank slots are skipped,
// not rejected.
const DefaultContactSlots = 2

var ValidAvatarFileTypes = []string{"png", "jpg", "jpeg", "webp", "gif"}

// PhoneSlot is one row of the phone collection in a composite save. On
// update, an ID targets an existing row and Delete marks it for removal.
// A slot with no ID, no number and no delete marker counts as blank.
type PhoneSlot struct {
	ID     int    `json:"id,omitempty"`
	Number string `json:"number" validate:"required,len=12,number"`
	Delete bool   `json:"delete,omitempty"`
}

func (p *PhoneSlot) Blank() bool {
	return p.ID == 0 && p.Number == "" && !p.Delete
}

// EmailSlot mirrors PhoneSlot for the email collection.
type EmailSlot struct {
	ID      int    `json:"id,omitempty"`
	Address string `json:"address" validate:"required,email,max=100"`
	Delete  bool   `json:"delete,omitempty"`
}

func (e *EmailSlot) Blank() bool {
	return e.ID == 0 && e.Address == "" && !e.Delete
}

type CreateCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=50"`
	DirectorName       string `json:"director_name" validate:"required,max=20,capitalized"`
	DirectorSurname    string `json:"director_surname" validate:"required,max=20,capitalized"`
	DirectorPatronymic string `json:"director_patronymic" validate:"required,max=20"`
	About              string `json:"about" validate:"required,max=500"`
	Location           string `json:"location" validate:"required,max=30"`

	// Slot collections are validated per-slot by the editor, not here:
	// blank slots must be skipped rather than failed.
	Phones []PhoneSlot `json:"phones"`
	Emails []EmailSlot `json:"emails"`
}

// UpdateCompanyRequest differs from create in one place: the last-updated
// date must be supplied explicitly and well-formed. It is never computed.
type UpdateCompanyRequest struct {
	Name               string `json:"name" validate:"required,min=2,max=50"`
	DirectorName       string `json:"director_name" validate:"required,max=20,capitalized"`
	DirectorSurname    string `json:"director_surname" validate:"required,max=20,capitalized"`
	DirectorPatronymic string `json:"director_patronymic" validate:"required,max=20"`
	About              string `json:"about" validate:"required,max=500"`
	Location           string `json:"location" validate:"required,max=30"`
	UpdatedAt          string `json:"updated_at" validate:"required,datetime=2006-01-02"`

	Phones []PhoneSlot `json:"phones"`
	Emails []EmailSlot `json:"emails"`
}

type PhoneResponse struct {
	ID     int    `json:"id"`
	Number string `json:"number"`
}

type EmailResponse struct {
	ID      int    `json:"id"`
	Address string `json:"address"`
}

type CompanyResponse struct {
	ID                 int                `json:"id"`
	Name               string             `json:"name"`
	DirectorName       string             `json:"director_name"`
	DirectorSurname    string             `json:"director_surname"`
	DirectorPatronymic string             `json:"director_patronymic"`
	About              string             `json:"about"`
	Location           string             `json:"location"`
	AvatarKey          string             `json:"avatar_key,omitempty"`
	OwnerID            int64              `json:"owner_id"`
	CreatedAt          string             `json:"created_at"`
	UpdatedAt          *string            `json:"updated_at,omitempty"`
	Phones             []*PhoneResponse   `json:"phones"`
	Emails             []*EmailResponse   `json:"emails"`
	Projects           []*ProjectResponse `json:"projects,omitempty"`
}

// CompanyListItem is the paged index row, annotated with a derived project
// count. The count is a read-only projection, never stored.
type CompanyListItem struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	AvatarKey    string `json:"avatar_key,omitempty"`
	OwnerID      int64  `json:"owner_id"`
	ProjectCount int64  `json:"project_count"`
}

type CompanyListResponse struct {
	Companies []*CompanyListItem `json:"companies"`
	Page      int                `json:"page"`
	PageSize  int                `json:"page_size"`
	Total     int64              `json:"total"`
}
