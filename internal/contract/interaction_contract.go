package contract

type CreateInteractionRequest struct {
	Method string `json:"method" validate:"required,oneof=REQUEST LETTER WEBSITE COMPANY_INITIATIVE"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	About  string `json:"about" validate:"required,max=1000"`
}

type UpdateInteractionRequest struct {
	Method *string `json:"method" validate:"omitempty,oneof=REQUEST LETTER WEBSITE COMPANY_INITIATIVE"`
	Rating *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	About  *string `json:"about" validate:"omitempty,max=1000"`
}

type InteractionResponse struct {
	ID        int    `json:"id"`
	ProjectID int    `json:"project_id"`
	ManagerID int64  `json:"manager_id"`
	Method    string `json:"method"`
	Rating    int    `json:"rating"`
	About     string `json:"about"`

	// PublishedAt reflects creation time and never changes afterwards.
	PublishedAt string `json:"published_at"`
}
