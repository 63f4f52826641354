package contract

type CreateProjectRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=80"`
	About     string `json:"about" validate:"required,max=1000"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=COMPLETED IN_DEVELOPMENT OVERDUE"`
	Price     int64  `json:"price" validate:"gte=0"`
}

type UpdateProjectRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=80"`
	About     *string `json:"about" validate:"omitempty,max=1000"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Status    *string `json:"status" validate:"omitempty,oneof=COMPLETED IN_DEVELOPMENT OVERDUE"`
	Price     *int64  `json:"price" validate:"omitempty,gte=0"`
}

type ProjectResponse struct {
	ID               int    `json:"id"`
	CompanyID        int    `json:"company_id"`
	CreatedByID      *int64 `json:"created_by_id,omitempty"`
	Name             string `json:"name"`
	About            string `json:"about"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Status           string `json:"status"`
	Price            int64  `json:"price"`
	InteractionCount *int64 `json:"interaction_count,omitempty"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
