package contract

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

type ConfirmSignupRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,min=1,max=8"`
}

type ResendConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateProfileRequest patches the profile: names must start with an
// uppercase letter, birthday is an optional plain date.
type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=2,max=80"`
	FirstName *string `json:"first_name" validate:"omitempty,max=30,capitalized"`
	LastName  *string `json:"last_name" validate:"omitempty,max=30,capitalized"`
	Birthday  *string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Location  *string `json:"location" validate:"omitempty,max=30"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name,omitempty"`
	LastName  string  `json:"last_name,omitempty"`
	Birthday  *string `json:"birthday,omitempty"`
	Location  string  `json:"location,omitempty"`
	AvatarKey string  `json:"avatar_key,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type UserLoginResponse struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token"`
}
