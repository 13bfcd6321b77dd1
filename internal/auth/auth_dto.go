package auth

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	// Bootstrap organisasi saat signup; boleh kosong, user lahir
	// tanpa membership dan request-nya jalan tanpa scope.
	OrganizationName string `json:"organization_name"`
	OrganizationSlug string `json:"organization_slug" binding:"omitempty,lowercase"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`

	OrganizationID string `json:"organization_id,omitempty"`
}
