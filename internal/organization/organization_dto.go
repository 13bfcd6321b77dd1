package organization

import "time"

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required,lowercase"`
}

type UpdateOrganizationRequest struct {
	Name   string `json:"name"`
	Status string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=Owner Admin Member"`
}

type SwitchOrganizationRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
}

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   string    `json:"owner_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberResponse struct {
	UserID   string    `json:"user_id"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}
