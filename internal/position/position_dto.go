package position

type CreatePositionRequest struct {
	Name         string `json:"name" binding:"required"`
	Level        int    `json:"level"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
}

type UpdatePositionRequest struct {
	Name         string `json:"name" binding:"required"`
	Level        int    `json:"level"`
	DepartmentID string `json:"department_id" binding:"omitempty,uuid"`
}

type PositionResponse struct {
	ID           string `json:"id"`
	OrgID        string `json:"org_id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	DepartmentID string `json:"department_id,omitempty"`
}
