package employee

type CreateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	PositionID string `json:"position_id" binding:"required,uuid"`
	JoinDate   string `json:"join_date" binding:"required"`
	Status     string `json:"status"`
}

type UpdateEmployeeRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	PositionID string `json:"position_id" binding:"required,uuid"`
	JoinDate   string `json:"join_date" binding:"required"`
	Status     string `json:"status"`
}

type EmployeeDepartmentResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeePositionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID           string                      `json:"id"`
	OrgID        string                      `json:"org_id"`
	FullName     string                      `json:"full_name"`
	Email        string                      `json:"email"`
	Phone        string                      `json:"phone,omitempty"`
	JoinDate     string                      `json:"join_date"`
	Status       string                      `json:"status"`
	DepartmentID string                      `json:"department_id,omitempty"`
	PositionID   string                      `json:"position_id,omitempty"`
	Department   *EmployeeDepartmentResponse `json:"department,omitempty"`
	Position     *EmployeePositionResponse   `json:"position,omitempty"`
}
