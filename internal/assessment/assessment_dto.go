package assessment

type CreateAssessmentRequest struct {
	EmployeeID  string                  `json:"employee_id" binding:"required,uuid"`
	Title       string                  `json:"title" binding:"required"`
	PeriodStart string                  `json:"period_start" binding:"required"`
	PeriodEnd   string                  `json:"period_end" binding:"required"`
	Items       []CreateAssessmentItem  `json:"items" binding:"required,min=1,dive"`
}

type CreateAssessmentItem struct {
	Name   string  `json:"name" binding:"required"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

type AssessmentItemResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Score  float64 `json:"score"`
}

type AssessmentResponse struct {
	ID          string                   `json:"id"`
	OrgID       string                   `json:"org_id"`
	EmployeeID  string                   `json:"employee_id"`
	Title       string                   `json:"title"`
	PeriodStart string                   `json:"period_start"`
	PeriodEnd   string                   `json:"period_end"`
	Items       []AssessmentItemResponse `json:"items,omitempty"`
}
