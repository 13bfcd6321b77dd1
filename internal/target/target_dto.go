package target

type ImportTargetRequest struct {
	Header string     `json:"header"`
	Rows   [][]string `json:"rows" binding:"required"`
}

type TargetResponse struct {
	ID        int64   `json:"id"`
	OrgID     string  `json:"org_id"`
	Title     string  `json:"title"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Amount    float64 `json:"amount"`
}

type ImportTargetResponse struct {
	Imported int              `json:"imported"`
	Targets  []TargetResponse `json:"targets"`
}
