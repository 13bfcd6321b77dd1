package report

type OrgDashboardResponse struct {
	OrgID         string  `json:"org_id"`
	Tasks         int64   `json:"tasks"`
	OpenTasks     int64   `json:"open_tasks"`
	Programs      int64   `json:"programs"`
	Employees     int64   `json:"employees"`
	TargetAmount  float64 `json:"target_amount"`
	PendingEvents int64   `json:"pending_events"`
}

type GlobalDashboardRow struct {
	OrgID        string  `json:"org_id"`
	OrgName      string  `json:"org_name"`
	Tasks        int64   `json:"tasks"`
	Programs     int64   `json:"programs"`
	Employees    int64   `json:"employees"`
	TargetAmount float64 `json:"target_amount"`
}

type DashboardResponse struct {
	GlobalView bool                  `json:"global_view"`
	Org        *OrgDashboardResponse `json:"org,omitempty"`
	Orgs       []GlobalDashboardRow  `json:"orgs,omitempty"`
}
