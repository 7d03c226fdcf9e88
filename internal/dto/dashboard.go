package dto

// RequestsByStatusDTO — гистограмма заявок по статусам.
type RequestsByStatusDTO struct {
	New        int `json:"new"`
	InProgress int `json:"inProgress"`
	Repaired   int `json:"repaired"`
	Scrap      int `json:"scrap"`
}

// DashboardSnapshotDTO — моментальный срез для дашборда.
// Ничего не персистится, всё пересчитывается при каждом вызове.
type DashboardSnapshotDTO struct {
	OpenRequests             int                 `json:"openRequests"`
	OverdueRequests          int                 `json:"overdueRequests"`
	UpcomingMaintenanceCount int                 `json:"upcomingMaintenanceCount"`
	TotalRequests            int                 `json:"totalRequests"`
	TotalEquipment           int                 `json:"totalEquipment"`
	ActiveEquipment          int                 `json:"activeEquipment"`
	TotalTeams               int                 `json:"totalTeams"`
	RequestsByStatus         RequestsByStatusDTO `json:"requestsByStatus"`
}
