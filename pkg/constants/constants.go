package constants

// --- РОЛИ ПОЛЬЗОВАТЕЛЕЙ ---
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// --- СТАТУСЫ ОБОРУДОВАНИЯ ---
const (
	EquipmentStatusActive   = "active"
	EquipmentStatusInactive = "inactive"
	EquipmentStatusScrapped = "scrapped"
)

// --- СТАТУСЫ ЗАЯВОК НА ОБСЛУЖИВАНИЕ ---
// Переходы между статусами свободные: любой статус может смениться на любой.
// Ограничения по порядку намеренно нет (см. DESIGN.md).
const (
	RequestStatusNew        = "new"
	RequestStatusInProgress = "in_progress"
	RequestStatusRepaired   = "repaired"
	RequestStatusScrap      = "scrap"
)

// Открытые статусы (заявка ещё в работе)
var OpenRequestStatuses = []string{
	RequestStatusNew,
	RequestStatusInProgress,
}

func IsOpenRequestStatus(status string) bool {
	for _, s := range OpenRequestStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- ТИПЫ ЗАЯВОК ---
const (
	RequestTypeCorrective = "corrective" // поломка, реактивный ремонт
	RequestTypePreventive = "preventive" // плановое обслуживание
)

// --- ПРИОРИТЕТЫ ЗАЯВОК ---
const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

// --- ДЕЙСТВИЯ В ЖУРНАЛЕ АУДИТА ---
const (
	HistoryActionCreated       = "created"
	HistoryActionStatusChanged = "status_changed"
)
