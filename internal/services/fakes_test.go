package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/repositories"
	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"
)

// Фейковые репозитории в памяти. Сервисный слой зависит только от
// интерфейсов, поэтому тесты обходятся без живой базы.

func authCtx(userID uint64, role string) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// --- заявки ---

type fakeRequestRepo struct {
	mu       sync.Mutex
	nextID   uint64
	requests map[uint64]entities.MaintenanceRequest

	// Имитация недоступного хранилища на чтении списков.
	storeErr error
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[uint64]entities.MaintenanceRequest)}
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context, filter repositories.RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.storeErr != nil {
		return nil, 0, f.storeErr
	}

	result := make([]entities.MaintenanceRequest, 0)
	for _, r := range f.requests {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Priority != "" && r.Priority != filter.Priority {
			continue
		}
		if filter.EquipmentID > 0 && r.EquipmentID != filter.EquipmentID {
			continue
		}
		if filter.TeamID > 0 && r.MaintenanceTeamID != filter.TeamID {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, uint64(len(result)), nil
}

func (f *fakeRequestRepo) GetAllRequests(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	all, _, err := f.GetRequests(ctx, repositories.RequestFilter{})
	return all, err
}

func (f *fakeRequestRepo) FindRequest(ctx context.Context, id uint64) (*entities.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (f *fakeRequestRepo) CreateRequest(ctx context.Context, request *entities.MaintenanceRequest) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	request.ID = f.nextID
	f.requests[request.ID] = *request
	return request.ID, nil
}

func (f *fakeRequestRepo) UpdateRequestInTx(ctx context.Context, tx pgx.Tx, id uint64, payload dto.UpdateRequestDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.requests[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Status != nil {
		r.Status = *payload.Status
	}
	if payload.Priority != nil {
		r.Priority = *payload.Priority
	}
	if payload.Notes != nil {
		r.Notes.SetValid(*payload.Notes)
	}
	f.requests[id] = r
	return nil
}

// --- оборудование ---

type fakeEquipmentRepo struct {
	mu         sync.Mutex
	nextID     uint64
	equipments map[uint64]entities.Equipment

	storeErr error
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{equipments: make(map[uint64]entities.Equipment)}
}

func (f *fakeEquipmentRepo) add(e entities.Equipment) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e.ID = f.nextID
	f.equipments[e.ID] = e
	return e.ID
}

func (f *fakeEquipmentRepo) GetEquipments(ctx context.Context, filter repositories.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return nil, 0, f.storeErr
	}
	result := make([]entities.Equipment, 0)
	for _, e := range f.equipments {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, uint64(len(result)), nil
}

func (f *fakeEquipmentRepo) GetAllEquipments(ctx context.Context) ([]entities.Equipment, error) {
	all, _, err := f.GetEquipments(ctx, repositories.EquipmentFilter{})
	return all, err
}

func (f *fakeEquipmentRepo) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.equipments[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEquipmentRepo) FindBySerialNumber(ctx context.Context, serialNumber string) (*entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.equipments {
		if e.SerialNumber == serialNumber {
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeEquipmentRepo) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (uint64, error) {
	return f.add(entities.Equipment{
		Name:         payload.Name,
		SerialNumber: payload.SerialNumber,
		CategoryID:   payload.CategoryID,
		Status:       "active",
	}), nil
}

func (f *fakeEquipmentRepo) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.equipments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Status != nil {
		e.Status = *payload.Status
	}
	if payload.Name != nil {
		e.Name = *payload.Name
	}
	f.equipments[id] = e
	return nil
}

func (f *fakeEquipmentRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id uint64, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.equipments[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	e.Status = status
	f.equipments[id] = e
	return nil
}

// --- журнал аудита ---

type fakeHistoryRepo struct {
	mu      sync.Mutex
	nextID  uint64
	entries []entities.MaintenanceHistory

	// Следующая запись упадёт с ошибкой, флаг одноразовый.
	failNext bool
}

func newFakeHistoryRepo() *fakeHistoryRepo {
	return &fakeHistoryRepo{}
}

func (f *fakeHistoryRepo) insert(entry *entities.MaintenanceHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNext {
		f.failNext = false
		return errors.New("журнал недоступен")
	}
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeHistoryRepo) Create(ctx context.Context, entry *entities.MaintenanceHistory) error {
	return f.insert(entry)
}

func (f *fakeHistoryRepo) CreateInTx(ctx context.Context, tx pgx.Tx, entry *entities.MaintenanceHistory) error {
	return f.insert(entry)
}

func (f *fakeHistoryRepo) GetByRequest(ctx context.Context, requestID uint64) ([]entities.MaintenanceHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]entities.MaintenanceHistory, 0)
	for _, e := range f.entries {
		if e.RequestID == requestID {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeHistoryRepo) GetByEquipment(ctx context.Context, equipmentID uint64) ([]entities.MaintenanceHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]entities.MaintenanceHistory, 0)
	for _, e := range f.entries {
		if e.EquipmentID == equipmentID {
			result = append(result, e)
		}
	}
	return result, nil
}

// --- бригады ---

type fakeTeamRepo struct {
	mu     sync.Mutex
	nextID uint64
	teams  map[uint64]entities.MaintenanceTeam

	storeErr error
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uint64]entities.MaintenanceTeam)}
}

func (f *fakeTeamRepo) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]entities.MaintenanceTeam, 0)
	for _, t := range f.teams {
		result = append(result, t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (f *fakeTeamRepo) FindTeam(ctx context.Context, id uint64) (*entities.MaintenanceTeam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.teams[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &t, nil
}

func (f *fakeTeamRepo) CountTeams(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return 0, f.storeErr
	}
	return len(f.teams), nil
}

func (f *fakeTeamRepo) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.teams[f.nextID] = entities.MaintenanceTeam{ID: f.nextID, Name: payload.Name}
	return f.nextID, nil
}

func (f *fakeTeamRepo) UpdateTeam(ctx context.Context, id uint64, payload dto.UpdateTeamDTO) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.teams[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	if payload.Name != nil {
		t.Name = *payload.Name
	}
	f.teams[id] = t
	return nil
}
