package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

func newRequestServiceForTest() (*RequestService, *fakeRequestRepo, *fakeEquipmentRepo, *fakeHistoryRepo) {
	requestRepo := newFakeRequestRepo()
	equipmentRepo := newFakeEquipmentRepo()
	historyRepo := newFakeHistoryRepo()
	historyService := NewHistoryService(historyRepo, zap.NewNop())

	// Бригада с id=1, на неё ссылаются заявки в тестах.
	teamRepo := newFakeTeamRepo()
	_, _ = teamRepo.CreateTeam(context.Background(), dto.CreateTeamDTO{Name: "Механики"})

	svc := NewRequestService(&fakeTxManager{}, requestRepo, equipmentRepo, teamRepo, historyService, zap.NewNop()).(*RequestService)
	return svc, requestRepo, equipmentRepo, historyRepo
}

func TestCreateRequest(t *testing.T) {
	svc, _, equipmentRepo, historyRepo := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-1", Status: constants.EquipmentStatusActive})

	ctx := authCtx(1, constants.RoleUser)
	created, err := svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Не включается",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Номер заявки формата MR-<timestamp>
	assert.True(t, strings.HasPrefix(created.RequestNumber, "MR-"))

	request, err := svc.FindRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusNew, request.Status)
	assert.Equal(t, constants.PriorityMedium, request.Priority, "приоритет по умолчанию - medium")

	// Запись "created" в журнале
	history, err := historyRepo.GetByRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, constants.HistoryActionCreated, history[0].Action)
	assert.Equal(t, constants.RequestStatusNew, history[0].NewValue.String)
}

func TestCreateRequestEquipmentNotFound(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()

	_, err := svc.CreateRequest(authCtx(1, constants.RoleUser), dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Поломка",
		EquipmentID: 999,
		TeamID:      1,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateRequestTeamNotFound(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-7", Status: constants.EquipmentStatusActive})

	// Несуществующая бригада должна дать NotFound, а не ошибку FK из базы.
	_, err := svc.CreateRequest(authCtx(1, constants.RoleUser), dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Поломка",
		EquipmentID: equipmentID,
		TeamID:      999,
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCreateRequestSurvivesHistoryFailure(t *testing.T) {
	svc, _, equipmentRepo, historyRepo := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Принтер", SerialNumber: "SN-2", Status: constants.EquipmentStatusActive})

	// Журнал временно недоступен, заявка всё равно должна создаться.
	historyRepo.failNext = true

	created, err := svc.CreateRequest(authCtx(1, constants.RoleUser), dto.CreateRequestDTO{
		Type:        constants.RequestTypePreventive,
		Subject:     "Плановое ТО",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)

	history, err := historyRepo.GetByRequest(authCtx(1, constants.RoleUser), created.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpdateRequestStatusChange(t *testing.T) {
	svc, _, equipmentRepo, historyRepo := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-3", Status: constants.EquipmentStatusActive})

	ctx := authCtx(7, constants.RoleUser)
	created, err := svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Шумит",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)

	err = svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Status: utils.StringPtr(constants.RequestStatusInProgress),
	})
	require.NoError(t, err)

	request, err := svc.FindRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.RequestStatusInProgress, request.Status)

	history, err := historyRepo.GetByRequest(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 2, "created + ровно одна запись о смене статуса")

	change := history[1]
	assert.Equal(t, constants.HistoryActionStatusChanged, change.Action)
	assert.Equal(t, constants.RequestStatusNew, change.OldValue.String)
	assert.Equal(t, constants.RequestStatusInProgress, change.NewValue.String)
	assert.Equal(t, uint64(7), change.ChangedBy.Uint64)
}

func TestUpdateRequestSameStatusNoHistory(t *testing.T) {
	svc, _, equipmentRepo, historyRepo := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-4", Status: constants.EquipmentStatusActive})

	ctx := authCtx(1, constants.RoleUser)
	created, err := svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Поломка",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)

	// Статус не меняется, записи о смене быть не должно.
	err = svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Status: utils.StringPtr(constants.RequestStatusNew),
		Notes:  utils.StringPtr("уточнение"),
	})
	require.NoError(t, err)

	history, err := historyRepo.GetByRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUpdateRequestScrapCascadesToEquipment(t *testing.T) {
	svc, _, equipmentRepo, _ := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-5", Status: constants.EquipmentStatusActive})

	ctx := authCtx(1, constants.RoleUser)
	created, err := svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Не подлежит ремонту",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)

	err = svc.UpdateRequest(ctx, created.ID, dto.UpdateRequestDTO{
		Status: utils.StringPtr(constants.RequestStatusScrap),
	})
	require.NoError(t, err)

	equipment, err := equipmentRepo.FindEquipment(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusScrapped, equipment.Status)
}

func TestUpdateRequestScrapTwiceIsIdempotent(t *testing.T) {
	svc, _, equipmentRepo, historyRepo := newRequestServiceForTest()
	equipmentID := equipmentRepo.add(entities.Equipment{Name: "Станок", SerialNumber: "SN-6", Status: constants.EquipmentStatusActive})

	ctx := authCtx(1, constants.RoleUser)
	created, err := svc.CreateRequest(ctx, dto.CreateRequestDTO{
		Type:        constants.RequestTypeCorrective,
		Subject:     "Списание",
		EquipmentID: equipmentID,
		TeamID:      1,
	})
	require.NoError(t, err)

	scrap := dto.UpdateRequestDTO{Status: utils.StringPtr(constants.RequestStatusScrap)}
	require.NoError(t, svc.UpdateRequest(ctx, created.ID, scrap))
	require.NoError(t, svc.UpdateRequest(ctx, created.ID, scrap))

	equipment, err := equipmentRepo.FindEquipment(ctx, equipmentID)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusScrapped, equipment.Status)

	// Вторая установка того же статуса не плодит записей аудита.
	history, err := historyRepo.GetByRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestUpdateRequestNotFound(t *testing.T) {
	svc, _, _, _ := newRequestServiceForTest()

	err := svc.UpdateRequest(authCtx(1, constants.RoleUser), 12345, dto.UpdateRequestDTO{
		Status: utils.StringPtr(constants.RequestStatusRepaired),
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
