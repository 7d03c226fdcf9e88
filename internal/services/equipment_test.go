package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

func TestCreateEquipmentRequiresAdmin(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepo(), zap.NewNop())

	_, err := svc.CreateEquipment(authCtx(1, constants.RoleUser), dto.CreateEquipmentDTO{
		Name:         "Станок",
		SerialNumber: "SN-100",
		CategoryID:   1,
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = svc.CreateEquipment(authCtx(1, constants.RoleAdmin), dto.CreateEquipmentDTO{
		Name:         "Станок",
		SerialNumber: "SN-100",
		CategoryID:   1,
	})
	assert.NoError(t, err)
}

func TestCreateEquipmentDuplicateSerialNumber(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepo(), zap.NewNop())
	ctx := authCtx(1, constants.RoleAdmin)

	_, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Первый", SerialNumber: "SN-DUP", CategoryID: 1,
	})
	require.NoError(t, err)

	_, err = svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Второй", SerialNumber: "SN-DUP", CategoryID: 1,
	})
	require.Error(t, err)

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestUpdateEquipmentRequiresAdmin(t *testing.T) {
	repo := newFakeEquipmentRepo()
	svc := NewEquipmentService(repo, zap.NewNop())
	ctx := authCtx(1, constants.RoleAdmin)

	id, err := svc.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Станок", SerialNumber: "SN-200", CategoryID: 1,
	})
	require.NoError(t, err)

	err = svc.UpdateEquipment(authCtx(2, constants.RoleUser), id, dto.UpdateEquipmentDTO{
		Status: utils.StringPtr(constants.EquipmentStatusInactive),
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.UpdateEquipment(ctx, id, dto.UpdateEquipmentDTO{
		Status: utils.StringPtr(constants.EquipmentStatusInactive),
	})
	require.NoError(t, err)

	equipment, err := svc.FindEquipment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.EquipmentStatusInactive, equipment.Status)
}

func TestTeamMutationsRequireAdmin(t *testing.T) {
	svc := NewTeamService(newFakeTeamRepo(), nil, zap.NewNop())

	_, err := svc.CreateTeam(authCtx(1, constants.RoleUser), dto.CreateTeamDTO{Name: "Механики"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	id, err := svc.CreateTeam(authCtx(1, constants.RoleAdmin), dto.CreateTeamDTO{Name: "Механики"})
	require.NoError(t, err)

	err = svc.UpdateTeam(authCtx(2, constants.RoleUser), id, dto.UpdateTeamDTO{Name: utils.StringPtr("Электрики")})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestMaintenanceLogAddRequiresAdmin(t *testing.T) {
	equipmentRepo := newFakeEquipmentRepo()
	// Сервисному журналу нужен только гейт, фейковый репозиторий
	// журнала здесь не требуется: до него дело не доходит.
	svc := NewMaintenanceLogService(nil, equipmentRepo, zap.NewNop())

	_, err := svc.AddEntry(authCtx(1, constants.RoleUser), dto.AddMaintenanceLogDTO{
		EquipmentID: 1,
		ServiceType: "repair",
	})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
