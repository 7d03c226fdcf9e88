package services

import (
	"context"

	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/utils"
)

// requireAdmin - общий гейт для мутаций справочных данных.
// Роль кладёт в контекст auth-middleware.
func requireAdmin(ctx context.Context) error {
	role, err := utils.GetUserRoleFromCtx(ctx)
	if err != nil {
		return err
	}
	if role != constants.RoleAdmin {
		return apperrors.ErrForbidden
	}
	return nil
}
