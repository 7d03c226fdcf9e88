package controllers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

// parseIDParam читает числовой path-параметр.
func parseIDParam(ctx echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Неверный формат ID в пути запроса")
	}
	return id, nil
}

// parseUintQuery читает необязательный числовой query-параметр,
// 0 означает "не задан".
func parseUintQuery(ctx echo.Context, name string) uint64 {
	v, _ := strconv.ParseUint(ctx.QueryParam(name), 10, 64)
	return v
}
