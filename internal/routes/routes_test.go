package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/pkg/config"
	"gearguard/pkg/service"
)

// Жёсткое удаление заявок, оборудования и бригад наружу не выставляется:
// журнал аудита append-only, на записи ссылаются FK. Единственный
// DELETE - исключение участника из бригады.
func TestNoHardDeleteRoutes(t *testing.T) {
	e := echo.New()
	logger := zap.NewNop()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, time.Hour, logger)
	cfg := &config.Config{Cache: config.CacheConfig{UserRoleTTL: time.Minute}}

	// Регистрация маршрутов не трогает базу и кеш, соединения не нужны.
	InitRouter(e, nil, nil, jwtSvc, logger, cfg)

	var memberDeleteFound bool
	for _, r := range e.Routes() {
		if r.Method != http.MethodDelete {
			continue
		}
		assert.Equal(t, "/api/teams/members/:memberId", r.Path,
			"неожиданный DELETE-маршрут: %s", r.Path)
		if r.Path == "/api/teams/members/:memberId" {
			memberDeleteFound = true
		}
	}
	require.True(t, memberDeleteFound)
}
