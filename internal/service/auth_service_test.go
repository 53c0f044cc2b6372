package service

import (
	"testing"
	"time"

	"launch-go/internal/config"
	"launch-go/internal/dto"
	"launch-go/internal/repository"
	"launch-go/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.TenantRepository) {
	t.Helper()
	db := setupTestDB(t)
	tenantRepo := repository.NewTenantRepository(db)
	jwtManager := utils.NewJWTManager("test-secret", "HS256", time.Hour)

	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin-password"
	cfg.Admin.Tenant = "system"

	return NewAuthService(repository.NewUserRepository(db), tenantRepo, jwtManager, cfg), tenantRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, tenantRepo := newAuthService(t)

	user, err := svc.Register(&dto.RegisterRequest{
		Username: "alice_1",
		Password: "secret-password",
		Tenant:   "acme",
	})
	require.NoError(t, err)
	assert.False(t, user.IsAdmin)

	// 注册时租户不存在则创建
	tenant, err := tenantRepo.GetByName("acme")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, user.TenantID)

	// 重复用户名
	_, err = svc.Register(&dto.RegisterRequest{
		Username: "alice_1",
		Password: "another-password",
		Tenant:   "acme",
	})
	assert.Error(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Username: "alice_1", Password: "secret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, tenant.ID, resp.User.TenantID)

	_, err = svc.Login(&dto.LoginRequest{Username: "alice_1", Password: "wrong"})
	assert.Error(t, err)
}

func TestRegister_SameTenantReused(t *testing.T) {
	svc, tenantRepo := newAuthService(t)

	u1, err := svc.Register(&dto.RegisterRequest{Username: "a_1", Password: "pw123456", Tenant: "acme"})
	require.NoError(t, err)
	u2, err := svc.Register(&dto.RegisterRequest{Username: "b_2", Password: "pw123456", Tenant: "acme"})
	require.NoError(t, err)

	assert.Equal(t, u1.TenantID, u2.TenantID)

	_, total, err := tenantRepo.List(0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestInitAdmin(t *testing.T) {
	svc, tenantRepo := newAuthService(t)

	require.NoError(t, svc.InitAdmin())

	resp, err := svc.Login(&dto.LoginRequest{Username: "admin", Password: "admin-password"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	tenant, err := tenantRepo.GetByName("system")
	require.NoError(t, err)
	assert.Equal(t, tenant.ID, resp.User.TenantID)

	// 再次初始化不重复创建
	require.NoError(t, svc.InitAdmin())
}
