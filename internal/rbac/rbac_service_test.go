package rbac_test

import (
	"context"
	"errors"
	"testing"

	"go-hr-analytics/internal/domain"
	"go-hr-analytics/internal/rbac"
	"go-hr-analytics/internal/rbac/infra"
	rbacMock "go-hr-analytics/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupRBACServiceTest(t *testing.T) (rbac.Service, *rbacMock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := rbacMock.NewMockRepository(ctrl)

	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	return rbac.NewService(repo, enforcer), repo
}

func newLoadedService(t *testing.T) rbac.Service {
	t.Helper()
	svc, repo := setupRBACServiceTest(t)
	repo.EXPECT().GetRolePermissions(gomock.Any()).Return(rbac.DefaultPermissions, nil)
	repo.EXPECT().GetRoleInheritance(gomock.Any()).Return(rbac.DefaultInheritance, nil)

	assert.NoError(t, svc.LoadPolicy(context.Background()))
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newLoadedService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{domain.RoleViewer, "payroll", "read", true},
		{domain.RoleViewer, "payroll", "upload", false},
		{domain.RoleViewer, "job", "manage", false},
		{domain.RoleHR, "demographics", "read", true},
		{domain.RoleHR, "demographics", "upload", true},
		{domain.RoleHR, "job", "manage", true},
		{domain.RoleHR, "role", "read", true},
		{domain.RoleHR, "role", "manage", false},
		{domain.RoleAdmin, "role", "manage", true},
		{"", "payroll", "read", false},
		{"intern", "payroll", "read", false},
	}

	for _, tt := range tests {
		allowed, err := svc.Enforce(rbac.EnforceRequest{Role: tt.role, Resource: tt.resource, Action: tt.action})
		assert.NoError(t, err)
		assert.Equal(t, tt.want, allowed, "%s %s:%s", tt.role, tt.resource, tt.action)
	}
}

func TestRBACService_LoadPolicyError(t *testing.T) {
	svc, repo := setupRBACServiceTest(t)
	repo.EXPECT().GetRoleInheritance(gomock.Any()).Return(rbac.DefaultInheritance, nil)
	repo.EXPECT().GetRolePermissions(gomock.Any()).Return(nil, errors.New("db down"))

	assert.Error(t, svc.LoadPolicy(context.Background()))
}

func TestRBACService_ListRoles(t *testing.T) {
	svc := newLoadedService(t)

	roles, err := svc.ListRoles()
	assert.NoError(t, err)
	assert.Len(t, roles, 3)

	assert.Equal(t, domain.RoleAdmin, roles[0].Name)
	assert.Equal(t, []string{domain.RoleHR}, roles[0].Inherits)

	assert.Equal(t, domain.RoleHR, roles[1].Name)
	assert.Contains(t, roles[1].Permissions, "job:manage")
	assert.Contains(t, roles[1].Permissions, "*:read")

	assert.Equal(t, domain.RoleViewer, roles[2].Name)
	assert.Equal(t, []string{"*:read"}, roles[2].Permissions)
}
