package rbac

import (
	"context"

	"go-hr-analytics/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error)
	GetRoleInheritance(ctx context.Context) ([]RoleInheritanceRow, error)
	SeedDefaults(ctx context.Context) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RolePermissionRow struct {
	ID       uint   `gorm:"primaryKey"`
	Role     string `gorm:"size:32;not null;uniqueIndex:idx_role_permission"`
	Resource string `gorm:"size:64;not null;uniqueIndex:idx_role_permission"`
	Action   string `gorm:"size:32;not null;uniqueIndex:idx_role_permission"`
}

func (RolePermissionRow) TableName() string { return "role_permissions" }

type RoleInheritanceRow struct {
	ID     uint   `gorm:"primaryKey"`
	Role   string `gorm:"size:32;not null;uniqueIndex:idx_role_parent"`
	Parent string `gorm:"size:32;not null;uniqueIndex:idx_role_parent"`
}

func (RoleInheritanceRow) TableName() string { return "role_inheritance" }

// DefaultPermissions: viewer reads every report, hr uploads them and runs
// the job board, admin can do anything.
var DefaultPermissions = []RolePermissionRow{
	{Role: domain.RoleViewer, Resource: "*", Action: "read"},
	{Role: domain.RoleHR, Resource: "*", Action: "upload"},
	{Role: domain.RoleHR, Resource: "job", Action: "manage"},
	{Role: domain.RoleHR, Resource: "application", Action: "manage"},
	{Role: domain.RoleAdmin, Resource: "*", Action: "*"},
}

var DefaultInheritance = []RoleInheritanceRow{
	{Role: domain.RoleHR, Parent: domain.RoleViewer},
	{Role: domain.RoleAdmin, Parent: domain.RoleHR},
}

func (r *repository) GetRolePermissions(ctx context.Context) ([]RolePermissionRow, error) {
	var result []RolePermissionRow
	err := r.db.WithContext(ctx).Order("role, resource, action").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleInheritance(ctx context.Context) ([]RoleInheritanceRow, error) {
	var result []RoleInheritanceRow
	err := r.db.WithContext(ctx).Order("role").Find(&result).Error
	return result, err
}

// SeedDefaults inserts the default policy rows, leaving existing ones alone.
func (r *repository) SeedDefaults(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perms := append([]RolePermissionRow(nil), DefaultPermissions...)
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&perms).Error; err != nil {
			return err
		}
		inh := append([]RoleInheritanceRow(nil), DefaultInheritance...)
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&inh).Error
	})
}
