package rbac

import "go-hr-analytics/internal/domain"

type EnforceRequest = domain.EnforceRequest
type EnforceResponse = domain.EnforceResponse
type RoleResponse = domain.RoleResponse
