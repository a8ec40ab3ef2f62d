package rbac

import (
	"context"
	"sort"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req EnforceRequest) (bool, error)
	ListRoles() ([]RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

// LoadPolicy replaces the in-memory policy with what the repository holds.
func (s *service) LoadPolicy(ctx context.Context) error {
	inheritance, err := s.repo.GetRoleInheritance(ctx)
	if err != nil {
		return err
	}
	perms, err := s.repo.GetRolePermissions(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()
	for _, ri := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(ri.Role, ri.Parent); err != nil {
			return err
		}
	}
	for _, rp := range perms {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("role_inheritance", len(inheritance)),
		zap.Int("role_permissions", len(perms)),
	)
	return nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	if req.Role == "" {
		return false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles() ([]RoleResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	policies, err := s.enforcer.GetPolicy()
	if err != nil {
		return nil, err
	}
	groupings, err := s.enforcer.GetGroupingPolicy()
	if err != nil {
		return nil, err
	}

	names := map[string]struct{}{}
	for _, p := range policies {
		names[p[0]] = struct{}{}
	}
	for _, g := range groupings {
		names[g[0]] = struct{}{}
		names[g[1]] = struct{}{}
	}

	out := make([]RoleResponse, 0, len(names))
	for name := range names {
		parents, err := s.enforcer.GetRolesForUser(name)
		if err != nil {
			return nil, err
		}
		perms, err := s.enforcer.GetImplicitPermissionsForUser(name)
		if err != nil {
			return nil, err
		}
		flat := make([]string, 0, len(perms))
		for _, p := range perms {
			flat = append(flat, p[1]+":"+p[2])
		}
		sort.Strings(flat)
		sort.Strings(parents)
		out = append(out, RoleResponse{Name: name, Inherits: parents, Permissions: flat})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
