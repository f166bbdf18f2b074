package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Subjects are the two tenant roles carried in the JWT. Admins can do
// everything inside their company; members get read access plus the
// self-service actions. Ownership checks (own document, own onboarding task)
// stay in the services; this layer only gates routes.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

var memberPolicies = [][]string{
	{RoleMember, "company", "read"},
	{RoleMember, "employee", "read"},
	{RoleMember, "role", "read"},
	{RoleMember, "team", "read"},
	{RoleMember, "document", "read"},
	{RoleMember, "document", "create"},
	{RoleMember, "timeoff", "read"},
	{RoleMember, "timeoff", "create"},
	{RoleMember, "onboarding", "read"},
	{RoleMember, "onboarding", "complete"},
	{RoleMember, "notification", "read"},
	{RoleMember, "notification", "update"},
}

//go:generate mockgen -source=rbac.go -destination=mock/rbac_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := enforcer.AddPolicy(RoleAdmin, "*", "*"); err != nil {
		return nil, err
	}
	for _, p := range memberPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(role, resource, action)
}
