package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Model dan policy di-embed supaya deploy tidak tergantung file .conf.
// Subject adalah role organisasi (enumerasi tertutup di domain.Role),
// bukan user id; pemetaan user->role diambil dari membership saat
// enforce.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

type policyRule struct {
	role     string
	resource string
	action   string
}

// Owner mewarisi Admin, Admin mewarisi Member.
var policyRules = []policyRule{
	{"Member", "*", "read"},
	{"Member", "task", "create"},
	{"Member", "task", "update"},
	{"Member", "chat", "create"},
	{"Member", "chat", "update"},
	{"Member", "file", "create"},
	{"Member", "reminder", "create"},
	{"Member", "reminder", "update"},
	{"Member", "reminder", "delete"},

	{"Admin", "*", "create"},
	{"Admin", "*", "update"},
	{"Admin", "*", "delete"},
	{"Admin", "target", "import"},

	{"Owner", "organization", "delete"},
}

var roleInheritance = [][2]string{
	{"Owner", "Admin"},
	{"Admin", "Member"},
}

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policyRules {
		if _, err := e.AddPolicy(p.role, p.resource, p.action); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := e.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
