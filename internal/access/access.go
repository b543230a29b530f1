// Package access resolves whether a role may perform an operation.
//
// The permission table is a static casbin policy compiled into the binary.
// It is loaded once and never mutated at runtime.
package access

import (
	_ "embed"
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	stringadapter "github.com/casbin/casbin/v2/persist/string-adapter"

	"github.com/heartmarshall/default-registry/internal/domain"
)

//go:embed model.conf
var modelText string

//go:embed policy.csv
var policyText string

// Operation is an (object, action) pair from the permission table.
type Operation struct {
	Object string
	Action string
}

func (o Operation) String() string { return o.Object + ":" + o.Action }

var (
	ApplicationCreate = Operation{"application", "create"}
	ApplicationReview = Operation{"application", "review"}
	ApplicationAttach = Operation{"application", "attach"}
	ApplicationRead   = Operation{"application", "read"}
	CustomerWrite     = Operation{"customer", "write"}
	CustomerDelete    = Operation{"customer", "delete"}
	CustomerRead      = Operation{"customer", "read"}
	ReasonManage      = Operation{"reason", "manage"}
	ReasonRead        = Operation{"reason", "read"}
	UserManage        = Operation{"user", "manage"}
	AuditRead         = Operation{"audit", "read"}
	NotificationRead  = Operation{"notification", "read"}
	StatsRead         = Operation{"stats", "read"}
)

// Table answers permission checks against the embedded policy.
type Table struct {
	enforcer *casbin.SyncedEnforcer
}

// NewTable builds the permission table from the embedded model and policy.
func NewTable() (*Table, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("access: load model: %w", err)
	}
	enf, err := casbin.NewSyncedEnforcer(m, stringadapter.NewAdapter(policyText))
	if err != nil {
		return nil, fmt.Errorf("access: init enforcer: %w", err)
	}
	return &Table{enforcer: enf}, nil
}

// MustNewTable is like NewTable but panics on error. The inputs are embedded,
// so a failure is a build defect.
func MustNewTable() *Table {
	t, err := NewTable()
	if err != nil {
		panic(err)
	}
	return t
}

// Allowed reports whether role may perform op. Unknown roles are denied.
func (t *Table) Allowed(role domain.Role, op Operation) bool {
	if !role.IsValid() {
		return false
	}
	ok, err := t.enforcer.Enforce(string(role), op.Object, op.Action)
	return err == nil && ok
}

// Check returns domain.ErrForbidden when role may not perform op.
func (t *Table) Check(actor domain.Actor, op Operation) error {
	if !t.Allowed(actor.Role, op) {
		return fmt.Errorf("%s %s: %w", actor.Role, op, domain.ErrForbidden)
	}
	return nil
}
