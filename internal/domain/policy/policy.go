package policy

import "go-hospital-management/internal/domain/entity"

// Resource is a protected resource type.
type Resource string

// Action is an operation on a resource.
type Action string

const (
	ResourcePatient     Resource = "patient"
	ResourceDoctor      Resource = "doctor"
	ResourceAppointment Resource = "appointment"
	ResourceVisit       Resource = "visit"
	ResourceChatbot     Resource = "chatbot"
	ResourceAuditLog    Resource = "audit_log"
)

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionQuery  Action = "query"
)

// table is the single source of truth for role-based access. Every role
// check in the system must reduce to a lookup here; handlers and the chatbot
// must never carry their own role lists.
var table = map[Resource]map[Action][]string{
	ResourcePatient: {
		ActionCreate: {entity.RoleAdmin, entity.RoleReceptionist, entity.RoleNurse},
		ActionRead:   {entity.RoleAdmin, entity.RoleDoctor, entity.RoleReceptionist, entity.RoleNurse},
		ActionUpdate: {entity.RoleAdmin, entity.RoleReceptionist, entity.RoleNurse},
		ActionDelete: {entity.RoleAdmin},
	},
	ResourceDoctor: {
		ActionCreate: {entity.RoleAdmin},
		ActionRead:   {entity.RoleAdmin, entity.RoleDoctor, entity.RoleReceptionist, entity.RoleNurse},
		ActionUpdate: {entity.RoleAdmin},
		ActionDelete: {entity.RoleAdmin},
	},
	ResourceAppointment: {
		ActionCreate: {entity.RoleAdmin, entity.RoleReceptionist, entity.RoleNurse},
		ActionRead:   {entity.RoleAdmin, entity.RoleDoctor, entity.RoleReceptionist, entity.RoleNurse},
		ActionUpdate: {entity.RoleAdmin, entity.RoleReceptionist, entity.RoleNurse},
		ActionDelete: {entity.RoleAdmin},
	},
	ResourceVisit: {
		ActionCreate: {entity.RoleDoctor, entity.RoleNurse},
		ActionRead:   {entity.RoleAdmin, entity.RoleDoctor, entity.RoleNurse},
		ActionUpdate: {entity.RoleDoctor, entity.RoleNurse},
		ActionDelete: {entity.RoleAdmin},
	},
	ResourceChatbot: {
		ActionQuery: {entity.RoleAdmin, entity.RoleDoctor},
	},
	ResourceAuditLog: {
		ActionRead: {entity.RoleAdmin},
	},
}

// Allowed reports whether role may perform action on resource. Unknown
// resources, actions, and roles are all denied.
func Allowed(role string, action Action, resource Resource) bool {
	actions, ok := table[resource]
	if !ok {
		return false
	}
	roles, ok := actions[action]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedRoles returns the exact role set permitted for (action, resource).
func AllowedRoles(action Action, resource Resource) []string {
	actions, ok := table[resource]
	if !ok {
		return nil
	}
	return actions[action]
}
