package policy

import (
	"testing"

	"go-hospital-management/internal/domain/entity"
)

// expected mirrors the access matrix. Role sets are exact: every role not
// listed must be denied.
var expected = []struct {
	resource Resource
	action   Action
	roles    []string
}{
	{ResourcePatient, ActionCreate, []string{"admin", "receptionist", "nurse"}},
	{ResourcePatient, ActionRead, []string{"admin", "doctor", "receptionist", "nurse"}},
	{ResourcePatient, ActionUpdate, []string{"admin", "receptionist", "nurse"}},
	{ResourcePatient, ActionDelete, []string{"admin"}},
	{ResourceDoctor, ActionCreate, []string{"admin"}},
	{ResourceDoctor, ActionRead, []string{"admin", "doctor", "receptionist", "nurse"}},
	{ResourceDoctor, ActionUpdate, []string{"admin"}},
	{ResourceDoctor, ActionDelete, []string{"admin"}},
	{ResourceAppointment, ActionCreate, []string{"admin", "receptionist", "nurse"}},
	{ResourceAppointment, ActionRead, []string{"admin", "doctor", "receptionist", "nurse"}},
	{ResourceAppointment, ActionUpdate, []string{"admin", "receptionist", "nurse"}},
	{ResourceAppointment, ActionDelete, []string{"admin"}},
	{ResourceVisit, ActionCreate, []string{"doctor", "nurse"}},
	{ResourceVisit, ActionRead, []string{"admin", "doctor", "nurse"}},
	{ResourceVisit, ActionUpdate, []string{"doctor", "nurse"}},
	{ResourceVisit, ActionDelete, []string{"admin"}},
	{ResourceChatbot, ActionQuery, []string{"admin", "doctor"}},
	{ResourceAuditLog, ActionRead, []string{"admin"}},
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func TestAllowed_ExactRoleSets(t *testing.T) {
	for _, tt := range expected {
		for _, role := range entity.Roles {
			want := contains(tt.roles, role)
			got := Allowed(role, tt.action, tt.resource)
			if got != want {
				t.Errorf("Allowed(%q, %q, %q) = %v, want %v", role, tt.action, tt.resource, got, want)
			}
		}
	}
}

func TestAllowed_UnknownInputsDenied(t *testing.T) {
	if Allowed("admin", ActionQuery, ResourcePatient) {
		t.Error("unknown action on resource should be denied")
	}
	if Allowed("admin", ActionRead, Resource("ward")) {
		t.Error("unknown resource should be denied")
	}
	if Allowed("superuser", ActionRead, ResourcePatient) {
		t.Error("unknown role should be denied")
	}
	if Allowed("", ActionRead, ResourcePatient) {
		t.Error("empty role should be denied")
	}
}

func TestAllowedRoles(t *testing.T) {
	roles := AllowedRoles(ActionDelete, ResourceVisit)
	if len(roles) != 1 || roles[0] != "admin" {
		t.Errorf("AllowedRoles(delete, visit) = %v, want [admin]", roles)
	}
	if AllowedRoles(ActionQuery, ResourceDoctor) != nil {
		t.Error("AllowedRoles for unmapped action should be nil")
	}
}
