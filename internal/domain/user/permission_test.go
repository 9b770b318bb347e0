package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleEmployee, PermissionAttendanceCreate, true},
		{RoleEmployee, PermissionAttendanceViewOwn, true},
		{RoleEmployee, PermissionLeaveCreate, true},
		{RoleEmployee, PermissionAttendanceViewAll, false},
		{RoleEmployee, PermissionLeaveApprove, false},
		{RoleEmployee, PermissionPayrollCreate, false},
		{RoleEmployee, PermissionUserViewAll, false},
		{RoleHR, PermissionAttendanceViewAll, true},
		{RoleHR, PermissionLeaveApprove, true},
		{RoleHR, PermissionPayrollCreate, true},
		{RoleHR, PermissionReportsExport, true},
		{RoleHR, PermissionUserManage, false},
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionLeaveApprove, true},
		{Role("ghost"), PermissionAttendanceViewOwn, false},
	}
	for _, c := range cases {
		if got := HasPermission(c.role, c.permission); got != c.want {
			t.Errorf("HasPermission(%s, %s) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{"admin", "hr", "employee"} {
		if !ValidRole(Role(role)) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "superuser", "Admin"} {
		if ValidRole(Role(role)) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}

func TestIsPrivileged(t *testing.T) {
	cases := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleHR, true},
		{RoleEmployee, false},
	}
	for _, c := range cases {
		u := User{Role: c.role}
		if got := u.IsPrivileged(); got != c.want {
			t.Errorf("IsPrivileged() with role %s = %v, want %v", c.role, got, c.want)
		}
	}
}
