package models

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{"owner", RoleOwner, true},
		{"staff", RoleStaff, true},
		{"admin", "", false},
		{"Owner", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseRole(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	if !RoleOwner.CanManageCatalog() {
		t.Error("owner should manage the catalog")
	}
	if RoleStaff.CanManageCatalog() {
		t.Error("staff should not manage the catalog")
	}
}

func TestDisplayName(t *testing.T) {
	u := User{Email: "ravi@example.com"}
	if got := u.DisplayName(); got != "ravi" {
		t.Errorf("DisplayName = %q, want %q", got, "ravi")
	}

	u.Name = "Ravi K"
	if got := u.DisplayName(); got != "Ravi K" {
		t.Errorf("DisplayName = %q, want %q", got, "Ravi K")
	}

	u = User{Email: ""}
	if got := u.DisplayName(); got != "Staff" {
		t.Errorf("DisplayName = %q, want %q", got, "Staff")
	}
}
