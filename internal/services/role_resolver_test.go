package services

import "testing"

func TestPathRole(t *testing.T) {
	cases := []struct {
		path string
		want Role
	}{
		{"/admin", RoleAdmin},
		{"/admin/users", RoleAdmin},
		{"/child-dashboard", RoleChild},
		{"/activities/act-001", RoleChild},
		{"/quiz", RoleChild},
		{"/quiz/results", RoleChild},
		{"/dashboard", RoleParent},
		{"/children", RoleParent},
		{"/progress", RoleParent},
		{"/child/ch-001", RoleParent},
		{"/", RolePublic},
		{"/login", RolePublic},
		{"/about", RolePublic},
		// /child without trailing slash is not the parent detail route
		{"/child", RolePublic},
	}
	for _, c := range cases {
		if got := PathRole(c.path); got != c.want {
			t.Errorf("PathRole(%q) = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestResolveRoleSessionWins(t *testing.T) {
	sess := &Session{ID: "u-001", Role: RoleParent}
	if got := ResolveRole(sess, "/child-dashboard"); got != RoleParent {
		t.Fatalf("session role must win over path heuristic, got %q", got)
	}
	if got := ResolveRole(nil, "/child-dashboard"); got != RoleChild {
		t.Fatalf("expected path heuristic without session, got %q", got)
	}
}

func TestAuthenticatedPath(t *testing.T) {
	if !AuthenticatedPath("/dashboard") || !AuthenticatedPath("/admin") {
		t.Fatalf("dashboard paths must classify as signed-in areas")
	}
	if AuthenticatedPath("/") || AuthenticatedPath("/login") {
		t.Fatalf("public paths must not classify as signed-in areas")
	}
}
