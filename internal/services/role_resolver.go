package services

import "strings"

// PathRole classifies a navigation path into a role. This is the pre-session
// heuristic used for first paint; it does not gate access by itself.
func PathRole(path string) Role {
	switch {
	case strings.HasPrefix(path, "/admin"):
		return RoleAdmin
	case strings.HasPrefix(path, "/child-dashboard"),
		strings.HasPrefix(path, "/activities"),
		strings.HasPrefix(path, "/quiz"):
		return RoleChild
	case strings.HasPrefix(path, "/dashboard"),
		strings.HasPrefix(path, "/children"),
		strings.HasPrefix(path, "/progress"),
		strings.HasPrefix(path, "/child/"):
		return RoleParent
	default:
		return RolePublic
	}
}

// ResolveRole returns the effective role: an active session always wins,
// otherwise the path heuristic applies.
func ResolveRole(sess *Session, path string) Role {
	if sess != nil {
		return sess.Role
	}
	return PathRole(path)
}

// AuthenticatedPath reports whether a path classifies as a signed-in area.
func AuthenticatedPath(path string) bool {
	return PathRole(path) != RolePublic
}
