package controllers

var allowedRoles = map[string]struct{}{
	"admin": {},
	"hr":    {},
	"staff": {},
}

func IsValidRole(role string) bool {
	_, ok := allowedRoles[role]
	return ok
}
