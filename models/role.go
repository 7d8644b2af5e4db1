package models

import (
	"fmt"
	"strings"
)

// Role is one of the closed set of portal roles.
type Role string

const (
	RoleManager Role = "manager"
	RoleMentor  Role = "mentor"
	RoleStudent Role = "student"
)

// Roles lists every role in display order.
var Roles = []Role{RoleManager, RoleMentor, RoleStudent}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleManager, RoleMentor, RoleStudent:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// RoleVisitor has one method per role. Adding a role adds a method here, so
// every implementation stops compiling until it handles the new role.
type RoleVisitor[T any] interface {
	Manager() (T, error)
	Mentor() (T, error)
	Student() (T, error)
}

// VisitRole calls the visitor method matching r.
func VisitRole[T any](r Role, v RoleVisitor[T]) (T, error) {
	switch r {
	case RoleManager:
		return v.Manager()
	case RoleMentor:
		return v.Mentor()
	case RoleStudent:
		return v.Student()
	}
	var zero T
	return zero, fmt.Errorf("unknown role %q", r)
}
