// Package validation checks registration candidates field by field.
package validation

import (
	"regexp"
	"strings"

	"github.com/okian/scorebook/internal/domain/model"
)

// Field names used as keys in a Result.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldRole            = "role"
	FieldSport           = "sport"
)

// Length limits.
const (
	minNameLen     = 2
	minPasswordLen = 6
)

// emailPattern accepts token@token.token where each token is at least
// one non-whitespace character.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Result maps field names to error messages. An absent entry means
// the field is valid; an empty Result means the candidate is
// acceptable.
type Result map[string]string

// Valid reports whether no rule produced an error.
func (r Result) Valid() bool { return len(r) == 0 }

// Validate evaluates every rule independently and reports all
// triggered errors together; it never short-circuits. The sport rule
// only applies to players: for any other role the field is ignored
// entirely.
func Validate(c model.RegistrationCandidate) Result {
	errs := Result{}

	name := strings.TrimSpace(c.Name)
	switch {
	case name == "":
		errs[FieldName] = "Name is required"
	case len(name) < minNameLen:
		errs[FieldName] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(c.Email)
	switch {
	case email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(email):
		errs[FieldEmail] = "Enter a valid email address"
	}

	switch {
	case c.Password == "":
		errs[FieldPassword] = "Password is required"
	case len(c.Password) < minPasswordLen:
		errs[FieldPassword] = "Password must be at least 6 characters"
	}

	switch {
	case c.ConfirmPassword == "":
		errs[FieldConfirmPassword] = "Please confirm your password"
	case c.ConfirmPassword != c.Password:
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	if c.Role == "" {
		errs[FieldRole] = "Role is required"
	}

	if c.Role == model.RolePlayer && c.Sport == "" {
		errs[FieldSport] = "Sport is required"
	}

	return errs
}
