package auth

import (
	"strings"

	"github.com/anirudh21-ch/elearn/models"
)

// Pure authorization rules. Handlers map denials to status codes; these
// functions only decide.

// NormalizeRegistrationRole lowercases the requested role and defaults
// an empty one to student.
func NormalizeRegistrationRole(raw string) models.Role {
	role := models.Role(strings.ToLower(raw))
	if role == "" {
		return models.RoleStudent
	}
	return role
}

// AllowedRegistrationRole reports whether a role may be self-assigned
// through public registration. Admin can never be.
func AllowedRegistrationRole(role models.Role) bool {
	return role == models.RoleStudent || role == models.RoleTeacher
}

// CanCreateCourse reports whether the caller may create courses.
// Requires an identity with role teacher or admin.
func CanCreateCourse(claims *Claims) bool {
	if claims == nil {
		return false
	}
	return claims.Role == models.RoleTeacher || claims.Role == models.RoleAdmin
}

// CanSubmitQuiz reports whether the caller may submit quiz questions.
// Any authenticated identity qualifies.
func CanSubmitQuiz(claims *Claims) bool {
	return claims != nil
}
