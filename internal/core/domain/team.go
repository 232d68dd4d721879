package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

const (
	TeamRoleAdmin  = "Admin"
	TeamRoleEditor = "Editor"
	TeamRoleViewer = "Viewer"
)

const (
	MemberInvited = "invited"
	MemberActive  = "active"
)

var ErrMemberNotFound = errors.New("team member not found")
var ErrMemberExists = errors.New("team member already invited")

// TeamMember is a collaborator invited into a customer's workspace.
// The ID is stable and returned on every listing so that removal can
// address a specific member.
type TeamMember struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"owner_id" bson:"owner_id"`
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	Name      string    `json:"name" bson:"name"`
	Initials  string    `json:"initials" bson:"initials"`
	Status    string    `json:"status" bson:"status"`
	InvitedAt time.Time `json:"invited_at" bson:"invited_at"`
}

// ValidTeamRole reports whether role is a known workspace role.
func ValidTeamRole(role string) bool {
	return role == TeamRoleAdmin || role == TeamRoleEditor || role == TeamRoleViewer
}

// Initials derives up to two uppercase initials from a display name,
// falling back to the first letter of the email's local part.
func Initials(name, email string) string {
	fields := strings.Fields(name)
	switch {
	case len(fields) >= 2:
		return upperFirst(fields[0]) + upperFirst(fields[len(fields)-1])
	case len(fields) == 1:
		return upperFirst(fields[0])
	}
	local, _, _ := strings.Cut(email, "@")
	return upperFirst(local)
}

func upperFirst(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}
