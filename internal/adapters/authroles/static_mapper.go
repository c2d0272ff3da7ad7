package authroles

import (
	domainauth "github.com/offertrack/track-ui-api/internal/domain/auth"
)

// StaticRoleMapper grants admin to members of a configured group.
// Everyone else who authenticates is a regular user.
type StaticRoleMapper struct {
	AdminGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	return domainauth.RoleUser
}
