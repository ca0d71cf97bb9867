// Copyright (C) 2024 the tccflow authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package accesscontrol

import "github.com/tccflow/tccflow/internal/database/models"

type Role string

const (
	RoleAdmin            Role = "admin"
	RoleCoordinator      Role = "coordinator"
	RoleSecretary        Role = "secretary"
	RoleProfessor        Role = "professor"
	RoleProfessorAdvisor Role = "professor-advisor"
	RoleProfessorTcc     Role = "professor-tcc"
	RoleStudent          Role = "student"
)

// DeriveRoles maps a user to its role set. The base role follows the
// account type, the advisor and tcc roles exist only while the matching
// capability row does.
func DeriveRoles(user models.User) []Role {
	switch user.Type {
	case models.UserTypeAdmin:
		return []Role{RoleAdmin}
	case models.UserTypeCoordinator:
		return []Role{RoleCoordinator}
	case models.UserTypeSecretary:
		return []Role{RoleSecretary}
	case models.UserTypeStudent:
		return []Role{RoleStudent}
	case models.UserTypeProfessor:
		roles := []Role{RoleProfessor}
		if user.Professor != nil {
			if user.Professor.ProfessorAdvisor != nil {
				roles = append(roles, RoleProfessorAdvisor)
			}
			if user.Professor.ProfessorTcc != nil {
				roles = append(roles, RoleProfessorTcc)
			}
		}
		return roles
	}
	return nil
}

func HasRole(roles []Role, role Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func HasAnyRole(roles []Role, wanted ...Role) bool {
	for _, w := range wanted {
		if HasRole(roles, w) {
			return true
		}
	}
	return false
}
