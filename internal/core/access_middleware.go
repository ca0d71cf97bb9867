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

package core

import (
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/accesscontrol"
)

// AccessControlMiddleware lets the request pass if the session holds at
// least one of the given roles.
func AccessControlMiddleware(roles ...accesscontrol.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session := GetSession(c)

			if !accesscontrol.HasAnyRole(session.Roles, roles...) {
				return echo.NewHTTPError(403, "forbidden")
			}

			return next(c)
		}
	}
}
