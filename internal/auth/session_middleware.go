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

package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/database/models"
)

type userReader interface {
	ReadWithAssociations(id uuid.UUID) (models.User, error)
}

// SessionMiddleware verifies the bearer token and rebuilds the session
// from the current database state. Requests without a valid token are
// rejected before they reach a handler.
func SessionMiddleware(issuer TokenIssuer, userRepository userReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenString, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenString == "" {
				return echo.NewHTTPError(401, "missing or malformed authorization header")
			}

			userID, err := issuer.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(401, "invalid token").WithInternal(err)
			}

			user, err := userRepository.ReadWithAssociations(userID)
			if err != nil {
				// the account might have been deleted since the token was issued
				return echo.NewHTTPError(401, "invalid token").WithInternal(err)
			}

			c.Set("session", NewSession(user))
			return next(c)
		}
	}
}
