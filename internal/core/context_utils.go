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
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/auth"
)

func GetSession(ctx Context) auth.Session {
	return ctx.Get("session").(auth.Session)
}

func SetSession(ctx Context, session auth.Session) {
	ctx.Set("session", session)
}

// GetUUIDParam parses a path parameter as a uuid. A malformed id maps
// to 404: the resource addressed by it cannot exist.
func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Param(param))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(404, "not found").WithInternal(err)
	}
	return id, nil
}

// GetPageParams reads skip/take query parameters, defaulting to an
// unbounded listing when absent.
func GetPageParams(ctx Context) (skip int, take int) {
	if v, err := strconv.Atoi(ctx.QueryParam("skip")); err == nil && v > 0 {
		skip = v
	}
	if v, err := strconv.Atoi(ctx.QueryParam("take")); err == nil && v > 0 {
		take = v
	}
	return skip, take
}
