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

package echohttp

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const requestTimeout = 10 * time.Second

// Server builds the echo instance with the shared middleware chain.
// frontendOrigin is the single origin allowed to send credentialed
// cross-site requests.
func Server(frontendOrigin string) *echo.Echo {
	e := echo.New()
	e.Logger.SetLevel(99)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{frontendOrigin},
		AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
		AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
		AllowCredentials: true,
	}))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: requestTimeout,
	}))
	e.Use(requestLogger())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler

	return e
}

// errorHandler renders every error as {"message": ...}. Logging happens
// here so controllers never have to.
func errorHandler(err error, c echo.Context) {
	slog.Error(err.Error())

	if c.Response().Committed {
		return
	}

	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		httpErr = echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	// an HTTPError wrapped via WithInternal wins over the outer one
	if inner, ok := httpErr.Internal.(*echo.HTTPError); ok {
		httpErr = inner
	}

	body := echo.Map{"message": httpErr.Message}
	if msgErr, ok := httpErr.Message.(error); ok {
		body["message"] = msgErr.Error()
	}

	if c.Request().Method == http.MethodHead {
		c.NoContent(httpErr.Code) // nolint:errcheck
		return
	}
	c.JSON(httpErr.Code, body) // nolint:errcheck
}
