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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/monitoring"
)

type userRepository interface {
	FindByLogin(login string) (models.User, error)
	ReadWithAssociations(id uuid.UUID) (models.User, error)
}

type Controller struct {
	userRepository userRepository
	issuer         auth.TokenIssuer
}

func NewHttpController(userRepository userRepository, issuer auth.TokenIssuer) *Controller {
	return &Controller{
		userRepository: userRepository,
		issuer:         issuer,
	}
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login validates the credentials and hands out a bearer token. A wrong
// login and a wrong password are indistinguishable to the caller.
func (ctrl *Controller) Login(c core.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	user, err := ctrl.userRepository.FindByLogin(req.Login)
	if err != nil || !auth.ComparePassword(user.Password, req.Password) {
		monitoring.LoginFailedAmount.Inc()
		return echo.NewHTTPError(401, "invalid credentials")
	}

	token, err := ctrl.issuer.Sign(user)
	if err != nil {
		return echo.NewHTTPError(500, "could not sign token").WithInternal(err)
	}
	monitoring.LoginAmount.Inc()

	return c.JSON(200, map[string]any{
		"accessToken": token,
		"user":        user,
	})
}

// Me returns the account behind the current session.
func (ctrl *Controller) Me(c core.Context) error {
	session := core.GetSession(c)

	user, err := ctrl.userRepository.ReadWithAssociations(session.UserID)
	if err != nil {
		return echo.NewHTTPError(404, "user not found").WithInternal(err)
	}
	return c.JSON(200, user)
}
