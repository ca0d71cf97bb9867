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

package user

import (
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
)

type Controller struct {
	service *service
}

func NewHttpController(service *service) *Controller {
	return &Controller{
		service: service,
	}
}

type CreateRequest struct {
	Login    string          `json:"login" validate:"required"`
	Password string          `json:"password" validate:"required,min=6"`
	Type     models.UserType `json:"type" validate:"required,oneof=ADMIN COORDINATOR PROFESSOR SECRETARY STUDENT"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

func (ctrl *Controller) Create(c core.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	user := models.User{
		Login: req.Login,
		Type:  req.Type,
	}
	created, err := ctrl.service.CreateUser(&user, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "userID")
	if err != nil {
		return err
	}

	user, err := ctrl.service.ReadUser(id)
	if err != nil {
		return err
	}
	return c.JSON(200, user)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	users, err := ctrl.service.ListUsers(skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, users)
}

// UpdatePassword changes the caller's own password.
func (ctrl *Controller) UpdatePassword(c core.Context) error {
	session := core.GetSession(c)

	var req UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	user, err := ctrl.service.UpdatePassword(session.UserID, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(200, user)
}

func (ctrl *Controller) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, "userID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteUser(id); err != nil {
		return err
	}
	return c.NoContent(200)
}
