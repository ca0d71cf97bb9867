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

package register

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

// Create is the public self-registration endpoint.
func (ctrl *Controller) Create(c core.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	register := req.ToModel()
	created, err := ctrl.service.CreateRegister(&register)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	var registerType *models.RegisterType
	if t := c.QueryParam("type"); t != "" {
		rt := models.RegisterType(t)
		registerType = &rt
	}

	registers, err := ctrl.service.ListRegisters(registerType, skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, registers)
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "registerID")
	if err != nil {
		return err
	}

	register, err := ctrl.service.ReadRegister(id)
	if err != nil {
		return err
	}
	return c.JSON(200, register)
}

func (ctrl *Controller) AcceptProfessor(c core.Context) error {
	id, err := core.GetUUIDParam(c, "registerID")
	if err != nil {
		return err
	}

	user, err := ctrl.service.AcceptProfessor(id)
	if err != nil {
		return err
	}
	return c.JSON(200, user)
}

func (ctrl *Controller) AcceptStudent(c core.Context) error {
	id, err := core.GetUUIDParam(c, "registerID")
	if err != nil {
		return err
	}

	var req AcceptStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	user, err := ctrl.service.AcceptStudent(id, req.ClassID)
	if err != nil {
		return err
	}
	return c.JSON(200, user)
}

func (ctrl *Controller) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, "registerID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteRegister(id); err != nil {
		return err
	}
	return c.NoContent(200)
}
