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

package semester

import (
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
)

type Controller struct {
	service *service
}

func NewHttpController(service *service) *Controller {
	return &Controller{
		service: service,
	}
}

func (ctrl *Controller) Create(c core.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	semester := req.ToModel()
	created, err := ctrl.service.CreateSemester(&semester)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	semesters, err := ctrl.service.ListSemesters(skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, semesters)
}

func (ctrl *Controller) Current(c core.Context) error {
	semester, err := ctrl.service.CurrentSemester()
	if err != nil {
		return err
	}
	return c.JSON(200, semester)
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "semesterID")
	if err != nil {
		return err
	}

	semester, err := ctrl.service.ReadSemester(id)
	if err != nil {
		return err
	}
	return c.JSON(200, semester)
}

func (ctrl *Controller) Update(c core.Context) error {
	id, err := core.GetUUIDParam(c, "semesterID")
	if err != nil {
		return err
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	semester, err := ctrl.service.UpdateSemester(id, req)
	if err != nil {
		return err
	}
	return c.JSON(200, semester)
}

func (ctrl *Controller) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, "semesterID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteSemester(id); err != nil {
		return err
	}
	return c.NoContent(200)
}
