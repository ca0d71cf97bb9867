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

package class

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

	class := req.ToModel()
	created, err := ctrl.service.CreateClass(&class)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	classes, err := ctrl.service.ListClasses(skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, classes)
}

// ListMine returns the classes the calling tcc professor is assigned to.
func (ctrl *Controller) ListMine(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorTccID == nil {
		return echo.NewHTTPError(400, "professor has no tcc capability")
	}
	skip, take := core.GetPageParams(c)

	classes, err := ctrl.service.ListClassesByProfessor(*session.ProfessorTccID, skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, classes)
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	class, err := ctrl.service.ReadClass(id)
	if err != nil {
		return err
	}
	return c.JSON(200, class)
}

func (ctrl *Controller) Update(c core.Context) error {
	id, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	class, err := ctrl.service.UpdateClass(id, req)
	if err != nil {
		return err
	}
	return c.JSON(200, class)
}

func (ctrl *Controller) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteClass(id); err != nil {
		return err
	}
	return c.NoContent(200)
}

func (ctrl *Controller) AssignProfessor(c core.Context) error {
	classID, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	var req AssignProfessorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	row, err := ctrl.service.AssignProfessor(classID, req.ProfessorID)
	if err != nil {
		return err
	}
	return c.JSON(200, row)
}

func (ctrl *Controller) AssignStudent(c core.Context) error {
	classID, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	var req AssignStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	row, err := ctrl.service.AssignStudent(classID, req.StudentID)
	if err != nil {
		return err
	}
	return c.JSON(200, row)
}

func (ctrl *Controller) RemoveProfessor(c core.Context) error {
	classID, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}
	professorID, err := core.GetUUIDParam(c, "professorID")
	if err != nil {
		return err
	}

	if err := ctrl.service.RemoveProfessor(classID, professorID); err != nil {
		return err
	}
	return c.NoContent(200)
}

func (ctrl *Controller) RemoveStudent(c core.Context) error {
	classID, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}
	studentID, err := core.GetUUIDParam(c, "studentID")
	if err != nil {
		return err
	}

	if err := ctrl.service.RemoveStudent(classID, studentID); err != nil {
		return err
	}
	return c.NoContent(200)
}
