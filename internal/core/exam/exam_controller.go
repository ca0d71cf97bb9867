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

package exam

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/accesscontrol"
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

func (ctrl *Controller) CreateExam(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorTccID == nil {
		return echo.NewHTTPError(400, "professor has no tcc capability")
	}
	classID, err := core.GetUUIDParam(c, "classID")
	if err != nil {
		return err
	}

	var req CreateExamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	exam := req.ToModel()
	created, err := ctrl.service.CreateExam(*session.ProfessorTccID, classID, &exam)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) ReadExam(c core.Context) error {
	id, err := core.GetUUIDParam(c, "examID")
	if err != nil {
		return err
	}

	exam, err := ctrl.service.ReadExam(id)
	if err != nil {
		return err
	}
	return c.JSON(200, exam)
}

func (ctrl *Controller) ListExams(c core.Context) error {
	skip, take := core.GetPageParams(c)

	var classID *uuid.UUID
	if v := c.QueryParam("classId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return echo.NewHTTPError(400, "invalid class id").WithInternal(err)
		}
		classID = &id
	}

	exams, err := ctrl.service.ListExams(classID, skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, exams)
}

func (ctrl *Controller) UpdateExam(c core.Context) error {
	id, err := core.GetUUIDParam(c, "examID")
	if err != nil {
		return err
	}

	var req UpdateExamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	exam, err := ctrl.service.UpdateExam(id, ctrl.ownerTccID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(200, exam)
}

func (ctrl *Controller) DeleteExam(c core.Context) error {
	id, err := core.GetUUIDParam(c, "examID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteExam(id, ctrl.ownerTccID(c)); err != nil {
		return err
	}
	return c.NoContent(200)
}

func (ctrl *Controller) CreatePost(c core.Context) error {
	session := core.GetSession(c)
	if session.StudentID == nil {
		return echo.NewHTTPError(400, "caller is not a student")
	}
	examID, err := core.GetUUIDParam(c, "examID")
	if err != nil {
		return err
	}

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	post := req.ToModel()
	created, err := ctrl.service.CreatePost(examID, *session.StudentID, &post)
	if err != nil {
		return err
	}
	return c.JSON(200, created)
}

func (ctrl *Controller) ReadPost(c core.Context) error {
	id, err := core.GetUUIDParam(c, "postID")
	if err != nil {
		return err
	}

	post, err := ctrl.service.ReadPost(id)
	if err != nil {
		return err
	}
	return c.JSON(200, post)
}

func (ctrl *Controller) UpdatePost(c core.Context) error {
	id, err := core.GetUUIDParam(c, "postID")
	if err != nil {
		return err
	}

	var req UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}

	post, err := ctrl.service.UpdatePost(id, ctrl.ownerStudentID(c), req)
	if err != nil {
		return err
	}
	return c.JSON(200, post)
}

func (ctrl *Controller) DeletePost(c core.Context) error {
	id, err := core.GetUUIDParam(c, "postID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeletePost(id, ctrl.ownerStudentID(c)); err != nil {
		return err
	}
	return c.NoContent(200)
}

// ownerTccID returns nil for admins, who may touch any exam, and the
// caller's tcc capability id otherwise.
func (ctrl *Controller) ownerTccID(c core.Context) *uuid.UUID {
	session := core.GetSession(c)
	if session.HasRole(accesscontrol.RoleAdmin) {
		return nil
	}
	return session.ProfessorTccID
}

func (ctrl *Controller) ownerStudentID(c core.Context) *uuid.UUID {
	session := core.GetSession(c)
	if session.HasRole(accesscontrol.RoleAdmin) {
		return nil
	}
	return session.StudentID
}
