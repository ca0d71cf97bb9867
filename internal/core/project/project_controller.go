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

package project

import (
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/utils"
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
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	project := req.ToModel()
	created, err := ctrl.service.CreateProject(*session.ProfessorAdvisorID, &project)
	if err != nil {
		return err
	}
	return c.JSON(200, toDetails(created))
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	projects, err := ctrl.service.ListProjects(skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, utils.Map(projects, toDetails))
}

// ListMine returns the projects owned by the calling advisor.
func (ctrl *Controller) ListMine(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	skip, take := core.GetPageParams(c)

	projects, err := ctrl.service.ListProjectsByAdvisor(*session.ProfessorAdvisorID, skip, take)
	if err != nil {
		return err
	}
	return c.JSON(200, utils.Map(projects, toDetails))
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "projectID")
	if err != nil {
		return err
	}

	project, err := ctrl.service.ReadProject(id)
	if err != nil {
		return err
	}
	return c.JSON(200, toDetails(project))
}

func (ctrl *Controller) Update(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	id, err := core.GetUUIDParam(c, "projectID")
	if err != nil {
		return err
	}

	var req UpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := core.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, err.Error())
	}

	project, err := ctrl.service.UpdateProject(id, *session.ProfessorAdvisorID, req)
	if err != nil {
		return err
	}
	return c.JSON(200, toDetails(project))
}

func (ctrl *Controller) Deactivate(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	id, err := core.GetUUIDParam(c, "projectID")
	if err != nil {
		return err
	}

	project, err := ctrl.service.DeactivateProject(id, *session.ProfessorAdvisorID)
	if err != nil {
		return err
	}
	return c.JSON(200, toDetails(project))
}

func (ctrl *Controller) Delete(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	id, err := core.GetUUIDParam(c, "projectID")
	if err != nil {
		return err
	}

	if err := ctrl.service.DeleteProject(id, *session.ProfessorAdvisorID); err != nil {
		return err
	}
	return c.NoContent(200)
}

func (ctrl *Controller) Apply(c core.Context) error {
	session := core.GetSession(c)
	if session.StudentID == nil {
		return echo.NewHTTPError(400, "caller is not a student")
	}
	projectID, err := core.GetUUIDParam(c, "projectID")
	if err != nil {
		return err
	}

	application, err := ctrl.service.CreateApplication(projectID, *session.StudentID)
	if err != nil {
		return err
	}
	return c.JSON(200, application)
}

func (ctrl *Controller) AcceptApplication(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	applicationID, err := core.GetUUIDParam(c, "applicationID")
	if err != nil {
		return err
	}

	project, application, err := ctrl.service.AcceptApplication(applicationID, *session.ProfessorAdvisorID)
	if err != nil {
		return err
	}
	return c.JSON(200, map[string]any{
		"project":     toDetails(project),
		"application": application,
	})
}

func (ctrl *Controller) RejectApplication(c core.Context) error {
	session := core.GetSession(c)
	if session.ProfessorAdvisorID == nil {
		return echo.NewHTTPError(400, "professor has no advisor capability")
	}
	applicationID, err := core.GetUUIDParam(c, "applicationID")
	if err != nil {
		return err
	}

	application, err := ctrl.service.RejectApplication(applicationID, *session.ProfessorAdvisorID)
	if err != nil {
		return err
	}
	return c.JSON(200, application)
}

func (ctrl *Controller) RemoveApplication(c core.Context) error {
	session := core.GetSession(c)
	applicationID, err := core.GetUUIDParam(c, "applicationID")
	if err != nil {
		return err
	}

	if err := ctrl.service.RemoveApplication(applicationID, session.ProfessorAdvisorID, session.StudentID); err != nil {
		return err
	}
	return c.NoContent(200)
}

func (ctrl *Controller) RemoveFile(c core.Context) error {
	session := core.GetSession(c)
	fileID, err := core.GetUUIDParam(c, "fileID")
	if err != nil {
		return err
	}

	if err := ctrl.service.RemoveFile(fileID, session.ProfessorAdvisorID, session.StudentID); err != nil {
		return err
	}
	return c.NoContent(200)
}
