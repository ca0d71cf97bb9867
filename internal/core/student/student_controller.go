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

package student

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
)

type repository interface {
	Read(id uuid.UUID) (models.Student, error)
	ReadWithApplications(id uuid.UUID) (models.Student, error)
	ListPaged(skip, take int) ([]models.Student, error)
}

type Controller struct {
	studentRepository repository
}

func NewHttpController(studentRepository repository) *Controller {
	return &Controller{
		studentRepository: studentRepository,
	}
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "studentID")
	if err != nil {
		return err
	}

	student, err := ctrl.studentRepository.ReadWithApplications(id)
	if err != nil {
		return echo.NewHTTPError(404, "student not found").WithInternal(err)
	}
	return c.JSON(200, student)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	students, err := ctrl.studentRepository.ListPaged(skip, take)
	if err != nil {
		return echo.NewHTTPError(500, "could not list students").WithInternal(err)
	}
	return c.JSON(200, students)
}
