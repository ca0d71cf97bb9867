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

package professor

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
	"github.com/tccflow/tccflow/internal/utils"
)

type repository interface {
	repositories.Repository[uuid.UUID, models.Professor, core.DB]
	ReadWithCapabilities(id uuid.UUID) (models.Professor, error)
	ListPaged(skip, take int) ([]models.Professor, error)
	DeleteCascading(tx core.DB, id uuid.UUID) error
}

type Controller struct {
	professorRepository repository
}

func NewHttpController(professorRepository repository) *Controller {
	return &Controller{
		professorRepository: professorRepository,
	}
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (ctrl *Controller) Read(c core.Context) error {
	id, err := core.GetUUIDParam(c, "professorID")
	if err != nil {
		return err
	}

	professor, err := ctrl.professorRepository.ReadWithCapabilities(id)
	if err != nil {
		return echo.NewHTTPError(404, "professor not found").WithInternal(err)
	}
	return c.JSON(200, professor)
}

func (ctrl *Controller) List(c core.Context) error {
	skip, take := core.GetPageParams(c)

	professors, err := ctrl.professorRepository.ListPaged(skip, take)
	if err != nil {
		return echo.NewHTTPError(500, "could not list professors").WithInternal(err)
	}
	return c.JSON(200, professors)
}

func (ctrl *Controller) Update(c core.Context) error {
	id, err := core.GetUUIDParam(c, "professorID")
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

	professor, err := ctrl.professorRepository.Read(id)
	if err != nil {
		return echo.NewHTTPError(404, "professor not found").WithInternal(err)
	}

	professor.Name = utils.OrDefault(req.Name, professor.Name)
	professor.Email = utils.OrDefault(req.Email, professor.Email)
	professor.PhoneNumber = utils.OrDefault(req.PhoneNumber, professor.PhoneNumber)

	if err := ctrl.professorRepository.Save(nil, &professor); err != nil {
		return echo.NewHTTPError(500, "could not update professor").WithInternal(err)
	}
	return c.JSON(200, professor)
}

// Delete soft-deletes the professor and both capability rows.
func (ctrl *Controller) Delete(c core.Context) error {
	id, err := core.GetUUIDParam(c, "professorID")
	if err != nil {
		return err
	}

	if _, err := ctrl.professorRepository.Read(id); err != nil {
		return echo.NewHTTPError(404, "professor not found").WithInternal(err)
	}

	if err := ctrl.professorRepository.DeleteCascading(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete professor").WithInternal(err)
	}
	return c.NoContent(200)
}
