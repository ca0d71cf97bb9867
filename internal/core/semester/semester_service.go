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
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
)

// minDuration is the shortest legal semester period, 100 days.
const minDuration = 100 * 24 * time.Hour

type repository interface {
	repositories.Repository[uuid.UUID, models.Semester, core.DB]
	ReadWithClasses(id uuid.UUID) (models.Semester, error)
	ExistsByCode(code string) (bool, error)
	FindOverlapping(start, end time.Time, excludeID *uuid.UUID) (models.Semester, error)
	Current(now time.Time) (models.Semester, error)
	ListPaged(skip, take int) ([]models.Semester, error)
}

type service struct {
	semesterRepository repository
}

func NewService(semesterRepository repository) *service {
	return &service{
		semesterRepository: semesterRepository,
	}
}

// validatePeriod runs the interval checks shared by create and update:
// ordering, minimum duration, no overlap with another non-deleted
// semester.
func (s *service) validatePeriod(start, end time.Time, excludeID *uuid.UUID) error {
	if _, err := s.semesterRepository.FindOverlapping(start, end, excludeID); err == nil {
		return echo.NewHTTPError(409, "received period has a conflict with a registered semester")
	}

	if start.After(end) {
		return echo.NewHTTPError(400, "semester start period can't be greater than end period")
	}

	if start.Add(minDuration).After(end) {
		return echo.NewHTTPError(400, "semester can't have less than 100 days")
	}

	return nil
}

func (s *service) CreateSemester(semester *models.Semester) (models.Semester, error) {
	if err := s.validatePeriod(semester.StartPeriod, semester.EndPeriod, nil); err != nil {
		return models.Semester{}, err
	}

	taken, err := s.semesterRepository.ExistsByCode(semester.Code)
	if err != nil {
		return models.Semester{}, echo.NewHTTPError(500, "could not create semester").WithInternal(err)
	}
	if taken {
		return models.Semester{}, echo.NewHTTPError(409, "semester already registered")
	}

	if err := s.semesterRepository.Create(nil, semester); err != nil {
		return models.Semester{}, echo.NewHTTPError(500, "could not create semester").WithInternal(err)
	}
	return *semester, nil
}

func (s *service) ReadSemester(id uuid.UUID) (models.Semester, error) {
	semester, err := s.semesterRepository.ReadWithClasses(id)
	if err != nil {
		return models.Semester{}, echo.NewHTTPError(404, "semester not found").WithInternal(err)
	}
	return semester, nil
}

func (s *service) CurrentSemester() (models.Semester, error) {
	semester, err := s.semesterRepository.Current(time.Now())
	if err != nil {
		return models.Semester{}, echo.NewHTTPError(404, "semester not found").WithInternal(err)
	}
	return semester, nil
}

func (s *service) ListSemesters(skip, take int) ([]models.Semester, error) {
	semesters, err := s.semesterRepository.ListPaged(skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list semesters").WithInternal(err)
	}
	return semesters, nil
}

func (s *service) UpdateSemester(id uuid.UUID, req UpdateRequest) (models.Semester, error) {
	semester, err := s.semesterRepository.Read(id)
	if err != nil {
		return models.Semester{}, echo.NewHTTPError(404, "semester not found").WithInternal(err)
	}

	if req.StartPeriod != nil || req.EndPeriod != nil {
		start := semester.StartPeriod
		end := semester.EndPeriod
		if req.StartPeriod != nil {
			start = *req.StartPeriod
		}
		if req.EndPeriod != nil {
			end = *req.EndPeriod
		}
		if err := s.validatePeriod(start, end, &semester.ID); err != nil {
			return models.Semester{}, err
		}
		semester.StartPeriod = start
		semester.EndPeriod = end
	}

	if req.Code != nil && *req.Code != semester.Code {
		taken, err := s.semesterRepository.ExistsByCode(*req.Code)
		if err != nil {
			return models.Semester{}, echo.NewHTTPError(500, "could not update semester").WithInternal(err)
		}
		if taken {
			return models.Semester{}, echo.NewHTTPError(409, "semester already registered")
		}
		semester.Code = *req.Code
	}

	if err := s.semesterRepository.Save(nil, &semester); err != nil {
		return models.Semester{}, echo.NewHTTPError(500, "could not update semester").WithInternal(err)
	}
	return semester, nil
}

func (s *service) DeleteSemester(id uuid.UUID) error {
	if _, err := s.semesterRepository.Read(id); err != nil {
		return echo.NewHTTPError(404, "semester not found").WithInternal(err)
	}
	if err := s.semesterRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete semester").WithInternal(err)
	}
	return nil
}
