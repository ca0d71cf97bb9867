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
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
)

type classRepository interface {
	repositories.Repository[uuid.UUID, models.Class, core.DB]
	ReadWithAssociations(id uuid.UUID) (models.Class, error)
	ExistsByCode(code string) (bool, error)
	ListPaged(skip, take int) ([]models.Class, error)
	ListByProfessorTcc(professorTccID uuid.UUID, skip, take int) ([]models.Class, error)
	CreateProfessorTccOnClass(tx core.DB, row *models.ProfessorTccOnClass) error
	FindProfessorTccOnClass(professorTccID, classID uuid.UUID) (models.ProfessorTccOnClass, error)
	DeleteProfessorTccOnClass(tx core.DB, id uuid.UUID) error
	CreateStudentOnClass(tx core.DB, row *models.StudentOnClass) error
	FindStudentOnClass(studentID, classID uuid.UUID) (models.StudentOnClass, error)
	FindStudentOnClassInSemester(studentID, semesterID uuid.UUID) (models.StudentOnClass, error)
	DeleteStudentOnClass(tx core.DB, id uuid.UUID) error
}

type semesterRepository interface {
	Read(id uuid.UUID) (models.Semester, error)
}

type professorRepository interface {
	ReadWithCapabilities(id uuid.UUID) (models.Professor, error)
}

type studentRepository interface {
	Read(id uuid.UUID) (models.Student, error)
}

type service struct {
	classRepository     classRepository
	semesterRepository  semesterRepository
	professorRepository professorRepository
	studentRepository   studentRepository
}

func NewService(classRepository classRepository, semesterRepository semesterRepository, professorRepository professorRepository, studentRepository studentRepository) *service {
	return &service{
		classRepository:     classRepository,
		semesterRepository:  semesterRepository,
		professorRepository: professorRepository,
		studentRepository:   studentRepository,
	}
}

func (s *service) CreateClass(class *models.Class) (models.Class, error) {
	if _, err := s.semesterRepository.Read(class.SemesterID); err != nil {
		return models.Class{}, echo.NewHTTPError(404, "semester not found").WithInternal(err)
	}

	// codes are unique across all non-deleted classes, not per semester
	taken, err := s.classRepository.ExistsByCode(class.Code)
	if err != nil {
		return models.Class{}, echo.NewHTTPError(500, "could not create class").WithInternal(err)
	}
	if taken {
		return models.Class{}, echo.NewHTTPError(409, "class already registered")
	}

	if err := s.classRepository.Create(nil, class); err != nil {
		return models.Class{}, echo.NewHTTPError(500, "could not create class").WithInternal(err)
	}
	return s.ReadClass(class.ID)
}

func (s *service) ReadClass(id uuid.UUID) (models.Class, error) {
	class, err := s.classRepository.ReadWithAssociations(id)
	if err != nil {
		return models.Class{}, echo.NewHTTPError(404, "class not found").WithInternal(err)
	}
	return class, nil
}

func (s *service) ListClasses(skip, take int) ([]models.Class, error) {
	classes, err := s.classRepository.ListPaged(skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list classes").WithInternal(err)
	}
	return classes, nil
}

// ListClassesByProfessor returns the classes a tcc-capable professor is
// assigned to.
func (s *service) ListClassesByProfessor(professorTccID uuid.UUID, skip, take int) ([]models.Class, error) {
	classes, err := s.classRepository.ListByProfessorTcc(professorTccID, skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list classes").WithInternal(err)
	}
	return classes, nil
}

func (s *service) UpdateClass(id uuid.UUID, req UpdateRequest) (models.Class, error) {
	class, err := s.classRepository.Read(id)
	if err != nil {
		return models.Class{}, echo.NewHTTPError(404, "class not found").WithInternal(err)
	}

	if req.Code != nil && *req.Code != class.Code {
		taken, err := s.classRepository.ExistsByCode(*req.Code)
		if err != nil {
			return models.Class{}, echo.NewHTTPError(500, "could not update class").WithInternal(err)
		}
		if taken {
			return models.Class{}, echo.NewHTTPError(409, "class already registered")
		}
		class.Code = *req.Code
	}

	if err := s.classRepository.Save(nil, &class); err != nil {
		return models.Class{}, echo.NewHTTPError(500, "could not update class").WithInternal(err)
	}
	return s.ReadClass(class.ID)
}

func (s *service) DeleteClass(id uuid.UUID) error {
	if _, err := s.classRepository.Read(id); err != nil {
		return echo.NewHTTPError(404, "class not found").WithInternal(err)
	}
	if err := s.classRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete class").WithInternal(err)
	}
	return nil
}

// AssignProfessor joins a professor's tcc capability to the class. Joining
// twice is a conflict.
func (s *service) AssignProfessor(classID, professorID uuid.UUID) (models.ProfessorTccOnClass, error) {
	if _, err := s.classRepository.Read(classID); err != nil {
		return models.ProfessorTccOnClass{}, echo.NewHTTPError(404, "class not found").WithInternal(err)
	}

	professor, err := s.professorRepository.ReadWithCapabilities(professorID)
	if err != nil || professor.ProfessorTcc == nil {
		return models.ProfessorTccOnClass{}, echo.NewHTTPError(404, "professor not found").WithInternal(err)
	}

	if _, err := s.classRepository.FindProfessorTccOnClass(professor.ProfessorTcc.ID, classID); err == nil {
		return models.ProfessorTccOnClass{}, echo.NewHTTPError(409, "professor already registered in the class")
	}

	row := models.ProfessorTccOnClass{
		ProfessorTccID: professor.ProfessorTcc.ID,
		ClassID:        classID,
	}
	if err := s.classRepository.CreateProfessorTccOnClass(nil, &row); err != nil {
		return models.ProfessorTccOnClass{}, echo.NewHTTPError(500, "could not assign professor").WithInternal(err)
	}
	return row, nil
}

// AssignStudent enrolls a student into the class. A student may be in at
// most one class per semester.
func (s *service) AssignStudent(classID, studentID uuid.UUID) (models.StudentOnClass, error) {
	class, err := s.classRepository.Read(classID)
	if err != nil {
		return models.StudentOnClass{}, echo.NewHTTPError(404, "class not found").WithInternal(err)
	}

	if _, err := s.studentRepository.Read(studentID); err != nil {
		return models.StudentOnClass{}, echo.NewHTTPError(404, "student not found").WithInternal(err)
	}

	if _, err := s.classRepository.FindStudentOnClassInSemester(studentID, class.SemesterID); err == nil {
		return models.StudentOnClass{}, echo.NewHTTPError(409, "student already registered in a class for this semester")
	}

	row := models.StudentOnClass{
		StudentID: studentID,
		ClassID:   classID,
		Status:    models.StudentOnClassStatusEnrolled,
	}
	if err := s.classRepository.CreateStudentOnClass(nil, &row); err != nil {
		return models.StudentOnClass{}, echo.NewHTTPError(500, "could not assign student").WithInternal(err)
	}
	return row, nil
}

func (s *service) RemoveProfessor(classID, professorID uuid.UUID) error {
	professor, err := s.professorRepository.ReadWithCapabilities(professorID)
	if err != nil || professor.ProfessorTcc == nil {
		return echo.NewHTTPError(404, "professor not found").WithInternal(err)
	}

	row, err := s.classRepository.FindProfessorTccOnClass(professor.ProfessorTcc.ID, classID)
	if err != nil {
		return echo.NewHTTPError(404, "professor is not registered in the class").WithInternal(err)
	}

	if err := s.classRepository.DeleteProfessorTccOnClass(nil, row.ID); err != nil {
		return echo.NewHTTPError(500, "could not remove professor").WithInternal(err)
	}
	return nil
}

func (s *service) RemoveStudent(classID, studentID uuid.UUID) error {
	row, err := s.classRepository.FindStudentOnClass(studentID, classID)
	if err != nil {
		return echo.NewHTTPError(404, "student is not registered in the class").WithInternal(err)
	}

	if err := s.classRepository.DeleteStudentOnClass(nil, row.ID); err != nil {
		return echo.NewHTTPError(500, "could not remove student").WithInternal(err)
	}
	return nil
}
