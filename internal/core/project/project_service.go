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
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
	"github.com/tccflow/tccflow/internal/monitoring"
)

type projectRepository interface {
	repositories.Repository[uuid.UUID, models.Project, core.DB]
	ReadWithAssociations(id uuid.UUID) (models.Project, error)
	ReadForUpdate(tx core.DB, id uuid.UUID) (models.Project, error)
	UpdateStatusIf(tx core.DB, id uuid.UUID, from, to models.ProjectStatus) (bool, error)
	ListPaged(skip, take int) ([]models.Project, error)
	ListByAdvisor(professorAdvisorID uuid.UUID, skip, take int) ([]models.Project, error)
}

type applicationRepository interface {
	repositories.Repository[uuid.UUID, models.Application, core.DB]
	ReadWithProject(id uuid.UUID) (models.Application, error)
	HasOpenForProjectAndStudent(projectID, studentID uuid.UUID) (bool, error)
	FindAcceptedElsewhere(studentID uuid.UUID) (models.Application, error)
	DeleteOpenByProject(tx core.DB, projectID, exceptID uuid.UUID) error
	DeleteOpenByStudent(tx core.DB, studentID, exceptProjectID uuid.UUID) error
	DeleteByProject(tx core.DB, projectID uuid.UUID) error
}

type studentRepository interface {
	Read(id uuid.UUID) (models.Student, error)
}

type fileRepository interface {
	repositories.Repository[uuid.UUID, models.File, core.DB]
	ReadWithProject(id uuid.UUID) (models.File, models.Project, error)
}

type service struct {
	projectRepository     projectRepository
	applicationRepository applicationRepository
	studentRepository     studentRepository
	fileRepository        fileRepository
}

func NewService(projectRepository projectRepository, applicationRepository applicationRepository, studentRepository studentRepository, fileRepository fileRepository) *service {
	return &service{
		projectRepository:     projectRepository,
		applicationRepository: applicationRepository,
		studentRepository:     studentRepository,
		fileRepository:        fileRepository,
	}
}

func (s *service) CreateProject(professorAdvisorID uuid.UUID, project *models.Project) (models.Project, error) {
	project.Status = models.ProjectStatusActive
	project.ProfessorAdvisorID = professorAdvisorID

	if err := s.projectRepository.Create(nil, project); err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not create project").WithInternal(err)
	}
	monitoring.ProjectsCreatedAmount.Inc()

	return s.readProject(project.ID)
}

func (s *service) ReadProject(id uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.ReadWithAssociations(id)
	if err != nil {
		return models.Project{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
	}
	return project, nil
}

func (s *service) ListProjects(skip, take int) ([]models.Project, error) {
	projects, err := s.projectRepository.ListPaged(skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return projects, nil
}

func (s *service) ListProjectsByAdvisor(professorAdvisorID uuid.UUID, skip, take int) ([]models.Project, error) {
	projects, err := s.projectRepository.ListByAdvisor(professorAdvisorID, skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list projects").WithInternal(err)
	}
	return projects, nil
}

func (s *service) UpdateProject(id uuid.UUID, professorAdvisorID uuid.UUID, req UpdateRequest) (models.Project, error) {
	project, err := s.ownedProject(id, professorAdvisorID)
	if err != nil {
		return models.Project{}, err
	}

	req.ApplyTo(&project)

	if err := s.projectRepository.Save(nil, &project); err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not update project").WithInternal(err)
	}

	return s.readProject(project.ID)
}

// DeactivateProject withdraws an open project. A project with a student
// working on it cannot be withdrawn.
func (s *service) DeactivateProject(id uuid.UUID, professorAdvisorID uuid.UUID) (models.Project, error) {
	project, err := s.ownedProject(id, professorAdvisorID)
	if err != nil {
		return models.Project{}, err
	}

	if project.Status == models.ProjectStatusDisabled {
		return models.Project{}, echo.NewHTTPError(409, "project is already deactivated")
	}
	if project.Status == models.ProjectStatusInProgress {
		return models.Project{}, echo.NewHTTPError(409, "cannot deactivate a project currently in progress")
	}

	project.Status = models.ProjectStatusDisabled
	project.Applications = nil
	project.Files = nil
	project.ProfessorAdvisor = nil
	if err := s.projectRepository.Save(nil, &project); err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not deactivate project").WithInternal(err)
	}

	return s.readProject(project.ID)
}

// DeleteProject soft-deletes the project together with its remaining
// applications. Both go in one transaction.
func (s *service) DeleteProject(id uuid.UUID, professorAdvisorID uuid.UUID) error {
	project, err := s.ownedProject(id, professorAdvisorID)
	if err != nil {
		return err
	}

	if project.Status == models.ProjectStatusInProgress {
		return echo.NewHTTPError(409, "cannot delete a project currently in progress")
	}

	err = s.projectRepository.Transaction(func(tx core.DB) error {
		if err := s.applicationRepository.DeleteByProject(tx, project.ID); err != nil {
			return err
		}
		return s.projectRepository.Delete(tx, project.ID)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not delete project").WithInternal(err)
	}
	return nil
}

// CreateApplication registers a student's interest in a project. A student
// holds at most one open application per project and cannot apply anywhere
// while accepted on a running project.
func (s *service) CreateApplication(projectID uuid.UUID, studentID uuid.UUID) (models.Application, error) {
	if _, err := s.projectRepository.Read(projectID); err != nil {
		return models.Application{}, echo.NewHTTPError(404, "project or student not found").WithInternal(err)
	}
	if _, err := s.studentRepository.Read(studentID); err != nil {
		return models.Application{}, echo.NewHTTPError(404, "project or student not found").WithInternal(err)
	}

	open, err := s.applicationRepository.HasOpenForProjectAndStudent(projectID, studentID)
	if err != nil {
		return models.Application{}, echo.NewHTTPError(500, "could not create application").WithInternal(err)
	}
	if open {
		return models.Application{}, echo.NewHTTPError(409, "student already has an application for this project")
	}

	if _, err := s.applicationRepository.FindAcceptedElsewhere(studentID); err == nil {
		return models.Application{}, echo.NewHTTPError(409, "student was already accepted in another project")
	}

	application := models.Application{
		ProjectID: projectID,
		StudentID: studentID,
		Status:    models.ApplicationStatusInProgress,
	}
	if err := s.applicationRepository.Create(nil, &application); err != nil {
		return models.Application{}, echo.NewHTTPError(500, "could not create application").WithInternal(err)
	}
	monitoring.ApplicationsCreatedAmount.Inc()
	return application, nil
}

// AcceptApplication moves the application to ACCEPTED and the project to
// IN_PROGRESS, drops every competing open application on the project and
// every other open application of the student. All writes share one
// transaction, the project row is locked and the status transition is a
// compare-and-swap, so of two concurrent accepts exactly one commits and
// the other fails with a conflict.
func (s *service) AcceptApplication(applicationID uuid.UUID, professorAdvisorID uuid.UUID) (models.Project, models.Application, error) {
	application, err := s.applicationRepository.ReadWithProject(applicationID)
	if err != nil || application.Project == nil || application.Project.ProfessorAdvisorID != professorAdvisorID {
		return models.Project{}, models.Application{}, echo.NewHTTPError(404, "application not found").WithInternal(err)
	}

	if application.Status != models.ApplicationStatusInProgress {
		return models.Project{}, models.Application{}, echo.NewHTTPError(409, "application was already accepted or rejected")
	}
	if application.Project.Status == models.ProjectStatusInProgress {
		return models.Project{}, models.Application{}, echo.NewHTTPError(409, "project already has a student working on it")
	}
	if _, err := s.applicationRepository.FindAcceptedElsewhere(application.StudentID); err == nil {
		return models.Project{}, models.Application{}, echo.NewHTTPError(409, "student was already accepted in another project")
	}

	err = s.projectRepository.Transaction(func(tx core.DB) error {
		if _, err := s.projectRepository.ReadForUpdate(tx, application.ProjectID); err != nil {
			return err
		}

		swapped, err := s.projectRepository.UpdateStatusIf(tx, application.ProjectID, models.ProjectStatusActive, models.ProjectStatusInProgress)
		if err != nil {
			return err
		}
		if !swapped {
			// a concurrent accept committed first
			return echo.NewHTTPError(409, "project already has a student working on it")
		}

		application.Status = models.ApplicationStatusAccepted
		// do not drag the preloaded associations into the update
		application.Project = nil
		application.Student = nil
		if err := s.applicationRepository.Save(tx, &application); err != nil {
			return err
		}

		if err := s.applicationRepository.DeleteOpenByProject(tx, application.ProjectID, application.ID); err != nil {
			return err
		}
		return s.applicationRepository.DeleteOpenByStudent(tx, application.StudentID, application.ProjectID)
	})
	if err != nil {
		if httpErr, ok := err.(*echo.HTTPError); ok {
			return models.Project{}, models.Application{}, httpErr
		}
		slog.Error("could not accept application", "err", err, "applicationID", applicationID)
		return models.Project{}, models.Application{}, echo.NewHTTPError(500, "could not accept application").WithInternal(err)
	}

	monitoring.ApplicationsAcceptedAmount.Inc()

	project, err := s.readProject(application.ProjectID)
	if err != nil {
		return models.Project{}, models.Application{}, err
	}
	updated, err := s.applicationRepository.ReadWithProject(application.ID)
	if err != nil {
		return models.Project{}, models.Application{}, echo.NewHTTPError(500, "could not accept application").WithInternal(err)
	}
	return project, updated, nil
}

func (s *service) RejectApplication(applicationID uuid.UUID, professorAdvisorID uuid.UUID) (models.Application, error) {
	application, err := s.applicationRepository.ReadWithProject(applicationID)
	if err != nil || application.Project == nil || application.Project.ProfessorAdvisorID != professorAdvisorID {
		return models.Application{}, echo.NewHTTPError(404, "application not found").WithInternal(err)
	}

	if application.Status != models.ApplicationStatusInProgress {
		return models.Application{}, echo.NewHTTPError(409, "application was already accepted or rejected")
	}

	application.Status = models.ApplicationStatusRejected
	application.Project = nil
	application.Student = nil
	if err := s.applicationRepository.Save(nil, &application); err != nil {
		return models.Application{}, echo.NewHTTPError(500, "could not reject application").WithInternal(err)
	}
	return application, nil
}

// RemoveApplication soft-deletes an application on behalf of the owning
// advisor or the applying student. Removing the accepted application
// reopens the project.
func (s *service) RemoveApplication(applicationID uuid.UUID, professorAdvisorID *uuid.UUID, studentID *uuid.UUID) error {
	application, err := s.applicationRepository.ReadWithProject(applicationID)
	if err != nil || application.Project == nil {
		return echo.NewHTTPError(404, "application not found").WithInternal(err)
	}

	isAdvisor := professorAdvisorID != nil && application.Project.ProfessorAdvisorID == *professorAdvisorID
	isStudent := studentID != nil && application.StudentID == *studentID
	if !isAdvisor && !isStudent {
		return echo.NewHTTPError(404, "application not found")
	}

	err = s.applicationRepository.Transaction(func(tx core.DB) error {
		if err := s.applicationRepository.Delete(tx, application.ID); err != nil {
			return err
		}
		if application.Status == models.ApplicationStatusAccepted {
			_, err := s.projectRepository.UpdateStatusIf(tx, application.ProjectID, models.ProjectStatusInProgress, models.ProjectStatusActive)
			return err
		}
		return nil
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not remove application").WithInternal(err)
	}
	return nil
}

// RemoveFile drops a project attachment. Allowed for the owning advisor
// and for the accepted student of the project.
func (s *service) RemoveFile(fileID uuid.UUID, professorAdvisorID *uuid.UUID, studentID *uuid.UUID) error {
	file, project, err := s.fileRepository.ReadWithProject(fileID)
	if err != nil {
		return echo.NewHTTPError(404, "file not found").WithInternal(err)
	}

	isAdvisor := professorAdvisorID != nil && project.ProfessorAdvisorID == *professorAdvisorID
	isAcceptedStudent := false
	if studentID != nil {
		for _, application := range project.Applications {
			if application.Status == models.ApplicationStatusAccepted && application.StudentID == *studentID {
				isAcceptedStudent = true
				break
			}
		}
	}
	if !isAdvisor && !isAcceptedStudent {
		return echo.NewHTTPError(404, "file not found")
	}

	if err := s.fileRepository.Delete(nil, file.ID); err != nil {
		return echo.NewHTTPError(500, "could not remove file").WithInternal(err)
	}
	return nil
}

func (s *service) ownedProject(id uuid.UUID, professorAdvisorID uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.ReadWithAssociations(id)
	// an ownership mismatch reads the same as a missing project
	if err != nil || project.ProfessorAdvisorID != professorAdvisorID {
		return models.Project{}, echo.NewHTTPError(404, "project not found").WithInternal(err)
	}
	return project, nil
}

func (s *service) readProject(id uuid.UUID) (models.Project, error) {
	project, err := s.projectRepository.ReadWithAssociations(id)
	if err != nil {
		return models.Project{}, echo.NewHTTPError(500, "could not read project back").WithInternal(err)
	}
	return project, nil
}
