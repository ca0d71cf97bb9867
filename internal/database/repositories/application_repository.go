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

package repositories

import (
	"github.com/google/uuid"
	"github.com/tccflow/tccflow/internal/database/models"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Application]
}

func NewApplicationRepository(db *gorm.DB) *applicationRepository {
	return &applicationRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Application](db),
	}
}

func (g *applicationRepository) ReadWithProject(id uuid.UUID) (models.Application, error) {
	var application models.Application
	err := g.db.
		Preload("Project.ProfessorAdvisor.Professor").
		Preload("Student").
		First(&application, "id = ?", id).Error
	return application, err
}

// HasOpenForProjectAndStudent reports whether the student already holds an
// IN_PROGRESS or ACCEPTED application for this project.
func (g *applicationRepository) HasOpenForProjectAndStudent(projectID, studentID uuid.UUID) (bool, error) {
	var count int64
	err := g.db.Model(&models.Application{}).
		Where("project_id = ? AND student_id = ? AND status IN ?", projectID, studentID,
			[]models.ApplicationStatus{models.ApplicationStatusInProgress, models.ApplicationStatusAccepted}).
		Count(&count).Error
	return count > 0, err
}

// FindAcceptedElsewhere returns the student's accepted application on a
// project that is currently in progress, if any.
func (g *applicationRepository) FindAcceptedElsewhere(studentID uuid.UUID) (models.Application, error) {
	var application models.Application
	err := g.db.
		Joins("JOIN projects ON projects.id = applications.project_id").
		Where("applications.student_id = ? AND applications.status = ? AND projects.status = ? AND projects.deleted_at IS NULL",
			studentID, models.ApplicationStatusAccepted, models.ProjectStatusInProgress).
		First(&application).Error
	return application, err
}

// DeleteOpenByProject soft-deletes every IN_PROGRESS application on the
// project except the given one. Competing applicants are dropped when one
// of them is accepted.
func (g *applicationRepository) DeleteOpenByProject(tx *gorm.DB, projectID, exceptID uuid.UUID) error {
	return g.GetDB(tx).
		Where("project_id = ? AND id <> ? AND status = ?", projectID, exceptID, models.ApplicationStatusInProgress).
		Delete(&models.Application{}).Error
}

// DeleteOpenByStudent soft-deletes the student's IN_PROGRESS applications
// on every other project. An accepted student is no longer eligible
// elsewhere.
func (g *applicationRepository) DeleteOpenByStudent(tx *gorm.DB, studentID, exceptProjectID uuid.UUID) error {
	return g.GetDB(tx).
		Where("student_id = ? AND project_id <> ? AND status = ?", studentID, exceptProjectID, models.ApplicationStatusInProgress).
		Delete(&models.Application{}).Error
}

// DeleteByProject soft-deletes all remaining applications of a project.
// Used when the project itself is soft-deleted.
func (g *applicationRepository) DeleteByProject(tx *gorm.DB, projectID uuid.UUID) error {
	return g.GetDB(tx).
		Where("project_id = ?", projectID).
		Delete(&models.Application{}).Error
}
