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
	"gorm.io/gorm/clause"
)

type projectRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Project]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (g *projectRepository) ReadWithAssociations(id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.db.
		Preload("ProfessorAdvisor.Professor").
		Preload("Applications.Student").
		Preload("Files").
		First(&project, "id = ?", id).Error
	return project, err
}

// ReadForUpdate reads the project inside tx holding a row lock, so
// concurrent accepts on the same project serialize at the store.
func (g *projectRepository) ReadForUpdate(tx *gorm.DB, id uuid.UUID) (models.Project, error) {
	var project models.Project
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&project, "id = ?", id).Error
	return project, err
}

// UpdateStatusIf is a compare-and-swap on the project status. It reports
// whether the transition was applied - a false return means another writer
// got there first.
func (g *projectRepository) UpdateStatusIf(tx *gorm.DB, id uuid.UUID, from, to models.ProjectStatus) (bool, error) {
	res := g.GetDB(tx).Model(&models.Project{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (g *projectRepository) ListPaged(skip, take int) ([]models.Project, error) {
	return g.list(g.db, skip, take)
}

func (g *projectRepository) ListByAdvisor(professorAdvisorID uuid.UUID, skip, take int) ([]models.Project, error) {
	return g.list(g.db.Where("professor_advisor_id = ?", professorAdvisorID), skip, take)
}

func (g *projectRepository) list(query *gorm.DB, skip, take int) ([]models.Project, error) {
	var projects []models.Project
	query = query.
		Preload("ProfessorAdvisor.Professor").
		Preload("Applications.Student").
		Preload("Files").
		Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&projects).Error
	return projects, err
}
