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

type professorRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Professor]
}

func NewProfessorRepository(db *gorm.DB) *professorRepository {
	return &professorRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Professor](db),
	}
}

func (g *professorRepository) ReadWithCapabilities(id uuid.UUID) (models.Professor, error) {
	var professor models.Professor
	err := g.db.
		Preload("ProfessorAdvisor.Projects").
		Preload("ProfessorTcc.Classes.Class").
		First(&professor, "id = ?", id).Error
	return professor, err
}

func (g *professorRepository) FindByAdvisorID(professorAdvisorID uuid.UUID) (models.Professor, error) {
	var professor models.Professor
	err := g.db.
		Preload("ProfessorAdvisor").
		Joins("JOIN professor_advisors ON professor_advisors.professor_id = professors.id").
		Where("professor_advisors.id = ?", professorAdvisorID).
		First(&professor).Error
	return professor, err
}

func (g *professorRepository) ListPaged(skip, take int) ([]models.Professor, error) {
	var professors []models.Professor
	query := g.db.
		Preload("ProfessorAdvisor").
		Preload("ProfessorTcc").
		Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&professors).Error
	return professors, err
}

// DeleteCascading soft-deletes the professor together with both capability
// rows in one transaction.
func (g *professorRepository) DeleteCascading(tx *gorm.DB, id uuid.UUID) error {
	db := g.GetDB(tx)
	if err := db.Where("professor_id = ?", id).Delete(&models.ProfessorAdvisor{}).Error; err != nil {
		return err
	}
	if err := db.Where("professor_id = ?", id).Delete(&models.ProfessorTcc{}).Error; err != nil {
		return err
	}
	return db.Delete(&models.Professor{}, "id = ?", id).Error
}
