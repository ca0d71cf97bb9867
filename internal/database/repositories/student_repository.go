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

type studentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Student]
}

func NewStudentRepository(db *gorm.DB) *studentRepository {
	return &studentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Student](db),
	}
}

func (g *studentRepository) ReadWithApplications(id uuid.UUID) (models.Student, error) {
	var student models.Student
	err := g.db.Preload("Applications").First(&student, "id = ?", id).Error
	return student, err
}

func (g *studentRepository) ListPaged(skip, take int) ([]models.Student, error) {
	var students []models.Student
	query := g.db.Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&students).Error
	return students, err
}
