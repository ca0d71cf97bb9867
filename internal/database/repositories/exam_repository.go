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

type examRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Exam]
}

func NewExamRepository(db *gorm.DB) *examRepository {
	return &examRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Exam](db),
	}
}

func (g *examRepository) ReadWithPosts(id uuid.UUID) (models.Exam, error) {
	var exam models.Exam
	err := g.db.
		Preload("ProfessorTccOnClass").
		Preload("Posts.Student").
		Preload("Posts.Files").
		First(&exam, "id = ?", id).Error
	return exam, err
}

func (g *examRepository) ListPaged(classID *uuid.UUID, skip, take int) ([]models.Exam, error) {
	var exams []models.Exam
	query := g.db.
		Preload("Posts.Student").
		Preload("Posts.Files").
		Preload("ProfessorTccOnClass.Class").
		Order("created_at desc")
	if classID != nil {
		query = query.
			Joins("JOIN professor_tcc_on_classes ON professor_tcc_on_classes.id = exams.professor_tcc_on_class_id").
			Where("professor_tcc_on_classes.class_id = ?", *classID)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&exams).Error
	return exams, err
}
