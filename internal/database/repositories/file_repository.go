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

type fileRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.File]
}

func NewFileRepository(db *gorm.DB) *fileRepository {
	return &fileRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.File](db),
	}
}

// ReadWithProject loads the file plus its owning project and that
// project's applications, enough for the ownership check on removal.
func (g *fileRepository) ReadWithProject(id uuid.UUID) (models.File, models.Project, error) {
	var file models.File
	if err := g.db.First(&file, "id = ?", id).Error; err != nil {
		return file, models.Project{}, err
	}
	if file.ProjectID == nil {
		return file, models.Project{}, gorm.ErrRecordNotFound
	}
	var project models.Project
	err := g.db.Preload("Applications").First(&project, "id = ?", *file.ProjectID).Error
	return file, project, err
}
