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

type registerRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Register]
}

func NewRegisterRepository(db *gorm.DB) *registerRepository {
	return &registerRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Register](db),
	}
}

func (g *registerRepository) ListPaged(registerType *models.RegisterType, skip, take int) ([]models.Register, error) {
	var registers []models.Register
	query := g.db.Order("created_at desc")
	if registerType != nil {
		query = query.Where("type = ?", *registerType)
	}
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&registers).Error
	return registers, err
}
