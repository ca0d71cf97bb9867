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

type userRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.User]
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.User](db),
	}
}

func (g *userRepository) ReadWithAssociations(id uuid.UUID) (models.User, error) {
	var user models.User
	err := g.preloaded().First(&user, "id = ?", id).Error
	return user, err
}

func (g *userRepository) FindByLogin(login string) (models.User, error) {
	var user models.User
	err := g.preloaded().Where("login = ?", login).First(&user).Error
	return user, err
}

// ExistsByLogin also counts soft-deleted users: a login is never reissued.
func (g *userRepository) ExistsByLogin(login string) (bool, error) {
	var count int64
	err := g.db.Unscoped().Model(&models.User{}).Where("login = ?", login).Count(&count).Error
	return count > 0, err
}

func (g *userRepository) ListPaged(skip, take int) ([]models.User, error) {
	var users []models.User
	query := g.preloaded().Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&users).Error
	return users, err
}

func (g *userRepository) preloaded() *gorm.DB {
	return g.db.
		Preload("Professor.ProfessorAdvisor").
		Preload("Professor.ProfessorTcc").
		Preload("Student")
}
