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
	"time"

	"github.com/google/uuid"
	"github.com/tccflow/tccflow/internal/database/models"
	"gorm.io/gorm"
)

type semesterRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Semester]
}

func NewSemesterRepository(db *gorm.DB) *semesterRepository {
	return &semesterRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Semester](db),
	}
}

func (g *semesterRepository) ReadWithClasses(id uuid.UUID) (models.Semester, error) {
	var semester models.Semester
	err := g.db.Preload("Classes").First(&semester, "id = ?", id).Error
	return semester, err
}

// ExistsByCode also counts soft-deleted semesters: a retired code is never
// handed out again.
func (g *semesterRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := g.db.Unscoped().Model(&models.Semester{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

// FindOverlapping returns the first non-deleted semester whose period
// intersects [start, end], bounds inclusive. Both directions are checked so
// containment either way counts as an overlap.
func (g *semesterRepository) FindOverlapping(start, end time.Time, excludeID *uuid.UUID) (models.Semester, error) {
	var semester models.Semester
	query := g.db.Where(
		g.db.Where("start_period <= ? AND end_period >= ?", start, start).
			Or("start_period <= ? AND end_period >= ?", end, end).
			Or("start_period >= ? AND end_period <= ?", start, end),
	)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}
	err := query.Order("start_period asc").First(&semester).Error
	return semester, err
}

// Current returns the earliest semester that is either upcoming or
// currently running.
func (g *semesterRepository) Current(now time.Time) (models.Semester, error) {
	var semester models.Semester
	err := g.db.Preload("Classes").
		Where("start_period >= ? OR (start_period <= ? AND end_period > ?)", now, now, now).
		Order("start_period asc").
		First(&semester).Error
	return semester, err
}

func (g *semesterRepository) ListPaged(skip, take int) ([]models.Semester, error) {
	var semesters []models.Semester
	query := g.db.Preload("Classes").Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&semesters).Error
	return semesters, err
}
