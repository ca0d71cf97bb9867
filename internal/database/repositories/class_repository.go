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

type classRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Class]
}

func NewClassRepository(db *gorm.DB) *classRepository {
	return &classRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Class](db),
	}
}

func (g *classRepository) ReadWithAssociations(id uuid.UUID) (models.Class, error) {
	var class models.Class
	err := g.db.
		Preload("Semester").
		Preload("Professors.ProfessorTcc.Professor").
		Preload("Students.Student").
		First(&class, "id = ?", id).Error
	return class, err
}

// ExistsByCode only looks at non-deleted classes, so a deleted class frees
// its code for reuse.
func (g *classRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	err := g.db.Model(&models.Class{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (g *classRepository) ListPaged(skip, take int) ([]models.Class, error) {
	var classes []models.Class
	query := g.db.
		Preload("Semester").
		Preload("Professors.ProfessorTcc.Professor").
		Order("created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&classes).Error
	return classes, err
}

func (g *classRepository) ListByProfessorTcc(professorTccID uuid.UUID, skip, take int) ([]models.Class, error) {
	var classes []models.Class
	query := g.db.
		Preload("Semester").
		Joins("JOIN professor_tcc_on_classes ON professor_tcc_on_classes.class_id = classes.id").
		Where("professor_tcc_on_classes.professor_tcc_id = ? AND professor_tcc_on_classes.deleted_at IS NULL", professorTccID).
		Order("classes.created_at desc")
	if skip > 0 {
		query = query.Offset(skip)
	}
	if take > 0 {
		query = query.Limit(take)
	}
	err := query.Find(&classes).Error
	return classes, err
}

func (g *classRepository) CreateProfessorTccOnClass(tx *gorm.DB, row *models.ProfessorTccOnClass) error {
	return g.GetDB(tx).Create(row).Error
}

func (g *classRepository) FindProfessorTccOnClass(professorTccID, classID uuid.UUID) (models.ProfessorTccOnClass, error) {
	var row models.ProfessorTccOnClass
	err := g.db.Where("professor_tcc_id = ? AND class_id = ?", professorTccID, classID).First(&row).Error
	return row, err
}

func (g *classRepository) DeleteProfessorTccOnClass(tx *gorm.DB, id uuid.UUID) error {
	return g.GetDB(tx).Delete(&models.ProfessorTccOnClass{}, "id = ?", id).Error
}

func (g *classRepository) CreateStudentOnClass(tx *gorm.DB, row *models.StudentOnClass) error {
	return g.GetDB(tx).Create(row).Error
}

func (g *classRepository) FindStudentOnClass(studentID, classID uuid.UUID) (models.StudentOnClass, error) {
	var row models.StudentOnClass
	err := g.db.Where("student_id = ? AND class_id = ?", studentID, classID).First(&row).Error
	return row, err
}

// FindStudentOnClassInSemester finds the student's enrollment in any class
// of the given semester. Used to keep a student in at most one class per
// semester.
func (g *classRepository) FindStudentOnClassInSemester(studentID, semesterID uuid.UUID) (models.StudentOnClass, error) {
	var row models.StudentOnClass
	err := g.db.
		Joins("JOIN classes ON classes.id = student_on_classes.class_id").
		Where("student_on_classes.student_id = ? AND classes.semester_id = ? AND classes.deleted_at IS NULL", studentID, semesterID).
		First(&row).Error
	return row, err
}

func (g *classRepository) DeleteStudentOnClass(tx *gorm.DB, id uuid.UUID) error {
	return g.GetDB(tx).Delete(&models.StudentOnClass{}, "id = ?", id).Error
}
