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

package models

import "github.com/google/uuid"

type Class struct {
	Model
	// code uniqueness among non-deleted classes is enforced at the service
	// layer, so a deleted class does not block reuse of its code
	Code       string    `json:"code" gorm:"type:varchar(63);not null"`
	SemesterID uuid.UUID `json:"semesterId" gorm:"type:uuid;not null"`

	Semester   *Semester             `json:"semester,omitempty"`
	Professors []ProfessorTccOnClass `json:"professors,omitempty"`
	Students   []StudentOnClass      `json:"students,omitempty"`
}

func (m Class) TableName() string {
	return "classes"
}

// ProfessorTccOnClass binds a tcc-capable professor to a class.
type ProfessorTccOnClass struct {
	Model
	ProfessorTccID uuid.UUID `json:"professorTccId" gorm:"type:uuid;not null;index:idx_professor_tcc_class"`
	ClassID        uuid.UUID `json:"classId" gorm:"type:uuid;not null;index:idx_professor_tcc_class"`

	ProfessorTcc *ProfessorTcc `json:"professorTcc,omitempty"`
	Class        *Class        `json:"class,omitempty"`
	Exams        []Exam        `json:"exams,omitempty"`
}

func (m ProfessorTccOnClass) TableName() string {
	return "professor_tcc_on_classes"
}

type StudentOnClassStatus string

const (
	StudentOnClassStatusEnrolled StudentOnClassStatus = "ENROLLED"
	StudentOnClassStatusApproved StudentOnClassStatus = "APPROVED"
	StudentOnClassStatusFailed   StudentOnClassStatus = "FAILED"
)

// StudentOnClass enrolls a student into a class. A student may hold at most
// one non-deleted enrollment per semester, checked at the service layer.
type StudentOnClass struct {
	Model
	StudentID uuid.UUID            `json:"studentId" gorm:"type:uuid;not null;index:idx_student_class"`
	ClassID   uuid.UUID            `json:"classId" gorm:"type:uuid;not null;index:idx_student_class"`
	Status    StudentOnClassStatus `json:"status" gorm:"type:varchar(31);not null;default:ENROLLED"`

	Student *Student `json:"student,omitempty"`
	Class   *Class   `json:"class,omitempty"`
}

func (m StudentOnClass) TableName() string {
	return "student_on_classes"
}
