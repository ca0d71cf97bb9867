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

import (
	"time"

	"github.com/google/uuid"
)

// Exam is an assignment a tcc professor opens for one of their classes.
type Exam struct {
	Model
	Title                 string    `json:"title" gorm:"type:varchar(255);not null"`
	Description           string    `json:"description" gorm:"type:text"`
	DeadlineAt            time.Time `json:"deadlineAt" gorm:"not null"`
	ProfessorTccOnClassID uuid.UUID `json:"professorTccOnClassId" gorm:"type:uuid;not null"`

	ProfessorTccOnClass *ProfessorTccOnClass `json:"professorTccOnClass,omitempty"`
	Posts               []Post               `json:"posts,omitempty"`
}

func (m Exam) TableName() string {
	return "exams"
}

// Post is a student submission against an exam.
type Post struct {
	Model
	Title     string    `json:"title" gorm:"type:varchar(255);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	ExamID    uuid.UUID `json:"examId" gorm:"type:uuid;not null"`
	StudentID uuid.UUID `json:"studentId" gorm:"type:uuid;not null"`

	Exam    *Exam    `json:"exam,omitempty"`
	Student *Student `json:"student,omitempty"`
	Files   []File   `json:"files,omitempty"`
}

func (m Post) TableName() string {
	return "posts"
}
