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

// Professor carries two optional capability records. Advising projects and
// evaluating classes are additive roles a professor may hold independently,
// so they are modeled as associated rows, not subtypes.
type Professor struct {
	Model
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	Email          string    `json:"email" gorm:"type:varchar(255);not null"`
	EnrollmentCode string    `json:"enrollmentCode" gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber    string    `json:"phoneNumber" gorm:"type:varchar(63)"`
	UserID         uuid.UUID `json:"userId" gorm:"type:uuid;not null"`

	ProfessorAdvisor *ProfessorAdvisor `json:"professorAdvisor,omitempty"`
	ProfessorTcc     *ProfessorTcc     `json:"professorTcc,omitempty"`
}

func (m Professor) TableName() string {
	return "professors"
}

// ProfessorAdvisor is the capability to own projects students apply to.
type ProfessorAdvisor struct {
	Model
	ProfessorID uuid.UUID `json:"professorId" gorm:"type:uuid;not null"`

	Professor *Professor `json:"professor,omitempty"`
	Projects  []Project  `json:"projects,omitempty"`
}

func (m ProfessorAdvisor) TableName() string {
	return "professor_advisors"
}

// ProfessorTcc is the capability to be assigned to classes and run exams.
type ProfessorTcc struct {
	Model
	ProfessorID uuid.UUID `json:"professorId" gorm:"type:uuid;not null"`

	Professor *Professor            `json:"professor,omitempty"`
	Classes   []ProfessorTccOnClass `json:"classes,omitempty"`
}

func (m ProfessorTcc) TableName() string {
	return "professor_tccs"
}
