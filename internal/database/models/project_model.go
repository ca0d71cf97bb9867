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

type ProjectStatus string

const (
	// open for student applications
	ProjectStatusActive ProjectStatus = "ACTIVE"
	// exactly one accepted student is working on it
	ProjectStatusInProgress ProjectStatus = "IN_PROGRESS"
	// withdrawn by the advisor, terminal
	ProjectStatusDisabled ProjectStatus = "DISABLED"
)

type Project struct {
	Model
	Title              string        `json:"title" gorm:"type:varchar(255);not null"`
	Description        string        `json:"description" gorm:"type:text"`
	Status             ProjectStatus `json:"status" gorm:"type:varchar(31);not null;default:ACTIVE"`
	ProfessorAdvisorID uuid.UUID     `json:"professorAdvisorId" gorm:"type:uuid;not null"`

	ProfessorAdvisor *ProfessorAdvisor `json:"professorAdvisor,omitempty"`
	Applications     []Application     `json:"applications,omitempty"`
	Files            []File            `json:"files,omitempty"`
}

func (m Project) TableName() string {
	return "projects"
}
