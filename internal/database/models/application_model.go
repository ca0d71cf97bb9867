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

type ApplicationStatus string

const (
	ApplicationStatusInProgress ApplicationStatus = "IN_PROGRESS"
	ApplicationStatusAccepted   ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected   ApplicationStatus = "REJECTED"
)

// Application is a student's request to join a project. It is created
// IN_PROGRESS and moves to ACCEPTED or REJECTED through the advisor.
type Application struct {
	Model
	ProjectID uuid.UUID         `json:"projectId" gorm:"type:uuid;not null;index"`
	StudentID uuid.UUID         `json:"studentId" gorm:"type:uuid;not null;index"`
	Status    ApplicationStatus `json:"status" gorm:"type:varchar(31);not null;default:IN_PROGRESS"`

	Project *Project `json:"project,omitempty"`
	Student *Student `json:"student,omitempty"`
}

func (m Application) TableName() string {
	return "applications"
}
