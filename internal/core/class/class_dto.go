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

package class

import (
	"github.com/google/uuid"
	"github.com/tccflow/tccflow/internal/database/models"
)

type CreateRequest struct {
	Code       string    `json:"code" validate:"required"`
	SemesterID uuid.UUID `json:"semesterId" validate:"required"`
}

func (c CreateRequest) ToModel() models.Class {
	return models.Class{
		Code:       c.Code,
		SemesterID: c.SemesterID,
	}
}

type UpdateRequest struct {
	Code *string `json:"code"`
}

type AssignProfessorRequest struct {
	ProfessorID uuid.UUID `json:"professorId" validate:"required"`
}

type AssignStudentRequest struct {
	StudentID uuid.UUID `json:"studentId" validate:"required"`
}
