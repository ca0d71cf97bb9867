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

package register

import (
	"github.com/google/uuid"
	"github.com/tccflow/tccflow/internal/database/models"
)

type CreateRequest struct {
	Name           string              `json:"name" validate:"required"`
	Email          string              `json:"email" validate:"required,email"`
	EnrollmentCode string              `json:"enrollmentCode" validate:"required"`
	PhoneNumber    string              `json:"phoneNumber"`
	Type           models.RegisterType `json:"type" validate:"required,oneof=PROFESSOR STUDENT"`
}

func (c CreateRequest) ToModel() models.Register {
	return models.Register{
		Name:           c.Name,
		Email:          c.Email,
		EnrollmentCode: c.EnrollmentCode,
		PhoneNumber:    c.PhoneNumber,
		Type:           c.Type,
	}
}

type AcceptStudentRequest struct {
	ClassID *uuid.UUID `json:"classId"`
}
