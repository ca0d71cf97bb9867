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

package semester

import (
	"time"

	"github.com/tccflow/tccflow/internal/database/models"
)

type CreateRequest struct {
	Code        string    `json:"code" validate:"required"`
	StartPeriod time.Time `json:"startPeriod" validate:"required"`
	EndPeriod   time.Time `json:"endPeriod" validate:"required"`
}

func (c CreateRequest) ToModel() models.Semester {
	return models.Semester{
		Code:        c.Code,
		StartPeriod: c.StartPeriod,
		EndPeriod:   c.EndPeriod,
	}
}

type UpdateRequest struct {
	Code        *string    `json:"code"`
	StartPeriod *time.Time `json:"startPeriod"`
	EndPeriod   *time.Time `json:"endPeriod"`
}
