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

import "time"

// Semester is an academic period. Periods of non-deleted semesters must
// never overlap and must span at least 100 days.
type Semester struct {
	Model
	Code        string    `json:"code" gorm:"type:varchar(63);uniqueIndex;not null"`
	StartPeriod time.Time `json:"startPeriod" gorm:"not null"`
	EndPeriod   time.Time `json:"endPeriod" gorm:"not null"`

	Classes []Class `json:"classes,omitempty"`
}

func (m Semester) TableName() string {
	return "semesters"
}
