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

type RegisterType string

const (
	RegisterTypeProfessor RegisterType = "PROFESSOR"
	RegisterTypeStudent   RegisterType = "STUDENT"
)

// Register is a pending self-registration awaiting administrative
// acceptance. Accepting it soft-deletes the row and creates the live
// user plus professor/student record.
type Register struct {
	Model
	Name           string       `json:"name" gorm:"type:varchar(255);not null"`
	Email          string       `json:"email" gorm:"type:varchar(255);not null"`
	EnrollmentCode string       `json:"enrollmentCode" gorm:"type:varchar(255);not null"`
	PhoneNumber    string       `json:"phoneNumber" gorm:"type:varchar(63)"`
	Type           RegisterType `json:"type" gorm:"type:varchar(31);not null"`
}

func (m Register) TableName() string {
	return "registers"
}
