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

type UserType string

const (
	UserTypeAdmin       UserType = "ADMIN"
	UserTypeCoordinator UserType = "COORDINATOR"
	UserTypeProfessor   UserType = "PROFESSOR"
	UserTypeSecretary   UserType = "SECRETARY"
	UserTypeStudent     UserType = "STUDENT"
)

type User struct {
	Model
	Login    string   `json:"login" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string   `json:"-" gorm:"type:varchar(255);not null"`
	Type     UserType `json:"type" gorm:"type:varchar(31);not null"`

	Professor *Professor `json:"professor,omitempty"`
	Student   *Student   `json:"student,omitempty"`
}

func (m User) TableName() string {
	return "users"
}
