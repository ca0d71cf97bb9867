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

// File is attachment metadata. The bytes live in external storage; only
// the URL is tracked here.
type File struct {
	Model
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
	FileURL     string `json:"fileUrl" gorm:"type:text;not null"`

	ProjectID   *uuid.UUID `json:"projectId,omitempty" gorm:"type:uuid"`
	PostID      *uuid.UUID `json:"postId,omitempty" gorm:"type:uuid"`
	ProfessorID *uuid.UUID `json:"professorId,omitempty" gorm:"type:uuid"`
	StudentID   *uuid.UUID `json:"studentId,omitempty" gorm:"type:uuid"`
}

func (m File) TableName() string {
	return "files"
}
