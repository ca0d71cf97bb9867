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

package exam

import (
	"time"

	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/utils"
)

type FileRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl" validate:"required,url"`
}

func (f FileRequest) ToModel() models.File {
	return models.File{
		Title:       f.Title,
		Description: f.Description,
		FileURL:     f.FileURL,
	}
}

type CreateExamRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	DeadlineAt  time.Time `json:"deadlineAt" validate:"required"`
}

func (c CreateExamRequest) ToModel() models.Exam {
	return models.Exam{
		Title:       c.Title,
		Description: c.Description,
		DeadlineAt:  c.DeadlineAt,
	}
}

type UpdateExamRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DeadlineAt  *time.Time `json:"deadlineAt"`
}

func (u UpdateExamRequest) ApplyTo(exam *models.Exam) {
	exam.Title = utils.OrDefault(u.Title, exam.Title)
	exam.Description = utils.OrDefault(u.Description, exam.Description)
	if u.DeadlineAt != nil {
		exam.DeadlineAt = *u.DeadlineAt
	}
}

type CreatePostRequest struct {
	Title   string        `json:"title" validate:"required"`
	Content string        `json:"content"`
	Files   []FileRequest `json:"files" validate:"dive"`
}

func (c CreatePostRequest) ToModel() models.Post {
	return models.Post{
		Title:   c.Title,
		Content: c.Content,
		Files:   utils.Map(c.Files, FileRequest.ToModel),
	}
}

type UpdatePostRequest struct {
	Title   *string       `json:"title"`
	Content *string       `json:"content"`
	Files   []FileRequest `json:"files" validate:"dive"`
}

func (u UpdatePostRequest) ApplyTo(post *models.Post) {
	post.Title = utils.OrDefault(u.Title, post.Title)
	post.Content = utils.OrDefault(u.Content, post.Content)
	post.Files = append(post.Files, utils.Map(u.Files, FileRequest.ToModel)...)
}
