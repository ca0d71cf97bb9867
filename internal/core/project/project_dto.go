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

package project

import (
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

type CreateRequest struct {
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Files       []FileRequest `json:"files" validate:"dive"`
}

func (c CreateRequest) ToModel() models.Project {
	return models.Project{
		Title:       c.Title,
		Description: c.Description,
		Files:       utils.Map(c.Files, FileRequest.ToModel),
	}
}

type UpdateRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Files       []FileRequest `json:"files" validate:"dive"`
}

func (u UpdateRequest) ApplyTo(project *models.Project) {
	project.Title = utils.OrDefault(u.Title, project.Title)
	project.Description = utils.OrDefault(u.Description, project.Description)
	project.Files = append(project.Files, utils.Map(u.Files, FileRequest.ToModel)...)
}

// projectDetails decorates a project with the student currently working
// on it, resolved from the accepted application.
type projectDetails struct {
	models.Project
	Student *models.Student `json:"student"`
}

func toDetails(project models.Project) projectDetails {
	var student *models.Student
	if project.Status == models.ProjectStatusInProgress {
		for _, application := range project.Applications {
			if application.Status == models.ApplicationStatusAccepted {
				student = application.Student
				break
			}
		}
	}
	return projectDetails{Project: project, Student: student}
}
