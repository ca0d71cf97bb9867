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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
)

type examRepository interface {
	repositories.Repository[uuid.UUID, models.Exam, core.DB]
	ReadWithPosts(id uuid.UUID) (models.Exam, error)
	ListPaged(classID *uuid.UUID, skip, take int) ([]models.Exam, error)
}

type postRepository interface {
	repositories.Repository[uuid.UUID, models.Post, core.DB]
	ReadWithFiles(id uuid.UUID) (models.Post, error)
}

type classRepository interface {
	FindProfessorTccOnClass(professorTccID, classID uuid.UUID) (models.ProfessorTccOnClass, error)
}

type service struct {
	examRepository  examRepository
	postRepository  postRepository
	classRepository classRepository
}

func NewService(examRepository examRepository, postRepository postRepository, classRepository classRepository) *service {
	return &service{
		examRepository:  examRepository,
		postRepository:  postRepository,
		classRepository: classRepository,
	}
}

// CreateExam posts an exam on one of the classes the calling tcc
// professor is assigned to.
func (s *service) CreateExam(professorTccID, classID uuid.UUID, exam *models.Exam) (models.Exam, error) {
	if exam.DeadlineAt.Before(time.Now()) {
		return models.Exam{}, echo.NewHTTPError(400, "deadline can't be before today")
	}

	row, err := s.classRepository.FindProfessorTccOnClass(professorTccID, classID)
	if err != nil {
		return models.Exam{}, echo.NewHTTPError(404, "professor is not assigned to the class").WithInternal(err)
	}

	exam.ProfessorTccOnClassID = row.ID
	if err := s.examRepository.Create(nil, exam); err != nil {
		return models.Exam{}, echo.NewHTTPError(500, "could not create exam").WithInternal(err)
	}
	return *exam, nil
}

func (s *service) ReadExam(id uuid.UUID) (models.Exam, error) {
	exam, err := s.examRepository.ReadWithPosts(id)
	if err != nil {
		return models.Exam{}, echo.NewHTTPError(404, "exam not found").WithInternal(err)
	}
	return exam, nil
}

func (s *service) ListExams(classID *uuid.UUID, skip, take int) ([]models.Exam, error) {
	exams, err := s.examRepository.ListPaged(classID, skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list exams").WithInternal(err)
	}
	return exams, nil
}

// UpdateExam edits title, description or deadline. A tcc professor may
// only edit exams of their own class assignments; admins pass a nil id.
func (s *service) UpdateExam(id uuid.UUID, professorTccID *uuid.UUID, req UpdateExamRequest) (models.Exam, error) {
	exam, err := s.ownedExam(id, professorTccID)
	if err != nil {
		return models.Exam{}, err
	}

	if req.DeadlineAt != nil && req.DeadlineAt.Before(time.Now()) {
		return models.Exam{}, echo.NewHTTPError(400, "deadline can't be before today")
	}
	req.ApplyTo(&exam)

	exam.Posts = nil
	exam.ProfessorTccOnClass = nil
	if err := s.examRepository.Save(nil, &exam); err != nil {
		return models.Exam{}, echo.NewHTTPError(500, "could not update exam").WithInternal(err)
	}
	return exam, nil
}

func (s *service) DeleteExam(id uuid.UUID, professorTccID *uuid.UUID) error {
	exam, err := s.ownedExam(id, professorTccID)
	if err != nil {
		return err
	}
	if err := s.examRepository.Delete(nil, exam.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete exam").WithInternal(err)
	}
	return nil
}

// CreatePost files a student submission against an exam.
func (s *service) CreatePost(examID, studentID uuid.UUID, post *models.Post) (models.Post, error) {
	if _, err := s.examRepository.Read(examID); err != nil {
		return models.Post{}, echo.NewHTTPError(404, "exam not found").WithInternal(err)
	}

	post.ExamID = examID
	post.StudentID = studentID
	if err := s.postRepository.Create(nil, post); err != nil {
		return models.Post{}, echo.NewHTTPError(500, "could not create post").WithInternal(err)
	}
	return *post, nil
}

func (s *service) ReadPost(id uuid.UUID) (models.Post, error) {
	post, err := s.postRepository.ReadWithFiles(id)
	if err != nil {
		return models.Post{}, echo.NewHTTPError(404, "post not found").WithInternal(err)
	}
	return post, nil
}

// UpdatePost edits a submission. Students may only touch their own posts;
// admins pass a nil student id.
func (s *service) UpdatePost(id uuid.UUID, studentID *uuid.UUID, req UpdatePostRequest) (models.Post, error) {
	post, err := s.ownedPost(id, studentID)
	if err != nil {
		return models.Post{}, err
	}

	req.ApplyTo(&post)

	post.Student = nil
	if err := s.postRepository.Save(nil, &post); err != nil {
		return models.Post{}, echo.NewHTTPError(500, "could not update post").WithInternal(err)
	}
	return post, nil
}

func (s *service) DeletePost(id uuid.UUID, studentID *uuid.UUID) error {
	post, err := s.ownedPost(id, studentID)
	if err != nil {
		return err
	}
	if err := s.postRepository.Delete(nil, post.ID); err != nil {
		return echo.NewHTTPError(500, "could not delete post").WithInternal(err)
	}
	return nil
}

func (s *service) ownedExam(id uuid.UUID, professorTccID *uuid.UUID) (models.Exam, error) {
	exam, err := s.examRepository.ReadWithPosts(id)
	if err != nil {
		return models.Exam{}, echo.NewHTTPError(404, "exam not found").WithInternal(err)
	}
	if professorTccID != nil && (exam.ProfessorTccOnClass == nil || exam.ProfessorTccOnClass.ProfessorTccID != *professorTccID) {
		return models.Exam{}, echo.NewHTTPError(404, "exam not found")
	}
	return exam, nil
}

func (s *service) ownedPost(id uuid.UUID, studentID *uuid.UUID) (models.Post, error) {
	post, err := s.postRepository.ReadWithFiles(id)
	if err != nil {
		return models.Post{}, echo.NewHTTPError(404, "post not found").WithInternal(err)
	}
	if studentID != nil && post.StudentID != *studentID {
		return models.Post{}, echo.NewHTTPError(404, "post not found")
	}
	return post, nil
}
