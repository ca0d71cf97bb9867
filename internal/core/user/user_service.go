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

package user

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
)

type userRepository interface {
	repositories.Repository[uuid.UUID, models.User, core.DB]
	ReadWithAssociations(id uuid.UUID) (models.User, error)
	ExistsByLogin(login string) (bool, error)
	ListPaged(skip, take int) ([]models.User, error)
}

type professorRepository interface {
	DeleteCascading(tx core.DB, id uuid.UUID) error
}

type studentRepository interface {
	Delete(tx core.DB, id uuid.UUID) error
}

type service struct {
	userRepository      userRepository
	professorRepository professorRepository
	studentRepository   studentRepository
}

func NewService(userRepository userRepository, professorRepository professorRepository, studentRepository studentRepository) *service {
	return &service{
		userRepository:      userRepository,
		professorRepository: professorRepository,
		studentRepository:   studentRepository,
	}
}

func (s *service) CreateUser(user *models.User, plainPassword string) (models.User, error) {
	exists, err := s.userRepository.ExistsByLogin(user.Login)
	if err != nil {
		return models.User{}, echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}
	if exists {
		return models.User{}, echo.NewHTTPError(409, "login already taken")
	}

	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return models.User{}, echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}
	user.Password = hash

	if err := s.userRepository.Create(nil, user); err != nil {
		// the unique index catches a login race past the pre-check
		if database.IsDuplicateKeyError(err) {
			return models.User{}, echo.NewHTTPError(409, "login already taken").WithInternal(err)
		}
		return models.User{}, echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}
	return *user, nil
}

func (s *service) ReadUser(id uuid.UUID) (models.User, error) {
	user, err := s.userRepository.ReadWithAssociations(id)
	if err != nil {
		return models.User{}, echo.NewHTTPError(404, "user not found").WithInternal(err)
	}
	return user, nil
}

func (s *service) ListUsers(skip, take int) ([]models.User, error) {
	users, err := s.userRepository.ListPaged(skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list users").WithInternal(err)
	}
	return users, nil
}

// UpdatePassword re-hashes and stores a new password for the account.
func (s *service) UpdatePassword(id uuid.UUID, plainPassword string) (models.User, error) {
	user, err := s.userRepository.Read(id)
	if err != nil {
		return models.User{}, echo.NewHTTPError(404, "user not found").WithInternal(err)
	}

	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return models.User{}, echo.NewHTTPError(500, "could not update user").WithInternal(err)
	}
	user.Password = hash

	if err := s.userRepository.Save(nil, &user); err != nil {
		return models.User{}, echo.NewHTTPError(500, "could not update user").WithInternal(err)
	}
	return user, nil
}

// DeleteUser soft-deletes the account and whatever identity hangs off it:
// the professor with both capability rows, or the student.
func (s *service) DeleteUser(id uuid.UUID) error {
	user, err := s.userRepository.ReadWithAssociations(id)
	if err != nil {
		return echo.NewHTTPError(404, "user not found").WithInternal(err)
	}

	err = s.userRepository.Transaction(func(tx core.DB) error {
		if user.Professor != nil {
			if err := s.professorRepository.DeleteCascading(tx, user.Professor.ID); err != nil {
				return err
			}
		}
		if user.Student != nil {
			if err := s.studentRepository.Delete(tx, user.Student.ID); err != nil {
				return err
			}
		}
		return s.userRepository.Delete(tx, user.ID)
	})
	if err != nil {
		return echo.NewHTTPError(500, "could not delete user").WithInternal(err)
	}
	return nil
}
