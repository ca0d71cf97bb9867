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
	"github.com/labstack/echo/v4"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/database/repositories"
	"github.com/tccflow/tccflow/internal/monitoring"
)

type registerRepository interface {
	repositories.Repository[uuid.UUID, models.Register, core.DB]
	ListPaged(registerType *models.RegisterType, skip, take int) ([]models.Register, error)
}

type userRepository interface {
	Create(tx core.DB, user *models.User) error
	ExistsByLogin(login string) (bool, error)
}

type classRepository interface {
	Read(id uuid.UUID) (models.Class, error)
	CreateStudentOnClass(tx core.DB, row *models.StudentOnClass) error
}

type service struct {
	registerRepository registerRepository
	userRepository     userRepository
	classRepository    classRepository
}

func NewService(registerRepository registerRepository, userRepository userRepository, classRepository classRepository) *service {
	return &service{
		registerRepository: registerRepository,
		userRepository:     userRepository,
		classRepository:    classRepository,
	}
}

// CreateRegister files a self-registration request. It sits pending until
// an administrator accepts it.
func (s *service) CreateRegister(register *models.Register) (models.Register, error) {
	if err := s.registerRepository.Create(nil, register); err != nil {
		return models.Register{}, echo.NewHTTPError(500, "could not create register").WithInternal(err)
	}
	return *register, nil
}

func (s *service) ReadRegister(id uuid.UUID) (models.Register, error) {
	register, err := s.registerRepository.Read(id)
	if err != nil {
		return models.Register{}, echo.NewHTTPError(404, "register not found").WithInternal(err)
	}
	return register, nil
}

func (s *service) ListRegisters(registerType *models.RegisterType, skip, take int) ([]models.Register, error) {
	registers, err := s.registerRepository.ListPaged(registerType, skip, take)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not list registers").WithInternal(err)
	}
	return registers, nil
}

func (s *service) DeleteRegister(id uuid.UUID) error {
	if _, err := s.registerRepository.Read(id); err != nil {
		return echo.NewHTTPError(404, "register not found").WithInternal(err)
	}
	if err := s.registerRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete register").WithInternal(err)
	}
	return nil
}

// AcceptProfessor converts a pending professor register into a user with
// a professor record carrying both capabilities. The register is consumed.
func (s *service) AcceptProfessor(id uuid.UUID) (models.User, error) {
	register, err := s.consumableRegister(id, models.RegisterTypeProfessor)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.buildUser(register, models.UserTypeProfessor)
	if err != nil {
		return models.User{}, err
	}
	user.Professor = &models.Professor{
		Name:             register.Name,
		Email:            register.Email,
		EnrollmentCode:   register.EnrollmentCode,
		PhoneNumber:      register.PhoneNumber,
		ProfessorAdvisor: &models.ProfessorAdvisor{},
		ProfessorTcc:     &models.ProfessorTcc{},
	}

	err = s.registerRepository.Transaction(func(tx core.DB) error {
		if err := s.registerRepository.Delete(tx, register.ID); err != nil {
			return err
		}
		return s.userRepository.Create(tx, &user)
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.User{}, echo.NewHTTPError(409, "already registered").WithInternal(err)
		}
		return models.User{}, echo.NewHTTPError(500, "could not accept register").WithInternal(err)
	}
	monitoring.RegistersAcceptedAmount.Inc()
	return user, nil
}

// AcceptStudent converts a pending student register into a user with a
// student record, optionally enrolling the student into a class.
func (s *service) AcceptStudent(id uuid.UUID, classID *uuid.UUID) (models.User, error) {
	register, err := s.consumableRegister(id, models.RegisterTypeStudent)
	if err != nil {
		return models.User{}, err
	}

	if classID != nil {
		if _, err := s.classRepository.Read(*classID); err != nil {
			return models.User{}, echo.NewHTTPError(404, "class not found").WithInternal(err)
		}
	}

	user, err := s.buildUser(register, models.UserTypeStudent)
	if err != nil {
		return models.User{}, err
	}
	user.Student = &models.Student{
		Name:           register.Name,
		Email:          register.Email,
		EnrollmentCode: register.EnrollmentCode,
		PhoneNumber:    register.PhoneNumber,
	}

	err = s.registerRepository.Transaction(func(tx core.DB) error {
		if err := s.registerRepository.Delete(tx, register.ID); err != nil {
			return err
		}
		if err := s.userRepository.Create(tx, &user); err != nil {
			return err
		}
		if classID != nil {
			return s.classRepository.CreateStudentOnClass(tx, &models.StudentOnClass{
				StudentID: user.Student.ID,
				ClassID:   *classID,
				Status:    models.StudentOnClassStatusEnrolled,
			})
		}
		return nil
	})
	if err != nil {
		if database.IsDuplicateKeyError(err) {
			return models.User{}, echo.NewHTTPError(409, "already registered").WithInternal(err)
		}
		return models.User{}, echo.NewHTTPError(500, "could not accept register").WithInternal(err)
	}
	monitoring.RegistersAcceptedAmount.Inc()
	return user, nil
}

func (s *service) consumableRegister(id uuid.UUID, registerType models.RegisterType) (models.Register, error) {
	register, err := s.registerRepository.Read(id)
	// a register of the wrong type reads the same as a missing one
	if err != nil || register.Type != registerType {
		return models.Register{}, echo.NewHTTPError(404, "register not found").WithInternal(err)
	}

	exists, err := s.userRepository.ExistsByLogin(register.EnrollmentCode)
	if err != nil {
		return models.Register{}, echo.NewHTTPError(500, "could not accept register").WithInternal(err)
	}
	if exists {
		return models.Register{}, echo.NewHTTPError(409, "already registered")
	}
	return register, nil
}

// buildUser provisions the account: login is the enrollment code, the
// first password is derived from it and stored hashed.
func (s *service) buildUser(register models.Register, userType models.UserType) (models.User, error) {
	hash, err := auth.HashPassword(auth.InitialPassword(register.EnrollmentCode))
	if err != nil {
		return models.User{}, echo.NewHTTPError(500, "could not accept register").WithInternal(err)
	}
	return models.User{
		Login:    register.EnrollmentCode,
		Password: hash,
		Type:     userType,
	}, nil
}
