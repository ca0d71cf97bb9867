package register

import (
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/testutils"
	"gorm.io/gorm"
)

type registerRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Register]
}

func (f *registerRepoFake) ListPaged(registerType *models.RegisterType, skip, take int) ([]models.Register, error) {
	if registerType == nil {
		return f.Items, nil
	}
	var registers []models.Register
	for _, r := range f.Items {
		if r.Type == *registerType {
			registers = append(registers, r)
		}
	}
	return registers, nil
}

type userRepoFake struct {
	users []models.User
}

func (f *userRepoFake) Create(tx core.DB, user *models.User) error {
	// the real repository creates the nested records in one go
	user.ID = uuid.New()
	if user.Professor != nil {
		user.Professor.ID = uuid.New()
		if user.Professor.ProfessorAdvisor != nil {
			user.Professor.ProfessorAdvisor.ID = uuid.New()
		}
		if user.Professor.ProfessorTcc != nil {
			user.Professor.ProfessorTcc.ID = uuid.New()
		}
	}
	if user.Student != nil {
		user.Student.ID = uuid.New()
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *userRepoFake) ExistsByLogin(login string) (bool, error) {
	for _, u := range f.users {
		if u.Login == login {
			return true, nil
		}
	}
	return false, nil
}

type classRepoFake struct {
	classes     []models.Class
	enrollments []models.StudentOnClass
}

func (f *classRepoFake) Read(id uuid.UUID) (models.Class, error) {
	for _, c := range f.classes {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Class{}, gorm.ErrRecordNotFound
}

func (f *classRepoFake) CreateStudentOnClass(tx core.DB, row *models.StudentOnClass) error {
	f.enrollments = append(f.enrollments, *row)
	return nil
}

type fixture struct {
	svc       *service
	registers *registerRepoFake
	users     *userRepoFake
	classes   *classRepoFake
}

func newFixture() *fixture {
	f := &fixture{
		registers: &registerRepoFake{MockRepository: testutils.NewMockRepository[uuid.UUID, models.Register]()},
		users:     &userRepoFake{},
		classes:   &classRepoFake{},
	}
	f.svc = NewService(f.registers, f.users, f.classes)
	return f
}

func (f *fixture) addRegister(registerType models.RegisterType, enrollmentCode string) models.Register {
	register := models.Register{
		Model:          models.Model{ID: uuid.New()},
		Type:           registerType,
		Name:           "Barbara",
		Email:          "barbara@example.org",
		EnrollmentCode: enrollmentCode,
	}
	f.registers.Items = append(f.registers.Items, register)
	return register
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return httpErr.Code
}

func TestAcceptProfessor(t *testing.T) {
	t.Run("provisions a professor with both capabilities", func(t *testing.T) {
		f := newFixture()
		register := f.addRegister(models.RegisterTypeProfessor, "P2024001")

		user, err := f.svc.AcceptProfessor(register.ID)

		require.NoError(t, err)
		assert.Equal(t, models.UserTypeProfessor, user.Type)
		assert.Equal(t, "P2024001", user.Login)
		require.NotNil(t, user.Professor)
		assert.NotNil(t, user.Professor.ProfessorAdvisor)
		assert.NotNil(t, user.Professor.ProfessorTcc)

		// the register is consumed
		_, err = f.registers.Read(register.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("the first password derives from the enrollment code", func(t *testing.T) {
		f := newFixture()
		register := f.addRegister(models.RegisterTypeProfessor, "P2024001")

		user, err := f.svc.AcceptProfessor(register.ID)

		require.NoError(t, err)
		assert.True(t, auth.ComparePassword(user.Password, "P20240"))
	})

	t.Run("a student register is a 404", func(t *testing.T) {
		f := newFixture()
		register := f.addRegister(models.RegisterTypeStudent, "S2024001")

		_, err := f.svc.AcceptProfessor(register.ID)

		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("a taken login conflicts", func(t *testing.T) {
		f := newFixture()
		f.users.users = append(f.users.users, models.User{Login: "P2024001"})
		register := f.addRegister(models.RegisterTypeProfessor, "P2024001")

		_, err := f.svc.AcceptProfessor(register.ID)

		assert.Equal(t, 409, httpCode(t, err))
	})
}

func TestAcceptStudent(t *testing.T) {
	t.Run("provisions a student without a class", func(t *testing.T) {
		f := newFixture()
		register := f.addRegister(models.RegisterTypeStudent, "S2024001")

		user, err := f.svc.AcceptStudent(register.ID, nil)

		require.NoError(t, err)
		assert.Equal(t, models.UserTypeStudent, user.Type)
		require.NotNil(t, user.Student)
		assert.Empty(t, f.classes.enrollments)
	})

	t.Run("enrolls the student when a class is given", func(t *testing.T) {
		f := newFixture()
		class := models.Class{Model: models.Model{ID: uuid.New()}, Code: "TCC-01"}
		f.classes.classes = append(f.classes.classes, class)
		register := f.addRegister(models.RegisterTypeStudent, "S2024001")

		user, err := f.svc.AcceptStudent(register.ID, &class.ID)

		require.NoError(t, err)
		require.Len(t, f.classes.enrollments, 1)
		assert.Equal(t, user.Student.ID, f.classes.enrollments[0].StudentID)
		assert.Equal(t, class.ID, f.classes.enrollments[0].ClassID)
		assert.Equal(t, models.StudentOnClassStatusEnrolled, f.classes.enrollments[0].Status)
	})

	t.Run("an unknown class is a 404 and the register survives", func(t *testing.T) {
		f := newFixture()
		register := f.addRegister(models.RegisterTypeStudent, "S2024001")
		classID := uuid.New()

		_, err := f.svc.AcceptStudent(register.ID, &classID)

		assert.Equal(t, 404, httpCode(t, err))
		_, err = f.registers.Read(register.ID)
		assert.NoError(t, err)
	})
}

func TestListRegisters(t *testing.T) {
	t.Run("filters by type", func(t *testing.T) {
		f := newFixture()
		f.addRegister(models.RegisterTypeProfessor, "P2024001")
		f.addRegister(models.RegisterTypeStudent, "S2024001")
		f.addRegister(models.RegisterTypeStudent, "S2024002")

		registerType := models.RegisterTypeStudent
		registers, err := f.svc.ListRegisters(&registerType, 0, 50)

		require.NoError(t, err)
		assert.Len(t, registers, 2)
	})

	t.Run("no filter returns everything", func(t *testing.T) {
		f := newFixture()
		f.addRegister(models.RegisterTypeProfessor, "P2024001")
		f.addRegister(models.RegisterTypeStudent, "S2024001")

		registers, err := f.svc.ListRegisters(nil, 0, 50)

		require.NoError(t, err)
		assert.Len(t, registers, 2)
	})
}
