package class

import (
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tccflow/tccflow/internal/core"
	"github.com/tccflow/tccflow/internal/database/models"
	"github.com/tccflow/tccflow/internal/testutils"
	"gorm.io/gorm"
)

type classRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Class]
	professorJoins []models.ProfessorTccOnClass
	studentJoins   []models.StudentOnClass
}

func (f *classRepoFake) ReadWithAssociations(id uuid.UUID) (models.Class, error) {
	return f.Read(id)
}

func (f *classRepoFake) ExistsByCode(code string) (bool, error) {
	for _, c := range f.Items {
		if c.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *classRepoFake) ListPaged(skip, take int) ([]models.Class, error) {
	return f.Items, nil
}

func (f *classRepoFake) ListByProfessorTcc(professorTccID uuid.UUID, skip, take int) ([]models.Class, error) {
	var classes []models.Class
	for _, join := range f.professorJoins {
		if join.ProfessorTccID != professorTccID {
			continue
		}
		if class, err := f.Read(join.ClassID); err == nil {
			classes = append(classes, class)
		}
	}
	return classes, nil
}

func (f *classRepoFake) CreateProfessorTccOnClass(tx core.DB, row *models.ProfessorTccOnClass) error {
	row.ID = uuid.New()
	f.professorJoins = append(f.professorJoins, *row)
	return nil
}

func (f *classRepoFake) FindProfessorTccOnClass(professorTccID, classID uuid.UUID) (models.ProfessorTccOnClass, error) {
	for _, join := range f.professorJoins {
		if join.ProfessorTccID == professorTccID && join.ClassID == classID {
			return join, nil
		}
	}
	return models.ProfessorTccOnClass{}, gorm.ErrRecordNotFound
}

func (f *classRepoFake) DeleteProfessorTccOnClass(tx core.DB, id uuid.UUID) error {
	for i, join := range f.professorJoins {
		if join.ID == id {
			f.professorJoins = append(f.professorJoins[:i], f.professorJoins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *classRepoFake) CreateStudentOnClass(tx core.DB, row *models.StudentOnClass) error {
	row.ID = uuid.New()
	f.studentJoins = append(f.studentJoins, *row)
	return nil
}

func (f *classRepoFake) FindStudentOnClass(studentID, classID uuid.UUID) (models.StudentOnClass, error) {
	for _, join := range f.studentJoins {
		if join.StudentID == studentID && join.ClassID == classID {
			return join, nil
		}
	}
	return models.StudentOnClass{}, gorm.ErrRecordNotFound
}

func (f *classRepoFake) FindStudentOnClassInSemester(studentID, semesterID uuid.UUID) (models.StudentOnClass, error) {
	for _, join := range f.studentJoins {
		if join.StudentID != studentID {
			continue
		}
		class, err := f.Read(join.ClassID)
		if err == nil && class.SemesterID == semesterID {
			return join, nil
		}
	}
	return models.StudentOnClass{}, gorm.ErrRecordNotFound
}

func (f *classRepoFake) DeleteStudentOnClass(tx core.DB, id uuid.UUID) error {
	for i, join := range f.studentJoins {
		if join.ID == id {
			f.studentJoins = append(f.studentJoins[:i], f.studentJoins[i+1:]...)
			return nil
		}
	}
	return nil
}

type semesterRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Semester]
}

type professorRepoFake struct {
	professors []models.Professor
}

func (f *professorRepoFake) ReadWithCapabilities(id uuid.UUID) (models.Professor, error) {
	for _, p := range f.professors {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Professor{}, gorm.ErrRecordNotFound
}

type studentRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Student]
}

type fixture struct {
	svc        *service
	classes    *classRepoFake
	semesters  *semesterRepoFake
	professors *professorRepoFake
	students   *studentRepoFake
}

func newFixture() *fixture {
	f := &fixture{
		classes:    &classRepoFake{MockRepository: testutils.NewMockRepository[uuid.UUID, models.Class]()},
		semesters:  &semesterRepoFake{MockRepository: testutils.NewMockRepository[uuid.UUID, models.Semester]()},
		professors: &professorRepoFake{},
		students:   &studentRepoFake{MockRepository: testutils.NewMockRepository[uuid.UUID, models.Student]()},
	}
	f.svc = NewService(f.classes, f.semesters, f.professors, f.students)
	return f
}

func (f *fixture) addSemester() models.Semester {
	semester := models.Semester{Model: models.Model{ID: uuid.New()}, Code: "2024.1"}
	f.semesters.Items = append(f.semesters.Items, semester)
	return semester
}

func (f *fixture) addClass(code string, semesterID uuid.UUID) models.Class {
	class := models.Class{Model: models.Model{ID: uuid.New()}, Code: code, SemesterID: semesterID}
	f.classes.Items = append(f.classes.Items, class)
	return class
}

func (f *fixture) addProfessorWithTcc() models.Professor {
	professor := models.Professor{
		Model:        models.Model{ID: uuid.New()},
		Name:         "Ada",
		ProfessorTcc: &models.ProfessorTcc{Model: models.Model{ID: uuid.New()}},
	}
	f.professors.professors = append(f.professors.professors, professor)
	return professor
}

func (f *fixture) addStudent() models.Student {
	student := models.Student{Model: models.Model{ID: uuid.New()}, Name: "Grace"}
	f.students.Items = append(f.students.Items, student)
	return student
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return httpErr.Code
}

func TestCreateClass(t *testing.T) {
	t.Run("creates a class in an existing semester", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()

		class := models.Class{Code: "TCC-01", SemesterID: semester.ID}
		created, err := f.svc.CreateClass(&class)

		require.NoError(t, err)
		assert.Equal(t, "TCC-01", created.Code)
	})

	t.Run("an unknown semester is a 404", func(t *testing.T) {
		f := newFixture()

		class := models.Class{Code: "TCC-01", SemesterID: uuid.New()}
		_, err := f.svc.CreateClass(&class)

		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("a taken code conflicts even in another semester", func(t *testing.T) {
		f := newFixture()
		first := f.addSemester()
		second := models.Semester{Model: models.Model{ID: uuid.New()}, Code: "2024.2"}
		f.semesters.Items = append(f.semesters.Items, second)
		f.addClass("TCC-01", first.ID)

		class := models.Class{Code: "TCC-01", SemesterID: second.ID}
		_, err := f.svc.CreateClass(&class)

		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("a deleted class frees its code", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		old := f.addClass("TCC-01", semester.ID)
		require.NoError(t, f.svc.DeleteClass(old.ID))

		class := models.Class{Code: "TCC-01", SemesterID: semester.ID}
		_, err := f.svc.CreateClass(&class)

		assert.NoError(t, err)
	})
}

func TestAssignProfessor(t *testing.T) {
	t.Run("joins the tcc capability to the class", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		professor := f.addProfessorWithTcc()

		row, err := f.svc.AssignProfessor(class.ID, professor.ID)

		require.NoError(t, err)
		assert.Equal(t, professor.ProfessorTcc.ID, row.ProfessorTccID)
		assert.Equal(t, class.ID, row.ClassID)
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		professor := f.addProfessorWithTcc()

		_, err := f.svc.AssignProfessor(class.ID, professor.ID)
		require.NoError(t, err)

		_, err = f.svc.AssignProfessor(class.ID, professor.ID)
		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("a professor without the tcc capability is a 404", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		professor := models.Professor{Model: models.Model{ID: uuid.New()}, Name: "Alan"}
		f.professors.professors = append(f.professors.professors, professor)

		_, err := f.svc.AssignProfessor(class.ID, professor.ID)

		assert.Equal(t, 404, httpCode(t, err))
	})
}

func TestAssignStudent(t *testing.T) {
	t.Run("enrolls the student", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		student := f.addStudent()

		row, err := f.svc.AssignStudent(class.ID, student.ID)

		require.NoError(t, err)
		assert.Equal(t, models.StudentOnClassStatusEnrolled, row.Status)
	})

	t.Run("a second class in the same semester conflicts", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		first := f.addClass("TCC-01", semester.ID)
		second := f.addClass("TCC-02", semester.ID)
		student := f.addStudent()

		_, err := f.svc.AssignStudent(first.ID, student.ID)
		require.NoError(t, err)

		_, err = f.svc.AssignStudent(second.ID, student.ID)
		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("a class in another semester is fine", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		other := models.Semester{Model: models.Model{ID: uuid.New()}, Code: "2024.2"}
		f.semesters.Items = append(f.semesters.Items, other)
		first := f.addClass("TCC-01", semester.ID)
		second := f.addClass("TCC-02", other.ID)
		student := f.addStudent()

		_, err := f.svc.AssignStudent(first.ID, student.ID)
		require.NoError(t, err)

		_, err = f.svc.AssignStudent(second.ID, student.ID)
		assert.NoError(t, err)
	})
}

func TestRemoveAssignments(t *testing.T) {
	t.Run("removing a professor frees the slot", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		professor := f.addProfessorWithTcc()
		_, err := f.svc.AssignProfessor(class.ID, professor.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.RemoveProfessor(class.ID, professor.ID))

		_, err = f.svc.AssignProfessor(class.ID, professor.ID)
		assert.NoError(t, err)
	})

	t.Run("removing an unassigned professor is a 404", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		professor := f.addProfessorWithTcc()

		err := f.svc.RemoveProfessor(class.ID, professor.ID)

		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("removing a student frees the semester", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		first := f.addClass("TCC-01", semester.ID)
		second := f.addClass("TCC-02", semester.ID)
		student := f.addStudent()
		_, err := f.svc.AssignStudent(first.ID, student.ID)
		require.NoError(t, err)

		require.NoError(t, f.svc.RemoveStudent(first.ID, student.ID))

		_, err = f.svc.AssignStudent(second.ID, student.ID)
		assert.NoError(t, err)
	})

	t.Run("removing an unenrolled student is a 404", func(t *testing.T) {
		f := newFixture()
		semester := f.addSemester()
		class := f.addClass("TCC-01", semester.ID)
		student := f.addStudent()

		err := f.svc.RemoveStudent(class.ID, student.ID)

		assert.Equal(t, 404, httpCode(t, err))
	})
}
