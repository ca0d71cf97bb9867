package project

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

type projectRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Project]
}

func (f *projectRepoFake) ReadWithAssociations(id uuid.UUID) (models.Project, error) {
	return f.Read(id)
}

func (f *projectRepoFake) ReadForUpdate(tx core.DB, id uuid.UUID) (models.Project, error) {
	return f.Read(id)
}

func (f *projectRepoFake) UpdateStatusIf(tx core.DB, id uuid.UUID, from, to models.ProjectStatus) (bool, error) {
	for i, p := range f.Items {
		if p.ID == id && p.Status == from {
			f.Items[i].Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *projectRepoFake) ListPaged(skip, take int) ([]models.Project, error) {
	return f.Items, nil
}

func (f *projectRepoFake) ListByAdvisor(professorAdvisorID uuid.UUID, skip, take int) ([]models.Project, error) {
	var projects []models.Project
	for _, p := range f.Items {
		if p.ProfessorAdvisorID == professorAdvisorID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

type applicationRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.Application]
	projects *projectRepoFake
	// staleProject, when set, is returned by ReadWithProject instead of
	// the live row. Used to replay a lost status race.
	staleProject *models.Project
}

func (f *applicationRepoFake) ReadWithProject(id uuid.UUID) (models.Application, error) {
	application, err := f.Read(id)
	if err != nil {
		return application, err
	}
	if f.staleProject != nil {
		application.Project = f.staleProject
		return application, nil
	}
	project, err := f.projects.Read(application.ProjectID)
	if err != nil {
		return application, err
	}
	application.Project = &project
	return application, nil
}

func (f *applicationRepoFake) HasOpenForProjectAndStudent(projectID, studentID uuid.UUID) (bool, error) {
	for _, a := range f.Items {
		if a.ProjectID == projectID && a.StudentID == studentID &&
			(a.Status == models.ApplicationStatusInProgress || a.Status == models.ApplicationStatusAccepted) {
			return true, nil
		}
	}
	return false, nil
}

func (f *applicationRepoFake) FindAcceptedElsewhere(studentID uuid.UUID) (models.Application, error) {
	for _, a := range f.Items {
		if a.StudentID != studentID || a.Status != models.ApplicationStatusAccepted {
			continue
		}
		project, err := f.projects.Read(a.ProjectID)
		if err == nil && project.Status == models.ProjectStatusInProgress {
			return a, nil
		}
	}
	return models.Application{}, gorm.ErrRecordNotFound
}

func (f *applicationRepoFake) DeleteOpenByProject(tx core.DB, projectID, exceptID uuid.UUID) error {
	kept := f.Items[:0]
	for _, a := range f.Items {
		if a.ProjectID == projectID && a.ID != exceptID && a.Status == models.ApplicationStatusInProgress {
			continue
		}
		kept = append(kept, a)
	}
	f.Items = kept
	return nil
}

func (f *applicationRepoFake) DeleteOpenByStudent(tx core.DB, studentID, exceptProjectID uuid.UUID) error {
	kept := f.Items[:0]
	for _, a := range f.Items {
		if a.StudentID == studentID && a.ProjectID != exceptProjectID && a.Status == models.ApplicationStatusInProgress {
			continue
		}
		kept = append(kept, a)
	}
	f.Items = kept
	return nil
}

func (f *applicationRepoFake) DeleteByProject(tx core.DB, projectID uuid.UUID) error {
	kept := f.Items[:0]
	for _, a := range f.Items {
		if a.ProjectID == projectID {
			continue
		}
		kept = append(kept, a)
	}
	f.Items = kept
	return nil
}

type fileRepoFake struct {
	*testutils.MockRepository[uuid.UUID, models.File]
	projects     *projectRepoFake
	applications *applicationRepoFake
}

func (f *fileRepoFake) ReadWithProject(id uuid.UUID) (models.File, models.Project, error) {
	file, err := f.Read(id)
	if err != nil {
		return file, models.Project{}, err
	}
	if file.ProjectID == nil {
		return file, models.Project{}, gorm.ErrRecordNotFound
	}
	project, err := f.projects.Read(*file.ProjectID)
	if err != nil {
		return file, models.Project{}, err
	}
	for _, a := range f.applications.Items {
		if a.ProjectID == project.ID {
			project.Applications = append(project.Applications, a)
		}
	}
	return file, project, nil
}

type fixture struct {
	service      *service
	projects     *projectRepoFake
	applications *applicationRepoFake
	files        *fileRepoFake
	students     *testutils.MockRepository[uuid.UUID, models.Student]
}

func newFixture() fixture {
	projects := &projectRepoFake{MockRepository: testutils.NewMockRepository[uuid.UUID, models.Project]()}
	applications := &applicationRepoFake{
		MockRepository: testutils.NewMockRepository[uuid.UUID, models.Application](),
		projects:       projects,
	}
	files := &fileRepoFake{
		MockRepository: testutils.NewMockRepository[uuid.UUID, models.File](),
		projects:       projects,
		applications:   applications,
	}
	students := testutils.NewMockRepository[uuid.UUID, models.Student]()
	return fixture{
		service:      NewService(projects, applications, students, files),
		projects:     projects,
		applications: applications,
		files:        files,
		students:     students,
	}
}

func (f fixture) addStudent() models.Student {
	student := models.Student{Model: models.Model{ID: uuid.New()}, Name: "student"}
	f.students.Items = append(f.students.Items, student)
	return student
}

func (f fixture) addProject(advisorID uuid.UUID, status models.ProjectStatus) models.Project {
	project := models.Project{
		Model:              models.Model{ID: uuid.New()},
		Title:              "distributed systems",
		Status:             status,
		ProfessorAdvisorID: advisorID,
	}
	f.projects.Items = append(f.projects.Items, project)
	return project
}

func (f fixture) addApplication(projectID, studentID uuid.UUID, status models.ApplicationStatus) models.Application {
	application := models.Application{
		Model:     models.Model{ID: uuid.New()},
		ProjectID: projectID,
		StudentID: studentID,
		Status:    status,
	}
	f.applications.Items = append(f.applications.Items, application)
	return application
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %v", err)
	return httpErr.Code
}

func TestCreateApplication(t *testing.T) {
	t.Run("creates an open application", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()

		application, err := f.service.CreateApplication(project.ID, student.ID)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusInProgress, application.Status)
	})

	t.Run("missing project is a 404", func(t *testing.T) {
		f := newFixture()
		student := f.addStudent()

		_, err := f.service.CreateApplication(uuid.New(), student.ID)

		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("a second open application for the same project conflicts", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusActive)
		student := f.addStudent()
		f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		_, err := f.service.CreateApplication(project.ID, student.ID)

		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("a rejected application does not block a new one", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusActive)
		student := f.addStudent()
		f.addApplication(project.ID, student.ID, models.ApplicationStatusRejected)

		_, err := f.service.CreateApplication(project.ID, student.ID)

		assert.NoError(t, err)
	})

	t.Run("a student accepted on a running project cannot apply elsewhere", func(t *testing.T) {
		f := newFixture()
		running := f.addProject(uuid.New(), models.ProjectStatusInProgress)
		other := f.addProject(uuid.New(), models.ProjectStatusActive)
		student := f.addStudent()
		f.addApplication(running.ID, student.ID, models.ApplicationStatusAccepted)

		_, err := f.service.CreateApplication(other.ID, student.ID)

		assert.Equal(t, 409, httpCode(t, err))
	})
}

func TestAcceptApplication(t *testing.T) {
	t.Run("accept moves application and project together and drops competitors", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		otherProject := f.addProject(uuid.New(), models.ProjectStatusActive)
		s1 := f.addStudent()
		s2 := f.addStudent()
		app1 := f.addApplication(project.ID, s1.ID, models.ApplicationStatusInProgress)
		app2 := f.addApplication(project.ID, s2.ID, models.ApplicationStatusInProgress)
		elsewhere := f.addApplication(otherProject.ID, s1.ID, models.ApplicationStatusInProgress)

		updatedProject, updatedApplication, err := f.service.AcceptApplication(app1.ID, advisorID)

		require.NoError(t, err)
		assert.Equal(t, models.ProjectStatusInProgress, updatedProject.Status)
		assert.Equal(t, models.ApplicationStatusAccepted, updatedApplication.Status)

		// the competing application on the same project is gone
		_, err = f.applications.Read(app2.ID)
		assert.Error(t, err)
		// so is the student's open application elsewhere
		_, err = f.applications.Read(elsewhere.ID)
		assert.Error(t, err)
		// the other project stays open
		other, _ := f.projects.Read(otherProject.ID)
		assert.Equal(t, models.ProjectStatusActive, other.Status)
	})

	t.Run("accepting the dropped competitor afterwards is a 404", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		s1 := f.addStudent()
		s2 := f.addStudent()
		app1 := f.addApplication(project.ID, s1.ID, models.ApplicationStatusInProgress)
		app2 := f.addApplication(project.ID, s2.ID, models.ApplicationStatusInProgress)

		_, _, err := f.service.AcceptApplication(app1.ID, advisorID)
		require.NoError(t, err)

		_, _, err = f.service.AcceptApplication(app2.ID, advisorID)
		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("wrong advisor reads as not found", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		_, _, err := f.service.AcceptApplication(application.ID, uuid.New())

		assert.Equal(t, 404, httpCode(t, err))
	})

	t.Run("an already decided application conflicts", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusRejected)

		_, _, err := f.service.AcceptApplication(application.ID, advisorID)

		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("a running project conflicts", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusInProgress)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		_, _, err := f.service.AcceptApplication(application.ID, advisorID)

		assert.Equal(t, 409, httpCode(t, err))
	})

	t.Run("losing the status race surfaces as a conflict", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusInProgress)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		// the pre-check still sees the project as open, the
		// compare-and-swap then runs against the committed state
		stale := project
		stale.Status = models.ProjectStatusActive
		f.applications.staleProject = &stale

		_, _, err := f.service.AcceptApplication(application.ID, advisorID)

		assert.Equal(t, 409, httpCode(t, err))
		stored, _ := f.applications.Read(application.ID)
		assert.Equal(t, models.ApplicationStatusInProgress, stored.Status)
	})
}

func TestRejectApplication(t *testing.T) {
	t.Run("reject marks the application", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		updated, err := f.service.RejectApplication(application.ID, advisorID)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusRejected, updated.Status)
		stored, _ := f.projects.Read(project.ID)
		assert.Equal(t, models.ProjectStatusActive, stored.Status)
	})

	t.Run("rejecting twice conflicts", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusRejected)

		_, err := f.service.RejectApplication(application.ID, advisorID)

		assert.Equal(t, 409, httpCode(t, err))
	})
}

func TestRemoveApplication(t *testing.T) {
	t.Run("removing the accepted application reopens the project", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusInProgress)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusAccepted)

		err := f.service.RemoveApplication(application.ID, nil, &student.ID)

		require.NoError(t, err)
		_, err = f.applications.Read(application.ID)
		assert.Error(t, err)
		stored, _ := f.projects.Read(project.ID)
		assert.Equal(t, models.ProjectStatusActive, stored.Status)
	})

	t.Run("removing an open application leaves the project alone", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		err := f.service.RemoveApplication(application.ID, &advisorID, nil)

		require.NoError(t, err)
		stored, _ := f.projects.Read(project.ID)
		assert.Equal(t, models.ProjectStatusActive, stored.Status)
	})

	t.Run("a stranger reads not found", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		otherStudent := uuid.New()
		otherAdvisor := uuid.New()
		err := f.service.RemoveApplication(application.ID, &otherAdvisor, &otherStudent)

		assert.Equal(t, 404, httpCode(t, err))
	})
}

func TestDeactivateProject(t *testing.T) {
	f := newFixture()
	advisorID := uuid.New()
	project := f.addProject(advisorID, models.ProjectStatusActive)

	updated, err := f.service.DeactivateProject(project.ID, advisorID)
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusDisabled, updated.Status)

	// deactivating twice conflicts
	_, err = f.service.DeactivateProject(project.ID, advisorID)
	assert.Equal(t, 409, httpCode(t, err))
}

func TestDeactivateRunningProject(t *testing.T) {
	f := newFixture()
	advisorID := uuid.New()
	project := f.addProject(advisorID, models.ProjectStatusInProgress)

	_, err := f.service.DeactivateProject(project.ID, advisorID)

	assert.Equal(t, 409, httpCode(t, err))
	stored, _ := f.projects.Read(project.ID)
	assert.Equal(t, models.ProjectStatusInProgress, stored.Status)
}

func TestDeleteProject(t *testing.T) {
	t.Run("delete cascades to the applications", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		student := f.addStudent()
		application := f.addApplication(project.ID, student.ID, models.ApplicationStatusInProgress)

		err := f.service.DeleteProject(project.ID, advisorID)

		require.NoError(t, err)
		_, err = f.projects.Read(project.ID)
		assert.Error(t, err)
		_, err = f.applications.Read(application.ID)
		assert.Error(t, err)
	})

	t.Run("a running project cannot be deleted", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusInProgress)

		err := f.service.DeleteProject(project.ID, advisorID)

		assert.Equal(t, 409, httpCode(t, err))
		_, readErr := f.projects.Read(project.ID)
		assert.NoError(t, readErr)
	})
}

func TestRemoveFile(t *testing.T) {
	newFile := func(f fixture, projectID uuid.UUID) models.File {
		file := models.File{
			Model:     models.Model{ID: uuid.New()},
			Title:     "proposal",
			FileURL:   "https://files.example.com/proposal.pdf",
			ProjectID: &projectID,
		}
		f.files.Items = append(f.files.Items, file)
		return file
	}

	t.Run("the owning advisor may remove it", func(t *testing.T) {
		f := newFixture()
		advisorID := uuid.New()
		project := f.addProject(advisorID, models.ProjectStatusActive)
		file := newFile(f, project.ID)

		err := f.service.RemoveFile(file.ID, &advisorID, nil)

		assert.NoError(t, err)
	})

	t.Run("the accepted student may remove it", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusInProgress)
		student := f.addStudent()
		f.addApplication(project.ID, student.ID, models.ApplicationStatusAccepted)
		file := newFile(f, project.ID)

		err := f.service.RemoveFile(file.ID, nil, &student.ID)

		assert.NoError(t, err)
	})

	t.Run("anyone else reads not found", func(t *testing.T) {
		f := newFixture()
		project := f.addProject(uuid.New(), models.ProjectStatusActive)
		file := newFile(f, project.ID)

		strangerID := uuid.New()
		err := f.service.RemoveFile(file.ID, nil, &strangerID)

		assert.Equal(t, 404, httpCode(t, err))
	})
}
