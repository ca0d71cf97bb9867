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

package main

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tccflow/tccflow/internal/accesscontrol"
	"github.com/tccflow/tccflow/internal/auth"
	"github.com/tccflow/tccflow/internal/config"
	"github.com/tccflow/tccflow/internal/core"
	authcontroller "github.com/tccflow/tccflow/internal/core/auth"
	"github.com/tccflow/tccflow/internal/core/class"
	"github.com/tccflow/tccflow/internal/core/exam"
	"github.com/tccflow/tccflow/internal/core/professor"
	"github.com/tccflow/tccflow/internal/core/project"
	"github.com/tccflow/tccflow/internal/core/register"
	"github.com/tccflow/tccflow/internal/core/semester"
	"github.com/tccflow/tccflow/internal/core/student"
	"github.com/tccflow/tccflow/internal/core/user"
	"github.com/tccflow/tccflow/internal/database"
	"github.com/tccflow/tccflow/internal/database/repositories"
	"github.com/tccflow/tccflow/internal/echohttp"
)

func main() {
	core.InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("could not load config", "err", err)
		panic(err)
	}

	db, err := database.NewConnection(cfg.PostgresHost, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB, cfg.PostgresPort)
	if err != nil {
		slog.Error("could not connect to database", "err", err)
		panic(err)
	}

	// repositories
	userRepository := repositories.NewUserRepository(db)
	professorRepository := repositories.NewProfessorRepository(db)
	studentRepository := repositories.NewStudentRepository(db)
	semesterRepository := repositories.NewSemesterRepository(db)
	classRepository := repositories.NewClassRepository(db)
	projectRepository := repositories.NewProjectRepository(db)
	applicationRepository := repositories.NewApplicationRepository(db)
	registerRepository := repositories.NewRegisterRepository(db)
	examRepository := repositories.NewExamRepository(db)
	postRepository := repositories.NewPostRepository(db)
	fileRepository := repositories.NewFileRepository(db)

	// services and controllers
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)
	authController := authcontroller.NewHttpController(userRepository, issuer)
	userController := user.NewHttpController(user.NewService(userRepository, professorRepository, studentRepository))
	semesterController := semester.NewHttpController(semester.NewService(semesterRepository))
	classController := class.NewHttpController(class.NewService(classRepository, semesterRepository, professorRepository, studentRepository))
	projectController := project.NewHttpController(project.NewService(projectRepository, applicationRepository, studentRepository, fileRepository))
	registerController := register.NewHttpController(register.NewService(registerRepository, userRepository, classRepository))
	professorController := professor.NewHttpController(professorRepository)
	studentController := student.NewHttpController(studentRepository)
	examController := exam.NewHttpController(exam.NewService(examRepository, postRepository, classRepository))

	e := echohttp.Server(cfg.FrontendOrigin)
	api := e.Group("/api/v1")

	// public surface
	api.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	api.POST("/login", authController.Login)
	api.POST("/registers", registerController.Create)

	// everything below requires a session
	sessionRouter := api.Group("", auth.SessionMiddleware(issuer, userRepository))
	sessionRouter.GET("/me", authController.Me)
	sessionRouter.PATCH("/users/password", userController.UpdatePassword)

	admin := core.AccessControlMiddleware(accesscontrol.RoleAdmin)
	adminOrSecretary := core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary)

	userRouter := sessionRouter.Group("/users", admin)
	userRouter.POST("", userController.Create)
	userRouter.GET("", userController.List)
	userRouter.GET("/:userID", userController.Read)
	userRouter.DELETE("/:userID", userController.Delete)

	registerRouter := sessionRouter.Group("/registers")
	registerRouter.GET("", registerController.List, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary, accesscontrol.RoleProfessorTcc))
	registerRouter.GET("/:registerID", registerController.Read, adminOrSecretary)
	registerRouter.POST("/:registerID/accept-professor", registerController.AcceptProfessor, adminOrSecretary)
	registerRouter.POST("/:registerID/accept-student", registerController.AcceptStudent, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessorTcc))
	registerRouter.DELETE("/:registerID", registerController.Delete, adminOrSecretary)

	semesterRouter := sessionRouter.Group("/semesters", adminOrSecretary)
	semesterRouter.POST("", semesterController.Create)
	semesterRouter.GET("", semesterController.List)
	semesterRouter.GET("/current", semesterController.Current)
	semesterRouter.GET("/:semesterID", semesterController.Read)
	semesterRouter.PATCH("/:semesterID", semesterController.Update)
	semesterRouter.DELETE("/:semesterID", semesterController.Delete)

	classRouter := sessionRouter.Group("/classes")
	classRouter.POST("", classController.Create, adminOrSecretary)
	classRouter.GET("", classController.List, adminOrSecretary)
	classRouter.GET("/mine", classController.ListMine, core.AccessControlMiddleware(accesscontrol.RoleProfessorTcc))
	classRouter.GET("/:classID", classController.Read, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary, accesscontrol.RoleProfessorTcc, accesscontrol.RoleStudent))
	classRouter.PATCH("/:classID", classController.Update, adminOrSecretary)
	classRouter.DELETE("/:classID", classController.Delete, adminOrSecretary)
	classRouter.POST("/:classID/professors", classController.AssignProfessor, adminOrSecretary)
	classRouter.DELETE("/:classID/professors/:professorID", classController.RemoveProfessor, adminOrSecretary)
	classRouter.POST("/:classID/students", classController.AssignStudent, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessorTcc))
	classRouter.DELETE("/:classID/students/:studentID", classController.RemoveStudent, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary, accesscontrol.RoleProfessorTcc))
	classRouter.POST("/:classID/exams", examController.CreateExam, core.AccessControlMiddleware(accesscontrol.RoleProfessorTcc))

	advisor := core.AccessControlMiddleware(accesscontrol.RoleProfessorAdvisor)
	advisorOrStudent := core.AccessControlMiddleware(accesscontrol.RoleProfessorAdvisor, accesscontrol.RoleStudent)

	projectRouter := sessionRouter.Group("/projects")
	projectRouter.POST("", projectController.Create, advisor)
	projectRouter.GET("", projectController.List)
	projectRouter.GET("/mine", projectController.ListMine, advisor)
	projectRouter.GET("/:projectID", projectController.Read)
	projectRouter.PATCH("/:projectID", projectController.Update, advisor)
	projectRouter.PATCH("/:projectID/deactivate", projectController.Deactivate, advisor)
	projectRouter.DELETE("/:projectID", projectController.Delete, advisor)
	projectRouter.POST("/:projectID/applications", projectController.Apply, core.AccessControlMiddleware(accesscontrol.RoleStudent))
	projectRouter.PATCH("/applications/:applicationID/accept", projectController.AcceptApplication, advisor)
	projectRouter.PATCH("/applications/:applicationID/reject", projectController.RejectApplication, advisor)
	projectRouter.DELETE("/applications/:applicationID", projectController.RemoveApplication, advisorOrStudent)
	projectRouter.DELETE("/files/:fileID", projectController.RemoveFile, advisorOrStudent)

	professorRouter := sessionRouter.Group("/professors")
	professorRouter.GET("", professorController.List, adminOrSecretary)
	professorRouter.GET("/:professorID", professorController.Read, adminOrSecretary)
	professorRouter.PATCH("/:professorID", professorController.Update, adminOrSecretary)
	professorRouter.DELETE("/:professorID", professorController.Delete, admin)

	studentRouter := sessionRouter.Group("/students")
	studentRouter.GET("", studentController.List, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary, accesscontrol.RoleProfessorTcc))
	studentRouter.GET("/:studentID", studentController.Read, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleSecretary, accesscontrol.RoleProfessorTcc, accesscontrol.RoleProfessorAdvisor))

	examRouter := sessionRouter.Group("/exams")
	examRouter.GET("", examController.ListExams, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessorTcc, accesscontrol.RoleStudent))
	examRouter.GET("/:examID", examController.ReadExam, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessor, accesscontrol.RoleStudent))
	examRouter.PATCH("/:examID", examController.UpdateExam, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessorTcc))
	examRouter.DELETE("/:examID", examController.DeleteExam, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessorTcc))
	examRouter.POST("/:examID/posts", examController.CreatePost, core.AccessControlMiddleware(accesscontrol.RoleStudent))

	postRouter := sessionRouter.Group("/posts")
	postRouter.GET("/:postID", examController.ReadPost, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleProfessor, accesscontrol.RoleStudent))
	postRouter.PATCH("/:postID", examController.UpdatePost, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleStudent))
	postRouter.DELETE("/:postID", examController.DeletePost, core.AccessControlMiddleware(accesscontrol.RoleAdmin, accesscontrol.RoleStudent))

	slog.Info("starting server", "port", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "err", err)
		panic(err)
	}
}
