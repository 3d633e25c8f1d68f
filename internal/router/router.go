package router

import (
	"github.com/redis/go-redis/v9"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/middleware"
	"workforce/backend/internal/pkg/cache"
	"workforce/backend/internal/pkg/repository/postgresql"

	"workforce/backend/internal/repository/postgres/attendance"
	"workforce/backend/internal/repository/postgres/shift"
	"workforce/backend/internal/repository/postgres/skill"
	"workforce/backend/internal/repository/postgres/skills"
	"workforce/backend/internal/repository/postgres/stage"
	"workforce/backend/internal/repository/postgres/swap"
	"workforce/backend/internal/repository/postgres/user"

	attendance_controller "workforce/backend/internal/controller/http/v1/attendance"
	auth_controller "workforce/backend/internal/controller/http/v1/auth"
	file_controller "workforce/backend/internal/controller/http/v1/file"
	shift_controller "workforce/backend/internal/controller/http/v1/shift"
	skill_controller "workforce/backend/internal/controller/http/v1/skill"
	skills_controller "workforce/backend/internal/controller/http/v1/skills"
	stage_controller "workforce/backend/internal/controller/http/v1/stage"
	swap_controller "workforce/backend/internal/controller/http/v1/swap"
	user_controller "workforce/backend/internal/controller/http/v1/user"
)

type Router struct {
	*web.App
	postgresDB   *postgresql.Database
	redisDB      *redis.Client
	port         string
	templatePath string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	templatePath string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		templatePath,
	}
}

func (r Router) Init() error {
	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	stagePostgres := stage.NewRepository(r.postgresDB)
	skillPostgres := skill.NewRepository(r.postgresDB)
	skillsPostgres := skills.NewRepository(r.postgresDB)
	shiftPostgres := shift.NewRepository(r.postgresDB)
	swapPostgres := swap.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)

	optionCache := cache.New(r.redisDB)

	// controller
	authController := auth_controller.NewController(userPostgres)
	stageController := stage_controller.NewController(stagePostgres)
	skillController := skill_controller.NewController(skillPostgres)
	userController := user_controller.NewController(userPostgres)
	skillsController := skills_controller.NewController(skillsPostgres)
	shiftController := shift_controller.NewController(shiftPostgres, optionCache)
	swapController := swap_controller.NewController(swapPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	fileController := file_controller.NewController(r.templatePath)

	// #auth
	r.Post("/api/login", authController.SignIn)

	// #stage master
	r.Get("/api/stage-master", stageController.GetList)
	r.Post("/api/stage-master", stageController.Create)
	r.Put("/api/stage-master/:id", stageController.UpdateAll)
	r.Get("/api/stagemaster", stageController.GetLookup)

	// #skill master
	r.Get("/api/skill-master", skillController.GetList)
	r.Get("/api/skill-master/:id", skillController.GetDetailById)
	r.Post("/api/skill-master", skillController.Create)
	r.Put("/api/skill-master/:id", skillController.UpdateAll)
	r.Get("/api/skillmaster", skillController.GetList)

	// #employees
	r.Get("/api/departments", userController.GetDepartmentList)
	r.Post("/api/employees", userController.GetEmployees)

	// #user skills
	r.Post("/api/save-skills", skillsController.Save)
	r.Get("/api/user-skills", skillsController.GetList)
	r.Delete("/api/user-skills/:userId", skillsController.DeleteByUserID)

	// #shift roster
	r.Post("/api/saveUserShifts", shiftController.Save)
	r.Get("/api/getUserShifts", shiftController.GetList)
	r.Get("/api/shifts", shiftController.GetShiftOptions)
	r.Get("/api/lines", shiftController.GetLineOptions)
	r.Get("/download-template", fileController.DownloadTemplate)

	// #attendance
	r.Get("/api/attendance", attendanceController.GetSummary)
	r.Get("/api/attendance/allot", attendanceController.GetAllotted)
	r.Get("/api/attendance/present", attendanceController.GetPresent)
	r.Get("/api/attendance/absent", attendanceController.GetAbsent)
	r.Get("/api/attendance/showAll", attendanceController.GetShowAll)

	// #swap
	r.Get("/api/getEmployees", swapController.GetCandidates)
	r.Post("/api/saveUserSwap", swapController.Save)

	return r.Run(r.port)
}
