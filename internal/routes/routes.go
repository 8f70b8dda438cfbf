package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-api/internal/audit"
	"github.com/BruksfildServices01/clinic-api/internal/config"
	"github.com/BruksfildServices01/clinic-api/internal/domain/access"
	appointmentDomain "github.com/BruksfildServices01/clinic-api/internal/domain/appointment"
	clientDomain "github.com/BruksfildServices01/clinic-api/internal/domain/client"
	contactDomain "github.com/BruksfildServices01/clinic-api/internal/domain/contact"
	dashboardDomain "github.com/BruksfildServices01/clinic-api/internal/domain/dashboard"
	doctorDomain "github.com/BruksfildServices01/clinic-api/internal/domain/doctor"
	historyDomain "github.com/BruksfildServices01/clinic-api/internal/domain/history"
	personDomain "github.com/BruksfildServices01/clinic-api/internal/domain/person"
	specialtyDomain "github.com/BruksfildServices01/clinic-api/internal/domain/specialty"
	userDomain "github.com/BruksfildServices01/clinic-api/internal/domain/user"
	"github.com/BruksfildServices01/clinic-api/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-api/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-api/internal/infra/storage"
	"github.com/BruksfildServices01/clinic-api/internal/metrics"
	"github.com/BruksfildServices01/clinic-api/internal/middleware"
	"github.com/BruksfildServices01/clinic-api/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-api/internal/usecase/appointment"
	ucDashboard "github.com/BruksfildServices01/clinic-api/internal/usecase/dashboard"
	ucPerson "github.com/BruksfildServices01/clinic-api/internal/usecase/person"
	"github.com/BruksfildServices01/clinic-api/internal/validators"
)

type Repositories struct {
	Persons      personDomain.Repository
	Users        userDomain.Repository
	Specialties  specialtyDomain.Repository
	Doctors      doctorDomain.Repository
	Clients      clientDomain.Repository
	Contacts     contactDomain.Repository
	History      historyDomain.Repository
	Appointments appointmentDomain.Repository
	Dashboard    dashboardDomain.Reader
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Persons:      infraRepo.NewPersonGormRepository(db),
		Users:        infraRepo.NewUserGormRepository(db),
		Specialties:  infraRepo.NewSpecialtyGormRepository(db),
		Doctors:      infraRepo.NewDoctorGormRepository(db),
		Clients:      infraRepo.NewClientGormRepository(db),
		Contacts:     infraRepo.NewContactGormRepository(db),
		History:      infraRepo.NewHistoryGormRepository(db),
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Dashboard:    infraRepo.NewDashboardGormRepository(db),
	}
}

// Deps is everything the routes need. Counter, Store and Provisioner are
// optional: nil disables rate limiting, photo uploads and account
// provisioning respectively.
type Deps struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Collector
	Clock   *timezone.Clock

	Repos     Repositories
	Resolver  middleware.Resolver
	Audit     audit.Recorder
	AuditLogs handlers.AuditLogReader
	Health    handlers.Pinger

	Counter      middleware.Counter
	Store        storage.ObjectStore
	Provisioner  handlers.Provisioner
	EmailDomains validators.DomainChecker
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES
	// ======================================================
	repos := d.Repos
	var observer ucAppointment.Observer
	if d.Metrics != nil {
		observer = d.Metrics
	}

	appointmentHandler := handlers.NewAppointmentHandler(handlers.AppointmentUseCases{
		CreatePublic:   ucAppointment.NewCreatePublicAppointment(repos.Appointments, d.Audit, observer),
		CreateInternal: ucAppointment.NewCreateInternalAppointment(repos.Appointments, d.Audit, observer),
		Confirm:        ucAppointment.NewConfirmAppointment(repos.Appointments, repos.Doctors, d.Clock, d.Audit, observer),
		Attend:         ucAppointment.NewAttendAppointment(repos.Appointments, d.Audit, observer),
		Cancel:         ucAppointment.NewCancelAppointment(repos.Appointments, d.Audit, observer),
		Reschedule:     ucAppointment.NewRescheduleAppointment(repos.Appointments, d.Audit),
		Delete:         ucAppointment.NewDeleteAppointment(repos.Appointments, d.Audit),
		Query:          ucAppointment.NewListAppointments(repos.Appointments),
	})

	personHandler := handlers.NewPersonHandler(
		repos.Persons,
		ucPerson.NewRegisterPerson(repos.Persons, d.Audit),
		ucPerson.NewUploadPhoto(repos.Persons, d.Store, d.Config.PhotoMaxSize, d.Config.PhotoMaxPixels, d.Audit),
		d.Audit,
		d.Config.PhotoMaxBytes,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	userHandler := handlers.NewUserHandler(repos.Users, d.Audit)
	adminAuthHandler := handlers.NewAdminAuthHandler(d.Provisioner, repos.Users, d.EmailDomains, d.Audit)
	doctorHandler := handlers.NewDoctorHandler(repos.Doctors, d.Audit)
	specialtyHandler := handlers.NewSpecialtyHandler(repos.Specialties, d.Audit)
	clientHandler := handlers.NewClientHandler(repos.Clients, d.Audit)
	contactHandler := handlers.NewContactHandler(repos.Contacts, d.Audit)
	historyHandler := handlers.NewHistoryHandler(repos.History, d.Audit)
	dashboardHandler := handlers.NewDashboardHandler(ucDashboard.New(repos.Dashboard, d.Clock))
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	auth := middleware.Authenticate(d.Resolver)
	staff := middleware.RequireRoles(access.Staff)
	admin := middleware.RequireRoles(access.AdminOnly)

	intake := func(c *gin.Context) { c.Next() }
	if d.Counter != nil {
		intake = middleware.RateLimit(d.Counter, d.Config.RateLimitMax, d.Config.RateLimitWindow, d.Metrics, d.Logger)
	}

	// ======================================================
	// INFRA ROUTES
	// ======================================================
	if d.Health != nil {
		r.GET("/health", handlers.NewHealthHandler(d.Health).Health)
	}
	if d.Metrics != nil {
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}
	r.GET("/favicon.ico", handlers.Favicon)
	r.GET("/favicon.png", handlers.Favicon)

	api := r.Group("/api")

	// ------------------------------
	// CITAS
	// ------------------------------
	citas := api.Group("/citas")
	{
		citas.POST("", intake, appointmentHandler.CreatePublic)

		citas.POST("/admin", auth, staff, appointmentHandler.CreateInternal)
		citas.GET("", auth, staff, appointmentHandler.List)
		citas.GET("/buscar", auth, staff, appointmentHandler.Search)
		citas.GET("/:id", auth, staff, appointmentHandler.Get)
		citas.PUT("/:id", auth, staff, appointmentHandler.Update)
		citas.PUT("/:id/confirmar", auth, staff, appointmentHandler.Confirm)
		citas.PUT("/:id/atender", auth, staff, appointmentHandler.Attend)
		citas.PUT("/:id/cancelar", auth, staff, appointmentHandler.Cancel)
		citas.DELETE("/:id", auth, admin, appointmentHandler.Delete)
	}

	// ------------------------------
	// PERSONAS
	// ------------------------------
	personas := api.Group("/personas", auth, admin)
	{
		personas.POST("", personHandler.Create)
		personas.GET("", personHandler.List)
		personas.GET("/:id", personHandler.Get)
		personas.PUT("/:id", personHandler.Update)
		personas.DELETE("/:id", personHandler.Delete)
		personas.PUT("/:id/foto", personHandler.SetPhotoURL)
		personas.POST("/:id/foto", personHandler.UploadPhoto)
	}

	// ------------------------------
	// USUARIOS
	// ------------------------------
	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("/supabase/:id", userHandler.RoleBySubject)
		usuarios.GET("/me", auth, staff, userHandler.Me)

		usuarios.POST("", auth, admin, userHandler.Create)
		usuarios.GET("", auth, admin, userHandler.List)
		usuarios.GET("/:id", auth, admin, userHandler.Get)
		usuarios.PUT("/:id", auth, admin, userHandler.Update)
		usuarios.PUT("/:id/rol", auth, admin, userHandler.ChangeRole)
		usuarios.DELETE("/:id", auth, admin, userHandler.Delete)
	}

	api.POST("/admin-auth/crear-auth", auth, admin, adminAuthHandler.CreateAuth)

	// ------------------------------
	// MEDICOS / ESPECIALIDADES
	// ------------------------------
	medicos := api.Group("/medicos")
	{
		medicos.GET("", doctorHandler.ListPublic)
		medicos.GET("/:id", auth, staff, doctorHandler.Get)
		medicos.POST("", auth, admin, doctorHandler.Create)
		medicos.PUT("/:id", auth, admin, doctorHandler.Update)
		medicos.DELETE("/:id", auth, admin, doctorHandler.Delete)
	}

	especialidades := api.Group("/especialidades")
	{
		especialidades.GET("", specialtyHandler.List)
		especialidades.GET("/:id", specialtyHandler.Get)
		especialidades.POST("", auth, admin, specialtyHandler.Create)
		especialidades.PUT("/:id", auth, admin, specialtyHandler.Update)
		especialidades.DELETE("/:id", auth, admin, specialtyHandler.Delete)
	}

	// ------------------------------
	// CLIENTES / CONTACTO
	// ------------------------------
	clientes := api.Group("/clientes")
	{
		clientes.POST("", intake, clientHandler.Create)
		clientes.GET("", auth, staff, clientHandler.List)
		clientes.GET("/:id", auth, staff, clientHandler.Get)
		clientes.PUT("/:id", auth, staff, clientHandler.Update)
		clientes.DELETE("/:id", auth, admin, clientHandler.Delete)
	}

	contacto := api.Group("/contacto")
	{
		contacto.POST("", intake, contactHandler.Create)
		contacto.GET("", auth, staff, contactHandler.List)
		contacto.GET("/:id", auth, staff, contactHandler.Get)
		contacto.PUT("/:id", auth, staff, contactHandler.Update)
		contacto.DELETE("/:id", auth, admin, contactHandler.Delete)
	}

	// ------------------------------
	// HISTORIAL
	// ------------------------------
	historial := api.Group("/historial", auth)
	{
		historial.POST("", staff, historyHandler.Create)
		historial.GET("", staff, historyHandler.List)
		historial.GET("/cita/:cita_id", staff, historyHandler.ByAppointment)
		historial.GET("/cliente/:cliente_id", staff, historyHandler.ByClient)
		historial.GET("/:id", staff, historyHandler.Get)
		historial.PUT("/:id", historyHandler.Update)
		historial.DELETE("/:id", historyHandler.Delete)
	}

	// ------------------------------
	// DASHBOARD / AUDITORIA
	// ------------------------------
	dashboard := api.Group("/dashboard", auth, staff)
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/citas-por-estado", dashboardHandler.ByStatus)
		dashboard.GET("/citas-ultimos-7-dias", dashboardHandler.LastSevenDays)
		dashboard.GET("/proximas-citas", dashboardHandler.Upcoming)
	}

	api.GET("/auditoria", auth, admin, auditLogsHandler.List)
}
