package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/carelinkhq/carelink_backend/config"
	"github.com/carelinkhq/carelink_backend/internal/api/http/handler"
	"github.com/carelinkhq/carelink_backend/internal/api/http/middleware"
	"github.com/carelinkhq/carelink_backend/internal/service/assignment"
	"github.com/carelinkhq/carelink_backend/internal/service/auth"
	"github.com/carelinkhq/carelink_backend/internal/service/doctor"
	"github.com/carelinkhq/carelink_backend/internal/service/patient"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	Redis         *redis.Client
	AuthSvc       auth.Service
	PatientSvc    patient.Service
	DoctorSvc     doctor.Service
	AssignmentSvc assignment.Service
	PasetoMgr     *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	assignmentH := handler.NewAssignmentHandler(r.p.AssignmentSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerPatientRoutes(api, patientH, authRequired)
	r.registerDoctorRoutes(api, doctorH, authRequired)
	r.registerAssignmentRoutes(api, assignmentH, authRequired)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
