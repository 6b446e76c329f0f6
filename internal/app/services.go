package app

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/carelinkhq/carelink_backend/config"
	"github.com/carelinkhq/carelink_backend/internal/repo"
	"github.com/carelinkhq/carelink_backend/internal/service/assignment"
	"github.com/carelinkhq/carelink_backend/internal/service/auth"
	"github.com/carelinkhq/carelink_backend/internal/service/doctor"
	"github.com/carelinkhq/carelink_backend/internal/service/patient"
	"github.com/carelinkhq/carelink_backend/pkg/email"
	pasetotoken "github.com/carelinkhq/carelink_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideDoctorService,
		ProvideAssignmentService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	emailClient *email.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, emailClient, paseto, cfg)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideDoctorService(db *repo.Client) doctor.Service {
	return doctor.New(db)
}

func ProvideAssignmentService(db *repo.Client) assignment.Service {
	return assignment.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
