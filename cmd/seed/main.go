// Comando de conveniencia para desarrollo: crea una cuenta y un negocio de
// demostración con el catálogo semilla. Idempotente por email.
//
//	go run ./cmd/seed -email demo@local.test -password demo1234 -type f&b
package main

import (
	"context"
	"flag"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jortega/comercio-api/internal/application/usecase"
	"github.com/jortega/comercio-api/internal/domain/entity"
	"github.com/jortega/comercio-api/internal/infrastructure/postgres"
	"github.com/jortega/comercio-api/pkg/config"
	"github.com/jortega/comercio-api/pkg/logger"
)

func main() {
	email := flag.String("email", "demo@local.test", "email de la cuenta demo")
	password := flag.String("password", "demo1234", "contraseña de la cuenta demo")
	businessName := flag.String("name", "Negocio Demo", "nombre del negocio")
	businessType := flag.String("type", entity.BusinessTypeRetail, "tipo de negocio: f&b, retail o service")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	logg := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		logg.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail(ctx, *email)
	if err != nil {
		logg.Fatal().Err(err).Msg("buscar cuenta demo")
	}
	if existing != nil {
		logg.Info().Str("email", *email).Msg("la cuenta demo ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		logg.Fatal().Err(err).Msg("hashear contraseña")
	}

	runner := postgres.NewTxRunner(pool)
	err = runner.WithinTx(ctx, func(ctx context.Context, repos usecase.TxRepos) error {
		user := &entity.User{
			Email:        *email,
			PasswordHash: string(hash),
			FullName:     "Cuenta Demo",
		}
		if err := repos.Users.Create(ctx, user); err != nil {
			return err
		}
		business := &entity.Business{
			OwnerUID:       user.ID,
			BusinessName:   *businessName,
			BusinessType:   *businessType,
			Currency:       "USD",
			Timezone:       "UTC",
			EnabledModules: entity.DefaultModules(*businessType),
		}
		if err := repos.Businesses.Create(ctx, business); err != nil {
			return err
		}
		user.Businesses = []string{business.ID}
		user.DefaultBusinessID = business.ID
		if err := repos.Users.Update(ctx, user); err != nil {
			return err
		}
		if err := usecase.SeedTenant(ctx, repos, business, user); err != nil {
			return err
		}
		log.Info().
			Str("email", *email).
			Str("business_id", business.ID).
			Str("business_type", business.BusinessType).
			Msg("tenant demo creado")
		return nil
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("crear tenant demo")
	}
}
