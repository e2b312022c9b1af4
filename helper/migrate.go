package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"reservas/config"
	"reservas/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationsSource = "file://migrations/postgres"

	actionUp     = "up"
	actionDown   = "down"
	actionStepUp = "step-up"
	actionDrop   = "drop"
)

func getDBName(config *config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// MigrationURL is the write DSN plus the migrate driver's table parameter.
func MigrationURL(config *config.Config) string {
	write := config.DB.Postgres.Write

	return postgres.DSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		getDBName(config, write.Name),
		write.SSLMode,
		"",
	) + "&x-migrations-table=" + config.DB.Postgres.MigrationTable
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(migrationsSource, MigrationURL(config))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	switch action {
	case actionUp:
		err = mig.Up()
	case actionDown:
		err = mig.Steps(-1)
	case actionStepUp:
		err = mig.Steps(1)
	case actionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, verErr := mig.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		log.Warn().Err(verErr).Msg("Could not read migration version")
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed successfully")

	return nil
}

func Up(config *config.Config) error {
	return Runner(config, actionUp)
}

func StepUp(config *config.Config) error {
	return Runner(config, actionStepUp)
}

func Down(config *config.Config) error {
	return Runner(config, actionDown)
}

func Drop(config *config.Config) error {
	return Runner(config, actionDrop)
}
