package migrate

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"norms-hub/internal/area"
	"norms-hub/internal/norm"
	"norms-hub/internal/user"
)

// Migrate creates the remote store schema. Intended for self-hosted and
// development databases; hosted deployments normally create the tables with
// the provided SQL script instead.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&user.User{},
		&norm.Norm{},
		&area.Area{},
	)
	if err != nil {
		return err
	}

	log.Info().Msg("Remote store schema migrated")
	return nil
}
