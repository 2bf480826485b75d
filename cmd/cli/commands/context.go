package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/iglesia-cuna/cuna-roster/internal/config"
	"github.com/iglesia-cuna/cuna-roster/pkg/core/model"
	"github.com/iglesia-cuna/cuna-roster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands.
// Caller and Role come from the authentication collaborator; the CLI takes
// them as flags since the core trusts a pre-validated identity.
type AppContext struct {
	Cfg      *config.Config
	Database db.Database
	Logger   *zap.Logger
	Ctx      context.Context
	Caller   string
	Role     model.Role
}
