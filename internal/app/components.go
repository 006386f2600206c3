package app

import (
	"github.com/itzMRZ/usisportal/internal/core/ports"
)

// Components bundles the resolved application pieces handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
