// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/itzMRZ/usisportal/internal/adapters/cachefile"
	_ "github.com/itzMRZ/usisportal/internal/adapters/config"
	_ "github.com/itzMRZ/usisportal/internal/adapters/logger"
	// Register app nodes.
	_ "github.com/itzMRZ/usisportal/internal/app"
)
