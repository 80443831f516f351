package testutil

import (
	"social-insights-backend/config"
)

// ReadConfig reads config file for test.
func ReadConfig() {
	config.ReadConfig(config.ReadConfigOption{
		AppEnv: config.Test,
	})
}
