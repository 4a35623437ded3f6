package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the client view applies its own defaults
// and validation in [GetClientConfig].
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Gateway.Mode {
	case GatewayModeCLI:
		if cfg.Gateway.BinaryPath == "" {
			return ErrInvalidGatewayConfigs
		}
	case GatewayModeConnect:
		if cfg.Gateway.ConnectHost == "" || cfg.Gateway.ConnectToken == "" {
			return ErrInvalidGatewayConfigs
		}
	default:
		return ErrInvalidGatewayConfigs
	}

	if cfg.Gateway.RequestTimeout <= 0 {
		return ErrInvalidGatewayConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
