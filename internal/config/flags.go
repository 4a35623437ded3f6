package config

import (
	"errors"
	"flag"
	"net/url"
	"time"
)

// ConnectAddress holds the base URL of a Connect server.
// It implements the flag.Value interface.
type ConnectAddress struct {
	URL string
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-mode gateway mode, "cli" or "connect"
//	-op-binary path to the op executable
//	-account account shorthand or ID for op invocations
//	-connect-host Connect server base URL
//	-connect-token Connect server bearer token
//	-request-timeout gateway request timeout (e.g., "30s", "1m")
//	-d item index sqlite path
//	-vault default vault ID or name
//	-filetype filetype for note documents
//	-refresh-interval item index refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var connectHost ConnectAddress
	var mode string
	var binaryPath string
	var account string
	var connectToken string
	var requestTimeout time.Duration
	var indexDSN string
	var defaultVault string
	var filetype string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&mode, "mode", "", "Gateway mode: cli or connect")
	flag.StringVar(&binaryPath, "op-binary", "", "Path to the op executable")
	flag.StringVar(&account, "account", "", "Account shorthand or ID")
	flag.Var(&connectHost, "connect-host", "Connect server base URL")
	flag.StringVar(&connectToken, "connect-token", "", "Connect server bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&indexDSN, "d", "", "Item index sqlite path")
	flag.StringVar(&defaultVault, "vault", "", "Default vault ID or name")
	flag.StringVar(&filetype, "filetype", "", "Filetype for note documents")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Item index refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Gateway: Gateway{
			Mode:           mode,
			BinaryPath:     binaryPath,
			Account:        account,
			ConnectHost:    connectHost.String(),
			ConnectToken:   connectToken,
			RequestTimeout: requestTimeout,
		},
		Notes: Notes{
			DefaultVault: defaultVault,
			Filetype:     filetype,
		},
		Storage: Storage{
			DB: DB{
				DSN: indexDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the stored base URL, or the empty string when unset.
func (a *ConnectAddress) String() string {
	return a.URL
}

// Set parses the input string as a base URL and populates the ConnectAddress.
// It requires an http or https scheme and a non-empty host, and returns an
// error if the format or values are invalid.
func (a *ConnectAddress) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need address in a form `http[s]://host[:port]`")
	}

	if u.Host == "" {
		return errors.New("connect address is missing a host")
	}

	a.URL = s
	return nil
}
