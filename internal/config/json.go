package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Gateway struct {
		Mode           string   `json:"mode"`
		Binary         string   `json:"binary"`
		Account        string   `json:"account"`
		ConnectHost    string   `json:"connect_host"`
		ConnectToken   string   `json:"connect_token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"gateway,omitempty"`

	Notes struct {
		Vault    string `json:"vault"`
		Filetype string `json:"filetype"`
	} `json:"notes,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Gateway: Gateway{
			Mode:           jsonCfg.Gateway.Mode,
			BinaryPath:     jsonCfg.Gateway.Binary,
			Account:        jsonCfg.Gateway.Account,
			ConnectHost:    jsonCfg.Gateway.ConnectHost,
			ConnectToken:   jsonCfg.Gateway.ConnectToken,
			RequestTimeout: time.Duration(jsonCfg.Gateway.RequestTimeout),
		},
		Notes: Notes{
			DefaultVault: jsonCfg.Notes.Vault,
			Filetype:     jsonCfg.Notes.Filetype,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
