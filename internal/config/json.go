package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		DemoOpenID    string   `json:"demo_open_id"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Assistant struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Model   string   `json:"model"`
		Timeout Duration `json:"timeout"`
	} `json:"assistant,omitempty"`

	Voice struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Timeout Duration `json:"timeout"`
	} `json:"voice,omitempty"`

	Blob struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Timeout Duration `json:"timeout"`
	} `json:"blob,omitempty"`
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
		App: App{
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			DemoOpenID:    jsonCfg.App.DemoOpenID,
			Version:       jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Assistant: Assistant{
			BaseURL: jsonCfg.Assistant.BaseURL,
			APIKey:  jsonCfg.Assistant.APIKey,
			Model:   jsonCfg.Assistant.Model,
			Timeout: time.Duration(jsonCfg.Assistant.Timeout),
		},
		Voice: Voice{
			BaseURL: jsonCfg.Voice.BaseURL,
			APIKey:  jsonCfg.Voice.APIKey,
			Timeout: time.Duration(jsonCfg.Voice.Timeout),
		},
		Blob: Blob{
			BaseURL: jsonCfg.Blob.BaseURL,
			APIKey:  jsonCfg.Blob.APIKey,
			Timeout: time.Duration(jsonCfg.Blob.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
