// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the optional JSON file.
type StructuredJSONConfig struct {
	App struct {
		Info    string `json:"info"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN                string   `json:"dsn"`
			Host               string   `json:"host"`
			Port               int      `json:"port"`
			Database           string   `json:"database"`
			User               string   `json:"user"`
			Password           string   `json:"password"`
			SSLMode            string   `json:"sslmode"`
			InsecureSkipVerify bool     `json:"insecure_skip_verify"`
			MaxOpenConns       int      `json:"max_open_conns"`
			MaxIdleConns       int      `json:"max_idle_conns"`
			ConnMaxLifetime    Duration `json:"conn_max_lifetime"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Auth0 struct {
		ClientID       string   `json:"client_id"`
		ClientSecret   string   `json:"client_secret"`
		TokenURL       string   `json:"token_url"`
		Audience       string   `json:"audience"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"auth0,omitempty"`

	ImageKit struct {
		URLEndpoint string   `json:"url_endpoint"`
		PublicKey   string   `json:"public_key"`
		PrivateKey  string   `json:"private_key"`
		Expire      Duration `json:"expire"`
	} `json:"imagekit,omitempty"`

	Port int `json:"port"`
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

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		App: App{
			Info:    jsonCfg.App.Info,
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:                db.DSN,
				Host:               db.Host,
				Port:               db.Port,
				Database:           db.Database,
				User:               db.User,
				Password:           db.Password,
				SSLMode:            db.SSLMode,
				InsecureSkipVerify: db.InsecureSkipVerify,
				MaxOpenConns:       db.MaxOpenConns,
				MaxIdleConns:       db.MaxIdleConns,
				ConnMaxLifetime:    time.Duration(db.ConnMaxLifetime),
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			GRPCAddress:     jsonCfg.Server.GRPCAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			ClientID:       jsonCfg.Auth0.ClientID,
			ClientSecret:   jsonCfg.Auth0.ClientSecret,
			TokenURL:       jsonCfg.Auth0.TokenURL,
			Audience:       jsonCfg.Auth0.Audience,
			RequestTimeout: time.Duration(jsonCfg.Auth0.RequestTimeout),
		},
		Media: Media{
			URLEndpoint: jsonCfg.ImageKit.URLEndpoint,
			PublicKey:   jsonCfg.ImageKit.PublicKey,
			PrivateKey:  jsonCfg.ImageKit.PrivateKey,
			Expire:      time.Duration(jsonCfg.ImageKit.Expire),
		},
		Port:         jsonCfg.Port,
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
