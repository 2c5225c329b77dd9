package models

import "github.com/jroosing/hydrasrv/internal/config"

// APIConfigResponse is a redacted version of APIConfig (no api_key exposed).
type APIConfigResponse struct {
	Enabled     bool   `json:"enabled"`
	Host        string `json:"host"`
	Port        int    `json:"port"`
	AuthEnabled bool   `json:"auth_enabled"`
}

// ConfigResponse is the API response for GET /config.
type ConfigResponse struct {
	Resolver config.ResolverConfig `json:"resolver"`
	Logging  config.LoggingConfig  `json:"logging"`
	API      APIConfigResponse     `json:"api"`
}
