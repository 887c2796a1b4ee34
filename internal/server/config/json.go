package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pairspace/loveos/internal/flagx"
	"github.com/pairspace/loveos/internal/timex"
)

// JsonSpaceSeed mirrors SpaceSeed for JSON unmarshalling.
type JsonSpaceSeed struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Passcode    string `json:"passcode"`
}

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files; its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddr          string           `json:"endpoint_addr"`
	DatabaseDSN           string           `json:"database_dsn"`
	SecretKey             string           `json:"secret_key"`
	TokenValidityDuration timex.Duration   `json:"token_validity_duration"`
	Spaces                [2]JsonSpaceSeed `json:"spaces"`
	AnniversaryDate       string           `json:"anniversary_date"`
	RelationshipStart     string           `json:"relationship_start"`
	S3RootUser            string           `json:"s3_root_user"`
	S3RootPassword        string           `json:"s3_root_password"`
	S3Bucket              string           `json:"s3_bucket"`
	S3Region              string           `json:"s3_region"`
	S3BaseEndpoint        string           `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	for i, s := range c.Spaces {
		config.Spaces[i] = SpaceSeed{Name: s.Name, DisplayName: s.DisplayName, Passcode: s.Passcode}
	}
	config.AnniversaryDate = c.AnniversaryDate
	config.RelationshipStart = c.RelationshipStart
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
