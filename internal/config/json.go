package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/SahilSawant11/mizu/internal/flagx"
	"github.com/SahilSawant11/mizu/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the presign expiry either as a string
// like "15m" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config.
type JsonConfig struct {
	Store           *string        `json:"store"`
	SQLitePath      *string        `json:"sqlite_path"`
	DatabaseDSN     *string        `json:"database_dsn"`
	SecretKey       *string        `json:"secret_key"`
	S3RootUser      *string        `json:"s3_root_user"`
	S3RootPassword  *string        `json:"s3_root_password"`
	S3Bucket        *string        `json:"s3_bucket"`
	S3Region        *string        `json:"s3_region"`
	S3BaseEndpoint  *string        `json:"s3_base_endpoint"`
	S3PresignExpiry timex.Duration `json:"s3_presign_expiry"`
}

// parseJson overlays cfg with values from a JSON file. The file path comes
// from the -c/-config flags (flagx.JsonConfigFlags); when absent, nothing is
// loaded. Only fields present in the file override defaults.
//
// Intended usage is defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) error {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config %s: %w", jsonConfigFile, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", jsonConfigFile, err)
	}

	if jc.Store != nil {
		cfg.Store = *jc.Store
	}
	if jc.SQLitePath != nil {
		cfg.SQLitePath = *jc.SQLitePath
	}
	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.S3RootUser != nil {
		cfg.S3RootUser = *jc.S3RootUser
	}
	if jc.S3RootPassword != nil {
		cfg.S3RootPassword = *jc.S3RootPassword
	}
	if jc.S3Bucket != nil {
		cfg.S3Bucket = *jc.S3Bucket
	}
	if jc.S3Region != nil {
		cfg.S3Region = *jc.S3Region
	}
	if jc.S3BaseEndpoint != nil {
		cfg.S3BaseEndpoint = *jc.S3BaseEndpoint
	}
	if jc.S3PresignExpiry.Duration != 0 {
		cfg.S3PresignExpiry = time.Duration(jc.S3PresignExpiry.Duration)
	}

	return nil
}
