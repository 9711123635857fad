package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/anmol0706/GPC-Itarsi-sub002/internal/flagx"
	"github.com/anmol0706/GPC-Itarsi-sub002/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "24h"
// or as integer nanoseconds.
type JsonConfig struct {
	Env                   string         `json:"env"`
	HTTPAddr              string         `json:"http_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	DBMaxOpenConns        int            `json:"db_max_open_conns"`
	DBMaxIdleConns        int            `json:"db_max_idle_conns"`
	DBConnMaxLifetime     timex.Duration `json:"db_conn_max_lifetime"`
	SecretKey             string         `json:"secret_key"`
	JWTIssuer             string         `json:"jwt_issuer"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	RedisAddr             string         `json:"redis_addr"`
	RateLimitPerMin       int            `json:"rate_limit_per_min"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson overlays cfg with values loaded from the JSON file referenced by
// the -c/-config flags. Absent file path means no JSON layer. Zero values in
// the file leave the current setting untouched.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Env != "" {
		cfg.Env = jc.Env
	}
	if jc.HTTPAddr != "" {
		cfg.HTTPAddr = jc.HTTPAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DBMaxOpenConns != 0 {
		cfg.DBMaxOpenConns = jc.DBMaxOpenConns
	}
	if jc.DBMaxIdleConns != 0 {
		cfg.DBMaxIdleConns = jc.DBMaxIdleConns
	}
	if jc.DBConnMaxLifetime.Duration != 0 {
		cfg.DBConnMaxLifetime = time.Duration(jc.DBConnMaxLifetime.Duration)
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.JWTIssuer != "" {
		cfg.JWTIssuer = jc.JWTIssuer
	}
	if jc.TokenValidityDuration.Duration != 0 {
		cfg.TokenValidityDuration = time.Duration(jc.TokenValidityDuration.Duration)
	}
	if jc.RedisAddr != "" {
		cfg.RedisAddr = jc.RedisAddr
	}
	if jc.RateLimitPerMin != 0 {
		cfg.RateLimitPerMin = jc.RateLimitPerMin
	}
	if jc.S3RootUser != "" {
		cfg.S3RootUser = jc.S3RootUser
	}
	if jc.S3RootPassword != "" {
		cfg.S3RootPassword = jc.S3RootPassword
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
}
