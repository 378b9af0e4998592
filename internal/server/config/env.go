package config

import (
	"os"
	"strconv"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv overlays config with HYGIENE_* environment variables. When -env
// names a dotenv file it is loaded first; variables already set in the
// process environment win over the file. A missing file panics.
func parseEnv(config *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	setString(&config.EndpointAddrHTTP, os.Getenv("HYGIENE_ADDR"))
	setString(&config.DatabaseDSN, os.Getenv("HYGIENE_DATABASE_DSN"))
	setString(&config.SecretKey, os.Getenv("HYGIENE_SECRET_KEY"))
	setString(&config.S3RootUser, os.Getenv("HYGIENE_S3_USER"))
	setString(&config.S3RootPassword, os.Getenv("HYGIENE_S3_PASSWORD"))
	setString(&config.S3Bucket, os.Getenv("HYGIENE_S3_BUCKET"))
	setString(&config.S3Region, os.Getenv("HYGIENE_S3_REGION"))
	setString(&config.S3BaseEndpoint, os.Getenv("HYGIENE_S3_ENDPOINT"))
	setString(&config.LogLevel, os.Getenv("HYGIENE_LOG_LEVEL"))

	if v := os.Getenv("HYGIENE_BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	setDuration(&config.AccessTokenValidityDuration, os.Getenv("HYGIENE_TOKEN_TTL"))
	setDuration(&config.PresignValidityDuration, os.Getenv("HYGIENE_PRESIGN_TTL"))
	setDuration(&config.ShutdownTimeout, os.Getenv("HYGIENE_SHUTDOWN_TIMEOUT"))
}

func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
