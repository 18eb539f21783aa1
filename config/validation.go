package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the current environment
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()
	var problems []ValidationError

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			problems = append(problems, ValidationError{"DB_PATH", "is required for the sqlite driver"})
		}
	case DriverPostgres:
		for field, value := range map[string]string{
			"DB_HOST": cfg.DBHost,
			"DB_PORT": cfg.DBPort,
			"DB_USER": cfg.DBUser,
			"DB_NAME": cfg.DBName,
		} {
			if value == "" {
				problems = append(problems, ValidationError{field, "is required for the postgres driver"})
			}
		}
	default:
		problems = append(problems, ValidationError{"DB_DRIVER", fmt.Sprintf("unsupported driver %q", cfg.DBDriver)})
	}

	if cfg.JWTSecret == "" {
		problems = append(problems, ValidationError{"JWT_SECRET", "is required"})
	}

	if env == Production || env == CI {
		if cfg.JWTSecret == devJWTSecret {
			problems = append(problems, ValidationError{"JWT_SECRET", "must not use the development default"})
		}
		if cfg.AdminPassword == "" {
			problems = append(problems, ValidationError{"ADMIN_PASSWORD", "is required"})
		}
	}

	if cfg.S3BucketName != "" && cfg.AWSRegion == "" {
		problems = append(problems, ValidationError{"AWS_REGION", "is required when S3_BUCKET_NAME is set"})
	}

	if len(problems) > 0 {
		msgs := make([]string, len(problems))
		for i, p := range problems {
			msgs[i] = p.Error()
		}
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(msgs, "\n"))
	}

	return nil
}
