package env

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type EnvironmentVariables struct {
	PaymentAmount string
	PaymentMethod string
	OutputFormat  string
	LogLevel      string
	Environment   string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func Load(lookup LookupFunc) *EnvironmentVariables {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvironmentVariables{
		PaymentAmount: getOptionalEnv(lookup, "PAYMENT_AMOUNT", ""),
		PaymentMethod: getOptionalEnv(lookup, "PAYMENT_METHOD", ""),
		OutputFormat:  getOptionalEnv(lookup, "PAYMENT_OUTPUT", "text"),
		LogLevel:      getOptionalEnv(lookup, "LOG_LEVEL", "warn"),
		Environment:   getOptionalEnv(lookup, "ENVIRONMENT", "development"),
	}
}

func getOptionalEnv(lookup LookupFunc, key, defaultValue string) string {
	value, ok := lookup(key)
	if !ok || value == "" {
		return defaultValue
	}
	return value
}

func (e *EnvironmentVariables) IsProduction() bool {
	return e.Environment == "production"
}

func (e *EnvironmentVariables) IsDevelopment() bool {
	return !e.IsProduction()
}

// MapLookup adapts a map to a LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
