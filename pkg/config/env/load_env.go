package env

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const PathVar = "ENV_PATH"

// LoadDotEnv loads variables from a .env file without overriding ones already set.
// ENV_PATH, when set, replaces defaultPath. A missing default file is not an error,
// a missing ENV_PATH file is.
func LoadDotEnv(defaultPath string) error {
	envPath, explicit := os.LookupEnv(PathVar)
	if !explicit || envPath == "" {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPath", defaultPath)
		envPath, explicit = defaultPath, false
	}

	err := godotenv.Load(envPath)
	if err == nil {
		slog.Debug("Loaded environment file", "path", envPath)
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Skipping .env ...", "path", envPath)
		return nil
	}

	slog.Error("Failed to load environment file", "path", envPath, "error", err)
	return err
}
