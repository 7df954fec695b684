package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds flag defaults taken from the environment.
type Env struct {
	DBPath     string // MAZE_DB
	ConfigPath string // MAZE_CONFIG
	SSHAddr    string // MAZE_SSH_ADDR
	HostKey    string // MAZE_HOST_KEY
	Difficulty string // MAZE_DIFFICULTY
	FPS        int    // MAZE_FPS
}

// LoadEnv reads an optional .env file from the working directory and then
// the MAZE_* variables. Variables already set in the process environment
// win over the file. The returned error only reports a malformed .env; a
// missing file is not an error.
func LoadEnv() (Env, error) {
	var loadErr error
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		loadErr = err
	}
	return EnvFromOS(), loadErr
}

// EnvFromOS reads the MAZE_* variables without touching .env files.
func EnvFromOS() Env {
	return Env{
		DBPath:     getEnvWithDefault("MAZE_DB", "~/.maze/maze.db"),
		ConfigPath: getEnvWithDefault("MAZE_CONFIG", ""),
		SSHAddr:    getEnvWithDefault("MAZE_SSH_ADDR", ":23234"),
		HostKey:    getEnvWithDefault("MAZE_HOST_KEY", ""),
		Difficulty: getEnvWithDefault("MAZE_DIFFICULTY", ""),
		FPS:        getEnvAsIntWithDefault("MAZE_FPS", 60),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers; unparsable values fall back to the default.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
