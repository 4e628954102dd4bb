// Package config - Environment-driven service configuration.
package config

import (
	"os"
	"runtime"
	"strconv"
	"time"
)

// Config holds the runtime settings for the detection service. Every field
// has a working default; environment variables override them.
type Config struct {
	Port       string
	ModelPath  string
	OrtLibPath string

	PoolSize       int
	AcquireTimeout time.Duration

	ConfidenceThreshold float32
	IoUThreshold        float32

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:       getEnv("PORT", "8000"),
		ModelPath:  getEnv("MODEL_PATH", "yolo11x.onnx"),
		OrtLibPath: getEnv("ORT_LIB_PATH", ""),

		PoolSize:       getEnvInt("POOL_SIZE", defaultPoolSize()),
		AcquireTimeout: getEnvDuration("ACQUIRE_TIMEOUT", 5*time.Second),

		ConfidenceThreshold: getEnvFloat("CONF_THRESHOLD", 0.5),
		IoUThreshold:        getEnvFloat("IOU_THRESHOLD", 0.7),

		ReadTimeout:  getEnvDuration("READ_TIMEOUT", 60*time.Second),
		WriteTimeout: getEnvDuration("WRITE_TIMEOUT", 60*time.Second),
	}
}

// defaultPoolSize sizes the session pool to the machine without letting a
// large core count balloon memory: each session carries its own input and
// output tensors.
func defaultPoolSize() int {
	size := runtime.NumCPU() / 2
	if size < 1 {
		size = 1
	}
	if size > 4 {
		size = 4
	}
	return size
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float32) float32 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 32); err == nil {
			return float32(f)
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
