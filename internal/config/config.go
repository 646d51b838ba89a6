package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataDir     string
	FrontendDir string
	LogLevel    string
	Seed        bool
	Debug       bool

	// Hugging Face router configuration
	HFToken     string
	HFModel     string
	HFRouterURL string

	// Tracing configuration (noop when empty)
	OTLPTracesURL string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		FrontendDir: getEnv("FRONTEND_DIR", "../frontend"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Seed:        getEnv("SEED", "false") == "true",
		Debug:       getEnv("DEBUG", "false") == "true",

		// Either variable name is accepted; the first one set wins.
		HFToken:     getEnv("HF_API_TOKEN", getEnv("HF_TOKEN", "")),
		HFModel:     getEnv("HF_MODEL", "deepseek-ai/DeepSeek-V3.2-Exp:novita"),
		HFRouterURL: getEnv("HF_ROUTER_URL", "https://router.huggingface.co/v1"),

		OTLPTracesURL: getEnv("OTLP_TRACES_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
