package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Generator GeneratorConfig
	Txt2Img   Txt2ImgConfig
	Sampler   SamplerConfig
	Logger    LoggerConfig
}

type GeneratorConfig struct {
	Volume    string
	Total     int
	OutputDir string // empty means the volume's default directory
}

type Txt2ImgConfig struct {
	URL     string
	Timeout time.Duration
}

type SamplerConfig struct {
	Steps    int
	CFGScale float64
	Width    int
	Height   int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("GENERATOR_VOLUME", "Vol2")
	v.SetDefault("GENERATOR_TOTAL", 500)
	v.SetDefault("GENERATOR_OUTPUT_DIR", "")
	v.SetDefault("TXT2IMG_URL", "http://127.0.0.1:7860")
	v.SetDefault("TXT2IMG_TIMEOUT", "0s")
	v.SetDefault("SAMPLER_STEPS", 28)
	v.SetDefault("SAMPLER_CFG_SCALE", 7)
	v.SetDefault("SAMPLER_WIDTH", 768)
	v.SetDefault("SAMPLER_HEIGHT", 768)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("TXT2IMG_TIMEOUT"))
	if err != nil {
		timeout = 0
	}

	cfg := &Config{
		Generator: GeneratorConfig{
			Volume:    v.GetString("GENERATOR_VOLUME"),
			Total:     v.GetInt("GENERATOR_TOTAL"),
			OutputDir: v.GetString("GENERATOR_OUTPUT_DIR"),
		},
		Txt2Img: Txt2ImgConfig{
			URL:     v.GetString("TXT2IMG_URL"),
			Timeout: timeout,
		},
		Sampler: SamplerConfig{
			Steps:    v.GetInt("SAMPLER_STEPS"),
			CFGScale: v.GetFloat64("SAMPLER_CFG_SCALE"),
			Width:    v.GetInt("SAMPLER_WIDTH"),
			Height:   v.GetInt("SAMPLER_HEIGHT"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
