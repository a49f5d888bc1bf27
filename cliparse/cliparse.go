package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             int
	BaseURL          string
	DefaultPageLimit int
	MaxPageLimit     int
	RatePerSecond    int
	RateBurst        int
	FrameMaxAge      time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("remixshare", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL used in action links")
	fs.IntVar(&cfg.DefaultPageLimit, "page-limit", 0, "Default feed page size")
	fs.IntVar(&cfg.MaxPageLimit, "max-page-limit", 0, "Upper bound on caller-supplied page size")
	fs.IntVar(&cfg.RatePerSecond, "rps", 0, "Per-caller request rate")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Per-caller request burst")
	fs.DurationVar(&cfg.FrameMaxAge, "frame-max-age", 0, "Maximum accepted frame message age")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port)
	}

	if cfg.DefaultPageLimit == 0 {
		cfg.DefaultPageLimit = envInt("DEFAULT_PAGE_LIMIT", 20)
	}
	if cfg.MaxPageLimit == 0 {
		cfg.MaxPageLimit = envInt("MAX_PAGE_LIMIT", 50)
	}
	if cfg.DefaultPageLimit > cfg.MaxPageLimit {
		return Config{}, errors.New("default page limit exceeds max page limit")
	}

	if cfg.RatePerSecond == 0 {
		cfg.RatePerSecond = envInt("RATE_PER_SECOND", 10)
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = envInt("RATE_BURST", 30)
	}

	if cfg.FrameMaxAge == 0 {
		if v := os.Getenv("FRAME_MAX_AGE"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return Config{}, errors.New("invalid FRAME_MAX_AGE env variable")
			}
			cfg.FrameMaxAge = d
		} else {
			cfg.FrameMaxAge = 5 * time.Minute
		}
	}

	return cfg, nil
}

func envInt(name string, fallback int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
