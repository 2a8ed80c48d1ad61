package config

import (
	"strconv"
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "listen":
			cfg.Listen = val
		case "prompt":
			// prompts usually end in a space; keep it
			cfg.Prompt = strings.TrimLeft(parts[1], " \t")
		case "cwd":
			cfg.Cwd = val
		case "cv_path":
			cfg.CVPath = val
		case "cv_name":
			cfg.CVName = val
		case "download_dir":
			cfg.DownloadDir = val
		case "allowed_origins":
			cfg.AllowedOrigins = splitList(val)
		case "matrix_duration":
			cfg.MatrixDuration = val
		case "frame_interval":
			cfg.FrameInterval = val
		case "log.path":
			cfg.Log.Path = val
		case "log.level":
			cfg.Log.Level = val
		case "log.max_size_mb":
			cfg.Log.MaxSizeMB = atoiOr(val, cfg.Log.MaxSizeMB)
		case "log.max_backups":
			cfg.Log.MaxBackups = atoiOr(val, cfg.Log.MaxBackups)
		case "log.max_age_days":
			cfg.Log.MaxAgeDays = atoiOr(val, cfg.Log.MaxAgeDays)
		}
	}
	return cfg
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func atoiOr(val string, fallback int) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
