package conf

const (
	APP_NAME = "modelscrapor"
	APP_DESC = "OpenRouter AI model rankings & pricing tracker"
)

// Set at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	Author    = "ktalanov"
	Repo      = "https://github.com/ktalanov/ModelScrapOR"
)
