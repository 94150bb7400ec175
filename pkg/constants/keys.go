package constants

type ContextKey string

const (
	AppKey       ContextKey = "app"
	LoggerKey    ContextKey = "logger"
	PageContext  ContextKey = "pageContext"
	LocalizerKey ContextKey = "localizer"
	LocaleKey    ContextKey = "locale"
	ParamsKey    ContextKey = "params"
	MenuKey      ContextKey = "menu"
	AllMenuKey   ContextKey = "allMenu"
)
