package constants

// viper config keys
const (
	ViperListenAddr   = "listen_addr"
	ViperPostgresDSN  = "postgres_dsn"
	ViperSecretKey    = "secret_key"
	ViperUpstreamURL  = "upstream_url"
	ViperLocale       = "locale"
	ViperCORSOrigins  = "cors_origins"
	ViperPageSize     = "default_page_size"
	ViperDashboardTop = "dashboard_top_n"
)

// cookie and context keys
const (
	CookieKeyAuthToken   = "auth_token"
	CookieKeySecretToken = "secret_token"
	CtxKeyUserID         = "user_id"
)

// fallback defaults when config leaves them unset
const (
	DefaultPageSize     = 10
	DefaultDashboardTop = 6
	DefaultLocale       = "id"
)
