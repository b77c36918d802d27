package config

const (
	KeyListenAddr     = "listen_addr"
	KeyLogLevel       = "log_level"
	KeyLogDev         = "log_dev"
	KeyHTTPTimeout    = "http_timeout_seconds"
	KeyHTTPRetries    = "http_retries"
	KeyHTTPRetryDelay = "http_retry_delay_seconds"
	KeyNCBIAPIKey     = "ncbi_api_key"
	KeyNCBIEmail      = "ncbi_email"
	KeyNCBITool       = "ncbi_tool"
	KeySourcesFile    = "sources_file"
)
