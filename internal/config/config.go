package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load("config.env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyListenAddr, ":8080")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogDev, false)
	viper.SetDefault(KeyHTTPTimeout, 30)
	viper.SetDefault(KeyHTTPRetries, 3)
	viper.SetDefault(KeyHTTPRetryDelay, 3)
	viper.SetDefault(KeyNCBITool, "lifesci-mcp")
}

func ListenAddr() string { return viper.GetString(KeyListenAddr) }
func LogLevel() string   { return viper.GetString(KeyLogLevel) }
func LogDev() bool       { return viper.GetBool(KeyLogDev) }
func HTTPTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyHTTPTimeout)) * time.Second
}
func HTTPRetries() int { return viper.GetInt(KeyHTTPRetries) }
func HTTPRetryDelay() time.Duration {
	return time.Duration(viper.GetInt(KeyHTTPRetryDelay)) * time.Second
}
func NCBIAPIKey() string  { return viper.GetString(KeyNCBIAPIKey) }
func NCBIEmail() string   { return viper.GetString(KeyNCBIEmail) }
func NCBITool() string    { return viper.GetString(KeyNCBITool) }
func SourcesFile() string { return viper.GetString(KeySourcesFile) }
