// Package config provides the configuration schema and loader for the
// lyrical-mcp server.
package config

import "log/slog"

// LogLevel controls log verbosity for the lyrical-mcp server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Level maps l onto the corresponding [slog.Level]. Unknown or empty levels
// map to [slog.LevelInfo].
func (l LogLevel) Level() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Transport selects how the MCP server is exposed to clients.
type Transport string

const (
	// TransportStdio serves MCP over stdin/stdout. This is the default and
	// matches how MCP clients typically spawn tool servers.
	TransportStdio Transport = "stdio"

	// TransportStreamableHTTP serves MCP over the streamable-HTTP transport
	// on [ServerConfig.ListenAddr].
	TransportStreamableHTTP Transport = "streamable-http"
)

// IsValid reports whether t is a recognised transport.
func (t Transport) IsValid() bool {
	return t == TransportStdio || t == TransportStreamableHTTP
}

// Config is the root configuration structure for lyrical-mcp.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Tools      ToolsConfig      `yaml:"tools"`
}

// ServerConfig holds transport and logging settings for the server.
type ServerConfig struct {
	// Transport selects stdio or streamable-http. Empty means stdio.
	Transport Transport `yaml:"transport"`

	// ListenAddr is the TCP address for the MCP endpoint when Transport is
	// streamable-http (e.g., ":8080"). Ignored for stdio.
	ListenAddr string `yaml:"listen_addr"`

	// AdminAddr is the TCP address for the admin listener serving /healthz,
	// /readyz and /metrics. Empty disables the admin listener.
	AdminAddr string `yaml:"admin_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// DictionaryConfig selects the pronunciation dictionary source.
type DictionaryConfig struct {
	// Path is a CMU-format dictionary file to load at startup. Empty means
	// use the embedded dictionary.
	Path string `yaml:"path"`
}

// ToolsConfig tunes tool behaviour.
type ToolsConfig struct {
	// MaxRhymes caps the number of rhymes returned per syllable group.
	// Zero means the built-in default of 20.
	MaxRhymes int `yaml:"max_rhymes"`
}

// Default returns the configuration used when no config file is given:
// stdio transport, embedded dictionary, info-level logs, no admin listener.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Transport: TransportStdio,
			LogLevel:  LogInfo,
		},
	}
}
