package logger

// Console implements a console based logger.
type Console struct {
	Enabled          bool `json:"enabled"          mapstructure:"enabled"          toml:"enabled"`
	UseConsoleWriter bool `json:"useConsoleWriter" mapstructure:"useconsolewriter" toml:"useConsoleWriter"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled" toml:"enabled"`
	Path    string `json:"path"    mapstructure:"path"    toml:"path"`

	ErrorLog        string `json:"error"           mapstructure:"error"           toml:"error"`
	ErrorMaxSize    int    `json:"errorMaxSize"    mapstructure:"errormaxsize"    toml:"errorMaxSize"`
	ErrorMaxBackups int    `json:"errorMaxBackups" mapstructure:"errormaxbackups" toml:"errorMaxBackups"`
	ErrorMaxAge     int    `json:"errorMaxAge"     mapstructure:"errormaxage"     toml:"errorMaxAge"`

	InfoLog        string `json:"info"           mapstructure:"info"           toml:"info"`
	InfoMaxSize    int    `json:"infoMaxSize"    mapstructure:"infomaxsize"    toml:"infoMaxSize"`
	InfoMaxBackups int    `json:"infoMaxBackups" mapstructure:"infomaxbackups" toml:"infoMaxBackups"`
	InfoMaxAge     int    `json:"infoMaxAge"     mapstructure:"infomaxage"     toml:"infoMaxAge"`

	TraceLog        string `json:"trace"           mapstructure:"trace"           toml:"trace"`
	TraceMaxSize    int    `json:"traceMaxSize"    mapstructure:"tracemaxsize"    toml:"traceMaxSize"`
	TraceMaxBackups int    `json:"traceMaxBackups" mapstructure:"tracemaxbackups" toml:"traceMaxBackups"`
	TraceMaxAge     int    `json:"traceMaxAge"     mapstructure:"tracemaxage"     toml:"traceMaxAge"`

	WarnLog        string `json:"warn"           mapstructure:"warn"           toml:"warn"`
	WarnMaxSize    int    `json:"warnMaxSize"    mapstructure:"warnmaxsize"    toml:"warnMaxSize"`
	WarnMaxBackups int    `json:"warnMaxBackups" mapstructure:"warnmaxbackups" toml:"warnMaxBackups"`
	WarnMaxAge     int    `json:"warnMaxAge"     mapstructure:"warnmaxage"     toml:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `json:"level"        mapstructure:"level"        toml:"level"` // trace, debug, info, warn, error.
	ReportCaller bool   `json:"reportCaller" mapstructure:"reportcaller" toml:"reportCaller"`

	AppName     string `json:"appName"     mapstructure:"appname"     toml:"appName"`
	ServiceName string `json:"serviceName" mapstructure:"servicename" toml:"serviceName"`

	// Console writes to stderr; stdout is reserved for flags.
	Console Console `json:"console" mapstructure:"console" toml:"console"`

	// File writes rolling log files split by level.
	File LogFile `json:"file" mapstructure:"file" toml:"file"`
}
