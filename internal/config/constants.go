package config

import "time"

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultServiceName    = "ascendant"
	DefaultStorageDriver  = StorageSQLite
	DefaultSQLitePath     = "data/ascendant.db"
	DefaultTimezone       = "Local"
	DefaultSweepInterval  = 5 * time.Minute
	DefaultDeadLetterPath = "logs/deadletter.jsonl"
	DefaultRulesPath      = "configs/rules.toml"
	DefaultDBMaxConns     = 10
	DefaultDBMaxIdleTime  = 5 * time.Minute
	DefaultDBMaxLifetime  = 30 * time.Minute
	DefaultShutdownWait   = 10 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort     = "invalid PORT value"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidTimezone = "invalid TIMEZONE"
	ErrMsgReadRules       = "failed to read rules file"
	ErrMsgUnknownRank     = "unknown rank in quota rules"
)
