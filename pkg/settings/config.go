package settings

type Config struct {
	Queue  Queue  `mapstructure:"queue" validate:"required"`
	Logger Logger `mapstructure:"logger"`
}

// Queue is the configuration for a bounded queue
type Queue struct {
	Name     string `mapstructure:"name"`
	Capacity int    `mapstructure:"capacity" validate:"required,gt=0"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress"`
}
