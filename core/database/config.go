package database

// Config holds configuration for the database connection.
type Config struct {
	// Enabled turns on the operation journal.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"sqlite"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"bucket-manager.db"`
	// TimeoutSeconds bounds connection setup and the initial ping.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)
