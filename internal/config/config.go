package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "ROSTER"

type Config struct {
	Env        string           `yaml:"env"        env-default:"production"` // Env is the current environment: local, development, production.
	Postgres   PostgresConfig   `yaml:"postgres"`                            // Postgres holds the optional roster store configuration.
	Migrations MigrationsConfig `yaml:"migrations"`                          // Migrations holds the goose migrations location.
	Metrics    MetricsConfig    `yaml:"metrics"`                             // Metrics holds the Pushgateway settings.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Enabled  bool   `yaml:"enabled"`                     // Enabled turns on storing the roster after it is displayed.
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Dbname   string `yaml:"db_name"`                     // Dbname is the name of the database.
}

type MigrationsConfig struct {
	Dir string `yaml:"dir" env-default:"migrations"`
}

// MetricsConfig describes where run metrics are pushed. An empty PushURL disables pushing.
type MetricsConfig struct {
	PushURL string `yaml:"push_url"`
	Job     string `yaml:"job"      env-default:"staff_roster"`
}

// MustLoad loads the configuration from the environment and, when CONFIG_PATH is set,
// from a YAML file. Environment variables use the ROSTER_ prefix, e.g. ROSTER_POSTGRES_HOST.
// Without any configuration the defaults are returned.
func MustLoad() *Config {
	// .env is optional
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("env file error: " + err.Error())
	}

	vpr := viper.New()
	vpr.SetEnvPrefix(envPrefix)
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("postgres.enabled", false)
	vpr.SetDefault("postgres.host", "localhost")
	vpr.SetDefault("postgres.port", "5432")
	vpr.SetDefault("postgres.user", "")
	vpr.SetDefault("postgres.password", "")
	vpr.SetDefault("postgres.db_name", "")
	vpr.SetDefault("migrations.dir", "migrations")
	vpr.SetDefault("metrics.push_url", "")
	vpr.SetDefault("metrics.job", "staff_roster")

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		// check if file exists
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			panic("config file does not exist: " + configPath)
		}

		vpr.SetConfigFile(configPath)
		vpr.SetConfigType("yaml")
		if err := vpr.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	return &Config{
		Env: vpr.GetString("env"),
		Postgres: PostgresConfig{
			Enabled:  vpr.GetBool("postgres.enabled"),
			Host:     vpr.GetString("postgres.host"),
			Port:     vpr.GetString("postgres.port"),
			User:     vpr.GetString("postgres.user"),
			Password: vpr.GetString("postgres.password"),
			Dbname:   vpr.GetString("postgres.db_name"),
		},
		Migrations: MigrationsConfig{
			Dir: vpr.GetString("migrations.dir"),
		},
		Metrics: MetricsConfig{
			PushURL: vpr.GetString("metrics.push_url"),
			Job:     vpr.GetString("metrics.job"),
		},
	}
}
