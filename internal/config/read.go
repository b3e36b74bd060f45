package config

import (
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads the configuration from jokedrop.toml in the working
// directory, with every key overridable through JOKEDROP_* environment
// variables. Missing keys fall back to defaults usable for local runs.
func ReadConfig() (Configuration, error) {
	v := viper.New()
	v.SetConfigName("jokedrop")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.SetDefault("port", 8080)
	v.SetDefault("db_url", "jokedrop.db")
	v.SetDefault("migrations_folder", "migrations")
	v.SetDefault("session_key", "u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")
	v.SetDefault("trending_size", 5)
	v.SetDefault("suggestion_limit", 5)
	v.SetDefault("queue_workers", 1)
	v.SetDefault("debug", false)

	v.SetEnvPrefix("jokedrop")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Configuration{}, err
		}
	}

	return Configuration{
		Port:             uint16(v.GetUint32("port")),
		DbUrl:            v.GetString("db_url"),
		MigrationsFolder: v.GetString("migrations_folder"),
		SessionKey:       v.GetString("session_key"),
		TrendingSize:     v.GetInt64("trending_size"),
		SuggestionLimit:  v.GetInt64("suggestion_limit"),
		QueueWorkers:     v.GetInt("queue_workers"),
		Debug:            v.GetBool("debug"),
	}, nil
}
