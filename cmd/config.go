package cmd

import (
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Flag defaults come from the environment (PST_STORE_DIR, PST_REDIS_ADDR,
// PST_CATALOG_URL, PST_CURRENCY) or an optional .partstock.yaml in the
// working directory, so flags only need to be given when overriding.
//
// Loading is lazy because flag variables are initialized before any init
// function of this package would run.
var loadConfig = sync.OnceFunc(func() {
	viper.SetEnvPrefix("pst")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(".partstock")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// A missing config file is the normal case.
	_ = viper.ReadInConfig()
})

// defaultString resolves a configuration key, falling back to the built-in
// default when neither the environment nor the config file define it.
func defaultString(key, fallback string) string {
	loadConfig()
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}
