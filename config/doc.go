// Package config provides configuration loading for the query engine.
//
// It uses Viper to load engine settings from a config.yml file, a .env
// file and DFRAME_-prefixed environment variables, in that order of
// increasing precedence.
//
//	var cfg config.Engine
//	err := config.Load("dframe", &cfg)
package config
