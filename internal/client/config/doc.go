// Package config loads runtime configuration for the store-rating client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with an optional .env file.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-f string   path to the local session database file
//
// Environment variables
//
//	STORE_RATING_API_URL   base URL of the backend REST API
//	STORE_RATING_TIMEOUT   request timeout (Go duration, e.g. "10s")
//	STORE_RATING_DB        path to the local session database file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:5000/api",
//	  "request_timeout": "10s",
//	  "database_path": "session.db"
//	}
package config
