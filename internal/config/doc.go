// Package config provides configuration loading, merging, and validation
// facilities for the course API server.
//
// Configuration is assembled from multiple sources; earlier sources win for
// fields they set, later sources fill the remaining zero fields:
//  1. .env file (exported into the environment without overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
