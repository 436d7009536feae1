// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file and then overridden from environment
// variables, so secrets such as the database URL, the JWT secret and SMTP
// credentials never need to live in the file. Every settings struct validates
// itself before the application starts.
package config
