// Package config loads, normalizes, and validates bookloom configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// OUTPUT_DIR. The Config type centralizes the books root, the chapter naming
// rules, and the external preprocessor and TTS tool invocations so every
// command sees the same settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
