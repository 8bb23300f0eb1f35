// Package config loads and validates the local bilictl configuration file.
// The file describes how to reach the archiver backend; the backend's own
// configuration is fetched and edited over its HTTP API instead.
package config
