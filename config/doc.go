// Package config handles loading and validation of the converter run file.
//
// Configuration is read from YAML and validated using struct tags. A .env
// file, when present, is loaded first so that CLEANUP_* environment
// overrides can be kept next to the run file.
package config
