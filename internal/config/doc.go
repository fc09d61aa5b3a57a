// Package config provides application configuration loaded from environment
// variables (ROOMLEDGER_* prefix) merged over an optional config.yaml file,
// plus the static property layout (room-number ranges and canonical month
// names) that defines the row/column universe of the output tables.
package config
