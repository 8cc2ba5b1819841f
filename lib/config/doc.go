// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads configuration for the key and codec tools.
//
// Configuration comes from a single file named by:
//   - the ZCORE_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// There is no discovery and no fallback search. Environment variables
// never override values from the file; the only environment input is
// ${VAR} and ${VAR:-default} expansion inside path fields.
//
// Files ending in .json or .jsonc are read as JSON with comments and
// trailing commas allowed. Anything else is read as YAML. Both use the
// same field names.
//
// The file may carry development, staging, and production sections
// that override base values when the environment matches.
//
//	environment: production
//	log:
//	  level: info
//	keys:
//	  keyfile: ${HOME}/.config/zcore/server.key
//	  seal_to:
//	    - age1...
//	payload:
//	  compression: auto
package config
