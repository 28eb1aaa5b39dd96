// Package config reads sealgen's two configuration layers: run settings
// resolved through viper from flags, SEALGEN_ environment variables and an
// optional .sealgen.yaml or .sealgen.toml, and blueprint manifests that
// declare sealed interfaces without source directives.
//
// Manifests are decoded by extension (YAML, TOML or HCL) and must carry a
// 1.x version. Validate reports malformed entries as diagnostics so they are
// rendered next to blueprint diagnostics.
package config
