// Package config provides configuration for the campaign dataset pipeline.
//
// Configuration is loaded from a YAML file next to the executable, with
// environment variables (prefix CAMP) taking precedence. The package also
// holds the static cleaning vocabulary (column drop list, rename map, key
// columns, duration buckets) as immutable data injected into the pipeline
// stages, and a Paths type that is the single source of truth for all file
// locations.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	paths, err := config.GetPaths()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := paths.EnsureDirectories(); err != nil {
//	    log.Fatal(err)
//	}
package config
