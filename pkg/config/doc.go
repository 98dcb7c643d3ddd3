// Package config provides configuration loading for the Legal Hub backend.
//
// Configuration is loaded in layers:
//
//  1. YAML file (optional; defaults apply when absent)
//  2. Default values for any unset field
//  3. Environment variable overrides (LEGALHUB_* plus the deployment
//     variables PORT, OPENAI_API_KEY, ELEVENLABS_API_KEY and CORS_ORIGINS)
//  4. Validation
//
// The PORT variable follows the container launch contract: when set it
// replaces the port of the listen address, otherwise the service binds
// 0.0.0.0:8000.
//
// Example:
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.ListenAddress)
package config
