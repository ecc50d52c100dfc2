// Package config loads and validates the HCL client configuration: which
// platform instance to talk to, which wire namespace it speaks, whether the
// client runs connected or disconnected, and which entity types are enabled
// for offline use.
//
// Example:
//
//	endpoint {
//	  url       = "https://org.example.com"
//	  namespace = "mscrm"
//	}
//
//	mode = "connected"
//
//	offline {
//	  entities = ["account", "contact"]
//	}
package config
