// Package config provides configuration loading, merging, and validation
// facilities for the journal.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source that sets a field wins):
//  1. Command-line flags (bound with [BindFlags])
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] and [GetClientConfig].
package config
