// Package config turns the YAML experiment configuration into typed
// options. The "None" lang_char sentinel and the hyphen-joined
// select_data list are interpreted here, once, and nowhere else.
package config
