// Package config loads the host application's TOML configuration from
// ~/.config/logoticker/config.toml. The file seeds the component's initial
// attributes (accent, speed, direction), points at an optional logo data
// file, and carries host-only settings like the poll cadence and the
// reduced-motion override. A missing file is not an error; everything has a
// default.
package config
