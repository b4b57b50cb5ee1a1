package version

// Version is the release version, overridden at build time via -ldflags.
// Version 是发布版本，构建时通过 -ldflags 覆盖。
var Version = "dev"
