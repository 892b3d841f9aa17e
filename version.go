package gauntlet

// Version is the library version, overridable at build time via -ldflags.
var Version = "0.1.0"
