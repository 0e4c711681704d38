package agc

// Version is the wrapper's semantic version, populated at release time via
// ldflags. In development builds it reports a pseudo-version. libagc has no
// version entry point of its own, so only the wrapper version is reported.
var Version = "v0.0.0-dev"
