package version

// Version is overridden at build time with
// -ldflags "-X github.com/technophile-04/create-eth-codemod/core/version.Version=...".
var Version = "v0.1.0"
