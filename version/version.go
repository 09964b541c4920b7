package version

// Version is the version number of this build.
const Version = "0.1.0"
