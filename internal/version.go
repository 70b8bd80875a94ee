package internal

// Version is the current resourcekit release version.
const Version = "0.3.1"
