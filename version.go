package ttp

// Version is the release of the ttp module and CLI.
const Version = "0.3.0"
