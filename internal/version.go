package internal

// Version is the ocrtrain release version
const Version = "0.1.0"
