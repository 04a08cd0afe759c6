package internal

// Version is the current wordbank version
const Version = "0.2.0"
