package common

// UnknownStr is printed for enum values outside their declared range.
const UnknownStr = "unknown"
