package usecase

// FormatMinutes is exported for testing
var FormatMinutes = formatMinutes
