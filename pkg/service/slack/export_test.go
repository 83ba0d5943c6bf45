package slack

// UpstreamError is exported for testing
var UpstreamError = upstreamError
