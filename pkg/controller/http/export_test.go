package http

// VerifyAlexaRequest is exported for testing
var VerifyAlexaRequest = verifyAlexaRequest
