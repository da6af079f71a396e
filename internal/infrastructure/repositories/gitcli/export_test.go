package gitcli

// Redact exposes redact for tests.
var Redact = redact
