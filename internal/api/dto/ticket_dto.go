package dto

// SubmitTicketRequest is the raw key/value submission from the HTTP surface.
// Declared fields must carry string values; unknown extra keys are passed
// through to validation, which ignores them.
type SubmitTicketRequest map[string]any
