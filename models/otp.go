package models

// EmailOTPPayload is the queued delivery job for an email one-time code.
type EmailOTPPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
	TTL   string `json:"ttl"`
}
