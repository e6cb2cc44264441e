package backend

import "encoding/json"

// LoginResponse is the body returned by POST /admin/login on success.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// RegistrationResponse is the body returned by POST /admin/register on success.
// The backend echoes the created user; its shape is not part of the contract.
type RegistrationResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    json.RawMessage `json:"user,omitempty"`
}

// errorEnvelope is the failure body the backend sends alongside non-2xx codes.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
