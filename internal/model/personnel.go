package model

// Personnel is a roster entry as listed to administrators. It mirrors
// Identity minus the credential.
type Personnel struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
