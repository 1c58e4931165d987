package models

import "time"

// Credential is one stored login record. The Secret field holds ciphertext
// in the database and plaintext on the wire to the authenticated owner; the
// service layer converts between the two.
type Credential struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	AppName   string    `json:"appName"`
	Username  string    `json:"username"`
	Secret    string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CredentialUpdate carries a partial update. Nil fields are left untouched.
type CredentialUpdate struct {
	AppName  *string
	Username *string
	Secret   *string
}

// Empty reports whether no field is set.
func (u *CredentialUpdate) Empty() bool {
	return u.AppName == nil && u.Username == nil && u.Secret == nil
}
