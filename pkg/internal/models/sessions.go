package models

import "time"

// AuthSession is a server-side login session, referenced by the opaque
// token handed to the client. Terminating a session deletes the row.
type AuthSession struct {
	BaseModel

	Token     string    `json:"token" gorm:"uniqueIndex"`
	AccountID uint      `json:"account_id"`
	Account   Account   `json:"account"`
	ExpiredAt time.Time `json:"expired_at"`
}
