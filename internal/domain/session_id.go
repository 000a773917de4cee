package domain

import "errors"

var ErrEmptySessionID = errors.New("session ID cannot be empty")

// SessionID は上流のログインAPIが発行するSIDを表す
type SessionID struct {
	value string
}

func NewSessionID(value string) (SessionID, error) {
	if value == "" {
		return SessionID{}, ErrEmptySessionID
	}
	return SessionID{value: value}, nil
}

func (s SessionID) String() string {
	return s.value
}

// Credentials はWebAPIにログインするためのアカウント情報
type Credentials struct {
	account  string
	password string
}

func NewCredentials(account, password string) Credentials {
	return Credentials{
		account:  account,
		password: password,
	}
}

func (c Credentials) Account() string {
	return c.account
}

func (c Credentials) Password() string {
	return c.password
}

// String はパスワードを伏せた表現を返す
func (c Credentials) String() string {
	return "Credentials{Account: " + c.account + ", Password: ***}"
}
