package entity

// User is a row of the users table.
//
// Password is persisted as whatever string the caller hands to the store;
// hashing, when wanted, happens above the repository (see application.Accounts).
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
