package domain

// Contact is a single address book record. Username is the unique,
// case-sensitive key; the remaining fields are free-form display strings.
type Contact struct {
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
}
