package domain

// Person is a contact record managed through the people endpoints.
type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName" validate:"notblank,max=80"`
	LastName  string `json:"lastName" validate:"notblank,max=80"`
	Address   string `json:"address" validate:"max=100"`
	Gender    string `json:"gender" validate:"notblank,max=6"`
	Enabled   bool   `json:"enabled"`
}
