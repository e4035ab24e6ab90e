package entity

// Length limits of normalized text fields, counted in characters. The schema
// enforces the same bounds with CHECK constraints.
const (
	UserNameMinLength  = 2
	StoreNameMinLength = 1
	NameMaxLength      = 60
	AddressMinLength   = 1
	AddressMaxLength   = 400
)
