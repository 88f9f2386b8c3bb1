package resources

// AccountDriver abstracts the fetch-or-create calls performed once at
// controller construction. EnsureKeyPair never recreates the private key
// locally; there is no way to retrieve the private component afterwards.
//
//counterfeiter:generate . AccountDriver
type AccountDriver interface {
	EnsureKeyPair(name string) error
	EnsureSecurityGroup(name, description string) error
}
