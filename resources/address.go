package resources

// AddressDriver abstracts the API calls required to bind a pre-allocated
// elastic IP to a worker instance
//
//counterfeiter:generate . AddressDriver
type AddressDriver interface {
	Lookup(publicIP string) (Address, error)
	Associate(publicIP, instanceID string) error
	Disassociate(publicIP string) error
}

// Address represents a pre-allocated elastic IP resource
type Address struct {
	PublicIP string
}
