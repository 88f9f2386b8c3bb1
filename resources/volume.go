package resources

// Volume states reported by EC2
const (
	VolumeCreatingStatus  = "creating"
	VolumeAvailableStatus = "available"
	VolumeInUseStatus     = "in-use"
)

// VolumeDriver abstracts the API calls required to create and attach EBS
// volumes to a worker instance
//
//counterfeiter:generate . VolumeDriver
type VolumeDriver interface {
	Create(sizeGB int64, availabilityZone string) (Volume, error)
	Describe(volumeID string) (Volume, error)
	Attach(volumeID, instanceID, deviceNode string) error
}

// Volume represents an EBS volume resource in EC2
type Volume struct {
	ID     string
	Status string
}
