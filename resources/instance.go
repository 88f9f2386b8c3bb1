package resources

// Instance states reported by EC2
const (
	InstancePendingState      = "pending"
	InstanceRunningState      = "running"
	InstanceShuttingDownState = "shutting-down"
	InstanceTerminatedState   = "terminated"
)

// InstanceDriver abstracts the API calls required to drive a worker instance
// through its lifecycle
//
//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	Run(LaunchConfiguration) (Instance, error)
	Describe(instanceID string) (Instance, error)
	Terminate(instanceID string) error
	ConsoleOutput(instanceID string) (string, error)
	DeleteVolumesOnTermination(instanceID string) error
	CreateTags(instanceID string, tags map[string]string) error
}

// Instance represents an EC2 instance backing a latent worker
type Instance struct {
	ID        string
	ImageID   string
	State     string
	PublicDNS string
}

// BlockDevice declares one entry of an instance block-device mapping.
// DeleteOnTermination is resolved by config; workers are ephemeral, so it
// defaults to true there.
type BlockDevice struct {
	DeviceName          string
	SizeGB              int64
	VolumeType          string
	SnapshotID          string
	DeleteOnTermination bool
}

// LaunchConfiguration carries the immutable launch parameters for one worker.
// SecurityGroup (an EC2 classic group name) and SubnetID are mutually
// exclusive; config validation rejects the combination up front.
type LaunchConfiguration struct {
	ImageID          string
	InstanceType     string
	KeyPairName      string
	SecurityGroup    string
	SecurityGroupIDs []string
	SubnetID         string
	AvailabilityZone string
	UserData         string
	BlockDevices     []BlockDevice
}
