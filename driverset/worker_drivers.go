package driverset

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"io"
	"log"

	"ec2-latent-worker/config"
	"ec2-latent-worker/driver"
	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
)

//counterfeiter:generate . WorkerDriverSet
type WorkerDriverSet interface {
	ImageDriver() resources.ImageDriver
	InstanceDriver() resources.InstanceDriver
	SpotDriver() resources.SpotDriver
	VolumeDriver() resources.VolumeDriver
	AddressDriver() resources.AddressDriver
	AccountDriver() resources.AccountDriver
}

type workerDriverSet struct {
	imageDriver    *driver.SDKImageDriver
	instanceDriver *driver.SDKInstanceDriver
	spotDriver     *driver.SDKSpotDriver
	volumeDriver   *driver.SDKVolumeDriver
	addressDriver  *driver.SDKAddressDriver
	accountDriver  *driver.SDKAccountDriver
}

// NewWorkerDriverSet builds the full set of EC2 drivers on top of a single
// shared client for the configured region.
func NewWorkerDriverSet(logDest io.Writer, creds config.Credentials) WorkerDriverSet {
	logger := log.New(logDest, "EC2Client ", log.LstdFlags)

	awsConfig := creds.GetAwsConfig().
		WithLogger(driver.NewSDKLogger(logger))

	ec2Client := ec2.New(session.Must(session.NewSession(awsConfig)))

	return &workerDriverSet{
		imageDriver:    driver.NewImageDriver(logDest, ec2Client),
		instanceDriver: driver.NewInstanceDriver(logDest, ec2Client),
		spotDriver:     driver.NewSpotDriver(logDest, ec2Client),
		volumeDriver:   driver.NewVolumeDriver(logDest, ec2Client),
		addressDriver:  driver.NewAddressDriver(logDest, ec2Client),
		accountDriver:  driver.NewAccountDriver(logDest, ec2Client),
	}
}

func (s *workerDriverSet) ImageDriver() resources.ImageDriver {
	return s.imageDriver
}

func (s *workerDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *workerDriverSet) SpotDriver() resources.SpotDriver {
	return s.spotDriver
}

func (s *workerDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *workerDriverSet) AddressDriver() resources.AddressDriver {
	return s.addressDriver
}

func (s *workerDriverSet) AccountDriver() resources.AccountDriver {
	return s.accountDriver
}
