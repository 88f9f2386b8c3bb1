package driver

import (
	"fmt"
	"io"
	"log"

	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.VolumeDriver = &SDKVolumeDriver{}

// SDKVolumeDriver creates and attaches EBS volumes for worker instances
type SDKVolumeDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewVolumeDriver creates an SDKVolumeDriver for managing EBS volumes in EC2
func NewVolumeDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKVolumeDriver {
	logger := log.New(logDest, "SDKVolumeDriver ", log.LstdFlags)

	return &SDKVolumeDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

func (d *SDKVolumeDriver) Create(sizeGB int64, availabilityZone string) (resources.Volume, error) {
	d.logger.Printf("creating %dGB volume in %s\n", sizeGB, availabilityZone)
	createOutput, err := d.ec2Client.CreateVolume(&ec2.CreateVolumeInput{
		Size:             aws.Int64(sizeGB),
		AvailabilityZone: aws.String(availabilityZone),
	})
	if err != nil {
		return resources.Volume{}, fmt.Errorf("creating volume: %s", err)
	}

	return volumeFromSDK(createOutput), nil
}

func (d *SDKVolumeDriver) Describe(volumeID string) (resources.Volume, error) {
	describeOutput, err := d.ec2Client.DescribeVolumes(&ec2.DescribeVolumesInput{
		VolumeIds: []*string{aws.String(volumeID)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidVolume.NotFound") {
			return resources.Volume{}, resources.NotFoundError{Kind: "volume", ID: volumeID}
		}
		return resources.Volume{}, fmt.Errorf("describing volume %s: %s", volumeID, err)
	}
	if len(describeOutput.Volumes) == 0 {
		return resources.Volume{}, resources.NotFoundError{Kind: "volume", ID: volumeID}
	}

	return resources.Volume{
		ID:     aws.StringValue(describeOutput.Volumes[0].VolumeId),
		Status: aws.StringValue(describeOutput.Volumes[0].State),
	}, nil
}

func (d *SDKVolumeDriver) Attach(volumeID, instanceID, deviceNode string) error {
	d.logger.Printf("attaching EBS volume %s to %s\n", volumeID, deviceNode)
	_, err := d.ec2Client.AttachVolume(&ec2.AttachVolumeInput{
		VolumeId:   aws.String(volumeID),
		InstanceId: aws.String(instanceID),
		Device:     aws.String(deviceNode),
	})
	if err != nil {
		return fmt.Errorf("attaching volume %s to %s: %s", volumeID, deviceNode, err)
	}
	return nil
}

func volumeFromSDK(sdkVolume *ec2.Volume) resources.Volume {
	return resources.Volume{
		ID:     aws.StringValue(sdkVolume.VolumeId),
		Status: aws.StringValue(sdkVolume.State),
	}
}
