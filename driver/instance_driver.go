package driver

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"

	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.InstanceDriver = &SDKInstanceDriver{}

// SDKInstanceDriver drives EC2 instances backing latent workers
type SDKInstanceDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewInstanceDriver creates an SDKInstanceDriver for managing worker
// instances in EC2
func NewInstanceDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKInstanceDriver {
	logger := log.New(logDest, "SDKInstanceDriver ", log.LstdFlags)

	return &SDKInstanceDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// Run issues a single on-demand run request and returns the first instance
// of the reservation.
func (d *SDKInstanceDriver) Run(launchConfig resources.LaunchConfiguration) (resources.Instance, error) {
	runInput := &ec2.RunInstancesInput{
		ImageId:             aws.String(launchConfig.ImageID),
		InstanceType:        aws.String(launchConfig.InstanceType),
		MinCount:            aws.Int64(1),
		MaxCount:            aws.Int64(1),
		BlockDeviceMappings: blockDeviceMappings(launchConfig.BlockDevices),
	}
	if launchConfig.KeyPairName != "" {
		runInput.KeyName = aws.String(launchConfig.KeyPairName)
	}
	if launchConfig.UserData != "" {
		runInput.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(launchConfig.UserData)))
	}
	if launchConfig.AvailabilityZone != "" {
		runInput.Placement = &ec2.Placement{AvailabilityZone: aws.String(launchConfig.AvailabilityZone)}
	}
	if launchConfig.SubnetID != "" {
		runInput.SubnetId = aws.String(launchConfig.SubnetID)
	}
	if len(launchConfig.SecurityGroupIDs) > 0 {
		runInput.SecurityGroupIds = aws.StringSlice(launchConfig.SecurityGroupIDs)
	} else if launchConfig.SecurityGroup != "" {
		runInput.SecurityGroups = []*string{aws.String(launchConfig.SecurityGroup)}
	}

	d.logger.Printf("running instance of type %s from image %s\n", launchConfig.InstanceType, launchConfig.ImageID)
	reservation, err := d.ec2Client.RunInstances(runInput)
	if err != nil {
		return resources.Instance{}, fmt.Errorf("running instance: %s", err)
	}
	if len(reservation.Instances) == 0 {
		return resources.Instance{}, fmt.Errorf("running instance: reservation contains no instances")
	}

	return instanceFromSDK(reservation.Instances[0]), nil
}

// Describe refreshes the instance descriptor. An unknown instance ID maps to
// resources.NotFoundError so pollers can tell propagation lag from failure.
func (d *SDKInstanceDriver) Describe(instanceID string) (resources.Instance, error) {
	describeOutput, err := d.ec2Client.DescribeInstances(&ec2.DescribeInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidInstanceID.NotFound") {
			return resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: instanceID}
		}
		return resources.Instance{}, fmt.Errorf("describing instance %s: %s", instanceID, err)
	}

	for _, reservation := range describeOutput.Reservations {
		for _, sdkInstance := range reservation.Instances {
			if aws.StringValue(sdkInstance.InstanceId) == instanceID {
				return instanceFromSDK(sdkInstance), nil
			}
		}
	}

	return resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: instanceID}
}

func (d *SDKInstanceDriver) Terminate(instanceID string) error {
	d.logger.Printf("terminating instance %s\n", instanceID)
	_, err := d.ec2Client.TerminateInstances(&ec2.TerminateInstancesInput{
		InstanceIds: []*string{aws.String(instanceID)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidInstanceID.NotFound") {
			return resources.NotFoundError{Kind: "instance", ID: instanceID}
		}
		return fmt.Errorf("terminating instance %s: %s", instanceID, err)
	}
	return nil
}

// ConsoleOutput returns the decoded console snapshot, or an empty string
// when the console has produced nothing yet.
func (d *SDKInstanceDriver) ConsoleOutput(instanceID string) (string, error) {
	consoleOutput, err := d.ec2Client.GetConsoleOutput(&ec2.GetConsoleOutputInput{
		InstanceId: aws.String(instanceID),
	})
	if err != nil {
		return "", fmt.Errorf("fetching console output of %s: %s", instanceID, err)
	}
	if consoleOutput.Output == nil {
		return "", nil
	}

	decoded, err := base64.StdEncoding.DecodeString(aws.StringValue(consoleOutput.Output))
	if err != nil {
		return "", fmt.Errorf("decoding console output of %s: %s", instanceID, err)
	}
	return string(decoded), nil
}

// DeleteVolumesOnTermination marks every device currently attached to the
// instance for deletion when the instance terminates.
func (d *SDKInstanceDriver) DeleteVolumesOnTermination(instanceID string) error {
	attributeOutput, err := d.ec2Client.DescribeInstanceAttribute(&ec2.DescribeInstanceAttributeInput{
		InstanceId: aws.String(instanceID),
		Attribute:  aws.String("blockDeviceMapping"),
	})
	if err != nil {
		return fmt.Errorf("describing block device mapping of %s: %s", instanceID, err)
	}

	var mappings []*ec2.InstanceBlockDeviceMappingSpecification
	for _, mapping := range attributeOutput.BlockDeviceMappings {
		mappings = append(mappings, &ec2.InstanceBlockDeviceMappingSpecification{
			DeviceName: mapping.DeviceName,
			Ebs: &ec2.EbsInstanceBlockDeviceSpecification{
				DeleteOnTermination: aws.Bool(true),
			},
		})
	}
	if len(mappings) == 0 {
		return nil
	}

	d.logger.Printf("marking %d devices of %s for deletion on termination\n", len(mappings), instanceID)
	_, err = d.ec2Client.ModifyInstanceAttribute(&ec2.ModifyInstanceAttributeInput{
		InstanceId:          aws.String(instanceID),
		BlockDeviceMappings: mappings,
	})
	if err != nil {
		return fmt.Errorf("setting deletion on termination for %s: %s", instanceID, err)
	}
	return nil
}

func (d *SDKInstanceDriver) CreateTags(instanceID string, tags map[string]string) error {
	var sdkTags []*ec2.Tag
	for key, value := range tags {
		sdkTags = append(sdkTags, &ec2.Tag{Key: aws.String(key), Value: aws.String(value)})
	}

	_, err := d.ec2Client.CreateTags(&ec2.CreateTagsInput{
		Resources: []*string{aws.String(instanceID)},
		Tags:      sdkTags,
	})
	if err != nil {
		return fmt.Errorf("tagging instance %s: %s", instanceID, err)
	}
	return nil
}

func instanceFromSDK(sdkInstance *ec2.Instance) resources.Instance {
	instance := resources.Instance{
		ID:        aws.StringValue(sdkInstance.InstanceId),
		ImageID:   aws.StringValue(sdkInstance.ImageId),
		PublicDNS: aws.StringValue(sdkInstance.PublicDnsName),
	}
	if sdkInstance.State != nil {
		instance.State = aws.StringValue(sdkInstance.State.Name)
	}
	return instance
}

func blockDeviceMappings(blockDevices []resources.BlockDevice) []*ec2.BlockDeviceMapping {
	var mappings []*ec2.BlockDeviceMapping
	for _, device := range blockDevices {
		ebs := &ec2.EbsBlockDevice{
			DeleteOnTermination: aws.Bool(device.DeleteOnTermination),
		}
		if device.SizeGB > 0 {
			ebs.VolumeSize = aws.Int64(device.SizeGB)
		}
		if device.VolumeType != "" {
			ebs.VolumeType = aws.String(device.VolumeType)
		}
		if device.SnapshotID != "" {
			ebs.SnapshotId = aws.String(device.SnapshotID)
		}
		mappings = append(mappings, &ec2.BlockDeviceMapping{
			DeviceName: aws.String(device.DeviceName),
			Ebs:        ebs,
		})
	}
	return mappings
}
