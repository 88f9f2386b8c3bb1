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

var _ resources.AddressDriver = &SDKAddressDriver{}

// SDKAddressDriver binds pre-allocated elastic IPs to worker instances
type SDKAddressDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewAddressDriver creates an SDKAddressDriver for managing elastic IPs in EC2
func NewAddressDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKAddressDriver {
	logger := log.New(logDest, "SDKAddressDriver ", log.LstdFlags)

	return &SDKAddressDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

func (d *SDKAddressDriver) Lookup(publicIP string) (resources.Address, error) {
	describeOutput, err := d.ec2Client.DescribeAddresses(&ec2.DescribeAddressesInput{
		PublicIps: []*string{aws.String(publicIP)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidAddress.NotFound") {
			return resources.Address{}, resources.NotFoundError{Kind: "elastic IP", ID: publicIP}
		}
		return resources.Address{}, fmt.Errorf("describing elastic IP %s: %s", publicIP, err)
	}
	if len(describeOutput.Addresses) == 0 {
		return resources.Address{}, resources.NotFoundError{Kind: "elastic IP", ID: publicIP}
	}

	return resources.Address{PublicIP: aws.StringValue(describeOutput.Addresses[0].PublicIp)}, nil
}

func (d *SDKAddressDriver) Associate(publicIP, instanceID string) error {
	d.logger.Printf("associating elastic IP %s with %s\n", publicIP, instanceID)
	_, err := d.ec2Client.AssociateAddress(&ec2.AssociateAddressInput{
		PublicIp:   aws.String(publicIP),
		InstanceId: aws.String(instanceID),
	})
	if err != nil {
		return fmt.Errorf("associating elastic IP %s with %s: %s", publicIP, instanceID, err)
	}
	return nil
}

func (d *SDKAddressDriver) Disassociate(publicIP string) error {
	d.logger.Printf("disassociating elastic IP %s\n", publicIP)
	_, err := d.ec2Client.DisassociateAddress(&ec2.DisassociateAddressInput{
		PublicIp: aws.String(publicIP),
	})
	if err != nil {
		return fmt.Errorf("disassociating elastic IP %s: %s", publicIP, err)
	}
	return nil
}
