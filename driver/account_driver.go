package driver

import (
	"fmt"
	"io"
	"log"

	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.AccountDriver = &SDKAccountDriver{}

// SDKAccountDriver performs the fetch-or-create account setup done once at
// controller construction
type SDKAccountDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewAccountDriver creates an SDKAccountDriver for keypair and security
// group setup in EC2
func NewAccountDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKAccountDriver {
	logger := log.New(logDest, "SDKAccountDriver ", log.LstdFlags)

	return &SDKAccountDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// EnsureKeyPair fetches the named keypair and creates it when missing. The
// private key material of a created keypair is discarded: it cannot be
// retrieved later, and the controller has no use for it.
func (d *SDKAccountDriver) EnsureKeyPair(name string) error {
	_, err := d.ec2Client.DescribeKeyPairs(&ec2.DescribeKeyPairsInput{
		KeyNames: []*string{aws.String(name)},
	})
	if err == nil {
		return nil
	}
	if !hasAWSErrorCode(err, "InvalidKeyPair.NotFound") {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == "AuthFailure" {
			d.logger.Println("authorization failed; doublecheck the supplied AWS credentials and account status")
		}
		return fmt.Errorf("describing keypair %s: %s", name, err)
	}

	d.logger.Printf("creating keypair %s\n", name)
	_, err = d.ec2Client.CreateKeyPair(&ec2.CreateKeyPairInput{
		KeyName: aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("creating keypair %s: %s", name, err)
	}
	return nil
}

// EnsureSecurityGroup fetches the named classic security group and creates
// it when missing. Creation errors other than "already exists" propagate.
func (d *SDKAccountDriver) EnsureSecurityGroup(name, description string) error {
	_, err := d.ec2Client.DescribeSecurityGroups(&ec2.DescribeSecurityGroupsInput{
		GroupNames: []*string{aws.String(name)},
	})
	if err == nil {
		return nil
	}
	if !hasAWSErrorCode(err, "InvalidGroup.NotFound") {
		return fmt.Errorf("describing security group %s: %s", name, err)
	}

	d.logger.Printf("creating security group %s\n", name)
	_, err = d.ec2Client.CreateSecurityGroup(&ec2.CreateSecurityGroupInput{
		GroupName:   aws.String(name),
		Description: aws.String(description),
	})
	if err != nil && !hasAWSErrorCode(err, "InvalidGroup.Duplicate") {
		return fmt.Errorf("creating security group %s: %s", name, err)
	}
	return nil
}
