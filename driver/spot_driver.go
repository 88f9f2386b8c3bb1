package driver

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.SpotDriver = &SDKSpotDriver{}

// SDKSpotDriver buys preemptible worker capacity on the spot market
type SDKSpotDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewSpotDriver creates an SDKSpotDriver for requesting spot instances in EC2
func NewSpotDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKSpotDriver {
	logger := log.New(logDest, "SDKSpotDriver ", log.LstdFlags)

	return &SDKSpotDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

// PriceHistory returns the spot prices observed over the trailing 24 hours
// for the given instance type and platform, optionally restricted to one
// availability zone.
func (d *SDKSpotDriver) PriceHistory(instanceType, availabilityZone, productDescription string) ([]float64, error) {
	historyInput := &ec2.DescribeSpotPriceHistoryInput{
		StartTime:           aws.Time(time.Now().UTC().Add(-24 * time.Hour)),
		InstanceTypes:       []*string{aws.String(instanceType)},
		ProductDescriptions: []*string{aws.String(productDescription)},
	}
	if availabilityZone != "" {
		historyInput.AvailabilityZone = aws.String(availabilityZone)
	}

	var prices []float64
	for {
		historyOutput, err := d.ec2Client.DescribeSpotPriceHistory(historyInput)
		if err != nil {
			return nil, fmt.Errorf("describing spot price history: %s", err)
		}
		for _, price := range historyOutput.SpotPriceHistory {
			parsed, err := strconv.ParseFloat(aws.StringValue(price.SpotPrice), 64)
			if err != nil {
				return nil, fmt.Errorf("parsing spot price %q: %s", aws.StringValue(price.SpotPrice), err)
			}
			prices = append(prices, parsed)
		}
		if historyOutput.NextToken == nil || aws.StringValue(historyOutput.NextToken) == "" {
			return prices, nil
		}
		historyInput.NextToken = historyOutput.NextToken
	}
}

// Request issues a spot instance request at the given bid.
func (d *SDKSpotDriver) Request(price float64, launchConfig resources.LaunchConfiguration) (resources.SpotRequest, error) {
	launchSpecification := &ec2.RequestSpotLaunchSpecification{
		ImageId:             aws.String(launchConfig.ImageID),
		InstanceType:        aws.String(launchConfig.InstanceType),
		BlockDeviceMappings: blockDeviceMappings(launchConfig.BlockDevices),
	}
	if launchConfig.KeyPairName != "" {
		launchSpecification.KeyName = aws.String(launchConfig.KeyPairName)
	}
	if launchConfig.UserData != "" {
		launchSpecification.UserData = aws.String(base64.StdEncoding.EncodeToString([]byte(launchConfig.UserData)))
	}
	if launchConfig.AvailabilityZone != "" {
		launchSpecification.Placement = &ec2.SpotPlacement{AvailabilityZone: aws.String(launchConfig.AvailabilityZone)}
	}
	if launchConfig.SubnetID != "" {
		launchSpecification.SubnetId = aws.String(launchConfig.SubnetID)
	}
	if len(launchConfig.SecurityGroupIDs) > 0 {
		launchSpecification.SecurityGroupIds = aws.StringSlice(launchConfig.SecurityGroupIDs)
	} else if launchConfig.SecurityGroup != "" {
		launchSpecification.SecurityGroups = []*string{aws.String(launchConfig.SecurityGroup)}
	}

	d.logger.Printf("requesting spot instance with price %0.2f\n", price)
	requestOutput, err := d.ec2Client.RequestSpotInstances(&ec2.RequestSpotInstancesInput{
		SpotPrice:           aws.String(strconv.FormatFloat(price, 'f', 3, 64)),
		LaunchSpecification: launchSpecification,
	})
	if err != nil {
		return resources.SpotRequest{}, fmt.Errorf("requesting spot instance: %s", err)
	}
	if len(requestOutput.SpotInstanceRequests) == 0 {
		return resources.SpotRequest{}, fmt.Errorf("requesting spot instance: response contains no requests")
	}

	return spotRequestFromSDK(requestOutput.SpotInstanceRequests[0]), nil
}

// Describe refreshes the spot request. A request ID the control plane does
// not know yet maps to resources.NotFoundError.
func (d *SDKSpotDriver) Describe(requestID string) (resources.SpotRequest, error) {
	describeOutput, err := d.ec2Client.DescribeSpotInstanceRequests(&ec2.DescribeSpotInstanceRequestsInput{
		SpotInstanceRequestIds: []*string{aws.String(requestID)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidSpotInstanceRequestID.NotFound") {
			return resources.SpotRequest{}, resources.NotFoundError{Kind: "spot request", ID: requestID}
		}
		return resources.SpotRequest{}, fmt.Errorf("describing spot request %s: %s", requestID, err)
	}
	if len(describeOutput.SpotInstanceRequests) == 0 {
		return resources.SpotRequest{}, resources.NotFoundError{Kind: "spot request", ID: requestID}
	}

	return spotRequestFromSDK(describeOutput.SpotInstanceRequests[0]), nil
}

func spotRequestFromSDK(sdkRequest *ec2.SpotInstanceRequest) resources.SpotRequest {
	request := resources.SpotRequest{
		ID:         aws.StringValue(sdkRequest.SpotInstanceRequestId),
		InstanceID: aws.StringValue(sdkRequest.InstanceId),
	}
	if sdkRequest.Status != nil {
		request.State = aws.StringValue(sdkRequest.Status.Code)
	}
	return request
}
