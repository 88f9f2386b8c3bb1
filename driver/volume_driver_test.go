package driver_test

import (
	"ec2-latent-worker/driver"
	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("VolumeDriver", func() {
	It("creates a volume in the given zone", func() {
		var createInput *ec2.CreateVolumeInput
		client := &fakeEC2{
			createVolume: func(input *ec2.CreateVolumeInput) (*ec2.Volume, error) {
				createInput = input
				return &ec2.Volume{
					VolumeId: aws.String("vol-12345678"),
					State:    aws.String("creating"),
				}, nil
			},
		}

		d := driver.NewVolumeDriver(GinkgoWriter, client)
		volume, err := d.Create(50, "us-east-1a")
		Expect(err).ToNot(HaveOccurred())
		Expect(volume.ID).To(Equal("vol-12345678"))
		Expect(volume.Status).To(Equal(resources.VolumeCreatingStatus))
		Expect(aws.Int64Value(createInput.Size)).To(Equal(int64(50)))
		Expect(aws.StringValue(createInput.AvailabilityZone)).To(Equal("us-east-1a"))
	})

	It("maps the unknown-volume error to a not-found error", func() {
		client := &fakeEC2{
			describeVolumes: func(input *ec2.DescribeVolumesInput) (*ec2.DescribeVolumesOutput, error) {
				return nil, awserr.New("InvalidVolume.NotFound", "does not exist", nil)
			},
		}

		d := driver.NewVolumeDriver(GinkgoWriter, client)
		_, err := d.Describe("vol-12345678")
		Expect(err).To(MatchError(resources.NotFoundError{Kind: "volume", ID: "vol-12345678"}))
	})

	It("attaches a volume to the declared device node", func() {
		var attachInput *ec2.AttachVolumeInput
		client := &fakeEC2{
			attachVolume: func(input *ec2.AttachVolumeInput) (*ec2.VolumeAttachment, error) {
				attachInput = input
				return &ec2.VolumeAttachment{}, nil
			},
		}

		d := driver.NewVolumeDriver(GinkgoWriter, client)
		Expect(d.Attach("vol-12345678", "i-12345678", "/dev/sdb")).To(Succeed())
		Expect(aws.StringValue(attachInput.VolumeId)).To(Equal("vol-12345678"))
		Expect(aws.StringValue(attachInput.InstanceId)).To(Equal("i-12345678"))
		Expect(aws.StringValue(attachInput.Device)).To(Equal("/dev/sdb"))
	})
})
