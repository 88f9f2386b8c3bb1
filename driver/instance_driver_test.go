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

var _ = Describe("InstanceDriver", func() {
	Describe("Run", func() {
		It("issues a single-instance run request mirroring the launch configuration", func() {
			var runInput *ec2.RunInstancesInput
			client := &fakeEC2{
				runInstances: func(input *ec2.RunInstancesInput) (*ec2.Reservation, error) {
					runInput = input
					return &ec2.Reservation{
						Instances: []*ec2.Instance{
							{
								InstanceId: aws.String("i-12345678"),
								ImageId:    aws.String("ami-12345678"),
								State:      &ec2.InstanceState{Name: aws.String("pending")},
							},
						},
					}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			instance, err := d.Run(resources.LaunchConfiguration{
				ImageID:          "ami-12345678",
				InstanceType:     "m1.large",
				KeyPairName:      "latent-worker",
				SecurityGroup:    "latent-worker",
				AvailabilityZone: "us-east-1a",
				UserData:         "#!/bin/sh",
				BlockDevices: []resources.BlockDevice{
					{DeviceName: "/dev/sdb", SizeGB: 50, DeleteOnTermination: true},
				},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.ID).To(Equal("i-12345678"))
			Expect(instance.State).To(Equal(resources.InstancePendingState))

			Expect(aws.Int64Value(runInput.MinCount)).To(Equal(int64(1)))
			Expect(aws.Int64Value(runInput.MaxCount)).To(Equal(int64(1)))
			Expect(aws.StringValue(runInput.ImageId)).To(Equal("ami-12345678"))
			Expect(aws.StringValue(runInput.KeyName)).To(Equal("latent-worker"))
			Expect(aws.StringValueSlice(runInput.SecurityGroups)).To(Equal([]string{"latent-worker"}))
			Expect(runInput.SecurityGroupIds).To(BeEmpty())
			Expect(aws.StringValue(runInput.Placement.AvailabilityZone)).To(Equal("us-east-1a"))
			Expect(aws.StringValue(runInput.UserData)).To(Equal("IyEvYmluL3No"))

			Expect(runInput.BlockDeviceMappings).To(HaveLen(1))
			mapping := runInput.BlockDeviceMappings[0]
			Expect(aws.StringValue(mapping.DeviceName)).To(Equal("/dev/sdb"))
			Expect(aws.Int64Value(mapping.Ebs.VolumeSize)).To(Equal(int64(50)))
			Expect(aws.BoolValue(mapping.Ebs.DeleteOnTermination)).To(BeTrue())
		})

		It("returns an error when the reservation comes back empty", func() {
			client := &fakeEC2{
				runInstances: func(input *ec2.RunInstancesInput) (*ec2.Reservation, error) {
					return &ec2.Reservation{}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			_, err := d.Run(resources.LaunchConfiguration{ImageID: "ami-12345678", InstanceType: "m1.large"})
			Expect(err).To(MatchError("running instance: reservation contains no instances"))
		})
	})

	Describe("Describe", func() {
		It("maps both the unknown-ID error and an empty response to a not-found error", func() {
			client := &fakeEC2{
				describeInstances: func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
					return nil, awserr.New("InvalidInstanceID.NotFound", "does not exist", nil)
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			_, err := d.Describe("i-12345678")
			Expect(err).To(MatchError(resources.NotFoundError{Kind: "instance", ID: "i-12345678"}))

			client.describeInstances = func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
				return &ec2.DescribeInstancesOutput{}, nil
			}
			_, err = d.Describe("i-12345678")
			Expect(err).To(MatchError(resources.NotFoundError{Kind: "instance", ID: "i-12345678"}))
		})

		It("returns the refreshed descriptor", func() {
			client := &fakeEC2{
				describeInstances: func(input *ec2.DescribeInstancesInput) (*ec2.DescribeInstancesOutput, error) {
					return &ec2.DescribeInstancesOutput{
						Reservations: []*ec2.Reservation{
							{
								Instances: []*ec2.Instance{
									{
										InstanceId:    aws.String("i-12345678"),
										PublicDnsName: aws.String("ec2-198-51-100-1.compute-1.amazonaws.com"),
										State:         &ec2.InstanceState{Name: aws.String("running")},
									},
								},
							},
						},
					}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			instance, err := d.Describe("i-12345678")
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.State).To(Equal(resources.InstanceRunningState))
			Expect(instance.PublicDNS).To(Equal("ec2-198-51-100-1.compute-1.amazonaws.com"))
		})
	})

	Describe("ConsoleOutput", func() {
		It("decodes the console snapshot", func() {
			client := &fakeEC2{
				getConsoleOutput: func(input *ec2.GetConsoleOutputInput) (*ec2.GetConsoleOutputOutput, error) {
					return &ec2.GetConsoleOutputOutput{Output: aws.String("Ym9vdGVk")}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			output, err := d.ConsoleOutput("i-12345678")
			Expect(err).ToNot(HaveOccurred())
			Expect(output).To(Equal("booted"))
		})

		It("returns an empty string when the console has produced nothing", func() {
			client := &fakeEC2{
				getConsoleOutput: func(input *ec2.GetConsoleOutputInput) (*ec2.GetConsoleOutputOutput, error) {
					return &ec2.GetConsoleOutputOutput{}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			output, err := d.ConsoleOutput("i-12345678")
			Expect(err).ToNot(HaveOccurred())
			Expect(output).To(BeEmpty())
		})
	})

	Describe("DeleteVolumesOnTermination", func() {
		It("flips delete-on-termination on every attached device", func() {
			var modifyInput *ec2.ModifyInstanceAttributeInput
			client := &fakeEC2{
				describeInstanceAttr: func(input *ec2.DescribeInstanceAttributeInput) (*ec2.DescribeInstanceAttributeOutput, error) {
					Expect(aws.StringValue(input.Attribute)).To(Equal("blockDeviceMapping"))
					return &ec2.DescribeInstanceAttributeOutput{
						BlockDeviceMappings: []*ec2.InstanceBlockDeviceMapping{
							{DeviceName: aws.String("/dev/sda1")},
							{DeviceName: aws.String("/dev/sdb")},
						},
					}, nil
				},
				modifyInstanceAttr: func(input *ec2.ModifyInstanceAttributeInput) (*ec2.ModifyInstanceAttributeOutput, error) {
					modifyInput = input
					return &ec2.ModifyInstanceAttributeOutput{}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			Expect(d.DeleteVolumesOnTermination("i-12345678")).To(Succeed())
			Expect(aws.StringValue(modifyInput.InstanceId)).To(Equal("i-12345678"))
			Expect(modifyInput.BlockDeviceMappings).To(HaveLen(2))
			for _, mapping := range modifyInput.BlockDeviceMappings {
				Expect(aws.BoolValue(mapping.Ebs.DeleteOnTermination)).To(BeTrue())
			}
		})

		It("skips the modify call when no devices are attached", func() {
			client := &fakeEC2{
				describeInstanceAttr: func(input *ec2.DescribeInstanceAttributeInput) (*ec2.DescribeInstanceAttributeOutput, error) {
					return &ec2.DescribeInstanceAttributeOutput{}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			Expect(d.DeleteVolumesOnTermination("i-12345678")).To(Succeed())
		})
	})

	Describe("CreateTags", func() {
		It("tags the instance with the given key-value pairs", func() {
			var tagsInput *ec2.CreateTagsInput
			client := &fakeEC2{
				createTags: func(input *ec2.CreateTagsInput) (*ec2.CreateTagsOutput, error) {
					tagsInput = input
					return &ec2.CreateTagsOutput{}, nil
				},
			}

			d := driver.NewInstanceDriver(GinkgoWriter, client)
			Expect(d.CreateTags("i-12345678", map[string]string{"pool": "builders"})).To(Succeed())
			Expect(aws.StringValueSlice(tagsInput.Resources)).To(Equal([]string{"i-12345678"}))
			Expect(tagsInput.Tags).To(HaveLen(1))
			Expect(aws.StringValue(tagsInput.Tags[0].Key)).To(Equal("pool"))
			Expect(aws.StringValue(tagsInput.Tags[0].Value)).To(Equal("builders"))
		})
	})
})
