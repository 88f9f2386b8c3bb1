package driver_test

import (
	"ec2-latent-worker/driver"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AccountDriver", func() {
	Describe("EnsureKeyPair", func() {
		It("does not create a keypair that already exists", func() {
			created := 0
			client := &fakeEC2{
				describeKeyPairs: func(input *ec2.DescribeKeyPairsInput) (*ec2.DescribeKeyPairsOutput, error) {
					return &ec2.DescribeKeyPairsOutput{
						KeyPairs: []*ec2.KeyPairInfo{{KeyName: aws.String("latent-worker")}},
					}, nil
				},
				createKeyPair: func(input *ec2.CreateKeyPairInput) (*ec2.CreateKeyPairOutput, error) {
					created++
					return &ec2.CreateKeyPairOutput{}, nil
				},
			}

			d := driver.NewAccountDriver(GinkgoWriter, client)
			Expect(d.EnsureKeyPair("latent-worker")).To(Succeed())
			Expect(created).To(BeZero())
		})

		It("creates the keypair when it is missing", func() {
			var createdName string
			client := &fakeEC2{
				describeKeyPairs: func(input *ec2.DescribeKeyPairsInput) (*ec2.DescribeKeyPairsOutput, error) {
					return nil, awserr.New("InvalidKeyPair.NotFound", "does not exist", nil)
				},
				createKeyPair: func(input *ec2.CreateKeyPairInput) (*ec2.CreateKeyPairOutput, error) {
					createdName = aws.StringValue(input.KeyName)
					return &ec2.CreateKeyPairOutput{}, nil
				},
			}

			d := driver.NewAccountDriver(GinkgoWriter, client)
			Expect(d.EnsureKeyPair("latent-worker")).To(Succeed())
			Expect(createdName).To(Equal("latent-worker"))
		})

		It("propagates authorization failures", func() {
			client := &fakeEC2{
				describeKeyPairs: func(input *ec2.DescribeKeyPairsInput) (*ec2.DescribeKeyPairsOutput, error) {
					return nil, awserr.New("AuthFailure", "not authorized", nil)
				},
			}

			d := driver.NewAccountDriver(GinkgoWriter, client)
			err := d.EnsureKeyPair("latent-worker")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("describing keypair latent-worker"))
		})
	})

	Describe("EnsureSecurityGroup", func() {
		It("creates the group with the given description when it is missing", func() {
			var createInput *ec2.CreateSecurityGroupInput
			client := &fakeEC2{
				describeSecurityGroups: func(input *ec2.DescribeSecurityGroupsInput) (*ec2.DescribeSecurityGroupsOutput, error) {
					return nil, awserr.New("InvalidGroup.NotFound", "does not exist", nil)
				},
				createSecurityGroup: func(input *ec2.CreateSecurityGroupInput) (*ec2.CreateSecurityGroupOutput, error) {
					createInput = input
					return &ec2.CreateSecurityGroupOutput{}, nil
				},
			}

			d := driver.NewAccountDriver(GinkgoWriter, client)
			Expect(d.EnsureSecurityGroup("latent-worker", "worker access")).To(Succeed())
			Expect(aws.StringValue(createInput.GroupName)).To(Equal("latent-worker"))
			Expect(aws.StringValue(createInput.Description)).To(Equal("worker access"))
		})

		It("tolerates losing a creation race", func() {
			client := &fakeEC2{
				describeSecurityGroups: func(input *ec2.DescribeSecurityGroupsInput) (*ec2.DescribeSecurityGroupsOutput, error) {
					return nil, awserr.New("InvalidGroup.NotFound", "does not exist", nil)
				},
				createSecurityGroup: func(input *ec2.CreateSecurityGroupInput) (*ec2.CreateSecurityGroupOutput, error) {
					return nil, awserr.New("InvalidGroup.Duplicate", "already exists", nil)
				},
			}

			d := driver.NewAccountDriver(GinkgoWriter, client)
			Expect(d.EnsureSecurityGroup("latent-worker", "worker access")).To(Succeed())
		})
	})
})
