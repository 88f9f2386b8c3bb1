package driver_test

import (
	"errors"

	"ec2-latent-worker/driver"
	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AddressDriver", func() {
	Describe("Lookup", func() {
		It("finds an allocated elastic IP", func() {
			var describeInput *ec2.DescribeAddressesInput
			client := &fakeEC2{
				describeAddresses: func(input *ec2.DescribeAddressesInput) (*ec2.DescribeAddressesOutput, error) {
					describeInput = input
					return &ec2.DescribeAddressesOutput{
						Addresses: []*ec2.Address{
							{PublicIp: aws.String("203.0.113.10")},
						},
					}, nil
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			address, err := d.Lookup("203.0.113.10")
			Expect(err).ToNot(HaveOccurred())
			Expect(address.PublicIP).To(Equal("203.0.113.10"))
			Expect(aws.StringValueSlice(describeInput.PublicIps)).To(Equal([]string{"203.0.113.10"}))
		})

		It("maps the unknown-address error to a not-found error", func() {
			client := &fakeEC2{
				describeAddresses: func(input *ec2.DescribeAddressesInput) (*ec2.DescribeAddressesOutput, error) {
					return nil, awserr.New("InvalidAddress.NotFound", "does not exist", nil)
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			_, err := d.Lookup("203.0.113.10")
			Expect(err).To(MatchError(resources.NotFoundError{Kind: "elastic IP", ID: "203.0.113.10"}))
		})

		It("treats an empty result as not found", func() {
			client := &fakeEC2{
				describeAddresses: func(input *ec2.DescribeAddressesInput) (*ec2.DescribeAddressesOutput, error) {
					return &ec2.DescribeAddressesOutput{}, nil
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			_, err := d.Lookup("203.0.113.10")
			Expect(err).To(MatchError(resources.NotFoundError{Kind: "elastic IP", ID: "203.0.113.10"}))
		})
	})

	Describe("Associate", func() {
		It("binds the elastic IP to the instance", func() {
			var associateInput *ec2.AssociateAddressInput
			client := &fakeEC2{
				associateAddress: func(input *ec2.AssociateAddressInput) (*ec2.AssociateAddressOutput, error) {
					associateInput = input
					return &ec2.AssociateAddressOutput{}, nil
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			Expect(d.Associate("203.0.113.10", "i-12345678")).To(Succeed())
			Expect(aws.StringValue(associateInput.PublicIp)).To(Equal("203.0.113.10"))
			Expect(aws.StringValue(associateInput.InstanceId)).To(Equal("i-12345678"))
		})

		It("wraps association failures", func() {
			client := &fakeEC2{
				associateAddress: func(input *ec2.AssociateAddressInput) (*ec2.AssociateAddressOutput, error) {
					return nil, errors.New("boom")
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			err := d.Associate("203.0.113.10", "i-12345678")
			Expect(err).To(MatchError("associating elastic IP 203.0.113.10 with i-12345678: boom"))
		})
	})

	Describe("Disassociate", func() {
		It("unbinds the elastic IP", func() {
			var disassociateInput *ec2.DisassociateAddressInput
			client := &fakeEC2{
				disassociateAddress: func(input *ec2.DisassociateAddressInput) (*ec2.DisassociateAddressOutput, error) {
					disassociateInput = input
					return &ec2.DisassociateAddressOutput{}, nil
				},
			}

			d := driver.NewAddressDriver(GinkgoWriter, client)
			Expect(d.Disassociate("203.0.113.10")).To(Succeed())
			Expect(aws.StringValue(disassociateInput.PublicIp)).To(Equal("203.0.113.10"))
		})
	})
})
