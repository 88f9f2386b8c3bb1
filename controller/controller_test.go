package controller_test

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ec2-latent-worker/config"
	"ec2-latent-worker/controller"
	"ec2-latent-worker/driverset/driversetfakes"
	"ec2-latent-worker/resources"
	"ec2-latent-worker/resources/resourcesfakes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeDrivers struct {
	set      *driversetfakes.FakeWorkerDriverSet
	image    *resourcesfakes.FakeImageDriver
	instance *resourcesfakes.FakeInstanceDriver
	spot     *resourcesfakes.FakeSpotDriver
	volume   *resourcesfakes.FakeVolumeDriver
	address  *resourcesfakes.FakeAddressDriver
	account  *resourcesfakes.FakeAccountDriver
}

func newFakeDrivers() *fakeDrivers {
	d := &fakeDrivers{
		set:      &driversetfakes.FakeWorkerDriverSet{},
		image:    &resourcesfakes.FakeImageDriver{},
		instance: &resourcesfakes.FakeInstanceDriver{},
		spot:     &resourcesfakes.FakeSpotDriver{},
		volume:   &resourcesfakes.FakeVolumeDriver{},
		address:  &resourcesfakes.FakeAddressDriver{},
		account:  &resourcesfakes.FakeAccountDriver{},
	}
	d.set.ImageDriverReturns(d.image)
	d.set.InstanceDriverReturns(d.instance)
	d.set.SpotDriverReturns(d.spot)
	d.set.VolumeDriverReturns(d.volume)
	d.set.AddressDriverReturns(d.address)
	d.set.AccountDriverReturns(d.account)

	d.image.SelectReturns(resources.Image{
		ID:       "ami-12345678",
		Location: "123456789012/worker-7",
		State:    resources.ImageAvailableState,
	}, nil)

	return d
}

func workerConfig(workerJSON string) config.Config {
	full := fmt.Sprintf(`{
      "region": "us-east-1",
      "credentials": {"access_key": "access-key", "secret_key": "secret-key"},
      "worker": %s
    }`, workerJSON)
	c, err := config.NewFromReader(strings.NewReader(full))
	Expect(err).ToNot(HaveOccurred())
	return c
}

func newController(cfg config.Config, drivers *fakeDrivers) *controller.Controller {
	ctrl, err := controller.New(GinkgoWriter, cfg, drivers.set)
	Expect(err).ToNot(HaveOccurred())
	ctrl.PollInterval = time.Millisecond
	return ctrl
}

var _ = Describe("Controller", func() {
	var drivers *fakeDrivers

	BeforeEach(func() {
		drivers = newFakeDrivers()
	})

	Describe("New", func() {
		It("ensures the keypair and the default security group exist", func() {
			cfg := workerConfig(`{"instance_type": "m1.large", "image_id": "ami-12345678"}`)
			newController(cfg, drivers)

			Expect(drivers.account.EnsureKeyPairCallCount()).To(Equal(1))
			Expect(drivers.account.EnsureKeyPairArgsForCall(0)).To(Equal(config.DefaultKeyPairName))

			Expect(drivers.account.EnsureSecurityGroupCallCount()).To(Equal(1))
			name, description := drivers.account.EnsureSecurityGroupArgsForCall(0)
			Expect(name).To(Equal(config.DefaultSecurityGroupName))
			Expect(description).To(Equal(config.SecurityGroupDescription))
		})

		It("does not touch classic security groups for a VPC worker", func() {
			cfg := workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "subnet_id": "subnet-12345678",
              "security_group_ids": ["sg-12345678"]
            }`)
			newController(cfg, drivers)

			Expect(drivers.account.EnsureSecurityGroupCallCount()).To(BeZero())
		})

		It("smoke-checks that an image is reachable", func() {
			cfg := workerConfig(`{"instance_type": "m1.large", "image_id": "ami-12345678"}`)
			newController(cfg, drivers)
			Expect(drivers.image.SelectCallCount()).To(Equal(1))
		})

		It("fails when no image satisfies the constraints", func() {
			drivers.image.SelectReturns(resources.Image{}, resources.NoMatchingImageError{})
			cfg := workerConfig(`{"instance_type": "m1.large", "image_owners": ["123456789012"]}`)

			_, err := controller.New(GinkgoWriter, cfg, drivers.set)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("resolving launch image"))
		})

		It("verifies a configured elastic IP is allocated", func() {
			drivers.address.LookupReturns(resources.Address{PublicIP: "198.51.100.1"}, nil)
			cfg := workerConfig(`{"instance_type": "m1.large", "image_id": "ami-12345678", "elastic_ip": "198.51.100.1"}`)
			newController(cfg, drivers)

			Expect(drivers.address.LookupCallCount()).To(Equal(1))
			Expect(drivers.address.LookupArgsForCall(0)).To(Equal("198.51.100.1"))
		})
	})

	Describe("StartInstance on demand", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "volumes": [{"volume_id": "vol-12345678", "device_node": "/dev/sdb"}],
              "tags": {"role": "builder"}
            }`)

			drivers.instance.RunReturns(resources.Instance{ID: "i-12345678", State: resources.InstancePendingState}, nil)
			drivers.instance.DescribeReturns(resources.Instance{
				ID:        "i-12345678",
				State:     resources.InstanceRunningState,
				PublicDNS: "ec2-198-51-100-1.compute-1.amazonaws.com",
			}, nil)
			drivers.instance.ConsoleOutputReturns("booted", nil)
		})

		It("runs the instance, attaches the declared volume exactly once and tags it", func() {
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())
			Expect(result.InstanceID).To(Equal("i-12345678"))
			Expect(result.ImageID).To(Equal("ami-12345678"))

			Expect(drivers.instance.RunCallCount()).To(Equal(1))
			launchConfig := drivers.instance.RunArgsForCall(0)
			Expect(launchConfig.ImageID).To(Equal("ami-12345678"))
			Expect(launchConfig.InstanceType).To(Equal("m1.large"))
			Expect(launchConfig.KeyPairName).To(Equal(config.DefaultKeyPairName))
			Expect(launchConfig.SecurityGroup).To(Equal(config.DefaultSecurityGroupName))

			Expect(drivers.volume.AttachCallCount()).To(Equal(1))
			volumeID, instanceID, deviceNode := drivers.volume.AttachArgsForCall(0)
			Expect(volumeID).To(Equal("vol-12345678"))
			Expect(instanceID).To(Equal("i-12345678"))
			Expect(deviceNode).To(Equal("/dev/sdb"))

			Expect(drivers.instance.DeleteVolumesOnTerminationCallCount()).To(Equal(1))

			Expect(drivers.instance.CreateTagsCallCount()).To(Equal(1))
			taggedInstance, tags := drivers.instance.CreateTagsArgsForCall(0)
			Expect(taggedInstance).To(Equal("i-12345678"))
			Expect(tags).To(Equal(map[string]string{"role": "builder"}))

			address, ok := ctrl.CurrentAddress()
			Expect(ok).To(BeTrue())
			Expect(address).To(Equal("ec2-198-51-100-1.compute-1.amazonaws.com"))
		})

		It("does not re-resolve an explicitly configured image", func() {
			ctrl := newController(cfg, drivers)
			selectsAfterConstruction := drivers.image.SelectCallCount()

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())
			Expect(drivers.image.SelectCallCount()).To(Equal(selectsAfterConstruction))
		})

		It("fails a second start while an instance is owned, without a second launch", func() {
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())

			second := <-ctrl.StartInstance()
			Expect(second.Err).To(MatchError(controller.ErrInstanceActive))
			Expect(drivers.instance.RunCallCount()).To(Equal(1))
		})

		It("releases the slot when the launch call itself fails", func() {
			drivers.instance.RunReturns(resources.Instance{}, errors.New("insufficient capacity"))
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).To(MatchError("insufficient capacity"))

			drivers.instance.RunReturns(resources.Instance{ID: "i-12345678", State: resources.InstancePendingState}, nil)
			result = <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())
			Expect(drivers.instance.RunCallCount()).To(Equal(2))
		})

		It("fails substantiation when the instance terminates without running", func() {
			drivers.instance.DescribeReturns(resources.Instance{
				ID:    "i-12345678",
				State: resources.InstanceTerminatedState,
			}, nil)
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			var substantiationErr controller.SubstantiationError
			Expect(errors.As(result.Err, &substantiationErr)).To(BeTrue())
			Expect(substantiationErr.InstanceID).To(Equal("i-12345678"))
		})

		It("waits through a not-found propagation race after launch", func() {
			describes := 0
			drivers.instance.DescribeCalls(func(instanceID string) (resources.Instance, error) {
				describes++
				if describes < 3 {
					return resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: instanceID}
				}
				return resources.Instance{ID: instanceID, State: resources.InstanceRunningState}, nil
			})
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())
		})

		It("creates declared volumes and attaches them once available", func() {
			createCfg := workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "placement": "a",
              "create_volumes": [{"device_node": "/dev/sdc", "size_gb": 100}]
            }`)
			drivers.volume.CreateReturns(resources.Volume{ID: "vol-87654321", Status: resources.VolumeCreatingStatus}, nil)
			drivers.volume.DescribeReturns(resources.Volume{ID: "vol-87654321", Status: resources.VolumeAvailableStatus}, nil)
			ctrl := newController(createCfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())

			Expect(drivers.volume.CreateCallCount()).To(Equal(1))
			sizeGB, zone := drivers.volume.CreateArgsForCall(0)
			Expect(sizeGB).To(Equal(int64(100)))
			Expect(zone).To(Equal("us-east-1a"))

			Expect(drivers.volume.AttachCallCount()).To(Equal(1))
			volumeID, _, deviceNode := drivers.volume.AttachArgsForCall(0)
			Expect(volumeID).To(Equal("vol-87654321"))
			Expect(deviceNode).To(Equal("/dev/sdc"))
		})

		It("associates a configured elastic IP once running", func() {
			drivers.address.LookupReturns(resources.Address{PublicIP: "198.51.100.1"}, nil)
			elasticCfg := workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "elastic_ip": "198.51.100.1"
            }`)
			ctrl := newController(elasticCfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())

			Expect(drivers.address.AssociateCallCount()).To(Equal(1))
			publicIP, instanceID := drivers.address.AssociateArgsForCall(0)
			Expect(publicIP).To(Equal("198.51.100.1"))
			Expect(instanceID).To(Equal("i-12345678"))

			address, ok := ctrl.CurrentAddress()
			Expect(ok).To(BeTrue())
			Expect(address).To(Equal("198.51.100.1"))
		})
	})

	Describe("StartInstance on the spot market", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "spot": {"enabled": true, "max_price": 1.00, "price_multiplier": 1.5}
            }`)

			drivers.instance.DescribeReturns(resources.Instance{
				ID:    "i-12345678",
				State: resources.InstanceRunningState,
			}, nil)
			drivers.instance.ConsoleOutputReturns("", nil)
		})

		It("fails without issuing a request when the bid exceeds the ceiling", func() {
			drivers.spot.PriceHistoryReturns([]float64{1.00}, nil)
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			var substantiationErr controller.SubstantiationError
			Expect(errors.As(result.Err, &substantiationErr)).To(BeTrue())
			Expect(drivers.spot.RequestCallCount()).To(BeZero())
		})

		It("bids the fallback price when there is no price history", func() {
			drivers.spot.PriceHistoryReturns(nil, nil)
			drivers.spot.RequestReturns(resources.SpotRequest{ID: "sir-12345678", State: resources.SpotPendingEvaluationState}, nil)
			drivers.spot.DescribeReturns(resources.SpotRequest{
				ID:         "sir-12345678",
				State:      resources.SpotFulfilledState,
				InstanceID: "i-12345678",
			}, nil)
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())
			Expect(result.InstanceID).To(Equal("i-12345678"))

			Expect(drivers.spot.RequestCallCount()).To(Equal(1))
			price, _ := drivers.spot.RequestArgsForCall(0)
			Expect(price).To(Equal(controller.FallbackSpotBid))
		})

		It("bids the 24 hour average scaled by the multiplier", func() {
			drivers.spot.PriceHistoryReturns([]float64{0.10, 0.20, 0.30}, nil)
			drivers.spot.RequestReturns(resources.SpotRequest{ID: "sir-12345678", State: resources.SpotPendingEvaluationState}, nil)
			drivers.spot.DescribeReturns(resources.SpotRequest{
				ID:         "sir-12345678",
				State:      resources.SpotFulfilledState,
				InstanceID: "i-12345678",
			}, nil)
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())

			price, _ := drivers.spot.RequestArgsForCall(0)
			Expect(price).To(BeNumerically("~", 0.30, 1e-9))
		})

		It("fails with the request ID when the request resolves to price-too-low", func() {
			drivers.spot.PriceHistoryReturns([]float64{0.10}, nil)
			drivers.spot.RequestReturns(resources.SpotRequest{ID: "sir-12345678", State: resources.SpotPendingEvaluationState}, nil)
			drivers.spot.DescribeReturns(resources.SpotRequest{
				ID:    "sir-12345678",
				State: resources.SpotPriceTooLowState,
			}, nil)
			ctrl := newController(cfg, drivers)

			result := <-ctrl.StartInstance()
			var substantiationErr controller.SubstantiationError
			Expect(errors.As(result.Err, &substantiationErr)).To(BeTrue())
			Expect(substantiationErr.RequestID).To(Equal("sir-12345678"))
			Expect(drivers.instance.RunCallCount()).To(BeZero())
		})
	})

	Describe("StopInstance", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = workerConfig(`{"instance_type": "m1.large", "image_id": "ami-12345678"}`)
		})

		It("succeeds without any remote call when no instance is owned", func() {
			ctrl := newController(cfg, drivers)

			Expect(<-ctrl.StopInstance(false)).To(Succeed())
			Expect(drivers.instance.DescribeCallCount()).To(BeZero())
			Expect(drivers.instance.TerminateCallCount()).To(BeZero())
		})

		Context("with a running instance", func() {
			var ctrl *controller.Controller

			BeforeEach(func() {
				drivers.instance.RunReturns(resources.Instance{ID: "i-12345678", State: resources.InstancePendingState}, nil)
				drivers.instance.DescribeReturns(resources.Instance{ID: "i-12345678", State: resources.InstanceRunningState}, nil)
				drivers.instance.ConsoleOutputReturns("", nil)
				ctrl = newController(cfg, drivers)

				result := <-ctrl.StartInstance()
				Expect(result.Err).ToNot(HaveOccurred())
			})

			It("terminates the instance and waits for the terminated state", func() {
				terminated := false
				drivers.instance.DescribeCalls(func(instanceID string) (resources.Instance, error) {
					if terminated {
						return resources.Instance{ID: instanceID, State: resources.InstanceTerminatedState}, nil
					}
					return resources.Instance{ID: instanceID, State: resources.InstanceRunningState}, nil
				})
				drivers.instance.TerminateCalls(func(string) error {
					terminated = true
					return nil
				})

				Expect(<-ctrl.StopInstance(false)).To(Succeed())
				Expect(drivers.instance.TerminateCallCount()).To(Equal(1))

				_, owned := ctrl.CurrentAddress()
				Expect(owned).To(BeFalse())
			})

			It("returns as soon as shutdown begins when asked for a fast stop", func() {
				drivers.instance.DescribeReturns(resources.Instance{
					ID:    "i-12345678",
					State: resources.InstanceShuttingDownState,
				}, nil)

				Expect(<-ctrl.StopInstance(true)).To(Succeed())
				Expect(drivers.instance.TerminateCallCount()).To(BeZero())
			})

			It("treats a vanished instance as already stopped", func() {
				drivers.instance.DescribeReturns(resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: "i-12345678"})

				Expect(<-ctrl.StopInstance(false)).To(Succeed())
				Expect(drivers.instance.TerminateCallCount()).To(BeZero())
			})

			It("permits a fresh start once the stop completes", func() {
				drivers.instance.DescribeReturns(resources.Instance{ID: "i-12345678", State: resources.InstanceTerminatedState}, nil)
				Expect(<-ctrl.StopInstance(false)).To(Succeed())

				drivers.instance.DescribeReturns(resources.Instance{ID: "i-12345678", State: resources.InstanceRunningState}, nil)
				result := <-ctrl.StartInstance()
				Expect(result.Err).ToNot(HaveOccurred())
				Expect(drivers.instance.RunCallCount()).To(Equal(2))
			})
		})

		It("disassociates a bound elastic IP before terminating", func() {
			drivers.address.LookupReturns(resources.Address{PublicIP: "198.51.100.1"}, nil)
			elasticCfg := workerConfig(`{
              "instance_type": "m1.large",
              "image_id": "ami-12345678",
              "elastic_ip": "198.51.100.1"
            }`)
			drivers.instance.RunReturns(resources.Instance{ID: "i-12345678", State: resources.InstancePendingState}, nil)
			drivers.instance.DescribeReturns(resources.Instance{ID: "i-12345678", State: resources.InstanceRunningState}, nil)
			drivers.instance.ConsoleOutputReturns("", nil)
			ctrl := newController(elasticCfg, drivers)

			result := <-ctrl.StartInstance()
			Expect(result.Err).ToNot(HaveOccurred())

			drivers.instance.DescribeReturns(resources.Instance{ID: "i-12345678", State: resources.InstanceTerminatedState}, nil)
			Expect(<-ctrl.StopInstance(false)).To(Succeed())

			Expect(drivers.address.DisassociateCallCount()).To(Equal(1))
			Expect(drivers.address.DisassociateArgsForCall(0)).To(Equal("198.51.100.1"))
		})
	})
})
