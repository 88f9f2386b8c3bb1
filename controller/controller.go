package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"ec2-latent-worker/config"
	"ec2-latent-worker/driverset"
	"ec2-latent-worker/poll"
	"ec2-latent-worker/resources"
)

// FallbackSpotBid is offered when the market has no price history for the
// configured instance type.
const FallbackSpotBid = 0.02

// StartResult is delivered once a start attempt resolves, successfully or
// not.
type StartResult struct {
	InstanceID string
	ImageID    string
	Elapsed    time.Duration
	Err        error
}

// handle is the single owned-instance slot. It is claimed synchronously by
// StartInstance and released by StopInstance, or by a start attempt that
// failed before any instance was launched.
type handle struct {
	instanceID    string
	spotRequestID string
	publicDNS     string
	consoleOutput string
	addressBound  bool
}

// Controller drives the lifecycle of at most one worker instance at a time.
// Start and stop are non-blocking; the remote round-trips and poll sleeps
// happen on a goroutine and the outcome is delivered on the returned channel.
type Controller struct {
	cfg     config.Config
	drivers driverset.WorkerDriverSet
	logger  *log.Logger

	// PollInterval overrides the delay between status queries. Leave zero
	// for the default; tests shrink it.
	PollInterval time.Duration

	mutex  sync.Mutex
	active *handle

	// populated at construction when the image is configured explicitly,
	// so start attempts skip re-resolving an ID that cannot change
	resolvedImage resources.Image
}

// New validates the account-level preconditions for cfg and returns a
// controller ready to start a worker: the keypair and any named classic
// security group exist, at least one image is reachable under the configured
// constraints, and a configured elastic IP refers to a real allocated
// address.
func New(logDest io.Writer, cfg config.Config, drivers driverset.WorkerDriverSet) (*Controller, error) {
	logger := log.New(logDest, fmt.Sprintf("Controller[%s] ", cfg.Worker.Name), log.LstdFlags)

	c := &Controller{
		cfg:     cfg,
		drivers: drivers,
		logger:  logger,
	}

	if cfg.Worker.DefaultedKeyPairName {
		logger.Printf("no keypair_name configured, using %s\n", cfg.Worker.KeyPairName)
	}
	if cfg.Worker.DefaultedSecurityName {
		logger.Printf("no security_name configured, using %s\n", cfg.Worker.SecurityName)
	}

	err := drivers.AccountDriver().EnsureKeyPair(cfg.Worker.KeyPairName)
	if err != nil {
		return nil, fmt.Errorf("ensuring keypair: %s", err)
	}

	if cfg.Worker.SecurityName != "" {
		err = drivers.AccountDriver().EnsureSecurityGroup(cfg.Worker.SecurityName, config.SecurityGroupDescription)
		if err != nil {
			return nil, fmt.Errorf("ensuring security group: %s", err)
		}
	}

	image, err := drivers.ImageDriver().Select(c.imageSelector())
	if err != nil {
		return nil, fmt.Errorf("resolving launch image: %s", err)
	}
	logger.Printf("resolved launch image %s (%s)\n", image.ID, image.Location)
	if cfg.Worker.ImageID != "" {
		c.resolvedImage = image
	}

	if cfg.Worker.ElasticIP != "" {
		_, err = drivers.AddressDriver().Lookup(cfg.Worker.ElasticIP)
		if err != nil {
			return nil, fmt.Errorf("looking up elastic IP %s: %s", cfg.Worker.ElasticIP, err)
		}
	}

	return c, nil
}

// StartInstance claims the owned-instance slot and provisions a worker in the
// background. The claim happens before this call returns: a second call while
// an attempt is in flight (or an instance is owned) immediately delivers
// ErrInstanceActive without any remote call. A launched instance stays owned
// even when it fails to become ready, so StopInstance can tear it down.
func (c *Controller) StartInstance() <-chan StartResult {
	results := make(chan StartResult, 1)

	c.mutex.Lock()
	if c.active != nil {
		c.mutex.Unlock()
		results <- StartResult{Err: ErrInstanceActive}
		return results
	}
	c.active = &handle{}
	c.mutex.Unlock()

	go func() {
		result := c.substantiate()
		if result.Err != nil {
			c.logger.Printf("start attempt failed: %s\n", result.Err)
			c.mutex.Lock()
			if c.active != nil && c.active.instanceID == "" {
				c.active = nil
			}
			c.mutex.Unlock()
		}
		results <- result
	}()

	return results
}

// StopInstance releases the owned-instance slot and decommissions the
// instance in the background. With no owned instance it succeeds trivially;
// teardown treats "instance not found" as success. When fast is set the wait
// ends as soon as shutdown has begun instead of waiting for termination.
func (c *Controller) StopInstance(fast bool) <-chan error {
	errs := make(chan error, 1)

	c.mutex.Lock()
	owned := c.active
	c.active = nil
	c.mutex.Unlock()

	if owned == nil || owned.instanceID == "" {
		errs <- nil
		return errs
	}

	go func() {
		errs <- c.decommission(owned, fast)
	}()

	return errs
}

// CurrentAddress returns the address the worker is reachable at, preferring a
// bound elastic IP over the instance's public DNS name. The second return is
// false until the instance is running.
func (c *Controller) CurrentAddress() (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.active == nil {
		return "", false
	}
	if c.active.addressBound {
		return c.cfg.Worker.ElasticIP, true
	}
	if c.active.publicDNS != "" {
		return c.active.publicDNS, true
	}
	return "", false
}

func (c *Controller) substantiate() StartResult {
	image := c.resolvedImage
	if image.ID == "" {
		var err error
		image, err = c.drivers.ImageDriver().Select(c.imageSelector())
		if err != nil {
			return StartResult{Err: err}
		}
	}

	launchConfig := c.launchConfiguration(image.ID)

	var (
		instanceID string
		requestID  string
		elapsed    time.Duration
		err        error
	)
	if c.cfg.Worker.Spot.Enabled {
		instanceID, requestID, elapsed, err = c.substantiateSpot(launchConfig)
	} else {
		var instance resources.Instance
		instance, err = c.drivers.InstanceDriver().Run(launchConfig)
		instanceID = instance.ID
	}
	if err != nil {
		return StartResult{ImageID: image.ID, Elapsed: elapsed, Err: err}
	}

	c.mutex.Lock()
	if c.active != nil {
		c.active.instanceID = instanceID
		c.active.spotRequestID = requestID
	}
	c.mutex.Unlock()

	runElapsed, err := c.waitForRunning(instanceID)
	elapsed += runElapsed
	if err != nil {
		return StartResult{InstanceID: instanceID, ImageID: image.ID, Elapsed: elapsed, Err: err}
	}

	err = c.makeReady(instanceID)
	if err != nil {
		return StartResult{InstanceID: instanceID, ImageID: image.ID, Elapsed: elapsed, Err: err}
	}

	c.logger.Printf("instance %s ready after %f minutes\n", instanceID, elapsed.Minutes())
	return StartResult{InstanceID: instanceID, ImageID: image.ID, Elapsed: elapsed}
}

// substantiateSpot bids on the spot market and drives the request to
// fulfillment. The instance behind a fulfilled request is returned by ID
// only; waitForRunning describes it, tolerating the propagation lag.
func (c *Controller) substantiateSpot(launchConfig resources.LaunchConfiguration) (string, string, time.Duration, error) {
	bid, err := c.targetBid()
	if err != nil {
		return "", "", 0, err
	}
	if bid > c.cfg.Worker.Spot.MaxPrice {
		return "", "", 0, SubstantiationError{
			Detail: fmt.Sprintf("target spot bid %0.4f exceeds the configured maximum %0.4f", bid, c.cfg.Worker.Spot.MaxPrice),
		}
	}

	request, err := c.drivers.SpotDriver().Request(bid, launchConfig)
	if err != nil {
		return "", "", 0, err
	}

	status, elapsed, err := poll.WaitForStatus(func() (string, error) {
		refreshed, err := c.drivers.SpotDriver().Describe(request.ID)
		if err != nil {
			return "", err
		}
		request = refreshed
		return refreshed.State, nil
	}, poll.Config{
		Resource:        fmt.Sprintf("spot request %s", request.ID),
		Pending:         resources.SpotRequestPending,
		Interval:        c.PollInterval,
		NotFoundRetries: poll.DefaultNotFoundRetries,
		Logger:          c.logger,
	})
	if err != nil {
		return "", request.ID, elapsed, err
	}
	if status != resources.SpotFulfilledState {
		return "", request.ID, elapsed, SubstantiationError{
			RequestID: request.ID,
			Detail:    fmt.Sprintf("spot request resolved to %s", status),
		}
	}

	c.logger.Printf("spot request %s fulfilled by instance %s\n", request.ID, request.InstanceID)
	return request.InstanceID, request.ID, elapsed, nil
}

// targetBid averages the spot prices observed over the trailing 24 hours and
// scales by the configured multiplier. With no history it offers a fixed low
// bid rather than refusing outright.
func (c *Controller) targetBid() (float64, error) {
	prices, err := c.drivers.SpotDriver().PriceHistory(
		c.cfg.Worker.InstanceType,
		c.cfg.AvailabilityZone(),
		resources.SpotProductDescription,
	)
	if err != nil {
		return 0, fmt.Errorf("querying spot price history: %s", err)
	}
	if len(prices) == 0 {
		c.logger.Printf("no spot price history for %s, bidding %0.2f\n", c.cfg.Worker.InstanceType, FallbackSpotBid)
		return FallbackSpotBid, nil
	}

	var sum float64
	for _, price := range prices {
		sum += price
	}
	average := sum / float64(len(prices))
	bid := average * c.cfg.Worker.Spot.PriceMultiplier
	c.logger.Printf("average spot price over the last 24 hours is %0.4f, bidding %0.4f\n", average, bid)
	return bid, nil
}

// waitForRunning polls the instance until it leaves pending, tolerating
// not-found indefinitely: the launch call already succeeded, so invisibility
// is propagation lag. Reaching any state other than running is a definitive
// substantiation failure; the console snapshot is attached when available.
func (c *Controller) waitForRunning(instanceID string) (time.Duration, error) {
	var instance resources.Instance
	status, elapsed, err := poll.WaitForStatus(func() (string, error) {
		refreshed, err := c.drivers.InstanceDriver().Describe(instanceID)
		if err != nil {
			return "", err
		}
		instance = refreshed
		return refreshed.State, nil
	}, poll.Config{
		Resource:        fmt.Sprintf("instance %s", instanceID),
		Pending:         func(status string) bool { return status == resources.InstancePendingState },
		Interval:        c.PollInterval,
		NotFoundRetries: poll.TolerateNotFound,
		Logger:          c.logger,
	})
	if err != nil {
		return elapsed, err
	}

	output, outputErr := c.drivers.InstanceDriver().ConsoleOutput(instanceID)
	if outputErr != nil {
		c.logger.Printf("fetching console output of %s: %s\n", instanceID, outputErr)
	}

	if status != resources.InstanceRunningState {
		detail := fmt.Sprintf("instance reached %s without running", status)
		if output != "" {
			detail = fmt.Sprintf("%s; console output:\n%s", detail, output)
		}
		return elapsed, SubstantiationError{InstanceID: instanceID, Detail: detail}
	}

	c.mutex.Lock()
	if c.active != nil {
		c.active.publicDNS = instance.PublicDNS
		c.active.consoleOutput = output
	}
	c.mutex.Unlock()

	return elapsed, nil
}

// makeReady performs the post-running provisioning steps: elastic IP
// binding, volume creation and attachment, delete-on-termination marking,
// and tagging.
func (c *Controller) makeReady(instanceID string) error {
	if c.cfg.Worker.ElasticIP != "" {
		err := c.drivers.AddressDriver().Associate(c.cfg.Worker.ElasticIP, instanceID)
		if err != nil {
			return err
		}
		c.mutex.Lock()
		if c.active != nil {
			c.active.addressBound = true
		}
		c.mutex.Unlock()
	}

	err := c.provisionVolumes(instanceID)
	if err != nil {
		return err
	}

	if len(c.cfg.Worker.Tags) > 0 {
		err = c.drivers.InstanceDriver().CreateTags(instanceID, c.cfg.Worker.Tags)
		if err != nil {
			return err
		}
	}

	return nil
}

// provisionVolumes creates the declared volumes in the worker's zone, waits
// for each to become available and attaches it, then marks attached devices
// for deletion on termination unless configured to preserve them, and
// finally attaches the pre-existing volumes directly.
func (c *Controller) provisionVolumes(instanceID string) error {
	for _, spec := range c.cfg.Worker.CreateVolumes {
		volume, err := c.drivers.VolumeDriver().Create(spec.SizeGB, c.cfg.AvailabilityZone())
		if err != nil {
			return err
		}

		// a freshly created volume that cannot be described is fatal:
		// unlike an instance launch there is no fulfilled request to
		// fall back on
		status, _, err := poll.WaitForStatus(func() (string, error) {
			refreshed, err := c.drivers.VolumeDriver().Describe(volume.ID)
			if err != nil {
				return "", err
			}
			return refreshed.Status, nil
		}, poll.Config{
			Resource:        fmt.Sprintf("volume %s", volume.ID),
			Pending:         func(status string) bool { return status == resources.VolumeCreatingStatus },
			Interval:        c.PollInterval,
			NotFoundRetries: 0,
			Logger:          c.logger,
		})
		if err != nil {
			return err
		}
		if status != resources.VolumeAvailableStatus {
			return fmt.Errorf("volume %s reached %s without becoming available", volume.ID, status)
		}

		err = c.drivers.VolumeDriver().Attach(volume.ID, instanceID, spec.DeviceNode)
		if err != nil {
			return err
		}
		c.logger.Printf("attached volume %s to %s at %s\n", volume.ID, instanceID, spec.DeviceNode)
	}

	if c.cfg.Worker.DeleteVolumesOnTermination() {
		err := c.drivers.InstanceDriver().DeleteVolumesOnTermination(instanceID)
		if err != nil {
			c.logger.Printf("marking volumes of %s for deletion on termination: %s\n", instanceID, err)
		}
	}

	for _, spec := range c.cfg.Worker.AttachVolumes {
		err := c.drivers.VolumeDriver().Attach(spec.VolumeID, instanceID, spec.DeviceNode)
		if err != nil {
			return err
		}
		c.logger.Printf("attached volume %s to %s at %s\n", spec.VolumeID, instanceID, spec.DeviceNode)
	}

	return nil
}

func (c *Controller) decommission(owned *handle, fast bool) error {
	if owned.addressBound {
		err := c.drivers.AddressDriver().Disassociate(c.cfg.Worker.ElasticIP)
		if err != nil {
			c.logger.Printf("disassociating elastic IP %s: %s\n", c.cfg.Worker.ElasticIP, err)
		}
	}

	instance, err := c.drivers.InstanceDriver().Describe(owned.instanceID)
	if err != nil {
		if isNotFound(err) {
			c.logger.Printf("instance %s is already gone\n", owned.instanceID)
			return nil
		}
		return err
	}

	if instance.State != resources.InstanceShuttingDownState && instance.State != resources.InstanceTerminatedState {
		err = c.drivers.InstanceDriver().Terminate(owned.instanceID)
		if err != nil {
			if isNotFound(err) {
				return nil
			}
			return err
		}
	}

	status, elapsed, err := poll.WaitForStatus(func() (string, error) {
		refreshed, err := c.drivers.InstanceDriver().Describe(owned.instanceID)
		if err != nil {
			return "", err
		}
		return refreshed.State, nil
	}, poll.Config{
		Resource: fmt.Sprintf("instance %s", owned.instanceID),
		Pending: func(status string) bool {
			if status == resources.InstanceTerminatedState {
				return false
			}
			return !(fast && status == resources.InstanceShuttingDownState)
		},
		Interval:        c.PollInterval,
		NotFoundRetries: 0,
		Logger:          c.logger,
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}

	c.logger.Printf("instance %s reached %s after %f minutes\n", owned.instanceID, status, elapsed.Minutes())
	return nil
}

func (c *Controller) imageSelector() resources.ImageSelectorConfig {
	return resources.ImageSelectorConfig{
		ImageID:         c.cfg.Worker.ImageID,
		Owners:          c.cfg.Worker.ImageOwners,
		LocationPattern: c.cfg.Worker.ImageLocationPattern,
	}
}

func (c *Controller) launchConfiguration(imageID string) resources.LaunchConfiguration {
	return resources.LaunchConfiguration{
		ImageID:          imageID,
		InstanceType:     c.cfg.Worker.InstanceType,
		KeyPairName:      c.cfg.Worker.KeyPairName,
		SecurityGroup:    c.cfg.Worker.SecurityName,
		SecurityGroupIDs: c.cfg.Worker.SecurityGroupIDs,
		SubnetID:         c.cfg.Worker.SubnetID,
		AvailabilityZone: c.cfg.AvailabilityZone(),
		UserData:         c.cfg.Worker.UserData,
		BlockDevices:     c.cfg.Worker.BlockDevices(),
	}
}

func isNotFound(err error) bool {
	var notFound resources.NotFoundError
	return errors.As(err, &notFound)
}
