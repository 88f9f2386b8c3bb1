package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/session"
	uuid "github.com/satori/go.uuid"

	"ec2-latent-worker/resources"
)

const (
	// DefaultKeyPairName and DefaultSecurityGroupName are the fallback
	// account resources used when none are configured and the worker is
	// not placed in a VPC subnet.
	DefaultKeyPairName       = "latent-worker"
	DefaultSecurityGroupName = "latent-worker"

	// SecurityGroupDescription is attached when the fallback group has to
	// be created.
	SecurityGroupDescription = "Authorization to access the latent worker instance."

	DefaultMaxSpotPrice    = 1.6
	DefaultPriceMultiplier = 1.2
)

// InvalidConfigurationError is raised synchronously at construction time;
// the caller must fix the configuration.
type InvalidConfigurationError struct {
	Reason string
}

func (e InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Worker struct {
	InstanceType         string                 `json:"instance_type"`
	Name                 string                 `json:"name"`
	KeyPairName          string                 `json:"keypair_name"`
	SecurityName         string                 `json:"security_name"`
	DeleteVolumesOnTerm  *bool                  `json:"delete_volumes_on_termination"`
	ImageID              string                 `json:"image_id"`
	ImageOwners          []string               `json:"image_owners"`
	ImageLocationPattern string                 `json:"image_location_pattern"`
	ElasticIP            string                 `json:"elastic_ip"`
	SubnetID             string                 `json:"subnet_id"`
	SecurityGroupIDs     []string               `json:"security_group_ids"`
	UserData             string                 `json:"user_data"`
	Placement            string                 `json:"placement"`
	Tags                 map[string]string      `json:"tags,omitempty"`
	Spot                 SpotPolicy             `json:"spot"`
	CreateVolumes        []CreateVolume         `json:"create_volumes,omitempty"`
	AttachVolumes        []AttachVolume         `json:"volumes,omitempty"`
	BlockDeviceMap       map[string]BlockDevice `json:"block_device_map,omitempty"`

	// Set during parsing so the controller can emit a diagnostic note.
	DefaultedKeyPairName  bool `json:"-"`
	DefaultedSecurityName bool `json:"-"`
}

// SpotPolicy configures the spot/preemptible purchase path.
type SpotPolicy struct {
	Enabled         bool    `json:"enabled"`
	MaxPrice        float64 `json:"max_price"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// BlockDevice is one declared entry of the launch block-device mapping.
// DeleteOnTermination defaults to true: latent workers are ephemeral, and
// not leaking volumes on termination is the safer default.
type BlockDevice struct {
	SizeGB              int64  `json:"size_gb"`
	VolumeType          string `json:"volume_type,omitempty"`
	SnapshotID          string `json:"snapshot_id,omitempty"`
	DeleteOnTermination *bool  `json:"delete_on_termination,omitempty"`
}

// CreateVolume declares a volume created at provisioning time and attached
// to the given device node once available.
type CreateVolume struct {
	DeviceNode string `json:"device_node"`
	SizeGB     int64  `json:"size_gb"`
}

// AttachVolume declares a pre-existing volume attached directly, with no
// availability wait.
type AttachVolume struct {
	VolumeID   string `json:"volume_id"`
	DeviceNode string `json:"device_node"`
}

type Credentials struct {
	AccessKey           string `json:"access_key"`
	SecretKey           string `json:"secret_key"`
	RoleArn             string `json:"role_arn"`
	CredentialsFilePath string `json:"credentials_file_path"`
	Region              string `json:"-"`
}

type Config struct {
	Region      string      `json:"region"`
	Credentials Credentials `json:"credentials"`
	Worker      Worker      `json:"worker"`
}

func NewFromReader(r io.Reader) (Config, error) {
	c := Config{}

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	err = c.Credentials.resolve()
	if err != nil {
		return Config{}, err
	}
	c.Credentials.Region = c.Region

	if c.Worker.Name == "" {
		c.Worker.Name = fmt.Sprintf("worker-%s", uuid.NewV4().String())
	}

	if c.Worker.KeyPairName == "" {
		c.Worker.KeyPairName = DefaultKeyPairName
		c.Worker.DefaultedKeyPairName = true
	}

	if c.Worker.SecurityName == "" && c.Worker.SubnetID == "" {
		c.Worker.SecurityName = DefaultSecurityGroupName
		c.Worker.DefaultedSecurityName = true
	}

	if c.Worker.Spot.MaxPrice == 0 {
		c.Worker.Spot.MaxPrice = DefaultMaxSpotPrice
	}

	if c.Worker.Spot.PriceMultiplier == 0 {
		c.Worker.Spot.PriceMultiplier = DefaultPriceMultiplier
	}

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (config *Config) validate() error {
	if config.Worker.InstanceType == "" {
		return InvalidConfigurationError{Reason: "instance_type must be specified for worker"}
	}

	hasExplicitImage := config.Worker.ImageID != ""
	hasConstraints := len(config.Worker.ImageOwners) > 0 || config.Worker.ImageLocationPattern != ""
	if hasExplicitImage == hasConstraints {
		return InvalidConfigurationError{
			Reason: "exactly one of image_id, or image_owners and/or image_location_pattern, must be provided",
		}
	}

	if config.Worker.SecurityName != "" && config.Worker.SubnetID != "" {
		return InvalidConfigurationError{
			Reason: "security_name (EC2 classic security groups) is not supported in a VPC; use security_group_ids instead",
		}
	}

	for _, owner := range config.Worker.ImageOwners {
		if _, err := strconv.ParseUint(owner, 10, 64); err != nil {
			return InvalidConfigurationError{
				Reason: fmt.Sprintf("image_owners entries must be integer-like account IDs, got %q", owner),
			}
		}
	}

	if config.Worker.ImageLocationPattern != "" {
		if _, err := regexp.Compile(config.Worker.ImageLocationPattern); err != nil {
			return InvalidConfigurationError{
				Reason: fmt.Sprintf("image_location_pattern does not compile: %s", err),
			}
		}
	}

	if config.Region == "" {
		return InvalidConfigurationError{Reason: "region must be specified"}
	}
	if !knownRegion(config.Region) {
		return InvalidConfigurationError{Reason: fmt.Sprintf("unknown region: %s", config.Region)}
	}

	for _, cv := range config.Worker.CreateVolumes {
		if cv.DeviceNode == "" || cv.SizeGB <= 0 {
			return InvalidConfigurationError{Reason: "create_volumes entries need a device_node and a positive size_gb"}
		}
	}
	for _, av := range config.Worker.AttachVolumes {
		if av.VolumeID == "" || av.DeviceNode == "" {
			return InvalidConfigurationError{Reason: "volumes entries need a volume_id and a device_node"}
		}
	}

	return nil
}

func knownRegion(name string) bool {
	for _, partition := range endpoints.DefaultPartitions() {
		if _, ok := partition.Regions()[name]; ok {
			return true
		}
	}
	return false
}

// AvailabilityZone is the full placement string, e.g. region "us-east-1"
// plus placement "a" yields "us-east-1a". Empty when no placement is set.
func (config *Config) AvailabilityZone() string {
	if config.Worker.Placement == "" {
		return ""
	}
	return config.Region + config.Worker.Placement
}

// DeleteVolumesOnTermination defaults to true when unset.
func (w *Worker) DeleteVolumesOnTermination() bool {
	if w.DeleteVolumesOnTerm == nil {
		return true
	}
	return *w.DeleteVolumesOnTerm
}

// BlockDevices resolves the declared block-device map into launch entries,
// defaulting delete_on_termination to true, in device-name order.
func (w *Worker) BlockDevices() []resources.BlockDevice {
	if len(w.BlockDeviceMap) == 0 {
		return nil
	}

	names := make([]string, 0, len(w.BlockDeviceMap))
	for name := range w.BlockDeviceMap {
		names = append(names, name)
	}
	sort.Strings(names)

	devices := make([]resources.BlockDevice, 0, len(names))
	for _, name := range names {
		entry := w.BlockDeviceMap[name]
		deleteOnTermination := true
		if entry.DeleteOnTermination != nil {
			deleteOnTermination = *entry.DeleteOnTermination
		}
		devices = append(devices, resources.BlockDevice{
			DeviceName:          name,
			SizeGB:              entry.SizeGB,
			VolumeType:          entry.VolumeType,
			SnapshotID:          entry.SnapshotID,
			DeleteOnTermination: deleteOnTermination,
		})
	}
	return devices
}

// resolve applies the credential fallback chain: an explicit access/secret
// pair (both or neither), else the deprecated on-disk credentials file, else
// ambient EC2-role discovery at call time.
func (creds *Credentials) resolve() error {
	hasAccess := creds.AccessKey != ""
	hasSecret := creds.SecretKey != ""

	if hasAccess != hasSecret {
		return InvalidConfigurationError{Reason: "supply both or neither of access_key, secret_key"}
	}

	if hasAccess {
		if creds.CredentialsFilePath != "" {
			return InvalidConfigurationError{
				Reason: "do not specify credentials_file_path together with access_key and secret_key",
			}
		}
		return nil
	}

	path := creds.CredentialsFilePath
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			conventional := filepath.Join(home, ".ec2", "aws_id")
			if _, err := os.Stat(conventional); err == nil {
				path = conventional
			}
		}
	}
	if path == "" {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return InvalidConfigurationError{Reason: fmt.Sprintf("opening credentials file: %s", err)}
	}
	defer file.Close() //nolint:errcheck

	scanner := bufio.NewScanner(file)
	var lines []string
	for scanner.Scan() && len(lines) < 2 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return InvalidConfigurationError{Reason: fmt.Sprintf("reading credentials file: %s", err)}
	}
	if len(lines) < 2 {
		return InvalidConfigurationError{
			Reason: fmt.Sprintf("credentials file %s must hold an access key line and a secret key line", path),
		}
	}

	creds.AccessKey = lines[0]
	creds.SecretKey = lines[1]
	return nil
}

func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{AccessKeyID: configCredentials.AccessKey, SecretAccessKey: configCredentials.SecretKey},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = credentials.NewCredentials(&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		})
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}
