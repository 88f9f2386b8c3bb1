package driver

import (
	"fmt"
	"io"
	"log"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"ec2-latent-worker/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

var _ resources.ImageDriver = &SDKImageDriver{}

// Sort-key levels for image candidates. The level is uniform across the
// whole candidate set and can only coarsen while scanning: numeric capture
// group, then lexical capture group, then the full image location.
const (
	sortByNumericKey = iota
	sortByAlphaKey
	sortByLocation
)

// SDKImageDriver resolves a launch image from an explicit ID or from
// ownership/location-pattern constraints
type SDKImageDriver struct {
	ec2Client ec2iface.EC2API
	logger    *log.Logger
}

// NewImageDriver creates an SDKImageDriver for resolving AMIs in EC2
func NewImageDriver(logDest io.Writer, ec2Client ec2iface.EC2API) *SDKImageDriver {
	logger := log.New(logDest, "SDKImageDriver ", log.LstdFlags)

	return &SDKImageDriver{
		ec2Client: ec2Client,
		logger:    logger,
	}
}

type imageCandidate struct {
	numericKey int64
	alphaKey   string
	image      resources.Image
}

// Select fetches the explicitly configured image, or enumerates the images
// reachable under the ownership constraints, keeps the available ones whose
// location matches the configured pattern, sorts them ascending and picks
// the last: the selection policy is "latest/highest wins".
func (d *SDKImageDriver) Select(selectorConfig resources.ImageSelectorConfig) (resources.Image, error) {
	if selectorConfig.ImageID != "" {
		return d.describeImage(selectorConfig.ImageID)
	}

	describeOutput, err := d.ec2Client.DescribeImages(&ec2.DescribeImagesInput{
		Owners: aws.StringSlice(selectorConfig.Owners),
	})
	if err != nil {
		return resources.Image{}, fmt.Errorf("describing images: %s", err)
	}

	var pattern *regexp.Regexp
	if selectorConfig.LocationPattern != "" {
		// validated at configuration time; anchored to match from the
		// start of the location
		pattern = regexp.MustCompile("^(?:" + selectorConfig.LocationPattern + ")")
	}

	level := sortByNumericKey
	if pattern == nil {
		level = sortByLocation
	}

	var candidates []imageCandidate
	for _, sdkImage := range describeOutput.Images {
		image := imageFromSDK(sdkImage)
		if image.State != resources.ImageAvailableState {
			continue
		}

		candidate := imageCandidate{image: image}
		if pattern != nil {
			match := pattern.FindStringSubmatch(image.Location)
			if match == nil {
				continue
			}
			if level < sortByLocation {
				if len(match) < 2 {
					level = sortByLocation
				} else {
					candidate.alphaKey = match[1]
					if level == sortByNumericKey {
						numericKey, err := strconv.ParseInt(match[1], 10, 64)
						if err != nil {
							level = sortByAlphaKey
						} else {
							candidate.numericKey = numericKey
						}
					}
				}
			}
		}
		candidates = append(candidates, candidate)
	}

	if len(candidates) == 0 {
		return resources.Image{}, resources.NoMatchingImageError{
			Owners:          selectorConfig.Owners,
			LocationPattern: selectorConfig.LocationPattern,
		}
	}

	if level != sortByNumericKey {
		d.logger.Printf("sorting images at level %d\n", level)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidateLess(candidates[i], candidates[j], level)
	})

	descriptions := make([]string, len(candidates))
	for i, candidate := range candidates {
		descriptions[i] = fmt.Sprintf("%s (%s)", candidate.image.ID, candidate.image.Location)
	}
	d.logger.Printf("sorted images (last is chosen): %s\n", strings.Join(descriptions, ", "))

	return candidates[len(candidates)-1].image, nil
}

func candidateLess(a, b imageCandidate, level int) bool {
	if level == sortByNumericKey && a.numericKey != b.numericKey {
		return a.numericKey < b.numericKey
	}
	if level <= sortByAlphaKey && a.alphaKey != b.alphaKey {
		return a.alphaKey < b.alphaKey
	}
	if a.image.Location != b.image.Location {
		return a.image.Location < b.image.Location
	}
	return a.image.ID < b.image.ID
}

func (d *SDKImageDriver) describeImage(imageID string) (resources.Image, error) {
	describeOutput, err := d.ec2Client.DescribeImages(&ec2.DescribeImagesInput{
		ImageIds: []*string{aws.String(imageID)},
	})
	if err != nil {
		if hasAWSErrorCode(err, "InvalidAMIID.NotFound") {
			return resources.Image{}, resources.NotFoundError{Kind: "image", ID: imageID}
		}
		return resources.Image{}, fmt.Errorf("describing image %s: %s", imageID, err)
	}
	if len(describeOutput.Images) == 0 {
		return resources.Image{}, resources.NotFoundError{Kind: "image", ID: imageID}
	}

	return imageFromSDK(describeOutput.Images[0]), nil
}

func imageFromSDK(sdkImage *ec2.Image) resources.Image {
	return resources.Image{
		ID:       aws.StringValue(sdkImage.ImageId),
		Location: aws.StringValue(sdkImage.ImageLocation),
		State:    aws.StringValue(sdkImage.State),
	}
}
