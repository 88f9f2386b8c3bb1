package resources

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Image states reported by EC2
const (
	ImageAvailableState = "available"
)

// ImageDriver abstracts the API calls required to resolve a launch image
//
//counterfeiter:generate . ImageDriver
type ImageDriver interface {
	Select(ImageSelectorConfig) (Image, error)
}

// Image represents an AMI resource in EC2
type Image struct {
	ID       string
	Location string
	State    string
}

// ImageSelectorConfig resolves an image either from an explicit ID or from
// ownership/location constraints. When ImageID is set the constraints are
// ignored; config validation guarantees exactly one form is populated.
type ImageSelectorConfig struct {
	ImageID         string
	Owners          []string
	LocationPattern string
}

// NoMatchingImageError is returned when no available image satisfies the
// configured ownership and location constraints.
type NoMatchingImageError struct {
	Owners          []string
	LocationPattern string
}

func (e NoMatchingImageError) Error() string {
	return "no available images match constraints"
}
