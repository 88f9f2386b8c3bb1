package resources

// Spot request status codes reported by EC2
const (
	SpotPendingEvaluationState  = "pending-evaluation"
	SpotPendingFulfillmentState = "pending-fulfillment"
	SpotFulfilledState          = "fulfilled"
	SpotPriceTooLowState        = "price-too-low"
)

// SpotProductDescription is the platform the spot price history is queried
// for; worker instances run in a VPC.
const SpotProductDescription = "Linux/UNIX (Amazon VPC)"

// SpotRequestPending reports whether a spot request status code still awaits
// a terminal resolution.
func SpotRequestPending(state string) bool {
	return state == SpotPendingEvaluationState || state == SpotPendingFulfillmentState
}

// SpotDriver abstracts the API calls required to buy spot capacity
//
//counterfeiter:generate . SpotDriver
type SpotDriver interface {
	PriceHistory(instanceType, availabilityZone, productDescription string) ([]float64, error)
	Request(price float64, launchConfig LaunchConfiguration) (SpotRequest, error)
	Describe(requestID string) (SpotRequest, error)
}

// SpotRequest represents a spot instance request in EC2. InstanceID is only
// populated once the request has been fulfilled.
type SpotRequest struct {
	ID         string
	State      string
	InstanceID string
}
