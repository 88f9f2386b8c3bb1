package driver

import "github.com/aws/aws-sdk-go/aws/awserr"

// hasAWSErrorCode reports whether err is an AWS API error with the given
// code. EC2 signals "resource not visible yet" races through the
// *.NotFound family of codes.
func hasAWSErrorCode(err error, code string) bool {
	if aerr, ok := err.(awserr.Error); ok {
		return aerr.Code() == code
	}
	return false
}
