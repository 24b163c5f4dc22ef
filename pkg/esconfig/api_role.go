package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opDeleteElasticsearchServiceRole = "DeleteElasticsearchServiceRole"

// DeleteElasticsearchServiceRole API operation for Amazon Elasticsearch Service.
//
// Deletes the service-linked role that Elasticsearch Service uses to manage
// and maintain VPC domains. Role deletion will fail if any existing VPC domains
// use the role. You must delete any such Elasticsearch domains before deleting
// the role.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ValidationException
func (c *ESConfig) DeleteElasticsearchServiceRole(input *DeleteElasticsearchServiceRoleRequest) error {
	return c.DeleteElasticsearchServiceRoleWithContext(aws.BackgroundContext(), input)
}

// DeleteElasticsearchServiceRoleWithContext is the same as DeleteElasticsearchServiceRole with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DeleteElasticsearchServiceRoleWithContext(ctx aws.Context, input *DeleteElasticsearchServiceRoleRequest, opts ...request.Option) error {
	if input == nil {
		input = &DeleteElasticsearchServiceRoleRequest{}
	}
	op := &request.Operation{
		Name:       opDeleteElasticsearchServiceRole,
		HTTPMethod: "DELETE",
		HTTPPath:   "/2015-01-01/es/role",
	}
	return c.send(ctx, op, input, nil, opts...)
}

// Container for the parameters to the DeleteElasticsearchServiceRole operation.
type DeleteElasticsearchServiceRoleRequest struct {
	_ struct{} `type:"structure"`
}

// String returns the string representation.
func (s DeleteElasticsearchServiceRoleRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DeleteElasticsearchServiceRoleRequest) GoString() string {
	return s.String()
}
