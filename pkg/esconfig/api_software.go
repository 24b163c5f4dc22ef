package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opCancelElasticsearchServiceSoftwareUpdate = "CancelElasticsearchServiceSoftwareUpdate"

// CancelElasticsearchServiceSoftwareUpdate API operation for Amazon Elasticsearch Service.
//
// Cancels a scheduled service software update for an Amazon ES domain. You
// can only perform this operation before the AutomatedUpdateDate and when
// the UpdateStatus is in the PENDING_UPDATE state.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * ValidationException
func (c *ESConfig) CancelElasticsearchServiceSoftwareUpdate(input *CancelElasticsearchServiceSoftwareUpdateRequest) (*CancelElasticsearchServiceSoftwareUpdateResult, error) {
	return c.CancelElasticsearchServiceSoftwareUpdateWithContext(aws.BackgroundContext(), input)
}

// CancelElasticsearchServiceSoftwareUpdateWithContext is the same as CancelElasticsearchServiceSoftwareUpdate with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) CancelElasticsearchServiceSoftwareUpdateWithContext(ctx aws.Context, input *CancelElasticsearchServiceSoftwareUpdateRequest, opts ...request.Option) (*CancelElasticsearchServiceSoftwareUpdateResult, error) {
	if input == nil {
		input = &CancelElasticsearchServiceSoftwareUpdateRequest{}
	}
	op := &request.Operation{
		Name:       opCancelElasticsearchServiceSoftwareUpdate,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/serviceSoftwareUpdate/cancel",
	}
	out := &CancelElasticsearchServiceSoftwareUpdateResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opStartElasticsearchServiceSoftwareUpdate = "StartElasticsearchServiceSoftwareUpdate"

// StartElasticsearchServiceSoftwareUpdate API operation for Amazon Elasticsearch Service.
//
// Schedules a service software update for an Amazon ES domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * ValidationException
func (c *ESConfig) StartElasticsearchServiceSoftwareUpdate(input *StartElasticsearchServiceSoftwareUpdateRequest) (*StartElasticsearchServiceSoftwareUpdateResult, error) {
	return c.StartElasticsearchServiceSoftwareUpdateWithContext(aws.BackgroundContext(), input)
}

// StartElasticsearchServiceSoftwareUpdateWithContext is the same as StartElasticsearchServiceSoftwareUpdate with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) StartElasticsearchServiceSoftwareUpdateWithContext(ctx aws.Context, input *StartElasticsearchServiceSoftwareUpdateRequest, opts ...request.Option) (*StartElasticsearchServiceSoftwareUpdateResult, error) {
	if input == nil {
		input = &StartElasticsearchServiceSoftwareUpdateRequest{}
	}
	op := &request.Operation{
		Name:       opStartElasticsearchServiceSoftwareUpdate,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/serviceSoftwareUpdate/start",
	}
	out := &StartElasticsearchServiceSoftwareUpdateResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the CancelElasticsearchServiceSoftwareUpdate operation.
type CancelElasticsearchServiceSoftwareUpdateRequest struct {
	_ struct{} `type:"structure"`

	// The name of the domain that you want to stop the latest service software update
	// on.
	//
	// DomainName is a required field
	DomainName *string `min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s CancelElasticsearchServiceSoftwareUpdateRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CancelElasticsearchServiceSoftwareUpdateRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CancelElasticsearchServiceSoftwareUpdateRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "CancelElasticsearchServiceSoftwareUpdateRequest"}
	if s.DomainName == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainName"))
	}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainName sets the DomainName field's value.
func (s *CancelElasticsearchServiceSoftwareUpdateRequest) SetDomainName(v string) *CancelElasticsearchServiceSoftwareUpdateRequest {
	s.DomainName = &v
	return s
}

// The result of a CancelElasticsearchServiceSoftwareUpdate request.
type CancelElasticsearchServiceSoftwareUpdateResult struct {
	_ struct{} `type:"structure"`

	// The current status of the Elasticsearch service software update.
	ServiceSoftwareOptions *ServiceSoftwareOptions `type:"structure"`
}

// String returns the string representation.
func (s CancelElasticsearchServiceSoftwareUpdateResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CancelElasticsearchServiceSoftwareUpdateResult) GoString() string {
	return s.String()
}

// SetServiceSoftwareOptions sets the ServiceSoftwareOptions field's value.
func (s *CancelElasticsearchServiceSoftwareUpdateResult) SetServiceSoftwareOptions(v *ServiceSoftwareOptions) *CancelElasticsearchServiceSoftwareUpdateResult {
	s.ServiceSoftwareOptions = v
	return s
}

// Container for the parameters to the StartElasticsearchServiceSoftwareUpdate operation.
type StartElasticsearchServiceSoftwareUpdateRequest struct {
	_ struct{} `type:"structure"`

	// The name of the domain that you want to update to the latest service software.
	//
	// DomainName is a required field
	DomainName *string `min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s StartElasticsearchServiceSoftwareUpdateRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s StartElasticsearchServiceSoftwareUpdateRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *StartElasticsearchServiceSoftwareUpdateRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "StartElasticsearchServiceSoftwareUpdateRequest"}
	if s.DomainName == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainName"))
	}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainName sets the DomainName field's value.
func (s *StartElasticsearchServiceSoftwareUpdateRequest) SetDomainName(v string) *StartElasticsearchServiceSoftwareUpdateRequest {
	s.DomainName = &v
	return s
}

// The result of a StartElasticsearchServiceSoftwareUpdate request.
type StartElasticsearchServiceSoftwareUpdateResult struct {
	_ struct{} `type:"structure"`

	// The current status of the Elasticsearch service software update.
	ServiceSoftwareOptions *ServiceSoftwareOptions `type:"structure"`
}

// String returns the string representation.
func (s StartElasticsearchServiceSoftwareUpdateResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s StartElasticsearchServiceSoftwareUpdateResult) GoString() string {
	return s.String()
}

// SetServiceSoftwareOptions sets the ServiceSoftwareOptions field's value.
func (s *StartElasticsearchServiceSoftwareUpdateResult) SetServiceSoftwareOptions(v *ServiceSoftwareOptions) *StartElasticsearchServiceSoftwareUpdateResult {
	s.ServiceSoftwareOptions = v
	return s
}
