package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opGetUpgradeHistory = "GetUpgradeHistory"

// GetUpgradeHistory API operation for Amazon Elasticsearch Service.
//
// Retrieves the complete history of the last 10 upgrades that were performed
// on the domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ResourceNotFoundException
//   * DisabledOperationException
//   * ValidationException
//   * InternalException
func (c *ESConfig) GetUpgradeHistory(input *GetUpgradeHistoryRequest) (*GetUpgradeHistoryResult, error) {
	return c.GetUpgradeHistoryWithContext(aws.BackgroundContext(), input)
}

// GetUpgradeHistoryWithContext is the same as GetUpgradeHistory with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) GetUpgradeHistoryWithContext(ctx aws.Context, input *GetUpgradeHistoryRequest, opts ...request.Option) (*GetUpgradeHistoryResult, error) {
	if input == nil {
		input = &GetUpgradeHistoryRequest{}
	}
	op := &request.Operation{
		Name:       opGetUpgradeHistory,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/upgradeDomain/{DomainName}/history",
	}
	out := &GetUpgradeHistoryResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opGetUpgradeStatus = "GetUpgradeStatus"

// GetUpgradeStatus API operation for Amazon Elasticsearch Service.
//
// Retrieves the latest status of the last upgrade or upgrade eligibility check
// that was performed on the domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ResourceNotFoundException
//   * DisabledOperationException
//   * ValidationException
//   * InternalException
func (c *ESConfig) GetUpgradeStatus(input *GetUpgradeStatusRequest) (*GetUpgradeStatusResult, error) {
	return c.GetUpgradeStatusWithContext(aws.BackgroundContext(), input)
}

// GetUpgradeStatusWithContext is the same as GetUpgradeStatus with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) GetUpgradeStatusWithContext(ctx aws.Context, input *GetUpgradeStatusRequest, opts ...request.Option) (*GetUpgradeStatusResult, error) {
	if input == nil {
		input = &GetUpgradeStatusRequest{}
	}
	op := &request.Operation{
		Name:       opGetUpgradeStatus,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/upgradeDomain/{DomainName}/status",
	}
	out := &GetUpgradeStatusResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opUpgradeElasticsearchDomain = "UpgradeElasticsearchDomain"

// UpgradeElasticsearchDomain API operation for Amazon Elasticsearch Service.
//
// Allows you to either upgrade your domain or perform an Upgrade eligibility
// check to a compatible Elasticsearch version.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ResourceNotFoundException
//   * ResourceAlreadyExistsException
//   * DisabledOperationException
//   * ValidationException
//   * InternalException
func (c *ESConfig) UpgradeElasticsearchDomain(input *UpgradeElasticsearchDomainRequest) (*UpgradeElasticsearchDomainResult, error) {
	return c.UpgradeElasticsearchDomainWithContext(aws.BackgroundContext(), input)
}

// UpgradeElasticsearchDomainWithContext is the same as UpgradeElasticsearchDomain with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) UpgradeElasticsearchDomainWithContext(ctx aws.Context, input *UpgradeElasticsearchDomainRequest, opts ...request.Option) (*UpgradeElasticsearchDomainResult, error) {
	if input == nil {
		input = &UpgradeElasticsearchDomainRequest{}
	}
	op := &request.Operation{
		Name:       opUpgradeElasticsearchDomain,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/upgradeDomain",
	}
	out := &UpgradeElasticsearchDomainResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the GetUpgradeHistory operation.
type GetUpgradeHistoryRequest struct {
	_ struct{} `type:"structure"`

	// The name of an Elasticsearch domain. Domain names are unique across the domains
	// owned by an account within an AWS region.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`

	// Set this value to limit the number of results returned.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Paginated APIs accepts NextToken input to returns next page results and provides
	// a NextToken output in the response which can be used by the client to retrieve
	// more results.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s GetUpgradeHistoryRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetUpgradeHistoryRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *GetUpgradeHistoryRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "GetUpgradeHistoryRequest"}
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
func (s *GetUpgradeHistoryRequest) SetDomainName(v string) *GetUpgradeHistoryRequest {
	s.DomainName = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *GetUpgradeHistoryRequest) SetMaxResults(v int64) *GetUpgradeHistoryRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *GetUpgradeHistoryRequest) SetNextToken(v string) *GetUpgradeHistoryRequest {
	s.NextToken = &v
	return s
}

// The result of a GetUpgradeHistory request.
type GetUpgradeHistoryResult struct {
	_ struct{} `type:"structure"`

	// A list of UpgradeHistory objects corresponding to each Upgrade or Upgrade
	// Eligibility Check performed on a domain returned as part of GetUpgradeHistoryResponse
	// object.
	UpgradeHistories []*UpgradeHistory `type:"list"`

	// Pagination token that needs to be supplied to the next call to get the next
	// page of results
	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s GetUpgradeHistoryResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetUpgradeHistoryResult) GoString() string {
	return s.String()
}

// SetUpgradeHistories sets the UpgradeHistories field's value to a copy of v.
func (s *GetUpgradeHistoryResult) SetUpgradeHistories(v []*UpgradeHistory) *GetUpgradeHistoryResult {
	s.UpgradeHistories = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *GetUpgradeHistoryResult) SetNextToken(v string) *GetUpgradeHistoryResult {
	s.NextToken = &v
	return s
}

// Container for the parameters to the GetUpgradeStatus operation.
type GetUpgradeStatusRequest struct {
	_ struct{} `type:"structure"`

	// The name of an Elasticsearch domain. Domain names are unique across the domains
	// owned by an account within an AWS region.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s GetUpgradeStatusRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetUpgradeStatusRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *GetUpgradeStatusRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "GetUpgradeStatusRequest"}
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
func (s *GetUpgradeStatusRequest) SetDomainName(v string) *GetUpgradeStatusRequest {
	s.DomainName = &v
	return s
}

// The result of a GetUpgradeStatus request.
type GetUpgradeStatusResult struct {
	_ struct{} `type:"structure"`

	// Represents one of 3 steps that an Upgrade or Upgrade Eligibility Check does
	// through: PreUpgradeCheck, Snapshot, Upgrade.
	UpgradeStep *string `type:"string" enum:"UpgradeStep"`

	// One of 4 statuses that a step can go through returned as part of the GetUpgradeStatusResponse
	// object.
	StepStatus *string `type:"string" enum:"UpgradeStatus"`

	// A string that describes the update briefly
	UpgradeName *string `type:"string"`
}

// String returns the string representation.
func (s GetUpgradeStatusResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetUpgradeStatusResult) GoString() string {
	return s.String()
}

// SetUpgradeStep sets the UpgradeStep field's value.
func (s *GetUpgradeStatusResult) SetUpgradeStep(v string) *GetUpgradeStatusResult {
	s.UpgradeStep = &v
	return s
}

// SetStepStatus sets the StepStatus field's value.
func (s *GetUpgradeStatusResult) SetStepStatus(v string) *GetUpgradeStatusResult {
	s.StepStatus = &v
	return s
}

// SetUpgradeName sets the UpgradeName field's value.
func (s *GetUpgradeStatusResult) SetUpgradeName(v string) *GetUpgradeStatusResult {
	s.UpgradeName = &v
	return s
}

// Container for the parameters to the UpgradeElasticsearchDomain operation.
type UpgradeElasticsearchDomainRequest struct {
	_ struct{} `type:"structure"`

	// The name of an Elasticsearch domain. Domain names are unique across the domains
	// owned by an account within an AWS region.
	//
	// DomainName is a required field
	DomainName *string `min:"3" type:"string" required:"true"`

	// The version of Elasticsearch that you intend to upgrade the domain to.
	//
	// TargetVersion is a required field
	TargetVersion *string `type:"string" required:"true"`

	// This flag, when set to True, indicates that an Upgrade Eligibility Check
	// needs to be performed. This will not actually perform the Upgrade.
	PerformCheckOnly *bool `type:"boolean"`
}

// String returns the string representation.
func (s UpgradeElasticsearchDomainRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s UpgradeElasticsearchDomainRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *UpgradeElasticsearchDomainRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "UpgradeElasticsearchDomainRequest"}
	if s.DomainName == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainName"))
	}
	if s.TargetVersion == nil {
		invalidParams.Add(request.NewErrParamRequired("TargetVersion"))
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
func (s *UpgradeElasticsearchDomainRequest) SetDomainName(v string) *UpgradeElasticsearchDomainRequest {
	s.DomainName = &v
	return s
}

// SetTargetVersion sets the TargetVersion field's value.
func (s *UpgradeElasticsearchDomainRequest) SetTargetVersion(v string) *UpgradeElasticsearchDomainRequest {
	s.TargetVersion = &v
	return s
}

// SetPerformCheckOnly sets the PerformCheckOnly field's value.
func (s *UpgradeElasticsearchDomainRequest) SetPerformCheckOnly(v bool) *UpgradeElasticsearchDomainRequest {
	s.PerformCheckOnly = &v
	return s
}

// The result of a UpgradeElasticsearchDomain request.
type UpgradeElasticsearchDomainResult struct {
	_ struct{} `type:"structure"`

	// The name of an Elasticsearch domain. Domain names are unique across the domains
	// owned by an account within an AWS region.
	DomainName *string `min:"3" type:"string"`

	// The version of Elasticsearch that you intend to upgrade the domain to.
	TargetVersion *string `type:"string"`

	// This flag, when set to True, indicates that an Upgrade Eligibility Check
	// needs to be performed. This will not actually perform the Upgrade.
	PerformCheckOnly *bool `type:"boolean"`
}

// String returns the string representation.
func (s UpgradeElasticsearchDomainResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s UpgradeElasticsearchDomainResult) GoString() string {
	return s.String()
}

// SetDomainName sets the DomainName field's value.
func (s *UpgradeElasticsearchDomainResult) SetDomainName(v string) *UpgradeElasticsearchDomainResult {
	s.DomainName = &v
	return s
}

// SetTargetVersion sets the TargetVersion field's value.
func (s *UpgradeElasticsearchDomainResult) SetTargetVersion(v string) *UpgradeElasticsearchDomainResult {
	s.TargetVersion = &v
	return s
}

// SetPerformCheckOnly sets the PerformCheckOnly field's value.
func (s *UpgradeElasticsearchDomainResult) SetPerformCheckOnly(v bool) *UpgradeElasticsearchDomainResult {
	s.PerformCheckOnly = &v
	return s
}
