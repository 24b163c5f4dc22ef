package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opDescribeElasticsearchInstanceTypeLimits = "DescribeElasticsearchInstanceTypeLimits"

// DescribeElasticsearchInstanceTypeLimits API operation for Amazon Elasticsearch Service.
//
// Describe Elasticsearch Limits for a given InstanceType and ElasticsearchVersion.
// When modifying existing Domain, specify the DomainName to know what Limits
// are supported for modifying.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * InvalidTypeException
//   * LimitExceededException
//   * ResourceNotFoundException
//   * ValidationException
func (c *ESConfig) DescribeElasticsearchInstanceTypeLimits(input *DescribeElasticsearchInstanceTypeLimitsRequest) (*DescribeElasticsearchInstanceTypeLimitsResult, error) {
	return c.DescribeElasticsearchInstanceTypeLimitsWithContext(aws.BackgroundContext(), input)
}

// DescribeElasticsearchInstanceTypeLimitsWithContext is the same as DescribeElasticsearchInstanceTypeLimits with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeElasticsearchInstanceTypeLimitsWithContext(ctx aws.Context, input *DescribeElasticsearchInstanceTypeLimitsRequest, opts ...request.Option) (*DescribeElasticsearchInstanceTypeLimitsResult, error) {
	if input == nil {
		input = &DescribeElasticsearchInstanceTypeLimitsRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeElasticsearchInstanceTypeLimits,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/instanceTypeLimits/{ElasticsearchVersion}/{InstanceType}",
	}
	out := &DescribeElasticsearchInstanceTypeLimitsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opGetCompatibleElasticsearchVersions = "GetCompatibleElasticsearchVersions"

// GetCompatibleElasticsearchVersions API operation for Amazon Elasticsearch Service.
//
// Returns a list of upgrade compatible Elastisearch versions. You can optionally
// pass a DomainName to get all upgrade compatible Elasticsearch versions for
// that specific domain.
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
func (c *ESConfig) GetCompatibleElasticsearchVersions(input *GetCompatibleElasticsearchVersionsRequest) (*GetCompatibleElasticsearchVersionsResult, error) {
	return c.GetCompatibleElasticsearchVersionsWithContext(aws.BackgroundContext(), input)
}

// GetCompatibleElasticsearchVersionsWithContext is the same as GetCompatibleElasticsearchVersions with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) GetCompatibleElasticsearchVersionsWithContext(ctx aws.Context, input *GetCompatibleElasticsearchVersionsRequest, opts ...request.Option) (*GetCompatibleElasticsearchVersionsResult, error) {
	if input == nil {
		input = &GetCompatibleElasticsearchVersionsRequest{}
	}
	op := &request.Operation{
		Name:       opGetCompatibleElasticsearchVersions,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/compatibleVersions",
	}
	out := &GetCompatibleElasticsearchVersionsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opListElasticsearchInstanceTypes = "ListElasticsearchInstanceTypes"

// ListElasticsearchInstanceTypes API operation for Amazon Elasticsearch Service.
//
// List all Elasticsearch instance types that are supported for given ElasticsearchVersion
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
func (c *ESConfig) ListElasticsearchInstanceTypes(input *ListElasticsearchInstanceTypesRequest) (*ListElasticsearchInstanceTypesResult, error) {
	return c.ListElasticsearchInstanceTypesWithContext(aws.BackgroundContext(), input)
}

// ListElasticsearchInstanceTypesWithContext is the same as ListElasticsearchInstanceTypes with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListElasticsearchInstanceTypesWithContext(ctx aws.Context, input *ListElasticsearchInstanceTypesRequest, opts ...request.Option) (*ListElasticsearchInstanceTypesResult, error) {
	if input == nil {
		input = &ListElasticsearchInstanceTypesRequest{}
	}
	op := &request.Operation{
		Name:       opListElasticsearchInstanceTypes,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/instanceTypes/{ElasticsearchVersion}",
	}
	out := &ListElasticsearchInstanceTypesResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opListElasticsearchVersions = "ListElasticsearchVersions"

// ListElasticsearchVersions API operation for Amazon Elasticsearch Service.
//
// List all supported Elasticsearch versions
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
func (c *ESConfig) ListElasticsearchVersions(input *ListElasticsearchVersionsRequest) (*ListElasticsearchVersionsResult, error) {
	return c.ListElasticsearchVersionsWithContext(aws.BackgroundContext(), input)
}

// ListElasticsearchVersionsWithContext is the same as ListElasticsearchVersions with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListElasticsearchVersionsWithContext(ctx aws.Context, input *ListElasticsearchVersionsRequest, opts ...request.Option) (*ListElasticsearchVersionsResult, error) {
	if input == nil {
		input = &ListElasticsearchVersionsRequest{}
	}
	op := &request.Operation{
		Name:       opListElasticsearchVersions,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/versions",
	}
	out := &ListElasticsearchVersionsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the DescribeElasticsearchInstanceTypeLimits operation.
type DescribeElasticsearchInstanceTypeLimitsRequest struct {
	_ struct{} `type:"structure"`

	// DomainName represents the name of the Domain that we are trying to modify.
	// This should be present only if we are querying for Elasticsearch Limits for
	// existing domain.
	DomainName *string `location:"querystring" locationName:"domainName" min:"3" type:"string"`

	// The instance type for an Elasticsearch cluster for which Elasticsearch Limits
	// are needed.
	//
	// InstanceType is a required field
	InstanceType *string `location:"uri" locationName:"InstanceType" type:"string" required:"true" enum:"ESPartitionInstanceType"`

	// Version of Elasticsearch for which Limits are needed.
	//
	// ElasticsearchVersion is a required field
	ElasticsearchVersion *string `location:"uri" locationName:"ElasticsearchVersion" type:"string" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchInstanceTypeLimitsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchInstanceTypeLimitsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeElasticsearchInstanceTypeLimitsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DescribeElasticsearchInstanceTypeLimitsRequest"}
	if s.InstanceType == nil {
		invalidParams.Add(request.NewErrParamRequired("InstanceType"))
	}
	if s.ElasticsearchVersion == nil {
		invalidParams.Add(request.NewErrParamRequired("ElasticsearchVersion"))
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
func (s *DescribeElasticsearchInstanceTypeLimitsRequest) SetDomainName(v string) *DescribeElasticsearchInstanceTypeLimitsRequest {
	s.DomainName = &v
	return s
}

// SetInstanceType sets the InstanceType field's value.
func (s *DescribeElasticsearchInstanceTypeLimitsRequest) SetInstanceType(v string) *DescribeElasticsearchInstanceTypeLimitsRequest {
	s.InstanceType = &v
	return s
}

// SetElasticsearchVersion sets the ElasticsearchVersion field's value.
func (s *DescribeElasticsearchInstanceTypeLimitsRequest) SetElasticsearchVersion(v string) *DescribeElasticsearchInstanceTypeLimitsRequest {
	s.ElasticsearchVersion = &v
	return s
}

// The result of a DescribeElasticsearchInstanceTypeLimits request.
type DescribeElasticsearchInstanceTypeLimitsResult struct {
	_ struct{} `type:"structure"`

	// Map of Role of the Instance and Limits that are applicable. Role performed
	// by given Instance in Elasticsearch can be one of the following:
//
	//   * data: If the given InstanceType is used as data node
//
	//   * master: If the given InstanceType is used as master node
//
	//   * ultra_warm: If the given InstanceType is used as warm node
	LimitsByRole map[string]*Limits `type:"map"`
}

// String returns the string representation.
func (s DescribeElasticsearchInstanceTypeLimitsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchInstanceTypeLimitsResult) GoString() string {
	return s.String()
}

// SetLimitsByRole sets the LimitsByRole field's value to a copy of v.
func (s *DescribeElasticsearchInstanceTypeLimitsResult) SetLimitsByRole(v map[string]*Limits) *DescribeElasticsearchInstanceTypeLimitsResult {
	s.LimitsByRole = copyMap(v)
	return s
}

// AddLimitsByRoleEntry adds a single entry to LimitsByRole. It returns a
// *DuplicateKeyError if key is already present.
func (s *DescribeElasticsearchInstanceTypeLimitsResult) AddLimitsByRoleEntry(key string, value *Limits) error {
	return addEntry(&s.LimitsByRole, key, value)
}

// ClearLimitsByRoleEntries removes all entries from LimitsByRole.
func (s *DescribeElasticsearchInstanceTypeLimitsResult) ClearLimitsByRoleEntries() *DescribeElasticsearchInstanceTypeLimitsResult {
	s.LimitsByRole = nil
	return s
}

// Container for the parameters to the GetCompatibleElasticsearchVersions operation.
type GetCompatibleElasticsearchVersionsRequest struct {
	_ struct{} `type:"structure"`

	// The name of an Elasticsearch domain. Domain names are unique across the domains
	// owned by an account within an AWS region.
	DomainName *string `location:"querystring" locationName:"domainName" min:"3" type:"string"`
}

// String returns the string representation.
func (s GetCompatibleElasticsearchVersionsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetCompatibleElasticsearchVersionsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *GetCompatibleElasticsearchVersionsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "GetCompatibleElasticsearchVersionsRequest"}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainName sets the DomainName field's value.
func (s *GetCompatibleElasticsearchVersionsRequest) SetDomainName(v string) *GetCompatibleElasticsearchVersionsRequest {
	s.DomainName = &v
	return s
}

// The result of a GetCompatibleElasticsearchVersions request.
type GetCompatibleElasticsearchVersionsResult struct {
	_ struct{} `type:"structure"`

	// A map of compatible Elasticsearch versions returned as part of the GetCompatibleElasticsearchVersions
	// operation.
	CompatibleElasticsearchVersions []*CompatibleVersionsMap `type:"list"`
}

// String returns the string representation.
func (s GetCompatibleElasticsearchVersionsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s GetCompatibleElasticsearchVersionsResult) GoString() string {
	return s.String()
}

// SetCompatibleElasticsearchVersions sets the CompatibleElasticsearchVersions field's value to a copy of v.
func (s *GetCompatibleElasticsearchVersionsResult) SetCompatibleElasticsearchVersions(v []*CompatibleVersionsMap) *GetCompatibleElasticsearchVersionsResult {
	s.CompatibleElasticsearchVersions = copySlice(v)
	return s
}

// Container for the parameters to the ListElasticsearchInstanceTypes operation.
type ListElasticsearchInstanceTypesRequest struct {
	_ struct{} `type:"structure"`

	// Version of Elasticsearch for which list of supported elasticsearch instance
	// types are needed.
	//
	// ElasticsearchVersion is a required field
	ElasticsearchVersion *string `location:"uri" locationName:"ElasticsearchVersion" type:"string" required:"true"`

	// DomainName represents the name of the Domain that we are trying to modify.
	// This should be present only if we are querying for list of available Elasticsearch
	// instance types when modifying existing domain.
	DomainName *string `location:"querystring" locationName:"domainName" min:"3" type:"string"`

	// Set this value to limit the number of results returned. Value provided must
	// be greater than 0 and at most 100.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Paginated APIs accepts NextToken input to returns next page results and provides
	// a NextToken output in the response which can be used by the client to retrieve
	// more results.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s ListElasticsearchInstanceTypesRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListElasticsearchInstanceTypesRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ListElasticsearchInstanceTypesRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "ListElasticsearchInstanceTypesRequest"}
	if s.ElasticsearchVersion == nil {
		invalidParams.Add(request.NewErrParamRequired("ElasticsearchVersion"))
	}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetElasticsearchVersion sets the ElasticsearchVersion field's value.
func (s *ListElasticsearchInstanceTypesRequest) SetElasticsearchVersion(v string) *ListElasticsearchInstanceTypesRequest {
	s.ElasticsearchVersion = &v
	return s
}

// SetDomainName sets the DomainName field's value.
func (s *ListElasticsearchInstanceTypesRequest) SetDomainName(v string) *ListElasticsearchInstanceTypesRequest {
	s.DomainName = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListElasticsearchInstanceTypesRequest) SetMaxResults(v int64) *ListElasticsearchInstanceTypesRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListElasticsearchInstanceTypesRequest) SetNextToken(v string) *ListElasticsearchInstanceTypesRequest {
	s.NextToken = &v
	return s
}

// The result of a ListElasticsearchInstanceTypes request.
type ListElasticsearchInstanceTypesResult struct {
	_ struct{} `type:"structure"`

	// List of instance types supported by Amazon Elasticsearch service for given
	// ElasticsearchVersion
	ElasticsearchInstanceTypes []*string `type:"list"`

	// In case if there are more results available NextToken would be present, make
	// further request to the same API with received NextToken to paginate remaining
	// results.
	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s ListElasticsearchInstanceTypesResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListElasticsearchInstanceTypesResult) GoString() string {
	return s.String()
}

// SetElasticsearchInstanceTypes sets the ElasticsearchInstanceTypes field's value to a copy of v.
func (s *ListElasticsearchInstanceTypesResult) SetElasticsearchInstanceTypes(v []*string) *ListElasticsearchInstanceTypesResult {
	s.ElasticsearchInstanceTypes = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListElasticsearchInstanceTypesResult) SetNextToken(v string) *ListElasticsearchInstanceTypesResult {
	s.NextToken = &v
	return s
}

// Container for the parameters to the ListElasticsearchVersions operation.
type ListElasticsearchVersionsRequest struct {
	_ struct{} `type:"structure"`

	// Set this value to limit the number of results returned. Value provided must
	// be greater than 0 and at most 100.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Paginated APIs accepts NextToken input to returns next page results and provides
	// a NextToken output in the response which can be used by the client to retrieve
	// more results.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s ListElasticsearchVersionsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListElasticsearchVersionsRequest) GoString() string {
	return s.String()
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListElasticsearchVersionsRequest) SetMaxResults(v int64) *ListElasticsearchVersionsRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListElasticsearchVersionsRequest) SetNextToken(v string) *ListElasticsearchVersionsRequest {
	s.NextToken = &v
	return s
}

// The result of a ListElasticsearchVersions request.
type ListElasticsearchVersionsResult struct {
	_ struct{} `type:"structure"`

	// List of supported elastic search versions.
	ElasticsearchVersions []*string `type:"list"`

	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s ListElasticsearchVersionsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListElasticsearchVersionsResult) GoString() string {
	return s.String()
}

// SetElasticsearchVersions sets the ElasticsearchVersions field's value to a copy of v.
func (s *ListElasticsearchVersionsResult) SetElasticsearchVersions(v []*string) *ListElasticsearchVersionsResult {
	s.ElasticsearchVersions = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListElasticsearchVersionsResult) SetNextToken(v string) *ListElasticsearchVersionsResult {
	s.NextToken = &v
	return s
}
