package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opCreateElasticsearchDomain = "CreateElasticsearchDomain"

// CreateElasticsearchDomain API operation for Amazon Elasticsearch Service.
//
// Creates a new Elasticsearch domain. For more information, see Creating Elasticsearch
// Domains (http://docs.aws.amazon.com/elasticsearch-service/latest/developerguide/es-createupdatedomains.html#es-createdomains)
// in the Amazon Elasticsearch Service Developer Guide.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * DisabledOperationException
//   * InternalException
//   * InvalidTypeException
//   * LimitExceededException
//   * ResourceAlreadyExistsException
//   * ValidationException
func (c *ESConfig) CreateElasticsearchDomain(input *CreateElasticsearchDomainRequest) (*CreateElasticsearchDomainResult, error) {
	return c.CreateElasticsearchDomainWithContext(aws.BackgroundContext(), input)
}

// CreateElasticsearchDomainWithContext is the same as CreateElasticsearchDomain with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) CreateElasticsearchDomainWithContext(ctx aws.Context, input *CreateElasticsearchDomainRequest, opts ...request.Option) (*CreateElasticsearchDomainResult, error) {
	if input == nil {
		input = &CreateElasticsearchDomainRequest{}
	}
	op := &request.Operation{
		Name:       opCreateElasticsearchDomain,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/domain",
	}
	out := &CreateElasticsearchDomainResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDeleteElasticsearchDomain = "DeleteElasticsearchDomain"

// DeleteElasticsearchDomain API operation for Amazon Elasticsearch Service.
//
// Permanently deletes the specified Elasticsearch domain and all of its data.
// Once a domain is deleted, it cannot be recovered.
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
func (c *ESConfig) DeleteElasticsearchDomain(input *DeleteElasticsearchDomainRequest) (*DeleteElasticsearchDomainResult, error) {
	return c.DeleteElasticsearchDomainWithContext(aws.BackgroundContext(), input)
}

// DeleteElasticsearchDomainWithContext is the same as DeleteElasticsearchDomain with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DeleteElasticsearchDomainWithContext(ctx aws.Context, input *DeleteElasticsearchDomainRequest, opts ...request.Option) (*DeleteElasticsearchDomainResult, error) {
	if input == nil {
		input = &DeleteElasticsearchDomainRequest{}
	}
	op := &request.Operation{
		Name:       opDeleteElasticsearchDomain,
		HTTPMethod: "DELETE",
		HTTPPath:   "/2015-01-01/es/domain/{DomainName}",
	}
	out := &DeleteElasticsearchDomainResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDescribeElasticsearchDomain = "DescribeElasticsearchDomain"

// DescribeElasticsearchDomain API operation for Amazon Elasticsearch Service.
//
// Returns domain configuration information about the specified Elasticsearch
// domain, including the domain ID, domain endpoint, and domain ARN.
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
func (c *ESConfig) DescribeElasticsearchDomain(input *DescribeElasticsearchDomainRequest) (*DescribeElasticsearchDomainResult, error) {
	return c.DescribeElasticsearchDomainWithContext(aws.BackgroundContext(), input)
}

// DescribeElasticsearchDomainWithContext is the same as DescribeElasticsearchDomain with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeElasticsearchDomainWithContext(ctx aws.Context, input *DescribeElasticsearchDomainRequest, opts ...request.Option) (*DescribeElasticsearchDomainResult, error) {
	if input == nil {
		input = &DescribeElasticsearchDomainRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeElasticsearchDomain,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/domain/{DomainName}",
	}
	out := &DescribeElasticsearchDomainResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDescribeElasticsearchDomainConfig = "DescribeElasticsearchDomainConfig"

// DescribeElasticsearchDomainConfig API operation for Amazon Elasticsearch Service.
//
// Provides cluster configuration information about the specified Elasticsearch
// domain, such as the state, creation date, update version, and update date
// for cluster options.
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
func (c *ESConfig) DescribeElasticsearchDomainConfig(input *DescribeElasticsearchDomainConfigRequest) (*DescribeElasticsearchDomainConfigResult, error) {
	return c.DescribeElasticsearchDomainConfigWithContext(aws.BackgroundContext(), input)
}

// DescribeElasticsearchDomainConfigWithContext is the same as DescribeElasticsearchDomainConfig with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeElasticsearchDomainConfigWithContext(ctx aws.Context, input *DescribeElasticsearchDomainConfigRequest, opts ...request.Option) (*DescribeElasticsearchDomainConfigResult, error) {
	if input == nil {
		input = &DescribeElasticsearchDomainConfigRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeElasticsearchDomainConfig,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/domain/{DomainName}/config",
	}
	out := &DescribeElasticsearchDomainConfigResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDescribeElasticsearchDomains = "DescribeElasticsearchDomains"

// DescribeElasticsearchDomains API operation for Amazon Elasticsearch Service.
//
// Returns domain configuration information about the specified Elasticsearch
// domains, including the domain ID, domain endpoint, and domain ARN.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ValidationException
func (c *ESConfig) DescribeElasticsearchDomains(input *DescribeElasticsearchDomainsRequest) (*DescribeElasticsearchDomainsResult, error) {
	return c.DescribeElasticsearchDomainsWithContext(aws.BackgroundContext(), input)
}

// DescribeElasticsearchDomainsWithContext is the same as DescribeElasticsearchDomains with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeElasticsearchDomainsWithContext(ctx aws.Context, input *DescribeElasticsearchDomainsRequest, opts ...request.Option) (*DescribeElasticsearchDomainsResult, error) {
	if input == nil {
		input = &DescribeElasticsearchDomainsRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeElasticsearchDomains,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/domain-info",
	}
	out := &DescribeElasticsearchDomainsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opListDomainNames = "ListDomainNames"

// ListDomainNames API operation for Amazon Elasticsearch Service.
//
// Returns the name of all Elasticsearch domains owned by the current user's
// account.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ValidationException
func (c *ESConfig) ListDomainNames(input *ListDomainNamesRequest) (*ListDomainNamesResult, error) {
	return c.ListDomainNamesWithContext(aws.BackgroundContext(), input)
}

// ListDomainNamesWithContext is the same as ListDomainNames with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListDomainNamesWithContext(ctx aws.Context, input *ListDomainNamesRequest, opts ...request.Option) (*ListDomainNamesResult, error) {
	if input == nil {
		input = &ListDomainNamesRequest{}
	}
	op := &request.Operation{
		Name:       opListDomainNames,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/domain",
	}
	out := &ListDomainNamesResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opUpdateElasticsearchDomainConfig = "UpdateElasticsearchDomainConfig"

// UpdateElasticsearchDomainConfig API operation for Amazon Elasticsearch Service.
//
// Modifies the cluster configuration of the specified Elasticsearch domain,
// setting as setting the instance type and the number of instances.
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
func (c *ESConfig) UpdateElasticsearchDomainConfig(input *UpdateElasticsearchDomainConfigRequest) (*UpdateElasticsearchDomainConfigResult, error) {
	return c.UpdateElasticsearchDomainConfigWithContext(aws.BackgroundContext(), input)
}

// UpdateElasticsearchDomainConfigWithContext is the same as UpdateElasticsearchDomainConfig with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) UpdateElasticsearchDomainConfigWithContext(ctx aws.Context, input *UpdateElasticsearchDomainConfigRequest, opts ...request.Option) (*UpdateElasticsearchDomainConfigResult, error) {
	if input == nil {
		input = &UpdateElasticsearchDomainConfigRequest{}
	}
	op := &request.Operation{
		Name:       opUpdateElasticsearchDomainConfig,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/domain/{DomainName}/config",
	}
	out := &UpdateElasticsearchDomainConfigResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the CreateElasticsearchDomain operation.
type CreateElasticsearchDomainRequest struct {
	_ struct{} `type:"structure"`

	// The name of the Elasticsearch domain that you are creating. Domain names
	// are unique across the domains owned by an account within an AWS region. Domain
	// names must start with a lowercase letter and can contain the following characters:
	// a-z (lowercase), 0-9, and - (hyphen).
	//
	// DomainName is a required field
	DomainName *string `min:"3" type:"string" required:"true"`

	// String of format X.Y to specify version for the Elasticsearch domain eg.
	// "1.5" or "2.3".
	ElasticsearchVersion *string `type:"string"`

	// Configuration options for an Elasticsearch domain. Specifies the instance
	// type and number of instances in the domain cluster.
	ElasticsearchClusterConfig *ElasticsearchClusterConfig `type:"structure"`

	// Options to enable, disable and specify the type and size of EBS storage volumes.
	EBSOptions *EBSOptions `type:"structure"`

	// IAM access policy as a JSON-formatted string.
	AccessPolicies *string `type:"string"`

	// Option to set time, in UTC format, of the daily automated snapshot. Default
	// value is 0 hours.
	SnapshotOptions *SnapshotOptions `type:"structure"`

	// Options to specify the subnets and security groups for VPC endpoint.
	VPCOptions *VPCOptions `type:"structure"`

	// Options to specify the Cognito user and identity pools for Kibana authentication.
	CognitoOptions *CognitoOptions `type:"structure"`

	// Specifies the Encryption At Rest Options.
	EncryptionAtRestOptions *EncryptionAtRestOptions `type:"structure"`

	// Specifies the NodeToNodeEncryptionOptions.
	NodeToNodeEncryptionOptions *NodeToNodeEncryptionOptions `type:"structure"`

	// Option to allow references to indices in an HTTP request body. Must be false
	// when configuring access to individual sub-resources. By default, the value
	// is true.
	AdvancedOptions map[string]*string `type:"map"`

	// Map of LogType and LogPublishingOption, each containing options to publish
	// a given type of Elasticsearch log.
	LogPublishingOptions map[string]*LogPublishingOption `type:"map"`

	// Options to specify configuration that will be applied to the domain endpoint.
	DomainEndpointOptions *DomainEndpointOptions `type:"structure"`

	// Specifies advanced security options.
	AdvancedSecurityOptions *AdvancedSecurityOptionsInput `type:"structure"`
}

// String returns the string representation.
func (s CreateElasticsearchDomainRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CreateElasticsearchDomainRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CreateElasticsearchDomainRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "CreateElasticsearchDomainRequest"}
	if s.DomainName == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainName"))
	}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}
	if s.CognitoOptions != nil {
		if err := s.CognitoOptions.Validate(); err != nil {
			invalidParams.AddNested("CognitoOptions", err.(request.ErrInvalidParams))
		}
	}
	if s.EncryptionAtRestOptions != nil {
		if err := s.EncryptionAtRestOptions.Validate(); err != nil {
			invalidParams.AddNested("EncryptionAtRestOptions", err.(request.ErrInvalidParams))
		}
	}
	if s.AdvancedSecurityOptions != nil {
		if err := s.AdvancedSecurityOptions.Validate(); err != nil {
			invalidParams.AddNested("AdvancedSecurityOptions", err.(request.ErrInvalidParams))
		}
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainName sets the DomainName field's value.
func (s *CreateElasticsearchDomainRequest) SetDomainName(v string) *CreateElasticsearchDomainRequest {
	s.DomainName = &v
	return s
}

// SetElasticsearchVersion sets the ElasticsearchVersion field's value.
func (s *CreateElasticsearchDomainRequest) SetElasticsearchVersion(v string) *CreateElasticsearchDomainRequest {
	s.ElasticsearchVersion = &v
	return s
}

// SetElasticsearchClusterConfig sets the ElasticsearchClusterConfig field's value.
func (s *CreateElasticsearchDomainRequest) SetElasticsearchClusterConfig(v *ElasticsearchClusterConfig) *CreateElasticsearchDomainRequest {
	s.ElasticsearchClusterConfig = v
	return s
}

// SetEBSOptions sets the EBSOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetEBSOptions(v *EBSOptions) *CreateElasticsearchDomainRequest {
	s.EBSOptions = v
	return s
}

// SetAccessPolicies sets the AccessPolicies field's value.
func (s *CreateElasticsearchDomainRequest) SetAccessPolicies(v string) *CreateElasticsearchDomainRequest {
	s.AccessPolicies = &v
	return s
}

// SetSnapshotOptions sets the SnapshotOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetSnapshotOptions(v *SnapshotOptions) *CreateElasticsearchDomainRequest {
	s.SnapshotOptions = v
	return s
}

// SetVPCOptions sets the VPCOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetVPCOptions(v *VPCOptions) *CreateElasticsearchDomainRequest {
	s.VPCOptions = v
	return s
}

// SetCognitoOptions sets the CognitoOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetCognitoOptions(v *CognitoOptions) *CreateElasticsearchDomainRequest {
	s.CognitoOptions = v
	return s
}

// SetEncryptionAtRestOptions sets the EncryptionAtRestOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetEncryptionAtRestOptions(v *EncryptionAtRestOptions) *CreateElasticsearchDomainRequest {
	s.EncryptionAtRestOptions = v
	return s
}

// SetNodeToNodeEncryptionOptions sets the NodeToNodeEncryptionOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetNodeToNodeEncryptionOptions(v *NodeToNodeEncryptionOptions) *CreateElasticsearchDomainRequest {
	s.NodeToNodeEncryptionOptions = v
	return s
}

// SetAdvancedOptions sets the AdvancedOptions field's value to a copy of v.
func (s *CreateElasticsearchDomainRequest) SetAdvancedOptions(v map[string]*string) *CreateElasticsearchDomainRequest {
	s.AdvancedOptions = copyMap(v)
	return s
}

// AddAdvancedOptionsEntry adds a single entry to AdvancedOptions. It returns a
// *DuplicateKeyError if key is already present.
func (s *CreateElasticsearchDomainRequest) AddAdvancedOptionsEntry(key string, value string) error {
	return addEntry(&s.AdvancedOptions, key, &value)
}

// ClearAdvancedOptionsEntries removes all entries from AdvancedOptions.
func (s *CreateElasticsearchDomainRequest) ClearAdvancedOptionsEntries() *CreateElasticsearchDomainRequest {
	s.AdvancedOptions = nil
	return s
}

// SetLogPublishingOptions sets the LogPublishingOptions field's value to a copy of v.
func (s *CreateElasticsearchDomainRequest) SetLogPublishingOptions(v map[string]*LogPublishingOption) *CreateElasticsearchDomainRequest {
	s.LogPublishingOptions = copyMap(v)
	return s
}

// AddLogPublishingOptionsEntry adds a single entry to LogPublishingOptions. It returns a
// *DuplicateKeyError if key is already present.
func (s *CreateElasticsearchDomainRequest) AddLogPublishingOptionsEntry(key string, value *LogPublishingOption) error {
	return addEntry(&s.LogPublishingOptions, key, value)
}

// ClearLogPublishingOptionsEntries removes all entries from LogPublishingOptions.
func (s *CreateElasticsearchDomainRequest) ClearLogPublishingOptionsEntries() *CreateElasticsearchDomainRequest {
	s.LogPublishingOptions = nil
	return s
}

// SetDomainEndpointOptions sets the DomainEndpointOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetDomainEndpointOptions(v *DomainEndpointOptions) *CreateElasticsearchDomainRequest {
	s.DomainEndpointOptions = v
	return s
}

// SetAdvancedSecurityOptions sets the AdvancedSecurityOptions field's value.
func (s *CreateElasticsearchDomainRequest) SetAdvancedSecurityOptions(v *AdvancedSecurityOptionsInput) *CreateElasticsearchDomainRequest {
	s.AdvancedSecurityOptions = v
	return s
}

// The result of a CreateElasticsearchDomain request.
type CreateElasticsearchDomainResult struct {
	_ struct{} `type:"structure"`

	// The status of the newly created Elasticsearch domain.
	DomainStatus *ElasticsearchDomainStatus `type:"structure"`
}

// String returns the string representation.
func (s CreateElasticsearchDomainResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CreateElasticsearchDomainResult) GoString() string {
	return s.String()
}

// SetDomainStatus sets the DomainStatus field's value.
func (s *CreateElasticsearchDomainResult) SetDomainStatus(v *ElasticsearchDomainStatus) *CreateElasticsearchDomainResult {
	s.DomainStatus = v
	return s
}

// Container for the parameters to the DeleteElasticsearchDomain operation.
type DeleteElasticsearchDomainRequest struct {
	_ struct{} `type:"structure"`

	// The name of the Elasticsearch domain that you want to permanently delete.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s DeleteElasticsearchDomainRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DeleteElasticsearchDomainRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DeleteElasticsearchDomainRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DeleteElasticsearchDomainRequest"}
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
func (s *DeleteElasticsearchDomainRequest) SetDomainName(v string) *DeleteElasticsearchDomainRequest {
	s.DomainName = &v
	return s
}

// The result of a DeleteElasticsearchDomain request.
type DeleteElasticsearchDomainResult struct {
	_ struct{} `type:"structure"`

	// The status of the Elasticsearch domain being deleted.
	DomainStatus *ElasticsearchDomainStatus `type:"structure"`
}

// String returns the string representation.
func (s DeleteElasticsearchDomainResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DeleteElasticsearchDomainResult) GoString() string {
	return s.String()
}

// SetDomainStatus sets the DomainStatus field's value.
func (s *DeleteElasticsearchDomainResult) SetDomainStatus(v *ElasticsearchDomainStatus) *DeleteElasticsearchDomainResult {
	s.DomainStatus = v
	return s
}

// Container for the parameters to the DescribeElasticsearchDomain operation.
type DescribeElasticsearchDomainRequest struct {
	_ struct{} `type:"structure"`

	// The name of the Elasticsearch domain for which you want information.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeElasticsearchDomainRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DescribeElasticsearchDomainRequest"}
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
func (s *DescribeElasticsearchDomainRequest) SetDomainName(v string) *DescribeElasticsearchDomainRequest {
	s.DomainName = &v
	return s
}

// The result of a DescribeElasticsearchDomain request.
type DescribeElasticsearchDomainResult struct {
	_ struct{} `type:"structure"`

	// The current status of the Elasticsearch domain.
	//
	// DomainStatus is a required field
	DomainStatus *ElasticsearchDomainStatus `type:"structure" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainResult) GoString() string {
	return s.String()
}

// SetDomainStatus sets the DomainStatus field's value.
func (s *DescribeElasticsearchDomainResult) SetDomainStatus(v *ElasticsearchDomainStatus) *DescribeElasticsearchDomainResult {
	s.DomainStatus = v
	return s
}

// Container for the parameters to the DescribeElasticsearchDomainConfig operation.
type DescribeElasticsearchDomainConfigRequest struct {
	_ struct{} `type:"structure"`

	// The Elasticsearch domain that you want to get information about.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainConfigRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainConfigRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeElasticsearchDomainConfigRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DescribeElasticsearchDomainConfigRequest"}
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
func (s *DescribeElasticsearchDomainConfigRequest) SetDomainName(v string) *DescribeElasticsearchDomainConfigRequest {
	s.DomainName = &v
	return s
}

// The result of a DescribeElasticsearchDomainConfig request.
type DescribeElasticsearchDomainConfigResult struct {
	_ struct{} `type:"structure"`

	// The configuration information of the domain requested in the DescribeElasticsearchDomainConfig
	// request.
	//
	// DomainConfig is a required field
	DomainConfig *ElasticsearchDomainConfig `type:"structure" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainConfigResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainConfigResult) GoString() string {
	return s.String()
}

// SetDomainConfig sets the DomainConfig field's value.
func (s *DescribeElasticsearchDomainConfigResult) SetDomainConfig(v *ElasticsearchDomainConfig) *DescribeElasticsearchDomainConfigResult {
	s.DomainConfig = v
	return s
}

// Container for the parameters to the DescribeElasticsearchDomains operation.
type DescribeElasticsearchDomainsRequest struct {
	_ struct{} `type:"structure"`

	// The Elasticsearch domains for which you want information.
	//
	// DomainNames is a required field
	DomainNames []*string `type:"list" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DescribeElasticsearchDomainsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DescribeElasticsearchDomainsRequest"}
	if s.DomainNames == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainNames"))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainNames sets the DomainNames field's value to a copy of v.
func (s *DescribeElasticsearchDomainsRequest) SetDomainNames(v []*string) *DescribeElasticsearchDomainsRequest {
	s.DomainNames = copySlice(v)
	return s
}

// The result of a DescribeElasticsearchDomains request.
type DescribeElasticsearchDomainsResult struct {
	_ struct{} `type:"structure"`

	// The status of the domains requested in the DescribeElasticsearchDomains request.
	//
	// DomainStatusList is a required field
	DomainStatusList []*ElasticsearchDomainStatus `type:"list" required:"true"`
}

// String returns the string representation.
func (s DescribeElasticsearchDomainsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeElasticsearchDomainsResult) GoString() string {
	return s.String()
}

// SetDomainStatusList sets the DomainStatusList field's value to a copy of v.
func (s *DescribeElasticsearchDomainsResult) SetDomainStatusList(v []*ElasticsearchDomainStatus) *DescribeElasticsearchDomainsResult {
	s.DomainStatusList = copySlice(v)
	return s
}

// Container for the parameters to the ListDomainNames operation.
type ListDomainNamesRequest struct {
	_ struct{} `type:"structure"`
}

// String returns the string representation.
func (s ListDomainNamesRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListDomainNamesRequest) GoString() string {
	return s.String()
}

// The result of a ListDomainNames request.
type ListDomainNamesResult struct {
	_ struct{} `type:"structure"`

	// List of Elasticsearch domain names.
	DomainNames []*DomainInfo `type:"list"`
}

// String returns the string representation.
func (s ListDomainNamesResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListDomainNamesResult) GoString() string {
	return s.String()
}

// SetDomainNames sets the DomainNames field's value to a copy of v.
func (s *ListDomainNamesResult) SetDomainNames(v []*DomainInfo) *ListDomainNamesResult {
	s.DomainNames = copySlice(v)
	return s
}

// Container for the parameters to the UpdateElasticsearchDomainConfig operation.
type UpdateElasticsearchDomainConfigRequest struct {
	_ struct{} `type:"structure"`

	// The name of the Elasticsearch domain that you are updating.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`

	// The type and number of instances to instantiate for the domain cluster.
	ElasticsearchClusterConfig *ElasticsearchClusterConfig `type:"structure"`

	// Specify the type and size of the EBS volume that you want to use.
	EBSOptions *EBSOptions `type:"structure"`

	// Option to set the time, in UTC format, for the daily automated snapshot.
	// Default value is 0 hours.
	SnapshotOptions *SnapshotOptions `type:"structure"`

	// Options to specify the subnets and security groups for VPC endpoint.
	VPCOptions *VPCOptions `type:"structure"`

	// Options to specify the Cognito user and identity pools for Kibana authentication.
	CognitoOptions *CognitoOptions `type:"structure"`

	// Modifies the advanced option to allow references to indices in an HTTP request
	// body. Must be false when configuring access to individual sub-resources.
	// By default, the value is true.
	AdvancedOptions map[string]*string `type:"map"`

	// IAM access policy as a JSON-formatted string.
	AccessPolicies *string `type:"string"`

	// Map of LogType and LogPublishingOption, each containing options to publish
	// a given type of Elasticsearch log.
	LogPublishingOptions map[string]*LogPublishingOption `type:"map"`

	// Options to specify configuration that will be applied to the domain endpoint.
	DomainEndpointOptions *DomainEndpointOptions `type:"structure"`

	// Specifies advanced security options.
	AdvancedSecurityOptions *AdvancedSecurityOptionsInput `type:"structure"`
}

// String returns the string representation.
func (s UpdateElasticsearchDomainConfigRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s UpdateElasticsearchDomainConfigRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *UpdateElasticsearchDomainConfigRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "UpdateElasticsearchDomainConfigRequest"}
	if s.DomainName == nil {
		invalidParams.Add(request.NewErrParamRequired("DomainName"))
	}
	if s.DomainName != nil && len(*s.DomainName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("DomainName", 3))
	}
	if s.CognitoOptions != nil {
		if err := s.CognitoOptions.Validate(); err != nil {
			invalidParams.AddNested("CognitoOptions", err.(request.ErrInvalidParams))
		}
	}
	if s.AdvancedSecurityOptions != nil {
		if err := s.AdvancedSecurityOptions.Validate(); err != nil {
			invalidParams.AddNested("AdvancedSecurityOptions", err.(request.ErrInvalidParams))
		}
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetDomainName sets the DomainName field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetDomainName(v string) *UpdateElasticsearchDomainConfigRequest {
	s.DomainName = &v
	return s
}

// SetElasticsearchClusterConfig sets the ElasticsearchClusterConfig field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetElasticsearchClusterConfig(v *ElasticsearchClusterConfig) *UpdateElasticsearchDomainConfigRequest {
	s.ElasticsearchClusterConfig = v
	return s
}

// SetEBSOptions sets the EBSOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetEBSOptions(v *EBSOptions) *UpdateElasticsearchDomainConfigRequest {
	s.EBSOptions = v
	return s
}

// SetSnapshotOptions sets the SnapshotOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetSnapshotOptions(v *SnapshotOptions) *UpdateElasticsearchDomainConfigRequest {
	s.SnapshotOptions = v
	return s
}

// SetVPCOptions sets the VPCOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetVPCOptions(v *VPCOptions) *UpdateElasticsearchDomainConfigRequest {
	s.VPCOptions = v
	return s
}

// SetCognitoOptions sets the CognitoOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetCognitoOptions(v *CognitoOptions) *UpdateElasticsearchDomainConfigRequest {
	s.CognitoOptions = v
	return s
}

// SetAdvancedOptions sets the AdvancedOptions field's value to a copy of v.
func (s *UpdateElasticsearchDomainConfigRequest) SetAdvancedOptions(v map[string]*string) *UpdateElasticsearchDomainConfigRequest {
	s.AdvancedOptions = copyMap(v)
	return s
}

// AddAdvancedOptionsEntry adds a single entry to AdvancedOptions. It returns a
// *DuplicateKeyError if key is already present.
func (s *UpdateElasticsearchDomainConfigRequest) AddAdvancedOptionsEntry(key string, value string) error {
	return addEntry(&s.AdvancedOptions, key, &value)
}

// ClearAdvancedOptionsEntries removes all entries from AdvancedOptions.
func (s *UpdateElasticsearchDomainConfigRequest) ClearAdvancedOptionsEntries() *UpdateElasticsearchDomainConfigRequest {
	s.AdvancedOptions = nil
	return s
}

// SetAccessPolicies sets the AccessPolicies field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetAccessPolicies(v string) *UpdateElasticsearchDomainConfigRequest {
	s.AccessPolicies = &v
	return s
}

// SetLogPublishingOptions sets the LogPublishingOptions field's value to a copy of v.
func (s *UpdateElasticsearchDomainConfigRequest) SetLogPublishingOptions(v map[string]*LogPublishingOption) *UpdateElasticsearchDomainConfigRequest {
	s.LogPublishingOptions = copyMap(v)
	return s
}

// AddLogPublishingOptionsEntry adds a single entry to LogPublishingOptions. It returns a
// *DuplicateKeyError if key is already present.
func (s *UpdateElasticsearchDomainConfigRequest) AddLogPublishingOptionsEntry(key string, value *LogPublishingOption) error {
	return addEntry(&s.LogPublishingOptions, key, value)
}

// ClearLogPublishingOptionsEntries removes all entries from LogPublishingOptions.
func (s *UpdateElasticsearchDomainConfigRequest) ClearLogPublishingOptionsEntries() *UpdateElasticsearchDomainConfigRequest {
	s.LogPublishingOptions = nil
	return s
}

// SetDomainEndpointOptions sets the DomainEndpointOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetDomainEndpointOptions(v *DomainEndpointOptions) *UpdateElasticsearchDomainConfigRequest {
	s.DomainEndpointOptions = v
	return s
}

// SetAdvancedSecurityOptions sets the AdvancedSecurityOptions field's value.
func (s *UpdateElasticsearchDomainConfigRequest) SetAdvancedSecurityOptions(v *AdvancedSecurityOptionsInput) *UpdateElasticsearchDomainConfigRequest {
	s.AdvancedSecurityOptions = v
	return s
}

// The result of a UpdateElasticsearchDomainConfig request.
type UpdateElasticsearchDomainConfigResult struct {
	_ struct{} `type:"structure"`

	// The status of the updated Elasticsearch domain.
	//
	// DomainConfig is a required field
	DomainConfig *ElasticsearchDomainConfig `type:"structure" required:"true"`
}

// String returns the string representation.
func (s UpdateElasticsearchDomainConfigResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s UpdateElasticsearchDomainConfigResult) GoString() string {
	return s.String()
}

// SetDomainConfig sets the DomainConfig field's value.
func (s *UpdateElasticsearchDomainConfigResult) SetDomainConfig(v *ElasticsearchDomainConfig) *UpdateElasticsearchDomainConfigResult {
	s.DomainConfig = v
	return s
}
