package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opAssociatePackage = "AssociatePackage"

// AssociatePackage API operation for Amazon Elasticsearch Service.
//
// Associates a package with an Amazon ES domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
//   * ConflictException
func (c *ESConfig) AssociatePackage(input *AssociatePackageRequest) (*AssociatePackageResult, error) {
	return c.AssociatePackageWithContext(aws.BackgroundContext(), input)
}

// AssociatePackageWithContext is the same as AssociatePackage with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) AssociatePackageWithContext(ctx aws.Context, input *AssociatePackageRequest, opts ...request.Option) (*AssociatePackageResult, error) {
	if input == nil {
		input = &AssociatePackageRequest{}
	}
	op := &request.Operation{
		Name:       opAssociatePackage,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/packages/associate/{PackageID}/{DomainName}",
	}
	out := &AssociatePackageResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opCreatePackage = "CreatePackage"

// CreatePackage API operation for Amazon Elasticsearch Service.
//
// Create a package for use with Amazon ES domains.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * LimitExceededException
//   * InvalidTypeException
//   * ResourceAlreadyExistsException
//   * AccessDeniedException
//   * ValidationException
func (c *ESConfig) CreatePackage(input *CreatePackageRequest) (*CreatePackageResult, error) {
	return c.CreatePackageWithContext(aws.BackgroundContext(), input)
}

// CreatePackageWithContext is the same as CreatePackage with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) CreatePackageWithContext(ctx aws.Context, input *CreatePackageRequest, opts ...request.Option) (*CreatePackageResult, error) {
	if input == nil {
		input = &CreatePackageRequest{}
	}
	op := &request.Operation{
		Name:       opCreatePackage,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/packages",
	}
	out := &CreatePackageResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDeletePackage = "DeletePackage"

// DeletePackage API operation for Amazon Elasticsearch Service.
//
// Delete the package.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
//   * ConflictException
func (c *ESConfig) DeletePackage(input *DeletePackageRequest) (*DeletePackageResult, error) {
	return c.DeletePackageWithContext(aws.BackgroundContext(), input)
}

// DeletePackageWithContext is the same as DeletePackage with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DeletePackageWithContext(ctx aws.Context, input *DeletePackageRequest, opts ...request.Option) (*DeletePackageResult, error) {
	if input == nil {
		input = &DeletePackageRequest{}
	}
	op := &request.Operation{
		Name:       opDeletePackage,
		HTTPMethod: "DELETE",
		HTTPPath:   "/2015-01-01/packages/{PackageID}",
	}
	out := &DeletePackageResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDescribePackages = "DescribePackages"

// DescribePackages API operation for Amazon Elasticsearch Service.
//
// Describes all packages available to Amazon ES. Includes options for filtering,
// limiting the number of results, and pagination.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
func (c *ESConfig) DescribePackages(input *DescribePackagesRequest) (*DescribePackagesResult, error) {
	return c.DescribePackagesWithContext(aws.BackgroundContext(), input)
}

// DescribePackagesWithContext is the same as DescribePackages with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribePackagesWithContext(ctx aws.Context, input *DescribePackagesRequest, opts ...request.Option) (*DescribePackagesResult, error) {
	if input == nil {
		input = &DescribePackagesRequest{}
	}
	op := &request.Operation{
		Name:       opDescribePackages,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/packages/describe",
	}
	out := &DescribePackagesResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDissociatePackage = "DissociatePackage"

// DissociatePackage API operation for Amazon Elasticsearch Service.
//
// Dissociates a package from the Amazon ES domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
//   * ConflictException
func (c *ESConfig) DissociatePackage(input *DissociatePackageRequest) (*DissociatePackageResult, error) {
	return c.DissociatePackageWithContext(aws.BackgroundContext(), input)
}

// DissociatePackageWithContext is the same as DissociatePackage with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DissociatePackageWithContext(ctx aws.Context, input *DissociatePackageRequest, opts ...request.Option) (*DissociatePackageResult, error) {
	if input == nil {
		input = &DissociatePackageRequest{}
	}
	op := &request.Operation{
		Name:       opDissociatePackage,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/packages/dissociate/{PackageID}/{DomainName}",
	}
	out := &DissociatePackageResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opListDomainsForPackage = "ListDomainsForPackage"

// ListDomainsForPackage API operation for Amazon Elasticsearch Service.
//
// Lists all Amazon ES domains associated with the package.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
func (c *ESConfig) ListDomainsForPackage(input *ListDomainsForPackageRequest) (*ListDomainsForPackageResult, error) {
	return c.ListDomainsForPackageWithContext(aws.BackgroundContext(), input)
}

// ListDomainsForPackageWithContext is the same as ListDomainsForPackage with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListDomainsForPackageWithContext(ctx aws.Context, input *ListDomainsForPackageRequest, opts ...request.Option) (*ListDomainsForPackageResult, error) {
	if input == nil {
		input = &ListDomainsForPackageRequest{}
	}
	op := &request.Operation{
		Name:       opListDomainsForPackage,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/packages/{PackageID}/domains",
	}
	out := &ListDomainsForPackageResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opListPackagesForDomain = "ListPackagesForDomain"

// ListPackagesForDomain API operation for Amazon Elasticsearch Service.
//
// Lists all packages associated with the Amazon ES domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * InternalException
//   * ResourceNotFoundException
//   * AccessDeniedException
//   * ValidationException
func (c *ESConfig) ListPackagesForDomain(input *ListPackagesForDomainRequest) (*ListPackagesForDomainResult, error) {
	return c.ListPackagesForDomainWithContext(aws.BackgroundContext(), input)
}

// ListPackagesForDomainWithContext is the same as ListPackagesForDomain with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListPackagesForDomainWithContext(ctx aws.Context, input *ListPackagesForDomainRequest, opts ...request.Option) (*ListPackagesForDomainResult, error) {
	if input == nil {
		input = &ListPackagesForDomainRequest{}
	}
	op := &request.Operation{
		Name:       opListPackagesForDomain,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/domain/{DomainName}/packages",
	}
	out := &ListPackagesForDomainResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the AssociatePackage operation.
type AssociatePackageRequest struct {
	_ struct{} `type:"structure"`

	// Internal ID of the package that you want to associate with a domain. Use DescribePackages
	// to find this value.
	//
	// PackageID is a required field
	PackageID *string `location:"uri" locationName:"PackageID" type:"string" required:"true"`

	// Name of the domain that you want to associate the package with.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s AssociatePackageRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s AssociatePackageRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *AssociatePackageRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "AssociatePackageRequest"}
	if s.PackageID == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageID"))
	}
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

// SetPackageID sets the PackageID field's value.
func (s *AssociatePackageRequest) SetPackageID(v string) *AssociatePackageRequest {
	s.PackageID = &v
	return s
}

// SetDomainName sets the DomainName field's value.
func (s *AssociatePackageRequest) SetDomainName(v string) *AssociatePackageRequest {
	s.DomainName = &v
	return s
}

// The result of a AssociatePackage request.
type AssociatePackageResult struct {
	_ struct{} `type:"structure"`

	// DomainPackageDetails
	DomainPackageDetails *DomainPackageDetails `type:"structure"`
}

// String returns the string representation.
func (s AssociatePackageResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s AssociatePackageResult) GoString() string {
	return s.String()
}

// SetDomainPackageDetails sets the DomainPackageDetails field's value.
func (s *AssociatePackageResult) SetDomainPackageDetails(v *DomainPackageDetails) *AssociatePackageResult {
	s.DomainPackageDetails = v
	return s
}

// Container for the parameters to the CreatePackage operation.
type CreatePackageRequest struct {
	_ struct{} `type:"structure"`

	// Unique identifier for the package.
	//
	// PackageName is a required field
	PackageName *string `min:"3" type:"string" required:"true"`

	// Type of package. Currently supports only TXT-DICTIONARY.
	//
	// PackageType is a required field
	PackageType *string `type:"string" required:"true" enum:"PackageType"`

	// Description of the package.
	PackageDescription *string `type:"string"`

	// The customer S3 location PackageSource for importing the package.
	//
	// PackageSource is a required field
	PackageSource *PackageSource `type:"structure" required:"true"`
}

// String returns the string representation.
func (s CreatePackageRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CreatePackageRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *CreatePackageRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "CreatePackageRequest"}
	if s.PackageName == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageName"))
	}
	if s.PackageType == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageType"))
	}
	if s.PackageSource == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageSource"))
	}
	if s.PackageName != nil && len(*s.PackageName) < 3 {
		invalidParams.Add(request.NewErrParamMinLen("PackageName", 3))
	}
	if s.PackageSource != nil {
		if err := s.PackageSource.Validate(); err != nil {
			invalidParams.AddNested("PackageSource", err.(request.ErrInvalidParams))
		}
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetPackageName sets the PackageName field's value.
func (s *CreatePackageRequest) SetPackageName(v string) *CreatePackageRequest {
	s.PackageName = &v
	return s
}

// SetPackageType sets the PackageType field's value.
func (s *CreatePackageRequest) SetPackageType(v string) *CreatePackageRequest {
	s.PackageType = &v
	return s
}

// SetPackageDescription sets the PackageDescription field's value.
func (s *CreatePackageRequest) SetPackageDescription(v string) *CreatePackageRequest {
	s.PackageDescription = &v
	return s
}

// SetPackageSource sets the PackageSource field's value.
func (s *CreatePackageRequest) SetPackageSource(v *PackageSource) *CreatePackageRequest {
	s.PackageSource = v
	return s
}

// The result of a CreatePackage request.
type CreatePackageResult struct {
	_ struct{} `type:"structure"`

	// Information about the package PackageDetails.
	PackageDetails *PackageDetails `type:"structure"`
}

// String returns the string representation.
func (s CreatePackageResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s CreatePackageResult) GoString() string {
	return s.String()
}

// SetPackageDetails sets the PackageDetails field's value.
func (s *CreatePackageResult) SetPackageDetails(v *PackageDetails) *CreatePackageResult {
	s.PackageDetails = v
	return s
}

// Container for the parameters to the DeletePackage operation.
type DeletePackageRequest struct {
	_ struct{} `type:"structure"`

	// Internal ID of the package that you want to delete. Use DescribePackages to
	// find this value.
	//
	// PackageID is a required field
	PackageID *string `location:"uri" locationName:"PackageID" type:"string" required:"true"`
}

// String returns the string representation.
func (s DeletePackageRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DeletePackageRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DeletePackageRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DeletePackageRequest"}
	if s.PackageID == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageID"))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetPackageID sets the PackageID field's value.
func (s *DeletePackageRequest) SetPackageID(v string) *DeletePackageRequest {
	s.PackageID = &v
	return s
}

// The result of a DeletePackage request.
type DeletePackageResult struct {
	_ struct{} `type:"structure"`

	// PackageDetails
	PackageDetails *PackageDetails `type:"structure"`
}

// String returns the string representation.
func (s DeletePackageResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DeletePackageResult) GoString() string {
	return s.String()
}

// SetPackageDetails sets the PackageDetails field's value.
func (s *DeletePackageResult) SetPackageDetails(v *PackageDetails) *DeletePackageResult {
	s.PackageDetails = v
	return s
}

// Container for the parameters to the DescribePackages operation.
type DescribePackagesRequest struct {
	_ struct{} `type:"structure"`

	// Only returns packages that match the DescribePackagesFilterList values.
	Filters []*DescribePackagesFilter `type:"list"`

	// Limits results to a maximum number of packages.
	MaxResults *int64 `type:"integer"`

	// Used for pagination. Only necessary if a previous API call includes a non-null
	// NextToken value. If provided, returns results for the next page.
	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s DescribePackagesRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribePackagesRequest) GoString() string {
	return s.String()
}

// SetFilters sets the Filters field's value to a copy of v.
func (s *DescribePackagesRequest) SetFilters(v []*DescribePackagesFilter) *DescribePackagesRequest {
	s.Filters = copySlice(v)
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *DescribePackagesRequest) SetMaxResults(v int64) *DescribePackagesRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribePackagesRequest) SetNextToken(v string) *DescribePackagesRequest {
	s.NextToken = &v
	return s
}

// The result of a DescribePackages request.
type DescribePackagesResult struct {
	_ struct{} `type:"structure"`

	// List of PackageDetails objects.
	PackageDetailsList []*PackageDetails `type:"list"`

	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s DescribePackagesResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribePackagesResult) GoString() string {
	return s.String()
}

// SetPackageDetailsList sets the PackageDetailsList field's value to a copy of v.
func (s *DescribePackagesResult) SetPackageDetailsList(v []*PackageDetails) *DescribePackagesResult {
	s.PackageDetailsList = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribePackagesResult) SetNextToken(v string) *DescribePackagesResult {
	s.NextToken = &v
	return s
}

// Container for the parameters to the DissociatePackage operation.
type DissociatePackageRequest struct {
	_ struct{} `type:"structure"`

	// Internal ID of the package that you want to associate with a domain. Use DescribePackages
	// to find this value.
	//
	// PackageID is a required field
	PackageID *string `location:"uri" locationName:"PackageID" type:"string" required:"true"`

	// Name of the domain that you want to associate the package with.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`
}

// String returns the string representation.
func (s DissociatePackageRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DissociatePackageRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *DissociatePackageRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "DissociatePackageRequest"}
	if s.PackageID == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageID"))
	}
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

// SetPackageID sets the PackageID field's value.
func (s *DissociatePackageRequest) SetPackageID(v string) *DissociatePackageRequest {
	s.PackageID = &v
	return s
}

// SetDomainName sets the DomainName field's value.
func (s *DissociatePackageRequest) SetDomainName(v string) *DissociatePackageRequest {
	s.DomainName = &v
	return s
}

// The result of a DissociatePackage request.
type DissociatePackageResult struct {
	_ struct{} `type:"structure"`

	// DomainPackageDetails
	DomainPackageDetails *DomainPackageDetails `type:"structure"`
}

// String returns the string representation.
func (s DissociatePackageResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DissociatePackageResult) GoString() string {
	return s.String()
}

// SetDomainPackageDetails sets the DomainPackageDetails field's value.
func (s *DissociatePackageResult) SetDomainPackageDetails(v *DomainPackageDetails) *DissociatePackageResult {
	s.DomainPackageDetails = v
	return s
}

// Container for the parameters to the ListDomainsForPackage operation.
type ListDomainsForPackageRequest struct {
	_ struct{} `type:"structure"`

	// The package for which to list domains.
	//
	// PackageID is a required field
	PackageID *string `location:"uri" locationName:"PackageID" type:"string" required:"true"`

	// Limits results to a maximum number of domains.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Used for pagination. Only necessary if a previous API call includes a non-null
	// NextToken value. If provided, returns results for the next page.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s ListDomainsForPackageRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListDomainsForPackageRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ListDomainsForPackageRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "ListDomainsForPackageRequest"}
	if s.PackageID == nil {
		invalidParams.Add(request.NewErrParamRequired("PackageID"))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetPackageID sets the PackageID field's value.
func (s *ListDomainsForPackageRequest) SetPackageID(v string) *ListDomainsForPackageRequest {
	s.PackageID = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListDomainsForPackageRequest) SetMaxResults(v int64) *ListDomainsForPackageRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDomainsForPackageRequest) SetNextToken(v string) *ListDomainsForPackageRequest {
	s.NextToken = &v
	return s
}

// The result of a ListDomainsForPackage request.
type ListDomainsForPackageResult struct {
	_ struct{} `type:"structure"`

	// List of DomainPackageDetails objects.
	DomainPackageDetailsList []*DomainPackageDetails `type:"list"`

	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s ListDomainsForPackageResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListDomainsForPackageResult) GoString() string {
	return s.String()
}

// SetDomainPackageDetailsList sets the DomainPackageDetailsList field's value to a copy of v.
func (s *ListDomainsForPackageResult) SetDomainPackageDetailsList(v []*DomainPackageDetails) *ListDomainsForPackageResult {
	s.DomainPackageDetailsList = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListDomainsForPackageResult) SetNextToken(v string) *ListDomainsForPackageResult {
	s.NextToken = &v
	return s
}

// Container for the parameters to the ListPackagesForDomain operation.
type ListPackagesForDomainRequest struct {
	_ struct{} `type:"structure"`

	// The name of the domain for which you want to list associated packages.
	//
	// DomainName is a required field
	DomainName *string `location:"uri" locationName:"DomainName" min:"3" type:"string" required:"true"`

	// Limits results to a maximum number of packages.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Used for pagination. Only necessary if a previous API call includes a non-null
	// NextToken value. If provided, returns results for the next page.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s ListPackagesForDomainRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListPackagesForDomainRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ListPackagesForDomainRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "ListPackagesForDomainRequest"}
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
func (s *ListPackagesForDomainRequest) SetDomainName(v string) *ListPackagesForDomainRequest {
	s.DomainName = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *ListPackagesForDomainRequest) SetMaxResults(v int64) *ListPackagesForDomainRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListPackagesForDomainRequest) SetNextToken(v string) *ListPackagesForDomainRequest {
	s.NextToken = &v
	return s
}

// The result of a ListPackagesForDomain request.
type ListPackagesForDomainResult struct {
	_ struct{} `type:"structure"`

	// List of DomainPackageDetails objects.
	DomainPackageDetailsList []*DomainPackageDetails `type:"list"`

	NextToken *string `type:"string"`
}

// String returns the string representation.
func (s ListPackagesForDomainResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListPackagesForDomainResult) GoString() string {
	return s.String()
}

// SetDomainPackageDetailsList sets the DomainPackageDetailsList field's value to a copy of v.
func (s *ListPackagesForDomainResult) SetDomainPackageDetailsList(v []*DomainPackageDetails) *ListPackagesForDomainResult {
	s.DomainPackageDetailsList = copySlice(v)
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *ListPackagesForDomainResult) SetNextToken(v string) *ListPackagesForDomainResult {
	s.NextToken = &v
	return s
}
