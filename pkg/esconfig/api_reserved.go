package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opDescribeReservedElasticsearchInstanceOfferings = "DescribeReservedElasticsearchInstanceOfferings"

// DescribeReservedElasticsearchInstanceOfferings API operation for Amazon Elasticsearch Service.
//
// Lists available reserved Elasticsearch instance offerings.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * ResourceNotFoundException
//   * ValidationException
//   * DisabledOperationException
//   * InternalException
func (c *ESConfig) DescribeReservedElasticsearchInstanceOfferings(input *DescribeReservedElasticsearchInstanceOfferingsRequest) (*DescribeReservedElasticsearchInstanceOfferingsResult, error) {
	return c.DescribeReservedElasticsearchInstanceOfferingsWithContext(aws.BackgroundContext(), input)
}

// DescribeReservedElasticsearchInstanceOfferingsWithContext is the same as DescribeReservedElasticsearchInstanceOfferings with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeReservedElasticsearchInstanceOfferingsWithContext(ctx aws.Context, input *DescribeReservedElasticsearchInstanceOfferingsRequest, opts ...request.Option) (*DescribeReservedElasticsearchInstanceOfferingsResult, error) {
	if input == nil {
		input = &DescribeReservedElasticsearchInstanceOfferingsRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeReservedElasticsearchInstanceOfferings,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/reservedInstanceOfferings",
	}
	out := &DescribeReservedElasticsearchInstanceOfferingsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opDescribeReservedElasticsearchInstances = "DescribeReservedElasticsearchInstances"

// DescribeReservedElasticsearchInstances API operation for Amazon Elasticsearch Service.
//
// Returns information about reserved Elasticsearch instances for this account.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * ResourceNotFoundException
//   * InternalException
//   * ValidationException
//   * DisabledOperationException
func (c *ESConfig) DescribeReservedElasticsearchInstances(input *DescribeReservedElasticsearchInstancesRequest) (*DescribeReservedElasticsearchInstancesResult, error) {
	return c.DescribeReservedElasticsearchInstancesWithContext(aws.BackgroundContext(), input)
}

// DescribeReservedElasticsearchInstancesWithContext is the same as DescribeReservedElasticsearchInstances with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) DescribeReservedElasticsearchInstancesWithContext(ctx aws.Context, input *DescribeReservedElasticsearchInstancesRequest, opts ...request.Option) (*DescribeReservedElasticsearchInstancesResult, error) {
	if input == nil {
		input = &DescribeReservedElasticsearchInstancesRequest{}
	}
	op := &request.Operation{
		Name:       opDescribeReservedElasticsearchInstances,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/es/reservedInstances",
	}
	out := &DescribeReservedElasticsearchInstancesResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opPurchaseReservedElasticsearchInstanceOffering = "PurchaseReservedElasticsearchInstanceOffering"

// PurchaseReservedElasticsearchInstanceOffering API operation for Amazon Elasticsearch Service.
//
// Allows you to purchase reserved Elasticsearch instances.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * ResourceNotFoundException
//   * ResourceAlreadyExistsException
//   * LimitExceededException
//   * DisabledOperationException
//   * ValidationException
//   * InternalException
func (c *ESConfig) PurchaseReservedElasticsearchInstanceOffering(input *PurchaseReservedElasticsearchInstanceOfferingRequest) (*PurchaseReservedElasticsearchInstanceOfferingResult, error) {
	return c.PurchaseReservedElasticsearchInstanceOfferingWithContext(aws.BackgroundContext(), input)
}

// PurchaseReservedElasticsearchInstanceOfferingWithContext is the same as PurchaseReservedElasticsearchInstanceOffering with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) PurchaseReservedElasticsearchInstanceOfferingWithContext(ctx aws.Context, input *PurchaseReservedElasticsearchInstanceOfferingRequest, opts ...request.Option) (*PurchaseReservedElasticsearchInstanceOfferingResult, error) {
	if input == nil {
		input = &PurchaseReservedElasticsearchInstanceOfferingRequest{}
	}
	op := &request.Operation{
		Name:       opPurchaseReservedElasticsearchInstanceOffering,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/es/purchaseReservedInstanceOffering",
	}
	out := &PurchaseReservedElasticsearchInstanceOfferingResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// Container for the parameters to the DescribeReservedElasticsearchInstanceOfferings operation.
type DescribeReservedElasticsearchInstanceOfferingsRequest struct {
	_ struct{} `type:"structure"`

	// The offering identifier filter value. Use this parameter to show only the
	// available offering that matches the specified reservation identifier.
	ReservedElasticsearchInstanceOfferingId *string `location:"querystring" locationName:"offeringId" type:"string"`

	// Set this value to limit the number of results returned. Value provided must
	// be greater than 0 and at most 100.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Paginated APIs accepts NextToken input to returns next page results and provides
	// a NextToken output in the response which can be used by the client to retrieve
	// more results.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s DescribeReservedElasticsearchInstanceOfferingsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeReservedElasticsearchInstanceOfferingsRequest) GoString() string {
	return s.String()
}

// SetReservedElasticsearchInstanceOfferingId sets the ReservedElasticsearchInstanceOfferingId field's value.
func (s *DescribeReservedElasticsearchInstanceOfferingsRequest) SetReservedElasticsearchInstanceOfferingId(v string) *DescribeReservedElasticsearchInstanceOfferingsRequest {
	s.ReservedElasticsearchInstanceOfferingId = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *DescribeReservedElasticsearchInstanceOfferingsRequest) SetMaxResults(v int64) *DescribeReservedElasticsearchInstanceOfferingsRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeReservedElasticsearchInstanceOfferingsRequest) SetNextToken(v string) *DescribeReservedElasticsearchInstanceOfferingsRequest {
	s.NextToken = &v
	return s
}

// The result of a DescribeReservedElasticsearchInstanceOfferings request.
type DescribeReservedElasticsearchInstanceOfferingsResult struct {
	_ struct{} `type:"structure"`

	// Provides an identifier to allow retrieval of paginated results.
	NextToken *string `type:"string"`

	// List of reserved Elasticsearch instance offerings
	ReservedElasticsearchInstanceOfferings []*ReservedElasticsearchInstanceOffering `type:"list"`
}

// String returns the string representation.
func (s DescribeReservedElasticsearchInstanceOfferingsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeReservedElasticsearchInstanceOfferingsResult) GoString() string {
	return s.String()
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeReservedElasticsearchInstanceOfferingsResult) SetNextToken(v string) *DescribeReservedElasticsearchInstanceOfferingsResult {
	s.NextToken = &v
	return s
}

// SetReservedElasticsearchInstanceOfferings sets the ReservedElasticsearchInstanceOfferings field's value to a copy of v.
func (s *DescribeReservedElasticsearchInstanceOfferingsResult) SetReservedElasticsearchInstanceOfferings(v []*ReservedElasticsearchInstanceOffering) *DescribeReservedElasticsearchInstanceOfferingsResult {
	s.ReservedElasticsearchInstanceOfferings = copySlice(v)
	return s
}

// Container for the parameters to the DescribeReservedElasticsearchInstances operation.
type DescribeReservedElasticsearchInstancesRequest struct {
	_ struct{} `type:"structure"`

	// The reserved instance identifier filter value. Use this parameter to show
	// only the reservation that matches the specified reserved Elasticsearch instance
	// ID.
	ReservedElasticsearchInstanceId *string `location:"querystring" locationName:"reservationId" type:"string"`

	// Set this value to limit the number of results returned. Value provided must
	// be greater than 0 and at most 100.
	MaxResults *int64 `location:"querystring" locationName:"maxResults" type:"integer"`

	// Paginated APIs accepts NextToken input to returns next page results and provides
	// a NextToken output in the response which can be used by the client to retrieve
	// more results.
	NextToken *string `location:"querystring" locationName:"nextToken" type:"string"`
}

// String returns the string representation.
func (s DescribeReservedElasticsearchInstancesRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeReservedElasticsearchInstancesRequest) GoString() string {
	return s.String()
}

// SetReservedElasticsearchInstanceId sets the ReservedElasticsearchInstanceId field's value.
func (s *DescribeReservedElasticsearchInstancesRequest) SetReservedElasticsearchInstanceId(v string) *DescribeReservedElasticsearchInstancesRequest {
	s.ReservedElasticsearchInstanceId = &v
	return s
}

// SetMaxResults sets the MaxResults field's value.
func (s *DescribeReservedElasticsearchInstancesRequest) SetMaxResults(v int64) *DescribeReservedElasticsearchInstancesRequest {
	s.MaxResults = &v
	return s
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeReservedElasticsearchInstancesRequest) SetNextToken(v string) *DescribeReservedElasticsearchInstancesRequest {
	s.NextToken = &v
	return s
}

// The result of a DescribeReservedElasticsearchInstances request.
type DescribeReservedElasticsearchInstancesResult struct {
	_ struct{} `type:"structure"`

	// Provides an identifier to allow retrieval of paginated results.
	NextToken *string `type:"string"`

	// List of reserved Elasticsearch instances.
	ReservedElasticsearchInstances []*ReservedElasticsearchInstance `type:"list"`
}

// String returns the string representation.
func (s DescribeReservedElasticsearchInstancesResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s DescribeReservedElasticsearchInstancesResult) GoString() string {
	return s.String()
}

// SetNextToken sets the NextToken field's value.
func (s *DescribeReservedElasticsearchInstancesResult) SetNextToken(v string) *DescribeReservedElasticsearchInstancesResult {
	s.NextToken = &v
	return s
}

// SetReservedElasticsearchInstances sets the ReservedElasticsearchInstances field's value to a copy of v.
func (s *DescribeReservedElasticsearchInstancesResult) SetReservedElasticsearchInstances(v []*ReservedElasticsearchInstance) *DescribeReservedElasticsearchInstancesResult {
	s.ReservedElasticsearchInstances = copySlice(v)
	return s
}

// Container for the parameters to the PurchaseReservedElasticsearchInstanceOffering operation.
type PurchaseReservedElasticsearchInstanceOfferingRequest struct {
	_ struct{} `type:"structure"`

	// The ID of the reserved Elasticsearch instance offering to purchase.
	//
	// ReservedElasticsearchInstanceOfferingId is a required field
	ReservedElasticsearchInstanceOfferingId *string `type:"string" required:"true"`

	// A customer-specified identifier to track this reservation.
	//
	// ReservationName is a required field
	ReservationName *string `min:"5" type:"string" required:"true"`

	// The number of Elasticsearch instances to reserve.
	InstanceCount *int64 `min:"1" type:"integer"`
}

// String returns the string representation.
func (s PurchaseReservedElasticsearchInstanceOfferingRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s PurchaseReservedElasticsearchInstanceOfferingRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *PurchaseReservedElasticsearchInstanceOfferingRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "PurchaseReservedElasticsearchInstanceOfferingRequest"}
	if s.ReservedElasticsearchInstanceOfferingId == nil {
		invalidParams.Add(request.NewErrParamRequired("ReservedElasticsearchInstanceOfferingId"))
	}
	if s.ReservationName == nil {
		invalidParams.Add(request.NewErrParamRequired("ReservationName"))
	}
	if s.ReservationName != nil && len(*s.ReservationName) < 5 {
		invalidParams.Add(request.NewErrParamMinLen("ReservationName", 5))
	}
	if s.InstanceCount != nil && *s.InstanceCount < 1 {
		invalidParams.Add(request.NewErrParamMinValue("InstanceCount", 1))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetReservedElasticsearchInstanceOfferingId sets the ReservedElasticsearchInstanceOfferingId field's value.
func (s *PurchaseReservedElasticsearchInstanceOfferingRequest) SetReservedElasticsearchInstanceOfferingId(v string) *PurchaseReservedElasticsearchInstanceOfferingRequest {
	s.ReservedElasticsearchInstanceOfferingId = &v
	return s
}

// SetReservationName sets the ReservationName field's value.
func (s *PurchaseReservedElasticsearchInstanceOfferingRequest) SetReservationName(v string) *PurchaseReservedElasticsearchInstanceOfferingRequest {
	s.ReservationName = &v
	return s
}

// SetInstanceCount sets the InstanceCount field's value.
func (s *PurchaseReservedElasticsearchInstanceOfferingRequest) SetInstanceCount(v int64) *PurchaseReservedElasticsearchInstanceOfferingRequest {
	s.InstanceCount = &v
	return s
}

// The result of a PurchaseReservedElasticsearchInstanceOffering request.
type PurchaseReservedElasticsearchInstanceOfferingResult struct {
	_ struct{} `type:"structure"`

	// Details of the reserved Elasticsearch instance which was purchased.
	ReservedElasticsearchInstanceId *string `type:"string"`

	// The customer-specified identifier used to track this reservation.
	ReservationName *string `min:"5" type:"string"`
}

// String returns the string representation.
func (s PurchaseReservedElasticsearchInstanceOfferingResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s PurchaseReservedElasticsearchInstanceOfferingResult) GoString() string {
	return s.String()
}

// SetReservedElasticsearchInstanceId sets the ReservedElasticsearchInstanceId field's value.
func (s *PurchaseReservedElasticsearchInstanceOfferingResult) SetReservedElasticsearchInstanceId(v string) *PurchaseReservedElasticsearchInstanceOfferingResult {
	s.ReservedElasticsearchInstanceId = &v
	return s
}

// SetReservationName sets the ReservationName field's value.
func (s *PurchaseReservedElasticsearchInstanceOfferingResult) SetReservationName(v string) *PurchaseReservedElasticsearchInstanceOfferingResult {
	s.ReservationName = &v
	return s
}
