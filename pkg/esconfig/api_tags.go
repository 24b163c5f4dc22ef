package esconfig

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
)

const opAddTags = "AddTags"

// AddTags API operation for Amazon Elasticsearch Service.
//
// Attaches tags to an existing Elasticsearch domain. Tags are a set of case-sensitive
// key value pairs. An Elasticsearch domain may have up to 10 tags.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * LimitExceededException
//   * ValidationException
//   * InternalException
func (c *ESConfig) AddTags(input *AddTagsRequest) error {
	return c.AddTagsWithContext(aws.BackgroundContext(), input)
}

// AddTagsWithContext is the same as AddTags with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) AddTagsWithContext(ctx aws.Context, input *AddTagsRequest, opts ...request.Option) error {
	if input == nil {
		input = &AddTagsRequest{}
	}
	op := &request.Operation{
		Name:       opAddTags,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/tags",
	}
	return c.send(ctx, op, input, nil, opts...)
}

const opListTags = "ListTags"

// ListTags API operation for Amazon Elasticsearch Service.
//
// Returns all tags for the given Elasticsearch domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ResourceNotFoundException
//   * ValidationException
//   * InternalException
func (c *ESConfig) ListTags(input *ListTagsRequest) (*ListTagsResult, error) {
	return c.ListTagsWithContext(aws.BackgroundContext(), input)
}

// ListTagsWithContext is the same as ListTags with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) ListTagsWithContext(ctx aws.Context, input *ListTagsRequest, opts ...request.Option) (*ListTagsResult, error) {
	if input == nil {
		input = &ListTagsRequest{}
	}
	op := &request.Operation{
		Name:       opListTags,
		HTTPMethod: "GET",
		HTTPPath:   "/2015-01-01/tags/",
	}
	out := &ListTagsResult{}
	if err := c.send(ctx, op, input, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

const opRemoveTags = "RemoveTags"

// RemoveTags API operation for Amazon Elasticsearch Service.
//
// Removes the specified set of tags from the specified Elasticsearch domain.
//
// Returns awserr.Error for service API and SDK errors. Use runtime type assertions
// with awserr.Error's Code and Message methods to get detailed information about
// the error.
//
// Returned Error Types:
//   * BaseException
//   * ValidationException
//   * InternalException
func (c *ESConfig) RemoveTags(input *RemoveTagsRequest) error {
	return c.RemoveTagsWithContext(aws.BackgroundContext(), input)
}

// RemoveTagsWithContext is the same as RemoveTags with the addition of
// the ability to pass a context and additional request options.
//
// The context must be non-nil and will be used for request cancellation. If
// the context is nil a panic will occur.
func (c *ESConfig) RemoveTagsWithContext(ctx aws.Context, input *RemoveTagsRequest, opts ...request.Option) error {
	if input == nil {
		input = &RemoveTagsRequest{}
	}
	op := &request.Operation{
		Name:       opRemoveTags,
		HTTPMethod: "POST",
		HTTPPath:   "/2015-01-01/tags-removal",
	}
	return c.send(ctx, op, input, nil, opts...)
}

// Container for the parameters to the AddTags operation.
type AddTagsRequest struct {
	_ struct{} `type:"structure"`

	// Specify the ARN for which you want to add the tags.
	//
	// ARN is a required field
	ARN *string `type:"string" required:"true"`

	// List of Tag that need to be added for the Elasticsearch domain.
	//
	// TagList is a required field
	TagList []*Tag `type:"list" required:"true"`
}

// String returns the string representation.
func (s AddTagsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s AddTagsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *AddTagsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "AddTagsRequest"}
	if s.ARN == nil {
		invalidParams.Add(request.NewErrParamRequired("ARN"))
	}
	if s.TagList == nil {
		invalidParams.Add(request.NewErrParamRequired("TagList"))
	}
	if s.TagList != nil {
		for i, v := range s.TagList {
			if v == nil {
				continue
			}
			if err := v.Validate(); err != nil {
				invalidParams.AddNested(fmt.Sprintf("%s[%v]", "TagList", i), err.(request.ErrInvalidParams))
			}
		}
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetARN sets the ARN field's value.
func (s *AddTagsRequest) SetARN(v string) *AddTagsRequest {
	s.ARN = &v
	return s
}

// SetTagList sets the TagList field's value to a copy of v.
func (s *AddTagsRequest) SetTagList(v []*Tag) *AddTagsRequest {
	s.TagList = copySlice(v)
	return s
}

// Container for the parameters to the ListTags operation.
type ListTagsRequest struct {
	_ struct{} `type:"structure"`

	// Specify the ARN for the Elasticsearch domain to which the tags are attached
	// that you want to view.
	//
	// ARN is a required field
	ARN *string `location:"querystring" locationName:"arn" type:"string" required:"true"`
}

// String returns the string representation.
func (s ListTagsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListTagsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *ListTagsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "ListTagsRequest"}
	if s.ARN == nil {
		invalidParams.Add(request.NewErrParamRequired("ARN"))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetARN sets the ARN field's value.
func (s *ListTagsRequest) SetARN(v string) *ListTagsRequest {
	s.ARN = &v
	return s
}

// The result of a ListTags request.
type ListTagsResult struct {
	_ struct{} `type:"structure"`

	// List of Tag for the requested Elasticsearch domain.
	TagList []*Tag `type:"list"`
}

// String returns the string representation.
func (s ListTagsResult) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s ListTagsResult) GoString() string {
	return s.String()
}

// SetTagList sets the TagList field's value to a copy of v.
func (s *ListTagsResult) SetTagList(v []*Tag) *ListTagsResult {
	s.TagList = copySlice(v)
	return s
}

// Container for the parameters to the RemoveTags operation.
type RemoveTagsRequest struct {
	_ struct{} `type:"structure"`

	// Specifies the ARN for the Elasticsearch domain from which you want to delete
	// the specified tags.
	//
	// ARN is a required field
	ARN *string `type:"string" required:"true"`

	// Specifies the TagKey list which you want to remove from the Elasticsearch
	// domain.
	//
	// TagKeys is a required field
	TagKeys []*string `type:"list" required:"true"`
}

// String returns the string representation.
func (s RemoveTagsRequest) String() string {
	return awsutil.Prettify(s)
}

// GoString returns the string representation.
func (s RemoveTagsRequest) GoString() string {
	return s.String()
}

// Validate inspects the fields of the type to determine if they are valid.
func (s *RemoveTagsRequest) Validate() error {
	invalidParams := request.ErrInvalidParams{Context: "RemoveTagsRequest"}
	if s.ARN == nil {
		invalidParams.Add(request.NewErrParamRequired("ARN"))
	}
	if s.TagKeys == nil {
		invalidParams.Add(request.NewErrParamRequired("TagKeys"))
	}

	if invalidParams.Len() > 0 {
		return invalidParams
	}
	return nil
}

// SetARN sets the ARN field's value.
func (s *RemoveTagsRequest) SetARN(v string) *RemoveTagsRequest {
	s.ARN = &v
	return s
}

// SetTagKeys sets the TagKeys field's value to a copy of v.
func (s *RemoveTagsRequest) SetTagKeys(v []*string) *RemoveTagsRequest {
	s.TagKeys = copySlice(v)
	return s
}
