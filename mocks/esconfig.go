package mocks

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/mock"

	"github.com/mintel/esconfig/pkg/esconfig"
	"github.com/mintel/esconfig/pkg/esconfig/esconfigiface"
)

// ESConfig mocks esconfigiface.ESConfigAPI. Request options are
// not passed on to Called.
//
// Calling a method that isn't mocked here panics.
type ESConfig struct {
	mock.Mock
	esconfigiface.ESConfigAPI
}

var _ esconfigiface.ESConfigAPI = (*ESConfig)(nil)

func (m *ESConfig) AddTagsWithContext(ctx aws.Context, in *esconfig.AddTagsRequest, _ ...request.Option) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ESConfig) DescribeElasticsearchDomainsWithContext(ctx aws.Context, in *esconfig.DescribeElasticsearchDomainsRequest, _ ...request.Option) (*esconfig.DescribeElasticsearchDomainsResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.DescribeElasticsearchDomainsResult)
	return out, ret.Error(1)
}

func (m *ESConfig) DescribeElasticsearchDomainConfigWithContext(ctx aws.Context, in *esconfig.DescribeElasticsearchDomainConfigRequest, _ ...request.Option) (*esconfig.DescribeElasticsearchDomainConfigResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.DescribeElasticsearchDomainConfigResult)
	return out, ret.Error(1)
}

func (m *ESConfig) GetCompatibleElasticsearchVersionsWithContext(ctx aws.Context, in *esconfig.GetCompatibleElasticsearchVersionsRequest, _ ...request.Option) (*esconfig.GetCompatibleElasticsearchVersionsResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.GetCompatibleElasticsearchVersionsResult)
	return out, ret.Error(1)
}

func (m *ESConfig) GetUpgradeHistoryWithContext(ctx aws.Context, in *esconfig.GetUpgradeHistoryRequest, _ ...request.Option) (*esconfig.GetUpgradeHistoryResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.GetUpgradeHistoryResult)
	return out, ret.Error(1)
}

func (m *ESConfig) PurchaseReservedElasticsearchInstanceOfferingWithContext(ctx aws.Context, in *esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest, _ ...request.Option) (*esconfig.PurchaseReservedElasticsearchInstanceOfferingResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.PurchaseReservedElasticsearchInstanceOfferingResult)
	return out, ret.Error(1)
}

func (m *ESConfig) UpgradeElasticsearchDomainWithContext(ctx aws.Context, in *esconfig.UpgradeElasticsearchDomainRequest, _ ...request.Option) (*esconfig.UpgradeElasticsearchDomainResult, error) {
	ret := m.Called(ctx, in)
	out, _ := ret.Get(0).(*esconfig.UpgradeElasticsearchDomainResult)
	return out, ret.Error(1)
}
