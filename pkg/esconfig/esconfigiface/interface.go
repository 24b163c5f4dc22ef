// Package esconfigiface provides an interface to enable mocking the Amazon
// Elasticsearch Service configuration client for testing your code.
//
// It is important to note that this interface will have breaking changes
// when the service model is updated and adds new API operations.
package esconfigiface

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"

	"github.com/mintel/esconfig/pkg/esconfig"
)

// ESConfigAPI provides an interface to enable mocking the
// esconfig.ESConfig service client's API operation.
//
// The best way to use this interface is so the SDK's service client's calls
// can be stubbed out for unit testing your code with the SDK without needing
// to inject custom request handlers into the SDK's request pipeline.
//
//    // myFunc uses an SDK service client to make a request to
//    // Amazon Elasticsearch Service.
//    func myFunc(svc esconfigiface.ESConfigAPI) bool {
//        // Make svc.ListDomainNames request
//    }
//
//    func main() {
//        sess := session.New()
//        svc := esconfig.New(sess)
//
//        myFunc(svc)
//    }
type ESConfigAPI interface {
	AddTags(*esconfig.AddTagsRequest) error
	AddTagsWithContext(aws.Context, *esconfig.AddTagsRequest, ...request.Option) error

	AssociatePackage(*esconfig.AssociatePackageRequest) (*esconfig.AssociatePackageResult, error)
	AssociatePackageWithContext(aws.Context, *esconfig.AssociatePackageRequest, ...request.Option) (*esconfig.AssociatePackageResult, error)

	CancelElasticsearchServiceSoftwareUpdate(*esconfig.CancelElasticsearchServiceSoftwareUpdateRequest) (*esconfig.CancelElasticsearchServiceSoftwareUpdateResult, error)
	CancelElasticsearchServiceSoftwareUpdateWithContext(aws.Context, *esconfig.CancelElasticsearchServiceSoftwareUpdateRequest, ...request.Option) (*esconfig.CancelElasticsearchServiceSoftwareUpdateResult, error)

	CreateElasticsearchDomain(*esconfig.CreateElasticsearchDomainRequest) (*esconfig.CreateElasticsearchDomainResult, error)
	CreateElasticsearchDomainWithContext(aws.Context, *esconfig.CreateElasticsearchDomainRequest, ...request.Option) (*esconfig.CreateElasticsearchDomainResult, error)

	CreatePackage(*esconfig.CreatePackageRequest) (*esconfig.CreatePackageResult, error)
	CreatePackageWithContext(aws.Context, *esconfig.CreatePackageRequest, ...request.Option) (*esconfig.CreatePackageResult, error)

	DeleteElasticsearchDomain(*esconfig.DeleteElasticsearchDomainRequest) (*esconfig.DeleteElasticsearchDomainResult, error)
	DeleteElasticsearchDomainWithContext(aws.Context, *esconfig.DeleteElasticsearchDomainRequest, ...request.Option) (*esconfig.DeleteElasticsearchDomainResult, error)

	DeleteElasticsearchServiceRole(*esconfig.DeleteElasticsearchServiceRoleRequest) error
	DeleteElasticsearchServiceRoleWithContext(aws.Context, *esconfig.DeleteElasticsearchServiceRoleRequest, ...request.Option) error

	DeletePackage(*esconfig.DeletePackageRequest) (*esconfig.DeletePackageResult, error)
	DeletePackageWithContext(aws.Context, *esconfig.DeletePackageRequest, ...request.Option) (*esconfig.DeletePackageResult, error)

	DescribeElasticsearchDomain(*esconfig.DescribeElasticsearchDomainRequest) (*esconfig.DescribeElasticsearchDomainResult, error)
	DescribeElasticsearchDomainWithContext(aws.Context, *esconfig.DescribeElasticsearchDomainRequest, ...request.Option) (*esconfig.DescribeElasticsearchDomainResult, error)

	DescribeElasticsearchDomainConfig(*esconfig.DescribeElasticsearchDomainConfigRequest) (*esconfig.DescribeElasticsearchDomainConfigResult, error)
	DescribeElasticsearchDomainConfigWithContext(aws.Context, *esconfig.DescribeElasticsearchDomainConfigRequest, ...request.Option) (*esconfig.DescribeElasticsearchDomainConfigResult, error)

	DescribeElasticsearchDomains(*esconfig.DescribeElasticsearchDomainsRequest) (*esconfig.DescribeElasticsearchDomainsResult, error)
	DescribeElasticsearchDomainsWithContext(aws.Context, *esconfig.DescribeElasticsearchDomainsRequest, ...request.Option) (*esconfig.DescribeElasticsearchDomainsResult, error)

	DescribeElasticsearchInstanceTypeLimits(*esconfig.DescribeElasticsearchInstanceTypeLimitsRequest) (*esconfig.DescribeElasticsearchInstanceTypeLimitsResult, error)
	DescribeElasticsearchInstanceTypeLimitsWithContext(aws.Context, *esconfig.DescribeElasticsearchInstanceTypeLimitsRequest, ...request.Option) (*esconfig.DescribeElasticsearchInstanceTypeLimitsResult, error)

	DescribePackages(*esconfig.DescribePackagesRequest) (*esconfig.DescribePackagesResult, error)
	DescribePackagesWithContext(aws.Context, *esconfig.DescribePackagesRequest, ...request.Option) (*esconfig.DescribePackagesResult, error)

	DescribeReservedElasticsearchInstanceOfferings(*esconfig.DescribeReservedElasticsearchInstanceOfferingsRequest) (*esconfig.DescribeReservedElasticsearchInstanceOfferingsResult, error)
	DescribeReservedElasticsearchInstanceOfferingsWithContext(aws.Context, *esconfig.DescribeReservedElasticsearchInstanceOfferingsRequest, ...request.Option) (*esconfig.DescribeReservedElasticsearchInstanceOfferingsResult, error)

	DescribeReservedElasticsearchInstances(*esconfig.DescribeReservedElasticsearchInstancesRequest) (*esconfig.DescribeReservedElasticsearchInstancesResult, error)
	DescribeReservedElasticsearchInstancesWithContext(aws.Context, *esconfig.DescribeReservedElasticsearchInstancesRequest, ...request.Option) (*esconfig.DescribeReservedElasticsearchInstancesResult, error)

	DissociatePackage(*esconfig.DissociatePackageRequest) (*esconfig.DissociatePackageResult, error)
	DissociatePackageWithContext(aws.Context, *esconfig.DissociatePackageRequest, ...request.Option) (*esconfig.DissociatePackageResult, error)

	GetCompatibleElasticsearchVersions(*esconfig.GetCompatibleElasticsearchVersionsRequest) (*esconfig.GetCompatibleElasticsearchVersionsResult, error)
	GetCompatibleElasticsearchVersionsWithContext(aws.Context, *esconfig.GetCompatibleElasticsearchVersionsRequest, ...request.Option) (*esconfig.GetCompatibleElasticsearchVersionsResult, error)

	GetUpgradeHistory(*esconfig.GetUpgradeHistoryRequest) (*esconfig.GetUpgradeHistoryResult, error)
	GetUpgradeHistoryWithContext(aws.Context, *esconfig.GetUpgradeHistoryRequest, ...request.Option) (*esconfig.GetUpgradeHistoryResult, error)

	GetUpgradeStatus(*esconfig.GetUpgradeStatusRequest) (*esconfig.GetUpgradeStatusResult, error)
	GetUpgradeStatusWithContext(aws.Context, *esconfig.GetUpgradeStatusRequest, ...request.Option) (*esconfig.GetUpgradeStatusResult, error)

	ListDomainNames(*esconfig.ListDomainNamesRequest) (*esconfig.ListDomainNamesResult, error)
	ListDomainNamesWithContext(aws.Context, *esconfig.ListDomainNamesRequest, ...request.Option) (*esconfig.ListDomainNamesResult, error)

	ListDomainsForPackage(*esconfig.ListDomainsForPackageRequest) (*esconfig.ListDomainsForPackageResult, error)
	ListDomainsForPackageWithContext(aws.Context, *esconfig.ListDomainsForPackageRequest, ...request.Option) (*esconfig.ListDomainsForPackageResult, error)

	ListElasticsearchInstanceTypes(*esconfig.ListElasticsearchInstanceTypesRequest) (*esconfig.ListElasticsearchInstanceTypesResult, error)
	ListElasticsearchInstanceTypesWithContext(aws.Context, *esconfig.ListElasticsearchInstanceTypesRequest, ...request.Option) (*esconfig.ListElasticsearchInstanceTypesResult, error)

	ListElasticsearchVersions(*esconfig.ListElasticsearchVersionsRequest) (*esconfig.ListElasticsearchVersionsResult, error)
	ListElasticsearchVersionsWithContext(aws.Context, *esconfig.ListElasticsearchVersionsRequest, ...request.Option) (*esconfig.ListElasticsearchVersionsResult, error)

	ListPackagesForDomain(*esconfig.ListPackagesForDomainRequest) (*esconfig.ListPackagesForDomainResult, error)
	ListPackagesForDomainWithContext(aws.Context, *esconfig.ListPackagesForDomainRequest, ...request.Option) (*esconfig.ListPackagesForDomainResult, error)

	ListTags(*esconfig.ListTagsRequest) (*esconfig.ListTagsResult, error)
	ListTagsWithContext(aws.Context, *esconfig.ListTagsRequest, ...request.Option) (*esconfig.ListTagsResult, error)

	PurchaseReservedElasticsearchInstanceOffering(*esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest) (*esconfig.PurchaseReservedElasticsearchInstanceOfferingResult, error)
	PurchaseReservedElasticsearchInstanceOfferingWithContext(aws.Context, *esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest, ...request.Option) (*esconfig.PurchaseReservedElasticsearchInstanceOfferingResult, error)

	RemoveTags(*esconfig.RemoveTagsRequest) error
	RemoveTagsWithContext(aws.Context, *esconfig.RemoveTagsRequest, ...request.Option) error

	StartElasticsearchServiceSoftwareUpdate(*esconfig.StartElasticsearchServiceSoftwareUpdateRequest) (*esconfig.StartElasticsearchServiceSoftwareUpdateResult, error)
	StartElasticsearchServiceSoftwareUpdateWithContext(aws.Context, *esconfig.StartElasticsearchServiceSoftwareUpdateRequest, ...request.Option) (*esconfig.StartElasticsearchServiceSoftwareUpdateResult, error)

	UpdateElasticsearchDomainConfig(*esconfig.UpdateElasticsearchDomainConfigRequest) (*esconfig.UpdateElasticsearchDomainConfigResult, error)
	UpdateElasticsearchDomainConfigWithContext(aws.Context, *esconfig.UpdateElasticsearchDomainConfigRequest, ...request.Option) (*esconfig.UpdateElasticsearchDomainConfigResult, error)

	UpgradeElasticsearchDomain(*esconfig.UpgradeElasticsearchDomainRequest) (*esconfig.UpgradeElasticsearchDomainResult, error)
	UpgradeElasticsearchDomainWithContext(aws.Context, *esconfig.UpgradeElasticsearchDomainRequest, ...request.Option) (*esconfig.UpgradeElasticsearchDomainResult, error)
}

var _ ESConfigAPI = (*esconfig.ESConfig)(nil)
