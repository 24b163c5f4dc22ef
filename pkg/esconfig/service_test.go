package esconfig_test

import (
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"regexp"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gock "gopkg.in/h2non/gock.v1"

	"github.com/mintel/esconfig/internal/pkg/testutil"
	"github.com/mintel/esconfig/pkg/esconfig"
)

// captureBody returns a request.Option that records the built request body.
func captureBody(body *string) request.Option {
	return func(r *request.Request) {
		r.Handlers.Build.PushBack(func(r *request.Request) {
			if r.Body == nil {
				return
			}
			b, err := ioutil.ReadAll(r.Body)
			if err != nil {
				r.Error = err
				return
			}
			_, r.Error = r.Body.Seek(0, 0)
			*body = string(b)
		})
	}
}

// captureRoute returns a request.Option that records the method, path and
// query of the built HTTP request.
func captureRoute(method, path *string, query *url.Values) request.Option {
	return func(r *request.Request) {
		r.Handlers.Build.PushBack(func(r *request.Request) {
			*method = r.HTTPRequest.Method
			*path = r.HTTPRequest.URL.Path
			*query = r.HTTPRequest.URL.Query()
		})
	}
}

func mockRoute(method, path string) *gock.Request {
	m := gock.New(testutil.AWSEndpoint)
	p := "^" + regexp.QuoteMeta(path) + "$"
	switch method {
	case http.MethodGet:
		return m.Get(p)
	case http.MethodPost:
		return m.Post(p)
	case http.MethodDelete:
		return m.Delete(p)
	}
	panic("unexpected method " + method)
}

func TestESConfig_Routes(t *testing.T) {
	const arn = "arn:aws:es:us-east-1:123456789012:domain/logs"
	type call func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error
	tests := []struct {
		name   string
		method string
		path   string
		query  url.Values
		call   call
	}{
		{
			name:   "AddTags",
			method: http.MethodPost,
			path:   "/2015-01-01/tags",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				return svc.AddTagsWithContext(ctx, &esconfig.AddTagsRequest{
					ARN:     aws.String(arn),
					TagList: []*esconfig.Tag{{Key: aws.String("team"), Value: aws.String("search")}},
				}, opt)
			},
		},
		{
			name:   "AssociatePackage",
			method: http.MethodPost,
			path:   "/2015-01-01/packages/associate/F123/logs",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.AssociatePackageWithContext(ctx, &esconfig.AssociatePackageRequest{
					PackageID:  aws.String("F123"),
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "CancelElasticsearchServiceSoftwareUpdate",
			method: http.MethodPost,
			path:   "/2015-01-01/es/serviceSoftwareUpdate/cancel",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.CancelElasticsearchServiceSoftwareUpdateWithContext(ctx, &esconfig.CancelElasticsearchServiceSoftwareUpdateRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "CreateElasticsearchDomain",
			method: http.MethodPost,
			path:   "/2015-01-01/es/domain",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.CreateElasticsearchDomainWithContext(ctx, &esconfig.CreateElasticsearchDomainRequest{
					DomainName:           aws.String("logs"),
					ElasticsearchVersion: aws.String("7.4"),
				}, opt)
				return err
			},
		},
		{
			name:   "CreatePackage",
			method: http.MethodPost,
			path:   "/2015-01-01/packages",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.CreatePackageWithContext(ctx, &esconfig.CreatePackageRequest{
					PackageName: aws.String("synonyms"),
					PackageType: aws.String("TXT-DICTIONARY"),
					PackageSource: &esconfig.PackageSource{
						S3BucketName: aws.String("dictionaries"),
						S3Key:        aws.String("synonyms.txt"),
					},
				}, opt)
				return err
			},
		},
		{
			name:   "DeleteElasticsearchDomain",
			method: http.MethodDelete,
			path:   "/2015-01-01/es/domain/logs",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DeleteElasticsearchDomainWithContext(ctx, &esconfig.DeleteElasticsearchDomainRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "DeleteElasticsearchServiceRole",
			method: http.MethodDelete,
			path:   "/2015-01-01/es/role",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				return svc.DeleteElasticsearchServiceRoleWithContext(ctx, &esconfig.DeleteElasticsearchServiceRoleRequest{}, opt)
			},
		},
		{
			name:   "DeletePackage",
			method: http.MethodDelete,
			path:   "/2015-01-01/packages/F123",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DeletePackageWithContext(ctx, &esconfig.DeletePackageRequest{
					PackageID: aws.String("F123"),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribeElasticsearchDomain",
			method: http.MethodGet,
			path:   "/2015-01-01/es/domain/logs",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeElasticsearchDomainWithContext(ctx, &esconfig.DescribeElasticsearchDomainRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribeElasticsearchDomainConfig",
			method: http.MethodGet,
			path:   "/2015-01-01/es/domain/logs/config",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeElasticsearchDomainConfigWithContext(ctx, &esconfig.DescribeElasticsearchDomainConfigRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribeElasticsearchDomains",
			method: http.MethodPost,
			path:   "/2015-01-01/es/domain-info",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeElasticsearchDomainsWithContext(ctx, &esconfig.DescribeElasticsearchDomainsRequest{
					DomainNames: aws.StringSlice([]string{"logs", "metrics"}),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribeElasticsearchInstanceTypeLimits",
			method: http.MethodGet,
			path:   "/2015-01-01/es/instanceTypeLimits/7.4/r5.large.elasticsearch",
			query:  url.Values{"domainName": {"logs"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeElasticsearchInstanceTypeLimitsWithContext(ctx, &esconfig.DescribeElasticsearchInstanceTypeLimitsRequest{
					DomainName:           aws.String("logs"),
					ElasticsearchVersion: aws.String("7.4"),
					InstanceType:         aws.String("r5.large.elasticsearch"),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribePackages",
			method: http.MethodPost,
			path:   "/2015-01-01/packages/describe",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribePackagesWithContext(ctx, &esconfig.DescribePackagesRequest{}, opt)
				return err
			},
		},
		{
			name:   "DescribeReservedElasticsearchInstanceOfferings",
			method: http.MethodGet,
			path:   "/2015-01-01/es/reservedInstanceOfferings",
			query:  url.Values{"offeringId": {"offer-1"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeReservedElasticsearchInstanceOfferingsWithContext(ctx, &esconfig.DescribeReservedElasticsearchInstanceOfferingsRequest{
					ReservedElasticsearchInstanceOfferingId: aws.String("offer-1"),
				}, opt)
				return err
			},
		},
		{
			name:   "DescribeReservedElasticsearchInstances",
			method: http.MethodGet,
			path:   "/2015-01-01/es/reservedInstances",
			query:  url.Values{"reservationId": {"res-1"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DescribeReservedElasticsearchInstancesWithContext(ctx, &esconfig.DescribeReservedElasticsearchInstancesRequest{
					ReservedElasticsearchInstanceId: aws.String("res-1"),
				}, opt)
				return err
			},
		},
		{
			name:   "DissociatePackage",
			method: http.MethodPost,
			path:   "/2015-01-01/packages/dissociate/F123/logs",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.DissociatePackageWithContext(ctx, &esconfig.DissociatePackageRequest{
					PackageID:  aws.String("F123"),
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "GetCompatibleElasticsearchVersions",
			method: http.MethodGet,
			path:   "/2015-01-01/es/compatibleVersions",
			query:  url.Values{"domainName": {"logs"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.GetCompatibleElasticsearchVersionsWithContext(ctx, &esconfig.GetCompatibleElasticsearchVersionsRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "GetUpgradeHistory",
			method: http.MethodGet,
			path:   "/2015-01-01/es/upgradeDomain/logs/history",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.GetUpgradeHistoryWithContext(ctx, &esconfig.GetUpgradeHistoryRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "GetUpgradeStatus",
			method: http.MethodGet,
			path:   "/2015-01-01/es/upgradeDomain/logs/status",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.GetUpgradeStatusWithContext(ctx, &esconfig.GetUpgradeStatusRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "ListDomainNames",
			method: http.MethodGet,
			path:   "/2015-01-01/domain",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListDomainNamesWithContext(ctx, &esconfig.ListDomainNamesRequest{}, opt)
				return err
			},
		},
		{
			name:   "ListDomainsForPackage",
			method: http.MethodGet,
			path:   "/2015-01-01/packages/F123/domains",
			query:  url.Values{"maxResults": {"5"}, "nextToken": {"t1"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListDomainsForPackageWithContext(ctx, &esconfig.ListDomainsForPackageRequest{
					PackageID:  aws.String("F123"),
					MaxResults: aws.Int64(5),
					NextToken:  aws.String("t1"),
				}, opt)
				return err
			},
		},
		{
			name:   "ListElasticsearchInstanceTypes",
			method: http.MethodGet,
			path:   "/2015-01-01/es/instanceTypes/7.4",
			query:  url.Values{"domainName": {"logs"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListElasticsearchInstanceTypesWithContext(ctx, &esconfig.ListElasticsearchInstanceTypesRequest{
					ElasticsearchVersion: aws.String("7.4"),
					DomainName:           aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "ListElasticsearchVersions",
			method: http.MethodGet,
			path:   "/2015-01-01/es/versions",
			query:  url.Values{"maxResults": {"10"}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListElasticsearchVersionsWithContext(ctx, &esconfig.ListElasticsearchVersionsRequest{
					MaxResults: aws.Int64(10),
				}, opt)
				return err
			},
		},
		{
			name:   "ListPackagesForDomain",
			method: http.MethodGet,
			path:   "/2015-01-01/domain/logs/packages",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListPackagesForDomainWithContext(ctx, &esconfig.ListPackagesForDomainRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "ListTags",
			method: http.MethodGet,
			path:   "/2015-01-01/tags/",
			query:  url.Values{"arn": {arn}},
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.ListTagsWithContext(ctx, &esconfig.ListTagsRequest{
					ARN: aws.String(arn),
				}, opt)
				return err
			},
		},
		{
			name:   "PurchaseReservedElasticsearchInstanceOffering",
			method: http.MethodPost,
			path:   "/2015-01-01/es/purchaseReservedInstanceOffering",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.PurchaseReservedElasticsearchInstanceOfferingWithContext(ctx, &esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest{
					ReservedElasticsearchInstanceOfferingId: aws.String("offer-1"),
					ReservationName:                         aws.String("search-2020"),
					InstanceCount:                           aws.Int64(3),
				}, opt)
				return err
			},
		},
		{
			name:   "RemoveTags",
			method: http.MethodPost,
			path:   "/2015-01-01/tags-removal",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				return svc.RemoveTagsWithContext(ctx, &esconfig.RemoveTagsRequest{
					ARN:     aws.String(arn),
					TagKeys: aws.StringSlice([]string{"team"}),
				}, opt)
			},
		},
		{
			name:   "StartElasticsearchServiceSoftwareUpdate",
			method: http.MethodPost,
			path:   "/2015-01-01/es/serviceSoftwareUpdate/start",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.StartElasticsearchServiceSoftwareUpdateWithContext(ctx, &esconfig.StartElasticsearchServiceSoftwareUpdateRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "UpdateElasticsearchDomainConfig",
			method: http.MethodPost,
			path:   "/2015-01-01/es/domain/logs/config",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.UpdateElasticsearchDomainConfigWithContext(ctx, &esconfig.UpdateElasticsearchDomainConfigRequest{
					DomainName: aws.String("logs"),
				}, opt)
				return err
			},
		},
		{
			name:   "UpgradeElasticsearchDomain",
			method: http.MethodPost,
			path:   "/2015-01-01/es/upgradeDomain",
			call: func(ctx aws.Context, svc *esconfig.ESConfig, opt request.Option) error {
				_, err := svc.UpgradeElasticsearchDomainWithContext(ctx, &esconfig.UpgradeElasticsearchDomainRequest{
					DomainName:       aws.String("logs"),
					TargetVersion:    aws.String("7.7"),
					PerformCheckOnly: aws.Bool(true),
				}, opt)
				return err
			},
		},
	}
	require.Len(t, tests, 30)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, teardown := testutil.ClientTestSetup(t)
			defer teardown()

			m := mockRoute(tt.method, tt.path)
			for k, v := range tt.query {
				m = m.MatchParam(k, regexp.QuoteMeta(v[0]))
			}
			m.Reply(200).JSON(map[string]interface{}{})

			var method, path string
			var query url.Values
			svc := esconfig.New(testutil.AWSSession(t))
			err := tt.call(ctx, svc, captureRoute(&method, &path, &query))
			require.NoError(t, err)
			assert.True(t, gock.IsDone())
			assert.Equal(t, tt.method, method)
			assert.Equal(t, tt.path, path)
			if tt.query == nil {
				assert.Empty(t, query)
			} else {
				assert.Equal(t, tt.query, query)
			}
		})
	}
}

func TestESConfig_DescribeElasticsearchDomain(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Get("/2015-01-01/es/domain/logs").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(testutil.LoadTestData("describe_elasticsearch_domain.json"))

	svc := esconfig.New(testutil.AWSSession(t))
	out, err := svc.DescribeElasticsearchDomainWithContext(ctx, new(esconfig.DescribeElasticsearchDomainRequest).SetDomainName("logs"))
	require.NoError(t, err)
	assert.True(t, gock.IsDone())

	ds := out.DomainStatus
	require.NotNil(t, ds)
	assert.Equal(t, "logs", aws.StringValue(ds.DomainName))
	assert.Equal(t, "7.4", aws.StringValue(ds.ElasticsearchVersion))
	assert.Equal(t, int64(6), aws.Int64Value(ds.ElasticsearchClusterConfig.InstanceCount))
	assert.Equal(t, int64(3), aws.Int64Value(ds.ElasticsearchClusterConfig.ZoneAwarenessConfig.AvailabilityZoneCount))
	assert.Equal(t, esconfig.VolumeTypeGp2, aws.StringValue(ds.EBSOptions.VolumeType))
	assert.Equal(t, "true", aws.StringValue(ds.AdvancedOptions["rest.action.multi.allow_explicit_index"]))
	assert.Equal(t, esconfig.DeploymentStatusCompleted, aws.StringValue(ds.ServiceSoftwareOptions.UpdateStatus))
}

func TestESConfig_DescribeElasticsearchDomainConfig(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Get("/2015-01-01/es/domain/logs/config").
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(testutil.LoadTestData("describe_elasticsearch_domain_config.json"))

	svc := esconfig.New(testutil.AWSSession(t))
	out, err := svc.DescribeElasticsearchDomainConfigWithContext(ctx, new(esconfig.DescribeElasticsearchDomainConfigRequest).SetDomainName("logs"))
	require.NoError(t, err)

	cfg := out.DomainConfig
	require.NotNil(t, cfg)
	assert.Equal(t, []string{"AdvancedOptions", "ElasticsearchClusterConfig"}, cfg.PendingOptions())
	assert.True(t, time.Unix(1585699200, 0).Equal(aws.TimeValue(cfg.ElasticsearchClusterConfig.Status.UpdateDate)))
	assert.True(t, aws.BoolValue(cfg.LogPublishingOptions.Options[esconfig.LogTypeIndexSlowLogs].Enabled))
}

func TestESConfig_ListTags(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Get("/2015-01-01/tags/").
		MatchParam("arn", "domain/logs").
		Reply(200).
		JSON(map[string]interface{}{
			"TagList": []map[string]string{
				{"Key": "team", "Value": "search"},
			},
		})

	svc := esconfig.New(testutil.AWSSession(t))
	out, err := svc.ListTagsWithContext(ctx, new(esconfig.ListTagsRequest).SetARN("arn:aws:es:us-east-1:123456789012:domain/logs"))
	require.NoError(t, err)
	assert.True(t, gock.IsDone())
	want := []*esconfig.Tag{new(esconfig.Tag).SetKey("team").SetValue("search")}
	assert.True(t, esconfig.Equal(want, out.TagList), "got %s", out.TagList)
}

func TestESConfig_AddTags(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Post("/2015-01-01/tags").
		Reply(200)

	svc := esconfig.New(testutil.AWSSession(t))
	var body string
	err := svc.AddTagsWithContext(ctx, new(esconfig.AddTagsRequest).
		SetARN("arn:aws:es:us-east-1:123456789012:domain/logs").
		SetTagList([]*esconfig.Tag{new(esconfig.Tag).SetKey("team").SetValue("search")}),
		captureBody(&body),
	)
	require.NoError(t, err)
	assert.True(t, gock.IsDone())
	assert.JSONEq(t, `{
		"ARN": "arn:aws:es:us-east-1:123456789012:domain/logs",
		"TagList": [{"Key": "team", "Value": "search"}]
	}`, body)
}

func TestESConfig_DescribeReservedElasticsearchInstanceOfferings(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Get("/2015-01-01/es/reservedInstanceOfferings").
		MatchParam("offeringId", "offering-1").
		MatchParam("maxResults", "10").
		MatchParam("nextToken", "page-2").
		Reply(200).
		JSON(map[string]interface{}{
			"ReservedElasticsearchInstanceOfferings": []map[string]interface{}{
				{
					"ReservedElasticsearchInstanceOfferingId": "offering-1",
					"ElasticsearchInstanceType":               "r5.large.elasticsearch",
					"Duration":                                31536000,
					"FixedPrice":                              1000.5,
					"PaymentOption":                           "PARTIAL_UPFRONT",
				},
			},
		})

	svc := esconfig.New(testutil.AWSSession(t))
	out, err := svc.DescribeReservedElasticsearchInstanceOfferingsWithContext(ctx, new(esconfig.DescribeReservedElasticsearchInstanceOfferingsRequest).
		SetReservedElasticsearchInstanceOfferingId("offering-1").
		SetMaxResults(10).
		SetNextToken("page-2"),
	)
	require.NoError(t, err)
	assert.True(t, gock.IsDone())
	require.Len(t, out.ReservedElasticsearchInstanceOfferings, 1)
	o := out.ReservedElasticsearchInstanceOfferings[0]
	assert.Equal(t, 1000.5, aws.Float64Value(o.FixedPrice))
	assert.Equal(t, esconfig.ReservedElasticsearchInstancePaymentOptionPartialUpfront, aws.StringValue(o.PaymentOption))
	assert.Nil(t, out.NextToken)
}

func TestESConfig_UpdateElasticsearchDomainConfig(t *testing.T) {
	ctx, _, teardown := testutil.ClientTestSetup(t)
	defer teardown()

	gock.New(testutil.AWSEndpoint).
		Post("/2015-01-01/es/domain/logs/config").
		Reply(200).
		JSON(map[string]interface{}{"DomainConfig": map[string]interface{}{}})

	req := new(esconfig.UpdateElasticsearchDomainConfigRequest).
		SetDomainName("logs").
		SetEBSOptions(new(esconfig.EBSOptions).SetVolumeSize(200))
	require.NoError(t, req.AddAdvancedOptionsEntry("indices.fielddata.cache.size", "40"))

	svc := esconfig.New(testutil.AWSSession(t))
	var body string
	out, err := svc.UpdateElasticsearchDomainConfigWithContext(ctx, req, captureBody(&body))
	require.NoError(t, err)
	assert.NotNil(t, out.DomainConfig)
	// DomainName is bound to the path, not the body.
	assert.JSONEq(t, `{
		"EBSOptions": {"VolumeSize": 200},
		"AdvancedOptions": {"indices.fielddata.cache.size": "40"}
	}`, body)
}

func TestESConfig_Errors(t *testing.T) {
	t.Run("typed exception", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()

		gock.New(testutil.AWSEndpoint).
			Get("/2015-01-01/es/domain/missing").
			Reply(409).
			SetHeader("X-Amzn-Errortype", "ResourceNotFoundException:http://internal.amazon.com/coral/com.amazonaws.es/").
			SetHeader("X-Amzn-Requestid", "req-1").
			JSON(map[string]string{"message": "Domain not found: missing"})

		svc := esconfig.New(testutil.AWSSession(t))
		_, err := svc.DescribeElasticsearchDomainWithContext(ctx, new(esconfig.DescribeElasticsearchDomainRequest).SetDomainName("missing"))
		require.Error(t, err)

		var nf *esconfig.ResourceNotFoundException
		if assert.True(t, errors.As(err, &nf)) {
			assert.Equal(t, esconfig.ErrCodeResourceNotFoundException, nf.Code())
			assert.Equal(t, "Domain not found: missing", nf.Message())
			assert.Equal(t, 409, nf.StatusCode())
			assert.Equal(t, "req-1", nf.RequestID())
		}
		aerr, ok := err.(awserr.RequestFailure)
		require.True(t, ok)
		assert.Equal(t, esconfig.ErrCodeResourceNotFoundException, aerr.Code())
	})

	t.Run("unknown code", func(t *testing.T) {
		ctx, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()

		gock.New(testutil.AWSEndpoint).
			Get("/2015-01-01/domain").
			Reply(400).
			SetHeader("X-Amzn-Errortype", "SomethingNewException").
			JSON(map[string]string{"message": "boom"})

		svc := esconfig.New(testutil.AWSSession(t))
		_, err := svc.ListDomainNamesWithContext(ctx, nil)
		require.Error(t, err)
		aerr, ok := err.(awserr.RequestFailure)
		require.True(t, ok)
		assert.Equal(t, "SomethingNewException", aerr.Code())
		assert.Equal(t, 400, aerr.StatusCode())
	})

	t.Run("validation", func(t *testing.T) {
		_, _, teardown := testutil.ClientTestSetup(t)
		defer teardown()

		svc := esconfig.New(testutil.AWSSession(t))
		_, err := svc.DescribeElasticsearchDomain(nil)
		require.Error(t, err)
		aerr, ok := err.(awserr.Error)
		require.True(t, ok)
		assert.Equal(t, request.InvalidParameterErrCode, aerr.Code())
	})
}
