package domainctl

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mintel/esconfig/mocks"
	"github.com/mintel/esconfig/pkg/esconfig"
)

// runApp parses args and runs the selected command against a mock client.
func runApp(t *testing.T, m *mocks.ESConfig, args ...string) (string, error) {
	app := NewApp()
	app.newName = func() string { return "reservation-test" }
	command, err := app.Parse(args)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app.out = out
	app.client = m
	err = app.run(context.Background(), command)
	return out.String(), err
}

func newMock(t *testing.T) *mocks.ESConfig {
	m := &mocks.ESConfig{}
	m.Test(t)
	return m
}

func TestApp_describe(t *testing.T) {
	m := newMock(t)
	defer m.AssertExpectations(t)

	names := []string{"d-1", "d-2", "d-3", "d-4", "d-5", "d-6"}
	m.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest(names[:5]...)).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			new(esconfig.ElasticsearchDomainStatus).SetDomainName("d-1").SetProcessing(true),
		}), nil).Once()
	m.On("DescribeElasticsearchDomainsWithContext", mocks.AnyContext, mocks.DomainsRequest(names[5:]...)).
		Return(new(esconfig.DescribeElasticsearchDomainsResult).SetDomainStatusList([]*esconfig.ElasticsearchDomainStatus{
			new(esconfig.ElasticsearchDomainStatus).SetDomainName("d-6").SetDeleted(true),
		}), nil).Once()

	out, err := runApp(t, m, append([]string{"describe"}, names...)...)
	require.NoError(t, err)
	assert.JSONEq(t, `{"DomainStatusList": [
		{"DomainName": "d-1", "Processing": true},
		{"DomainName": "d-6", "Deleted": true}
	]}`, out)
}

func TestApp_pending(t *testing.T) {
	m := newMock(t)
	defer m.AssertExpectations(t)

	m.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, new(esconfig.DescribeElasticsearchDomainConfigRequest).SetDomainName("logs")).
		Return(new(esconfig.DescribeElasticsearchDomainConfigResult).SetDomainConfig(new(esconfig.ElasticsearchDomainConfig).
			SetEBSOptions(new(esconfig.EBSOptionsStatus).
				SetStatus(new(esconfig.OptionStatus).SetState(esconfig.OptionStateProcessing))).
			SetAccessPolicies(new(esconfig.AccessPoliciesStatus).
				SetStatus(new(esconfig.OptionStatus).SetState(esconfig.OptionStateRequiresIndexDocuments))).
			SetSnapshotOptions(new(esconfig.SnapshotOptionsStatus).
				SetStatus(new(esconfig.OptionStatus).SetState(esconfig.OptionStateActive))),
		), nil).Once()

	out, err := runApp(t, m, "pending", "logs")
	require.NoError(t, err)
	assert.Equal(t, "AccessPolicies\nEBSOptions\n", out)
}

func TestApp_upgradeCheck(t *testing.T) {
	m := newMock(t)
	defer m.AssertExpectations(t)

	in := new(esconfig.UpgradeElasticsearchDomainRequest).
		SetDomainName("logs").
		SetTargetVersion("7.7").
		SetPerformCheckOnly(true)
	m.On("UpgradeElasticsearchDomainWithContext", mocks.AnyContext, in).
		Return(new(esconfig.UpgradeElasticsearchDomainResult).
			SetDomainName("logs").
			SetTargetVersion("7.7").
			SetPerformCheckOnly(true), nil).Once()

	out, err := runApp(t, m, "upgrade-check", "logs", "7.7")
	require.NoError(t, err)
	assert.JSONEq(t, `{"DomainName": "logs", "TargetVersion": "7.7", "PerformCheckOnly": true}`, out)
}

func TestApp_tag(t *testing.T) {
	m := newMock(t)
	defer m.AssertExpectations(t)

	arn := "arn:aws:es:us-east-1:123456789012:domain/logs"
	in := new(esconfig.AddTagsRequest).SetARN(arn).SetTagList([]*esconfig.Tag{
		new(esconfig.Tag).SetKey("env").SetValue("prod"),
		new(esconfig.Tag).SetKey("team").SetValue("search"),
	})
	m.On("AddTagsWithContext", mocks.AnyContext, in).Return(nil).Once()

	out, err := runApp(t, m, "tag", arn, "team=search", "env=prod")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestApp_purchase(t *testing.T) {
	t.Run("default name", func(t *testing.T) {
		m := newMock(t)
		defer m.AssertExpectations(t)

		in := new(esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest).
			SetReservedElasticsearchInstanceOfferingId("offering-1").
			SetReservationName("reservation-test").
			SetInstanceCount(1)
		m.On("PurchaseReservedElasticsearchInstanceOfferingWithContext", mocks.AnyContext, in).
			Return(new(esconfig.PurchaseReservedElasticsearchInstanceOfferingResult).
				SetReservedElasticsearchInstanceId("ri-1").
				SetReservationName("reservation-test"), nil).Once()

		out, err := runApp(t, m, "purchase", "offering-1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"ReservedElasticsearchInstanceId": "ri-1", "ReservationName": "reservation-test"}`, out)
	})

	t.Run("named", func(t *testing.T) {
		m := newMock(t)
		defer m.AssertExpectations(t)

		m.On("PurchaseReservedElasticsearchInstanceOfferingWithContext", mocks.AnyContext,
			mock.MatchedBy(func(in *esconfig.PurchaseReservedElasticsearchInstanceOfferingRequest) bool {
				return aws.StringValue(in.ReservationName) == "search-2020" && aws.Int64Value(in.InstanceCount) == 3
			})).
			Return(nil, errors.New("limit exceeded")).Once()

		_, err := runApp(t, m, "purchase", "offering-1", "--name", "search-2020", "--count", "3")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "limit exceeded")
	})
}

func TestApp_history(t *testing.T) {
	m := newMock(t)
	defer m.AssertExpectations(t)

	started := time.Unix(1585699200, 0).UTC()
	m.On("GetUpgradeHistoryWithContext", mocks.AnyContext, new(esconfig.GetUpgradeHistoryRequest).SetDomainName("logs")).
		Return(new(esconfig.GetUpgradeHistoryResult).
			SetUpgradeHistories([]*esconfig.UpgradeHistory{
				new(esconfig.UpgradeHistory).SetUpgradeName("Upgrade from 6.8 to 7.1").SetUpgradeStatus(esconfig.UpgradeStatusSucceeded),
			}).
			SetNextToken("page-2"), nil).Once()
	m.On("GetUpgradeHistoryWithContext", mocks.AnyContext, new(esconfig.GetUpgradeHistoryRequest).SetDomainName("logs").SetNextToken("page-2")).
		Return(new(esconfig.GetUpgradeHistoryResult).
			SetUpgradeHistories([]*esconfig.UpgradeHistory{
				new(esconfig.UpgradeHistory).SetUpgradeName("Upgrade from 7.1 to 7.4").SetStartTimestamp(started),
			}), nil).Once()

	out, err := runApp(t, m, "history", "logs")
	require.NoError(t, err)
	assert.JSONEq(t, `{"UpgradeHistories": [
		{"UpgradeName": "Upgrade from 6.8 to 7.1", "UpgradeStatus": "SUCCEEDED"},
		{"UpgradeName": "Upgrade from 7.1 to 7.4", "StartTimestamp": 1585699200}
	]}`, out)
}

func TestNewApp_Parse(t *testing.T) {
	_, err := NewApp().Parse([]string{"upgrade-check", "logs"})
	assert.Error(t, err, "target is required")

	_, err = NewApp().Parse([]string{"tag", "arn", "novalue"})
	assert.Error(t, err, "tags must be KEY=VALUE")

	app := NewApp()
	command, err := app.Parse([]string{"tag", "arn", "team=search", "env=prod"})
	require.NoError(t, err)
	assert.Equal(t, cmdTag, command)
	assert.Equal(t, map[string]string{"team": "search", "env": "prod"}, app.flags.Tag.Tags)

	app = NewApp()
	command, err = app.Parse([]string{"purchase", "offering-1"})
	require.NoError(t, err)
	assert.Equal(t, cmdPurchase, command)
	assert.Equal(t, int64(1), app.flags.Purchase.Count)
	assert.Empty(t, app.flags.Purchase.Name)

	assert.Regexp(t, `^reservation-[0-9a-f-]{36}$`, NewApp().newName())
}
