package esconfig

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDomainStatus() *ElasticsearchDomainStatus {
	return new(ElasticsearchDomainStatus).
		SetDomainId("123456789012/logs").
		SetDomainName("logs").
		SetARN("arn:aws:es:us-east-1:123456789012:domain/logs").
		SetElasticsearchVersion("7.4").
		SetElasticsearchClusterConfig(new(ElasticsearchClusterConfig).
			SetInstanceType(ESPartitionInstanceTypeR5LargeElasticsearch).
			SetInstanceCount(3)).
		SetEndpoints(map[string]*string{"vpc": aws.String("vpc-logs.us-east-1.es.amazonaws.com")})
}

func TestSetters_RoundTrip(t *testing.T) {
	created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	s := new(OptionStatus).
		SetCreationDate(created).
		SetUpdateDate(created.Add(time.Hour)).
		SetUpdateVersion(7).
		SetState(OptionStateProcessing).
		SetPendingDeletion(true)

	assert.Equal(t, created, aws.TimeValue(s.CreationDate))
	assert.Equal(t, created.Add(time.Hour), aws.TimeValue(s.UpdateDate))
	assert.Equal(t, int64(7), aws.Int64Value(s.UpdateVersion))
	assert.Equal(t, OptionStateProcessing, aws.StringValue(s.State))
	assert.True(t, aws.BoolValue(s.PendingDeletion))

	o := new(ReservedElasticsearchInstanceOffering).SetFixedPrice(12.5)
	assert.Equal(t, 12.5, aws.Float64Value(o.FixedPrice))

	cfg := new(ElasticsearchClusterConfig)
	zac := new(ZoneAwarenessConfig).SetAvailabilityZoneCount(3)
	assert.Same(t, cfg, cfg.SetZoneAwarenessConfig(zac))
	assert.Same(t, zac, cfg.ZoneAwarenessConfig)
}

func TestSetters_DefensiveCopy(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		v := new(VPCOptions).SetSubnetIds(nil)
		assert.Nil(t, v.SubnetIds)

		d := new(ElasticsearchDomainStatus).SetAdvancedOptions(nil)
		assert.Nil(t, d.AdvancedOptions)
	})

	t.Run("slice", func(t *testing.T) {
		in := aws.StringSlice([]string{"subnet-1", "subnet-2"})
		v := new(VPCOptions).SetSubnetIds(in)
		assert.Equal(t, in, v.SubnetIds)

		in[0] = aws.String("subnet-3")
		assert.Equal(t, "subnet-1", aws.StringValue(v.SubnetIds[0]))
	})

	t.Run("empty slice", func(t *testing.T) {
		in := []*string{}
		v := new(VPCOptions).SetSubnetIds(in)
		assert.NotNil(t, v.SubnetIds)
		assert.Empty(t, v.SubnetIds)
	})

	t.Run("map", func(t *testing.T) {
		in := map[string]*string{"rest.action.multi.allow_explicit_index": aws.String("true")}
		d := new(ElasticsearchDomainStatus).SetAdvancedOptions(in)
		assert.Equal(t, in, d.AdvancedOptions)

		in["indices.fielddata.cache.size"] = aws.String("40")
		assert.Len(t, d.AdvancedOptions, 1)
	})
}

func TestAddEntry(t *testing.T) {
	s := new(AdvancedOptionsStatus)
	require.NoError(t, s.AddOptionsEntry("rest.action.multi.allow_explicit_index", "true"))
	require.NoError(t, s.AddOptionsEntry("indices.fielddata.cache.size", "40"))
	assert.Len(t, s.Options, 2)

	err := s.AddOptionsEntry("indices.fielddata.cache.size", "60")
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, ErrDuplicateKey))
		assert.EqualError(t, err, "Duplicated keys (indices.fielddata.cache.size) are provided.")
		var dup *DuplicateKeyError
		if assert.True(t, errors.As(err, &dup)) {
			assert.Equal(t, "indices.fielddata.cache.size", dup.Key)
		}
	}
	assert.Equal(t, "40", aws.StringValue(s.Options["indices.fielddata.cache.size"]), "map changed on duplicate key")

	assert.Same(t, s, s.ClearOptionsEntries())
	assert.Nil(t, s.Options)
	assert.NoError(t, s.AddOptionsEntry("indices.fielddata.cache.size", "60"))
}

func TestAddEntry_StructValues(t *testing.T) {
	r := new(CreateElasticsearchDomainRequest)
	opt := new(LogPublishingOption).SetEnabled(true)
	require.NoError(t, r.AddLogPublishingOptionsEntry(LogTypeIndexSlowLogs, opt))
	assert.Same(t, opt, r.LogPublishingOptions[LogTypeIndexSlowLogs])

	err := r.AddLogPublishingOptionsEntry(LogTypeIndexSlowLogs, new(LogPublishingOption))
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Same(t, opt, r.LogPublishingOptions[LogTypeIndexSlowLogs])

	res := new(DescribeElasticsearchInstanceTypeLimitsResult)
	require.NoError(t, res.AddLimitsByRoleEntry("data", new(Limits)))
	assert.Error(t, res.AddLimitsByRoleEntry("data", new(Limits)))
}

func TestEqual(t *testing.T) {
	a := testDomainStatus()

	t.Run("reflexive", func(t *testing.T) {
		assert.True(t, Equal(a, a))
		assert.True(t, Equal(*a, *a))
	})

	t.Run("population order", func(t *testing.T) {
		b := new(ElasticsearchDomainStatus).
			SetEndpoints(map[string]*string{"vpc": aws.String("vpc-logs.us-east-1.es.amazonaws.com")}).
			SetElasticsearchClusterConfig(new(ElasticsearchClusterConfig).
				SetInstanceCount(3).
				SetInstanceType(ESPartitionInstanceTypeR5LargeElasticsearch)).
			SetElasticsearchVersion("7.4").
			SetARN("arn:aws:es:us-east-1:123456789012:domain/logs").
			SetDomainName("logs").
			SetDomainId("123456789012/logs")
		assert.True(t, Equal(a, b))
		assert.True(t, Equal(b, a))
		assert.Equal(t, Hash(a), Hash(b))
	})

	t.Run("differs", func(t *testing.T) {
		b := testDomainStatus().SetDomainName("metrics")
		assert.False(t, Equal(a, b))

		c := testDomainStatus()
		c.ElasticsearchClusterConfig.SetInstanceCount(4)
		assert.False(t, Equal(a, c))

		assert.False(t, Equal(a, new(ElasticsearchDomainConfig)))
	})

	t.Run("nil and empty", func(t *testing.T) {
		x := new(VPCOptions).SetSubnetIds(nil)
		y := new(VPCOptions).SetSubnetIds([]*string{})
		assert.False(t, Equal(x, y))
		assert.True(t, Equal(new(VPCOptions), x))
	})

	t.Run("time instant", func(t *testing.T) {
		utc := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
		est := utc.In(time.FixedZone("EST", -5*60*60))
		x := new(OptionStatus).SetCreationDate(utc)
		y := new(OptionStatus).SetCreationDate(est)
		assert.True(t, Equal(x, y))
		assert.Equal(t, Hash(x), Hash(y))

		z := new(OptionStatus).SetCreationDate(utc.Add(time.Nanosecond))
		assert.False(t, Equal(x, z))
	})
}

func TestHash(t *testing.T) {
	t.Run("stable", func(t *testing.T) {
		assert.Equal(t, Hash(testDomainStatus()), Hash(testDomainStatus()))
	})

	t.Run("map order", func(t *testing.T) {
		x := new(AdvancedOptionsStatus)
		y := new(AdvancedOptionsStatus)
		keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
		for i := range keys {
			require.NoError(t, x.AddOptionsEntry(keys[i], keys[i]))
			j := len(keys) - 1 - i
			require.NoError(t, y.AddOptionsEntry(keys[j], keys[j]))
		}
		assert.True(t, Equal(x, y))
		assert.Equal(t, Hash(x), Hash(y))
	})

	t.Run("distinguishes", func(t *testing.T) {
		assert.NotEqual(t, Hash(new(VPCOptions)), Hash(new(VPCOptions).SetSubnetIds([]*string{})))
		assert.NotEqual(t, Hash(new(Tag).SetKey("ab").SetValue("c")), Hash(new(Tag).SetKey("a").SetValue("bc")))
		assert.NotEqual(t, Hash(testDomainStatus()), Hash(testDomainStatus().SetDeleted(true)))
	})

	t.Run("negative zero", func(t *testing.T) {
		x := new(RecurringCharge).SetRecurringChargeAmount(0)
		y := new(RecurringCharge).SetRecurringChargeAmount(math.Copysign(0, -1))
		assert.True(t, Equal(x, y))
		assert.Equal(t, Hash(x), Hash(y))
	})
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := new(CreateElasticsearchDomainRequest).
			SetDomainName("logs").
			SetCognitoOptions(new(CognitoOptions).SetUserPoolId("pool"))
		assert.NoError(t, r.Validate())
	})

	t.Run("required", func(t *testing.T) {
		err := new(AddTagsRequest).Validate()
		require.Error(t, err)
		inv, ok := err.(request.ErrInvalidParams)
		require.True(t, ok)
		assert.Equal(t, 2, inv.Len())
		assert.Equal(t, "AddTagsRequest", inv.Context)
	})

	t.Run("min length", func(t *testing.T) {
		err := new(CreateElasticsearchDomainRequest).SetDomainName("ab").Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DomainName")
	})

	t.Run("min value", func(t *testing.T) {
		r := new(PurchaseReservedElasticsearchInstanceOfferingRequest).
			SetReservedElasticsearchInstanceOfferingId("offering").
			SetReservationName("reservation-1").
			SetInstanceCount(0)
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "InstanceCount")
	})

	t.Run("nested", func(t *testing.T) {
		r := new(AddTagsRequest).
			SetARN("arn:aws:es:us-east-1:123456789012:domain/logs").
			SetTagList([]*Tag{new(Tag).SetKey("team")})
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TagList[0]")
		assert.Contains(t, err.Error(), "Value")

		u := new(UpdateElasticsearchDomainConfigRequest).
			SetDomainName("logs").
			SetAdvancedSecurityOptions(new(AdvancedSecurityOptionsInput).
				SetMasterUserOptions(new(MasterUserOptions).SetMasterUserPassword("short")))
		err = u.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "AdvancedSecurityOptions.MasterUserOptions")
	})
}

func TestString_Sensitive(t *testing.T) {
	m := new(MasterUserOptions).
		SetMasterUserARN("arn:aws:iam::123456789012:user/admin").
		SetMasterUserName("admin").
		SetMasterUserPassword("hunter2hunter2")
	s := m.String()
	assert.Contains(t, s, "arn:aws:iam::123456789012:user/admin")
	assert.NotContains(t, s, "hunter2hunter2")
	assert.Equal(t, s, m.GoString())
}

func TestElasticsearchDomainConfig_PendingOptions(t *testing.T) {
	active := new(OptionStatus).SetState(OptionStateActive)
	processing := new(OptionStatus).SetState(OptionStateProcessing)
	reindex := new(OptionStatus).SetState(OptionStateRequiresIndexDocuments)

	cfg := new(ElasticsearchDomainConfig).
		SetElasticsearchVersion(new(ElasticsearchVersionStatus).SetOptions("7.4").SetStatus(active)).
		SetEBSOptions(new(EBSOptionsStatus).SetStatus(processing)).
		SetAdvancedOptions(new(AdvancedOptionsStatus).SetStatus(reindex)).
		SetSnapshotOptions(new(SnapshotOptionsStatus))

	assert.Equal(t, []string{"AdvancedOptions", "EBSOptions", "SnapshotOptions"}, cfg.PendingOptions())
	assert.Len(t, cfg.OptionStatuses(), 4)
	assert.Empty(t, new(ElasticsearchDomainConfig).PendingOptions())

	assert.True(t, active.IsActive())
	assert.False(t, processing.IsActive())
	assert.False(t, (*OptionStatus)(nil).IsActive())
}

func TestEnumValues(t *testing.T) {
	assert.Equal(t, []string{"RequiresIndexDocuments", "Processing", "Active"}, OptionState_Values())
	assert.Equal(t, []string{"standard", "gp2", "io1"}, VolumeType_Values())
	assert.Contains(t, ESPartitionInstanceType_Values(), ESPartitionInstanceTypeUltrawarm1MediumElasticsearch)
	assert.Len(t, LogType_Values(), 3)
}
