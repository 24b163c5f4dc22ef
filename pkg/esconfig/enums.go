package esconfig

// The state of a requested change. One of the following:
//
//   * RequiresIndexDocuments: The change needs a reindex before it applies.
//
//   * Processing: The request change is still in-process.
//
//   * Active: The request change is processed and deployed to the Elasticsearch domain.
const (
	// OptionStateRequiresIndexDocuments is a OptionState enum value
	OptionStateRequiresIndexDocuments = "RequiresIndexDocuments"

	// OptionStateProcessing is a OptionState enum value
	OptionStateProcessing = "Processing"

	// OptionStateActive is a OptionState enum value
	OptionStateActive = "Active"
)

// OptionState_Values returns all elements of the OptionState enum
func OptionState_Values() []string {
	return []string{
		OptionStateRequiresIndexDocuments,
		OptionStateProcessing,
		OptionStateActive,
	}
}

const (
	// ESPartitionInstanceTypeM3MediumElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM3MediumElasticsearch = "m3.medium.elasticsearch"

	// ESPartitionInstanceTypeM3LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM3LargeElasticsearch = "m3.large.elasticsearch"

	// ESPartitionInstanceTypeM3XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM3XlargeElasticsearch = "m3.xlarge.elasticsearch"

	// ESPartitionInstanceTypeM32xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM32xlargeElasticsearch = "m3.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeM4LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM4LargeElasticsearch = "m4.large.elasticsearch"

	// ESPartitionInstanceTypeM4XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM4XlargeElasticsearch = "m4.xlarge.elasticsearch"

	// ESPartitionInstanceTypeM42xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM42xlargeElasticsearch = "m4.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeM44xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM44xlargeElasticsearch = "m4.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeM410xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM410xlargeElasticsearch = "m4.10xlarge.elasticsearch"

	// ESPartitionInstanceTypeM5LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM5LargeElasticsearch = "m5.large.elasticsearch"

	// ESPartitionInstanceTypeM5XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM5XlargeElasticsearch = "m5.xlarge.elasticsearch"

	// ESPartitionInstanceTypeM52xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM52xlargeElasticsearch = "m5.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeM54xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM54xlargeElasticsearch = "m5.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeM512xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeM512xlargeElasticsearch = "m5.12xlarge.elasticsearch"

	// ESPartitionInstanceTypeR5LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR5LargeElasticsearch = "r5.large.elasticsearch"

	// ESPartitionInstanceTypeR5XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR5XlargeElasticsearch = "r5.xlarge.elasticsearch"

	// ESPartitionInstanceTypeR52xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR52xlargeElasticsearch = "r5.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeR54xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR54xlargeElasticsearch = "r5.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeR512xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR512xlargeElasticsearch = "r5.12xlarge.elasticsearch"

	// ESPartitionInstanceTypeC5LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC5LargeElasticsearch = "c5.large.elasticsearch"

	// ESPartitionInstanceTypeC5XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC5XlargeElasticsearch = "c5.xlarge.elasticsearch"

	// ESPartitionInstanceTypeC52xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC52xlargeElasticsearch = "c5.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeC54xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC54xlargeElasticsearch = "c5.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeC59xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC59xlargeElasticsearch = "c5.9xlarge.elasticsearch"

	// ESPartitionInstanceTypeC518xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC518xlargeElasticsearch = "c5.18xlarge.elasticsearch"

	// ESPartitionInstanceTypeUltrawarm1MediumElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeUltrawarm1MediumElasticsearch = "ultrawarm1.medium.elasticsearch"

	// ESPartitionInstanceTypeUltrawarm1LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeUltrawarm1LargeElasticsearch = "ultrawarm1.large.elasticsearch"

	// ESPartitionInstanceTypeT2MicroElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeT2MicroElasticsearch = "t2.micro.elasticsearch"

	// ESPartitionInstanceTypeT2SmallElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeT2SmallElasticsearch = "t2.small.elasticsearch"

	// ESPartitionInstanceTypeT2MediumElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeT2MediumElasticsearch = "t2.medium.elasticsearch"

	// ESPartitionInstanceTypeR3LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR3LargeElasticsearch = "r3.large.elasticsearch"

	// ESPartitionInstanceTypeR3XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR3XlargeElasticsearch = "r3.xlarge.elasticsearch"

	// ESPartitionInstanceTypeR32xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR32xlargeElasticsearch = "r3.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeR34xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR34xlargeElasticsearch = "r3.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeR38xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR38xlargeElasticsearch = "r3.8xlarge.elasticsearch"

	// ESPartitionInstanceTypeI2XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI2XlargeElasticsearch = "i2.xlarge.elasticsearch"

	// ESPartitionInstanceTypeI22xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI22xlargeElasticsearch = "i2.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeD2XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeD2XlargeElasticsearch = "d2.xlarge.elasticsearch"

	// ESPartitionInstanceTypeD22xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeD22xlargeElasticsearch = "d2.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeD24xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeD24xlargeElasticsearch = "d2.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeD28xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeD28xlargeElasticsearch = "d2.8xlarge.elasticsearch"

	// ESPartitionInstanceTypeC4LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC4LargeElasticsearch = "c4.large.elasticsearch"

	// ESPartitionInstanceTypeC4XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC4XlargeElasticsearch = "c4.xlarge.elasticsearch"

	// ESPartitionInstanceTypeC42xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC42xlargeElasticsearch = "c4.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeC44xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC44xlargeElasticsearch = "c4.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeC48xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeC48xlargeElasticsearch = "c4.8xlarge.elasticsearch"

	// ESPartitionInstanceTypeR4LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR4LargeElasticsearch = "r4.large.elasticsearch"

	// ESPartitionInstanceTypeR4XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR4XlargeElasticsearch = "r4.xlarge.elasticsearch"

	// ESPartitionInstanceTypeR42xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR42xlargeElasticsearch = "r4.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeR44xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR44xlargeElasticsearch = "r4.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeR48xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR48xlargeElasticsearch = "r4.8xlarge.elasticsearch"

	// ESPartitionInstanceTypeR416xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeR416xlargeElasticsearch = "r4.16xlarge.elasticsearch"

	// ESPartitionInstanceTypeI3LargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI3LargeElasticsearch = "i3.large.elasticsearch"

	// ESPartitionInstanceTypeI3XlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI3XlargeElasticsearch = "i3.xlarge.elasticsearch"

	// ESPartitionInstanceTypeI32xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI32xlargeElasticsearch = "i3.2xlarge.elasticsearch"

	// ESPartitionInstanceTypeI34xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI34xlargeElasticsearch = "i3.4xlarge.elasticsearch"

	// ESPartitionInstanceTypeI38xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI38xlargeElasticsearch = "i3.8xlarge.elasticsearch"

	// ESPartitionInstanceTypeI316xlargeElasticsearch is a ESPartitionInstanceType enum value
	ESPartitionInstanceTypeI316xlargeElasticsearch = "i3.16xlarge.elasticsearch"
)

// ESPartitionInstanceType_Values returns all elements of the ESPartitionInstanceType enum
func ESPartitionInstanceType_Values() []string {
	return []string{
		ESPartitionInstanceTypeM3MediumElasticsearch,
		ESPartitionInstanceTypeM3LargeElasticsearch,
		ESPartitionInstanceTypeM3XlargeElasticsearch,
		ESPartitionInstanceTypeM32xlargeElasticsearch,
		ESPartitionInstanceTypeM4LargeElasticsearch,
		ESPartitionInstanceTypeM4XlargeElasticsearch,
		ESPartitionInstanceTypeM42xlargeElasticsearch,
		ESPartitionInstanceTypeM44xlargeElasticsearch,
		ESPartitionInstanceTypeM410xlargeElasticsearch,
		ESPartitionInstanceTypeM5LargeElasticsearch,
		ESPartitionInstanceTypeM5XlargeElasticsearch,
		ESPartitionInstanceTypeM52xlargeElasticsearch,
		ESPartitionInstanceTypeM54xlargeElasticsearch,
		ESPartitionInstanceTypeM512xlargeElasticsearch,
		ESPartitionInstanceTypeR5LargeElasticsearch,
		ESPartitionInstanceTypeR5XlargeElasticsearch,
		ESPartitionInstanceTypeR52xlargeElasticsearch,
		ESPartitionInstanceTypeR54xlargeElasticsearch,
		ESPartitionInstanceTypeR512xlargeElasticsearch,
		ESPartitionInstanceTypeC5LargeElasticsearch,
		ESPartitionInstanceTypeC5XlargeElasticsearch,
		ESPartitionInstanceTypeC52xlargeElasticsearch,
		ESPartitionInstanceTypeC54xlargeElasticsearch,
		ESPartitionInstanceTypeC59xlargeElasticsearch,
		ESPartitionInstanceTypeC518xlargeElasticsearch,
		ESPartitionInstanceTypeUltrawarm1MediumElasticsearch,
		ESPartitionInstanceTypeUltrawarm1LargeElasticsearch,
		ESPartitionInstanceTypeT2MicroElasticsearch,
		ESPartitionInstanceTypeT2SmallElasticsearch,
		ESPartitionInstanceTypeT2MediumElasticsearch,
		ESPartitionInstanceTypeR3LargeElasticsearch,
		ESPartitionInstanceTypeR3XlargeElasticsearch,
		ESPartitionInstanceTypeR32xlargeElasticsearch,
		ESPartitionInstanceTypeR34xlargeElasticsearch,
		ESPartitionInstanceTypeR38xlargeElasticsearch,
		ESPartitionInstanceTypeI2XlargeElasticsearch,
		ESPartitionInstanceTypeI22xlargeElasticsearch,
		ESPartitionInstanceTypeD2XlargeElasticsearch,
		ESPartitionInstanceTypeD22xlargeElasticsearch,
		ESPartitionInstanceTypeD24xlargeElasticsearch,
		ESPartitionInstanceTypeD28xlargeElasticsearch,
		ESPartitionInstanceTypeC4LargeElasticsearch,
		ESPartitionInstanceTypeC4XlargeElasticsearch,
		ESPartitionInstanceTypeC42xlargeElasticsearch,
		ESPartitionInstanceTypeC44xlargeElasticsearch,
		ESPartitionInstanceTypeC48xlargeElasticsearch,
		ESPartitionInstanceTypeR4LargeElasticsearch,
		ESPartitionInstanceTypeR4XlargeElasticsearch,
		ESPartitionInstanceTypeR42xlargeElasticsearch,
		ESPartitionInstanceTypeR44xlargeElasticsearch,
		ESPartitionInstanceTypeR48xlargeElasticsearch,
		ESPartitionInstanceTypeR416xlargeElasticsearch,
		ESPartitionInstanceTypeI3LargeElasticsearch,
		ESPartitionInstanceTypeI3XlargeElasticsearch,
		ESPartitionInstanceTypeI32xlargeElasticsearch,
		ESPartitionInstanceTypeI34xlargeElasticsearch,
		ESPartitionInstanceTypeI38xlargeElasticsearch,
		ESPartitionInstanceTypeI316xlargeElasticsearch,
	}
}

const (
	// ESWarmPartitionInstanceTypeUltrawarm1MediumElasticsearch is a ESWarmPartitionInstanceType enum value
	ESWarmPartitionInstanceTypeUltrawarm1MediumElasticsearch = "ultrawarm1.medium.elasticsearch"

	// ESWarmPartitionInstanceTypeUltrawarm1LargeElasticsearch is a ESWarmPartitionInstanceType enum value
	ESWarmPartitionInstanceTypeUltrawarm1LargeElasticsearch = "ultrawarm1.large.elasticsearch"
)

// ESWarmPartitionInstanceType_Values returns all elements of the ESWarmPartitionInstanceType enum
func ESWarmPartitionInstanceType_Values() []string {
	return []string{
		ESWarmPartitionInstanceTypeUltrawarm1MediumElasticsearch,
		ESWarmPartitionInstanceTypeUltrawarm1LargeElasticsearch,
	}
}

// The type of EBS volume, standard, gp2, or io1. See Configuring EBS-based
// Storage (http://docs.aws.amazon.com/elasticsearch-service/latest/developerguide/es-createupdatedomains.html#es-createdomain-configure-ebs)
// for more information.
const (
	// VolumeTypeStandard is a VolumeType enum value
	VolumeTypeStandard = "standard"

	// VolumeTypeGp2 is a VolumeType enum value
	VolumeTypeGp2 = "gp2"

	// VolumeTypeIo1 is a VolumeType enum value
	VolumeTypeIo1 = "io1"
)

// VolumeType_Values returns all elements of the VolumeType enum
func VolumeType_Values() []string {
	return []string{
		VolumeTypeStandard,
		VolumeTypeGp2,
		VolumeTypeIo1,
	}
}

// Type of Log File, it can be one of the following:
//
//   * INDEX_SLOW_LOGS: Index slow logs contain insert requests that took more
//   time than configured index query log threshold to execute.
//
//   * SEARCH_SLOW_LOGS: Search slow logs contain search queries that took
//   more time than configured search query log threshold to execute.
//
//   * ES_APPLICATION_LOGS: Elasticsearch application logs contain information
//   about errors and warnings raised during the operation of the service and
//   can be useful for troubleshooting.
const (
	// LogTypeIndexSlowLogs is a LogType enum value
	LogTypeIndexSlowLogs = "INDEX_SLOW_LOGS"

	// LogTypeSearchSlowLogs is a LogType enum value
	LogTypeSearchSlowLogs = "SEARCH_SLOW_LOGS"

	// LogTypeEsApplicationLogs is a LogType enum value
	LogTypeEsApplicationLogs = "ES_APPLICATION_LOGS"
)

// LogType_Values returns all elements of the LogType enum
func LogType_Values() []string {
	return []string{
		LogTypeIndexSlowLogs,
		LogTypeSearchSlowLogs,
		LogTypeEsApplicationLogs,
	}
}

const (
	// TLSSecurityPolicyPolicyMinTls10201907 is a TLSSecurityPolicy enum value
	TLSSecurityPolicyPolicyMinTls10201907 = "Policy-Min-TLS-1-0-2019-07"

	// TLSSecurityPolicyPolicyMinTls12201907 is a TLSSecurityPolicy enum value
	TLSSecurityPolicyPolicyMinTls12201907 = "Policy-Min-TLS-1-2-2019-07"
)

// TLSSecurityPolicy_Values returns all elements of the TLSSecurityPolicy enum
func TLSSecurityPolicy_Values() []string {
	return []string{
		TLSSecurityPolicyPolicyMinTls10201907,
		TLSSecurityPolicyPolicyMinTls12201907,
	}
}

const (
	// DeploymentStatusPendingUpdate is a DeploymentStatus enum value
	DeploymentStatusPendingUpdate = "PENDING_UPDATE"

	// DeploymentStatusInProgress is a DeploymentStatus enum value
	DeploymentStatusInProgress = "IN_PROGRESS"

	// DeploymentStatusCompleted is a DeploymentStatus enum value
	DeploymentStatusCompleted = "COMPLETED"

	// DeploymentStatusNotEligible is a DeploymentStatus enum value
	DeploymentStatusNotEligible = "NOT_ELIGIBLE"

	// DeploymentStatusEligible is a DeploymentStatus enum value
	DeploymentStatusEligible = "ELIGIBLE"
)

// DeploymentStatus_Values returns all elements of the DeploymentStatus enum
func DeploymentStatus_Values() []string {
	return []string{
		DeploymentStatusPendingUpdate,
		DeploymentStatusInProgress,
		DeploymentStatusCompleted,
		DeploymentStatusNotEligible,
		DeploymentStatusEligible,
	}
}

const (
	// UpgradeStepPreUpgradeCheck is a UpgradeStep enum value
	UpgradeStepPreUpgradeCheck = "PRE_UPGRADE_CHECK"

	// UpgradeStepSnapshot is a UpgradeStep enum value
	UpgradeStepSnapshot = "SNAPSHOT"

	// UpgradeStepUpgrade is a UpgradeStep enum value
	UpgradeStepUpgrade = "UPGRADE"
)

// UpgradeStep_Values returns all elements of the UpgradeStep enum
func UpgradeStep_Values() []string {
	return []string{
		UpgradeStepPreUpgradeCheck,
		UpgradeStepSnapshot,
		UpgradeStepUpgrade,
	}
}

const (
	// UpgradeStatusInProgress is a UpgradeStatus enum value
	UpgradeStatusInProgress = "IN_PROGRESS"

	// UpgradeStatusSucceeded is a UpgradeStatus enum value
	UpgradeStatusSucceeded = "SUCCEEDED"

	// UpgradeStatusSucceededWithIssues is a UpgradeStatus enum value
	UpgradeStatusSucceededWithIssues = "SUCCEEDED_WITH_ISSUES"

	// UpgradeStatusFailed is a UpgradeStatus enum value
	UpgradeStatusFailed = "FAILED"
)

// UpgradeStatus_Values returns all elements of the UpgradeStatus enum
func UpgradeStatus_Values() []string {
	return []string{
		UpgradeStatusInProgress,
		UpgradeStatusSucceeded,
		UpgradeStatusSucceededWithIssues,
		UpgradeStatusFailed,
	}
}

const (
	// PackageTypeTxtDictionary is a PackageType enum value
	PackageTypeTxtDictionary = "TXT-DICTIONARY"
)

// PackageType_Values returns all elements of the PackageType enum
func PackageType_Values() []string {
	return []string{
		PackageTypeTxtDictionary,
	}
}

const (
	// PackageStatusCopying is a PackageStatus enum value
	PackageStatusCopying = "COPYING"

	// PackageStatusCopyFailed is a PackageStatus enum value
	PackageStatusCopyFailed = "COPY_FAILED"

	// PackageStatusValidating is a PackageStatus enum value
	PackageStatusValidating = "VALIDATING"

	// PackageStatusValidationFailed is a PackageStatus enum value
	PackageStatusValidationFailed = "VALIDATION_FAILED"

	// PackageStatusAvailable is a PackageStatus enum value
	PackageStatusAvailable = "AVAILABLE"

	// PackageStatusDeleting is a PackageStatus enum value
	PackageStatusDeleting = "DELETING"

	// PackageStatusDeleted is a PackageStatus enum value
	PackageStatusDeleted = "DELETED"

	// PackageStatusDeleteFailed is a PackageStatus enum value
	PackageStatusDeleteFailed = "DELETE_FAILED"
)

// PackageStatus_Values returns all elements of the PackageStatus enum
func PackageStatus_Values() []string {
	return []string{
		PackageStatusCopying,
		PackageStatusCopyFailed,
		PackageStatusValidating,
		PackageStatusValidationFailed,
		PackageStatusAvailable,
		PackageStatusDeleting,
		PackageStatusDeleted,
		PackageStatusDeleteFailed,
	}
}

const (
	// DomainPackageStatusAssociating is a DomainPackageStatus enum value
	DomainPackageStatusAssociating = "ASSOCIATING"

	// DomainPackageStatusAssociationFailed is a DomainPackageStatus enum value
	DomainPackageStatusAssociationFailed = "ASSOCIATION_FAILED"

	// DomainPackageStatusActive is a DomainPackageStatus enum value
	DomainPackageStatusActive = "ACTIVE"

	// DomainPackageStatusDissociating is a DomainPackageStatus enum value
	DomainPackageStatusDissociating = "DISSOCIATING"

	// DomainPackageStatusDissociationFailed is a DomainPackageStatus enum value
	DomainPackageStatusDissociationFailed = "DISSOCIATION_FAILED"
)

// DomainPackageStatus_Values returns all elements of the DomainPackageStatus enum
func DomainPackageStatus_Values() []string {
	return []string{
		DomainPackageStatusAssociating,
		DomainPackageStatusAssociationFailed,
		DomainPackageStatusActive,
		DomainPackageStatusDissociating,
		DomainPackageStatusDissociationFailed,
	}
}

const (
	// ReservedElasticsearchInstancePaymentOptionAllUpfront is a ReservedElasticsearchInstancePaymentOption enum value
	ReservedElasticsearchInstancePaymentOptionAllUpfront = "ALL_UPFRONT"

	// ReservedElasticsearchInstancePaymentOptionPartialUpfront is a ReservedElasticsearchInstancePaymentOption enum value
	ReservedElasticsearchInstancePaymentOptionPartialUpfront = "PARTIAL_UPFRONT"

	// ReservedElasticsearchInstancePaymentOptionNoUpfront is a ReservedElasticsearchInstancePaymentOption enum value
	ReservedElasticsearchInstancePaymentOptionNoUpfront = "NO_UPFRONT"
)

// ReservedElasticsearchInstancePaymentOption_Values returns all elements of the ReservedElasticsearchInstancePaymentOption enum
func ReservedElasticsearchInstancePaymentOption_Values() []string {
	return []string{
		ReservedElasticsearchInstancePaymentOptionAllUpfront,
		ReservedElasticsearchInstancePaymentOptionPartialUpfront,
		ReservedElasticsearchInstancePaymentOptionNoUpfront,
	}
}

const (
	// DescribePackagesFilterNamePackageID is a DescribePackagesFilterName enum value
	DescribePackagesFilterNamePackageID = "PackageID"

	// DescribePackagesFilterNamePackageName is a DescribePackagesFilterName enum value
	DescribePackagesFilterNamePackageName = "PackageName"

	// DescribePackagesFilterNamePackageStatus is a DescribePackagesFilterName enum value
	DescribePackagesFilterNamePackageStatus = "PackageStatus"
)

// DescribePackagesFilterName_Values returns all elements of the DescribePackagesFilterName enum
func DescribePackagesFilterName_Values() []string {
	return []string{
		DescribePackagesFilterNamePackageID,
		DescribePackagesFilterNamePackageName,
		DescribePackagesFilterNamePackageStatus,
	}
}
