package esconfig

import (
	"sort"

	"github.com/aws/aws-sdk-go/aws"
)

// IsActive reports whether the option change has been deployed.
// A nil OptionStatus is not active.
func (s *OptionStatus) IsActive() bool {
	return s != nil && aws.StringValue(s.State) == OptionStateActive
}

// OptionStatuses returns the OptionStatus of every option group present
// in the config, keyed by option group name (e.g. "EBSOptions").
func (s *ElasticsearchDomainConfig) OptionStatuses() map[string]*OptionStatus {
	out := make(map[string]*OptionStatus)
	if v := s.ElasticsearchVersion; v != nil {
		out["ElasticsearchVersion"] = v.Status
	}
	if v := s.ElasticsearchClusterConfig; v != nil {
		out["ElasticsearchClusterConfig"] = v.Status
	}
	if v := s.EBSOptions; v != nil {
		out["EBSOptions"] = v.Status
	}
	if v := s.AccessPolicies; v != nil {
		out["AccessPolicies"] = v.Status
	}
	if v := s.SnapshotOptions; v != nil {
		out["SnapshotOptions"] = v.Status
	}
	if v := s.VPCOptions; v != nil {
		out["VPCOptions"] = v.Status
	}
	if v := s.CognitoOptions; v != nil {
		out["CognitoOptions"] = v.Status
	}
	if v := s.EncryptionAtRestOptions; v != nil {
		out["EncryptionAtRestOptions"] = v.Status
	}
	if v := s.NodeToNodeEncryptionOptions; v != nil {
		out["NodeToNodeEncryptionOptions"] = v.Status
	}
	if v := s.AdvancedOptions; v != nil {
		out["AdvancedOptions"] = v.Status
	}
	if v := s.LogPublishingOptions; v != nil {
		out["LogPublishingOptions"] = v.Status
	}
	if v := s.DomainEndpointOptions; v != nil {
		out["DomainEndpointOptions"] = v.Status
	}
	if v := s.AdvancedSecurityOptions; v != nil {
		out["AdvancedSecurityOptions"] = v.Status
	}
	return out
}

// PendingOptions returns the sorted names of the option groups whose
// change has not been deployed yet.
func (s *ElasticsearchDomainConfig) PendingOptions() []string {
	var pending []string
	for name, st := range s.OptionStatuses() {
		if !st.IsActive() {
			pending = append(pending, name)
		}
	}
	sort.Strings(pending)
	return pending
}
