package mocks

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/mock"

	"github.com/mintel/esconfig/pkg/esconfig"
)

// AnyContext can be used in mock assertions to test that a context.Context was passed.
//
//   m.On("DescribeElasticsearchDomainConfigWithContext", mocks.AnyContext, input)
var AnyContext = mock.MatchedBy(func(ctx context.Context) bool {
	return ctx != nil
})

// DomainsRequest matches a DescribeElasticsearchDomainsRequest for
// the given domain names, in any order.
func DomainsRequest(names ...string) interface{} {
	want := append([]string(nil), names...)
	sort.Strings(want)
	return mock.MatchedBy(func(in *esconfig.DescribeElasticsearchDomainsRequest) bool {
		g := aws.StringValueSlice(in.DomainNames)
		sort.Strings(g)
		if len(g) != len(want) {
			return false
		}
		for i := range g {
			if g[i] != want[i] {
				return false
			}
		}
		return true
	})
}
