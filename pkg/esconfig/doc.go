// Package esconfig models the Amazon Elasticsearch Service configuration API
// (version 2015-01-01) and wires those models into the aws-sdk-go runtime.
//
// Every request, result and option type is a plain value type: optional
// pointer/slice/map fields, fluent Set* methods, a String rendering, and
// package-level Equal and Hash helpers. Request signing, retries, transport,
// and response unmarshaling are provided by github.com/aws/aws-sdk-go; this
// package only declares the shapes and the REST bindings of each operation.
//
// Example:
//
//   sess := session.Must(session.NewSession())
//   svc := esconfig.New(sess)
//   out, err := svc.DescribeElasticsearchDomain(
//       new(esconfig.DescribeElasticsearchDomainRequest).SetDomainName("logs"),
//   )
//
// Field length and enum constraints are documented on each field and checked
// by Validate where the service marks them required or bounded below. Pattern
// constraints are left to the service.
package esconfig
