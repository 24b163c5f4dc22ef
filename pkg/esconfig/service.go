package esconfig

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/client/metadata"
	"github.com/aws/aws-sdk-go/aws/request"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
	"github.com/aws/aws-sdk-go/private/protocol"
	"github.com/aws/aws-sdk-go/private/protocol/restjson"
)

// ESConfig is a client for the Amazon Elasticsearch Service configuration API.
// Methods are safe to use concurrently.
type ESConfig struct {
	*client.Client
}

const (
	// ServiceName is the name of the service.
	ServiceName = "es"

	// ServiceID is a unique identifier of a specific service.
	ServiceID = "Elasticsearch Service"

	// EndpointsID is the ID used to look up the service's endpoint.
	EndpointsID = ServiceName

	// APIVersion is the version of the configuration API.
	APIVersion = "2015-01-01"
)

// New creates a new instance of the ESConfig client with a session.
// If additional configuration is needed for the client instance use the optional
// aws.Config parameter to add your extra config.
//
// Example:
//
//   mySession := session.Must(session.NewSession())
//
//   // Create a ESConfig client from just a session.
//   svc := esconfig.New(mySession)
//
//   // Create a ESConfig client with additional configuration
//   svc := esconfig.New(mySession, aws.NewConfig().WithRegion("us-west-2"))
func New(p client.ConfigProvider, cfgs ...*aws.Config) *ESConfig {
	c := p.ClientConfig(EndpointsID, cfgs...)
	if c.SigningNameDerived || len(c.SigningName) == 0 {
		c.SigningName = EndpointsID
	}
	return newClient(*c.Config, c.Handlers, c.PartitionID, c.Endpoint, c.SigningRegion, c.SigningName, c.ResolvedRegion)
}

func newClient(cfg aws.Config, handlers request.Handlers, partitionID, endpoint, signingRegion, signingName, resolvedRegion string) *ESConfig {
	svc := &ESConfig{
		Client: client.New(
			cfg,
			metadata.ClientInfo{
				ServiceName:    ServiceName,
				ServiceID:      ServiceID,
				SigningName:    signingName,
				SigningRegion:  signingRegion,
				PartitionID:    partitionID,
				Endpoint:       endpoint,
				APIVersion:     APIVersion,
				ResolvedRegion: resolvedRegion,
			},
			handlers,
		),
	}

	svc.Handlers.Sign.PushBackNamed(v4.SignRequestHandler)
	svc.Handlers.Build.PushBackNamed(restjson.BuildHandler)
	svc.Handlers.Unmarshal.PushBackNamed(restjson.UnmarshalHandler)
	svc.Handlers.UnmarshalMeta.PushBackNamed(restjson.UnmarshalMetaHandler)
	svc.Handlers.UnmarshalError.PushBackNamed(
		protocol.NewUnmarshalErrorHandler(restjson.NewUnmarshalTypedError(exceptionFromCode)).NamedHandler(),
	)

	return svc
}

// newRequest creates a new request for an ESConfig operation.
func (c *ESConfig) newRequest(op *request.Operation, params, data interface{}) *request.Request {
	return c.NewRequest(op, params, data)
}

// send builds and sends one operation, unmarshaling the response into output.
// A nil output discards the response body.
func (c *ESConfig) send(ctx aws.Context, op *request.Operation, input, output interface{}, opts ...request.Option) error {
	req := c.newRequest(op, input, output)
	if output == nil {
		req.Handlers.Unmarshal.Swap(restjson.UnmarshalHandler.Name, protocol.UnmarshalDiscardBodyHandler)
	}
	req.SetContext(ctx)
	req.ApplyOptions(opts...)
	return req.Send()
}
