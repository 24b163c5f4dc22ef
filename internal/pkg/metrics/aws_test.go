package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/client/metadata"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/endpoints"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mintel/esconfig/internal/pkg/metrics/mocks"
)

func newMockAWSClient(t *testing.T, instrument func(*request.Handlers)) (*client.Client, func()) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			return
		}
		const code = http.StatusMethodNotAllowed
		http.Error(w, http.StatusText(code), code)
	})
	server := httptest.NewServer(mux)

	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials("AKID", "SECRET", ""),
		DisableSSL:  aws.Bool(true),
		Endpoint:    aws.String(server.URL),
		Region:      aws.String(endpoints.UsEast1RegionID),
		MaxRetries:  aws.Int(0),
	})
	require.NoError(t, err)
	instrument(&sess.Handlers)

	const serviceName = "Mock"
	c := sess.ClientConfig(serviceName)
	svc := client.New(
		*c.Config,
		metadata.ClientInfo{
			ServiceName:   serviceName,
			SigningRegion: c.SigningRegion,
			Endpoint:      c.Endpoint,
			APIVersion:    "2015-01-01",
		},
		c.Handlers,
	)
	return svc, server.Close
}

func TestInstrumentAWS_Observations(t *testing.T) {
	i := newAWSInstrumentation("", nil)
	duration := &mocks.ObserverVec{}
	i.duration = duration

	svc, teardown := newMockAWSClient(t, i.instrument)
	defer teardown()

	t.Run("success", func(t *testing.T) {
		labels := prometheus.Labels{
			LabelRegion:     endpoints.UsEast1RegionID,
			LabelService:    "Mock",
			LabelOperation:  "DescribeThing",
			LabelMethod:     http.MethodGet,
			LabelStatusCode: strconv.Itoa(http.StatusOK),
		}
		o := &mocks.Observer{}
		duration.On("With", labels).Return(o).Once()
		o.On("Observe", mock.AnythingOfType("float64")).Return().Once()

		req := svc.NewRequest(&request.Operation{
			Name:       "DescribeThing",
			HTTPMethod: http.MethodGet,
		}, nil, nil)
		assert.NoError(t, req.Send())
		duration.AssertExpectations(t)
		o.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		labels := prometheus.Labels{
			LabelRegion:     endpoints.UsEast1RegionID,
			LabelService:    "Mock",
			LabelOperation:  "DeleteThing",
			LabelMethod:     http.MethodPost,
			LabelStatusCode: strconv.Itoa(http.StatusMethodNotAllowed),
		}
		o := &mocks.Observer{}
		duration.On("With", labels).Return(o).Once()
		o.On("Observe", mock.AnythingOfType("float64")).Return().Once()

		req := svc.NewRequest(&request.Operation{
			Name:       "DeleteThing",
			HTTPMethod: http.MethodPost,
		}, nil, nil)
		assert.Error(t, req.Send())
		duration.AssertExpectations(t)
		o.AssertExpectations(t)
	})
}

func TestInstrumentAWS_Register(t *testing.T) {
	r := prometheus.NewRegistry()
	svc, teardown := newMockAWSClient(t, func(h *request.Handlers) {
		require.NoError(t, InstrumentAWS(h, r, "esconfig", nil))
	})
	defer teardown()

	req := svc.NewRequest(&request.Operation{
		Name:       "DescribeThing",
		HTTPMethod: http.MethodGet,
	}, nil, nil)
	require.NoError(t, req.Send())

	// One duration histogram and one (now zero) in-flight gauge.
	assert.Equal(t, 2, countMetrics(t, r))

	// Registering twice on the same registry fails.
	h := request.Handlers{}
	assert.Error(t, InstrumentAWS(&h, r, "esconfig", nil))
}
