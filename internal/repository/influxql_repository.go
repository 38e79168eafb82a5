package repository

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"WeRadiate.thermoq/internal/models"
	"WeRadiate.thermoq/internal/version"
)

// Repository executes assembled statements against the analytics server.
type Repository interface {
	Query(ctx context.Context, req models.QueryRequest) (io.ReadCloser, error)
}

// InfluxQLRepository dispatches statements over the InfluxDB 1.x HTTP
// query endpoint.
type InfluxQLRepository struct {
	client  *resty.Client
	baseURL string
	db      string
	pretty  bool
	log     zerolog.Logger
}

// NewInfluxQLRepository creates a new InfluxQLRepository. baseURL is
// the scheme, host and path prefix the /query endpoint hangs off.
func NewInfluxQLRepository(baseURL, db string, pretty bool, log zerolog.Logger) *InfluxQLRepository {
	client := resty.New()
	// The body must reach stdout exactly as the server sent it.
	client.SetDoNotParseResponse(true)
	client.SetHeader("User-Agent", version.UserAgent())

	return &InfluxQLRepository{
		client:  client,
		baseURL: baseURL,
		db:      db,
		pretty:  pretty,
		log:     log,
	}
}

// Query issues the GET and returns the unread response body; the
// caller owns closing it. An HTTP error status is not an error here,
// the body is returned for printing either way. Only a transport
// failure is fatal.
func (r *InfluxQLRepository) Query(ctx context.Context, req models.QueryRequest) (io.ReadCloser, error) {
	r.log.Debug().Str("db", r.db).Str("q", req.Statement).Msg("executing query")

	resp, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("pretty", strconv.FormatBool(r.pretty)).
		SetQueryParam("db", r.db).
		SetQueryParam("q", req.Statement).
		SetBasicAuth(req.User, req.Password).
		Get(r.baseURL + "/query")
	if err != nil {
		return nil, models.NewCLIError(models.ErrorCodeTransport,
			fmt.Sprintf("error querying %s", r.baseURL), err, 1)
	}

	r.log.Debug().Str("status", resp.Status()).Msg("response received")
	return resp.RawBody(), nil
}
