package cube

import (
	"context"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/paulmach/orb/encoding/wkt"
)

// Source adapts one data cube product to the loader's source contract.
// Several sources can share the same client connection.
type Source struct {
	client  *DataCubeClient
	product string
}

func NewSource(client *DataCubeClient, product string) *Source {
	return &Source{client: client, product: product}
}

func (s *Source) Name() string {
	return s.product
}

func (s *Source) Query(ctx context.Context, area crophealth.Area, window crophealth.TimeRange) (crophealth.Grid, []crophealth.RawObservation, error) {
	return s.client.Query(ctx, s.product, wkt.MarshalString(area.Polygon), window)
}
