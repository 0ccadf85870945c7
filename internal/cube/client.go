package cube

import (
	"context"
	"fmt"
	"math"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/agrisight/agrisight-cli/internal/crophealth"
	pb "github.com/agrisight/agrisight-cli/internal/cube/protobufs"
)

// DataCubeClient represents a client for the data cube gRPC service
type DataCubeClient struct {
	client pb.DataCubeServiceClient
	conn   *grpc.ClientConn
}

// NewDataCubeClient creates a new client connection to the data cube service
func NewDataCubeClient(serverAddr string) (*DataCubeClient, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to data cube service: %w", err)
	}

	client := pb.NewDataCubeServiceClient(conn)
	return &DataCubeClient{
		client: client,
		conn:   conn,
	}, nil
}

// Close closes the gRPC connection
func (c *DataCubeClient) Close() error {
	return c.conn.Close()
}

// Query asks the cube for every acquisition of one product over the area.
func (c *DataCubeClient) Query(ctx context.Context, product, areaWKT string, window crophealth.TimeRange) (crophealth.Grid, []crophealth.RawObservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	request := &pb.QueryRequest{
		AreaWkt:   areaWKT,
		StartDate: window.Start.Format(time.RFC3339),
		EndDate:   window.End.Format(time.RFC3339),
		Sources:   []string{product},
	}

	response, err := c.client.Query(ctx, request, grpc.MaxCallRecvMsgSize(math.MaxInt32), grpc.MaxCallSendMsgSize(math.MaxInt32))
	if err != nil {
		return crophealth.Grid{}, nil, fmt.Errorf("failed to call Query: %w", err)
	}

	grid, err := gridFromProto(response.Grid)
	if err != nil {
		return crophealth.Grid{}, nil, err
	}

	observations := make([]crophealth.RawObservation, 0, len(response.Observations))
	for _, pbObservation := range response.Observations {
		acquiredAt, err := time.Parse(time.RFC3339, pbObservation.AcquiredAt)
		if err != nil {
			return crophealth.Grid{}, nil, fmt.Errorf("failed to parse acquisition date: %w", err)
		}
		observations = append(observations, crophealth.RawObservation{
			Time:   acquiredAt,
			Source: pbObservation.Source,
			Red:    pbObservation.Red,
			NIR:    pbObservation.Nir,
			SCL:    pbObservation.Scl,
			CLD:    pbObservation.Cld,
		})
	}

	return grid, observations, nil
}

func gridFromProto(spec *pb.GridSpec) (crophealth.Grid, error) {
	if spec == nil {
		return crophealth.Grid{}, fmt.Errorf("cube response carries no grid")
	}
	if len(spec.GeoTransform) != 6 {
		return crophealth.Grid{}, fmt.Errorf("cube grid has %d geotransform coefficients, expected 6", len(spec.GeoTransform))
	}

	grid := crophealth.Grid{
		Width:  int(spec.Width),
		Height: int(spec.Height),
		EPSG:   int(spec.Epsg),
	}
	copy(grid.GeoTransform[:], spec.GeoTransform)
	return grid, nil
}
