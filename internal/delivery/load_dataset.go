package delivery

import (
	"context"
	"fmt"
	"strings"

	"github.com/agrisight/agrisight-cli/internal/cache"
	"github.com/agrisight/agrisight-cli/internal/crophealth"
	"github.com/agrisight/agrisight-cli/internal/cube"
	"github.com/agrisight/agrisight-cli/internal/notification"
	"github.com/agrisight/agrisight-cli/internal/properties"
	"github.com/agrisight/agrisight-cli/internal/sentinel"
)

// LoadPaddockDataset runs the full load workflow for one paddock and window:
// resolve the paddock polygon, hit the dataset cache, otherwise query the
// configured archive backend and cache the merged result. Webhook
// notifications fire on the slow path only, cached loads are silent.
func LoadPaddockDataset(ctx context.Context, farm, paddock string, window crophealth.TimeRange) (*crophealth.Dataset, error) {
	area, err := crophealth.LoadArea(farm, paddock)
	if err != nil {
		return nil, err
	}

	backend := properties.ArchiveBackend()
	var names []string
	switch backend {
	case "sentinel":
		names = properties.SentinelCollections()
	case "cube":
		names = properties.CubeProducts()
	default:
		return nil, fmt.Errorf("unknown archive backend '%s', expected 'sentinel' or 'cube'", backend)
	}

	datasetCache := cache.NewFileCache[crophealth.Dataset]("datasets")
	cacheKey := datasetCache.GenerateKey(farm, paddock,
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"),
		backend, strings.Join(names, "_"))
	if cached, found := datasetCache.Get(cacheKey); found {
		fmt.Printf("Using cached dataset for %s/%s with %d observations\n", farm, paddock, cached.Len())
		return &cached, nil
	}

	var sources []crophealth.Source
	if backend == "cube" {
		client, err := cube.NewDataCubeClient(properties.CubeGrpcAddress())
		if err != nil {
			return nil, err
		}
		defer client.Close()
		for _, product := range names {
			sources = append(sources, cube.NewSource(client, product))
		}
	} else {
		for _, collection := range names {
			source, err := sentinel.NewSource(collection)
			if err != nil {
				return nil, err
			}
			sources = append(sources, source)
		}
	}

	dataset, err := crophealth.Load(ctx, area, window, sources...)
	if err != nil {
		if notification.Enabled() {
			notification.SendDiscordErrorNotification(fmt.Sprintf("Loading %s/%s between %s and %s failed: %v",
				farm, paddock, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"), err))
		}
		return nil, err
	}

	if err := datasetCache.Set(cacheKey, *dataset); err != nil {
		fmt.Printf("failed to cache dataset: %v\n", err)
	}

	if notification.Enabled() {
		notification.SendDiscordSuccessNotification(fmt.Sprintf("Loaded %d observations for %s/%s between %s and %s.",
			dataset.Len(), farm, paddock, window.Start.Format("2006-01-02"), window.End.Format("2006-01-02")))
	}

	return dataset, nil
}
