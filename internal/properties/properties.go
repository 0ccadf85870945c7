package properties

import (
	"os"
	"strings"
)

func DataRoot() string {
	if root := os.Getenv("DATA_ROOT"); root != "" {
		return root
	}
	return "./data"
}

func CopernicusClientID() string {
	return os.Getenv("COPERNICUS_CLIENT_ID")
}

func CopernicusClientSecret() string {
	return os.Getenv("COPERNICUS_CLIENT_SECRET")
}

func CopernicusTokenURL() string {
	if url := os.Getenv("COPERNICUS_TOKEN_URL"); url != "" {
		return url
	}
	return "https://identity.dataspace.copernicus.eu/auth/realms/CDSE/protocol/openid-connect/token"
}

func CopernicusProcessURL() string {
	if url := os.Getenv("COPERNICUS_PROCESS_URL"); url != "" {
		return url
	}
	return "https://sh.dataspace.copernicus.eu/api/v1/process"
}

// ArchiveBackend selects where observations are loaded from,
// either "sentinel" (Copernicus process API) or "cube" (gRPC data cube).
func ArchiveBackend() string {
	if backend := os.Getenv("ARCHIVE_BACKEND"); backend != "" {
		return backend
	}
	return "sentinel"
}

func SentinelCollections() []string {
	return splitList(os.Getenv("SENTINEL_COLLECTIONS"), []string{"sentinel-2-l2a"})
}

func CubeGrpcAddress() string {
	if addr := os.Getenv("CUBE_GRPC_ADDRESS"); addr != "" {
		return addr
	}
	return "localhost:50051"
}

func CubeProducts() []string {
	return splitList(os.Getenv("CUBE_PRODUCTS"), []string{"s2a", "s2b"})
}

func DiscordErrorNotificationUrl() string {
	return os.Getenv("DISCORD_ERROR_NOTIFICATION_URL")
}

func DiscordSuccessNotificationUrl() string {
	return os.Getenv("DISCORD_SUCCESS_NOTIFICATION_URL")
}

func splitList(raw string, fallback []string) []string {
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
