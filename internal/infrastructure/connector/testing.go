//go:build integration
// +build integration

package connector

import "github.com/buccusa/buccusa-api/internal/pkg/config"

// TestConnectionString points at a local Azurite emulator
const TestConnectionString = "DefaultEndpointsProtocol=http;AccountName=devstoreaccount1;AccountKey=Eby8vdM02xNOcqFlqUwJPLlmEtlCDXJ1OUzFT50uSRZ6IFsuFq2UVErCz4I6tq/K1SZFPTOtr/KBHBeksoGMGw==;BlobEndpoint=http://127.0.0.1:10000/devstoreaccount1;"

// TestContainerName is the default test container name
const TestContainerName = "test-container"

// TestAzureMediaSettings returns media settings for the Azurite emulator
func TestAzureMediaSettings() *config.MediaSettings {
	return &config.MediaSettings{
		Provider:         config.AzureMediaProvider,
		MaxUploadBytes:   1 << 20,
		AllowedTypes:     []string{"image/"},
		ConnectionString: TestConnectionString,
		ContainerName:    TestContainerName,
	}
}
