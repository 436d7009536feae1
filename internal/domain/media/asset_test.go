//go:build unit
// +build unit

package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsset_Validate(t *testing.T) {
	a := &Asset{
		Name:        "photo.png",
		StoredName:  "2026/05/abc.png",
		ContentType: "image/png",
		Size:        1024,
		URL:         "http://localhost:5000/uploads/2026/05/abc.png",
		Provider:    "local",
	}
	a.Stamp(time.Now())
	require.NoError(t, a.Validate())
	assert.True(t, a.IsImage())

	a.Provider = "s3"
	assert.Error(t, a.Validate())

	a.Provider = "azure"
	a.Size = 0
	assert.Error(t, a.Validate())
}
