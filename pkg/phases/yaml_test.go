package phases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyManifest(t *testing.T) {
	tests := []struct {
		file      string
		dimension string
	}{
		{"service.yaml", "network"},
		{"ingress-controller.yaml", "network"},
		{"networkpolicy.yaml", "network"},
		{"rbac-roles.yaml", "security"},
		{"app-secret.yaml", "security"},
		{"serviceaccount.yaml", "security"},
		{"pvc-data.yaml", "storage"},
		{"storageclass-fast.yaml", "storage"},
		{"deployment.yaml", "compute"},
		{"statefulset-db.yaml", "compute"},
		{"cronjob-backup.yaml", "compute"},
		{"namespace.yaml", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.dimension, classifyManifest(tt.file))
		})
	}
}

func TestClassifyManifestUsesBaseName(t *testing.T) {
	assert.Equal(t, "compute", classifyManifest("source/workloads/deployment.yaml"))
}

func TestAggregateDimensions(t *testing.T) {
	dims := aggregateDimensions([]string{
		"converted/deployment.yaml",
		"converted/statefulset.yaml",
		"converted/service.yaml",
		"converted/pvc.yaml",
		"converted/namespace.yaml",
	})

	assert.Equal(t, map[string]int{
		"compute": 2,
		"network": 1,
		"storage": 1,
		"other":   1,
	}, dims)
}

func TestAggregateDimensionsEmpty(t *testing.T) {
	assert.Empty(t, aggregateDimensions(nil))
}
