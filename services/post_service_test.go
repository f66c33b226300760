package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestMergePropertiesUnion(t *testing.T) {
	existing := datatypes.JSONMap{"color": "red", "size": 10}
	incoming := map[string]interface{}{"size": 12, "shape": "round"}

	merged := MergeProperties(existing, incoming)

	assert.Equal(t, "red", merged["color"])
	assert.Equal(t, 12, merged["size"], "incoming keys win on conflict")
	assert.Equal(t, "round", merged["shape"])
	assert.Len(t, merged, 3)
}

func TestMergePropertiesDoesNotMutateInputs(t *testing.T) {
	existing := datatypes.JSONMap{"a": 1}
	incoming := map[string]interface{}{"b": 2}

	MergeProperties(existing, incoming)

	assert.Len(t, existing, 1)
	assert.Len(t, incoming, 1)
}

func TestMergePropertiesReplacesWhenExistingEmpty(t *testing.T) {
	incoming := map[string]interface{}{"a": 1}

	merged := MergeProperties(nil, incoming)
	assert.Equal(t, datatypes.JSONMap(incoming), merged)

	merged = MergeProperties(datatypes.JSONMap{}, incoming)
	assert.Equal(t, datatypes.JSONMap(incoming), merged)
}

func TestMergePropertiesReplacesWhenIncomingEmpty(t *testing.T) {
	existing := datatypes.JSONMap{"a": 1}

	merged := MergeProperties(existing, map[string]interface{}{})
	assert.Empty(t, merged, "an empty incoming object replaces the bag")
}
