// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// FeatureCollectionType is the GeoJSON type member of a feature collection.
const FeatureCollectionType = "FeatureCollection"

// FeatureCollection is the read-time projection of every stored geometry.
// Features are the stored geometries verbatim, ordered by customer id.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Features []json.RawMessage `json:"features"`
}

// NewFeatureCollection wraps geometries into a [FeatureCollection].
// A nil slice is normalised to an empty one so it encodes as [].
func NewFeatureCollection(geometries []json.RawMessage) FeatureCollection {
	if geometries == nil {
		geometries = make([]json.RawMessage, 0)
	}

	return FeatureCollection{
		Type:     FeatureCollectionType,
		Features: geometries,
	}
}
