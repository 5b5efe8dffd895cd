// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Customer represents a single row of the customer_data table.
// Nullable columns are modelled as pointers so that SQL NULL round-trips
// as JSON null.
type Customer struct {
	// ID is the server-assigned primary key. It never changes after insert.
	ID int64 `json:"id"`

	// Name is the display name of the customer.
	Name *string `json:"name"`

	// Phone is the contact phone number in free form.
	Phone *string `json:"phone"`

	// GeoJSON holds the stored geometry encoded as a GeoJSON geometry object.
	// It is nil when the column is NULL.
	GeoJSON json.RawMessage `json:"geojson"`

	// Auth0ID correlates the record with a user in the external identity
	// provider. It is set on create and never modified afterwards.
	Auth0ID *string `json:"auth0_id"`
}

// CustomerInput is the request payload of the create and update operations.
// Auth0ID is only honoured on create.
type CustomerInput struct {
	Name    *string         `json:"name"`
	Phone   *string         `json:"phone"`
	GeoJSON json.RawMessage `json:"geojson"`
	Auth0ID *string         `json:"auth0_id"`
}

// HasGeoJSON reports whether the input carries a non-null geometry.
func (c CustomerInput) HasGeoJSON() bool {
	return len(c.GeoJSON) > 0 && string(c.GeoJSON) != "null"
}

// Auth0Identifier is a projection of Customer carrying only the identity
// provider id. Records without an id are returned with a null value.
type Auth0Identifier struct {
	Auth0ID *string `json:"auth0_id"`
}
