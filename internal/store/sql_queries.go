// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

const customerTable = "customer_data"

// customerColumns is the projection of a full customer row. The geometry
// column is rendered back to GeoJSON text by PostGIS.
var customerColumns = []string{
	"id",
	"name",
	"phone",
	"ST_AsGeoJSON(geojson) AS geojson",
	"auth0_id",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildListCustomersQuery() (string, []any, error) {
	return psql.Select(customerColumns...).
		From(customerTable).
		OrderBy("id ASC").
		ToSql()
}

func buildListAuth0IdentifiersQuery() (string, []any, error) {
	return psql.Select("auth0_id").
		From(customerTable).
		OrderBy("id ASC").
		ToSql()
}

func buildGetCustomerByIDQuery(id int64) (string, []any, error) {
	return psql.Select(customerColumns...).
		From(customerTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildGetCustomerByAuth0IDQuery(auth0ID string) (string, []any, error) {
	return psql.Select(customerColumns...).
		From(customerTable).
		Where(sq.Eq{"auth0_id": auth0ID}).
		OrderBy("id ASC").
		ToSql()
}

func buildListGeometriesQuery() (string, []any, error) {
	return psql.Select("ST_AsGeoJSON(geojson)").
		From(customerTable).
		Where(sq.NotEq{"geojson": nil}).
		OrderBy("id ASC").
		ToSql()
}

func buildCreateCustomerQuery(in models.CustomerInput) (string, []any, error) {
	return psql.Insert(customerTable).
		Columns("name", "phone", "geojson", "auth0_id").
		Values(in.Name, in.Phone, geometryValue(in), in.Auth0ID).
		Suffix("RETURNING id").
		ToSql()
}

// buildUpdateCustomerQuery replaces name, phone and geometry. auth0_id is
// never touched after insert.
func buildUpdateCustomerQuery(id int64, in models.CustomerInput) (string, []any, error) {
	return psql.Update(customerTable).
		Set("name", in.Name).
		Set("phone", in.Phone).
		Set("geojson", geometryValue(in)).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteCustomerQuery(id int64) (string, []any, error) {
	return psql.Delete(customerTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// geometryValue converts the GeoJSON text of in to a PostGIS geometry, or
// NULL when no geometry was supplied.
func geometryValue(in models.CustomerInput) any {
	if !in.HasGeoJSON() {
		return nil
	}
	return sq.Expr("ST_GeomFromGeoJSON(?)", string(in.GeoJSON))
}
