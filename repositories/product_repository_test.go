package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhereClause_BaseFiltersInactive(t *testing.T) {
	where, args := ProductFilter{}.whereClause()
	assert.Equal(t, " WHERE p.is_active = true", where)
	assert.Empty(t, args)
}

func TestWhereClause_NumbersParamsInOrder(t *testing.T) {
	minPrice := 10.0
	maxPrice := 50.0
	filter := ProductFilter{Category: "Shirts", MinPrice: &minPrice, MaxPrice: &maxPrice}

	where, args := filter.whereClause()
	assert.Equal(t,
		" WHERE p.is_active = true AND LOWER(c.name) = LOWER($1) AND p.price >= $2 AND p.price <= $3",
		where)
	assert.Equal(t, []interface{}{"Shirts", 10.0, 50.0}, args)
}

func TestWhereClause_SkippedFiltersDoNotConsumeParams(t *testing.T) {
	maxPrice := 50.0
	filter := ProductFilter{MaxPrice: &maxPrice}

	where, args := filter.whereClause()
	assert.Equal(t, " WHERE p.is_active = true AND p.price <= $1", where)
	assert.Equal(t, []interface{}{50.0}, args)
}

func TestWhereClause_InStock(t *testing.T) {
	inStock := true
	where, args := ProductFilter{InStock: &inStock}.whereClause()
	assert.Equal(t, " WHERE p.is_active = true AND p.stock > 0", where)
	assert.Empty(t, args)

	inStock = false
	where, _ = ProductFilter{InStock: &inStock}.whereClause()
	assert.Equal(t, " WHERE p.is_active = true AND p.stock <= 0", where)
}

func TestOrderByClause_WhitelistedColumns(t *testing.T) {
	assert.Equal(t, " ORDER BY p.price ASC", ProductFilter{SortBy: "price", SortOrder: "asc"}.orderByClause())
	assert.Equal(t, " ORDER BY p.name DESC", ProductFilter{SortBy: "name", SortOrder: "desc"}.orderByClause())
	assert.Equal(t, " ORDER BY p.created_at DESC", ProductFilter{SortBy: "createdAt"}.orderByClause())
}

func TestOrderByClause_UnknownSortFallsBack(t *testing.T) {
	// Unknown sort fields are never interpolated; the query falls back to
	// newest-first.
	assert.Equal(t, " ORDER BY p.created_at DESC", ProductFilter{SortBy: "price; DROP TABLE products"}.orderByClause())
	assert.Equal(t, " ORDER BY p.created_at DESC", ProductFilter{SortBy: ""}.orderByClause())
}

func TestOrderByClause_DirectionCaseInsensitive(t *testing.T) {
	assert.Equal(t, " ORDER BY p.price ASC", ProductFilter{SortBy: "price", SortOrder: "ASC"}.orderByClause())
	assert.Equal(t, " ORDER BY p.price DESC", ProductFilter{SortBy: "price", SortOrder: "sideways"}.orderByClause())
}
