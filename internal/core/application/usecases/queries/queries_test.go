package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllMembersQuery_Validate(t *testing.T) {
	query := queries.NewGetAllMembersQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetAllMembersQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllMembersQueryIsNotConstructed)
}

func TestNewGetAllItemsQuery_Validate(t *testing.T) {
	query := queries.NewGetAllItemsQuery()
	require.NoError(t, query.Validate())

	var zero queries.GetAllItemsQuery
	require.ErrorIs(t, zero.Validate(), queries.ErrGetAllItemsQueryIsNotConstructed)
}

func TestNewGetLowStockItemsQuery(t *testing.T) {
	query, err := queries.NewGetLowStockItemsQuery(5)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 5, query.Threshold())
}

func TestNewGetLowStockItemsQuery_InvalidThreshold(t *testing.T) {
	_, err := queries.NewGetLowStockItemsQuery(0)
	require.ErrorIs(t, err, queries.ErrThresholdIsInvalid)

	_, err = queries.NewGetLowStockItemsQuery(-3)
	require.ErrorIs(t, err, queries.ErrThresholdIsInvalid)
}

func TestNewSearchOrdersQuery(t *testing.T) {
	filter, err := order.NewSearchFilter("alice", nil, 0, 20)
	require.NoError(t, err)

	query, err := queries.NewSearchOrdersQuery(filter)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "alice", query.Filter().MemberName())

	_, err = queries.NewSearchOrdersQuery(order.SearchFilter{})
	require.Error(t, err)
}

func TestNewSearchOrderSummariesQuery(t *testing.T) {
	status := order.Ordered
	filter, err := order.NewSearchFilter("", &status, 0, 0)
	require.NoError(t, err)

	query, err := queries.NewSearchOrderSummariesQuery(filter)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.False(t, query.Filter().HasMemberName())
	assert.Equal(t, order.DefaultSearchLimit, query.Filter().Limit())

	_, err = queries.NewSearchOrderSummariesQuery(order.SearchFilter{})
	require.Error(t, err)
}
