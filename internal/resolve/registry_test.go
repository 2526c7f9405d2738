package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venlo/commercegraph/internal/schema"
)

func stockSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s := schema.NewSchema()
	s.AddType(schema.NewType("StockMovementItem", schema.TypeKindInterface, "").
		AddField(schema.NewField("quantity", "", schema.NonNullType(schema.NamedType("Int")))))
	for _, name := range []string{"StockAdjustment", "Allocation", "Cancellation", "Release", "Sale"} {
		s.AddType(schema.NewType(name, schema.TypeKindObject, "").
			AddInterface("StockMovementItem").
			AddField(schema.NewField("quantity", "", schema.NonNullType(schema.NamedType("Int")))))
		s.Types["StockMovementItem"].AddPossibleType(name)
	}
	return s
}

func TestTagDispatch(t *testing.T) {
	reg, err := Build(stockSchema(t))
	require.NoError(t, err)
	require.Equal(t, []string{"StockMovementItem"}, reg.AbstractTypes())

	concrete, err := reg.Resolve("StockMovementItem", map[string]any{"type": "SALE", "quantity": 3})
	require.NoError(t, err)
	require.Equal(t, "Sale", concrete)
}

func TestTagDispatchUnknownTag(t *testing.T) {
	reg, err := Build(stockSchema(t))
	require.NoError(t, err)

	_, err = reg.Resolve("StockMovementItem", map[string]any{"type": "TRANSFER"})
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "StockMovementItem", unresolved.Type)

	_, err = reg.Resolve("StockMovementItem", map[string]any{"quantity": 3})
	require.ErrorAs(t, err, &unresolved)
}

func TestTagDispatchMissingConcreteType(t *testing.T) {
	s := schema.NewSchema()
	s.AddType(schema.NewType("StockMovementItem", schema.TypeKindInterface, "").
		AddField(schema.NewField("quantity", "", schema.NonNullType(schema.NamedType("Int")))))
	// None of the mapped concrete types are declared.
	_, err := Build(s)
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "StockMovementItem", unresolved.Type)
}

func priceSchema() *schema.Schema {
	s := schema.NewSchema()
	s.AddType(schema.NewType("PriceRange", schema.TypeKindObject, "").
		AddField(schema.NewField("min", "", schema.NonNullType(schema.NamedType("Int")))).
		AddField(schema.NewField("max", "", schema.NonNullType(schema.NamedType("Int")))))
	s.AddType(schema.NewType("SinglePrice", schema.TypeKindObject, "").
		AddField(schema.NewField("value", "", schema.NonNullType(schema.NamedType("Int")))))
	s.AddType(schema.NewType("SearchResultPrice", schema.TypeKindUnion, "").
		AddPossibleType("PriceRange").
		AddPossibleType("SinglePrice"))
	return s
}

func TestStructuralProbeDispatch(t *testing.T) {
	reg, err := Build(priceSchema())
	require.NoError(t, err)

	concrete, err := reg.Resolve("SearchResultPrice", map[string]any{"min": 100, "max": 250})
	require.NoError(t, err)
	require.Equal(t, "PriceRange", concrete)

	concrete, err = reg.Resolve("SearchResultPrice", map[string]any{"value": 100})
	require.NoError(t, err)
	require.Equal(t, "SinglePrice", concrete)

	_, err = reg.Resolve("SearchResultPrice", map[string]any{"currency": "EUR"})
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
}

func errorResultSchema() *schema.Schema {
	s := schema.NewSchema()
	s.AddType(schema.NewType("ErrorResult", schema.TypeKindInterface, "").
		AddField(schema.NewField("message", "", schema.NonNullType(schema.NamedType("String")))))
	s.AddType(schema.NewType("Order", schema.TypeKindObject, "").
		AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID")))))
	s.AddType(schema.NewType("OrderLimitError", schema.TypeKindObject, "").
		AddInterface("ErrorResult").
		AddField(schema.NewField("message", "", schema.NonNullType(schema.NamedType("String")))))
	s.Types["ErrorResult"].AddPossibleType("OrderLimitError")
	s.AddType(schema.NewType("UpdateOrderItemsResult", schema.TypeKindUnion, "").
		AddPossibleType("Order").
		AddPossibleType("OrderLimitError"))
	return s
}

func TestIdentityDispatch(t *testing.T) {
	reg, err := Build(errorResultSchema())
	require.NoError(t, err)

	concrete, err := reg.Resolve("UpdateOrderItemsResult", map[string]any{"__typename": "OrderLimitError", "message": "too many items"})
	require.NoError(t, err)
	require.Equal(t, "OrderLimitError", concrete)

	concrete, err = reg.Resolve("ErrorResult", map[string]any{"__typename": "OrderLimitError"})
	require.NoError(t, err)
	require.Equal(t, "OrderLimitError", concrete)

	var unresolved *UnresolvedAbstractTypeError
	_, err = reg.Resolve("UpdateOrderItemsResult", map[string]any{"id": "42"})
	require.ErrorAs(t, err, &unresolved)

	_, err = reg.Resolve("UpdateOrderItemsResult", map[string]any{"__typename": "Customer"})
	require.ErrorAs(t, err, &unresolved)
}

func TestBuildRejectsUncoveredAbstractType(t *testing.T) {
	s := schema.NewSchema()
	s.AddType(schema.NewType("Node", schema.TypeKindInterface, "").
		AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID")))))
	s.AddType(schema.NewType("Product", schema.TypeKindObject, "").
		AddInterface("Node").
		AddField(schema.NewField("id", "", schema.NonNullType(schema.NamedType("ID")))))
	s.Types["Node"].AddPossibleType("Product")

	_, err := Build(s)
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
	require.Equal(t, "Node", unresolved.Type)
}

func TestResolveNonObjectValue(t *testing.T) {
	reg, err := Build(stockSchema(t))
	require.NoError(t, err)

	_, err = reg.Resolve("StockMovementItem", "SALE")
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
}

func TestResolveUnknownAbstractType(t *testing.T) {
	reg, err := Build(schema.NewSchema())
	require.NoError(t, err)

	_, err = reg.Resolve("SearchResultPrice", map[string]any{"value": 100})
	var unresolved *UnresolvedAbstractTypeError
	require.ErrorAs(t, err, &unresolved)
}
