package bodyqueue

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johndpope/SwiftRewriter/internal/cst"
	"github.com/johndpope/SwiftRewriter/internal/intention"
	"github.com/johndpope/SwiftRewriter/internal/swiftast"
	"github.com/johndpope/SwiftRewriter/internal/swifttype"
)

func bodyStmt() *swiftast.Stmt {
	return &swiftast.Stmt{Kind: swiftast.StmtReturn}
}

func newFixtureCollection() *intention.Collection {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)

	gf := intention.NewGlobalFunction(cst.Pos{}, true, "doThing", intention.Signature{}, bodyStmt())
	f.AddGlobalFunc(gf)

	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)

	c.AddInit(intention.NewInitializer(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("init")}, bodyStmt()))
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("run")}, bodyStmt()))
	// A protocol-style method with no body must not become a work item.
	c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("abstractOp")}, nil))

	prop := intention.NewProperty(cst.Pos{}, true, "name", intention.StorageSpec{Type: swifttype.Nominal("String")}, 0)
	prop.GetterBody = bodyStmt()
	prop.SetterBody = bodyStmt()
	c.AddProperty(prop)

	return col
}

func TestCarriers_EnumeratesEveryBodyCarryingDeclaration(t *testing.T) {
	col := newFixtureCollection()
	carriers := Carriers(col)

	// global func + init + method + getter + setter == 5; the bodyless
	// method is skipped.
	assert.Len(t, carriers, 5)
}

func TestCollect_AppendsOneItemPerCarrier_WithBuiltContext(t *testing.T) {
	col := newFixtureCollection()

	var calls int64
	q, err := Collect(context.Background(), col, 4, func(c intention.BodyCarrier) any {
		atomic.AddInt64(&calls, 1)
		return "ctx-for-" + c.SourceLoc().ID().String()
	})
	require.NoError(t, err)

	items := q.Drain()
	assert.Len(t, items, 5)
	assert.EqualValues(t, 5, calls)
	for _, it := range items {
		assert.NotNil(t, it.Body)
		assert.NotEmpty(t, it.Context)
	}
}

func TestCollect_SerializesAppendUnderConcurrency(t *testing.T) {
	col := intention.NewCollection()
	f := intention.NewFile(cst.Pos{}, true, "Foo.m")
	col.AddFile(f)
	c := intention.NewClass(cst.Pos{}, true, "Foo")
	f.AddClass(c)
	for i := 0; i < 50; i++ {
		c.AddMethod(intention.NewMethod(cst.Pos{}, true, intention.Signature{Selector: intention.NewSelector("m")}, bodyStmt()))
	}

	q, err := Collect(context.Background(), col, 8, nil)
	require.NoError(t, err)
	assert.Equal(t, 50, q.Len())
}

func TestQueue_DrainEmptiesTheQueue(t *testing.T) {
	q := NewQueue()
	q.Append(WorkItem{})
	require.Equal(t, 1, q.Len())
	items := q.Drain()
	assert.Len(t, items, 1)
	assert.Equal(t, 0, q.Len())
}
