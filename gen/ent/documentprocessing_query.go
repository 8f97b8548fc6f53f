// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/si-akram/invoice-docai/gen/ent/documentprocessing"
	"github.com/si-akram/invoice-docai/gen/ent/extractedentity"
	"github.com/si-akram/invoice-docai/gen/ent/predicate"
)

// DocumentProcessingQuery is the builder for querying DocumentProcessing entities.
type DocumentProcessingQuery struct {
	config
	ctx          *QueryContext
	order        []documentprocessing.OrderOption
	inters       []Interceptor
	predicates   []predicate.DocumentProcessing
	withEntities *ExtractedEntityQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentProcessingQuery builder.
func (_q *DocumentProcessingQuery) Where(ps ...predicate.DocumentProcessing) *DocumentProcessingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentProcessingQuery) Limit(limit int) *DocumentProcessingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentProcessingQuery) Offset(offset int) *DocumentProcessingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentProcessingQuery) Unique(unique bool) *DocumentProcessingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentProcessingQuery) Order(o ...documentprocessing.OrderOption) *DocumentProcessingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryEntities chains the current query on the "entities" edge.
func (_q *DocumentProcessingQuery) QueryEntities() *ExtractedEntityQuery {
	query := (&ExtractedEntityClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentprocessing.Table, documentprocessing.FieldID, selector),
			sqlgraph.To(extractedentity.Table, extractedentity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentprocessing.EntitiesTable, documentprocessing.EntitiesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentProcessing entity from the query.
// Returns a *NotFoundError when no DocumentProcessing was found.
func (_q *DocumentProcessingQuery) First(ctx context.Context) (*DocumentProcessing, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentprocessing.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentProcessingQuery) FirstX(ctx context.Context) *DocumentProcessing {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentProcessing ID from the query.
// Returns a *NotFoundError when no DocumentProcessing ID was found.
func (_q *DocumentProcessingQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentprocessing.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentProcessingQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentProcessing entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentProcessing entity is found.
// Returns a *NotFoundError when no DocumentProcessing entities are found.
func (_q *DocumentProcessingQuery) Only(ctx context.Context) (*DocumentProcessing, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentprocessing.Label}
	default:
		return nil, &NotSingularError{documentprocessing.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentProcessingQuery) OnlyX(ctx context.Context) *DocumentProcessing {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentProcessing ID in the query.
// Returns a *NotSingularError when more than one DocumentProcessing ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentProcessingQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentprocessing.Label}
	default:
		err = &NotSingularError{documentprocessing.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentProcessingQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentProcessings.
func (_q *DocumentProcessingQuery) All(ctx context.Context) ([]*DocumentProcessing, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentProcessing, *DocumentProcessingQuery]()
	return withInterceptors[[]*DocumentProcessing](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentProcessingQuery) AllX(ctx context.Context) []*DocumentProcessing {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentProcessing IDs.
func (_q *DocumentProcessingQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentprocessing.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentProcessingQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentProcessingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentProcessingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentProcessingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentProcessingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DocumentProcessingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentProcessingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentProcessingQuery) Clone() *DocumentProcessingQuery {
	if _q == nil {
		return nil
	}
	return &DocumentProcessingQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]documentprocessing.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.DocumentProcessing{}, _q.predicates...),
		withEntities: _q.withEntities.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithEntities tells the query-builder to eager-load the nodes that are connected to
// the "entities" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentProcessingQuery) WithEntities(opts ...func(*ExtractedEntityQuery)) *DocumentProcessingQuery {
	query := (&ExtractedEntityClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEntities = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		FileName string `json:"file_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DocumentProcessing.Query().
//		GroupBy(documentprocessing.FieldFileName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DocumentProcessingQuery) GroupBy(field string, fields ...string) *DocumentProcessingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentProcessingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentprocessing.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		FileName string `json:"file_name,omitempty"`
//	}
//
//	client.DocumentProcessing.Query().
//		Select(documentprocessing.FieldFileName).
//		Scan(ctx, &v)
func (_q *DocumentProcessingQuery) Select(fields ...string) *DocumentProcessingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentProcessingSelect{DocumentProcessingQuery: _q}
	sbuild.label = documentprocessing.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentProcessingSelect configured with the given aggregations.
func (_q *DocumentProcessingQuery) Aggregate(fns ...AggregateFunc) *DocumentProcessingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentProcessingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !documentprocessing.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DocumentProcessingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentProcessing, error) {
	var (
		nodes       = []*DocumentProcessing{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withEntities != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentProcessing).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentProcessing{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withEntities; query != nil {
		if err := _q.loadEntities(ctx, query, nodes,
			func(n *DocumentProcessing) { n.Edges.Entities = []*ExtractedEntity{} },
			func(n *DocumentProcessing, e *ExtractedEntity) { n.Edges.Entities = append(n.Edges.Entities, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentProcessingQuery) loadEntities(ctx context.Context, query *ExtractedEntityQuery, nodes []*DocumentProcessing, init func(*DocumentProcessing), assign func(*DocumentProcessing, *ExtractedEntity)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*DocumentProcessing)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedentity.FieldProcessingID)
	}
	query.Where(predicate.ExtractedEntity(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentprocessing.EntitiesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessingID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "processing_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DocumentProcessingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentProcessingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentprocessing.Table, documentprocessing.Columns, sqlgraph.NewFieldSpec(documentprocessing.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentprocessing.FieldID)
		for i := range fields {
			if fields[i] != documentprocessing.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DocumentProcessingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentprocessing.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentprocessing.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DocumentProcessingGroupBy is the group-by builder for DocumentProcessing entities.
type DocumentProcessingGroupBy struct {
	selector
	build *DocumentProcessingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentProcessingGroupBy) Aggregate(fns ...AggregateFunc) *DocumentProcessingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentProcessingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentProcessingQuery, *DocumentProcessingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentProcessingGroupBy) sqlScan(ctx context.Context, root *DocumentProcessingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DocumentProcessingSelect is the builder for selecting fields of DocumentProcessing entities.
type DocumentProcessingSelect struct {
	*DocumentProcessingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentProcessingSelect) Aggregate(fns ...AggregateFunc) *DocumentProcessingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentProcessingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentProcessingQuery, *DocumentProcessingSelect](ctx, _s.DocumentProcessingQuery, _s, _s.inters, v)
}

func (_s *DocumentProcessingSelect) sqlScan(ctx context.Context, root *DocumentProcessingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
