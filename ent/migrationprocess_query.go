// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cloudshift-ai/cloudshift/ent/agentrecord"
	"github.com/cloudshift-ai/cloudshift/ent/migrationprocess"
	"github.com/cloudshift-ai/cloudshift/ent/phaserun"
	"github.com/cloudshift-ai/cloudshift/ent/predicate"
)

// MigrationProcessQuery is the builder for querying MigrationProcess entities.
type MigrationProcessQuery struct {
	config
	ctx              *QueryContext
	order            []migrationprocess.OrderOption
	inters           []Interceptor
	predicates       []predicate.MigrationProcess
	withPhaseRuns    *PhaseRunQuery
	withAgentRecords *AgentRecordQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MigrationProcessQuery builder.
func (_q *MigrationProcessQuery) Where(ps ...predicate.MigrationProcess) *MigrationProcessQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MigrationProcessQuery) Limit(limit int) *MigrationProcessQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MigrationProcessQuery) Offset(offset int) *MigrationProcessQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MigrationProcessQuery) Unique(unique bool) *MigrationProcessQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MigrationProcessQuery) Order(o ...migrationprocess.OrderOption) *MigrationProcessQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPhaseRuns chains the current query on the "phase_runs" edge.
func (_q *MigrationProcessQuery) QueryPhaseRuns() *PhaseRunQuery {
	query := (&PhaseRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(migrationprocess.Table, migrationprocess.FieldID, selector),
			sqlgraph.To(phaserun.Table, phaserun.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, migrationprocess.PhaseRunsTable, migrationprocess.PhaseRunsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAgentRecords chains the current query on the "agent_records" edge.
func (_q *MigrationProcessQuery) QueryAgentRecords() *AgentRecordQuery {
	query := (&AgentRecordClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(migrationprocess.Table, migrationprocess.FieldID, selector),
			sqlgraph.To(agentrecord.Table, agentrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, migrationprocess.AgentRecordsTable, migrationprocess.AgentRecordsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MigrationProcess entity from the query.
// Returns a *NotFoundError when no MigrationProcess was found.
func (_q *MigrationProcessQuery) First(ctx context.Context) (*MigrationProcess, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{migrationprocess.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MigrationProcessQuery) FirstX(ctx context.Context) *MigrationProcess {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MigrationProcess ID from the query.
// Returns a *NotFoundError when no MigrationProcess ID was found.
func (_q *MigrationProcessQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{migrationprocess.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MigrationProcessQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MigrationProcess entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MigrationProcess entity is found.
// Returns a *NotFoundError when no MigrationProcess entities are found.
func (_q *MigrationProcessQuery) Only(ctx context.Context) (*MigrationProcess, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{migrationprocess.Label}
	default:
		return nil, &NotSingularError{migrationprocess.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MigrationProcessQuery) OnlyX(ctx context.Context) *MigrationProcess {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MigrationProcess ID in the query.
// Returns a *NotSingularError when more than one MigrationProcess ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MigrationProcessQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{migrationprocess.Label}
	default:
		err = &NotSingularError{migrationprocess.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MigrationProcessQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MigrationProcesses.
func (_q *MigrationProcessQuery) All(ctx context.Context) ([]*MigrationProcess, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MigrationProcess, *MigrationProcessQuery]()
	return withInterceptors[[]*MigrationProcess](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MigrationProcessQuery) AllX(ctx context.Context) []*MigrationProcess {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MigrationProcess IDs.
func (_q *MigrationProcessQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(migrationprocess.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MigrationProcessQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MigrationProcessQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MigrationProcessQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MigrationProcessQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MigrationProcessQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *MigrationProcessQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MigrationProcessQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MigrationProcessQuery) Clone() *MigrationProcessQuery {
	if _q == nil {
		return nil
	}
	return &MigrationProcessQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]migrationprocess.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.MigrationProcess{}, _q.predicates...),
		withPhaseRuns:    _q.withPhaseRuns.Clone(),
		withAgentRecords: _q.withAgentRecords.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPhaseRuns tells the query-builder to eager-load the nodes that are connected to
// the "phase_runs" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MigrationProcessQuery) WithPhaseRuns(opts ...func(*PhaseRunQuery)) *MigrationProcessQuery {
	query := (&PhaseRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPhaseRuns = query
	return _q
}

// WithAgentRecords tells the query-builder to eager-load the nodes that are connected to
// the "agent_records" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MigrationProcessQuery) WithAgentRecords(opts ...func(*AgentRecordQuery)) *MigrationProcessQuery {
	query := (&AgentRecordClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAgentRecords = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MigrationProcess.Query().
//		GroupBy(migrationprocess.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MigrationProcessQuery) GroupBy(field string, fields ...string) *MigrationProcessGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MigrationProcessGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = migrationprocess.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.MigrationProcess.Query().
//		Select(migrationprocess.FieldUserID).
//		Scan(ctx, &v)
func (_q *MigrationProcessQuery) Select(fields ...string) *MigrationProcessSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MigrationProcessSelect{MigrationProcessQuery: _q}
	sbuild.label = migrationprocess.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MigrationProcessSelect configured with the given aggregations.
func (_q *MigrationProcessQuery) Aggregate(fns ...AggregateFunc) *MigrationProcessSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MigrationProcessQuery) prepareQuery(ctx context.Context) error {
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
		if !migrationprocess.ValidColumn(f) {
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

func (_q *MigrationProcessQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MigrationProcess, error) {
	var (
		nodes       = []*MigrationProcess{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPhaseRuns != nil,
			_q.withAgentRecords != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MigrationProcess).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MigrationProcess{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withPhaseRuns; query != nil {
		if err := _q.loadPhaseRuns(ctx, query, nodes,
			func(n *MigrationProcess) { n.Edges.PhaseRuns = []*PhaseRun{} },
			func(n *MigrationProcess, e *PhaseRun) { n.Edges.PhaseRuns = append(n.Edges.PhaseRuns, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAgentRecords; query != nil {
		if err := _q.loadAgentRecords(ctx, query, nodes,
			func(n *MigrationProcess) { n.Edges.AgentRecords = []*AgentRecord{} },
			func(n *MigrationProcess, e *AgentRecord) { n.Edges.AgentRecords = append(n.Edges.AgentRecords, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MigrationProcessQuery) loadPhaseRuns(ctx context.Context, query *PhaseRunQuery, nodes []*MigrationProcess, init func(*MigrationProcess), assign func(*MigrationProcess, *PhaseRun)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*MigrationProcess)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(phaserun.FieldProcessID)
	}
	query.Where(predicate.PhaseRun(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(migrationprocess.PhaseRunsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "process_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *MigrationProcessQuery) loadAgentRecords(ctx context.Context, query *AgentRecordQuery, nodes []*MigrationProcess, init func(*MigrationProcess), assign func(*MigrationProcess, *AgentRecord)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*MigrationProcess)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(agentrecord.FieldProcessID)
	}
	query.Where(predicate.AgentRecord(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(migrationprocess.AgentRecordsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ProcessID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "process_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *MigrationProcessQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MigrationProcessQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(migrationprocess.Table, migrationprocess.Columns, sqlgraph.NewFieldSpec(migrationprocess.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, migrationprocess.FieldID)
		for i := range fields {
			if fields[i] != migrationprocess.FieldID {
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

func (_q *MigrationProcessQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(migrationprocess.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = migrationprocess.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *MigrationProcessQuery) ForUpdate(opts ...sql.LockOption) *MigrationProcessQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *MigrationProcessQuery) ForShare(opts ...sql.LockOption) *MigrationProcessQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// MigrationProcessGroupBy is the group-by builder for MigrationProcess entities.
type MigrationProcessGroupBy struct {
	selector
	build *MigrationProcessQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MigrationProcessGroupBy) Aggregate(fns ...AggregateFunc) *MigrationProcessGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MigrationProcessGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MigrationProcessQuery, *MigrationProcessGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MigrationProcessGroupBy) sqlScan(ctx context.Context, root *MigrationProcessQuery, v any) error {
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

// MigrationProcessSelect is the builder for selecting fields of MigrationProcess entities.
type MigrationProcessSelect struct {
	*MigrationProcessQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MigrationProcessSelect) Aggregate(fns ...AggregateFunc) *MigrationProcessSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MigrationProcessSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MigrationProcessQuery, *MigrationProcessSelect](ctx, _s.MigrationProcessQuery, _s, _s.inters, v)
}

func (_s *MigrationProcessSelect) sqlScan(ctx context.Context, root *MigrationProcessQuery, v any) error {
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
