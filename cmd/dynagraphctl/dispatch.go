package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dynagraph/dynagraph/core2c"
	"github.com/dynagraph/dynagraph/internal/telemetry"
)

// session bundles the solver with the instrumentation each dispatched
// command is wrapped in. A nil metrics or tracer is valid: both
// degrade to no-ops.
type session struct {
	solver  *core2c.Solver
	metrics *telemetry.Metrics
	tracer  *telemetry.Tracer
	logger  *slog.Logger
}

// dispatchErr is returned for an unrecognized command name, with line
// holding that name. Wrong arity, a non-integer field, or a vertex
// outside [0,n) are reported as plain errors by the argument parsers.
type dispatchErr struct {
	line string
	err  error
}

func (e *dispatchErr) Error() string {
	return fmt.Sprintf("malformed command %q: %v", e.line, e.err)
}

// dispatch parses and executes one command line against the session's
// solver, printing true/false for well-formed queries and mutations.
func (sess *session) dispatch(ctx context.Context, fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	op := fields[0]
	args := fields[1:]

	switch op {
	case "link":
		u, v, err := sess.twoVertices(args)
		if err != nil {
			return err
		}
		ok := sess.timeAddEdge(ctx, u, v)
		fmt.Println(ok)
	case "cut":
		u, v, err := sess.twoVertices(args)
		if err != nil {
			return err
		}
		ok := sess.timeRemoveEdge(ctx, u, v)
		fmt.Println(ok)
	case "conn":
		u, v, err := sess.twoVertices(args)
		if err != nil {
			return err
		}
		ok := sess.timeQuery(ctx, "is_connected", func() bool { return sess.solver.IsConnected(u, v) })
		fmt.Println(ok)
	case "query1c":
		u, err := sess.oneVertex(args)
		if err != nil {
			return err
		}
		ok := sess.timeQuery(ctx, "is_in_1core", func() bool { return sess.solver.IsIn1Core(u) })
		fmt.Println(ok)
	case "query2c":
		u, err := sess.oneVertex(args)
		if err != nil {
			return err
		}
		ok := sess.timeQuery(ctx, "is_in_2core", func() bool { return sess.solver.IsIn2Core(u) })
		fmt.Println(ok)
	default:
		return &dispatchErr{line: op, err: fmt.Errorf("unknown command")}
	}
	return nil
}

func (sess *session) twoVertices(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("want 2 arguments, got %d", len(args))
	}
	u, err := sess.parseVertex(args[0])
	if err != nil {
		return 0, 0, err
	}
	v, err := sess.parseVertex(args[1])
	if err != nil {
		return 0, 0, err
	}
	return u, v, nil
}

func (sess *session) oneVertex(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want 1 argument, got %d", len(args))
	}
	return sess.parseVertex(args[0])
}

func (sess *session) parseVertex(tok string) (int, error) {
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", tok)
	}
	if n < 0 || n >= sess.solver.Stats().Vertices {
		return 0, fmt.Errorf("vertex %d out of range", n)
	}
	return n, nil
}

func (sess *session) timeAddEdge(ctx context.Context, u, v int) bool {
	ctx, end := sess.tracer.Span(ctx, "add_edge")
	defer end()
	_ = ctx
	start := time.Now()
	ok := sess.solver.AddEdge(u, v)
	if sess.metrics != nil {
		sess.metrics.RecordAddEdge(ok, time.Since(start))
	}
	return ok
}

func (sess *session) timeRemoveEdge(ctx context.Context, u, v int) bool {
	ctx, end := sess.tracer.Span(ctx, "remove_edge")
	defer end()
	_ = ctx
	start := time.Now()
	ok := sess.solver.RemoveEdge(u, v)
	if sess.metrics != nil {
		sess.metrics.RecordRemoveEdge(ok, time.Since(start))
	}
	return ok
}

func (sess *session) timeQuery(ctx context.Context, kind string, fn func() bool) bool {
	ctx, end := sess.tracer.Span(ctx, kind)
	defer end()
	_ = ctx
	start := time.Now()
	ok := fn()
	if sess.metrics != nil {
		sess.metrics.RecordQuery(kind, time.Since(start))
	}
	return ok
}
