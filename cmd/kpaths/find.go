package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/kpaths/core"
	"github.com/katalvlaran/kpaths/graphio"
	"github.com/katalvlaran/kpaths/yen"
)

// queryFlags are the search flags shared by find and demo.
type queryFlags struct {
	from, to string
	k        int
	weight   string
	parallel int
	output   string
}

func (q *queryFlags) register(cmd *cobra.Command, from, to string) {
	f := cmd.Flags()
	f.StringVar(&q.from, "from", from, "source vertex ID")
	f.StringVar(&q.to, "to", to, "target vertex ID")
	f.IntVarP(&q.k, "k", "k", 3, "number of paths to list")
	f.StringVar(&q.weight, "weight", core.DefaultWeightKey, "edge attribute used as cost")
	f.IntVar(&q.parallel, "parallel", 1, "concurrent spur searches per round")
	f.StringVarP(&q.output, "output", "o", formatTable, "output format: table or yaml")
}

func (q *queryFlags) validate() error {
	if q.from == "" || q.to == "" {
		return fmt.Errorf("--from and --to are required")
	}
	if q.parallel < 1 {
		return fmt.Errorf("--parallel must be at least 1, got %d", q.parallel)
	}
	return checkFormat(q.output)
}

// search runs the query on g and renders the result.
func (a *app) search(cmd *cobra.Command, g *core.Graph, q *queryFlags) error {
	a.log.Info("searching",
		slog.String("from", q.from), slog.String("to", q.to),
		slog.Int("k", q.k), slog.String("weight", q.weight),
		slog.Int("vertices", g.VertexCount()), slog.Int("edges", g.EdgeCount()))

	res, err := yen.KShortestPaths(g, q.from, q.to, q.k,
		yen.WithContext(cmd.Context()),
		yen.WithWeightKey(q.weight),
		yen.WithParallelism(q.parallel),
		yen.WithLogger(a.log),
	)
	if err != nil {
		return err
	}
	if res.Len() < q.k {
		a.log.Info("fewer paths than requested", slog.Int("found", res.Len()), slog.Int("k", q.k))
	}

	return render(a.out, q.output, res)
}

func newFindCmd(a *app) *cobra.Command {
	var (
		q         queryFlags
		graphPath string
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find k shortest paths in a graph document",
		Example: `  kpaths find --graph roads.yaml --from C --to H -k 3
  kpaths find --graph roads.json --from C --to H --weight length -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.validate(); err != nil {
				return err
			}
			g, err := graphio.Load(graphPath)
			if err != nil {
				return err
			}
			a.log.Debug("graph loaded", slog.String("path", graphPath), slog.Bool("directed", g.Directed()))

			return a.search(cmd, g, &q)
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "graph document (YAML or JSON)")
	_ = cmd.MarkFlagRequired("graph")
	q.register(cmd, "", "")

	return cmd
}
