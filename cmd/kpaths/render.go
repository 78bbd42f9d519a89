package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kpaths/yen"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

func checkFormat(f string) error {
	switch f {
	case formatTable, formatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", f, formatTable, formatYAML)
	}
}

// pathRow is the YAML form of one result.
type pathRow struct {
	Rank   int      `yaml:"rank"`
	Weight float64  `yaml:"weight"`
	Spur   int      `yaml:"spur"`
	Path   []string `yaml:"path"`
}

func render(w io.Writer, format string, res *yen.Result) error {
	if format == formatYAML {
		return renderYAML(w, res)
	}
	renderTable(w, res)

	return nil
}

func renderTable(w io.Writer, res *yen.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "WEIGHT", "SPUR", "PATH"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	for i := range res.Paths {
		t.AppendRow(table.Row{
			i + 1,
			strconv.FormatFloat(res.Weights[i], 'g', -1, 64),
			res.Spurs[i],
			strings.Join(res.Paths[i], " → "),
		})
	}
	t.AppendFooter(table.Row{"", "", "TOTAL", res.Len()})
	t.Render()
}

func renderYAML(w io.Writer, res *yen.Result) error {
	rows := make([]pathRow, res.Len())
	for i := range res.Paths {
		rows[i] = pathRow{Rank: i + 1, Weight: res.Weights[i], Spur: res.Spurs[i], Path: res.Paths[i]}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]pathRow{"paths": rows}); err != nil {
		return err
	}

	return enc.Close()
}
