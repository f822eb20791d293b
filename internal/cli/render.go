package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/centra/centrality"
	"github.com/katalvlaran/centra/graphfile"
	"github.com/katalvlaran/centra/internal/config"
)

// render prints res in the configured format, restricted to the configured
// metric and top-N nodes.
func (a *app) render(w io.Writer, res *computed) error {
	rep := selectMetric(res.report, a.cfg.Metric)
	all := rankBy(rep, a.cfg.Metric)
	ranked := all.Top(a.cfg.Top)
	if a.cfg.Top > 0 {
		rep = restrict(rep, ranked)
	}

	if a.cfg.Format == config.FormatTable {
		return writeTable(w, res, rep, ranked, a.cfg.Metric, gini(all))
	}
	f, err := graphfile.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}
	data, err := graphfile.EncodeReport(rep, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// selectMetric returns a shallow copy of rep keeping only metric.
func selectMetric(rep *centrality.Report, metric string) *centrality.Report {
	out := &centrality.Report{Directed: rep.Directed, Components: rep.Components}
	if metric == config.MetricAll || metric == config.MetricDegree {
		out.Degree = rep.Degree
	}
	if metric == config.MetricAll || metric == config.MetricCloseness {
		out.Closeness = rep.Closeness
	}
	if metric == config.MetricAll || metric == config.MetricBetweenness {
		out.Betweenness = rep.Betweenness
	}
	return out
}

// primary is the metric rows are ordered by.
func primary(metric string) string {
	if metric == config.MetricAll {
		return config.MetricBetweenness
	}
	return metric
}

func rankBy(rep *centrality.Report, metric string) centrality.Ranked {
	switch primary(metric) {
	case config.MetricDegree:
		return centrality.Rank(centrality.Totals(rep.Degree))
	case config.MetricCloseness:
		return centrality.Rank(rep.Closeness)
	default:
		return centrality.Rank(rep.Betweenness)
	}
}

// restrict drops every node not in keep.
func restrict(rep *centrality.Report, keep centrality.Ranked) *centrality.Report {
	out := &centrality.Report{Directed: rep.Directed, Components: rep.Components}
	if rep.Degree != nil {
		out.Degree = make(map[string]centrality.DegreeScore, len(keep))
	}
	if rep.Closeness != nil {
		out.Closeness = make(centrality.Scores, len(keep))
	}
	if rep.Betweenness != nil {
		out.Betweenness = make(centrality.Scores, len(keep))
	}
	for _, s := range keep {
		if out.Degree != nil {
			out.Degree[s.ID] = rep.Degree[s.ID]
		}
		if out.Closeness != nil {
			out.Closeness[s.ID] = rep.Closeness[s.ID]
		}
		if out.Betweenness != nil {
			out.Betweenness[s.ID] = rep.Betweenness[s.ID]
		}
	}
	return out
}

// gini is the inequality of the ordering metric across all nodes.
func gini(r centrality.Ranked) float64 {
	scores := make(centrality.Scores, len(r))
	for _, s := range r {
		scores[s.ID] = s.Value
	}
	return centrality.Gini(scores)
}

func writeTable(w io.Writer, res *computed, rep *centrality.Report, rows centrality.Ranked, metric string, g float64) error {
	kind := "undirected"
	if rep.Directed {
		kind = "directed"
	}
	fmt.Fprintf(w, "# %s (%s, nodes=%d, edges=%d, components=%d)\n", res.name, kind, res.nodes, res.edges, rep.Components)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"NODE"}
	if rep.Degree != nil {
		if rep.Directed {
			header = append(header, "IN", "OUT")
		}
		header = append(header, "DEGREE")
	}
	if rep.Closeness != nil {
		header = append(header, "CLOSENESS")
	}
	if rep.Betweenness != nil {
		header = append(header, "BETWEENNESS")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, s := range rows {
		row := []string{s.ID}
		if rep.Degree != nil {
			d := rep.Degree[s.ID]
			if rep.Directed {
				row = append(row, fmt.Sprint(d.In), fmt.Sprint(d.Out))
			}
			row = append(row, fmt.Sprint(d.Total))
		}
		if rep.Closeness != nil {
			row = append(row, fmt.Sprintf("%.4f", rep.Closeness[s.ID]))
		}
		if rep.Betweenness != nil {
			row = append(row, fmt.Sprintf("%.4f", rep.Betweenness[s.ID]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "gini(%s) = %.4f\n", primary(metric), g)
	return err
}
