package main

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"blocgraph/internal/analysis"
	"blocgraph/internal/movies"
	"blocgraph/internal/render"
)

const (
	us     = "United States of America"
	france = "France"
	russia = "Russia"
)

func TestGraphCommandTables(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"graph"}, env.configPath)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	requireContains(t, out, "Graph: 3 countries, 3 collaborations (min films > 0, min collab > 0)")
	requireContains(t, out, us)
	requireContains(t, out, "Western")
	requireContains(t, out, "Lack of data")
	requireContains(t, out, "Mixed")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no ANSI codes when stdout is not a terminal: %q", out)
	}
}

func TestGraphCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"graph", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("graph --json: %v", err)
	}
	var view graphView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode graph json: %v\n%s", err, out)
	}
	if len(view.Nodes) != 3 || len(view.Edges) != 3 {
		t.Fatalf("unexpected graph size: %+v", view)
	}
	want := map[string]int{
		france + "|" + russia: 1,
		france + "|" + us:     6,
		russia + "|" + us:     3,
	}
	for _, e := range view.Edges {
		if e.Source >= e.Target {
			t.Fatalf("edge endpoints not ordered: %+v", e)
		}
		if want[e.Source+"|"+e.Target] != e.Weight {
			t.Fatalf("edge %s-%s weight %d", e.Source, e.Target, e.Weight)
		}
	}
	for _, n := range view.Nodes {
		wantSide := movies.LackOfData.String()
		if n.Country == us {
			wantSide = movies.Western.String()
		}
		if n.Side != wantSide {
			t.Fatalf("%s side = %q, want %q", n.Country, n.Side, wantSide)
		}
	}
	if view.Threshold != 19 || view.RelevanceNB != 10 {
		t.Fatalf("unexpected parameters in view: %+v", view)
	}
}

func TestGraphFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"graph", "--min-films", "6"}, env.configPath)
	if err != nil {
		t.Fatalf("graph --min-films: %v", err)
	}
	requireContains(t, out, "Graph: 1 countries, 0 collaborations")
	requireContains(t, out, "No collaboration passes the relevance filter")

	out, _, err = runCLI(t, []string{"graph", "--relevance-nb", "13"}, env.configPath)
	if err != nil {
		t.Fatalf("graph --relevance-nb: %v", err)
	}
	if strings.Contains(out, "Western") {
		t.Fatalf("expected every verdict to lack data with relevance_nb 13:\n%s", out)
	}

	if _, _, err := runCLI(t, []string{"graph", "--threshold", "150"}, env.configPath); err == nil {
		t.Fatal("expected out-of-range threshold to fail")
	}
	if _, _, err := runCLI(t, []string{"graph", "--source", "parquet"}, env.configPath); err == nil {
		t.Fatal("expected unknown source to fail")
	}
}

func TestGraphCommandWritesNetworkFigure(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "net.json")

	out, _, err := runCLI(t, []string{"graph", "--out", target}, env.configPath)
	if err != nil {
		t.Fatalf("graph --out: %v", err)
	}
	requireContains(t, out, "Wrote network figure to "+target)

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read figure: %v", err)
	}
	var fig render.NetworkFigure
	if err := json.Unmarshal(data, &fig); err != nil {
		t.Fatalf("decode figure: %v", err)
	}
	if fig.Kind != render.KindNetwork || len(fig.Nodes) != 3 || fig.MaxWeight != 6 {
		t.Fatalf("unexpected figure: kind=%s nodes=%d max=%d", fig.Kind, len(fig.Nodes), fig.MaxWeight)
	}

	if _, _, err := runCLI(t, []string{"graph", "--figure"}, env.configPath); err != nil {
		t.Fatalf("graph --figure: %v", err)
	}
	if _, err := os.Stat(env.cfg.OutputPath("network.json")); err != nil {
		t.Fatalf("expected default network figure: %v", err)
	}
}

func TestMapCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"map"}, env.configPath)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	target := env.cfg.OutputPath("map.json")
	requireContains(t, out, "Wrote map figure to "+target+" (3 countries, 3 edges)")

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read map: %v", err)
	}
	var fig render.MapFigure
	if err := json.Unmarshal(data, &fig); err != nil {
		t.Fatalf("decode map: %v", err)
	}
	if fig.Kind != render.KindMap || len(fig.Unplaced) != 0 {
		t.Fatalf("unexpected map figure: %+v", fig)
	}
}

func TestSidesCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sides"}, env.configPath)
	if err != nil {
		t.Fatalf("sides: %v", err)
	}
	requireContains(t, out, "40.0")
	requireContains(t, out, "Verdicts: Western 1, Eastern 0, None 0, Lack of data 2")
	requireContains(t, out, "Verdicts use relevance_nb=10 relevance_diff=10 threshold=19.0")

	out, _, err = runCLI(t, []string{"sides", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sides --json: %v", err)
	}
	var rows []sideRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode sides: %v", err)
	}
	if len(rows) != 3 || rows[0].Country != us {
		t.Fatalf("expected the United States first of three rows: %+v", rows)
	}
	top := rows[0]
	if top.Occurrences != 12 || top.Western != 7 || top.Eastern != 3 || top.None != 2 {
		t.Fatalf("unexpected US tally %+v", top)
	}
	if top.Verdict != movies.Western || !top.InGraph || top.Difference == nil || math.Abs(*top.Difference-40) > 1e-9 {
		t.Fatalf("unexpected US verdict row %+v", top)
	}
}

func TestStatsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"stats", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("stats --json: %v", err)
	}
	var view statsView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if view.Distribution.Total != 12 {
		t.Fatalf("total = %d, want 12", view.Distribution.Total)
	}
	var total int
	for _, y := range view.Years {
		total += y.Total
		if y.Year == 1955 && y.Western != 2 {
			t.Fatalf("1955 = %+v, want two Western movies", y)
		}
	}
	if total != 11 {
		t.Fatalf("expected 11 dated movies, got %d", total)
	}
	if want := []string{france, russia, us}; !reflect.DeepEqual(view.Countries, want) {
		t.Fatalf("countries = %v, want %v", view.Countries, want)
	}

	out, _, err = runCLI(t, []string{"stats"}, env.configPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, "== Sides ==")
	requireContains(t, out, "Movies: 12")
	requireContains(t, out, "Countries credited: 3")
	requireContains(t, out, "1979")
}

func TestMetricsCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"metrics"}, env.configPath)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	requireContains(t, out, "Density: 1.000")
	requireContains(t, out, "Components: 1")
	requireContains(t, out, "Component 1: France, Russia, United States of America")

	out, _, err = runCLI(t, []string{"metrics", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("metrics --json: %v", err)
	}
	var m analysis.GraphMetrics
	if err := json.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	if m.Weights.Max != 6 || m.Weights.Count != 3 {
		t.Fatalf("unexpected weight summary %+v", m.Weights)
	}
}

func TestSweepCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sweep", "--to", "6", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	var points []analysis.SweepPoint
	if err := json.Unmarshal([]byte(out), &points); err != nil {
		t.Fatalf("decode sweep: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].Nodes > points[i-1].Nodes || points[i].Edges > points[i-1].Edges {
			t.Fatalf("sweep not monotone at %d: %+v", i, points)
		}
	}
	if last := points[6]; last.Nodes != 1 || last.Edges != 0 || last.Western != 1 {
		t.Fatalf("unexpected point at min_films=6: %+v", last)
	}

	if _, _, err := runCLI(t, []string{"sweep", "--axis", "threshold"}, env.configPath); err == nil {
		t.Fatal("expected unknown axis to fail")
	}
	if _, _, err := runCLI(t, []string{"sweep", "--from", "5", "--to", "2"}, env.configPath); err == nil {
		t.Fatal("expected inverted range to fail")
	}
}

func TestSweepRejectsOversizedRanges(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, args := range [][]string{
		{"sweep", "--to", "9223372036854775807"},
		{"sweep", "--to", "5000"},
	} {
		_, _, err := runCLI(t, args, env.configPath)
		if err == nil || !strings.Contains(err.Error(), "limit 1000") {
			t.Fatalf("%v: expected sweep size limit error, got %v", args, err)
		}
	}

	if _, _, err := runCLI(t, []string{"sweep", "--to", "1998", "--step", "2", "--json"}, env.configPath); err != nil {
		t.Fatalf("1000-point sweep should be allowed: %v", err)
	}
}

func TestSweepNearIntLimitTerminates(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"sweep", "--from", "9223372036854775806", "--to", "9223372036854775807", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	var points []analysis.SweepPoint
	if err := json.Unmarshal([]byte(out), &points); err != nil {
		t.Fatalf("decode sweep: %v", err)
	}
	if len(points) != 2 || points[1].Value != math.MaxInt {
		t.Fatalf("expected two points ending at MaxInt, got %+v", points)
	}
}

func TestImportThenReadFromCache(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"graph", "--source", "sqlite"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "blocgraph import") {
		t.Fatalf("expected empty cache hint, got %v", err)
	}

	out, _, err := runCLI(t, []string{"import"}, env.configPath)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Imported 12 movies into "+env.cfg.Paths.DatasetCache)
	requireContains(t, out, "Run ID: ")

	fromCSV, _, err := runCLI(t, []string{"graph", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("graph csv: %v", err)
	}
	fromCache, _, err := runCLI(t, []string{"graph", "--json", "--source", "sqlite"}, env.configPath)
	if err != nil {
		t.Fatalf("graph sqlite: %v", err)
	}
	if fromCSV != fromCache {
		t.Fatalf("cache graph differs from csv graph:\n%s\n---\n%s", fromCSV, fromCache)
	}
}

func TestRunLogsCarryRunID(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"graph"}, env.configPath); err != nil {
		t.Fatalf("graph: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(env.cfg.Paths.LogDir, "blocgraph.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	logText := string(data)
	requireContains(t, logText, "graph built")
	requireContains(t, logText, "run_id=")
	requireContains(t, logText, "command=\"blocgraph graph\"")
}

func TestMissingDatasetFails(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"graph", "--dataset", filepath.Join(env.baseDir, "missing.csv")}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "load dataset") {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestCheckCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "== Readiness ==")
	requireContains(t, out, "[OK] "+env.cfg.Paths.Dataset+" (12 movies)")
	requireContains(t, out, "not built")

	_, _, err = runCLI(t, []string{"check", "--dataset", filepath.Join(env.baseDir, "gone.csv")}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "1 of 4 checks failed") {
		t.Fatalf("expected one failed check, got %v", err)
	}
}
