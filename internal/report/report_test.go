package report

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rickgao/congress-data/internal/model"
	"github.com/rickgao/congress-data/internal/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	ctx := context.Background()

	st, err := store.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	if err := st.Init(ctx); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return st
}

func save(t *testing.T, st store.Store, name, date, ticker, txType string, amount float64) {
	t.Helper()
	_, err := st.Save(context.Background(), model.Trade{
		OfficialName:    name,
		Chamber:         model.ChamberHouse,
		State:           "CA",
		Party:           "D",
		TransactionDate: date,
		Ticker:          ticker,
		TransactionType: txType,
		Amount:          amount,
		RangeLow:        amount,
		RangeHigh:       amount,
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func testSummary() model.RunSummary {
	return model.RunSummary{
		RunID:       uuid.New(),
		TradesFound: 12,
		NewTrades:   4,
		TotalValue:  1234567.4,
		DateRange:   "2025-01-08 to 2025-01-15",
		Timestamp:   time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "Jane Doe", "2025-01-14", "NVDA", "Purchase", 275000)
	save(t, st, "Jane Doe", "2025-01-13", "AAPL", "Sale", 8000)
	save(t, st, "John Roe", "2025-01-12", "TSLA", "Purchase", 75000)

	g := NewGenerator(st, 50000, nil)
	body := g.Render(context.Background(), testSummary())

	for _, want := range []string{
		"Congressional Stock Tracker",
		"Daily Report - 2025-01-15",
		"Trades found: 12",
		"New trades: 4",
		"Total value: $1,234,567",
		"Recent Large Trades:",
		"Purchase NVDA ($275,000)",
		"Purchase TSLA ($75,000)",
		"Most Active Officials:",
		"Jane Doe (House): 2 trades",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, body)
		}
	}

	// Trades below the threshold never show in the large-trades section.
	if strings.Contains(body, "AAPL") {
		t.Errorf("report should not list the $8,000 AAPL trade\nreport:\n%s", body)
	}
}

func TestRenderErrorSummary(t *testing.T) {
	g := NewGenerator(newTestStore(t), 50000, nil)

	summary := model.RunSummary{
		Err:       "API key not configured",
		Timestamp: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
	}
	body := g.Render(context.Background(), summary)

	if !strings.Contains(body, "Error: API key not configured") {
		t.Errorf("report missing error line:\n%s", body)
	}
	if strings.Contains(body, "Trades found") {
		t.Errorf("error report should not contain run stats:\n%s", body)
	}
}

func TestRenderDeterministic(t *testing.T) {
	st := newTestStore(t)
	save(t, st, "Jane Doe", "2025-01-14", "NVDA", "Purchase", 275000)
	save(t, st, "John Roe", "2025-01-12", "TSLA", "Purchase", 75000)

	g := NewGenerator(st, 50000, nil)
	summary := testSummary()

	first := g.Render(context.Background(), summary)
	for i := 0; i < 5; i++ {
		if got := g.Render(context.Background(), summary); got != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestRenderCapsSections(t *testing.T) {
	st := newTestStore(t)
	names := []string{"A One", "B Two", "C Three", "D Four", "E Five", "F Six"}
	dates := []string{"2025-01-09", "2025-01-10", "2025-01-11", "2025-01-12", "2025-01-13", "2025-01-14"}
	for i, name := range names {
		save(t, st, name, dates[i], "AAPL", "Purchase", 100000)
	}

	g := NewGenerator(st, 50000, nil)
	body := g.Render(context.Background(), testSummary())

	if got := strings.Count(body, "Purchase AAPL"); got != 3 {
		t.Errorf("large trade lines = %d, want 3\nreport:\n%s", got, body)
	}
	if got := strings.Count(body, "): 1 trades"); got != 3 {
		t.Errorf("top official lines = %d, want 3\nreport:\n%s", got, body)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "alert.txt")

	if err := WriteFile(path, "report body\n"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "report body\n" {
		t.Errorf("content = %q, want %q", string(data), "report body\n")
	}
}
