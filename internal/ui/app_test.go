package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/pokex/internal/dex"
	"github.com/five82/pokex/internal/prefs"
	"github.com/five82/pokex/internal/state"
)

func testRecords() []dex.Record {
	return []dex.Record{
		{
			ID: 1, Name: "bulbasaur", Image: "https://img.example/1.png",
			Types: []string{"grass", "poison"}, Height: 7, Weight: 69,
			Stats: []dex.Stat{
				{Name: "hp", Value: 45}, {Name: "attack", Value: 49}, {Name: "defense", Value: 49},
				{Name: "special-attack", Value: 65}, {Name: "special-defense", Value: 65}, {Name: "speed", Value: 45},
			},
			Abilities: []string{"overgrow", "chlorophyll"},
		},
		{
			ID: 4, Name: "charmander", Types: []string{"fire"}, Height: 6, Weight: 85,
			Stats:     []dex.Stat{{Name: "hp", Value: 39}, {Name: "speed", Value: 65}},
			Abilities: []string{"blaze", "solar-power"},
		},
		{
			ID: 7, Name: "squirtle", Types: []string{"water"}, Height: 5, Weight: 90,
			Stats:     []dex.Stat{{Name: "hp", Value: 44}, {Name: "defense", Value: 100}},
			Abilities: []string{"torrent", "rain-dish"},
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want ui.Model", next)
	}
	return model, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func sized(t *testing.T, m Model, width, height int) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func loadedModel(t *testing.T, opts Options) Model {
	t.Helper()
	m := sized(t, New(opts), 120, 40)
	m, _ = update(t, m, recordsMsg{records: dex.NewCollection(testRecords()), at: time.Now()})
	return m
}

func view(m Model) string {
	return ansi.Strip(m.View())
}

func visibleIDs(m Model) []int {
	ids := []int{}
	for _, rec := range m.State().Visible() {
		ids = append(ids, rec.ID)
	}
	return ids
}

// runCmd executes cmd and any batched children, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findRecordsMsg(t *testing.T, msgs []tea.Msg) recordsMsg {
	t.Helper()
	for _, msg := range msgs {
		if rm, ok := msg.(recordsMsg); ok {
			return rm
		}
	}
	t.Fatalf("no recordsMsg among %d messages", len(msgs))
	return recordsMsg{}
}

func TestView_BeforeWindowSize(t *testing.T) {
	if got := New(Options{}).View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestNew_StartsLoadingInGrid(t *testing.T) {
	m := New(Options{Theme: state.ThemeDark})
	st := m.State()
	if !st.Loading() {
		t.Fatalf("expected loading state")
	}
	if st.Mode() != state.ModeGrid {
		t.Fatalf("Mode = %v, want grid", st.Mode())
	}
	if st.Theme != state.ThemeDark {
		t.Fatalf("Theme = %v, want dark", st.Theme)
	}
	if len(st.Visible()) != 0 {
		t.Fatalf("expected no visible records before load")
	}
}

func TestInit_RunsLoaderWithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "pokex")

	var sawCtx bool
	m := New(Options{
		Context: ctx,
		Load: func(got context.Context) (dex.Collection, error) {
			sawCtx = got.Value(ctxKey{}) == "pokex"
			return dex.NewCollection(testRecords()), nil
		},
	})

	rm := findRecordsMsg(t, runCmd(m.Init()))
	if !sawCtx {
		t.Fatalf("loader did not receive the configured context")
	}
	if rm.err != nil || rm.records.Len() != 3 {
		t.Fatalf("recordsMsg = %+v", rm)
	}

	m = sized(t, m, 120, 40)
	m, _ = update(t, m, rm)
	if got := visibleIDs(m); !reflect.DeepEqual(got, []int{1, 4, 7}) {
		t.Fatalf("visible = %v", got)
	}
	if !strings.Contains(view(m), "3 Pokemon") {
		t.Fatalf("header should count records:\n%s", view(m))
	}
}

func TestLoadCmd_NilLoader(t *testing.T) {
	if cmd := New(Options{}).loadCmd(); cmd != nil {
		t.Fatalf("expected nil command without a loader")
	}
}

func TestEnterOpensDetail_EscReturns(t *testing.T) {
	m := loadedModel(t, Options{})

	m = press(t, m, "enter")
	if m.State().Mode() != state.ModeDetail || m.State().SelectedID != 1 {
		t.Fatalf("after enter: mode=%v selected=%d", m.State().Mode(), m.State().SelectedID)
	}
	out := view(m)
	for _, want := range []string{"Bulbasaur", "0.7 m", "6.9 kg", "17.6%", "overgrow", "chlorophyll", "grass", "poison", "https://img.example/1.png"} {
		if !strings.Contains(out, want) {
			t.Fatalf("detail view missing %q:\n%s", want, out)
		}
	}

	m = press(t, m, "esc")
	if m.State().Mode() != state.ModeGrid || m.State().SelectedID != 0 {
		t.Fatalf("after esc: mode=%v selected=%d", m.State().Mode(), m.State().SelectedID)
	}
}

func TestDetail_BackAlternatives(t *testing.T) {
	for _, k := range []string{"b", "backspace"} {
		m := press(t, loadedModel(t, Options{}), "enter", k)
		if m.State().Mode() != state.ModeGrid {
			t.Fatalf("%s did not return to grid", k)
		}
	}
}

func TestDetail_AbilitiesReplaceEveryHyphen(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "right", "enter")
	if m.State().SelectedID != 4 {
		t.Fatalf("selected = %d, want 4", m.State().SelectedID)
	}
	if out := view(m); !strings.Contains(out, "solar power") {
		t.Fatalf("detail view missing ability label:\n%s", out)
	}
}

func TestDetail_StatPercentOfMax(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "G", "enter")
	if m.State().SelectedID != 7 {
		t.Fatalf("selected = %d, want 7", m.State().SelectedID)
	}
	if out := view(m); !strings.Contains(out, "39.2%") {
		t.Fatalf("defense 100 should render 39.2%%:\n%s", out)
	}
}

func TestFavoriteInGrid_DoesNotOpenDetail(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "f")
	st := m.State()
	if !st.IsFavorite(1) {
		t.Fatalf("expected record 1 to be a favorite")
	}
	if st.Mode() != state.ModeGrid {
		t.Fatalf("favoriting from the grid opened the detail view")
	}
	if !strings.Contains(view(m), "♥ 1") {
		t.Fatalf("header should count favorites:\n%s", view(m))
	}

	m = press(t, m, "f")
	if m.State().IsFavorite(1) {
		t.Fatalf("second toggle should remove the favorite")
	}
}

func TestFavoriteInDetail(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "enter", "f")
	if !m.State().IsFavorite(1) {
		t.Fatalf("expected record 1 to be a favorite")
	}
	if !strings.Contains(view(m), "♥ Favorite") {
		t.Fatalf("detail view should show favorite state:\n%s", view(m))
	}
	m = press(t, m, "esc")
	if !m.State().IsFavorite(1) {
		t.Fatalf("favorite lost on return to grid")
	}
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "/")
	m = typeText(t, m, "fire")

	if got := visibleIDs(m); !reflect.DeepEqual(got, []int{4}) {
		t.Fatalf("visible = %v, want [4]", got)
	}
	if m.State().Favorites.Len() != 0 {
		t.Fatalf("typing f in the search box toggled a favorite")
	}
	if !strings.Contains(view(m), "1 of 3 Pokemon") {
		t.Fatalf("header should show filtered count:\n%s", view(m))
	}

	// enter keeps the term and leaves the input
	m = press(t, m, "enter")
	if m.searching || m.State().Search != "fire" {
		t.Fatalf("searching=%v search=%q", m.searching, m.State().Search)
	}

	// esc in the grid clears it
	m = press(t, m, "esc")
	if m.State().Search != "" || len(visibleIDs(m)) != 3 {
		t.Fatalf("esc should clear the search, got %q / %v", m.State().Search, visibleIDs(m))
	}
}

func TestSearch_MatchesTypeCaseInsensitively(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "/")
	m = typeText(t, m, "POISON")
	if got := visibleIDs(m); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("visible = %v, want [1]", got)
	}
}

func TestSearch_EscCancels(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "/")
	m = typeText(t, m, "sq")
	m = press(t, m, "esc")
	if m.searching || m.State().Search != "" || len(visibleIDs(m)) != 3 {
		t.Fatalf("esc should cancel the search: searching=%v search=%q", m.searching, m.State().Search)
	}
}

func TestSearch_NoMatches(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "/")
	m = typeText(t, m, "zzz")
	if len(visibleIDs(m)) != 0 {
		t.Fatalf("expected empty result")
	}
	if !strings.Contains(view(m), `No Pokemon match "zzz".`) {
		t.Fatalf("missing empty-result message:\n%s", view(m))
	}
	// Open on an empty grid is a no-op
	m = press(t, m, "enter", "enter")
	if m.State().Mode() != state.ModeGrid {
		t.Fatalf("enter on an empty grid changed mode")
	}
}

func TestGridNavigation(t *testing.T) {
	m := loadedModel(t, Options{})
	if cols := m.gridColumns(); cols != 120/CardWidth {
		t.Fatalf("gridColumns = %d", cols)
	}

	m = press(t, m, "right", "right", "right")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2 (clamped)", m.cursor)
	}
	m = press(t, m, "left")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
	m = press(t, m, "g")
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
	m = press(t, m, "G", "enter")
	if m.State().SelectedID != 7 {
		t.Fatalf("selected = %d, want 7", m.State().SelectedID)
	}
}

func TestGridNavigation_SingleColumn(t *testing.T) {
	m := loadedModel(t, Options{})
	m = sized(t, m, CardWidth+3, 30)
	if m.gridColumns() != 1 {
		t.Fatalf("gridColumns = %d, want 1", m.gridColumns())
	}
	m = press(t, m, "down", "j")
	if m.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", m.cursor)
	}
	m = press(t, m, "k")
	if m.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", m.cursor)
	}
}

func TestCursorClampsWhenFilterShrinks(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "G", "/")
	m = typeText(t, m, "char")
	m = press(t, m, "enter", "enter")
	if m.State().SelectedID != 4 {
		t.Fatalf("selected = %d, want 4", m.State().SelectedID)
	}
}

func TestToggleTheme_PersistsPrefs(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := loadedModel(t, Options{PrefsPath: prefsPath})

	m = press(t, m, "T")
	if m.State().Theme != state.ThemeDark || m.theme.Name != "Dark" {
		t.Fatalf("theme = %v / %s, want dark", m.State().Theme, m.theme.Name)
	}
	if got := prefs.Load(prefsPath).Theme; got != "dark" {
		t.Fatalf("saved theme = %q, want dark", got)
	}
	if !strings.Contains(view(m), "Dark") {
		t.Fatalf("header should show the dark theme:\n%s", view(m))
	}

	m = press(t, m, "T")
	if m.State().Theme != state.ThemeLight {
		t.Fatalf("theme = %v, want light", m.State().Theme)
	}
	if got := prefs.Load(prefsPath).Theme; got != "light" {
		t.Fatalf("saved theme = %q, want light", got)
	}
}

func TestToggleTheme_KeepsOtherState(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "f", "enter", "T")
	st := m.State()
	if st.SelectedID != 1 || !st.IsFavorite(1) || st.Mode() != state.ModeDetail {
		t.Fatalf("theme toggle disturbed state: %+v", st)
	}
}

func TestFailedLoad_ShowsRetryAndRecovers(t *testing.T) {
	var calls atomic.Int32
	m := New(Options{
		Load: func(context.Context) (dex.Collection, error) {
			calls.Add(1)
			return dex.NewCollection(testRecords()), nil
		},
	})
	m = sized(t, m, 120, 40)
	m, _ = update(t, m, recordsMsg{err: &dex.FetchError{Cause: errors.New("boom")}, at: time.Now()})

	if len(visibleIDs(m)) != 0 || m.State().Loading() {
		t.Fatalf("failed load should leave an empty, settled grid")
	}
	out := view(m)
	if !strings.Contains(out, "boom") || !strings.Contains(out, "press r to retry") {
		t.Fatalf("failure not surfaced:\n%s", out)
	}

	// Grid keys on an empty grid are no-ops
	m = press(t, m, "enter", "f", "right")
	if m.State().Mode() != state.ModeGrid || m.State().Favorites.Len() != 0 {
		t.Fatalf("keys on an empty grid changed state")
	}

	m, cmd := update(t, m, keyMsg("r"))
	if !m.State().Loading() || m.State().LoadErr != nil {
		t.Fatalf("retry should return to loading")
	}
	rm := findRecordsMsg(t, runCmd(cmd))
	if calls.Load() != 1 {
		t.Fatalf("loader calls = %d, want 1", calls.Load())
	}
	m, _ = update(t, m, rm)
	if got := visibleIDs(m); !reflect.DeepEqual(got, []int{1, 4, 7}) {
		t.Fatalf("visible after retry = %v", got)
	}
}

func TestRetry_IgnoredAfterSuccess(t *testing.T) {
	m := loadedModel(t, Options{Load: func(context.Context) (dex.Collection, error) {
		t.Fatalf("loader should not run again")
		return dex.Collection{}, nil
	}})
	_, cmd := update(t, m, keyMsg("r"))
	if cmd != nil {
		t.Fatalf("retry after a successful load returned a command")
	}
}

func TestHelpOverlay(t *testing.T) {
	m := press(t, loadedModel(t, Options{}), "?")
	if !strings.Contains(view(m), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown:\n%s", view(m))
	}
	m = press(t, m, "x")
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}

func TestLogOverlay(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pokex.log")
	if err := os.WriteFile(logPath, []byte("2026/10/17 10:00:00 load pokemon: fetch records: boom\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m := press(t, loadedModel(t, Options{LogPath: logPath}), "L")
	if !strings.Contains(view(m), "fetch records: boom") {
		t.Fatalf("log overlay missing line:\n%s", view(m))
	}
	m = press(t, m, "L")
	if m.showLogs {
		t.Fatalf("any key should close the log overlay")
	}

	m = press(t, loadedModel(t, Options{}), "L")
	if !strings.Contains(view(m), "Session logging is off") {
		t.Fatalf("expected disabled-log message:\n%s", view(m))
	}
}

func TestQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{keyMsg("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, loadedModel(t, Options{}), msg)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", msg)
		}
	}
}

func TestSpinnerStopsAfterLoad(t *testing.T) {
	m := loadedModel(t, Options{})
	_, cmd := update(t, m, m.spinner.Tick())
	if cmd != nil {
		t.Fatalf("spinner should stop ticking once loaded")
	}
}
