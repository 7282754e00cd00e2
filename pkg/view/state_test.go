package view

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-site/pkg/format"
	"github.com/portfolio-site/pkg/tokens"
)

var errFetch = errors.New("boom")

func rec(token, ts string) tokens.Record {
	return tokens.Record{Token: token, Timestamp: ts, Name: token}
}

func TestStartsLoading(t *testing.T) {
	s := New(Options{})
	assert.Equal(t, PhaseLoading, s.Phase())
	assert.Nil(t, s.Visible())
	_, ok := s.ExpandedKey()
	assert.False(t, ok)
}

func TestStateMachineScript(t *testing.T) {
	r1 := rec("0x1", "2024-05-01T10:00:00Z")
	r2 := rec("0x2", "2024-05-01T09:00:00Z")

	s := New(Options{})
	script := []Outcome{
		{Err: errFetch},
		{Records: []tokens.Record{}},
		{Records: []tokens.Record{r1, r2}},
		{Err: errFetch},
	}
	want := []Phase{PhaseError, PhaseEmpty, PhaseList, PhaseError}

	for i, o := range script {
		require.True(t, s.Apply(o))
		assert.Equal(t, want[i], s.Phase(), "step %d", i)
		if want[i] == PhaseList {
			assert.Equal(t, []tokens.Record{r1, r2}, s.Visible())
		}
	}

	assert.Equal(t, LoadErrorMessage, s.ErrorMessage())
	assert.Nil(t, s.Visible(), "error panel hides the list")
	assert.Len(t, s.Records(), 2, "records are retained behind the error")
}

func TestSuccessClearsError(t *testing.T) {
	s := New(Options{})
	s.Apply(Outcome{Err: errFetch})
	s.Apply(Outcome{Records: []tokens.Record{rec("0x1", "a")}})
	assert.Equal(t, PhaseList, s.Phase())
	assert.Empty(t, s.ErrorMessage())
}

func TestNilRecordsIsEmpty(t *testing.T) {
	s := New(Options{})
	s.Apply(Outcome{})
	assert.Equal(t, PhaseEmpty, s.Phase())
}

func TestToggleTwiceRestores(t *testing.T) {
	s := New(Options{})
	s.Toggle("k1")
	s.Toggle("k1")
	_, ok := s.ExpandedKey()
	assert.False(t, ok)

	s.Toggle("k2")
	s.Toggle("k1")
	s.Toggle("k1")
	key, ok := s.ExpandedKey()
	assert.True(t, ok)
	assert.Equal(t, "k2", key, "double click on k1 is a no-op overall")
}

func TestAtMostOneExpanded(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	s := New(Options{})
	s.Apply(Outcome{Records: []tokens.Record{rec("a", ""), rec("b", ""), rec("c", ""), rec("d", "")}})

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		s.Toggle(keys[rnd.Intn(len(keys))])

		expanded := 0
		for _, k := range keys {
			if s.IsExpanded(k) {
				expanded++
			}
		}
		assert.LessOrEqual(t, expanded, 1)
	}
}

func TestExpansionSurvivesRefreshAndDangles(t *testing.T) {
	r1 := rec("0x1", "t1")
	r2 := rec("0x2", "t2")
	p := Projector{Links: format.DefaultLinks(), Location: time.UTC}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s := New(Options{})
	s.Apply(Outcome{Records: []tokens.Record{r1, r2}})
	s.Toggle(r1.Key())

	s.Apply(Outcome{Records: []tokens.Record{r2}})
	key, ok := s.ExpandedKey()
	require.True(t, ok)
	assert.Equal(t, r1.Key(), key, "selection is kept across refreshes")
	for _, row := range p.Rows(s, now) {
		assert.False(t, row.Expanded, "dangling key renders collapsed")
	}

	s.Apply(Outcome{Records: []tokens.Record{r2, r1}})
	rows := p.Rows(s, now)
	require.Len(t, rows, 2)
	assert.False(t, rows[0].Expanded)
	assert.True(t, rows[1].Expanded, "key matches again once the record returns")
}

func TestSameTokenNewCheckIsDistinct(t *testing.T) {
	old := rec("0x1", "t1")
	recheck := rec("0x1", "t2")

	s := New(Options{})
	s.Apply(Outcome{Records: []tokens.Record{recheck, old}})
	s.Toggle(old.Key())

	assert.False(t, s.IsExpanded(recheck.Key()))
	assert.True(t, s.IsExpanded(old.Key()))
}

func TestDropStale(t *testing.T) {
	fresh := []tokens.Record{rec("0xnew", "t2")}
	stale := []tokens.Record{rec("0xold", "t1")}

	s := New(Options{DropStale: true})
	assert.True(t, s.Apply(Outcome{Seq: 2, Records: fresh}))
	assert.False(t, s.Apply(Outcome{Seq: 1, Records: stale}))
	assert.Equal(t, fresh, s.Visible())

	assert.False(t, s.Apply(Outcome{Seq: 1, Err: errFetch}), "a stale failure is dropped too")
	assert.Equal(t, PhaseList, s.Phase())
}

func TestLastWriterWinsWithoutDropStale(t *testing.T) {
	fresh := []tokens.Record{rec("0xnew", "t2")}
	stale := []tokens.Record{rec("0xold", "t1")}

	s := New(Options{})
	s.Apply(Outcome{Seq: 2, Records: fresh})
	assert.True(t, s.Apply(Outcome{Seq: 1, Records: stale}))
	assert.Equal(t, stale, s.Visible())
}
