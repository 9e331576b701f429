package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Ascendant_Go/internal/domain"
)

// run executes one CLI invocation against the sqlite file at db
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--db", db, "--tz", "UTC"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func exportState(t *testing.T, db string) domain.State {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.json")
	_, err := run(t, db, "export", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var st domain.State
	require.NoError(t, json.Unmarshal(data, &st))
	return st
}

func TestTaskLifecycleAcrossInvocations(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ascend.db")

	out, err := run(t, db, "task", "add", "Read a chapter", "--category", "cognitive", "--difficulty", "medium")
	require.NoError(t, err)
	assert.Contains(t, out, "Task created")
	assert.Contains(t, out, "Read a chapter")

	st := exportState(t, db)
	require.Len(t, st.Tasks, 1)
	id := st.Tasks[0].ID

	out, err = run(t, db, "task", "done", id)
	require.NoError(t, err)
	assert.Contains(t, out, "+10 exp")

	_, err = run(t, db, "task", "done", id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	out, err = run(t, db, "status", "--json")
	require.NoError(t, err)
	start := strings.Index(out, "{")
	require.GreaterOrEqual(t, start, 0, out)
	var status domain.Status
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &status))
	assert.Equal(t, int64(10), status.User.Exp)
	assert.Equal(t, domain.RankF, status.User.Rank)

	out, err = run(t, db, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "done")

	_, err = run(t, db, "task", "rm", id)
	require.NoError(t, err)
	_, err = run(t, db, "task", "rm", id)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestCatalogQuestNeedsSubTasks(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ascend.db")

	out, err := run(t, db, "quest", "from", "mq-deep-work")
	require.NoError(t, err)
	assert.Contains(t, out, "Quest accepted")
	assert.Contains(t, out, "main")

	st := exportState(t, db)
	require.Len(t, st.Quests, 1)
	q := st.Quests[0]
	require.Len(t, q.Tasks, 3)

	_, err = run(t, db, "quest", "done", q.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	for _, sub := range q.Tasks {
		_, err = run(t, db, "quest", "sub", "done", q.ID, sub.ID)
		require.NoError(t, err)
	}

	out, err = run(t, db, "quest", "done", q.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed quest")

	_, err = run(t, db, "quest", "from", "does-not-exist")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestMissionSteps(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ascend.db")

	_, err := run(t, db, "mission", "from", "1")
	require.NoError(t, err)

	st := exportState(t, db)
	require.Len(t, st.Missions, 1)
	m := st.Missions[0]

	_, err = run(t, db, "mission", "step", m.ID, "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")

	for i := 1; i <= m.Count; i++ {
		_, err = run(t, db, "mission", "step", m.ID, strconv.Itoa(i))
		require.NoError(t, err)
	}

	out, err := run(t, db, "mission", "done", m.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Completed mission")
}

func TestRedeemRequiresCurse(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ascend.db")

	_, err := run(t, db, "redeem", "start")
	assert.ErrorIs(t, err, domain.ErrRedemptionUnavailable)

	_, err = run(t, db, "redeem", "attempt")
	require.Error(t, err, "--passed is required")
}

func TestJournalAndSweep(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ascend.db")

	out, err := run(t, db, "journal", "weekly", "--week", "2026-03-11")
	require.NoError(t, err)
	assert.Contains(t, out, "Week of 2026-03-08")

	_, err = run(t, db, "journal", "daily", "--date", "yesterday")
	require.Error(t, err)

	out, err = run(t, db, "sweep")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing overdue")

	out, err = run(t, db, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "mq-deep-work")
	assert.Contains(t, out, "Missions for rank F")
}

func TestParseDeadline(t *testing.T) {
	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    *time.Time
		wantErr bool
	}{
		{name: "empty", value: ""},
		{name: "duration", value: "90m", want: ptr(now.Add(90 * time.Minute))},
		{name: "date", value: "2026-03-12", want: ptr(time.Date(2026, 3, 12, 23, 59, 59, int(999*time.Millisecond), time.UTC))},
		{name: "rfc3339", value: "2026-03-12T08:00:00Z", want: ptr(time.Date(2026, 3, 12, 8, 0, 0, 0, time.UTC))},
		{name: "negative duration", value: "-1h", wantErr: true},
		{name: "garbage", value: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDeadline(tt.value, now, time.UTC)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s", got)
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, filepath.Join(t.TempDir(), "ascend.db"), "levitate")
	require.Error(t, err)
}

func ptr(t time.Time) *time.Time { return &t }
