package count

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/phil-mansfield/ptstat/particle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeRows(t *testing.T, dir, name string, rows int) string {
	t.Helper()
	sb := &strings.Builder{}
	for i := 0; i < rows; i++ {
		fmt.Fprintf(sb, "%d 0.5 0.5 1 0 0 %d 1\n", i, i%3)
	}
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, []byte(sb.String()), 0644))
	return fname
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeRows(t, dir, "wall_a", 3),
		writeRows(t, dir, "wall_b", 10),
		writeRows(t, dir, "wall_c", 1),
	}

	results, err := Files(context.Background(), files, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, want := range []int{3, 10, 1} {
		assert.Equal(t, files[i], results[i].File)
		assert.Equal(t, want, results[i].Rows, files[i])
	}
	assert.Equal(t, 14, Total(results))
}

func TestTotalIsSumOfCounts(t *testing.T) {
	counts := map[string]int{"a": 5, "b": 0, "c": 12, "d": 7}
	files := []string{"a", "b", "c", "d"}
	counter := func(f string) (int, error) { return counts[f], nil }

	results, err := Files(context.Background(), files, 0, counter)
	require.NoError(t, err)

	sum := 0
	for _, r := range results { sum += r.Rows }
	assert.Equal(t, 24, sum)
	assert.Equal(t, sum, Total(results))
}

func TestFilesOrderWithSlowCounters(t *testing.T) {
	files := []string{"slow", "fast", "medium"}
	delay := map[string]time.Duration{
		"slow": 30 * time.Millisecond, "fast": 0, "medium": 10 * time.Millisecond,
	}
	counter := func(f string) (int, error) {
		time.Sleep(delay[f])
		return len(f), nil
	}

	results, err := Files(context.Background(), files, 3, counter)
	require.NoError(t, err)
	for i := range files {
		assert.Equal(t, files[i], results[i].File)
		assert.Equal(t, len(files[i]), results[i].Rows)
	}
}

func TestFilesFailure(t *testing.T) {
	errBad := errors.New("not numeric")
	var calls int32
	counter := func(f string) (int, error) {
		atomic.AddInt32(&calls, 1)
		if strings.HasPrefix(f, "bad") { return 0, errBad }
		return 4, nil
	}

	files := []string{"ok1", "ok2", "bad1", "ok3", "bad2"}
	results, err := Files(context.Background(), files, 4, counter)

	assert.ErrorIs(t, err, errBad)
	assert.Contains(t, err.Error(), "bad1", "first failure in input order")
	require.Len(t, results, 2)
	assert.Equal(t, "ok1", results[0].File)
	assert.Equal(t, "ok2", results[1].File)
	assert.Equal(t, int32(len(files)), atomic.LoadInt32(&calls))
}

func TestFilesMissing(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeRows(t, dir, "present", 2),
		filepath.Join(dir, "missing"),
	}

	results, err := Files(context.Background(), files, 1, nil)
	assert.Error(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].Rows)
}

func TestFilesCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Files(ctx, []string{"a", "b"}, 1, func(string) (int, error) {
		return 1, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestFilesMalformed(t *testing.T) {
	dir := t.TempDir()
	for _, body := range []string{"1 2 abc\n", "abc 2\n", "1 2 3\n4\n"} {
		bad := filepath.Join(dir, "bad")
		require.NoError(t, os.WriteFile(bad, []byte(body), 0644))
		files := []string{writeRows(t, dir, "good", 3), bad}

		results, err := Files(context.Background(), files, 2, nil)
		assert.ErrorIs(t, err, particle.ErrMalformed, "body %q", body)
		require.Len(t, results, 1)
		assert.Equal(t, 3, results[0].Rows)
	}
}
