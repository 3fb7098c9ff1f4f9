package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersincine/habit-tracker/internal/habit"
	"github.com/ersincine/habit-tracker/internal/testutil"
)

var testToday = habit.Date{Year: 2024, Month: 1, Day: 4}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "habits"), testutil.NewFixedClock(testToday))
}

// saved creates and persists a habit, returning it.
func saved(t *testing.T, s *Store, title string) *habit.Habit {
	t.Helper()
	h, err := s.Create(title, "", habit.Date{}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(h))
	return h
}

func TestCreate_FirstIDIsZero(t *testing.T) {
	s := newTestStore(t)

	h, err := s.Create("Read books", "desc", habit.Date{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, h.ID)
	assert.Equal(t, testToday, h.Start, "zero start date defaults to today")
	assert.Empty(t, h.Series)
}

func TestCreate_DoesNotPersist(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create("Read books", "", habit.Date{}, nil)
	require.NoError(t, err)

	ids, err := s.ListIDs()
	require.NoError(t, err)
	assert.Empty(t, ids, "create must not write until Save")
}

func TestCreate_IDsNeverReused(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		h := saved(t, s, "Habit")
		assert.Equal(t, i, h.ID)
	}

	require.NoError(t, s.Remove(1))

	h := saved(t, s, "Habit")
	assert.Equal(t, 3, h.ID, "gaps from removed habits are not refilled")
}

func TestCreate_ExplicitStartAndSeries(t *testing.T) {
	s := newTestStore(t)
	start := habit.Date{Year: 2024, Month: 1, Day: 1}

	h, err := s.Create("Read books", "", start, []habit.Result{habit.Good, habit.Bad})
	require.NoError(t, err)
	assert.Equal(t, start, h.Start)
	assert.Equal(t, []habit.Result{habit.Good, habit.Bad}, h.Series)
}

func TestCreate_EmptyTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create("", "", habit.Date{}, nil)
	var vErr *habit.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCreate_AllowsDuplicateTitles(t *testing.T) {
	// Title uniqueness is soft: duplicates are fine until a title lookup.
	s := newTestStore(t)
	saved(t, s, "Read books")

	h, err := s.Create("Read books", "", habit.Date{}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Save(h))

	ids, err := s.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, ids)
}

func TestSaveGet_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	h, err := s.Create("Read books", "line one\nline two", habit.Date{Year: 2024, Month: 1, Day: 1}, nil)
	require.NoError(t, err)
	require.NoError(t, h.MarkMissingDays(testToday, []habit.Result{habit.Good, habit.Bad, habit.Unknown}, false))
	require.NoError(t, s.Save(h))

	got, err := s.Get(h.ID)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestSave_IdempotentBytes(t *testing.T) {
	s := newTestStore(t)
	h := saved(t, s, "Read books")
	path := filepath.Join(s.Dir(), "0")

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Save(h))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "saving unchanged state must produce identical bytes")
}

func TestSave_Overwrites(t *testing.T) {
	s := newTestStore(t)
	h := saved(t, s, "Read books")

	require.NoError(t, h.MarkToday(testToday, habit.Good))
	require.NoError(t, s.Save(h))

	got, err := s.Get(h.ID)
	require.NoError(t, err)
	assert.Equal(t, []habit.Result{habit.Good}, got.Series)
}

func TestSave_CreatesDirectoryLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "habits")
	s := New(dir, testutil.NewFixedClock(testToday))

	_, err := os.Stat(dir)
	require.True(t, os.IsNotExist(err))

	saved(t, s, "Read books")

	_, err = os.Stat(dir)
	require.NoError(t, err)
}

func TestGet_NotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(42)
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, 42, nfErr.ID)
	assert.True(t, IsNotFound(err))
}

func TestGet_CorruptRecord(t *testing.T) {
	s := newTestStore(t)
	saved(t, s, "Read books")

	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "0"), []byte("garbage\n"), 0o644))

	_, err := s.Get(0)
	assert.True(t, IsCorruptRecord(err))
}

func TestGetByTitle(t *testing.T) {
	s := newTestStore(t)
	saved(t, s, "Read books")
	saved(t, s, "Run")

	h, err := s.GetByTitle("Read books")
	require.NoError(t, err)
	assert.Equal(t, 0, h.ID)
}

func TestGetByTitle_CaseInsensitive(t *testing.T) {
	s := newTestStore(t)
	saved(t, s, "Read Books")

	h, err := s.GetByTitle("read books")
	require.NoError(t, err)
	assert.Equal(t, "Read Books", h.Title)
}

func TestGetByTitle_NotFound(t *testing.T) {
	s := newTestStore(t)
	saved(t, s, "Read books")

	_, err := s.GetByTitle("Run")
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "Run", nfErr.Title)
}

func TestGetByTitle_Ambiguous(t *testing.T) {
	// "Read" and "read" collide under case-insensitive matching.
	s := newTestStore(t)
	saved(t, s, "Read")
	saved(t, s, "read")

	_, err := s.GetByTitle("READ")
	var ambErr *AmbiguousTitleError
	require.ErrorAs(t, err, &ambErr)
	assert.Equal(t, []int{0, 1}, ambErr.IDs)
	assert.True(t, IsAmbiguousTitle(err))
}

func TestRemove(t *testing.T) {
	s := newTestStore(t)
	h := saved(t, s, "Read books")

	require.NoError(t, s.Remove(h.ID))

	_, err := s.Get(h.ID)
	assert.True(t, IsNotFound(err))
}

func TestRemove_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.Remove(7)
	assert.True(t, IsNotFound(err))
}

func TestListIDs_MissingDirectoryIsEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"), nil)

	ids, err := s.ListIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListIDs_SortedAndFiltered(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 3; i++ {
		saved(t, s, "Habit")
	}

	// Stray entries that are not decimal record names are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(s.Dir(), "007"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(s.Dir(), "5"), 0o755))

	ids, err := s.ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ids)
}
