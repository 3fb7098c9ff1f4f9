package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/ersincine/habit-tracker/internal/habit"
)

// Store is a handle on one habit record directory.
//
// The directory does not need to exist yet; it is created on first Save.
// Store keeps no in-memory state: every lookup re-reads the directory, so
// two handles on the same directory observe each other's writes (within
// the single-process limits described in the package doc).
type Store struct {
	dir   string
	clock habit.Clock
}

// New returns a store rooted at dir. A nil clock defaults to the system
// clock; tests pass a fixed one.
func New(dir string, clock habit.Clock) *Store {
	if clock == nil {
		clock = habit.SystemClock{}
	}
	return &Store{dir: dir, clock: clock}
}

// Dir returns the record directory path.
func (s *Store) Dir() string {
	return s.dir
}

// Create constructs a new habit with the next free id and returns it
// WITHOUT persisting — call Save to write it. A zero start date defaults
// to today. Ids are allocated as max existing id + 1 and never reused, so
// removing a habit leaves a permanent gap.
//
// Duplicate titles are not rejected here; title uniqueness is only
// enforced at lookup time, by GetByTitle.
func (s *Store) Create(title, description string, start habit.Date, series []habit.Result) (*habit.Habit, error) {
	ids, err := s.ListIDs()
	if err != nil {
		return nil, err
	}

	id := 0
	if len(ids) > 0 {
		id = ids[len(ids)-1] + 1
	}

	if start.IsZero() {
		start = s.clock.Today()
	}

	return habit.New(id, title, description, start, series)
}

// Get loads and decodes the record for id.
func (s *Store) Get(id int) (*habit.Habit, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("read habit %d: %w", id, err)
	}
	return Decode(id, data)
}

// GetByTitle loads the habit whose title matches case-insensitively.
// Matching uses Unicode case folding, so it is exactly as strict as the
// record contents allow: zero matches is NotFoundError, more than one is
// AmbiguousTitleError.
func (s *Store) GetByTitle(title string) (*habit.Habit, error) {
	ids, err := s.ListIDs()
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	want := fold.String(title)

	var matches []*habit.Habit
	for _, id := range ids {
		h, err := s.Get(id)
		if err != nil {
			return nil, err
		}
		if fold.String(h.Title) == want {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{Title: title}
	case 1:
		return matches[0], nil
	default:
		matchIDs := make([]int, len(matches))
		for i, h := range matches {
			matchIDs[i] = h.ID
		}
		return nil, &AmbiguousTitleError{Title: title, IDs: matchIDs}
	}
}

// Save writes the habit's full record, replacing any existing record for
// that id. The record directory is created if needed. Saving unchanged
// state rewrites identical bytes.
func (s *Store) Save(h *habit.Habit) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}
	if err := os.WriteFile(s.path(h.ID), Encode(h), 0o644); err != nil {
		return fmt.Errorf("write habit %d: %w", h.ID, err)
	}
	return nil
}

// Remove permanently deletes the record for id. There is no tombstone and
// no undo; the id is simply never handed out again.
func (s *Store) Remove(id int) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{ID: id}
		}
		return fmt.Errorf("remove habit %d: %w", id, err)
	}
	return nil
}

// ListIDs enumerates all stored habit ids in ascending order. A missing
// record directory is an empty store, not an error. Entries whose names
// are not decimal ids are ignored.
func (s *Store) ListIDs() ([]int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list habits: %w", err)
	}

	var ids []int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, err := strconv.Atoi(entry.Name())
		if err != nil || id < 0 || strconv.Itoa(id) != entry.Name() {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *Store) path(id int) string {
	return filepath.Join(s.dir, strconv.Itoa(id))
}
