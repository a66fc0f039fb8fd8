package vocab

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ppiankov/contextboard/internal/model"
)

// ErrNotTemporary is returned when promoting a card that is already persisted
var ErrNotTemporary = errors.New("only temporary cards can be promoted")

// FileStore is a vocabulary backed by a single YAML or JSON file
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store for path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Promote converts a temporary card into a permanent one: temporary fields
// are stripped, the next free positive id is assigned and the file is saved
func (s *FileStore) Promote(card model.Card) (model.Card, error) {
	if !card.Temporary {
		return model.Card{}, ErrNotTemporary
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cards, err := s.load()
	if err != nil {
		return model.Card{}, err
	}

	promoted := card.Promote()
	promoted.ID = nextID(cards)
	cards = append(cards, promoted)

	if err := s.save(cards); err != nil {
		return model.Card{}, err
	}
	return promoted, nil
}

func (s *FileStore) load() ([]model.Card, error) {
	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return LoadFile(s.path)
}

// save writes through a temp file and rename so readers never see a partial file
func (s *FileStore) save(cards []model.Card) error {
	data, err := marshal(s.path, cards)
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create vocabulary dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".vocab-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write vocabulary: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close vocabulary: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace vocabulary: %w", err)
	}
	return nil
}

func nextID(cards []model.Card) int64 {
	var highest int64
	for _, c := range cards {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest + 1
}
