package registry

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yafb/internal/core"
)

type nopStore struct{ path string }

func (s *nopStore) Load() ([]core.ScoreEntry, error) { return nil, nil }
func (s *nopStore) Save(_ []core.ScoreEntry) error   { return nil }
func (s *nopStore) Close() error                     { return nil }

func TestRegisterAndOpen(t *testing.T) {
	Register("test-nop", "/tmp/default.txt", func(path string, _ *log.Logger) (Store, error) {
		return &nopStore{path: path}, nil
	})

	if !Exists("test-nop") {
		t.Fatal("registered store should exist")
	}

	s, err := Open("test-nop", "", nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if got := s.(*nopStore).path; got != "/tmp/default.txt" {
		t.Errorf("empty path should use the default, got %q", got)
	}

	s, err = Open("test-nop", "/elsewhere", nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if got := s.(*nopStore).path; got != "/elsewhere" {
		t.Errorf("explicit path should win, got %q", got)
	}

	found := false
	for _, b := range List() {
		if b.Name == "test-nop" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered store")
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("does-not-exist", "", nil); err == nil {
		t.Error("Open() of an unknown store should fail")
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	f := func(path string, _ *log.Logger) (Store, error) { return &nopStore{}, nil }
	Register("test-dup", "", f)

	defer func() {
		if recover() == nil {
			t.Error("registering the same name twice should panic")
		}
	}()
	Register("test-dup", "", f)
}
