package backend_test

import (
	"testing"

	"github.com/sveg/paintercore/backend"
	"github.com/sveg/paintercore/backend/software"
	"github.com/sveg/paintercore/document"
	"github.com/sveg/paintercore/id"
)

type fakeBackend struct{}

func (fakeBackend) Load(id.Id[id.Operation], int) error                           { return nil }
func (fakeBackend) Unload(id.Id[id.Operation], int) error                         { return nil }
func (fakeBackend) Compute(id.Id[id.Operation], []id.Id[id.Operation], []id.Id[id.Operation]) error {
	return nil
}

func fakeFactory(*document.Document, int, int) backend.Backend { return fakeBackend{} }

func TestRegisterAndGet(t *testing.T) {
	backend.Register("test-backend", fakeFactory)
	defer backend.Unregister("test-backend")

	f, ok := backend.Get("test-backend")
	if !ok {
		t.Fatal("Get(test-backend) = false, want true")
	}
	if f == nil {
		t.Fatal("Get(test-backend) returned a nil factory")
	}
}

func TestGetUnregisteredReturnsFalse(t *testing.T) {
	if _, ok := backend.Get("nonexistent"); ok {
		t.Error("Get(nonexistent) = true, want false")
	}
}

func TestAvailableIncludesSoftware(t *testing.T) {
	found := false
	for _, name := range backend.Available() {
		if name == backend.NameSoftware {
			found = true
		}
	}
	if !found {
		t.Error("Available() should include the software backend (registered via backend/software's init)")
	}
}

func TestIsRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.NameSoftware) {
		t.Error("software backend should be registered")
	}
	if backend.IsRegistered("nonexistent") {
		t.Error("nonexistent backend should not be registered")
	}
}

func TestDefaultPrefersSoftwareOverGPU(t *testing.T) {
	backend.Register(backend.NameGPU, fakeFactory)
	defer backend.Unregister(backend.NameGPU)

	f, err := backend.Default()
	if err != nil {
		t.Fatalf("Default(): %v", err)
	}
	if f == nil {
		t.Fatal("Default() returned a nil factory")
	}
	if _, ok := f(document.New(), 1, 1).(*software.Backend); !ok {
		t.Fatal("Default() did not pick the software factory while software and gpu are both registered")
	}
}

func TestMustDefaultDoesNotPanicWhenSoftwareRegistered(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	backend.MustDefault()
}

func TestUnregisterRemovesBackend(t *testing.T) {
	backend.Register("throwaway", fakeFactory)
	if !backend.IsRegistered("throwaway") {
		t.Fatal("throwaway should be registered after Register")
	}
	backend.Unregister("throwaway")
	if backend.IsRegistered("throwaway") {
		t.Error("throwaway should be unregistered after Unregister")
	}
}
