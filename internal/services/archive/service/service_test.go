package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"draftforge/internal/platform/clock"
	"draftforge/internal/services/archive/domain"
	"draftforge/internal/services/archive/service"
)

type fakeRepo struct {
	allocated time.Time
	allocErr  error
	writeErr  error

	gotSpec []byte
	gotCode string
	gotExt  string
}

func (f *fakeRepo) Allocate(date time.Time) (domain.Slot, error) {
	f.allocated = date
	if f.allocErr != nil {
		return domain.Slot{}, f.allocErr
	}
	name := date.Format("20060102") + "-01"
	return domain.Slot{FolderName: name, FolderPath: "/tmp/" + name, FileBase: name}, nil
}

func (f *fakeRepo) WritePair(_ domain.Slot, specJSON []byte, code, ext string) error {
	f.gotSpec = specJSON
	f.gotCode = code
	f.gotExt = ext
	return f.writeErr
}

func TestWriteUsesClockDate(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, 5, 26, 23, 59, 0, 0, time.UTC)
	repo := &fakeRepo{}
	svc := service.New(repo, service.Config{Ext: "ts"}, clock.NewFake(day))

	slot, err := svc.Write(context.Background(), domain.Pair{SpecJSON: []byte("{}"), Code: "x"})
	if err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !repo.allocated.Equal(day) {
		t.Fatalf("allocation must use the injected clock, got %v", repo.allocated)
	}
	if slot.FolderName != "20250526-01" {
		t.Fatalf("unexpected slot %q", slot.FolderName)
	}
	if repo.gotExt != "ts" || repo.gotCode != "x" || string(repo.gotSpec) != "{}" {
		t.Fatalf("pair not passed through: %q %q %q", repo.gotSpec, repo.gotCode, repo.gotExt)
	}
}

func TestWriteDefaultsExtension(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	svc := service.New(repo, service.Config{}, clock.NewFake(time.Unix(0, 0)))
	if _, err := svc.Write(context.Background(), domain.Pair{}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if repo.gotExt != "ts" {
		t.Fatalf("expected default ts extension got %q", repo.gotExt)
	}
}

func TestWritePropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	repo := &fakeRepo{writeErr: boom}
	svc := service.New(repo, service.Config{}, nil)
	if _, err := svc.Write(context.Background(), domain.Pair{}); !errors.Is(err, boom) {
		t.Fatalf("expected write error to propagate, got %v", err)
	}

	repo = &fakeRepo{allocErr: boom}
	svc = service.New(repo, service.Config{}, nil)
	if _, err := svc.Write(context.Background(), domain.Pair{}); !errors.Is(err, boom) {
		t.Fatalf("expected allocate error to propagate, got %v", err)
	}
}
