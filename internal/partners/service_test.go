package partners

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/goliatone/go-sitecms/internal/content"
	"github.com/goliatone/go-sitecms/internal/domain"
	"github.com/google/uuid"
)

type fixture struct {
	repo    *MemoryPartnerRepository
	locales content.Service
	svc     Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	locales := content.NewService(content.NewMemoryLocaleRepository())
	err := content.Seed(ctx, locales, []content.SeedLocale{
		{Code: "en", Display: "English", IsDefault: true},
		{Code: "az", Display: "Azərbaycan"},
	})
	if err != nil {
		t.Fatalf("seed locales: %v", err)
	}

	repo := NewMemoryPartnerRepository()
	svc := NewService(repo, locales)
	return &fixture{repo: repo, locales: locales, svc: svc}
}

func (f *fixture) seedPartner(t *testing.T, name, category string, order int) *Partner {
	t.Helper()
	description := "About " + name
	partner, err := f.svc.Save(context.Background(), SavePartnerRequest{
		Name:        name,
		Category:    category,
		Status:      domain.StatusPublished,
		SortOrder:   order,
		Locale:      "en",
		Description: &description,
	})
	if err != nil {
		t.Fatalf("Save(%q): %v", name, err)
	}
	return partner
}

func TestListPublishedOrdering(t *testing.T) {
	f := newFixture(t)
	f.seedPartner(t, "Zeta Clinic", "clinic", 1)
	f.seedPartner(t, "Alpha Clinic", "clinic", 1)
	f.seedPartner(t, "First Lab", "lab", 0)

	views, err := f.svc.ListPublished(context.Background(), "en")
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("views = %d entries", len(views))
	}
	got := []string{views[0].Name, views[1].Name, views[2].Name}
	want := []string{"First Lab", "Alpha Clinic", "Zeta Clinic"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestListPublishedExcludesDrafts(t *testing.T) {
	f := newFixture(t)
	f.seedPartner(t, "Visible", "clinic", 0)
	if _, err := f.svc.Save(context.Background(), SavePartnerRequest{
		Name:     "Hidden",
		Category: "clinic",
		Status:   domain.StatusDraft,
	}); err != nil {
		t.Fatalf("Save(draft): %v", err)
	}

	views, err := f.svc.ListPublished(context.Background(), "en")
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(views) != 1 || views[0].Name != "Visible" {
		t.Fatalf("views = %+v", views)
	}
}

func TestDescriptionFallsBackToDefaultLocale(t *testing.T) {
	f := newFixture(t)
	f.seedPartner(t, "Fallback Clinic", "clinic", 0)

	views, err := f.svc.ListPublished(context.Background(), "az")
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if len(views) != 1 || views[0].Description == nil {
		t.Fatalf("views = %+v", views)
	}
	if *views[0].Description != "About Fallback Clinic" {
		t.Errorf("description = %q", *views[0].Description)
	}
}

func TestSaveIsIdempotentByName(t *testing.T) {
	f := newFixture(t)
	first := f.seedPartner(t, "Stable Clinic", "clinic", 0)
	second := f.seedPartner(t, "Stable Clinic", "lab", 3)

	if first.ID != second.ID {
		t.Fatalf("ids differ: %s vs %s", first.ID, second.ID)
	}
	stored, err := f.svc.Get(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Category != "lab" || stored.SortOrder != 3 {
		t.Errorf("stored = %+v", stored)
	}
}

func TestSaveValidation(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Save(context.Background(), SavePartnerRequest{Category: "clinic"}); !errors.Is(err, ErrNameRequired) {
		t.Errorf("missing name error = %v", err)
	}
	if _, err := f.svc.Save(context.Background(), SavePartnerRequest{Name: "x"}); !errors.Is(err, ErrCategoryRequired) {
		t.Errorf("missing category error = %v", err)
	}
}

func TestDelete(t *testing.T) {
	f := newFixture(t)
	partner := f.seedPartner(t, "Short Lived", "clinic", 0)

	if err := f.svc.Delete(context.Background(), partner.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	_, err := f.svc.Get(context.Background(), partner.ID)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestReorder(t *testing.T) {
	f := newFixture(t)
	a := f.seedPartner(t, "A", "clinic", 0)
	b := f.seedPartner(t, "B", "clinic", 1)

	err := f.svc.Reorder(context.Background(), []SortOrderUpdate{
		{ID: a.ID, SortOrder: 1},
		{ID: b.ID, SortOrder: 0},
	})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}

	views, err := f.svc.ListPublished(context.Background(), "en")
	if err != nil {
		t.Fatalf("ListPublished() error = %v", err)
	}
	if views[0].Name != "B" || views[1].Name != "A" {
		t.Errorf("order after reorder = %q, %q", views[0].Name, views[1].Name)
	}
}

func TestReorderUnknownPartnerLeavesOrderIntact(t *testing.T) {
	f := newFixture(t)
	a := f.seedPartner(t, "A", "clinic", 0)

	err := f.svc.Reorder(context.Background(), []SortOrderUpdate{
		{ID: a.ID, SortOrder: 5},
		{ID: uuid.New(), SortOrder: 0},
	})
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}

	stored, err := f.svc.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.SortOrder != 0 {
		t.Errorf("sort order = %d, want untouched 0", stored.SortOrder)
	}
}

func TestReorderRejectsEmpty(t *testing.T) {
	f := newFixture(t)
	if err := f.svc.Reorder(context.Background(), nil); !errors.Is(err, ErrEmptyReorder) {
		t.Errorf("error = %v, want ErrEmptyReorder", err)
	}
}

// Concurrent readers must observe either the old ordering or the new one
// whole. Each reorder swaps a permutation whose sort orders sum to the same
// value, so a partial application shows up as a duplicate position.
func TestReorderAtomicUnderConcurrentReads(t *testing.T) {
	f := newFixture(t)
	const partnerCount = 4
	ids := make([]uuid.UUID, partnerCount)
	for i := 0; i < partnerCount; i++ {
		ids[i] = f.seedPartner(t, fmt.Sprintf("Partner %d", i), "clinic", i).ID
	}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	readErrs := make(chan error, 1)

	for reader := 0; reader < 4; reader++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				all, err := f.svc.ListAll(context.Background())
				if err != nil {
					select {
					case readErrs <- err:
					default:
					}
					return
				}
				seen := map[int]bool{}
				for _, partner := range all {
					if seen[partner.SortOrder] {
						select {
						case readErrs <- fmt.Errorf("duplicate sort order %d", partner.SortOrder):
						default:
						}
						return
					}
					seen[partner.SortOrder] = true
				}
			}
		}()
	}

	for round := 0; round < 50; round++ {
		updates := make([]SortOrderUpdate, partnerCount)
		for i, id := range ids {
			updates[i] = SortOrderUpdate{ID: id, SortOrder: (i + round) % partnerCount}
		}
		if err := f.svc.Reorder(context.Background(), updates); err != nil {
			t.Fatalf("Reorder round %d: %v", round, err)
		}
	}
	close(stop)
	wg.Wait()

	select {
	case err := <-readErrs:
		t.Fatalf("concurrent reader: %v", err)
	default:
	}
}
