package catalog

import (
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	listings := Seed()

	t.Run("zero criteria returns everything", func(t *testing.T) {
		got := Filter(listings, Criteria{})
		if len(got) != len(listings) {
			t.Errorf("expected %d listings, got %d", len(listings), len(got))
		}
	})

	t.Run("query matches title case-insensitively", func(t *testing.T) {
		got := Filter(listings, Criteria{Query: "LOFT"})
		if len(got) == 0 {
			t.Fatal("expected loft matches")
		}
		for _, l := range got {
			if !strings.Contains(strings.ToLower(l.Title), "loft") {
				t.Errorf("listing %s does not match query: %q", l.ID, l.Title)
			}
		}
	})

	t.Run("query matches city", func(t *testing.T) {
		got := Filter(listings, Criteria{Query: "portland"})
		if len(got) != 2 {
			t.Errorf("expected 2 Portland listings, got %d", len(got))
		}
	})

	t.Run("price bounds", func(t *testing.T) {
		got := Filter(listings, Criteria{MinPrice: 60000000, MaxPrice: 80000000})
		for _, l := range got {
			if l.Price < 60000000 || l.Price > 80000000 {
				t.Errorf("listing %s price %d outside bounds", l.ID, l.Price)
			}
		}
		if len(got) == 0 {
			t.Error("expected listings in the 600k-800k band")
		}
	})

	t.Run("min beds", func(t *testing.T) {
		got := Filter(listings, Criteria{MinBeds: 4})
		for _, l := range got {
			if l.Beds < 4 {
				t.Errorf("listing %s has %d beds", l.ID, l.Beds)
			}
		}
	})

	t.Run("kind", func(t *testing.T) {
		got := Filter(listings, Criteria{Kind: KindApartment})
		for _, l := range got {
			if l.Kind != KindApartment {
				t.Errorf("listing %s has kind %q", l.ID, l.Kind)
			}
		}
	})

	t.Run("nft only", func(t *testing.T) {
		got := Filter(listings, Criteria{NFTOnly: true})
		if len(got) != 3 {
			t.Errorf("expected 3 NFT-backed listings, got %d", len(got))
		}
		for _, l := range got {
			if !l.IsNFT() {
				t.Errorf("listing %s is not NFT-backed", l.ID)
			}
		}
	})

	t.Run("joint criteria", func(t *testing.T) {
		got := Filter(listings, Criteria{Query: "seattle", Kind: KindApartment, MinBeds: 3})
		if len(got) != 1 || got[0].ID != "lst-007" {
			t.Errorf("expected only lst-007, got %v", got)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Filter(listings, Criteria{Kind: KindHouse})
		for i := 1; i < len(got); i++ {
			if got[i-1].ID >= got[i].ID {
				t.Errorf("order not preserved: %s before %s", got[i-1].ID, got[i].ID)
			}
		}
	})
}

func TestFavoritesToggle(t *testing.T) {
	f := Favorites{}

	if f.Has("lst-001") {
		t.Error("fresh set should be empty")
	}
	if on := f.Toggle("lst-001"); !on {
		t.Error("first toggle should favorite")
	}
	if !f.Has("lst-001") {
		t.Error("membership missing after toggle")
	}
	if on := f.Toggle("lst-001"); on {
		t.Error("second toggle should unfavorite")
	}
	if f.Has("lst-001") || len(f) != 0 {
		t.Error("toggle is not an involution")
	}
}

func TestFavoritesIDsFollowCatalogOrder(t *testing.T) {
	listings := Seed()
	f := Favorites{}
	f.Toggle("lst-005")
	f.Toggle("lst-002")

	ids := f.IDs(listings)
	if len(ids) != 2 || ids[0] != "lst-002" || ids[1] != "lst-005" {
		t.Errorf("IDs() = %v, want catalog order", ids)
	}
}

func TestByID(t *testing.T) {
	listings := Seed()

	l, ok := ByID(listings, "lst-003")
	if !ok || l.City != "Denver" {
		t.Errorf("ByID(lst-003) = %+v, %v", l, ok)
	}

	if _, ok := ByID(listings, "lst-999"); ok {
		t.Error("expected miss for unknown ID")
	}
}

func TestDeedURI(t *testing.T) {
	listings := Seed()
	l, _ := ByID(listings, "lst-002")
	uri := l.Deed.URI()
	if !strings.HasPrefix(uri, "ethereum:0x") {
		t.Errorf("deed URI should start with ethereum:0x, got %q", uri)
	}
	if !strings.Contains(uri, "uint256=1042") {
		t.Errorf("deed URI should carry the token id, got %q", uri)
	}
}
