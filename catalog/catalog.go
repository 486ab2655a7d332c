package catalog

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Kind classifies a listing
type Kind string

const (
	KindAny       Kind = ""
	KindHouse     Kind = "house"
	KindApartment Kind = "apartment"
	KindLoft      Kind = "loft"
)

// Deed identifies the on-chain token backing an NFT listing
type Deed struct {
	Contract common.Address
	TokenID  uint64
}

// URI returns the EIP-681 URI for the deed token, suitable for QR display
func (d Deed) URI() string {
	return fmt.Sprintf("ethereum:%s/transferFrom?uint256=%d", strings.ToLower(d.Contract.Hex()), d.TokenID)
}

// Listing is a single property record
type Listing struct {
	ID      string
	Title   string
	City    string
	Price   int64 // USD cents
	Beds    int
	Baths   int
	AreaSqm int
	Kind    Kind
	Deed    *Deed // non-nil for NFT-backed listings
}

// IsNFT reports whether the listing is backed by an on-chain deed
func (l Listing) IsNFT() bool {
	return l.Deed != nil
}

// Criteria holds the listing filter settings
type Criteria struct {
	Query    string // matches title or city, case-insensitive
	MinPrice int64  // USD cents, 0 = no minimum
	MaxPrice int64  // USD cents, 0 = no maximum
	MinBeds  int
	Kind     Kind
	NFTOnly  bool
}

// IsZero reports whether no filter is active
func (c Criteria) IsZero() bool {
	return c == Criteria{}
}

// Matches reports whether a single listing satisfies the criteria
func (c Criteria) Matches(l Listing) bool {
	if c.Query != "" {
		q := strings.ToLower(c.Query)
		if !strings.Contains(strings.ToLower(l.Title), q) &&
			!strings.Contains(strings.ToLower(l.City), q) {
			return false
		}
	}
	if c.MinPrice > 0 && l.Price < c.MinPrice {
		return false
	}
	if c.MaxPrice > 0 && l.Price > c.MaxPrice {
		return false
	}
	if l.Beds < c.MinBeds {
		return false
	}
	if c.Kind != KindAny && l.Kind != c.Kind {
		return false
	}
	if c.NFTOnly && !l.IsNFT() {
		return false
	}
	return true
}

// Filter returns the listings matching the criteria, preserving order
func Filter(listings []Listing, c Criteria) []Listing {
	if c.IsZero() {
		return listings
	}
	var out []Listing
	for _, l := range listings {
		if c.Matches(l) {
			out = append(out, l)
		}
	}
	return out
}

// Favorites is a session-scoped set of listing IDs
type Favorites map[string]bool

// Toggle flips membership for an ID and reports the new state
func (f Favorites) Toggle(id string) bool {
	if f[id] {
		delete(f, id)
		return false
	}
	f[id] = true
	return true
}

// Has reports membership
func (f Favorites) Has(id string) bool {
	return f[id]
}

// IDs returns the favorited IDs in the order they appear in listings
func (f Favorites) IDs(listings []Listing) []string {
	var out []string
	for _, l := range listings {
		if f[l.ID] {
			out = append(out, l.ID)
		}
	}
	return out
}

// SavedSearch is a named filter, kept for the session only
type SavedSearch struct {
	Name     string
	Criteria Criteria
}

// ByID returns the listing with the given ID, or false
func ByID(listings []Listing, id string) (Listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}
