package catalog

import "github.com/ethereum/go-ethereum/common"

// Seed returns the built-in mock catalog. IDs are stable so favorites and
// saved searches stay valid across view changes within a session.
func Seed() []Listing {
	deedContract := common.HexToAddress("0x2953399124F0cBB46d2CbACD8A89cF0599974963")

	return []Listing{
		{
			ID:      "lst-001",
			Title:   "Sunlit Craftsman Bungalow",
			City:    "Portland",
			Price:   78500000,
			Beds:    3,
			Baths:   2,
			AreaSqm: 142,
			Kind:    KindHouse,
		},
		{
			ID:      "lst-002",
			Title:   "Riverside Loft with Skyline View",
			City:    "Austin",
			Price:   62000000,
			Beds:    1,
			Baths:   1,
			AreaSqm: 88,
			Kind:    KindLoft,
			Deed:    &Deed{Contract: deedContract, TokenID: 1042},
		},
		{
			ID:      "lst-003",
			Title:   "Mid-Century Modern Ranch",
			City:    "Denver",
			Price:   94000000,
			Beds:    4,
			Baths:   3,
			AreaSqm: 210,
			Kind:    KindHouse,
		},
		{
			ID:      "lst-004",
			Title:   "Downtown Corner Apartment",
			City:    "Seattle",
			Price:   54500000,
			Beds:    2,
			Baths:   1,
			AreaSqm: 76,
			Kind:    KindApartment,
		},
		{
			ID:      "lst-005",
			Title:   "Converted Warehouse Loft",
			City:    "Portland",
			Price:   71000000,
			Beds:    2,
			Baths:   2,
			AreaSqm: 130,
			Kind:    KindLoft,
			Deed:    &Deed{Contract: deedContract, TokenID: 1717},
		},
		{
			ID:      "lst-006",
			Title:   "Garden Cottage near the Park",
			City:    "Austin",
			Price:   48900000,
			Beds:    2,
			Baths:   1,
			AreaSqm: 95,
			Kind:    KindHouse,
		},
		{
			ID:      "lst-007",
			Title:   "Glass Tower Penthouse",
			City:    "Seattle",
			Price:   189000000,
			Beds:    3,
			Baths:   3,
			AreaSqm: 245,
			Kind:    KindApartment,
			Deed:    &Deed{Contract: deedContract, TokenID: 2088},
		},
		{
			ID:      "lst-008",
			Title:   "Brick Rowhouse with Roof Deck",
			City:    "Denver",
			Price:   67300000,
			Beds:    3,
			Baths:   2,
			AreaSqm: 155,
			Kind:    KindHouse,
		},
	}
}
