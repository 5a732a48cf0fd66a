package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

type cityCountry struct {
	city    string
	country string
}

var addressCities = []cityCountry{
	{"New York", "USA"},
	{"San Francisco", "USA"},
	{"北京", "中国"},
	{"上海", "中国"},
	{"Madrid", "España"},
	{"Barcelona", "España"},
	{"Toronto", "Canada"},
	{"Tokyo", "日本"},
}

const (
	baseLatitude  = 40.0
	baseLongitude = -74.0
)

// GenerateAddresses produces the address table. Owning customers are
// assigned by modular cycling so every address has a valid owner and the
// distribution across customers is even.
func GenerateAddresses(cfg config.DatasetConfig, rng *random.Source) []models.Address {
	addresses := make([]models.Address, 0, cfg.Addresses)
	for aid := 1; aid <= cfg.Addresses; aid++ {
		addrType := random.Pick(rng, enums.AddressTypes())
		place := random.Pick(rng, addressCities)
		addresses = append(addresses, models.Address{
			ID:         aid,
			CustomerID: ((aid - 1) % cfg.Customers) + 1,
			Type:       addrType,
			Line1:      fmt.Sprintf("%d %s Street", rng.IntRange(10, 9999), capitalize(string(addrType))),
			Line2:      fmt.Sprintf("Apt %d", rng.IntRange(1, 500)),
			City:       place.city,
			Region:     fmt.Sprintf("Region-%d", rng.IntRange(1, 50)),
			PostalCode: fmt.Sprintf("%d", rng.IntRange(10000, 99999)),
			Country:    place.country,
			Latitude:   round6(baseLatitude + rng.Float64Range(-5, 5)),
			Longitude:  round6(baseLongitude + rng.Float64Range(-10, 10)),
		})
	}
	return addresses
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
