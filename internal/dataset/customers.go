package dataset

import (
	"fmt"
	"time"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

var (
	familyNamesZH = []string{"王", "李", "张", "刘", "陈", "杨", "黄", "赵"}
	givenNamesZH  = []string{"伟", "芳", "娜", "敏", "静", "丽", "强", "磊"}
	familyNamesES = []string{"García", "Martínez", "Rodríguez", "Fernández", "López"}
	givenNamesES  = []string{"María", "José", "Luis", "Ana", "Lucía"}
	familyNamesEN = []string{"Johnson", "Brown", "Smith", "Clark", "Davis", "Moore"}
	givenNamesEN  = []string{"Alice", "Bruno", "Carla", "Daniel", "Eva", "Frank"}
)

// GenerateCustomers produces the customer table. Status cycles by id,
// created timestamps advance one minute per customer, and loyalty points
// follow (id*7) mod 1500.
func GenerateCustomers(cfg config.DatasetConfig, rng *random.Source) []models.Customer {
	statuses := enums.CustomerStatuses()
	base := dayStart(2023, time.January, 1, 8, 0)

	customers := make([]models.Customer, 0, cfg.Customers)
	for cid := 1; cid <= cfg.Customers; cid++ {
		locale := random.Pick(rng, enums.CustomerLocales())
		customers = append(customers, models.Customer{
			ID:            cid,
			FullName:      customerName(rng, locale),
			Email:         fmt.Sprintf("customer%d@example.com", cid),
			Phone:         fmt.Sprintf("+1-202-555-%04d", cid),
			Locale:        locale,
			Status:        statuses[cid%len(statuses)],
			CreatedAt:     base.Add(time.Duration(cid) * time.Minute),
			LoyaltyPoints: (cid * 7) % 1500,
		})
	}
	return customers
}

func customerName(rng *random.Source, locale enums.Locale) string {
	switch locale {
	case enums.LocaleZhCN:
		return random.Pick(rng, familyNamesZH) + random.Pick(rng, givenNamesZH)
	case enums.LocaleEsES:
		return random.Pick(rng, givenNamesES) + " " + random.Pick(rng, familyNamesES)
	default:
		return random.Pick(rng, givenNamesEN) + " " + random.Pick(rng, familyNamesEN)
	}
}
