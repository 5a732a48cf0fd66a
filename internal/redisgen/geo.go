package redisgen

import (
	"fmt"

	"github.com/forgelabs/seedforge/pkg/random"
)

type cityCoord struct {
	name string
	lng  float64
	lat  float64
}

var cityCoords = []cityCoord{
	{"北京", 116.404, 39.915},
	{"上海", 121.472, 31.231},
	{"广州", 113.264, 23.129},
	{"深圳", 114.057, 22.543},
	{"杭州", 120.153, 30.287},
	{"成都", 104.066, 30.572},
	{"武汉", 114.305, 30.593},
	{"西安", 108.940, 34.341},
	{"南京", 118.796, 32.059},
	{"重庆", 106.551, 29.563},
}

// geo covers location indexes: stores scattered within about 50km of a
// major city, couriers within about 30km.
func (g *generator) geo() []Command {
	var out []Command

	for i := 1; i <= g.cfg.Locations; i++ {
		city := random.Pick(g.rng, cityCoords)
		out = append(out, cmd(
			bare("GEOADD"), bare("stores"),
			fixed6(city.lng+g.rng.Float64Range(-0.5, 0.5)),
			fixed6(city.lat+g.rng.Float64Range(-0.5, 0.5)),
			quoted(fmt.Sprintf("store:%d", i)),
		))
	}

	const courierCount = 200
	for i := 1; i <= courierCount; i++ {
		city := random.Pick(g.rng, cityCoords)
		out = append(out, cmd(
			bare("GEOADD"), bare("couriers"),
			fixed6(city.lng+g.rng.Float64Range(-0.3, 0.3)),
			fixed6(city.lat+g.rng.Float64Range(-0.3, 0.3)),
			quoted(fmt.Sprintf("courier:%d", i)),
		))
	}

	return out
}
