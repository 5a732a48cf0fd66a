package redisgen

import (
	"fmt"

	"github.com/forgelabs/seedforge/pkg/random"
)

var hashCities = []string{"北京", "上海", "广州", "深圳", "杭州", "成都", "武汉", "西安", "南京", "重庆"}

var hashCategories = []string{"电子产品", "服装鞋包", "食品饮料", "家居用品", "图书音像", "运动户外", "美妆个护", "母婴玩具"}

var hashBrands = []string{"Apple", "Samsung", "Nike", "Adidas", "Sony", "LG", "Huawei", "Xiaomi"}

var hashOrderStatuses = []string{"pending", "paid", "shipped", "delivered", "cancelled"}

var hashPaymentMethods = []string{"alipay", "wechat", "credit_card"}

var genders = []string{"male", "female", "other"}

var boolWords = []string{"true", "false"}

// hashes covers object storage: one hash per user, product and order, plus
// shopping carts where each field is a product id and the value a quantity.
func (g *generator) hashes() []Command {
	var out []Command

	for i := 1; i <= g.cfg.Users; i++ {
		createdAt := referenceTime.AddDate(0, 0, -g.rng.IntRange(1, 365))
		out = append(out, cmd(
			bare("HSET"), bare(fmt.Sprintf("user:detail:%d", i)),
			bare("id"), num(i),
			bare("username"), quoted(fmt.Sprintf("user%d", i)),
			bare("nickname"), quoted(fmt.Sprintf("昵称%d", i)),
			bare("city"), quoted(random.Pick(g.rng, hashCities)),
			bare("gender"), quoted(random.Pick(g.rng, genders)),
			bare("level"), num(g.rng.IntRange(1, 100)),
			bare("vip"), quoted(random.Pick(g.rng, boolWords)),
			bare("balance"), fixed2(g.rng.Float64Range(0, 10000)),
			bare("created_at"), quoted(createdAt.Format(hashTimeLayout)),
		))
	}

	for i := 1; i <= g.cfg.Products; i++ {
		out = append(out, cmd(
			bare("HSET"), bare(fmt.Sprintf("product:detail:%d", i)),
			bare("id"), num(i),
			bare("name"), quoted(fmt.Sprintf("商品名称%d", i)),
			bare("category"), quoted(random.Pick(g.rng, hashCategories)),
			bare("brand"), quoted(random.Pick(g.rng, hashBrands)),
			bare("price"), fixed2(g.rng.Float64Range(10, 9999)),
			bare("stock"), num(g.rng.IntRange(0, 10000)),
			bare("sales"), num(g.rng.IntRange(0, 50000)),
			bare("rating"), bare(fmt.Sprintf("%.1f", g.rng.Float64Range(3.5, 5.0))),
			bare("description"), quoted(fmt.Sprintf("这是商品%d的详细描述信息", i)),
		))
	}

	for i := 1; i <= g.cfg.Orders; i++ {
		createdAt := referenceTime.AddDate(0, 0, -g.rng.IntRange(1, 90))
		out = append(out, cmd(
			bare("HSET"), bare(fmt.Sprintf("order:%d", i)),
			bare("order_id"), num(i),
			bare("user_id"), num(g.rng.IntRange(1, g.cfg.Users)),
			bare("product_id"), num(g.rng.IntRange(1, g.cfg.Products)),
			bare("quantity"), num(g.rng.IntRange(1, 10)),
			bare("total_amount"), fixed2(g.rng.Float64Range(10, 9999)),
			bare("status"), quoted(random.Pick(g.rng, hashOrderStatuses)),
			bare("created_at"), quoted(createdAt.Format(hashTimeLayout)),
			bare("payment_method"), quoted(random.Pick(g.rng, hashPaymentMethods)),
		))
	}

	// Carts. Duplicate product fields within one command are fine; the
	// later value wins, same as issuing two HSETs.
	const cartCount = 500
	for i := 1; i <= cartCount; i++ {
		args := []Arg{bare("HSET"), bare(fmt.Sprintf("cart:user:%d", i))}
		numItems := g.rng.IntRange(1, 8)
		for j := 0; j < numItems; j++ {
			args = append(args,
				bare(fmt.Sprintf("product:%d", g.rng.IntRange(1, g.cfg.Products))),
				num(g.rng.IntRange(1, 5)),
			)
		}
		out = append(out, Command{Args: args})
	}

	return out
}
