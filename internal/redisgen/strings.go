package redisgen

import (
	"fmt"
	"strings"

	"github.com/forgelabs/seedforge/pkg/random"
)

var userNames = []string{"张伟", "李娜", "王芳", "刘强", "陈静", "杨磊", "赵敏", "孙丽", "周杰", "吴勇"}

var userStatuses = []string{"active", "inactive", "banned"}

// strings covers plain key-value pairs: per-user and per-product scalar
// fields, expiring session tokens, global counters, and oversized values
// for storage stress (10KB JSON documents, 100KB blobs).
func (g *generator) strings() []Command {
	var out []Command

	for i := 1; i <= g.cfg.Users; i++ {
		out = append(out,
			cmd(bare("SET"), bare(fmt.Sprintf("user:%d:name", i)), quoted(fmt.Sprintf("%s%d", random.Pick(g.rng, userNames), i))),
			cmd(bare("SET"), bare(fmt.Sprintf("user:%d:age", i)), num(g.rng.IntRange(18, 65))),
			cmd(bare("SET"), bare(fmt.Sprintf("user:%d:email", i)), quoted(fmt.Sprintf("user%d@example.com", i))),
			cmd(bare("SET"), bare(fmt.Sprintf("user:%d:phone", i)), quoted(fmt.Sprintf("+86-%d", g.rng.Int64Range(13000000000, 18999999999)))),
			cmd(bare("SET"), bare(fmt.Sprintf("user:%d:status", i)), quoted(random.Pick(g.rng, userStatuses))),
		)
	}

	for i := 1; i <= g.cfg.Products; i++ {
		out = append(out,
			cmd(bare("SET"), bare(fmt.Sprintf("product:%d:price", i)), fixed2(g.rng.Float64Range(10, 9999))),
			cmd(bare("SET"), bare(fmt.Sprintf("product:%d:stock", i)), num(g.rng.IntRange(0, 10000))),
			cmd(bare("SET"), bare(fmt.Sprintf("product:%d:sku", i)), quoted(fmt.Sprintf("SKU%06d", i))),
		)
	}

	// Session tokens expire after an hour.
	for i := 1; i <= g.cfg.Sessions; i++ {
		token := fmt.Sprintf("token_%d_%d", g.rng.IntRange(100000, 999999), i)
		out = append(out, cmd(
			bare("SETEX"), bare("session:"+token), num(3600),
			quoted(fmt.Sprintf("user_id:%d", g.rng.IntRange(1, g.cfg.Users))),
		))
	}

	out = append(out,
		cmd(bare("SET"), bare("counter:page_views"), num(g.rng.IntRange(1000000, 9999999))),
		cmd(bare("SET"), bare("counter:total_users"), num(g.cfg.Users)),
		cmd(bare("SET"), bare("counter:total_orders"), num(g.cfg.Orders)),
		cmd(bare("SET"), bare("counter:daily_sales"), num(g.rng.IntRange(10000, 99999))),
	)

	for i := 1; i <= 50; i++ {
		out = append(out, cmd(bare("SET"), bare(fmt.Sprintf("document:large:%d", i)), squoted(largeDocument(i))))
	}

	hugeBlob := strings.Repeat("A", 102400)
	for i := 1; i <= 10; i++ {
		out = append(out, cmd(bare("SET"), bare(fmt.Sprintf("blob:huge:%d", i)), quoted(hugeBlob)))
	}

	return out
}

// largeDocument builds a roughly 10KB JSON payload by hand so the repeated
// filler stays byte-stable across runs.
func largeDocument(id int) string {
	var b strings.Builder
	b.WriteString("{")
	fmt.Fprintf(&b, `"id":%d,`, id)
	fmt.Fprintf(&b, `"title":"大型JSON文档测试 %d",`, id)
	b.WriteString(`"description":"`)
	b.WriteString(strings.Repeat("这是一个非常长的描述信息，用于测试大 value 的存储和读取性能。", 50))
	b.WriteString(`",`)
	b.WriteString(`"tags":["tag1","tag2","tag3","tag4","tag5"],`)
	b.WriteString(`"metadata":{"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-12-06T00:00:00Z"},`)
	b.WriteString(`"content":"`)
	b.WriteString(strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 100))
	b.WriteString(`"}`)
	return b.String()
}
