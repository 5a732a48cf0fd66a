package redisgen

import (
	"strings"
	"testing"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/random"
)

func testKVConfig() config.KVConfig {
	return config.KVConfig{
		Seed:      42,
		Users:     5000,
		Products:  2000,
		Orders:    3000,
		Messages:  1000,
		Sessions:  500,
		Locations: 100,
	}
}

func generateAll(t *testing.T) []Command {
	t.Helper()
	cfg := testKVConfig()
	return Generate(cfg, random.New(cfg.Seed))
}

func TestRenderQuoting(t *testing.T) {
	c := cmd(bare("SET"), bare("user:1:name"), quoted("张伟1"))
	if got := c.Render(); got != `SET user:1:name "张伟1"` {
		t.Fatalf("unexpected render %q", got)
	}

	c = cmd(bare("LPUSH"), bare("queue:messages"), quoted(`{"id":1,"type":"email"}`))
	if got := c.Render(); got != `LPUSH queue:messages "{\"id\":1,\"type\":\"email\"}"` {
		t.Fatalf("unexpected render %q", got)
	}

	c = cmd(bare("SET"), bare("document:large:1"), squoted(`{"id":1}`))
	if got := c.Render(); got != `SET document:large:1 '{"id":1}'` {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestArgvKeepsRawValues(t *testing.T) {
	c := cmd(bare("SET"), bare("user:1:name"), quoted("张伟1"))
	argv := c.Argv()
	if len(argv) != 3 {
		t.Fatalf("expected 3 argv entries, got %d", len(argv))
	}
	if argv[2] != "张伟1" {
		t.Fatalf("expected unquoted raw value, got %v", argv[2])
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := generateAll(t)
	second := generateAll(t)

	if len(first) != len(second) {
		t.Fatalf("command counts diverged: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Render() != second[i].Render() {
			t.Fatalf("command %d diverged:\n%s\n%s", i, first[i].Render(), second[i].Render())
		}
	}
}

func TestGenerateSectionOrder(t *testing.T) {
	commands := generateAll(t)

	if got := commands[0].Render(); !strings.HasPrefix(got, `SET user:1:name "`) {
		t.Fatalf("expected stream to open with user name keys, got %q", got)
	}
	last := commands[len(commands)-1].Render()
	if !strings.HasPrefix(last, "XADD stream:logs * ") {
		t.Fatalf("expected stream to close with log events, got %q", last)
	}

	// Every section must contribute; probe one verb per section.
	wantPrefixes := []string{
		"SETEX session:token_",
		"HSET user:detail:1 ",
		"LPUSH queue:messages ",
		"SADD product:1:tags ",
		"ZADD leaderboard:points ",
		"SETBIT user:signin:",
		"PFADD uv:daily:",
		"GEOADD stores ",
		"XADD stream:orders * ",
	}
	for _, prefix := range wantPrefixes {
		found := false
		for _, c := range commands {
			if strings.HasPrefix(c.Render(), prefix) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no command with prefix %q", prefix)
		}
	}
}

func TestStringSectionCounts(t *testing.T) {
	cfg := testKVConfig()
	g := &generator{cfg: cfg, rng: random.New(cfg.Seed)}
	commands := g.strings()

	want := cfg.Users*5 + cfg.Products*3 + cfg.Sessions + 4 + 50 + 10
	if len(commands) != want {
		t.Fatalf("expected %d string commands, got %d", want, len(commands))
	}
}

func TestLargeDocumentSize(t *testing.T) {
	doc := largeDocument(1)
	if len(doc) < 8000 {
		t.Fatalf("expected roughly 10KB document, got %d bytes", len(doc))
	}
	if !strings.HasPrefix(doc, `{"id":1,`) || !strings.HasSuffix(doc, `"}`) {
		t.Fatalf("document shape broken: %q...", doc[:40])
	}
	if strings.Contains(doc, "'") {
		t.Fatal("single quotes inside the document would break rendering")
	}
}

func TestSetMembersAreDistinct(t *testing.T) {
	cfg := testKVConfig()
	g := &generator{cfg: cfg, rng: random.New(cfg.Seed)}

	for _, c := range g.sets() {
		key := c.Args[1].value
		seen := make(map[string]bool, len(c.Args)-2)
		for _, arg := range c.Args[2:] {
			if seen[arg.value] {
				t.Fatalf("duplicate member %q in %s", arg.value, key)
			}
			seen[arg.value] = true
		}
	}
}

func TestBitmapCoversThirtyDays(t *testing.T) {
	cfg := testKVConfig()
	g := &generator{cfg: cfg, rng: random.New(cfg.Seed)}

	days := make(map[string]int)
	for _, c := range g.bitmaps() {
		days[c.Args[1].value]++
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 daily bitmap keys, got %d", len(days))
	}
	for key, count := range days {
		if count < 300 || count > 700 {
			t.Fatalf("key %s has %d sign-ins, outside 300-700", key, count)
		}
	}
}

func TestHyperloglogBatchSize(t *testing.T) {
	cfg := testKVConfig()
	g := &generator{cfg: cfg, rng: random.New(cfg.Seed)}

	for _, c := range g.hyperloglogs() {
		members := len(c.Args) - 2
		if members < 1 || members > 100 {
			t.Fatalf("batch of %d members for %s", members, c.Args[1].value)
		}
	}
}

func TestWriteFile(t *testing.T) {
	cfg := testKVConfig()
	g := &generator{cfg: cfg, rng: random.New(cfg.Seed)}
	commands := g.geo()

	path := t.TempDir() + "/init.redis"
	n, err := WriteFile(path, commands)
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if n != len(commands) {
		t.Fatalf("expected %d commands written, got %d", len(commands), n)
	}
}
