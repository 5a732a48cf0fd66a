package dataset

import (
	"time"

	"github.com/forgelabs/seedforge/pkg/config"
	"github.com/forgelabs/seedforge/pkg/db/models"
	"github.com/forgelabs/seedforge/pkg/enums"
	"github.com/forgelabs/seedforge/pkg/random"
)

// Reviews and tickets address customers and products through fixed modular
// formulas over their own ids instead of sampling real orders, so they are
// evenly spread but not guaranteed to match an actual purchase.

var reviewTitlesEN = []string{
	"Great quality",
	"Not bad",
	"Value for money",
	"Disappointing",
	"Exceeded expectations",
}

var reviewTitlesZH = []string{"品质很好", "还可以", "性价比高", "有点失望", "超出预期"}

var reviewTitlesES = []string{
	"Gran calidad",
	"No está mal",
	"Buena relación calidad-precio",
	"Decepcionante",
	"Superó expectativas",
}

var reviewBodiesEN = []string{
	"Product works perfectly for daily use.",
	"Packaging arrived with minor dents but overall fine.",
	"Color matches the photos and multi-language manual included.",
	"Battery life shorter than advertised.",
	"Excellent craftsmanship and fast shipping.",
}

var reviewBodiesZH = []string{
	"产品日常使用效果很好。",
	"包装有点磕碰但总体不错。",
	"颜色与图片一致，附带多语言说明书。",
	"续航时间没有宣传的长。",
	"做工精致，发货速度快。",
}

var reviewBodiesES = []string{
	"Funciona perfecto para el uso diario.",
	"El embalaje llegó con pequeños golpes pero aceptable.",
	"El color coincide con las fotos y trae manual multilingüe.",
	"La batería dura menos de lo anunciado.",
	"Excelente calidad y envío rápido.",
}

// GenerateReviews produces the review table: product by cycling, customer
// via (id*7) mod C, one review per minute from the base timestamp.
func GenerateReviews(cfg config.DatasetConfig, rng *random.Source) []models.Review {
	base := dayStart(2023, time.August, 1, 12, 0)

	reviews := make([]models.Review, 0, cfg.Reviews)
	for rid := 1; rid <= cfg.Reviews; rid++ {
		idx := rid % len(reviewTitlesEN)
		reviews = append(reviews, models.Review{
			ID:         rid,
			ProductID:  ((rid - 1) % cfg.Products) + 1,
			CustomerID: ((rid * 7) % cfg.Customers) + 1,
			Rating:     rng.IntRange(1, 5),
			TitleEN:    reviewTitlesEN[idx],
			TitleZH:    reviewTitlesZH[idx],
			TitleES:    reviewTitlesES[idx],
			BodyEN:     reviewBodiesEN[idx],
			BodyZH:     reviewBodiesZH[idx],
			BodyES:     reviewBodiesES[idx],
			CreatedAt:  base.Add(time.Duration(rid) * time.Minute),
		})
	}
	return reviews
}

var ticketSubjectsEN = []string{
	"Payment issue",
	"Shipping delay",
	"Account access",
	"Warranty request",
	"Feedback",
}

var ticketSubjectsZH = []string{"支付问题", "发货延迟", "账户登录", "保修申请", "意见反馈"}

var ticketSubjectsES = []string{
	"Problema de pago",
	"Retraso de envío",
	"Acceso a la cuenta",
	"Solicitud de garantía",
	"Comentarios",
}

// GenerateTickets produces the support ticket table: customer via
// (id*11) mod C, one ticket per hour, resolved_at two days after creation
// for terminal statuses only.
func GenerateTickets(cfg config.DatasetConfig, rng *random.Source) []models.SupportTicket {
	statuses := enums.TicketStatuses()
	base := dayStart(2023, time.June, 1, 10, 0)

	tickets := make([]models.SupportTicket, 0, cfg.Tickets)
	for tid := 1; tid <= cfg.Tickets; tid++ {
		idx := tid % len(ticketSubjectsEN)
		createdAt := base.Add(time.Duration(tid) * time.Hour)
		status := statuses[tid%len(statuses)]

		var resolvedAt *time.Time
		if status.Terminal() {
			t := createdAt.Add(ticketTurnTime)
			resolvedAt = &t
		}

		tickets = append(tickets, models.SupportTicket{
			ID:         tid,
			CustomerID: ((tid * 11) % cfg.Customers) + 1,
			SubjectEN:  ticketSubjectsEN[idx],
			SubjectZH:  ticketSubjectsZH[idx],
			SubjectES:  ticketSubjectsES[idx],
			Channel:    random.Pick(rng, enums.TicketChannels()),
			Priority:   random.Pick(rng, enums.TicketPriorities()),
			Status:     status,
			CreatedAt:  createdAt,
			ResolvedAt: resolvedAt,
		})
	}
	return tickets
}
