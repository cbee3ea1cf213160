package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/akshara-fonts/akshara/app/repository"
	"github.com/akshara-fonts/akshara/internal/pkg/aiinsight"
	"github.com/akshara-fonts/akshara/internal/pkg/audit"
	"github.com/akshara-fonts/akshara/internal/pkg/delivery"
	"github.com/akshara-fonts/akshara/internal/pkg/env"
	"github.com/akshara-fonts/akshara/internal/pkg/fontstore"
	"github.com/akshara-fonts/akshara/internal/pkg/licensing"
	"github.com/akshara-fonts/akshara/internal/pkg/middleware"
)

// Deps bundles the explicitly constructed core components. Everything is
// built once at process start and handed to the routers; handlers hold
// references instead of reaching for ambient state.
type Deps struct {
	Repos          *repository.Repositories
	Issuer         *licensing.Issuer
	Gatekeeper     *delivery.Gatekeeper
	Registry       *delivery.TokenRegistry
	FontStore      *fontstore.Store
	Auditor        *audit.Logger
	Counters       *audit.Counter
	Insights       *aiinsight.Client
	LimiterStorage fiber.Storage
}

// NewDeps builds the production dependency set from the environment and
// the global repository factory.
func NewDeps() *Deps {
	repos := repository.GetGlobalRepositories()

	var counters *audit.Counter
	withCache := env.GetEnv("CACHE_HOST", "") != ""
	if withCache {
		counters = audit.NewCounter()
	}
	auditor := audit.NewLogger(repos.AccessLog, counters)

	store := fontstore.NewStore(env.GetEnv("FONT_DIR", "./fonts"))
	registry := delivery.NewTokenRegistry()
	registry.StartReaper(30 * time.Second)

	baseURL := env.GetEnv("PUBLIC_BASE_URL", "http://localhost:4000")
	secret := env.GetEnv("DOWNLOAD_TOKEN_SECRET", "dev-download-secret")
	gatekeeper := delivery.NewGatekeeper(repos.User, repos.Font, repos.License, registry, store, auditor, baseURL, secret)

	platformDomain := env.GetEnv("PLATFORM_DOMAIN", "akshara.fonts")
	provisioningDelay := 800 * time.Millisecond
	if env.IsDev() {
		provisioningDelay = 0
	}
	issuer := licensing.NewIssuer(repos.User, repos.Font, repos.License, platformDomain, provisioningDelay)

	var limiterStorage fiber.Storage
	if withCache {
		limiterStorage = middleware.NewRateLimitStorage()
	}

	return &Deps{
		Repos:          repos,
		Issuer:         issuer,
		Gatekeeper:     gatekeeper,
		Registry:       registry,
		FontStore:      store,
		Auditor:        auditor,
		Counters:       counters,
		Insights:       aiinsight.NewClientFromEnv(),
		LimiterStorage: limiterStorage,
	}
}
