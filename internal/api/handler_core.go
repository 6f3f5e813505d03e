package api

import (
	"time"

	"github.com/amolwaghmare05/trackify/internal/db"
	"github.com/amolwaghmare05/trackify/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Handler struct {
	auth           *services.AuthService
	goals          *services.GoalService
	items          *services.ItemService
	today          *services.TodayService
	completion     *services.CompletionService
	profile        *services.ProfileService
	motivation     *services.MotivationClient
	snapshots      *db.SnapshotRepository
	completedGoals *db.CompletedGoalRepository
	secretKey      []byte
	location       *time.Location
	cookieSecure   bool
}

type HandlerConfig struct {
	Database          *gorm.DB
	SecretKey         []byte
	Location          *time.Location
	CookieSecure      bool
	MotivationBaseURL string
}

func NewHandler(config HandlerConfig) *Handler {
	location := config.Location
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(config.Database)
	engine := db.NewEngine(config.Database)

	goalService := services.NewGoalService(repositories.Goals, repositories.CompletedGoals, engine, location)
	completionService := services.NewCompletionService(engine, location, goalService)

	return &Handler{
		auth:           services.NewAuthService(repositories.Users),
		goals:          goalService,
		items:          services.NewItemService(repositories.Items, repositories.Goals),
		today:          services.NewTodayService(repositories.TodayTasks, location),
		completion:     completionService,
		profile:        services.NewProfileService(repositories.Users, repositories.CompletedGoals, repositories.Snapshots),
		motivation:     services.NewMotivationClient(config.MotivationBaseURL),
		snapshots:      repositories.Snapshots,
		completedGoals: repositories.CompletedGoals,
		secretKey:      config.SecretKey,
		location:       location,
		cookieSecure:   config.CookieSecure,
	}
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
